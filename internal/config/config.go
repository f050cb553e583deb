// Package config loads the client configuration from an optional YAML file, an optional
// .env file and LEXIO_* environment variables, in increasing precedence.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	defaultAddr             = "localhost:5000"
	defaultPath             = "/ws"
	defaultCodec            = "json"
	defaultRoundResultDelay = 5
	defaultSoundDir         = "assets/sounds"
	defaultSoundCue         = "play"
	defaultLogLevel         = "info"
)

// ClientConfig 客户端配置
type ClientConfig struct {
	Server ServerConfig `yaml:"server"`
	Game   GameConfig   `yaml:"game"`
	Sound  SoundConfig  `yaml:"sound"`
	Log    LogConfig    `yaml:"log"`
}

// ServerConfig 服务器连接配置
type ServerConfig struct {
	Addr   string `yaml:"addr" env:"LEXIO_SERVER_ADDR" env-default:"localhost:5000"`
	Path   string `yaml:"path" env:"LEXIO_SERVER_PATH" env-default:"/ws"`
	Codec  string `yaml:"codec" env:"LEXIO_SERVER_CODEC" env-default:"json"`
	Secure bool   `yaml:"secure" env:"LEXIO_SERVER_SECURE"`
}

// GameConfig 游戏表现配置
type GameConfig struct {
	RoundResultDelay int    `yaml:"round_result_delay" env:"LEXIO_ROUND_RESULT_DELAY" env-default:"5"` // 回合结算展示（秒）
	CueMarker        string `yaml:"cue_marker" env:"LEXIO_CUE_MARKER"`                                 // 空值使用内置标记
}

// SoundConfig 音效配置
type SoundConfig struct {
	Enabled bool   `yaml:"enabled" env:"LEXIO_SOUND_ENABLED"`
	Dir     string `yaml:"dir" env:"LEXIO_SOUND_DIR" env-default:"assets/sounds"`
	Cue     string `yaml:"cue" env:"LEXIO_SOUND_CUE" env-default:"play"`
}

// LogConfig 日志配置
type LogConfig struct {
	Level string `yaml:"level" env:"LEXIO_LOG_LEVEL" env-default:"info"`
	Dir   string `yaml:"dir" env:"LEXIO_LOG_DIR"` // 空值为 ~/.lexio
}

// RoundResultDelayDuration 返回回合结算展示时长
func (c *GameConfig) RoundResultDelayDuration() time.Duration {
	return time.Duration(c.RoundResultDelay) * time.Second
}

// URL 返回 WebSocket 地址
func (c *ServerConfig) URL() string {
	scheme := "ws"
	if c.Secure {
		scheme = "wss"
	}
	u := url.URL{Scheme: scheme, Host: c.Addr, Path: c.Path}
	return u.String()
}

// Load 加载配置文件。path 为空时只读取环境变量。
func Load(path string) (*ClientConfig, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	}

	if err := cleanenv.ReadEnv(cfg); err != nil {
		return nil, fmt.Errorf("read environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadDotEnv exports the variables of a .env file. A missing file is not an error.
func LoadDotEnv(path string) error {
	if path == "" {
		path = ".env"
	}
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

// Validate rejects values no component can work with.
func (c *ClientConfig) Validate() error {
	switch {
	case c.Server.Addr == "":
		return errors.New("server.addr is empty")
	case c.Server.Codec != "json" && c.Server.Codec != "proto":
		return fmt.Errorf("server.codec %q: want json or proto", c.Server.Codec)
	case c.Game.RoundResultDelay <= 0:
		return fmt.Errorf("game.round_result_delay %d: must be positive", c.Game.RoundResultDelay)
	}
	return nil
}

// Default 返回默认配置
func Default() *ClientConfig {
	return &ClientConfig{
		Server: ServerConfig{
			Addr:  defaultAddr,
			Path:  defaultPath,
			Codec: defaultCodec,
		},
		Game: GameConfig{
			RoundResultDelay: defaultRoundResultDelay,
		},
		Sound: SoundConfig{
			Enabled: true,
			Dir:     defaultSoundDir,
			Cue:     defaultSoundCue,
		},
		Log: LogConfig{
			Level: defaultLogLevel,
		},
	}
}
