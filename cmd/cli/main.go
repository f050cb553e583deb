package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/chzyer/readline"

	"github.com/palemoky/lexio/internal/client"
	"github.com/palemoky/lexio/internal/config"
	"github.com/palemoky/lexio/internal/console"
	"github.com/palemoky/lexio/internal/logger"
	"github.com/palemoky/lexio/internal/protocol/codec"
	"github.com/palemoky/lexio/internal/sound"
)

func main() {
	configPath := flag.String("config", "", "YAML 配置文件路径")
	envPath := flag.String("env", ".env", ".env 文件路径")
	serverAddr := flag.String("server", "", "服务器地址，覆盖配置")
	flag.Parse()

	if err := config.LoadDotEnv(*envPath); err != nil {
		log.Fatalf("加载 .env 失败: %v", err)
	}
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("加载配置失败: %v", err)
	}
	if *serverAddr != "" {
		cfg.Server.Addr = *serverAddr
	}

	if err := logger.Init(logger.Options{Dir: cfg.Log.Dir, Level: cfg.Log.Level}); err != nil {
		log.Fatalf("初始化日志失败: %v", err)
	}
	defer logger.Close()

	c, err := codec.ByName(cfg.Server.Codec)
	if err != nil {
		log.Fatalf("选择编码失败: %v", err)
	}

	var cue *client.CueEngine
	if cfg.Sound.Enabled {
		sm := sound.NewSoundManager(cfg.Sound.Dir)
		if err := sm.Init(); err != nil {
			logger.LogError("sound disabled: %v", err)
		}
		defer sm.Close()
		cue = client.NewCueEngine(sm, cfg.Sound.Cue, cfg.Game.CueMarker)
	}

	historyFile := ""
	if p := logger.GetLogPath(); p != "" {
		historyFile = filepath.Join(filepath.Dir(p), "history")
	}
	rl, err := readline.NewEx(&readline.Config{
		Prompt:            "lexio» ",
		HistoryFile:       historyFile,
		AutoComplete:      console.Completer(),
		InterruptPrompt:   "^C",
		EOFPrompt:         "quit",
		HistorySearchFold: true,
	})
	if err != nil {
		log.Fatalf("初始化终端失败: %v", err)
	}
	defer rl.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	r := console.NewRunner(console.Options{
		ServerURL:        cfg.Server.URL(),
		Codec:            c,
		RoundResultDelay: cfg.Game.RoundResultDelayDuration(),
		Cue:              cue,
	}, rl.Stdout())
	if err := r.Run(ctx, rl); err != nil {
		log.Printf("客户端退出: %v", err)
	}
}
