//go:build !ci

// Package sound plays the short cues of the client through the default audio device.
package sound

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/mp3"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/gopxl/beep/v2/wav"

	"github.com/palemoky/lexio/internal/logger"
)

// ErrUnknownSound is returned when no file was loaded under the requested name.
var ErrUnknownSound = errors.New("sound not loaded")

const sampleRate = beep.SampleRate(44100)

type SoundManager struct {
	dir     string
	mu      sync.Mutex
	buffers map[string]*beep.Buffer
	enabled bool
}

func NewSoundManager(dir string) *SoundManager {
	if dir == "" {
		dir = DefaultDir
	}
	return &SoundManager{
		dir:     dir,
		buffers: make(map[string]*beep.Buffer),
	}
}

func (sm *SoundManager) Init() error {
	// Init speaker with smaller buffer for lower latency
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return fmt.Errorf("failed to initialize speaker: %w", err)
	}

	if err := sm.loadSoundFiles(); err != nil {
		return err
	}

	sm.mu.Lock()
	sm.enabled = true
	names := len(sm.buffers)
	sm.mu.Unlock()
	logger.LogInfo("sound ready: %d cue(s) from %s", names, sm.dir)
	return nil
}

// loadSoundFiles loads every mp3 and wav file of the sound directory, keyed by base name.
func (sm *SoundManager) loadSoundFiles() error {
	files, err := os.ReadDir(sm.dir)
	if err != nil {
		// It's okay if directory doesn't exist, just no sounds
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to read sound directory: %w", err)
	}

	for _, file := range files {
		if file.IsDir() {
			continue
		}
		name := file.Name()
		ext := strings.ToLower(filepath.Ext(name))
		if !Supported(ext) {
			continue
		}

		buffer, err := decodeFile(filepath.Join(sm.dir, name), ext)
		if err != nil {
			logger.LogError("skip sound %s: %v", name, err)
			continue
		}
		sm.mu.Lock()
		sm.buffers[strings.TrimSuffix(name, filepath.Ext(name))] = buffer
		sm.mu.Unlock()
	}

	return nil
}

// decodeFile decodes a single sound file into a stereo buffer at the speaker rate.
func decodeFile(path, ext string) (*beep.Buffer, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	var streamer beep.StreamSeekCloser
	var format beep.Format

	switch ext {
	case ".mp3":
		streamer, format, err = mp3.Decode(f)
	case ".wav":
		streamer, format, err = wav.Decode(f)
	}
	if err != nil {
		return nil, err
	}
	defer func() { _ = streamer.Close() }()

	var resampled beep.Streamer = streamer
	if format.SampleRate != sampleRate {
		resampled = beep.Resample(4, format.SampleRate, sampleRate, streamer)
	}

	buffer := beep.NewBuffer(beep.Format{
		SampleRate:  sampleRate,
		NumChannels: 2,
		Precision:   4,
	})
	buffer.Append(resampled)
	return buffer, nil
}

// Replay stops whatever is playing and starts name from its first sample, so rapid plays
// restart one shared cue instead of layering.
func (sm *SoundManager) Replay(name string) error {
	sm.mu.Lock()
	enabled := sm.enabled
	buffer, ok := sm.buffers[name]
	sm.mu.Unlock()

	if !enabled {
		return nil
	}
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownSound, name)
	}

	speaker.Clear()
	speaker.Play(buffer.Streamer(0, buffer.Len()))
	return nil
}

// Loaded reports whether a cue named name is available.
func (sm *SoundManager) Loaded(name string) bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	_, ok := sm.buffers[name]
	return ok
}

func (sm *SoundManager) Close() {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	if sm.enabled {
		speaker.Clear()
	}
	sm.enabled = false
}
