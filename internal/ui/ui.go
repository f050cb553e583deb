// Package ui provides the main entry point for the UI.
package ui

import (
	"fmt"

	"github.com/palemoky/lexio/internal/config"
	"github.com/palemoky/lexio/internal/protocol/codec"
	"github.com/palemoky/lexio/internal/ui/handler"
	"github.com/palemoky/lexio/internal/ui/input"
	"github.com/palemoky/lexio/internal/ui/model"
	"github.com/palemoky/lexio/internal/ui/view"
)

// NewOnlineModel creates a fully wired OnlineModel from cfg.
func NewOnlineModel(cfg *config.ClientConfig) (*model.OnlineModel, error) {
	c, err := codec.ByName(cfg.Server.Codec)
	if err != nil {
		return nil, fmt.Errorf("select codec: %w", err)
	}

	m := model.NewOnlineModel(model.Options{
		ServerURL:        cfg.Server.URL(),
		Codec:            c,
		RoundResultDelay: cfg.Game.RoundResultDelayDuration(),
		CueMarker:        cfg.Game.CueMarker,
		SoundEnabled:     cfg.Sound.Enabled,
		SoundDir:         cfg.Sound.Dir,
		CueName:          cfg.Sound.Cue,
	})
	m.SetViewRenderer(view.CreateViewRenderer())
	m.SetKeyHandler(input.HandleKeyPress)
	m.SetServerMessageHandler(handler.HandleServerMessage)
	return m, nil
}
