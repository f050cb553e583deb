package client

import (
	"strings"

	"github.com/palemoky/lexio/internal/logger"
	"github.com/palemoky/lexio/internal/protocol"
)

const (
	// DefaultPlayMarker is the text the server writes into a log entry when a hand is played.
	DefaultPlayMarker = "냈습니다"
	// DefaultCueName is the sound played when a hand lands on the board.
	DefaultCueName = "play"
)

// CuePlayer restarts a named sound from its beginning.
type CuePlayer interface {
	Replay(name string) error
}

// CueEngine decides from the newest log entry whether the play cue fires.
type CueEngine struct {
	player CuePlayer
	cue    string
	marker string
}

// NewCueEngine creates a cue engine. Empty cue or marker select the defaults.
func NewCueEngine(player CuePlayer, cue, marker string) *CueEngine {
	if cue == "" {
		cue = DefaultCueName
	}
	if marker == "" {
		marker = DefaultPlayMarker
	}
	return &CueEngine{player: player, cue: cue, marker: marker}
}

// Evaluate reports whether the newest entry of s records a played hand. A structured
// kind, when the server sends one, wins over the marker text.
func (e *CueEngine) Evaluate(s *protocol.Snapshot) bool {
	if s == nil {
		return false
	}
	entry, kind, ok := s.LastLog()
	if !ok {
		return false
	}
	if kind != "" {
		return kind == protocol.LogKindPlay
	}
	return strings.Contains(entry, e.marker)
}

// Apply evaluates s and replays the cue when it fires. Playback failures are only logged.
func (e *CueEngine) Apply(s *protocol.Snapshot) bool {
	if !e.Evaluate(s) {
		return false
	}
	e.Play()
	return true
}

// Play restarts the cue unconditionally.
func (e *CueEngine) Play() {
	if e.player == nil {
		return
	}
	if err := e.player.Replay(e.cue); err != nil {
		logger.LogError("cue %q playback failed: %v", e.cue, err)
	}
}
