// Package session owns the single client session: identity, screen and the latest view.
// Every method must be called from one goroutine, the host's event loop.
package session

import (
	"context"
	"time"
)

// Screen is the top-level view the host shows.
type Screen int

const (
	ScreenStart Screen = iota
	ScreenWaiting
	ScreenPlaying
	ScreenRoundResult
	ScreenGameOver
)

var screenNames = [...]string{"start", "waiting", "playing", "round_result", "game_over"}

func (s Screen) String() string {
	if s < 0 || int(s) >= len(screenNames) {
		return "unknown"
	}
	return screenNames[s]
}

// NoticeKind tags where a modal notice came from.
type NoticeKind int

const (
	NoticeValidation NoticeKind = iota
	NoticeServer
	NoticeDisconnect
	NoticeTransport
)

// Notice is a blocking message the host shows until the user dismisses it.
type Notice struct {
	Kind    NoticeKind
	Message string
}

// TimerRequest asks the host to call FireTimer(ID) once After has elapsed. The
// controller cancels Ctx when the timer becomes obsolete.
type TimerRequest struct {
	ID    uint64
	After time.Duration
	Ctx   context.Context
}

// Wait blocks until the delay elapses or the timer is cancelled. It reports whether the
// delay elapsed.
func (t TimerRequest) Wait() bool {
	timer := time.NewTimer(t.After)
	defer timer.Stop()
	select {
	case <-timer.C:
		return t.Ctx.Err() == nil
	case <-t.Ctx.Done():
		return false
	}
}

// Outcome tells the host what a handled event requires.
type Outcome struct {
	Render bool          // the view changed and must be redrawn
	Cue    bool          // the play cue was fired
	Notice *Notice       // a new modal notice was queued
	Timer  *TimerRequest // a delayed transition to schedule
	Reset  bool          // the session was torn down; redial the transport
}
