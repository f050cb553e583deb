package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/palemoky/lexio/internal/apperrors"
	"github.com/palemoky/lexio/internal/client"
	"github.com/palemoky/lexio/internal/logger"
	"github.com/palemoky/lexio/internal/protocol"
)

// DefaultRoundResultDelay is how long the round result stays up before play resumes.
const DefaultRoundResultDelay = 5 * time.Second

// Options configures a Controller.
type Options struct {
	Sender           client.Sender
	Cue              *client.CueEngine // nil disables the cue
	RoundResultDelay time.Duration
}

// Controller is the session context and the lifecycle state machine over it.
type Controller struct {
	id          string
	myPlayerNum int
	screen      Screen

	snapshot *protocol.Snapshot
	view     *client.ViewState
	sel      *client.Selection

	waiting protocol.WaitingForPlayersPayload
	round   *protocol.RoundResultPayload
	over    *protocol.GameOverPayload

	notices []Notice

	gate  *client.Gate
	cue   *client.CueEngine
	delay time.Duration

	timerSeq    uint64
	timerID     uint64
	timerCancel context.CancelFunc

	log *logrus.Entry
}

// NewController creates a controller with a fresh session on the Start screen.
func NewController(opts Options) *Controller {
	delay := opts.RoundResultDelay
	if delay <= 0 {
		delay = DefaultRoundResultDelay
	}
	c := &Controller{
		gate:  client.NewGate(opts.Sender),
		cue:   opts.Cue,
		delay: delay,
	}
	c.reset()
	return c
}

// reset discards the whole session context and starts a new one.
func (c *Controller) reset() {
	c.cancelTimer()
	c.id = uuid.NewString()
	c.myPlayerNum = client.Unassigned
	c.screen = ScreenStart
	c.snapshot = nil
	c.view = nil
	c.sel = client.NewSelection()
	c.waiting = protocol.WaitingForPlayersPayload{}
	c.round = nil
	c.over = nil
	c.log = logger.WithSession(c.id)
}

// Reset forces a fresh session, as after a transport reconnect.
func (c *Controller) Reset() Outcome {
	c.reset()
	c.log.Info("session reset")
	return Outcome{Render: true, Reset: true}
}

// --- accessors ---

func (c *Controller) SessionID() string                          { return c.id }
func (c *Controller) MyPlayerNum() int                           { return c.myPlayerNum }
func (c *Controller) Screen() Screen                             { return c.screen }
func (c *Controller) Snapshot() *protocol.Snapshot               { return c.snapshot }
func (c *Controller) Selection() *client.Selection               { return c.sel }
func (c *Controller) Waiting() protocol.WaitingForPlayersPayload { return c.waiting }
func (c *Controller) RoundResult() *protocol.RoundResultPayload  { return c.round }
func (c *Controller) GameOver() *protocol.GameOverPayload        { return c.over }

// View returns the latest rendered view with the live selection applied. ok is false
// until a snapshot has been rendered.
func (c *Controller) View() (view client.ViewState, ok bool) {
	if c.view == nil {
		return client.ViewState{}, false
	}
	return c.view.WithSelection(c.sel), true
}

// Notices returns the queued notices, oldest first.
func (c *Controller) Notices() []Notice {
	return append([]Notice(nil), c.notices...)
}

// CurrentNotice returns the oldest undismissed notice.
func (c *Controller) CurrentNotice() *Notice {
	if len(c.notices) == 0 {
		return nil
	}
	n := c.notices[0]
	return &n
}

// DismissNotice drops the oldest notice.
func (c *Controller) DismissNotice() {
	if len(c.notices) > 0 {
		c.notices = c.notices[1:]
	}
}

func (c *Controller) pushNotice(kind NoticeKind, msg string) *Notice {
	n := Notice{Kind: kind, Message: msg}
	c.notices = append(c.notices, n)
	return &n
}

func (c *Controller) setScreen(s Screen) {
	if c.screen != s {
		c.log.WithFields(logrus.Fields{"from": c.screen, "to": s}).Debug("screen changed")
	}
	c.screen = s
}

// --- timers ---

func (c *Controller) startTimer() *TimerRequest {
	c.cancelTimer()
	c.timerSeq++
	ctx, cancel := context.WithCancel(context.Background())
	c.timerID = c.timerSeq
	c.timerCancel = cancel
	return &TimerRequest{ID: c.timerID, After: c.delay, Ctx: ctx}
}

func (c *Controller) cancelTimer() {
	if c.timerCancel != nil {
		c.timerCancel()
	}
	c.timerCancel = nil
	c.timerID = 0
}

// PendingTimer returns the id of the live round-result timer, or 0.
func (c *Controller) PendingTimer() uint64 { return c.timerID }

// FireTimer completes the round-result delay. Cancelled or stale ids are ignored, and so is
// a fire that finds the screen already moved on.
func (c *Controller) FireTimer(id uint64) Outcome {
	if id == 0 || id != c.timerID {
		return Outcome{}
	}
	c.cancelTimer()
	if c.screen != ScreenRoundResult {
		return Outcome{}
	}
	c.setScreen(ScreenPlaying)
	return Outcome{Render: true}
}

// --- rendering ---

// render rebuilds the view from the stored snapshot. Unrenderable snapshots are skipped.
func (c *Controller) render() bool {
	if c.snapshot == nil {
		return false
	}
	view, err := client.Render(c.snapshot, c.myPlayerNum, c.sel)
	if err != nil {
		if errors.Is(err, apperrors.ErrIdentityUnassigned) {
			c.log.Debug("snapshot held until identity is assigned")
		} else {
			c.log.WithError(err).Warn("snapshot skipped")
		}
		return false
	}
	c.view = &view
	return true
}

func (c *Controller) applySnapshot(s *protocol.Snapshot) Outcome {
	c.snapshot = s
	if !c.render() {
		return Outcome{}
	}
	c.checkHand()
	out := Outcome{Render: true}
	if c.cue != nil {
		out.Cue = c.cue.Apply(s)
	}
	return out
}

// checkHand logs tiles of the local hand that fall outside the standard deck. They are
// still rendered as sent.
func (c *Controller) checkHand() {
	for _, t := range c.snapshot.PlayerHands[c.myPlayerNum] {
		if !t.Valid() {
			c.log.WithField("tile", t.String()).Warn("tile outside the standard deck")
		}
	}
}

// --- inbound events ---

// OnPlayerAssigned records the local slot. A snapshot that arrived first is rendered now.
func (c *Controller) OnPlayerAssigned(p protocol.PlayerAssignedPayload) Outcome {
	c.myPlayerNum = p.PlayerNum
	c.log.WithField("player_num", p.PlayerNum).Info("identity assigned")
	if c.render() {
		return Outcome{Render: true}
	}
	return Outcome{}
}

// OnWaitingForPlayers shows the waiting screen with join progress.
func (c *Controller) OnWaitingForPlayers(p protocol.WaitingForPlayersPayload) Outcome {
	c.waiting = p
	c.setScreen(ScreenWaiting)
	return Outcome{Render: true}
}

// OnGameStarted enters play with the first snapshot.
func (c *Controller) OnGameStarted(s *protocol.Snapshot) Outcome {
	c.cancelTimer()
	c.round = nil
	c.over = nil
	c.setScreen(ScreenPlaying)
	out := c.applySnapshot(s)
	out.Render = true
	return out
}

// OnGameUpdate re-renders. The screen is left alone, so an update during the round result
// is drawn underneath it.
func (c *Controller) OnGameUpdate(s *protocol.Snapshot) Outcome {
	return c.applySnapshot(s)
}

// OnRoundResult shows the settlement and schedules the return to play.
func (c *Controller) OnRoundResult(p protocol.RoundResultPayload) Outcome {
	c.round = &p
	c.setScreen(ScreenRoundResult)
	return Outcome{Render: true, Timer: c.startTimer()}
}

// OnGameOver always wins over a pending round-result timer.
func (c *Controller) OnGameOver(p protocol.GameOverPayload) Outcome {
	c.cancelTimer()
	c.over = &p
	c.setScreen(ScreenGameOver)
	return Outcome{Render: true}
}

// OnShowLobby returns to the start screen from anywhere. The server forgets every seat, so
// the session context is discarded as well; queued notices stay. The connection is kept.
func (c *Controller) OnShowLobby() Outcome {
	c.reset()
	c.log.Info("returned to lobby")
	return Outcome{Render: true}
}

// OnPlayerLeft tears the session down. The notice stays queued across the reset.
func (c *Controller) OnPlayerLeft(p protocol.PlayerLeftPayload) Outcome {
	err := &apperrors.SessionTerminatedError{PlayerNum: p.PlayerNum}
	c.log.WithError(err).Info("session terminated")
	notice := c.pushNotice(NoticeDisconnect, fmt.Sprintf("Player %d disconnected. Returning to the start screen.", p.PlayerNum))
	c.reset()
	return Outcome{Render: true, Notice: notice, Reset: true}
}

// OnErrorMessage queues a server notice. Nothing else changes.
func (c *Controller) OnErrorMessage(p protocol.ErrorMessagePayload) Outcome {
	err := &apperrors.ProtocolNotice{Message: p.Message}
	c.log.WithError(err).Info("server notice")
	return Outcome{Render: true, Notice: c.pushNotice(NoticeServer, p.Message)}
}
