// Package model contains the UI model implementations.
package model

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/palemoky/lexio/internal/client"
	"github.com/palemoky/lexio/internal/logger"
	"github.com/palemoky/lexio/internal/protocol"
	"github.com/palemoky/lexio/internal/protocol/codec"
	"github.com/palemoky/lexio/internal/session"
	"github.com/palemoky/lexio/internal/sound"
	"github.com/palemoky/lexio/internal/tile"
	"github.com/palemoky/lexio/internal/transport"
	"github.com/palemoky/lexio/internal/ui/common"
)

const (
	logViewHeight = 8
	logViewWidth  = 60
)

var _ Model = (*OnlineModel)(nil)

// Options configures an OnlineModel.
type Options struct {
	ServerURL        string
	Codec            codec.Codec
	RoundResultDelay time.Duration
	CueMarker        string
	SoundEnabled     bool
	SoundDir         string
	CueName          string
}

// OnlineModel is the main model for online game mode.
type OnlineModel struct {
	opts   Options
	ctx    context.Context
	cancel context.CancelFunc

	client    *transport.Client
	gen       int
	connected bool
	error     string

	session *session.Controller

	// Reconnect state
	reconnectChan chan tea.Msg

	// System notifications
	notifications map[NotificationType]*SystemNotification

	// Audio
	soundManager *sound.SoundManager

	// UI components
	keys        common.KeyMap
	help        help.Model
	logView     viewport.Model
	cursor      int
	playerCount int
	showingHelp bool
	width       int
	height      int

	// View renderer (injected to break circular import)
	viewRenderer func(Model) string

	// Key handler (injected to break circular import)
	keyHandler func(Model, tea.KeyMsg) (bool, tea.Cmd)

	// Server message handler (injected to break circular import)
	serverMessageHandler func(Model, *protocol.Message) tea.Cmd
}

// NewOnlineModel creates a new OnlineModel.
func NewOnlineModel(opts Options) *OnlineModel {
	ctx, cancel := context.WithCancel(context.Background())
	m := &OnlineModel{
		opts:          opts,
		ctx:           ctx,
		cancel:        cancel,
		reconnectChan: make(chan tea.Msg, 10),
		notifications: make(map[NotificationType]*SystemNotification),
		keys:          common.DefaultKeyMap(),
		help:          help.New(),
		logView:       viewport.New(logViewWidth, logViewHeight),
		playerCount:   client.AllowedPlayerCounts[0],
	}

	var cue *client.CueEngine
	if opts.SoundEnabled {
		m.soundManager = sound.NewSoundManager(opts.SoundDir)
		cue = client.NewCueEngine(m.soundManager, opts.CueName, opts.CueMarker)
	}

	m.session = session.NewController(session.Options{
		Sender:           forwardingSender{m},
		Cue:              cue,
		RoundResultDelay: opts.RoundResultDelay,
	})
	m.client = m.newClient()
	return m
}

// newClient creates a transport client wired to the reconnect channel.
func (m *OnlineModel) newClient() *transport.Client {
	c := transport.NewClient(m.opts.ServerURL, m.opts.Codec)
	reconnectChan, gen := m.reconnectChan, m.gen

	// Set up reconnect callbacks
	c.OnReconnecting = func(attempt, maxTries int) {
		select {
		case reconnectChan <- ReconnectingMsg{Attempt: attempt, MaxTries: maxTries}:
		default:
		}
	}

	c.OnReconnect = func() {
		select {
		case reconnectChan <- ReconnectSuccessMsg{}:
		default:
		}
	}

	c.OnClose = func() {
		select {
		case reconnectChan <- ConnectionClosedMsg{Gen: gen}:
		default:
		}
	}
	return c
}

func (m *OnlineModel) Init() tea.Cmd {
	if m.soundManager != nil {
		go func() {
			if err := m.soundManager.Init(); err != nil {
				logger.LogError("sound disabled: %v", err)
			}
		}()
	}

	return tea.Batch(
		m.connectToServer(),
		m.listenForReconnect(),
	)
}

func (m *OnlineModel) listenForReconnect() tea.Cmd {
	return func() tea.Msg {
		msg := <-m.reconnectChan
		return msg
	}
}

func (m *OnlineModel) connectToServer() tea.Cmd {
	c, gen, ctx := m.client, m.gen, m.ctx
	return func() tea.Msg {
		if err := c.Connect(ctx); err != nil {
			return ConnectionErrorMsg{Err: err, Gen: gen}
		}
		return ConnectedMsg{Gen: gen}
	}
}

func (m *OnlineModel) listenForMessages() tea.Cmd {
	c, gen := m.client, m.gen
	return func() tea.Msg {
		msg, err := c.Receive()
		if err != nil {
			return ConnectionErrorMsg{Err: err, Gen: gen}
		}
		return ServerMessage{Msg: msg, Gen: gen}
	}
}

// waitTimer turns a round-result timer into a tea.Cmd. A cancelled timer yields no message.
func waitTimer(t *session.TimerRequest) tea.Cmd {
	return func() tea.Msg {
		if !t.Wait() {
			return nil
		}
		return RoundTimerMsg{ID: t.ID}
	}
}

// --- Model interface implementation ---

func (m *OnlineModel) Session() *session.Controller { return m.session }
func (m *OnlineModel) Client() *transport.Client    { return m.client }
func (m *OnlineModel) Keys() *common.KeyMap         { return &m.keys }
func (m *OnlineModel) Help() *help.Model            { return &m.help }
func (m *OnlineModel) LogView() *viewport.Model     { return &m.logView }
func (m *OnlineModel) Cursor() int                  { return m.cursor }
func (m *OnlineModel) SetCursor(c int)              { m.cursor = c }
func (m *OnlineModel) PlayerCount() int             { return m.playerCount }
func (m *OnlineModel) SetPlayerCount(n int)         { m.playerCount = n }
func (m *OnlineModel) ShowingHelp() bool            { return m.showingHelp }
func (m *OnlineModel) SetShowingHelp(s bool)        { m.showingHelp = s }
func (m *OnlineModel) Width() int                   { return m.width }
func (m *OnlineModel) Height() int                  { return m.height }

// Connected reports whether the first dial succeeded.
func (m *OnlineModel) Connected() bool { return m.connected }

// Error returns the current error message.
func (m *OnlineModel) Error() string { return m.error }

func (m *OnlineModel) SetNotification(notifyType NotificationType, message string, temporary bool) {
	m.notifications[notifyType] = &SystemNotification{
		Message:   message,
		Type:      notifyType,
		Temporary: temporary,
	}
}

func (m *OnlineModel) ClearNotification(notifyType NotificationType) {
	delete(m.notifications, notifyType)
}

func (m *OnlineModel) GetCurrentNotification() *SystemNotification {
	priorityOrder := []NotificationType{
		NotifyError,
		NotifyReconnecting,
		NotifyReconnectSuccess,
	}

	for _, notifyType := range priorityOrder {
		if notification, exists := m.notifications[notifyType]; exists {
			return notification
		}
	}
	return nil
}

// SyncLog replaces the log viewport content with the latest view and scrolls to the newest line.
func (m *OnlineModel) SyncLog() {
	view, ok := m.session.View()
	if !ok {
		m.logView.SetContent("")
		return
	}
	m.logView.SetContent(strings.Join(view.Log, "\n"))
	if view.ScrollToEnd {
		m.logView.GotoBottom()
	}
	if m.cursor >= len(view.Hand) {
		m.cursor = max(len(view.Hand)-1, 0)
	}
}

// Apply acts on a session outcome and returns the follow-up commands.
func (m *OnlineModel) Apply(out session.Outcome) tea.Cmd {
	var cmds []tea.Cmd
	if out.Render {
		m.SyncLog()
	}
	if out.Timer != nil {
		cmds = append(cmds, waitTimer(out.Timer))
	}
	if out.Reset {
		m.cursor = 0
		cmds = append(cmds, m.Redial())
	}
	return tea.Batch(cmds...)
}

// Redial drops the current connection and dials a fresh one. Messages still in flight from
// the old connection are ignored.
func (m *OnlineModel) Redial() tea.Cmd {
	m.client.Close()
	m.gen++
	m.connected = false
	m.client = m.newClient()
	return m.connectToServer()
}

// Shutdown stops reconnect attempts and releases audio.
func (m *OnlineModel) Shutdown() {
	m.cancel()
	m.client.Close()
	if m.soundManager != nil {
		m.soundManager.Close()
	}
}

func (m *OnlineModel) temporary(notifyType NotificationType, message string) tea.Cmd {
	m.SetNotification(notifyType, message, true)
	return tea.Tick(3*time.Second, func(t time.Time) tea.Msg {
		return ClearSystemNotificationMsg{}
	})
}

// Update handles tea messages.
func (m *OnlineModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.logView.Width = min(max(msg.Width-8, 20), 100)

	case ConnectedMsg:
		if msg.Gen != m.gen {
			break
		}
		m.connected = true
		m.error = ""
		logger.LogInfo("connected to %s", m.opts.ServerURL)
		cmds = append(cmds, m.listenForMessages())

	case ConnectionErrorMsg:
		if msg.Gen != m.gen {
			break
		}
		logger.LogError("connection error: %v", msg.Err)
		m.connected = false
		m.error = fmt.Sprintf("Cannot reach the server: %v\n\nPress ESC to quit", msg.Err)

	case ConnectionClosedMsg:
		cmds = append(cmds, m.listenForReconnect())
		if msg.Gen != m.gen || m.ctx.Err() != nil {
			break
		}
		logger.LogError("connection closed")
		m.ClearNotification(NotifyReconnecting)
		m.connected = false
		m.error = "Connection to the server was lost.\n\nPress ESC to quit"

	case ReconnectingMsg:
		m.SetNotification(NotifyReconnecting, fmt.Sprintf("Reconnecting (%d/%d)...", msg.Attempt, msg.MaxTries), false)
		cmds = append(cmds, m.listenForReconnect())

	case ReconnectSuccessMsg:
		m.ClearNotification(NotifyReconnecting)
		m.ClearNotification(NotifyError)
		// A new connection is a new server-side identity.
		out := m.session.Reset()
		out.Reset = false
		cmds = append(cmds, m.Apply(out))
		cmds = append(cmds, m.temporary(NotifyReconnectSuccess, "Reconnected"))
		cmds = append(cmds, m.listenForReconnect())

	case ClearSystemNotificationMsg:
		m.ClearNotification(NotifyError)
		m.ClearNotification(NotifyReconnectSuccess)

	case RoundTimerMsg:
		cmds = append(cmds, m.Apply(m.session.FireTimer(msg.ID)))

	case ServerMessage:
		if msg.Gen != m.gen {
			break
		}
		gen := m.gen
		// Handle server message via injected handler
		if m.serverMessageHandler != nil {
			if cmd := m.serverMessageHandler(m, msg.Msg); cmd != nil {
				cmds = append(cmds, cmd)
			}
		}
		if gen == m.gen {
			cmds = append(cmds, m.listenForMessages())
		}

	case tea.KeyMsg:
		// Handle keyboard input via injected handler
		if m.keyHandler != nil {
			handled, keyCmd := m.keyHandler(m, msg)
			if keyCmd != nil {
				cmds = append(cmds, keyCmd)
			}
			if handled {
				return m, tea.Batch(cmds...)
			}
		}
		var cmd tea.Cmd
		m.logView, cmd = m.logView.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// View renders the model.
func (m *OnlineModel) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	var content string
	switch {
	case !m.connected && m.viewRenderer != nil && m.session.CurrentNotice() != nil:
		// A queued notice stays visible while the connection is down.
		content = m.viewRenderer(m)
	case !m.connected:
		content = m.connectingView()
	case m.viewRenderer != nil:
		content = m.viewRenderer(m)
	default:
		content = "View renderer not initialized"
	}

	return common.DocStyle.Render(content)
}

// SetViewRenderer sets the view rendering function.
func (m *OnlineModel) SetViewRenderer(fn func(Model) string) {
	m.viewRenderer = fn
}

// SetKeyHandler sets the keyboard event handler function.
func (m *OnlineModel) SetKeyHandler(fn func(Model, tea.KeyMsg) (bool, tea.Cmd)) {
	m.keyHandler = fn
}

// SetServerMessageHandler sets the server message handler function.
func (m *OnlineModel) SetServerMessageHandler(fn func(Model, *protocol.Message) tea.Cmd) {
	m.serverMessageHandler = fn
}

// Notify shows a short-lived error line.
func (m *OnlineModel) Notify(message string) tea.Cmd {
	return m.temporary(NotifyError, message)
}

func (m *OnlineModel) connectingView() string {
	var sb string
	if m.error != "" {
		sb = common.ErrorStyle.Render(m.error)
	} else {
		sb = fmt.Sprintf("Connecting to %s...", m.opts.ServerURL)
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, sb)
}

// forwardingSender sends through whichever transport client is current, so the session
// keeps working across redials.
type forwardingSender struct {
	m *OnlineModel
}

func (s forwardingSender) RequestStartGame(n int) error  { return s.m.client.RequestStartGame(n) }
func (s forwardingSender) RequestNewGame() error         { return s.m.client.RequestNewGame() }
func (s forwardingSender) PlayHand(ts []tile.Tile) error { return s.m.client.PlayHand(ts) }
func (s forwardingSender) PassTurn() error               { return s.m.client.PassTurn() }
