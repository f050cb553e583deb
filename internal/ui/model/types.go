// Package model defines the core types and interfaces for the UI.
package model

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/palemoky/lexio/internal/protocol"
	"github.com/palemoky/lexio/internal/session"
	"github.com/palemoky/lexio/internal/transport"
	"github.com/palemoky/lexio/internal/ui/common"
)

// NotificationType represents types of system notifications.
type NotificationType int

const (
	NotifyError            NotificationType = iota // 错误信息（临时）
	NotifyReconnecting                             // 重连中（持久）
	NotifyReconnectSuccess                         // 重连成功（临时）
)

// SystemNotification represents a system notification.
type SystemNotification struct {
	Message   string
	Type      NotificationType
	Temporary bool // 是否为临时通知（3秒后自动消失）
}

// --- Tea Messages ---

// ServerMessage wraps a protocol message for tea.Msg. Gen identifies the connection it came from.
type ServerMessage struct {
	Msg *protocol.Message
	Gen int
}

// ConnectedMsg indicates successful connection.
type ConnectedMsg struct {
	Gen int
}

// ConnectionErrorMsg indicates a connection error.
type ConnectionErrorMsg struct {
	Err error
	Gen int
}

// ConnectionClosedMsg is sent when the transport gave up on the connection.
type ConnectionClosedMsg struct {
	Gen int
}

// ReconnectingMsg indicates reconnection in progress.
type ReconnectingMsg struct {
	Attempt  int
	MaxTries int
}

// ReconnectSuccessMsg indicates successful reconnection.
type ReconnectSuccessMsg struct{}

// ClearReconnectMsg clears reconnection message.
type ClearReconnectMsg struct{}

// ClearSystemNotificationMsg clears system notification.
type ClearSystemNotificationMsg struct{}

// RoundTimerMsg is delivered when a round-result delay elapsed without being cancelled.
type RoundTimerMsg struct {
	ID uint64
}

// --- Model Interface ---

// Model is the main interface for OnlineModel, used by handler/view/input packages.
type Model interface {
	// Session state
	Session() *session.Controller
	Apply(out session.Outcome) tea.Cmd

	// Client access
	Client() *transport.Client
	Redial() tea.Cmd

	// UI components
	Keys() *common.KeyMap
	Help() *help.Model
	LogView() *viewport.Model
	SyncLog()

	// Local UI state
	Cursor() int
	SetCursor(int)
	PlayerCount() int
	SetPlayerCount(int)
	ShowingHelp() bool
	SetShowingHelp(bool)

	// Notification management
	SetNotification(notifyType NotificationType, message string, temporary bool)
	ClearNotification(notifyType NotificationType)
	GetCurrentNotification() *SystemNotification
	Notify(message string) tea.Cmd

	// Dimensions
	Width() int
	Height() int
}
