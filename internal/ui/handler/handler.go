// Package handler processes server messages.
package handler

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/palemoky/lexio/internal/protocol"
	"github.com/palemoky/lexio/internal/session"
	"github.com/palemoky/lexio/internal/ui/model"
)

// uiHook adjusts local UI state after the session handled a message.
type uiHook func(m model.Model, out session.Outcome) tea.Cmd

// uiHooks 消息处理后的界面调整
var uiHooks = map[protocol.MessageType]uiHook{
	protocol.MsgGameStarted: resetLocalState,
	protocol.MsgShowLobby:   resetLocalState,
	protocol.MsgPlayerLeft:  resetLocalState,
	protocol.MsgGameOver: func(m model.Model, _ session.Outcome) tea.Cmd {
		m.SetShowingHelp(false)
		return nil
	},
}

func resetLocalState(m model.Model, _ session.Outcome) tea.Cmd {
	m.SetCursor(0)
	m.SetShowingHelp(false)
	return nil
}

// HandleServerMessage routes a server message through the session and turns the outcome
// into commands.
func HandleServerMessage(m model.Model, msg *protocol.Message) tea.Cmd {
	if msg == nil {
		return nil
	}
	out := m.Session().HandleMessage(msg)
	cmds := []tea.Cmd{m.Apply(out)}
	if hook, ok := uiHooks[msg.Type]; ok {
		cmds = append(cmds, hook(m, out))
	}
	return tea.Batch(cmds...)
}
