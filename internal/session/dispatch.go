package session

import (
	"github.com/palemoky/lexio/internal/protocol"
)

// messageHandler 消息处理函数类型
type messageHandler func(c *Controller, msg *protocol.Message) (Outcome, error)

// decodeInto adapts a typed handler to the dispatch table.
func decodeInto[T any](fn func(*Controller, T) Outcome) messageHandler {
	return func(c *Controller, msg *protocol.Message) (Outcome, error) {
		payload, err := protocol.ParsePayload[T](msg)
		if err != nil {
			return Outcome{}, err
		}
		return fn(c, *payload), nil
	}
}

func decodeSnapshot(fn func(*Controller, *protocol.Snapshot) Outcome) messageHandler {
	return func(c *Controller, msg *protocol.Message) (Outcome, error) {
		s, err := protocol.ParsePayload[protocol.Snapshot](msg)
		if err != nil {
			return Outcome{}, err
		}
		return fn(c, s), nil
	}
}

// messageHandlers 消息处理器映射表
var messageHandlers = map[protocol.MessageType]messageHandler{
	protocol.MsgPlayerAssigned:    decodeInto((*Controller).OnPlayerAssigned),
	protocol.MsgWaitingForPlayers: decodeInto((*Controller).OnWaitingForPlayers),
	protocol.MsgGameStarted:       decodeSnapshot((*Controller).OnGameStarted),
	protocol.MsgGameUpdate:        decodeSnapshot((*Controller).OnGameUpdate),
	protocol.MsgRoundResult:       decodeInto((*Controller).OnRoundResult),
	protocol.MsgGameOver:          decodeInto((*Controller).OnGameOver),
	protocol.MsgShowLobby: func(c *Controller, _ *protocol.Message) (Outcome, error) {
		return c.OnShowLobby(), nil
	},
	protocol.MsgPlayerLeft:   decodeInto((*Controller).OnPlayerLeft),
	protocol.MsgErrorMessage: decodeInto((*Controller).OnErrorMessage),
}

// HandleMessage dispatches a server message by event name. Undecodable payloads and
// unknown events are logged and ignored.
func (c *Controller) HandleMessage(msg *protocol.Message) Outcome {
	if msg == nil {
		return Outcome{}
	}
	handler, ok := messageHandlers[msg.Type]
	if !ok {
		c.log.WithField("type", msg.Type).Warn("unknown event ignored")
		return Outcome{}
	}
	out, err := handler(c, msg)
	if err != nil {
		c.log.WithError(err).WithField("type", msg.Type).Warn("undecodable payload ignored")
		return Outcome{}
	}
	return out
}
