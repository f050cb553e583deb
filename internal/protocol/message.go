// Package protocol defines the websocket envelope and the payloads exchanged with the Lexio server.
package protocol

import (
	"encoding/json"
	"fmt"
)

// Message 基础消息结构
type Message struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// MessageType is the event name carried by every envelope.
type MessageType string

// 客户端 → 服务端 消息类型
const (
	MsgRequestStartGame MessageType = "request_start_game" // host starts a new game
	MsgRequestNewGame   MessageType = "request_new_game"   // play again after game over
	MsgPlayHand         MessageType = "play_hand"          // 出牌
	MsgPassTurn         MessageType = "pass_turn"          // 不出
)

// 服务端 → 客户端 消息类型
const (
	MsgPlayerAssigned    MessageType = "player_assigned"
	MsgWaitingForPlayers MessageType = "waiting_for_players"
	MsgGameStarted       MessageType = "game_started"
	MsgGameUpdate        MessageType = "game_update"
	MsgRoundResult       MessageType = "round_result"
	MsgGameOver          MessageType = "game_over"
	MsgShowLobby         MessageType = "show_lobby"
	MsgPlayerLeft        MessageType = "player_left"
	MsgErrorMessage      MessageType = "error_message"
)

// NewMessage builds an envelope, JSON-encoding payload when it is not nil.
func NewMessage(msgType MessageType, payload any) (*Message, error) {
	msg := &Message{Type: msgType}
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("encode %s payload: %w", msgType, err)
		}
		msg.Payload = data
	}
	return msg, nil
}

// MustNewMessage 创建消息，失败时 panic
func MustNewMessage(msgType MessageType, payload any) *Message {
	msg, err := NewMessage(msgType, payload)
	if err != nil {
		panic(err)
	}
	return msg
}

// ParsePayload 解析消息的 Payload 到指定类型
func ParsePayload[T any](msg *Message) (*T, error) {
	var payload T
	if len(msg.Payload) == 0 {
		return &payload, nil
	}
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		return nil, fmt.Errorf("decode %s payload: %w", msg.Type, err)
	}
	return &payload, nil
}
