package codec

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/palemoky/lexio/internal/protocol"
)

var errMissingType = errors.New("message has no type")

// Encode 将消息编码为 JSON 字节
func (JSON) Encode(msg *protocol.Message) ([]byte, error) {
	buf := GetBuffer()
	defer PutBuffer(buf)

	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(msg); err != nil {
		return nil, fmt.Errorf("encode %s: %w", msg.Type, err)
	}
	// Encoder appends a newline; the copy detaches the result from the pooled buffer.
	return append([]byte(nil), bytes.TrimRight(buf.Bytes(), "\n")...), nil
}

// Decode 从 JSON 字节解码消息
func (JSON) Decode(data []byte) (*protocol.Message, error) {
	var msg protocol.Message
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, fmt.Errorf("decode envelope: %w", err)
	}
	if msg.Type == "" {
		return nil, errMissingType
	}
	if bytes.Equal(bytes.TrimSpace(msg.Payload), []byte("null")) {
		msg.Payload = nil
	}
	return &msg, nil
}
