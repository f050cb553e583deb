// Package codec encodes protocol envelopes for the websocket transport.
package codec

import (
	"fmt"

	"github.com/gorilla/websocket"

	"github.com/palemoky/lexio/internal/protocol"
)

// Codec converts envelopes to and from websocket frames.
type Codec interface {
	Name() string
	Encode(msg *protocol.Message) ([]byte, error)
	Decode(data []byte) (*protocol.Message, error)
	// FrameType is the websocket message type used for encoded frames.
	FrameType() int
}

const (
	NameJSON  = "json"
	NameProto = "proto"
)

// ByName returns the codec registered under name. An empty name selects JSON.
func ByName(name string) (Codec, error) {
	switch name {
	case "", NameJSON:
		return JSON{}, nil
	case NameProto:
		return Proto{}, nil
	default:
		return nil, fmt.Errorf("unknown codec %q", name)
	}
}

// JSON is the default text codec matching the server's native wire format.
type JSON struct{}

func (JSON) Name() string   { return NameJSON }
func (JSON) FrameType() int { return websocket.TextMessage }

// Proto wraps the envelope in a protobuf Struct and sends binary frames.
type Proto struct{}

func (Proto) Name() string   { return NameProto }
func (Proto) FrameType() int { return websocket.BinaryMessage }
