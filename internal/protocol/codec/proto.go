package codec

import (
	"fmt"

	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/palemoky/lexio/internal/protocol"
)

const (
	fieldType    = "type"
	fieldPayload = "payload"
)

// Encode 将消息编码为 Protobuf 字节
func (Proto) Encode(msg *protocol.Message) ([]byte, error) {
	envelope := &structpb.Struct{Fields: map[string]*structpb.Value{
		fieldType: structpb.NewStringValue(string(msg.Type)),
	}}

	if len(msg.Payload) > 0 {
		payload := &structpb.Value{}
		if err := protojson.Unmarshal(msg.Payload, payload); err != nil {
			return nil, fmt.Errorf("encode %s payload: %w", msg.Type, err)
		}
		envelope.Fields[fieldPayload] = payload
	}

	return proto.Marshal(envelope)
}

// Decode 从 Protobuf 字节解码消息
func (Proto) Decode(data []byte) (*protocol.Message, error) {
	envelope := &structpb.Struct{}
	if err := proto.Unmarshal(data, envelope); err != nil {
		return nil, fmt.Errorf("decode envelope: %w", err)
	}

	msgType := envelope.GetFields()[fieldType].GetStringValue()
	if msgType == "" {
		return nil, errMissingType
	}
	msg := &protocol.Message{Type: protocol.MessageType(msgType)}

	if payload, ok := envelope.GetFields()[fieldPayload]; ok {
		if _, isNull := payload.GetKind().(*structpb.Value_NullValue); !isNull {
			raw, err := protojson.Marshal(payload)
			if err != nil {
				return nil, fmt.Errorf("decode %s payload: %w", msgType, err)
			}
			msg.Payload = raw
		}
	}
	return msg, nil
}
