// Package wire defines the JSON payload shapes exchanged with clients.
// Byte-level framing belongs to the transport; this package only deals
// with module frames and their typed payloads.
package wire

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// Module tags the transport dispatches on.
const (
	ChatModule  = "chat"
	UsersModule = "users"
)

// Frame type discriminators carried inside a module frame.
const (
	TypeChatMessage         = "ChatMessagePacket"
	TypeChatMessageResponse = "ChatMessageResponsePacket"
	TypeChatHistory         = "ChatHistoryPacket"
	TypeLogin               = "LoginPacket"
	TypeLoginResponse       = "LoginResponsePacket"
)

var validate = validator.New()

// Envelope is the outermost shape of one transport frame.
type Envelope struct {
	Module string          `json:"module" validate:"required"`
	Frame  json.RawMessage `json:"frame" validate:"required"`
}

// Frame wraps a typed payload inside a module envelope.
type Frame struct {
	Type string          `json:"type" validate:"required"`
	Body json.RawMessage `json:"body"`
}

// ChatMessagePacket is used in both directions: inbound as a submission
// (sessionId and messageId set by the client) and outbound as a broadcast
// (timestamp set by the server, sessionId omitted).
type ChatMessagePacket struct {
	SessionID string    `json:"sessionId,omitempty"`
	UUID      string    `json:"uuid"`
	MessageID string    `json:"messageId"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp,omitempty"`
}

// ChatMessageResponsePacket correlates exactly one submission with its outcome.
type ChatMessageResponsePacket struct {
	Success           bool   `json:"success"`
	OriginalMessageID string `json:"originalMessageId"`
	NewMessageID      string `json:"newMessageId"`
	Message           string `json:"message"`
}

// ChatHistoryPacket replays the retained history, oldest first.
type ChatHistoryPacket struct {
	ChatMessages []ChatMessagePacket `json:"chatMessages"`
}

type LoginPacket struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type LoginResponsePacket struct {
	Success   bool   `json:"success"`
	SessionID string `json:"sessionId"`
	UUID      string `json:"uuid"`
	Reason    string `json:"reason,omitempty"`
}

// submission mirrors ChatMessagePacket with the constraints that only
// apply to the inbound direction.
type submission struct {
	SessionID string `validate:"required"`
	UUID      string `validate:"required"`
	MessageID string `validate:"required"`
}

// DecodeEnvelope parses one raw transport frame.
func DecodeEnvelope(data []byte) (Envelope, error) {
	var env Envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return Envelope{}, fmt.Errorf("malformed envelope: %w", err)
	}
	if err := validate.Struct(env); err != nil {
		return Envelope{}, fmt.Errorf("invalid envelope: %w", err)
	}
	return env, nil
}

// EncodeEnvelope wraps an already-encoded frame into a module envelope.
func EncodeEnvelope(module string, frame []byte) ([]byte, error) {
	return json.Marshal(Envelope{Module: module, Frame: frame})
}

// DecodeFrame parses the typed frame carried by an envelope.
func DecodeFrame(data []byte) (Frame, error) {
	var frame Frame
	if err := json.Unmarshal(data, &frame); err != nil {
		return Frame{}, fmt.Errorf("malformed frame: %w", err)
	}
	if err := validate.Struct(frame); err != nil {
		return Frame{}, fmt.Errorf("invalid frame: %w", err)
	}
	return frame, nil
}

// EncodeFrame marshals a typed payload into frame bytes ready for sending.
func EncodeFrame(frameType string, payload any) ([]byte, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal %s: %w", frameType, err)
	}
	return json.Marshal(Frame{Type: frameType, Body: body})
}

// DecodeChatMessage parses and validates an inbound submission.
// All client-supplied identifiers are required; the body may be empty.
func DecodeChatMessage(body []byte) (ChatMessagePacket, error) {
	var pkt ChatMessagePacket
	if err := json.Unmarshal(body, &pkt); err != nil {
		return ChatMessagePacket{}, fmt.Errorf("malformed chat message: %w", err)
	}
	sub := submission{SessionID: pkt.SessionID, UUID: pkt.UUID, MessageID: pkt.MessageID}
	if err := validate.Struct(sub); err != nil {
		return ChatMessagePacket{}, fmt.Errorf("invalid chat message: %w", err)
	}
	return pkt, nil
}

// DecodeLogin parses and validates an inbound login request.
func DecodeLogin(body []byte) (LoginPacket, error) {
	var pkt LoginPacket
	if err := json.Unmarshal(body, &pkt); err != nil {
		return LoginPacket{}, fmt.Errorf("malformed login: %w", err)
	}
	if err := validate.Struct(pkt); err != nil {
		return LoginPacket{}, fmt.Errorf("invalid login: %w", err)
	}
	return pkt, nil
}
