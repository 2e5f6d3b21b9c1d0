package websocket

import (
	"encoding/json"
	"time"
)

// MessageType identifies the type of WebSocket message.
type MessageType string

const (
	// Server -> Client event types
	TypeStatusChanged MessageType = "status.changed"
	TypeDispatchError MessageType = "dispatch.error"

	// Client -> Server command types
	TypePing MessageType = "ping"

	// Server -> Client response types
	TypePong  MessageType = "pong"
	TypeError MessageType = "error"
)

// Message represents a WebSocket message envelope.
type Message struct {
	Type      MessageType `json:"type"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   any         `json:"payload"`
}

// NewMessage creates a new message with the current timestamp.
func NewMessage(msgType MessageType, payload any) Message {
	return Message{
		Type:      msgType,
		Timestamp: time.Now().UTC(),
		Payload:   payload,
	}
}

// JSON serializes the message to JSON bytes.
func (m Message) JSON() ([]byte, error) {
	return json.Marshal(m)
}

// StatusChangedPayload is the payload for status.changed events.
type StatusChangedPayload struct {
	Kind      string    `json:"kind"`
	Text      string    `json:"text"`
	Emoji     string    `json:"emoji"`
	Presence  string    `json:"presence"`
	ExpiresAt time.Time `json:"expires_at,omitempty"`
	Trigger   string    `json:"trigger,omitempty"`
}

// DispatchErrorPayload is the payload for dispatch.error events.
type DispatchErrorPayload struct {
	Account string `json:"account"`
	Error   string `json:"error"`
}

// ErrorPayload is the payload for error messages.
type ErrorPayload struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
