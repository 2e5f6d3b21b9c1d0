package websocket

import (
	"log"
	"time"
)

// EventBroadcaster handles broadcasting WebSocket events.
type EventBroadcaster struct {
	hub *Hub
}

// NewEventBroadcaster creates a new event broadcaster.
func NewEventBroadcaster(hub *Hub) *EventBroadcaster {
	return &EventBroadcaster{hub: hub}
}

// BroadcastStatusChanged sends a status.changed event after a decision is
// applied.
func (b *EventBroadcaster) BroadcastStatusChanged(kind, text, emoji, presence string, expiresAt time.Time, trigger string) {
	payload := StatusChangedPayload{
		Kind:      kind,
		Text:      text,
		Emoji:     emoji,
		Presence:  presence,
		ExpiresAt: expiresAt,
		Trigger:   trigger,
	}

	msg := NewMessage(TypeStatusChanged, payload)
	b.broadcast(msg)
}

// BroadcastDispatchError sends a dispatch.error event for a failed account
// push.
func (b *EventBroadcaster) BroadcastDispatchError(account string, err error) {
	payload := DispatchErrorPayload{
		Account: account,
		Error:   err.Error(),
	}

	msg := NewMessage(TypeDispatchError, payload)
	b.broadcast(msg)
}

// broadcast sends a message to all connected clients.
func (b *EventBroadcaster) broadcast(msg Message) {
	data, err := msg.JSON()
	if err != nil {
		log.Printf("Error encoding WebSocket message: %v", err)
		return
	}

	b.hub.Broadcast(data)
}
