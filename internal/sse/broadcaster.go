package sse

import (
	"encoding/json"
	"log/slog"

	"github.com/aiguessr/aiguessr-go/internal/dependencies/clock"
	"github.com/aiguessr/aiguessr-go/internal/model"
)

// Broadcaster pushes game events to SSE clients as JSON
type Broadcaster struct {
	hubManager *HubManager
	clock      clock.Clock
	logger     *slog.Logger
}

// NewBroadcaster creates a new Broadcaster
func NewBroadcaster(hubManager *HubManager, clk clock.Clock, logger *slog.Logger) *Broadcaster {
	return &Broadcaster{
		hubManager: hubManager,
		clock:      clk,
		logger:     logger.With(slog.String("component", "sse-broadcaster")),
	}
}

// BroadcastEvent sends an event to every client in the room
func (b *Broadcaster) BroadcastEvent(code model.RoomCode, eventType model.EventType, payload any) {
	hub := b.hubManager.GetHub(code)
	if hub == nil {
		return
	}

	data, ok := b.encode(code, eventType, payload)
	if !ok {
		return
	}
	hub.BroadcastEvent(string(eventType), data)
}

// BroadcastMessage delivers a chat message event to its participants
// only. The AI has no connection, so its slot is simply skipped.
func (b *Broadcaster) BroadcastMessage(code model.RoomCode, msg *model.Message) {
	hub := b.hubManager.GetHub(code)
	if hub == nil {
		return
	}

	data, ok := b.encode(code, model.EventMessageAdded, model.MessageAddedPayload{Message: *msg})
	if !ok {
		return
	}

	var recipients []model.Identity
	for _, email := range []model.Identity{msg.From, msg.To} {
		if email != model.AIIdentity {
			recipients = append(recipients, email)
		}
	}
	hub.SendEventTo(string(model.EventMessageAdded), data, recipients...)
}

// BroadcastRoomDeleted tells every client the room is gone, then
// tears down the hub
func (b *Broadcaster) BroadcastRoomDeleted(code model.RoomCode) {
	hub := b.hubManager.GetHub(code)
	if hub == nil {
		return
	}
	if data, ok := b.encode(code, model.EventRoomDeleted, nil); ok {
		hub.SendEventNow(string(model.EventRoomDeleted), data)
	}
	b.hubManager.RemoveHub(code)
}

func (b *Broadcaster) encode(code model.RoomCode, eventType model.EventType, payload any) (string, bool) {
	event := model.Event{
		Type:      eventType,
		Timestamp: b.clock.Now(),
		RoomCode:  code,
		Payload:   payload,
	}

	data, err := json.Marshal(event)
	if err != nil {
		b.logger.Error("sse failed to encode event",
			slog.String("room", string(code)),
			slog.String("event_type", string(eventType)),
			slog.Any("error", err))
		return "", false
	}
	return string(data), true
}
