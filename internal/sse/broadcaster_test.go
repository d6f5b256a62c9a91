package sse

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/aiguessr/aiguessr-go/internal/dependencies/mocks"
	"github.com/aiguessr/aiguessr-go/internal/model"
	"github.com/aiguessr/aiguessr-go/internal/testutil"
)

func newTestBroadcaster() (*Broadcaster, *HubManager) {
	logger := testutil.NopLogger()
	manager := NewHubManager(logger)
	clk := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	return NewBroadcaster(manager, clk, logger), manager
}

func receiveEvent(t *testing.T, client *Client) model.Event {
	t.Helper()
	select {
	case raw := <-client.send:
		payload := strings.TrimPrefix(string(raw), "event: ")
		idx := strings.Index(payload, "\ndata: ")
		if idx < 0 {
			t.Fatalf("malformed SSE frame: %q", string(raw))
		}
		data := strings.TrimSuffix(payload[idx+len("\ndata: "):], "\n\n")

		var event model.Event
		if err := json.Unmarshal([]byte(data), &event); err != nil {
			t.Fatalf("failed to decode event %q: %v", data, err)
		}
		return event
	case <-time.After(100 * time.Millisecond):
		t.Fatal("client did not receive event")
		return model.Event{}
	}
}

func TestBroadcaster_BroadcastEvent(t *testing.T) {
	broadcaster, manager := newTestBroadcaster()

	hub := manager.GetOrCreateHub("ROOM1")
	defer manager.RemoveHub("ROOM1")

	client := NewClient(hub, "alice@example.com")
	hub.Register(client)
	time.Sleep(10 * time.Millisecond)

	broadcaster.BroadcastEvent("ROOM1", model.EventGameOver, model.GameOverPayload{Winner: "alice@example.com"})

	event := receiveEvent(t, client)
	if event.Type != model.EventGameOver {
		t.Errorf("event.Type = %q, want %q", event.Type, model.EventGameOver)
	}
	if event.RoomCode != "ROOM1" {
		t.Errorf("event.RoomCode = %q, want ROOM1", event.RoomCode)
	}
	want := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	if !event.Timestamp.Equal(want) {
		t.Errorf("event.Timestamp = %v, want %v", event.Timestamp, want)
	}
}

func TestBroadcaster_BroadcastEventNoHub(t *testing.T) {
	broadcaster, _ := newTestBroadcaster()

	// No hub exists for this code; must not panic
	broadcaster.BroadcastEvent("GHOST", model.EventGameOver, nil)
}

func TestBroadcaster_BroadcastMessageTargetsParticipants(t *testing.T) {
	broadcaster, manager := newTestBroadcaster()

	hub := manager.GetOrCreateHub("ROOM1")
	defer manager.RemoveHub("ROOM1")

	alice := NewClient(hub, "alice@example.com")
	bob := NewClient(hub, "bob@example.com")
	carol := NewClient(hub, "carol@example.com")
	hub.Register(alice)
	hub.Register(bob)
	hub.Register(carol)
	time.Sleep(10 * time.Millisecond)

	msg := &model.Message{
		ID:      "m000001",
		From:    "alice@example.com",
		To:      "bob@example.com",
		Message: "are you human?",
	}
	broadcaster.BroadcastMessage("ROOM1", msg)

	for _, client := range []*Client{alice, bob} {
		event := receiveEvent(t, client)
		if event.Type != model.EventMessageAdded {
			t.Errorf("%s got event.Type = %q, want %q", client.email, event.Type, model.EventMessageAdded)
		}
	}

	select {
	case raw := <-carol.send:
		t.Errorf("bystander received %q, want nothing", string(raw))
	case <-time.After(50 * time.Millisecond):
	}
}

func TestBroadcaster_BroadcastMessageToAI(t *testing.T) {
	broadcaster, manager := newTestBroadcaster()

	hub := manager.GetOrCreateHub("ROOM1")
	defer manager.RemoveHub("ROOM1")

	alice := NewClient(hub, "alice@example.com")
	hub.Register(alice)
	time.Sleep(10 * time.Millisecond)

	msg := &model.Message{
		ID:      "m000001",
		From:    "alice@example.com",
		To:      model.AIIdentity,
		Message: "hello there",
	}
	broadcaster.BroadcastMessage("ROOM1", msg)

	// Only the sender gets the echo; the AI slot is skipped
	event := receiveEvent(t, alice)
	if event.Type != model.EventMessageAdded {
		t.Errorf("event.Type = %q, want %q", event.Type, model.EventMessageAdded)
	}
}

func TestBroadcaster_BroadcastRoomDeleted(t *testing.T) {
	broadcaster, manager := newTestBroadcaster()

	hub := manager.GetOrCreateHub("ROOM1")
	client := NewClient(hub, "alice@example.com")
	hub.Register(client)
	time.Sleep(10 * time.Millisecond)

	broadcaster.BroadcastRoomDeleted("ROOM1")

	event := receiveEvent(t, client)
	if event.Type != model.EventRoomDeleted {
		t.Errorf("event.Type = %q, want %q", event.Type, model.EventRoomDeleted)
	}

	if manager.GetHub("ROOM1") != nil {
		t.Error("hub still exists after room deleted broadcast")
	}
}
