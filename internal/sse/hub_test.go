package sse

import (
	"testing"
	"time"

	"github.com/aiguessr/aiguessr-go/internal/model"
	"github.com/aiguessr/aiguessr-go/internal/testutil"
)

func TestFormatSSEMessage(t *testing.T) {
	tests := []struct {
		name      string
		eventName string
		data      string
		expected  string
	}{
		{
			name:      "single line data",
			eventName: "room-update",
			data:      `{"gameState":"round"}`,
			expected:  "event: room-update\ndata: {\"gameState\":\"round\"}\n\n",
		},
		{
			name:      "multi-line data",
			eventName: "message_added",
			data:      "line1\nline2",
			expected:  "event: message_added\ndata: line1\ndata: line2\n\n",
		},
		{
			name:      "empty data",
			eventName: "ping",
			data:      "",
			expected:  "event: ping\ndata: \n\n",
		},
		{
			name:      "data with carriage returns",
			eventName: "test",
			data:      "line1\r\nline2",
			expected:  "event: test\ndata: line1\ndata: line2\n\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := formatSSEMessage(tt.eventName, tt.data)
			if string(result) != tt.expected {
				t.Errorf("formatSSEMessage(%q, %q)\ngot:  %q\nwant: %q",
					tt.eventName, tt.data, string(result), tt.expected)
			}
		})
	}
}

func TestHub_RegisterAndBroadcast(t *testing.T) {
	hub := NewHub("lobby1", testutil.NopLogger())
	go hub.Run()
	defer hub.Close()

	client := NewClient(hub, "alice@example.com")
	hub.Register(client)

	// Give the hub time to process registration
	time.Sleep(10 * time.Millisecond)

	if hub.ClientCount() != 1 {
		t.Errorf("ClientCount() = %d, want 1", hub.ClientCount())
	}

	hub.BroadcastEvent("test-event", "test data")

	select {
	case msg := <-client.send:
		expected := "event: test-event\ndata: test data\n\n"
		if string(msg) != expected {
			t.Errorf("client received %q, want %q", string(msg), expected)
		}
	case <-time.After(100 * time.Millisecond):
		t.Error("client did not receive message")
	}
}

func TestHub_Unregister(t *testing.T) {
	hub := NewHub("lobby1", testutil.NopLogger())
	go hub.Run()
	defer hub.Close()

	client := NewClient(hub, "alice@example.com")
	hub.Register(client)

	time.Sleep(10 * time.Millisecond)

	hub.Unregister(client)
	time.Sleep(10 * time.Millisecond)

	if hub.ClientCount() != 0 {
		t.Errorf("ClientCount() = %d after unregister, want 0", hub.ClientCount())
	}
}

func TestHub_SendEventToTargetsOnly(t *testing.T) {
	hub := NewHub("lobby1", testutil.NopLogger())
	go hub.Run()
	defer hub.Close()

	alice := NewClient(hub, "alice@example.com")
	bob := NewClient(hub, "bob@example.com")
	carol := NewClient(hub, "carol@example.com")
	hub.Register(alice)
	hub.Register(bob)
	hub.Register(carol)

	time.Sleep(10 * time.Millisecond)

	hub.SendEventTo("message_added", "secret", "alice@example.com", "bob@example.com")

	for _, client := range []*Client{alice, bob} {
		select {
		case msg := <-client.send:
			expected := "event: message_added\ndata: secret\n\n"
			if string(msg) != expected {
				t.Errorf("%s received %q, want %q", client.email, string(msg), expected)
			}
		case <-time.After(100 * time.Millisecond):
			t.Errorf("%s did not receive message", client.email)
		}
	}

	select {
	case msg := <-carol.send:
		t.Errorf("bystander received %q, want nothing", string(msg))
	case <-time.After(50 * time.Millisecond):
	}
}

func TestHub_SendEventToSkipsAI(t *testing.T) {
	hub := NewHub("lobby1", testutil.NopLogger())
	go hub.Run()
	defer hub.Close()

	alice := NewClient(hub, "alice@example.com")
	hub.Register(alice)
	time.Sleep(10 * time.Millisecond)

	// The AI never has a connection; addressing it must not panic
	hub.SendEventTo("message_added", "hi", "alice@example.com", model.AIIdentity)

	select {
	case <-alice.send:
	case <-time.After(100 * time.Millisecond):
		t.Error("alice did not receive message")
	}
}

func TestHubManager_GetOrCreateHub(t *testing.T) {
	manager := NewHubManager(testutil.NopLogger())

	hub1 := manager.GetOrCreateHub("lobby1")
	if hub1 == nil {
		t.Fatal("GetOrCreateHub returned nil")
	}

	hub2 := manager.GetOrCreateHub("lobby1")
	if hub1 != hub2 {
		t.Error("GetOrCreateHub returned different hub for same code")
	}

	hub3 := manager.GetOrCreateHub("lobby2")
	if hub3 == hub1 {
		t.Error("GetOrCreateHub returned same hub for different code")
	}

	manager.RemoveHub("lobby1")
	manager.RemoveHub("lobby2")
}

func TestHubManager_GetHub(t *testing.T) {
	manager := NewHubManager(testutil.NopLogger())

	if hub := manager.GetHub("nope"); hub != nil {
		t.Error("GetHub returned non-nil for non-existent hub")
	}

	created := manager.GetOrCreateHub("lobby1")
	if got := manager.GetHub("lobby1"); got != created {
		t.Error("GetHub returned different hub than GetOrCreateHub")
	}

	manager.RemoveHub("lobby1")
}

func TestHubManager_CleanupEmptyHubs(t *testing.T) {
	manager := NewHubManager(testutil.NopLogger())

	manager.GetOrCreateHub("empty1")

	active := manager.GetOrCreateHub("active1")
	client := NewClient(active, "alice@example.com")
	active.Register(client)
	time.Sleep(10 * time.Millisecond)

	manager.CleanupEmptyHubs()

	if manager.GetHub("empty1") != nil {
		t.Error("Empty hub still exists after cleanup")
	}
	if manager.GetHub("active1") == nil {
		t.Error("Active hub was removed during cleanup")
	}

	manager.RemoveHub("active1")
}
