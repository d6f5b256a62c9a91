package model

import "time"

// EventType identifies the type of event pushed to subscribed clients
type EventType string

const (
	// Room events
	EventPlayerJoined EventType = "player_joined"
	EventPlayerLeft   EventType = "player_left"
	EventRoundStarted EventType = "round_started"
	EventRoundAcked   EventType = "round_acked"
	EventGameOver     EventType = "game_over"
	EventRoomDeleted  EventType = "room_deleted"

	// Chat events
	EventMessageAdded EventType = "message_added"
)

// Event is the base structure for all pushed events
type Event struct {
	Type      EventType
	Timestamp time.Time
	RoomCode  RoomCode
	Payload   any
}

// PlayerJoinedPayload contains data for player joined events
type PlayerJoinedPayload struct {
	Player Player
	IsHost bool
}

// PlayerLeftPayload contains data for player left events
type PlayerLeftPayload struct {
	Identity Identity
	WasHost  bool
}

// RoundStartedPayload contains data for round started events
type RoundStartedPayload struct {
	Seeker Identity
	Roster []Identity
}

// GameOverPayload contains data for game over events
type GameOverPayload struct {
	Winner Identity
}

// MessageAddedPayload contains data for message appended events
type MessageAddedPayload struct {
	Message Message
}
