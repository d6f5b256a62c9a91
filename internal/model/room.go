package model

import "time"

// RoomCode is a human-shareable identifier for joining rooms
type RoomCode string

// GameState represents the current phase of a room's game
type GameState string

const (
	GameStateLobby GameState = "lobby" // Pre-game, players gathering
	GameStateRound GameState = "round" // Seeker freshly chosen, clients reset local state
	GameStateStart GameState = "start" // Round acknowledged, free chat in progress
	GameStateOver  GameState = "over"  // Terminal, winner set
)

// PlayerStatus is a connectivity flag, not game-relevant state
type PlayerStatus string

const (
	StatusConnected    PlayerStatus = "connected"
	StatusDisconnected PlayerStatus = "disconnected"
)

// PlayerState is the game-relevant liveness of a player
type PlayerState string

const (
	StateAlive PlayerState = "alive"
	StateDead  PlayerState = "dead" // Only via elimination after a wrong guess
)

// Player represents a room participant
type Player struct {
	Email    Identity
	Status   PlayerStatus
	State    PlayerState
	JoinedAt time.Time
}

// Room is the canonical shared game document for one session
type Room struct {
	Code RoomCode

	// Host is the first player recorded in the room; when the host
	// leaves, the room is torn down.
	Host Identity

	// Players is keyed by the sanitized identity so keys stay path-safe.
	Players map[string]Player

	// Seeker is the player hunting the AI this round; empty before the
	// first round. Always a live member of Players while a round runs.
	Seeker Identity

	GameState GameState

	// Winner is set only when GameState is over.
	Winner Identity

	// RoomDeleted signals all other clients to exit; set when the host
	// leaves. The record lingers as a tombstone so the code cannot be
	// silently recreated.
	RoomDeleted bool

	// Roster is the round's visible participant order: the live players
	// shuffled with the AI identity inserted at a random position. Held
	// server-side so every client observes the same ordering.
	Roster []Identity

	CreatedAt time.Time
	UpdatedAt time.Time
}

// GetPlayer returns the player record for an identity and whether it exists
func (r *Room) GetPlayer(id Identity) (Player, bool) {
	p, ok := r.Players[SanitizeIdentity(id)]
	return p, ok
}

// SetPlayer inserts or replaces a player record
func (r *Room) SetPlayer(p Player) {
	if r.Players == nil {
		r.Players = make(map[string]Player)
	}
	r.Players[SanitizeIdentity(p.Email)] = p
}

// RemovePlayer deletes a player record; reports whether it existed
func (r *Room) RemovePlayer(id Identity) bool {
	key := SanitizeIdentity(id)
	if _, ok := r.Players[key]; !ok {
		return false
	}
	delete(r.Players, key)
	return true
}

// AlivePlayers returns the identities of players with state alive,
// in no particular order
func (r *Room) AlivePlayers() []Identity {
	var alive []Identity
	for _, p := range r.Players {
		if p.State == StateAlive {
			alive = append(alive, p.Email)
		}
	}
	return alive
}

// PlayerIdentities returns all member identities, in no particular order
func (r *Room) PlayerIdentities() []Identity {
	ids := make([]Identity, 0, len(r.Players))
	for _, p := range r.Players {
		ids = append(ids, p.Email)
	}
	return ids
}
