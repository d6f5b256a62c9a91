package room

import (
	"context"
	"errors"
	"sort"

	"github.com/aiguessr/aiguessr-go/internal/dependencies/clock"
	"github.com/aiguessr/aiguessr-go/internal/dependencies/random"
	"github.com/aiguessr/aiguessr-go/internal/model"
	"github.com/aiguessr/aiguessr-go/internal/storage"
)

// Controller manages room membership and the game state machine
type Controller struct {
	storage storage.Storage
	clock   clock.Clock
	random  random.Random
}

// NewController creates a new RoomController
func NewController(
	storage storage.Storage,
	clock clock.Clock,
	random random.Random,
) *Controller {
	return &Controller{
		storage: storage,
		clock:   clock,
		random:  random,
	}
}

// JoinRoom adds a player to a room, creating the room if it does not
// exist. The first player to join an empty room becomes the host.
// Rejoining is idempotent and marks the player connected again.
func (c *Controller) JoinRoom(ctx context.Context, code model.RoomCode, email model.Identity) (*model.Room, error) {
	now := c.clock.Now()

	room, err := c.storage.GetRoom(ctx, code)
	if err != nil {
		if !errors.Is(err, model.ErrRoomNotFound) {
			return nil, err
		}
		room = &model.Room{
			Code:      code,
			GameState: model.GameStateLobby,
			Players:   map[string]model.Player{},
			CreatedAt: now,
		}
	}

	if room.RoomDeleted {
		return nil, model.ErrRoomDeleted
	}

	if existing, ok := room.GetPlayer(email); ok {
		existing.Status = model.StatusConnected
		room.SetPlayer(existing)
	} else {
		room.SetPlayer(model.Player{
			Email:    email,
			Status:   model.StatusConnected,
			State:    model.StateAlive,
			JoinedAt: now,
		})
	}

	// Host election is last-writer-wins on an empty host field
	if room.Host == "" {
		room.Host = email
	}

	room.UpdatedAt = now
	if err := c.storage.SaveRoom(ctx, room); err != nil {
		return nil, err
	}
	return room, nil
}

// GetRoom retrieves a room by code
func (c *Controller) GetRoom(ctx context.Context, code model.RoomCode) (*model.Room, error) {
	room, err := c.storage.GetRoom(ctx, code)
	if err != nil {
		return nil, err
	}
	if room.RoomDeleted {
		return nil, model.ErrRoomDeleted
	}
	return room, nil
}

// StartGame begins a round. Only the host may start. Every player is
// marked alive, a random seeker is chosen, the winner is cleared, and
// a fresh roster is dealt with the AI hidden at a random position.
func (c *Controller) StartGame(ctx context.Context, code model.RoomCode, requester model.Identity) (*model.Room, error) {
	room, err := c.storage.GetRoom(ctx, code)
	if err != nil {
		return nil, err
	}
	if room.RoomDeleted {
		return nil, model.ErrRoomDeleted
	}
	if room.Host != requester {
		return nil, model.ErrNotHost
	}

	if err := c.beginRound(ctx, room); err != nil {
		return nil, err
	}
	return room, nil
}

// RestartGame begins a new round from the end-of-game screen. Any
// player still in the room may trigger it.
func (c *Controller) RestartGame(ctx context.Context, code model.RoomCode, requester model.Identity) (*model.Room, error) {
	room, err := c.storage.GetRoom(ctx, code)
	if err != nil {
		return nil, err
	}
	if room.RoomDeleted {
		return nil, model.ErrRoomDeleted
	}
	if _, ok := room.GetPlayer(requester); !ok {
		return nil, model.ErrNotInRoom
	}

	if err := c.beginRound(ctx, room); err != nil {
		return nil, err
	}
	return room, nil
}

// beginRound resets per-round state on the given room and saves it
func (c *Controller) beginRound(ctx context.Context, room *model.Room) error {
	identities := room.PlayerIdentities()
	if len(identities) == 0 {
		return model.ErrNoPlayers
	}
	sort.Slice(identities, func(i, j int) bool { return identities[i] < identities[j] })

	for key, player := range room.Players {
		player.State = model.StateAlive
		room.Players[key] = player
	}

	room.Seeker = identities[c.random.Intn(len(identities))]
	room.GameState = model.GameStateRound
	room.Winner = ""
	room.Roster = DealRoster(c.random, identities)
	room.UpdatedAt = c.clock.Now()

	if err := c.storage.DeleteMessages(ctx, room.Code); err != nil {
		return err
	}
	return c.storage.SaveRoom(ctx, room)
}

// DealRoster shuffles the player identities and plants the AI at a
// random position so its slot gives nothing away
func DealRoster(rnd random.Random, identities []model.Identity) []model.Identity {
	roster := make([]model.Identity, len(identities))
	copy(roster, identities)

	// Fisher-Yates
	for i := len(roster) - 1; i > 0; i-- {
		j := rnd.Intn(i + 1)
		roster[i], roster[j] = roster[j], roster[i]
	}

	pos := rnd.Intn(len(roster) + 1)
	roster = append(roster, "")
	copy(roster[pos+1:], roster[pos:])
	roster[pos] = model.AIIdentity
	return roster
}

// AcknowledgeRoundStart confirms a client has seen the round-start
// screen, moving the room from the reveal state into active play.
// Acknowledging an already-acknowledged round is a no-op.
func (c *Controller) AcknowledgeRoundStart(ctx context.Context, code model.RoomCode) (*model.Room, error) {
	room, err := c.storage.GetRoom(ctx, code)
	if err != nil {
		return nil, err
	}
	if room.RoomDeleted {
		return nil, model.ErrRoomDeleted
	}

	if room.GameState == model.GameStateStart {
		return room, nil
	}
	if room.GameState != model.GameStateRound {
		return nil, model.ErrRoundNotActive
	}

	room.GameState = model.GameStateStart
	room.UpdatedAt = c.clock.Now()
	if err := c.storage.SaveRoom(ctx, room); err != nil {
		return nil, err
	}
	return room, nil
}

// LeaveRoom removes a player. When the host leaves, the whole room is
// torn down: the chat log is wiped and the room is flagged deleted so
// every later request against it fails with a gone error. When the
// seeker leaves mid-round the hunt is handed to a remaining live
// player, so the seeker is always a current member.
func (c *Controller) LeaveRoom(ctx context.Context, code model.RoomCode, email model.Identity) error {
	room, err := c.storage.GetRoom(ctx, code)
	if err != nil {
		return err
	}
	if room.RoomDeleted {
		return model.ErrRoomDeleted
	}

	if _, ok := room.GetPlayer(email); !ok {
		return model.ErrNotInRoom
	}

	if room.Host == email {
		room.RoomDeleted = true
		room.UpdatedAt = c.clock.Now()
		if err := c.storage.DeleteMessages(ctx, code); err != nil {
			return err
		}
		return c.storage.SaveRoom(ctx, room)
	}

	room.RemovePlayer(email)
	room.UpdatedAt = c.clock.Now()

	if len(room.Players) == 0 {
		return c.storage.DeleteRoom(ctx, code)
	}

	if room.Seeker == email &&
		(room.GameState == model.GameStateRound || room.GameState == model.GameStateStart) {
		if err := c.reseatSeeker(ctx, room); err != nil {
			return err
		}
	}
	return c.storage.SaveRoom(ctx, room)
}

// reseatSeeker hands the hunt to a remaining live player after the
// seeker leaves mid-round. The chat log is wiped and a fresh roster is
// dealt; with one live player left that survivor wins outright, and
// with none left the AI takes the game.
func (c *Controller) reseatSeeker(ctx context.Context, room *model.Room) error {
	var alive []model.Identity
	for _, id := range room.AlivePlayers() {
		if model.IsAIIdentity(id) {
			continue
		}
		alive = append(alive, id)
	}
	sort.Slice(alive, func(i, j int) bool { return alive[i] < alive[j] })

	switch {
	case len(alive) > 1:
		room.Seeker = alive[c.random.Intn(len(alive))]
		room.GameState = model.GameStateRound
		room.Roster = DealRoster(c.random, alive)
	case len(alive) == 1:
		room.Seeker = ""
		room.Winner = alive[0]
		room.GameState = model.GameStateOver
	default:
		room.Seeker = ""
		room.Winner = model.AIIdentity
		room.GameState = model.GameStateOver
	}

	return c.storage.DeleteMessages(ctx, room.Code)
}

// Interface for dependency injection
type ControllerInterface interface {
	JoinRoom(ctx context.Context, code model.RoomCode, email model.Identity) (*model.Room, error)
	GetRoom(ctx context.Context, code model.RoomCode) (*model.Room, error)
	StartGame(ctx context.Context, code model.RoomCode, requester model.Identity) (*model.Room, error)
	RestartGame(ctx context.Context, code model.RoomCode, requester model.Identity) (*model.Room, error)
	AcknowledgeRoundStart(ctx context.Context, code model.RoomCode) (*model.Room, error)
	LeaveRoom(ctx context.Context, code model.RoomCode, email model.Identity) error
}

var _ ControllerInterface = (*Controller)(nil)
