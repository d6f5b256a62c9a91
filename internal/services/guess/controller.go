package guess

import (
	"context"
	"log/slog"
	"sort"

	"github.com/aiguessr/aiguessr-go/internal/dependencies/clock"
	"github.com/aiguessr/aiguessr-go/internal/dependencies/random"
	"github.com/aiguessr/aiguessr-go/internal/model"
	"github.com/aiguessr/aiguessr-go/internal/services/room"
	"github.com/aiguessr/aiguessr-go/internal/storage"
)

// Controller resolves the seeker's end-of-round accusation
type Controller struct {
	storage storage.Storage
	clock   clock.Clock
	random  random.Random
	logger  *slog.Logger
}

// NewController creates a new GuessController
func NewController(
	store storage.Storage,
	clk clock.Clock,
	rnd random.Random,
	logger *slog.Logger,
) *Controller {
	return &Controller{
		storage: store,
		clock:   clk,
		random:  rnd,
		logger:  logger.With(slog.String("component", "guess-controller")),
	}
}

// Guess resolves the seeker's accusation. Naming the AI ends the game
// with the seeker as winner. Naming a human costs the seeker their
// life: with several humans left the hunt continues under a new
// seeker, with one human left that survivor wins, and with none left
// the AI takes the game. Either way the room's chat log is wiped.
func (c *Controller) Guess(ctx context.Context, code model.RoomCode, guesser, accused model.Identity) (*model.Room, error) {
	rm, err := c.storage.GetRoom(ctx, code)
	if err != nil {
		return nil, err
	}
	if rm.RoomDeleted {
		return nil, model.ErrRoomDeleted
	}
	switch rm.GameState {
	case model.GameStateStart, model.GameStateRound:
	case model.GameStateOver:
		return nil, model.ErrGameOver
	default:
		return nil, model.ErrRoundNotActive
	}

	if guesser != rm.Seeker {
		return nil, model.ErrNotSeeker
	}
	if accused == "" || accused == guesser {
		return nil, model.ErrNoGuessTarget
	}
	accusedAI := model.IsAIIdentity(accused)
	if !accusedAI {
		if _, ok := rm.GetPlayer(accused); !ok {
			return nil, model.ErrNoGuessTarget
		}
	}

	if err := c.storage.DeleteMessages(ctx, code); err != nil {
		return nil, err
	}

	if accusedAI {
		rm.Winner = guesser
		rm.GameState = model.GameStateOver

		c.logger.Info("ai unmasked",
			slog.String("room_code", string(code)),
			slog.String("winner", string(guesser)),
		)
	} else {
		c.resolveWrongGuess(rm)
	}

	rm.UpdatedAt = c.clock.Now()
	if err := c.storage.SaveRoom(ctx, rm); err != nil {
		return nil, err
	}
	return rm, nil
}

// resolveWrongGuess eliminates the seeker and either continues the
// hunt or ends the game, depending on how many humans remain
func (c *Controller) resolveWrongGuess(rm *model.Room) {
	if player, ok := rm.GetPlayer(rm.Seeker); ok {
		player.State = model.StateDead
		rm.SetPlayer(player)
	}

	survivors := survivorIdentities(rm)

	switch {
	case len(survivors) > 1:
		rm.Seeker = survivors[c.random.Intn(len(survivors))]
		rm.GameState = model.GameStateRound
		rm.Roster = room.DealRoster(c.random, survivors)

		c.logger.Info("hunt continues",
			slog.String("room_code", string(rm.Code)),
			slog.String("seeker", string(rm.Seeker)),
			slog.Int("survivors", len(survivors)),
		)
	case len(survivors) == 1:
		rm.Winner = survivors[0]
		rm.GameState = model.GameStateOver

		c.logger.Info("last human standing",
			slog.String("room_code", string(rm.Code)),
			slog.String("winner", string(rm.Winner)),
		)
	default:
		rm.Winner = model.AIIdentity
		rm.GameState = model.GameStateOver

		c.logger.Info("ai outlasted the humans",
			slog.String("room_code", string(rm.Code)),
		)
	}
}

// survivorIdentities lists the living humans, sorted for a stable
// random pick
func survivorIdentities(rm *model.Room) []model.Identity {
	var survivors []model.Identity
	for _, player := range rm.Players {
		if player.State != model.StateAlive {
			continue
		}
		if player.Email == rm.Seeker || model.IsAIIdentity(player.Email) {
			continue
		}
		survivors = append(survivors, player.Email)
	}
	sort.Slice(survivors, func(i, j int) bool { return survivors[i] < survivors[j] })
	return survivors
}

// Interface for dependency injection
type ControllerInterface interface {
	Guess(ctx context.Context, code model.RoomCode, guesser, accused model.Identity) (*model.Room, error)
}

var _ ControllerInterface = (*Controller)(nil)
