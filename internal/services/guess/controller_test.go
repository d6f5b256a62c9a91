package guess

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/aiguessr/aiguessr-go/internal/dependencies/mocks"
	"github.com/aiguessr/aiguessr-go/internal/model"
	"github.com/aiguessr/aiguessr-go/internal/storage/memory"
	"github.com/aiguessr/aiguessr-go/internal/testutil"
)

type ControllerSuite struct {
	suite.Suite
	storage    *memory.Storage
	clock      *mocks.MockClock
	random     *mocks.MockRandom
	controller *Controller
	ctx        context.Context
}

func TestControllerSuite(t *testing.T) {
	suite.Run(t, new(ControllerSuite))
}

func (s *ControllerSuite) SetupTest() {
	s.storage = memory.New()
	s.clock = mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	s.random = mocks.NewMockRandom()
	s.controller = NewController(s.storage, s.clock, s.random, testutil.NopLogger())
	s.ctx = context.Background()
}

func (s *ControllerSuite) setupRound(seeker model.Identity, others ...model.Identity) {
	room := &model.Room{
		Code:      "lobby1",
		Host:      seeker,
		Seeker:    seeker,
		GameState: model.GameStateStart,
		Players:   map[string]model.Player{},
	}
	room.SetPlayer(model.Player{Email: seeker, Status: model.StatusConnected, State: model.StateAlive})
	for _, email := range others {
		room.SetPlayer(model.Player{Email: email, Status: model.StatusConnected, State: model.StateAlive})
	}
	s.Require().NoError(s.storage.SaveRoom(s.ctx, room))

	_ = s.storage.AppendMessage(s.ctx, "lobby1", &model.Message{
		From: seeker, To: model.AIIdentity, Message: "hm",
	})
}

func (s *ControllerSuite) TestOnlySeekerMayGuess() {
	s.setupRound("alice@example.com", "bob@example.com")

	_, err := s.controller.Guess(s.ctx, "lobby1", "bob@example.com", model.AIIdentity)
	s.ErrorIs(err, model.ErrNotSeeker)
}

func (s *ControllerSuite) TestAccusingAIWinsGame() {
	s.setupRound("alice@example.com", "bob@example.com")

	room, err := s.controller.Guess(s.ctx, "lobby1", "alice@example.com", model.AIIdentity)
	s.Require().NoError(err)

	s.Equal(model.GameStateOver, room.GameState)
	s.Equal(model.Identity("alice@example.com"), room.Winner)
}

func (s *ControllerSuite) TestAccusingAIMixedCaseWins() {
	s.setupRound("alice@example.com", "bob@example.com")

	// Any spelling that names the AI counts as unmasking it
	room, err := s.controller.Guess(s.ctx, "lobby1", "alice@example.com", "ChatGPT")
	s.Require().NoError(err)

	s.Equal(model.GameStateOver, room.GameState)
	s.Equal(model.Identity("alice@example.com"), room.Winner)
}

func (s *ControllerSuite) TestGuessClearsMessages() {
	s.setupRound("alice@example.com", "bob@example.com")

	_, err := s.controller.Guess(s.ctx, "lobby1", "alice@example.com", model.AIIdentity)
	s.Require().NoError(err)

	msgs, _ := s.storage.ListMessages(s.ctx, "lobby1")
	s.Empty(msgs)
}

func (s *ControllerSuite) TestWrongGuessKillsSeekerAndContinues() {
	s.setupRound("alice@example.com", "bob@example.com", "carol@example.com", "dave@example.com")

	// Survivors sorted: bob, carol, dave; pick carol as next seeker
	s.random.QueueIntn(1)

	room, err := s.controller.Guess(s.ctx, "lobby1", "alice@example.com", "bob@example.com")
	s.Require().NoError(err)

	s.Equal(model.GameStateRound, room.GameState)
	s.Equal(model.Identity("carol@example.com"), room.Seeker)
	s.Equal(model.Identity(""), room.Winner)

	alice, _ := room.GetPlayer("alice@example.com")
	s.Equal(model.StateDead, alice.State)

	// The accused survives a wrong guess
	bob, _ := room.GetPlayer("bob@example.com")
	s.Equal(model.StateAlive, bob.State)
}

func (s *ControllerSuite) TestWrongGuessRedealsRosterFromSurvivors() {
	s.setupRound("alice@example.com", "bob@example.com", "carol@example.com", "dave@example.com")

	room, err := s.controller.Guess(s.ctx, "lobby1", "alice@example.com", "bob@example.com")
	s.Require().NoError(err)

	// Three survivors plus the AI
	s.Require().Len(room.Roster, 4)

	seen := map[model.Identity]bool{}
	for _, id := range room.Roster {
		seen[id] = true
	}
	s.True(seen[model.AIIdentity])
	s.False(seen["alice@example.com"], "dead seeker should not be dealt in")
}

func (s *ControllerSuite) TestWrongGuessLastSurvivorWins() {
	s.setupRound("alice@example.com", "bob@example.com")

	room, err := s.controller.Guess(s.ctx, "lobby1", "alice@example.com", "bob@example.com")
	s.Require().NoError(err)

	s.Equal(model.GameStateOver, room.GameState)
	s.Equal(model.Identity("bob@example.com"), room.Winner)
}

func (s *ControllerSuite) TestWrongGuessNoSurvivorsAIWins() {
	s.setupRound("alice@example.com")

	room, err := s.controller.Guess(s.ctx, "lobby1", "alice@example.com", "alice@example.com")
	s.ErrorIs(err, model.ErrNoGuessTarget)
	s.Nil(room)

	// A dead bystander leaves nobody to carry on
	s.setupRound("alice@example.com", "bob@example.com")
	stored, _ := s.storage.GetRoom(s.ctx, "lobby1")
	bob, _ := stored.GetPlayer("bob@example.com")
	bob.State = model.StateDead
	stored.SetPlayer(bob)
	_ = s.storage.SaveRoom(s.ctx, stored)

	room, err = s.controller.Guess(s.ctx, "lobby1", "alice@example.com", "bob@example.com")
	s.Require().NoError(err)
	s.Equal(model.GameStateOver, room.GameState)
	s.Equal(model.AIIdentity, room.Winner)
}

func (s *ControllerSuite) TestDeadPlayersExcludedFromNextSeeker() {
	s.setupRound("alice@example.com", "bob@example.com", "carol@example.com")

	stored, _ := s.storage.GetRoom(s.ctx, "lobby1")
	bob, _ := stored.GetPlayer("bob@example.com")
	bob.State = model.StateDead
	stored.SetPlayer(bob)
	_ = s.storage.SaveRoom(s.ctx, stored)

	room, err := s.controller.Guess(s.ctx, "lobby1", "alice@example.com", "carol@example.com")
	s.Require().NoError(err)

	// Carol is the only living human left
	s.Equal(model.GameStateOver, room.GameState)
	s.Equal(model.Identity("carol@example.com"), room.Winner)
}

func (s *ControllerSuite) TestGuessUnknownTarget() {
	s.setupRound("alice@example.com", "bob@example.com")

	_, err := s.controller.Guess(s.ctx, "lobby1", "alice@example.com", "ghost@example.com")
	s.ErrorIs(err, model.ErrNoGuessTarget)
}

func (s *ControllerSuite) TestGuessAfterGameOver() {
	s.setupRound("alice@example.com", "bob@example.com")
	stored, _ := s.storage.GetRoom(s.ctx, "lobby1")
	stored.GameState = model.GameStateOver
	_ = s.storage.SaveRoom(s.ctx, stored)

	_, err := s.controller.Guess(s.ctx, "lobby1", "alice@example.com", model.AIIdentity)
	s.ErrorIs(err, model.ErrGameOver)
}

func (s *ControllerSuite) TestGuessInLobbyState() {
	s.setupRound("alice@example.com", "bob@example.com")
	stored, _ := s.storage.GetRoom(s.ctx, "lobby1")
	stored.GameState = model.GameStateLobby
	_ = s.storage.SaveRoom(s.ctx, stored)

	_, err := s.controller.Guess(s.ctx, "lobby1", "alice@example.com", model.AIIdentity)
	s.ErrorIs(err, model.ErrRoundNotActive)
}
