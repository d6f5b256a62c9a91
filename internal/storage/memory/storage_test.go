package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/aiguessr/aiguessr-go/internal/model"
	"github.com/aiguessr/aiguessr-go/internal/storage"
)

type StorageSuite struct {
	suite.Suite
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.storage = New()
	s.ctx = context.Background()
}

// Room tests

func (s *StorageSuite) TestSaveAndGetRoom() {
	room := &model.Room{
		Code:      "lobby1",
		Host:      "alice@example.com",
		GameState: model.GameStateLobby,
		Players: map[string]model.Player{
			"alice@example_com": {Email: "alice@example.com", Status: model.StatusConnected, State: model.StateAlive},
		},
	}

	err := s.storage.SaveRoom(s.ctx, room)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetRoom(s.ctx, "lobby1")
	s.Require().NoError(err)
	s.Equal(room.Code, retrieved.Code)
	s.Equal(room.Host, retrieved.Host)
	s.Len(retrieved.Players, 1)
}

func (s *StorageSuite) TestGetRoomNotFound() {
	_, err := s.storage.GetRoom(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrRoomNotFound)
}

func (s *StorageSuite) TestRoomExists() {
	exists, err := s.storage.RoomExists(s.ctx, "lobby1")
	s.Require().NoError(err)
	s.False(exists)

	_ = s.storage.SaveRoom(s.ctx, &model.Room{Code: "lobby1"})

	exists, err = s.storage.RoomExists(s.ctx, "lobby1")
	s.Require().NoError(err)
	s.True(exists)
}

func (s *StorageSuite) TestDeleteRoomRemovesMessages() {
	_ = s.storage.SaveRoom(s.ctx, &model.Room{Code: "lobby1"})
	_ = s.storage.AppendMessage(s.ctx, "lobby1", &model.Message{
		From:    "alice@example.com",
		To:      "chatgpt",
		Message: "hello",
	})

	err := s.storage.DeleteRoom(s.ctx, "lobby1")
	s.Require().NoError(err)

	_, err = s.storage.GetRoom(s.ctx, "lobby1")
	s.ErrorIs(err, model.ErrRoomNotFound)

	msgs, err := s.storage.ListMessages(s.ctx, "lobby1")
	s.Require().NoError(err)
	s.Empty(msgs)
}

// Message tests

func (s *StorageSuite) TestAppendAndListMessages() {
	msg1 := &model.Message{From: "alice@example.com", To: "bob@example.com", Message: "hi"}
	msg2 := &model.Message{From: "bob@example.com", To: "alice@example.com", Message: "hey"}

	s.Require().NoError(s.storage.AppendMessage(s.ctx, "lobby1", msg1))
	s.Require().NoError(s.storage.AppendMessage(s.ctx, "lobby1", msg2))

	msgs, err := s.storage.ListMessages(s.ctx, "lobby1")
	s.Require().NoError(err)
	s.Require().Len(msgs, 2)
	s.Equal("hi", msgs[0].Message)
	s.Equal("hey", msgs[1].Message)
}

func (s *StorageSuite) TestAppendMessageAssignsIDAndTimestamp() {
	msg := &model.Message{From: "alice@example.com", To: "chatgpt", Message: "hello"}
	s.Require().NoError(s.storage.AppendMessage(s.ctx, "lobby1", msg))

	s.NotEmpty(msg.ID)
	s.NotZero(msg.Timestamp)
}

func (s *StorageSuite) TestAppendMessageTimestampsMonotonic() {
	var prev int64
	for i := 0; i < 10; i++ {
		msg := &model.Message{From: "a@x.com", To: "b@x.com", Message: "m"}
		s.Require().NoError(s.storage.AppendMessage(s.ctx, "lobby1", msg))
		s.True(msg.Timestamp > prev, "timestamps should strictly increase")
		prev = msg.Timestamp
	}
}

func (s *StorageSuite) TestMessagesIsolatedPerRoom() {
	_ = s.storage.AppendMessage(s.ctx, "lobby1", &model.Message{From: "a@x.com", To: "b@x.com", Message: "one"})
	_ = s.storage.AppendMessage(s.ctx, "lobby2", &model.Message{From: "c@x.com", To: "d@x.com", Message: "two"})

	msgs, err := s.storage.ListMessages(s.ctx, "lobby1")
	s.Require().NoError(err)
	s.Require().Len(msgs, 1)
	s.Equal("one", msgs[0].Message)
}

func (s *StorageSuite) TestDeleteMessages() {
	_ = s.storage.AppendMessage(s.ctx, "lobby1", &model.Message{From: "a@x.com", To: "b@x.com", Message: "m"})

	err := s.storage.DeleteMessages(s.ctx, "lobby1")
	s.Require().NoError(err)

	msgs, err := s.storage.ListMessages(s.ctx, "lobby1")
	s.Require().NoError(err)
	s.Empty(msgs)
}

// Account tests

func (s *StorageSuite) TestSaveAndGetAccount() {
	account := &storage.Account{
		Email:        "alice@example.com",
		PasswordHash: "hash123",
		CreatedAt:    time.Now(),
	}

	err := s.storage.SaveAccount(s.ctx, account)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetAccount(s.ctx, "alice@example.com")
	s.Require().NoError(err)
	s.Equal(account.Email, retrieved.Email)
	s.Equal(account.PasswordHash, retrieved.PasswordHash)
}

func (s *StorageSuite) TestGetAccountNotFound() {
	_, err := s.storage.GetAccount(s.ctx, "nobody@example.com")
	s.ErrorIs(err, model.ErrPlayerNotFound)
}

// Prompt tests

func (s *StorageSuite) TestGetPromptNotSet() {
	_, err := s.storage.GetPrompt(s.ctx)
	s.ErrorIs(err, model.ErrPromptNotSet)
}

func (s *StorageSuite) TestSaveAndGetPrompt() {
	err := s.storage.SavePrompt(s.ctx, "pretend to be human")
	s.Require().NoError(err)

	prompt, err := s.storage.GetPrompt(s.ctx)
	s.Require().NoError(err)
	s.Equal("pretend to be human", prompt)
}

// Leaderboard tests

func (s *StorageSuite) TestTopQuestionScoresSorted() {
	scores := []*storage.QuestionScore{
		{Username: "alice", TotalPoints: 30},
		{Username: "bob", TotalPoints: 50},
		{Username: "carol", TotalPoints: 10},
	}
	for _, score := range scores {
		s.Require().NoError(s.storage.SaveQuestionScore(s.ctx, score))
	}

	top, err := s.storage.TopQuestionScores(s.ctx, 10)
	s.Require().NoError(err)
	s.Require().Len(top, 3)
	s.Equal("bob", top[0].Username)
	s.Equal("alice", top[1].Username)
	s.Equal("carol", top[2].Username)
}

func (s *StorageSuite) TestTopQuestionScoresLimit() {
	for i := 0; i < 5; i++ {
		_ = s.storage.SaveQuestionScore(s.ctx, &storage.QuestionScore{TotalPoints: i})
	}

	top, err := s.storage.TopQuestionScores(s.ctx, 2)
	s.Require().NoError(err)
	s.Len(top, 2)
}

func (s *StorageSuite) TestSaveFingerprint() {
	err := s.storage.SaveFingerprint(s.ctx, "fp-123", time.Now())
	s.Require().NoError(err)
}
