package storage

import (
	"context"
	"time"

	"github.com/aiguessr/aiguessr-go/internal/model"
)

// Account is a registered player record. Stored separately from room
// membership so the password hash never travels with game state.
type Account struct {
	Email        model.Identity
	PasswordHash string
	Role         string // optional; "admin" unlocks prompt administration
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// QuestionScore is one scored leaderboard submission
type QuestionScore struct {
	Email          model.Identity
	Username       string
	Fingerprint    string
	Input          string
	Relevance      int
	Clarity        int
	Originality    int
	HumanLikeness  int
	Engagement     int
	TotalPoints    int
	Explanation    string
	SubmittedAt    time.Time
}

// Storage defines the interface for data persistence
type Storage interface {
	// Room operations
	SaveRoom(ctx context.Context, room *model.Room) error
	GetRoom(ctx context.Context, code model.RoomCode) (*model.Room, error)
	DeleteRoom(ctx context.Context, code model.RoomCode) error
	RoomExists(ctx context.Context, code model.RoomCode) (bool, error)

	// Message operations. AppendMessage assigns the message ID and a
	// store-side timestamp, monotonic within the room; ListMessages
	// returns messages in append order. DeleteMessages removes the
	// room's entire log.
	AppendMessage(ctx context.Context, code model.RoomCode, msg *model.Message) error
	ListMessages(ctx context.Context, code model.RoomCode) ([]model.Message, error)
	DeleteMessages(ctx context.Context, code model.RoomCode) error

	// Account operations
	SaveAccount(ctx context.Context, account *Account) error
	GetAccount(ctx context.Context, email model.Identity) (*Account, error)

	// Prompt operations (system prompt for the AI respondent)
	GetPrompt(ctx context.Context) (string, error)
	SavePrompt(ctx context.Context, prompt string) error

	// Leaderboard operations for the question mini-game
	SaveQuestionScore(ctx context.Context, score *QuestionScore) error
	TopQuestionScores(ctx context.Context, limit int) ([]QuestionScore, error)
	SaveFingerprint(ctx context.Context, fingerprint string, seenAt time.Time) error
}
