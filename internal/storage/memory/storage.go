package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/aiguessr/aiguessr-go/internal/model"
	"github.com/aiguessr/aiguessr-go/internal/storage"
)

// Storage is an in-memory implementation of the storage interface
type Storage struct {
	mu sync.RWMutex

	rooms        map[model.RoomCode]*model.Room
	messages     map[model.RoomCode][]model.Message
	messageSeq   map[model.RoomCode]int64
	accounts     map[model.Identity]*storage.Account
	prompt       string
	promptSet    bool
	scores       []storage.QuestionScore
	fingerprints map[string]time.Time
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		rooms:        make(map[model.RoomCode]*model.Room),
		messages:     make(map[model.RoomCode][]model.Message),
		messageSeq:   make(map[model.RoomCode]int64),
		accounts:     make(map[model.Identity]*storage.Account),
		fingerprints: make(map[string]time.Time),
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Room operations

func (s *Storage) SaveRoom(ctx context.Context, room *model.Room) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rooms[room.Code] = room
	return nil
}

func (s *Storage) GetRoom(ctx context.Context, code model.RoomCode) (*model.Room, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	room, ok := s.rooms[code]
	if !ok {
		return nil, model.ErrRoomNotFound
	}
	return room, nil
}

func (s *Storage) DeleteRoom(ctx context.Context, code model.RoomCode) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.rooms, code)
	delete(s.messages, code)
	delete(s.messageSeq, code)
	return nil
}

func (s *Storage) RoomExists(ctx context.Context, code model.RoomCode) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.rooms[code]
	return ok, nil
}

// Message operations

func (s *Storage) AppendMessage(ctx context.Context, code model.RoomCode, msg *model.Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	seq := s.messageSeq[code] + 1
	s.messageSeq[code] = seq

	msg.ID = model.MessageID(fmt.Sprintf("m%06d", seq))
	ts := time.Now().UnixMilli()
	if n := len(s.messages[code]); n > 0 && ts <= s.messages[code][n-1].Timestamp {
		// Keep timestamps strictly monotonic within a room
		ts = s.messages[code][n-1].Timestamp + 1
	}
	msg.Timestamp = ts

	s.messages[code] = append(s.messages[code], *msg)
	return nil
}

func (s *Storage) ListMessages(ctx context.Context, code model.RoomCode) ([]model.Message, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	msgs := make([]model.Message, len(s.messages[code]))
	copy(msgs, s.messages[code])
	return msgs, nil
}

func (s *Storage) DeleteMessages(ctx context.Context, code model.RoomCode) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.messages, code)
	return nil
}

// Account operations

func (s *Storage) SaveAccount(ctx context.Context, account *storage.Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.accounts[account.Email] = account
	return nil
}

func (s *Storage) GetAccount(ctx context.Context, email model.Identity) (*storage.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	account, ok := s.accounts[email]
	if !ok {
		return nil, model.ErrPlayerNotFound
	}
	return account, nil
}

// Prompt operations

func (s *Storage) GetPrompt(ctx context.Context) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.promptSet {
		return "", model.ErrPromptNotSet
	}
	return s.prompt, nil
}

func (s *Storage) SavePrompt(ctx context.Context, prompt string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.prompt = prompt
	s.promptSet = true
	return nil
}

// Leaderboard operations

func (s *Storage) SaveQuestionScore(ctx context.Context, score *storage.QuestionScore) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.scores = append(s.scores, *score)
	return nil
}

func (s *Storage) TopQuestionScores(ctx context.Context, limit int) ([]storage.QuestionScore, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	scores := make([]storage.QuestionScore, len(s.scores))
	copy(scores, s.scores)
	sort.SliceStable(scores, func(i, j int) bool {
		return scores[i].TotalPoints > scores[j].TotalPoints
	})
	if limit > 0 && len(scores) > limit {
		scores = scores[:limit]
	}
	return scores, nil
}

func (s *Storage) SaveFingerprint(ctx context.Context, fingerprint string, seenAt time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fingerprints[fingerprint] = seenAt
	return nil
}
