package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/aiguessr/aiguessr-go/internal/model"
	"github.com/aiguessr/aiguessr-go/internal/storage"
)

// Storage is a Redis-backed implementation of the storage interface
type Storage struct {
	client *redis.Client
	cfg    Config
}

// New creates a new Redis storage instance
func New(cfg Config) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &Storage{
		client: client,
		cfg:    cfg,
	}, nil
}

// NewWithClient creates a Redis storage with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config) *Storage {
	return &Storage{
		client: client,
		cfg:    cfg,
	}
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Room operations

func (s *Storage) SaveRoom(ctx context.Context, room *model.Room) error {
	data, err := json.Marshal(room)
	if err != nil {
		return err
	}

	return s.client.Set(ctx, roomKey(room.Code), data, s.cfg.RoomTTL).Err()
}

func (s *Storage) GetRoom(ctx context.Context, code model.RoomCode) (*model.Room, error) {
	data, err := s.client.Get(ctx, roomKey(code)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrRoomNotFound
		}
		return nil, err
	}

	var room model.Room
	if err := json.Unmarshal(data, &room); err != nil {
		return nil, err
	}
	return &room, nil
}

func (s *Storage) DeleteRoom(ctx context.Context, code model.RoomCode) error {
	// Remove the room and its chat log together
	pipe := s.client.Pipeline()
	pipe.Del(ctx, roomKey(code))
	pipe.Del(ctx, messagesKey(code))
	pipe.Del(ctx, messageSeqKey(code))
	_, err := pipe.Exec(ctx)
	return err
}

func (s *Storage) RoomExists(ctx context.Context, code model.RoomCode) (bool, error) {
	exists, err := s.client.Exists(ctx, roomKey(code)).Result()
	if err != nil {
		return false, err
	}
	return exists > 0, nil
}

// Message operations

func (s *Storage) AppendMessage(ctx context.Context, code model.RoomCode, msg *model.Message) error {
	seq, err := s.client.Incr(ctx, messageSeqKey(code)).Result()
	if err != nil {
		return err
	}
	msg.ID = model.MessageID(fmt.Sprintf("m%06d", seq))

	now, err := s.client.Time(ctx).Result()
	if err != nil {
		return err
	}
	ts := now.UnixMilli()

	// Keep timestamps strictly monotonic within a room
	last, err := s.client.LIndex(ctx, messagesKey(code), -1).Bytes()
	if err != nil && !errors.Is(err, redis.Nil) {
		return err
	}
	if len(last) > 0 {
		var prev model.Message
		if err := json.Unmarshal(last, &prev); err == nil && ts <= prev.Timestamp {
			ts = prev.Timestamp + 1
		}
	}
	msg.Timestamp = ts

	data, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	pipe := s.client.Pipeline()
	pipe.RPush(ctx, messagesKey(code), data)
	pipe.Expire(ctx, messagesKey(code), s.cfg.MessageTTL)
	pipe.Expire(ctx, messageSeqKey(code), s.cfg.MessageTTL)
	_, err = pipe.Exec(ctx)
	return err
}

func (s *Storage) ListMessages(ctx context.Context, code model.RoomCode) ([]model.Message, error) {
	items, err := s.client.LRange(ctx, messagesKey(code), 0, -1).Result()
	if err != nil {
		return nil, err
	}

	msgs := make([]model.Message, 0, len(items))
	for _, item := range items {
		var msg model.Message
		if err := json.Unmarshal([]byte(item), &msg); err != nil {
			return nil, err
		}
		msgs = append(msgs, msg)
	}
	return msgs, nil
}

func (s *Storage) DeleteMessages(ctx context.Context, code model.RoomCode) error {
	return s.client.Del(ctx, messagesKey(code)).Err()
}

// Account operations

func (s *Storage) SaveAccount(ctx context.Context, account *storage.Account) error {
	data, err := json.Marshal(account)
	if err != nil {
		return err
	}

	return s.client.Set(ctx, accountKey(account.Email), data, 0).Err()
}

func (s *Storage) GetAccount(ctx context.Context, email model.Identity) (*storage.Account, error) {
	data, err := s.client.Get(ctx, accountKey(email)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrPlayerNotFound
		}
		return nil, err
	}

	var account storage.Account
	if err := json.Unmarshal(data, &account); err != nil {
		return nil, err
	}
	return &account, nil
}

// Prompt operations

func (s *Storage) GetPrompt(ctx context.Context) (string, error) {
	prompt, err := s.client.Get(ctx, promptKey()).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", model.ErrPromptNotSet
		}
		return "", err
	}
	return prompt, nil
}

func (s *Storage) SavePrompt(ctx context.Context, prompt string) error {
	return s.client.Set(ctx, promptKey(), prompt, 0).Err()
}

// Leaderboard operations

func (s *Storage) SaveQuestionScore(ctx context.Context, score *storage.QuestionScore) error {
	data, err := json.Marshal(score)
	if err != nil {
		return err
	}

	return s.client.RPush(ctx, scoresKey(), data).Err()
}

func (s *Storage) TopQuestionScores(ctx context.Context, limit int) ([]storage.QuestionScore, error) {
	items, err := s.client.LRange(ctx, scoresKey(), 0, -1).Result()
	if err != nil {
		return nil, err
	}

	scores := make([]storage.QuestionScore, 0, len(items))
	for _, item := range items {
		var score storage.QuestionScore
		if err := json.Unmarshal([]byte(item), &score); err != nil {
			return nil, err
		}
		scores = append(scores, score)
	}

	sort.SliceStable(scores, func(i, j int) bool {
		return scores[i].TotalPoints > scores[j].TotalPoints
	})
	if limit > 0 && len(scores) > limit {
		scores = scores[:limit]
	}
	return scores, nil
}

func (s *Storage) SaveFingerprint(ctx context.Context, fingerprint string, seenAt time.Time) error {
	data, err := json.Marshal(seenAt)
	if err != nil {
		return err
	}

	return s.client.Set(ctx, fingerprintKey(fingerprint), data, s.cfg.FingerprintTTL).Err()
}
