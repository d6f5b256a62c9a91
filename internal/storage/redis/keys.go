package redis

import (
	"fmt"

	"github.com/aiguessr/aiguessr-go/internal/model"
)

// Key prefix for all game-related data
const keyPrefix = "aiguessr"

// Key generation functions for each entity type

// roomKey returns the Redis key for a Room
func roomKey(code model.RoomCode) string {
	return fmt.Sprintf("%s:room:%s", keyPrefix, code)
}

// messagesKey returns the Redis key for a room's message LIST
func messagesKey(code model.RoomCode) string {
	return fmt.Sprintf("%s:messages:%s", keyPrefix, code)
}

// messageSeqKey returns the Redis key for a room's message id counter
func messageSeqKey(code model.RoomCode) string {
	return fmt.Sprintf("%s:message_seq:%s", keyPrefix, code)
}

// accountKey returns the Redis key for an Account
func accountKey(email model.Identity) string {
	return fmt.Sprintf("%s:account:%s", keyPrefix, email)
}

// promptKey returns the Redis key for the AI system prompt
func promptKey() string {
	return fmt.Sprintf("%s:prompt", keyPrefix)
}

// scoresKey returns the Redis key for the leaderboard LIST
func scoresKey() string {
	return fmt.Sprintf("%s:question_scores", keyPrefix)
}

// fingerprintKey returns the Redis key for a submitted fingerprint
func fingerprintKey(fingerprint string) string {
	return fmt.Sprintf("%s:fingerprint:%s", keyPrefix, fingerprint)
}
