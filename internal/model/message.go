package model

import (
	"sort"
	"strings"
)

// MaxMessageLength caps the free-text content of a single chat message.
const MaxMessageLength = 60

// SeekerQuota is the maximum number of seeker-authored messages allowed
// per conversation per round.
const SeekerQuota = 5

// MessageID is the store-assigned identifier of a message
type MessageID string

// Message is one entry in a room's flat chat log
type Message struct {
	ID      MessageID
	From    Identity
	To      Identity
	Message string

	// ChatKey addresses the two-party conversation this message belongs
	// to; identical regardless of direction.
	ChatKey string

	// Timestamp is store-assigned at append time, monotonic within a
	// room, and used only for ordering.
	Timestamp int64
}

// ChatKeyFor computes the symmetric conversation key for two identities:
// both lowercased, sorted lexicographically, joined with a dash. The
// result is independent of argument order.
func ChatKeyFor(a, b Identity) string {
	pair := []string{strings.ToLower(string(a)), strings.ToLower(string(b))}
	sort.Strings(pair)
	return pair[0] + "-" + pair[1]
}

// ConversationMessages filters a room's flat log down to one conversation,
// preserving order
func ConversationMessages(all []Message, chatKey string) []Message {
	var msgs []Message
	for _, m := range all {
		if m.ChatKey == chatKey {
			msgs = append(msgs, m)
		}
	}
	return msgs
}
