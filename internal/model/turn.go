package model

// TurnState is the derived state of a single two-party conversation.
// It is never stored: it is recomputed from the authoritative message
// log on every change, so reconnecting clients can never act on stale
// cached turn state.
type TurnState string

const (
	// WaitingForSeeker means the seeker holds the turn (including the
	// empty conversation, where the seeker always moves first).
	WaitingForSeeker TurnState = "waiting_for_seeker"

	// WaitingForOther means the non-seeker party holds the turn.
	WaitingForOther TurnState = "waiting_for_other"

	// WaitingForAIReply means the last message was addressed to the AI
	// respondent and its reply is pending; no human may send.
	WaitingForAIReply TurnState = "waiting_for_ai_reply"

	// QuotaExhausted means the seeker has spent all of their messages
	// for this conversation; the seeker may not send regardless of turn.
	QuotaExhausted TurnState = "quota_exhausted"
)
