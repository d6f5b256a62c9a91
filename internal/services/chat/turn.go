package chat

import (
	"github.com/aiguessr/aiguessr-go/internal/model"
)

// DeriveTurnState reports whose move it is in the conversation between
// the seeker and the other party, given that conversation's messages
// in order. The seeker always opens; after that, turns strictly
// alternate, and a message addressed to the AI holds the conversation
// until the AI's reply lands.
func DeriveTurnState(seeker model.Identity, msgs []model.Message) model.TurnState {
	state := model.WaitingForSeeker
	if len(msgs) > 0 {
		last := msgs[len(msgs)-1]
		switch {
		case last.To == model.AIIdentity:
			state = model.WaitingForAIReply
		case last.From == seeker:
			state = model.WaitingForOther
		default:
			state = model.WaitingForSeeker
		}
	}

	if state == model.WaitingForSeeker && SeekerMessageCount(msgs, seeker) >= model.SeekerQuota {
		return model.QuotaExhausted
	}
	return state
}

// SeekerMessageCount counts how many messages the seeker has sent in
// the conversation
func SeekerMessageCount(msgs []model.Message, seeker model.Identity) int {
	count := 0
	for _, msg := range msgs {
		if msg.From == seeker {
			count++
		}
	}
	return count
}

// QuotaRemaining reports how many messages the seeker may still send
// in the conversation
func QuotaRemaining(msgs []model.Message, seeker model.Identity) int {
	remaining := model.SeekerQuota - SeekerMessageCount(msgs, seeker)
	if remaining < 0 {
		return 0
	}
	return remaining
}
