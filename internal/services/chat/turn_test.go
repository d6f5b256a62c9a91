package chat

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aiguessr/aiguessr-go/internal/model"
)

const seeker = model.Identity("seeker@example.com")
const other = model.Identity("other@example.com")

func msg(from, to model.Identity) model.Message {
	return model.Message{From: from, To: to, Message: "x"}
}

func TestDeriveTurnStateEmptyConversation(t *testing.T) {
	assert.Equal(t, model.WaitingForSeeker, DeriveTurnState(seeker, nil))
}

func TestDeriveTurnStateAfterSeekerMessage(t *testing.T) {
	msgs := []model.Message{msg(seeker, other)}
	assert.Equal(t, model.WaitingForOther, DeriveTurnState(seeker, msgs))
}

func TestDeriveTurnStateAfterOtherReplies(t *testing.T) {
	msgs := []model.Message{msg(seeker, other), msg(other, seeker)}
	assert.Equal(t, model.WaitingForSeeker, DeriveTurnState(seeker, msgs))
}

func TestDeriveTurnStateMessageToAIPending(t *testing.T) {
	msgs := []model.Message{msg(seeker, model.AIIdentity)}
	assert.Equal(t, model.WaitingForAIReply, DeriveTurnState(seeker, msgs))
}

func TestDeriveTurnStateAfterAIReplies(t *testing.T) {
	msgs := []model.Message{
		msg(seeker, model.AIIdentity),
		msg(model.AIIdentity, seeker),
	}
	assert.Equal(t, model.WaitingForSeeker, DeriveTurnState(seeker, msgs))
}

func TestDeriveTurnStateQuotaExhausted(t *testing.T) {
	var msgs []model.Message
	for i := 0; i < model.SeekerQuota; i++ {
		msgs = append(msgs, msg(seeker, other), msg(other, seeker))
	}
	assert.Equal(t, model.QuotaExhausted, DeriveTurnState(seeker, msgs))
}

func TestDeriveTurnStateQuotaNotExhaustedMidExchange(t *testing.T) {
	// Seeker has spent the budget but the other party still owes a reply
	var msgs []model.Message
	for i := 0; i < model.SeekerQuota-1; i++ {
		msgs = append(msgs, msg(seeker, other), msg(other, seeker))
	}
	msgs = append(msgs, msg(seeker, other))
	assert.Equal(t, model.WaitingForOther, DeriveTurnState(seeker, msgs))
}

func TestSeekerMessageCount(t *testing.T) {
	msgs := []model.Message{
		msg(seeker, other),
		msg(other, seeker),
		msg(seeker, other),
	}
	assert.Equal(t, 2, SeekerMessageCount(msgs, seeker))
}

func TestQuotaRemaining(t *testing.T) {
	msgs := []model.Message{msg(seeker, other), msg(other, seeker)}
	assert.Equal(t, model.SeekerQuota-1, QuotaRemaining(msgs, seeker))
}

func TestQuotaRemainingNeverNegative(t *testing.T) {
	var msgs []model.Message
	for i := 0; i < model.SeekerQuota+2; i++ {
		msgs = append(msgs, msg(seeker, other))
	}
	assert.Equal(t, 0, QuotaRemaining(msgs, seeker))
}
