package chat

import (
	"context"
	"log/slog"
	"time"
	"unicode/utf8"

	"github.com/aiguessr/aiguessr-go/internal/dependencies/random"
	"github.com/aiguessr/aiguessr-go/internal/model"
	"github.com/aiguessr/aiguessr-go/internal/services/prompt"
	"github.com/aiguessr/aiguessr-go/internal/services/respondent"
	"github.com/aiguessr/aiguessr-go/internal/storage"
)

// Config tunes the AI reply cadence. The delays fake a human on the
// other end: a pause to read, a pause to think, a pause to type.
type Config struct {
	ThinkingDelay time.Duration
	CharDelayMin  time.Duration
	CharDelayMax  time.Duration
}

// DefaultConfig returns the production reply cadence
func DefaultConfig() Config {
	return Config{
		ThinkingDelay: 5 * time.Second,
		CharDelayMin:  200 * time.Millisecond,
		CharDelayMax:  300 * time.Millisecond,
	}
}

// Controller manages conversations and the AI respondent's turn
type Controller struct {
	storage   storage.Storage
	prompts   prompt.ControllerInterface
	responder respondent.Responder
	random    random.Random
	logger    *slog.Logger
	cfg       Config
}

// NewController creates a new ChatController
func NewController(
	store storage.Storage,
	prompts prompt.ControllerInterface,
	responder respondent.Responder,
	rnd random.Random,
	logger *slog.Logger,
	cfg Config,
) *Controller {
	return &Controller{
		storage:   store,
		prompts:   prompts,
		responder: responder,
		random:    rnd,
		logger:    logger.With(slog.String("component", "chat-controller")),
		cfg:       cfg,
	}
}

// SendMessage validates and records one message from a human player.
// The seeker opens every conversation and turns alternate after that;
// the seeker gets a fixed budget of messages per conversation. When
// the recipient is the AI, the caller is responsible for triggering
// DeliverAIReply.
func (c *Controller) SendMessage(ctx context.Context, code model.RoomCode, from, to model.Identity, text string) (*model.Message, error) {
	if text == "" {
		return nil, model.ErrEmptyMessage
	}
	if utf8.RuneCountInString(text) > model.MaxMessageLength {
		return nil, model.ErrMessageTooLong
	}
	to = normalizeParty(to)

	room, err := c.activeRoom(ctx, code)
	if err != nil {
		return nil, err
	}

	if _, ok := room.GetPlayer(from); !ok {
		return nil, model.ErrNotInRoom
	}
	if err := c.checkConversation(room, from, to); err != nil {
		return nil, err
	}

	all, err := c.storage.ListMessages(ctx, code)
	if err != nil {
		return nil, err
	}
	key := model.ChatKeyFor(from, to)
	msgs := model.ConversationMessages(all, key)

	state := DeriveTurnState(room.Seeker, msgs)
	if from == room.Seeker {
		switch state {
		case model.QuotaExhausted:
			return nil, model.ErrQuotaExhausted
		case model.WaitingForSeeker:
		default:
			return nil, model.ErrNotYourTurn
		}
	} else if state != model.WaitingForOther {
		return nil, model.ErrNotYourTurn
	}

	msg := &model.Message{
		From:    from,
		To:      to,
		Message: text,
		ChatKey: key,
	}
	if err := c.storage.AppendMessage(ctx, code, msg); err != nil {
		return nil, err
	}

	c.logger.Info("message sent",
		slog.String("room_code", string(code)),
		slog.String("chat_key", key),
		slog.Bool("to_ai", to == model.AIIdentity),
	)
	return msg, nil
}

// DeliverAIReply produces and records the AI's answer to the seeker's
// latest message. It blocks through the simulated reading, thinking,
// and typing delays, so callers normally run it on its own goroutine.
// The reply is dropped if the round ended while it was being composed.
func (c *Controller) DeliverAIReply(ctx context.Context, code model.RoomCode, human model.Identity) (*model.Message, error) {
	room, err := c.activeRoom(ctx, code)
	if err != nil {
		return nil, err
	}
	if room.Seeker != human {
		return nil, model.ErrNotInConversation
	}

	all, err := c.storage.ListMessages(ctx, code)
	if err != nil {
		return nil, err
	}
	key := model.ChatKeyFor(human, model.AIIdentity)
	msgs := model.ConversationMessages(all, key)

	if DeriveTurnState(room.Seeker, msgs) != model.WaitingForAIReply {
		return nil, model.ErrNotYourTurn
	}

	incoming := msgs[len(msgs)-1]
	if err := c.typingPause(ctx, incoming.Message); err != nil {
		return nil, err
	}
	if err := c.pause(ctx, c.cfg.ThinkingDelay); err != nil {
		return nil, err
	}

	systemPrompt, err := c.prompts.Get(ctx)
	if err != nil {
		return nil, err
	}

	history := make([]respondent.ChatTurn, 0, len(msgs))
	for _, msg := range msgs {
		role := "user"
		if msg.From == model.AIIdentity {
			role = "assistant"
		}
		history = append(history, respondent.ChatTurn{Role: role, Content: msg.Message})
	}

	reply, err := c.responder.Reply(ctx, systemPrompt, history)
	if err != nil {
		c.logger.Error("ai reply failed",
			slog.String("room_code", string(code)),
			slog.String("error", err.Error()),
		)
		return nil, err
	}
	reply = truncateRunes(reply, model.MaxMessageLength)

	if err := c.typingPause(ctx, reply); err != nil {
		return nil, err
	}

	// The round may have ended while the reply was being composed
	room, err = c.activeRoom(ctx, code)
	if err != nil {
		return nil, err
	}
	if room.Seeker != human {
		return nil, model.ErrNotInConversation
	}

	msg := &model.Message{
		From:    model.AIIdentity,
		To:      human,
		Message: reply,
		ChatKey: key,
	}
	if err := c.storage.AppendMessage(ctx, code, msg); err != nil {
		return nil, err
	}

	c.logger.Info("ai reply delivered",
		slog.String("room_code", string(code)),
		slog.String("chat_key", key),
	)
	return msg, nil
}

// Conversation returns the messages between the viewer and the other
// party, oldest first
func (c *Controller) Conversation(ctx context.Context, code model.RoomCode, viewer, other model.Identity) ([]model.Message, error) {
	room, err := c.storage.GetRoom(ctx, code)
	if err != nil {
		return nil, err
	}
	if room.RoomDeleted {
		return nil, model.ErrRoomDeleted
	}
	if _, ok := room.GetPlayer(viewer); !ok {
		return nil, model.ErrNotInRoom
	}

	all, err := c.storage.ListMessages(ctx, code)
	if err != nil {
		return nil, err
	}
	return model.ConversationMessages(all, model.ChatKeyFor(viewer, normalizeParty(other))), nil
}

// TurnInfo reports whose move it is in the viewer's conversation with
// the other party, and how many messages the seeker has left
func (c *Controller) TurnInfo(ctx context.Context, code model.RoomCode, viewer, other model.Identity) (model.TurnState, int, error) {
	room, err := c.storage.GetRoom(ctx, code)
	if err != nil {
		return "", 0, err
	}
	if room.RoomDeleted {
		return "", 0, model.ErrRoomDeleted
	}
	if _, ok := room.GetPlayer(viewer); !ok {
		return "", 0, model.ErrNotInRoom
	}

	all, err := c.storage.ListMessages(ctx, code)
	if err != nil {
		return "", 0, err
	}
	msgs := model.ConversationMessages(all, model.ChatKeyFor(viewer, normalizeParty(other)))

	return DeriveTurnState(room.Seeker, msgs), QuotaRemaining(msgs, room.Seeker), nil
}

// normalizeParty collapses any spelling that names the AI respondent
// onto its canonical identity, so the chat key and the stored To field
// always carry the same value
func normalizeParty(id model.Identity) model.Identity {
	if model.IsAIIdentity(id) {
		return model.AIIdentity
	}
	return id
}

// activeRoom loads the room and verifies a round is in active play
func (c *Controller) activeRoom(ctx context.Context, code model.RoomCode) (*model.Room, error) {
	room, err := c.storage.GetRoom(ctx, code)
	if err != nil {
		return nil, err
	}
	if room.RoomDeleted {
		return nil, model.ErrRoomDeleted
	}
	switch room.GameState {
	case model.GameStateStart:
		return room, nil
	case model.GameStateOver:
		return nil, model.ErrGameOver
	default:
		return nil, model.ErrRoundNotActive
	}
}

// checkConversation verifies the pairing is legal: every conversation
// is between the seeker and one living suspect (or the AI)
func (c *Controller) checkConversation(room *model.Room, from, to model.Identity) error {
	if from != room.Seeker && to != room.Seeker {
		return model.ErrNotInConversation
	}
	if to == model.AIIdentity {
		if from != room.Seeker {
			return model.ErrNotInConversation
		}
		return nil
	}

	other := from
	if from == room.Seeker {
		other = to
	}
	player, ok := room.GetPlayer(other)
	if !ok {
		return model.ErrNotInConversation
	}
	if player.State == model.StateDead {
		return model.ErrNotInConversation
	}
	return nil
}

// typingPause waits roughly as long as a human would take to type the
// given text
func (c *Controller) typingPause(ctx context.Context, text string) error {
	if c.cfg.CharDelayMax <= 0 {
		return nil
	}
	perChar := c.cfg.CharDelayMin
	if jitter := c.cfg.CharDelayMax - c.cfg.CharDelayMin; jitter > 0 {
		perChar += time.Duration(c.random.Intn(int(jitter)))
	}
	return c.pause(ctx, time.Duration(utf8.RuneCountInString(text))*perChar)
}

func (c *Controller) pause(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(d):
		return nil
	}
}

func truncateRunes(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	runes := []rune(s)
	return string(runes[:max])
}

// Interface for dependency injection
type ControllerInterface interface {
	SendMessage(ctx context.Context, code model.RoomCode, from, to model.Identity, text string) (*model.Message, error)
	DeliverAIReply(ctx context.Context, code model.RoomCode, human model.Identity) (*model.Message, error)
	Conversation(ctx context.Context, code model.RoomCode, viewer, other model.Identity) ([]model.Message, error)
	TurnInfo(ctx context.Context, code model.RoomCode, viewer, other model.Identity) (model.TurnState, int, error)
}

var _ ControllerInterface = (*Controller)(nil)
