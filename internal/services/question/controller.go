package question

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/aiguessr/aiguessr-go/internal/dependencies/clock"
	"github.com/aiguessr/aiguessr-go/internal/dependencies/random"
	"github.com/aiguessr/aiguessr-go/internal/model"
	"github.com/aiguessr/aiguessr-go/internal/services/respondent"
	"github.com/aiguessr/aiguessr-go/internal/storage"
)

// DefaultLeaderboardSize caps the leaderboard response
const DefaultLeaderboardSize = 20

// Errors
var (
	ErrMissingFields = errors.New("input, email, username and fingerprint are all required")
)

// Submission is one entry to the standalone question mini-game
type Submission struct {
	Email       model.Identity
	Username    string
	Fingerprint string
	Input       string
}

// Controller scores mini-game submissions and keeps the leaderboard
type Controller struct {
	storage   storage.Storage
	responder respondent.Responder
	clock     clock.Clock
	random    random.Random
	logger    *slog.Logger
}

// NewController creates a new QuestionController
func NewController(
	store storage.Storage,
	responder respondent.Responder,
	clk clock.Clock,
	rnd random.Random,
	logger *slog.Logger,
) *Controller {
	return &Controller{
		storage:   store,
		responder: responder,
		clock:     clk,
		random:    rnd,
		logger:    logger.With(slog.String("component", "question-controller")),
	}
}

// Submit has the AI judge the player's question against the rubric
// and records the result on the leaderboard
func (c *Controller) Submit(ctx context.Context, sub Submission) (*storage.QuestionScore, error) {
	if sub.Input == "" || sub.Email == "" || sub.Username == "" || sub.Fingerprint == "" {
		return nil, ErrMissingFields
	}

	rubric := rubricPrompts[c.random.Intn(len(rubricPrompts))]

	reply, err := c.responder.Reply(ctx, rubric, []respondent.ChatTurn{
		{Role: "user", Content: sub.Input},
	})
	if err != nil {
		return nil, err
	}

	var verdict struct {
		Relevance        int    `json:"relevance"`
		Clarity          int    `json:"clarity"`
		Originality      int    `json:"originality"`
		HumanLikeness    int    `json:"humanLikeness"`
		Engagement       int    `json:"engagement"`
		TotalPoints      int    `json:"totalPoints"`
		ShortExplanation string `json:"shortExplanation"`
	}
	if err := json.Unmarshal([]byte(extractJSON(reply)), &verdict); err != nil {
		return nil, fmt.Errorf("parse judge verdict: %w", err)
	}

	now := c.clock.Now()
	score := &storage.QuestionScore{
		Email:         sub.Email,
		Username:      sub.Username,
		Fingerprint:   sub.Fingerprint,
		Input:         sub.Input,
		Relevance:     verdict.Relevance,
		Clarity:       verdict.Clarity,
		Originality:   verdict.Originality,
		HumanLikeness: verdict.HumanLikeness,
		Engagement:    verdict.Engagement,
		TotalPoints:   verdict.TotalPoints,
		Explanation:   verdict.ShortExplanation,
		SubmittedAt:   now,
	}

	if err := c.storage.SaveQuestionScore(ctx, score); err != nil {
		return nil, err
	}
	if err := c.storage.SaveFingerprint(ctx, sub.Fingerprint, now); err != nil {
		return nil, err
	}

	c.logger.Info("question scored",
		slog.String("username", sub.Username),
		slog.Int("total_points", verdict.TotalPoints),
	)
	return score, nil
}

// Leaderboard returns the top submissions by total points
func (c *Controller) Leaderboard(ctx context.Context, limit int) ([]storage.QuestionScore, error) {
	if limit <= 0 {
		limit = DefaultLeaderboardSize
	}
	return c.storage.TopQuestionScores(ctx, limit)
}

// extractJSON pulls the JSON object out of a reply that may wrap it
// in prose or a code fence
func extractJSON(reply string) string {
	start := strings.Index(reply, "{")
	end := strings.LastIndex(reply, "}")
	if start < 0 || end <= start {
		return reply
	}
	return reply[start : end+1]
}

// Interface for dependency injection
type ControllerInterface interface {
	Submit(ctx context.Context, sub Submission) (*storage.QuestionScore, error)
	Leaderboard(ctx context.Context, limit int) ([]storage.QuestionScore, error)
}

var _ ControllerInterface = (*Controller)(nil)
