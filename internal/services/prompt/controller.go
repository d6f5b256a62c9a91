package prompt

import (
	"context"
	"errors"
	"strings"

	"github.com/aiguessr/aiguessr-go/internal/model"
	"github.com/aiguessr/aiguessr-go/internal/storage"
)

// DefaultPrompt is used until an admin installs their own
const DefaultPrompt = "You are a player in a party game where everyone " +
	"is chatting to figure out who is the AI. Pass as human: reply in " +
	"short casual messages, make small typos sometimes, never admit you " +
	"are an AI, and never break character. Keep every reply under 60 " +
	"characters."

// Controller manages the AI respondent's system prompt
type Controller struct {
	storage storage.Storage
}

// NewController creates a new PromptController
func NewController(storage storage.Storage) *Controller {
	return &Controller{storage: storage}
}

// Get returns the active system prompt, falling back to the default
// when none has been installed
func (c *Controller) Get(ctx context.Context) (string, error) {
	prompt, err := c.storage.GetPrompt(ctx)
	if err != nil {
		if errors.Is(err, model.ErrPromptNotSet) {
			return DefaultPrompt, nil
		}
		return "", err
	}
	return prompt, nil
}

// Update replaces the active system prompt
func (c *Controller) Update(ctx context.Context, prompt string) error {
	if strings.TrimSpace(prompt) == "" {
		return model.ErrEmptyMessage
	}
	return c.storage.SavePrompt(ctx, prompt)
}

// Interface for dependency injection
type ControllerInterface interface {
	Get(ctx context.Context) (string, error)
	Update(ctx context.Context, prompt string) error
}

var _ ControllerInterface = (*Controller)(nil)
