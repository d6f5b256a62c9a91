package respondent

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/aiguessr/aiguessr-go/internal/dependencies/random"
)

// Temperature is sampled per request from a narrow band so replies
// stay varied without going off the rails
const (
	temperatureBase  = 1.05
	temperatureSteps = 16
	temperatureStep  = 0.01
)

// OpenAIConfig configures the chat completions endpoint and HTTP behavior
type OpenAIConfig struct {
	CompletionsURL string
	APIKey         string
	Model          string
	HTTPClient     *http.Client

	// Temperature pins the sampling temperature when set. Left nil,
	// each request draws one from the randomized band.
	Temperature *float64
}

type openAIResponder struct {
	cfg    OpenAIConfig
	random random.Random
}

// NewOpenAIResponder builds a Responder backed by an OpenAI-compatible
// chat completions endpoint
func NewOpenAIResponder(cfg OpenAIConfig, random random.Random) Responder {
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = http.DefaultClient
	}
	if strings.TrimSpace(cfg.CompletionsURL) == "" {
		cfg.CompletionsURL = "https://api.openai.com/v1/chat/completions"
	}
	if strings.TrimSpace(cfg.Model) == "" {
		cfg.Model = "gpt-4o-mini"
	}
	return &openAIResponder{cfg: cfg, random: random}
}

func (r *openAIResponder) Reply(ctx context.Context, systemPrompt string, history []ChatTurn) (string, error) {
	type message struct {
		Role    string `json:"role"`
		Content string `json:"content"`
	}

	messages := make([]message, 0, len(history)+1)
	if strings.TrimSpace(systemPrompt) != "" {
		messages = append(messages, message{Role: "system", Content: systemPrompt})
	}
	for _, turn := range history {
		messages = append(messages, message{Role: turn.Role, Content: turn.Content})
	}

	temperature := temperatureBase + float64(r.random.Intn(temperatureSteps))*temperatureStep
	if r.cfg.Temperature != nil {
		temperature = *r.cfg.Temperature
	}

	body, err := json.Marshal(map[string]any{
		"model":       r.cfg.Model,
		"messages":    messages,
		"temperature": temperature,
	})
	if err != nil {
		return "", fmt.Errorf("marshal completion request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.cfg.CompletionsURL, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build completion request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if r.cfg.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+r.cfg.APIKey)
	}

	res, err := r.cfg.HTTPClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("completion request failed: %w", err)
	}
	defer res.Body.Close()
	if res.StatusCode < 200 || res.StatusCode >= 300 {
		errBody, err := io.ReadAll(io.LimitReader(res.Body, 4096))
		if err != nil {
			return "", fmt.Errorf("read completion error body: %w", err)
		}
		return "", fmt.Errorf("completion request status %d: %s", res.StatusCode, strings.TrimSpace(string(errBody)))
	}

	var payload struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.NewDecoder(res.Body).Decode(&payload); err != nil {
		return "", fmt.Errorf("decode completion response: %w", err)
	}

	for _, choice := range payload.Choices {
		if text := strings.TrimSpace(choice.Message.Content); text != "" {
			return text, nil
		}
	}
	return "", fmt.Errorf("completion response missing content")
}

var _ Responder = (*openAIResponder)(nil)
