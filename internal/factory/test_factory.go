package factory

import (
	"context"
	"sync"
	"time"

	"github.com/aiguessr/aiguessr-go/internal/dependencies/mocks"
	"github.com/aiguessr/aiguessr-go/internal/services/auth"
	"github.com/aiguessr/aiguessr-go/internal/services/chat"
	"github.com/aiguessr/aiguessr-go/internal/services/respondent"
	"github.com/aiguessr/aiguessr-go/internal/storage/memory"
	"github.com/aiguessr/aiguessr-go/internal/testutil"
)

// ScriptedResponder replays canned AI replies in order, repeating the
// last one once the script runs out
type ScriptedResponder struct {
	mu      sync.Mutex
	Replies []string
	Err     error
	next    int

	// Calls records every invocation for assertions
	Calls []respondent.ChatTurn
}

// Reply implements respondent.Responder
func (s *ScriptedResponder) Reply(ctx context.Context, systemPrompt string, history []respondent.ChatTurn) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(history) > 0 {
		s.Calls = append(s.Calls, history[len(history)-1])
	}
	if s.Err != nil {
		return "", s.Err
	}
	if len(s.Replies) == 0 {
		return "ok", nil
	}
	reply := s.Replies[min(s.next, len(s.Replies)-1)]
	if s.next < len(s.Replies) {
		s.next++
	}
	return reply, nil
}

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockClock  *mocks.MockClock
	MockRandom *mocks.MockRandom
	Responder  *ScriptedResponder
}

// NewTestApp creates an App configured for testing with mocked
// dependencies and zero AI pacing delays
func NewTestApp() *TestApp {
	store := memory.New()
	mockClock := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	mockRandom := mocks.NewMockRandom()
	responder := &ScriptedResponder{}

	app := newWithDependencies(store, mockClock, mockRandom, responder, auth.DefaultConfig(), chat.Config{}, testutil.NopLogger())

	return &TestApp{
		App:        app,
		MockClock:  mockClock,
		MockRandom: mockRandom,
		Responder:  responder,
	}
}
