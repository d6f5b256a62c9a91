package factory

import (
	"errors"
	"io"
	"log/slog"

	"github.com/aiguessr/aiguessr-go/internal/dependencies/clock"
	"github.com/aiguessr/aiguessr-go/internal/dependencies/random"
	"github.com/aiguessr/aiguessr-go/internal/services/auth"
	"github.com/aiguessr/aiguessr-go/internal/services/chat"
	"github.com/aiguessr/aiguessr-go/internal/services/guess"
	"github.com/aiguessr/aiguessr-go/internal/services/prompt"
	"github.com/aiguessr/aiguessr-go/internal/services/question"
	"github.com/aiguessr/aiguessr-go/internal/services/respondent"
	"github.com/aiguessr/aiguessr-go/internal/services/room"
	"github.com/aiguessr/aiguessr-go/internal/sse"
	"github.com/aiguessr/aiguessr-go/internal/storage"
	"github.com/aiguessr/aiguessr-go/internal/storage/memory"
	redisstorage "github.com/aiguessr/aiguessr-go/internal/storage/redis"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
)

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Storage

	// External dependencies
	Clock  clock.Clock
	Random random.Random

	// Services
	AuthService        *auth.Service
	RoomController     *room.Controller
	ChatController     *chat.Controller
	GuessController    *guess.Controller
	PromptController   *prompt.Controller
	QuestionController *question.Controller
	Responder          respondent.Responder
	HubManager         *sse.HubManager
	Broadcaster        *sse.Broadcaster
}

// Config holds configuration for the application factory
type Config struct {
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend ("memory" or "redis")
	// If empty, defaults to "memory"
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
	// AuthConfig holds configuration for the auth service (optional)
	// If zero value, defaults to auth.DefaultConfig()
	AuthConfig auth.Config
	// ChatConfig holds pacing configuration for the AI respondent (optional)
	// If zero value, defaults to chat.DefaultConfig()
	ChatConfig chat.Config
	// OpenAIConfig configures the AI respondent (used only when Responder is nil)
	OpenAIConfig respondent.OpenAIConfig
	// Responder overrides the AI respondent (optional)
	Responder respondent.Responder
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	// Use no-op logger if not provided
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	// Create storage based on type
	var store storage.Storage
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeMemory
	}

	switch storageType {
	case StorageTypeMemory:
		store = memory.New()
	case StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		redisStore, err := redisstorage.New(*cfg.RedisConfig)
		if err != nil {
			return nil, err
		}
		store = redisStore
	default:
		return nil, errors.New("invalid StorageType: must be 'memory' or 'redis'")
	}

	// Create external dependencies
	clk := clock.New()
	rnd := random.New()

	// Use default auth config if not provided
	authCfg := cfg.AuthConfig
	if authCfg.SessionDuration == 0 {
		authCfg = auth.DefaultConfig()
	}

	// Use default chat pacing if not provided
	chatCfg := cfg.ChatConfig
	if chatCfg.ThinkingDelay == 0 && chatCfg.CharDelayMin == 0 && chatCfg.CharDelayMax == 0 {
		chatCfg = chat.DefaultConfig()
	}

	responder := cfg.Responder
	if responder == nil {
		responder = respondent.NewOpenAIResponder(cfg.OpenAIConfig, rnd)
	}

	return newWithDependencies(store, clk, rnd, responder, authCfg, chatCfg, logger), nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(
	store storage.Storage,
	clk clock.Clock,
	rnd random.Random,
	responder respondent.Responder,
	authCfg auth.Config,
	chatCfg chat.Config,
	logger *slog.Logger,
) *App {
	// Create services
	authService := auth.New(store, clk, rnd, authCfg)
	promptController := prompt.NewController(store)
	roomController := room.NewController(store, clk, rnd)
	chatController := chat.NewController(store, promptController, responder, rnd, logger, chatCfg)
	guessController := guess.NewController(store, clk, rnd, logger)
	questionController := question.NewController(store, responder, clk, rnd, logger)
	hubManager := sse.NewHubManager(logger)
	broadcaster := sse.NewBroadcaster(hubManager, clk, logger)

	return &App{
		Storage:            store,
		Clock:              clk,
		Random:             rnd,
		AuthService:        authService,
		RoomController:     roomController,
		ChatController:     chatController,
		GuessController:    guessController,
		PromptController:   promptController,
		QuestionController: questionController,
		Responder:          responder,
		HubManager:         hubManager,
		Broadcaster:        broadcaster,
	}
}
