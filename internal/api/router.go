package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/aiguessr/aiguessr-go/internal/api/handler"
	"github.com/aiguessr/aiguessr-go/internal/api/middleware"
	"github.com/aiguessr/aiguessr-go/internal/services/auth"
	"github.com/aiguessr/aiguessr-go/internal/services/chat"
	"github.com/aiguessr/aiguessr-go/internal/services/guess"
	"github.com/aiguessr/aiguessr-go/internal/services/prompt"
	"github.com/aiguessr/aiguessr-go/internal/services/question"
	"github.com/aiguessr/aiguessr-go/internal/services/room"
	"github.com/aiguessr/aiguessr-go/internal/sse"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger             *slog.Logger
	AuthService        *auth.Service
	RoomController     room.ControllerInterface
	ChatController     chat.ControllerInterface
	GuessController    guess.ControllerInterface
	PromptController   prompt.ControllerInterface
	QuestionController question.ControllerInterface
	HubManager         *sse.HubManager
	Broadcaster        *sse.Broadcaster
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Create handlers
	playerHandler := handler.NewPlayerHandler(cfg.AuthService)
	roomHandler := handler.NewRoomHandler(cfg.RoomController, cfg.HubManager, cfg.Broadcaster)
	chatHandler := handler.NewChatHandler(cfg.ChatController, cfg.Broadcaster, cfg.Logger)
	guessHandler := handler.NewGuessHandler(cfg.GuessController, cfg.Broadcaster)
	promptHandler := handler.NewPromptHandler(cfg.PromptController)
	questionHandler := handler.NewQuestionHandler(cfg.QuestionController)

	// Create middleware
	authMiddleware := middleware.Auth(cfg.AuthService)
	adminMiddleware := middleware.RequireAdmin()
	loggingMiddleware := middleware.Logging(cfg.Logger)
	recoveryMiddleware := middleware.Recovery(cfg.Logger)

	// API subrouter with common middleware
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(recoveryMiddleware)
	api.Use(loggingMiddleware)

	// Player routes (no auth required for creating sessions)
	api.HandleFunc("/players/guest", playerHandler.CreateGuest).Methods(http.MethodPost)
	api.HandleFunc("/players/register", playerHandler.Register).Methods(http.MethodPost)
	api.HandleFunc("/players/login", playerHandler.Login).Methods(http.MethodPost)

	// Protected player routes
	playerProtected := api.PathPrefix("/players").Subrouter()
	playerProtected.Use(authMiddleware)
	playerProtected.HandleFunc("/me", playerHandler.GetMe).Methods(http.MethodGet)

	// Room routes (all require auth)
	rooms := api.PathPrefix("/rooms").Subrouter()
	rooms.Use(authMiddleware)
	rooms.HandleFunc("/{code}", roomHandler.Get).Methods(http.MethodGet)
	rooms.HandleFunc("/{code}/join", roomHandler.Join).Methods(http.MethodPost)
	rooms.HandleFunc("/{code}/leave", roomHandler.Leave).Methods(http.MethodPost)
	rooms.HandleFunc("/{code}/start", roomHandler.Start).Methods(http.MethodPost)
	rooms.HandleFunc("/{code}/restart", roomHandler.Restart).Methods(http.MethodPost)
	rooms.HandleFunc("/{code}/ack", roomHandler.Acknowledge).Methods(http.MethodPost)
	rooms.HandleFunc("/{code}/guess", guessHandler.Guess).Methods(http.MethodPost)
	rooms.HandleFunc("/{code}/events", roomHandler.Events).Methods(http.MethodGet)

	// Chat routes
	rooms.HandleFunc("/{code}/messages", chatHandler.Send).Methods(http.MethodPost)
	rooms.HandleFunc("/{code}/messages", chatHandler.Conversation).Methods(http.MethodGet)
	rooms.HandleFunc("/{code}/turn", chatHandler.Turn).Methods(http.MethodGet)

	// Prompt routes (read requires auth, write requires admin)
	prompts := api.PathPrefix("/prompt").Subrouter()
	prompts.Use(authMiddleware)
	prompts.HandleFunc("", promptHandler.Get).Methods(http.MethodGet)
	prompts.Handle("", adminMiddleware(http.HandlerFunc(promptHandler.Update))).Methods(http.MethodPut)

	// Question mini-game routes (no auth; submissions carry their own identity)
	api.HandleFunc("/question", questionHandler.Submit).Methods(http.MethodPost)
	api.HandleFunc("/question/leaderboard", questionHandler.Leaderboard).Methods(http.MethodGet)

	// Health check endpoint (no auth)
	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	// Root-level routes kept path-compatible with the original frontend
	compatHandler := handler.NewCompatHandler(cfg.ChatController, cfg.PromptController, cfg.QuestionController, cfg.Broadcaster)
	wrap := func(h http.Handler) http.Handler {
		return recoveryMiddleware(loggingMiddleware(h))
	}
	r.Handle("/sendMessageToGPT", wrap(http.HandlerFunc(compatHandler.SendMessageToGPT))).Methods(http.MethodPost)
	r.Handle("/getPrompt", wrap(http.HandlerFunc(compatHandler.GetPrompt))).Methods(http.MethodGet)
	r.Handle("/updatePrompt", wrap(authMiddleware(adminMiddleware(http.HandlerFunc(compatHandler.UpdatePrompt))))).Methods(http.MethodPost)
	r.Handle("/theQuestionGPT", wrap(http.HandlerFunc(compatHandler.TheQuestion))).Methods(http.MethodPost)
	r.Handle("/leaderboard", wrap(http.HandlerFunc(compatHandler.Leaderboard))).Methods(http.MethodGet)

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
