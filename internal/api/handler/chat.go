package handler

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/aiguessr/aiguessr-go/internal/api/middleware"
	"github.com/aiguessr/aiguessr-go/internal/api/request"
	"github.com/aiguessr/aiguessr-go/internal/api/response"
	"github.com/aiguessr/aiguessr-go/internal/model"
	"github.com/aiguessr/aiguessr-go/internal/services/chat"
	"github.com/aiguessr/aiguessr-go/internal/sse"
)

// ChatHandler handles chat endpoints
type ChatHandler struct {
	chatController chat.ControllerInterface
	broadcaster    *sse.Broadcaster
	logger         *slog.Logger
}

// NewChatHandler creates a new chat handler
func NewChatHandler(chatController chat.ControllerInterface, broadcaster *sse.Broadcaster, logger *slog.Logger) *ChatHandler {
	return &ChatHandler{
		chatController: chatController,
		broadcaster:    broadcaster,
		logger:         logger.With(slog.String("component", "chat-handler")),
	}
}

// Send handles POST /api/v1/rooms/{code}/messages
// When the message is addressed to the AI respondent, its reply is
// produced in the background and pushed over SSE once the simulated
// thinking and typing delays elapse.
func (h *ChatHandler) Send(w http.ResponseWriter, r *http.Request) {
	session := middleware.MustGetSession(r.Context())
	code := model.RoomCode(mux.Vars(r)["code"])

	var req request.SendMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}
	if req.To == "" {
		WriteError(w, NewInvalidRequestError("to is required"))
		return
	}

	to := model.Identity(req.To)
	msg, err := h.chatController.SendMessage(r.Context(), code, session.Email, to, req.Message)
	if err != nil {
		WriteError(w, err)
		return
	}

	if h.broadcaster != nil {
		h.broadcaster.BroadcastMessage(code, msg)
	}

	if model.IsAIIdentity(to) {
		// Outlives the request; the reply arrives long after this
		// response is written.
		go h.deliverAIReply(code, session.Email)
	}

	response.JSON(w, http.StatusCreated, response.MessageFromModel(msg))
}

// Conversation handles GET /api/v1/rooms/{code}/messages?with={identity}
func (h *ChatHandler) Conversation(w http.ResponseWriter, r *http.Request) {
	session := middleware.MustGetSession(r.Context())
	code := model.RoomCode(mux.Vars(r)["code"])

	other := model.Identity(r.URL.Query().Get("with"))
	if other == "" {
		WriteError(w, NewInvalidRequestError("with query parameter is required"))
		return
	}

	msgs, err := h.chatController.Conversation(r.Context(), code, session.Email, other)
	if err != nil {
		WriteError(w, err)
		return
	}

	state, remaining, err := h.chatController.TurnInfo(r.Context(), code, session.Email, other)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.MessageList{
		Messages: response.MessagesFromModel(msgs),
		Turn: response.TurnInfo{
			State:          string(state),
			QuotaRemaining: remaining,
		},
	})
}

// Turn handles GET /api/v1/rooms/{code}/turn?with={identity}
func (h *ChatHandler) Turn(w http.ResponseWriter, r *http.Request) {
	session := middleware.MustGetSession(r.Context())
	code := model.RoomCode(mux.Vars(r)["code"])

	other := model.Identity(r.URL.Query().Get("with"))
	if other == "" {
		WriteError(w, NewInvalidRequestError("with query parameter is required"))
		return
	}

	state, remaining, err := h.chatController.TurnInfo(r.Context(), code, session.Email, other)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.TurnInfo{
		State:          string(state),
		QuotaRemaining: remaining,
	})
}

func (h *ChatHandler) deliverAIReply(code model.RoomCode, human model.Identity) {
	reply, err := h.chatController.DeliverAIReply(context.Background(), code, human)
	if err != nil {
		// The round ending mid-reply is expected, not a fault
		if errors.Is(err, model.ErrRoundNotActive) || errors.Is(err, model.ErrGameOver) {
			return
		}
		h.logger.Error("ai reply failed",
			slog.String("room", string(code)),
			slog.String("human", string(human)),
			slog.Any("error", err))
		return
	}

	if h.broadcaster != nil {
		h.broadcaster.BroadcastMessage(code, reply)
	}
}
