package handler

import (
	"encoding/json"
	"net/http"

	"github.com/aiguessr/aiguessr-go/internal/api/request"
	"github.com/aiguessr/aiguessr-go/internal/api/response"
	"github.com/aiguessr/aiguessr-go/internal/model"
	"github.com/aiguessr/aiguessr-go/internal/services/chat"
	"github.com/aiguessr/aiguessr-go/internal/services/prompt"
	"github.com/aiguessr/aiguessr-go/internal/services/question"
	"github.com/aiguessr/aiguessr-go/internal/sse"
)

// CompatHandler serves the root-level routes the original frontend
// calls. These mirror the /api/v1 surface but keep the legacy paths
// and body shapes.
type CompatHandler struct {
	chatController     chat.ControllerInterface
	promptController   prompt.ControllerInterface
	questionController question.ControllerInterface
	broadcaster        *sse.Broadcaster
}

// NewCompatHandler creates a new compatibility handler
func NewCompatHandler(
	chatController chat.ControllerInterface,
	promptController prompt.ControllerInterface,
	questionController question.ControllerInterface,
	broadcaster *sse.Broadcaster,
) *CompatHandler {
	return &CompatHandler{
		chatController:     chatController,
		promptController:   promptController,
		questionController: questionController,
		broadcaster:        broadcaster,
	}
}

// SendMessageToGPT handles POST /sendMessageToGPT
// Unlike the /api/v1 chat route, the reply is produced synchronously
// and returned in the response body; the caller waits through the
// simulated thinking and typing delays.
func (h *CompatHandler) SendMessageToGPT(w http.ResponseWriter, r *http.Request) {
	var req request.LegacySendMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}
	if req.RoomCode == "" || req.UserID == "" {
		WriteError(w, NewInvalidRequestError("userId and roomCode are required"))
		return
	}

	code := model.RoomCode(req.RoomCode)
	from := model.Identity(req.UserID)

	msg, err := h.chatController.SendMessage(r.Context(), code, from, model.AIIdentity, req.Message)
	if err != nil {
		WriteError(w, err)
		return
	}
	if h.broadcaster != nil {
		h.broadcaster.BroadcastMessage(code, msg)
	}

	reply, err := h.chatController.DeliverAIReply(r.Context(), code, from)
	if err != nil {
		WriteError(w, err)
		return
	}
	if h.broadcaster != nil {
		h.broadcaster.BroadcastMessage(code, reply)
	}

	response.JSON(w, http.StatusOK, response.Reply{Reply: reply.Message})
}

// GetPrompt handles GET /getPrompt
func (h *CompatHandler) GetPrompt(w http.ResponseWriter, r *http.Request) {
	p, err := h.promptController.Get(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.Prompt{Prompt: p})
}

// UpdatePrompt handles POST /updatePrompt (admin only)
func (h *CompatHandler) UpdatePrompt(w http.ResponseWriter, r *http.Request) {
	var req request.LegacyUpdatePromptRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	if err := h.promptController.Update(r.Context(), req.NewPrompt); err != nil {
		WriteError(w, err)
		return
	}

	response.NoContent(w)
}

// TheQuestion handles POST /theQuestionGPT
func (h *CompatHandler) TheQuestion(w http.ResponseWriter, r *http.Request) {
	var req request.QuestionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	score, err := h.questionController.Submit(r.Context(), question.Submission{
		Email:       model.Identity(req.Email),
		Username:    req.Username,
		Fingerprint: req.Fingerprint,
		Input:       req.Input,
	})
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.QuestionScoreFromStorage(score))
}

// Leaderboard handles GET /leaderboard
func (h *CompatHandler) Leaderboard(w http.ResponseWriter, r *http.Request) {
	scores, err := h.questionController.Leaderboard(r.Context(), 0)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.LeaderboardFromStorage(scores))
}
