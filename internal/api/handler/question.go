package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/aiguessr/aiguessr-go/internal/api/request"
	"github.com/aiguessr/aiguessr-go/internal/api/response"
	"github.com/aiguessr/aiguessr-go/internal/model"
	"github.com/aiguessr/aiguessr-go/internal/services/question"
)

// QuestionHandler handles the question mini-game endpoints
type QuestionHandler struct {
	questionController question.ControllerInterface
}

// NewQuestionHandler creates a new question handler
func NewQuestionHandler(questionController question.ControllerInterface) *QuestionHandler {
	return &QuestionHandler{
		questionController: questionController,
	}
}

// Submit handles POST /api/v1/question
func (h *QuestionHandler) Submit(w http.ResponseWriter, r *http.Request) {
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

// Leaderboard handles GET /api/v1/question/leaderboard
func (h *QuestionHandler) Leaderboard(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			WriteError(w, NewInvalidRequestError("limit must be a non-negative integer"))
			return
		}
		limit = n
	}

	scores, err := h.questionController.Leaderboard(r.Context(), limit)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.LeaderboardFromStorage(scores))
}
