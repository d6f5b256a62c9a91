package handler

import (
	"encoding/json"
	"net/http"

	"github.com/aiguessr/aiguessr-go/internal/api/request"
	"github.com/aiguessr/aiguessr-go/internal/api/response"
	"github.com/aiguessr/aiguessr-go/internal/services/prompt"
)

// PromptHandler handles the AI system prompt endpoints
type PromptHandler struct {
	promptController prompt.ControllerInterface
}

// NewPromptHandler creates a new prompt handler
func NewPromptHandler(promptController prompt.ControllerInterface) *PromptHandler {
	return &PromptHandler{
		promptController: promptController,
	}
}

// Get handles GET /api/v1/prompt
func (h *PromptHandler) Get(w http.ResponseWriter, r *http.Request) {
	p, err := h.promptController.Get(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.Prompt{Prompt: p})
}

// Update handles PUT /api/v1/prompt (admin only)
func (h *PromptHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req request.UpdatePromptRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	if err := h.promptController.Update(r.Context(), req.Prompt); err != nil {
		WriteError(w, err)
		return
	}

	response.NoContent(w)
}
