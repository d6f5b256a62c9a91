package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/aiguessr/aiguessr-go/internal/api/middleware"
	"github.com/aiguessr/aiguessr-go/internal/api/request"
	"github.com/aiguessr/aiguessr-go/internal/api/response"
	"github.com/aiguessr/aiguessr-go/internal/model"
	"github.com/aiguessr/aiguessr-go/internal/services/guess"
	"github.com/aiguessr/aiguessr-go/internal/sse"
)

// GuessHandler handles the seeker's accusation endpoint
type GuessHandler struct {
	guessController guess.ControllerInterface
	broadcaster     *sse.Broadcaster
}

// NewGuessHandler creates a new guess handler
func NewGuessHandler(guessController guess.ControllerInterface, broadcaster *sse.Broadcaster) *GuessHandler {
	return &GuessHandler{
		guessController: guessController,
		broadcaster:     broadcaster,
	}
}

// Guess handles POST /api/v1/rooms/{code}/guess
// A correct accusation ends the game with the seeker as winner. A wrong
// one eliminates the seeker and either starts a fresh round or ends the
// game when too few humans remain.
func (h *GuessHandler) Guess(w http.ResponseWriter, r *http.Request) {
	session := middleware.MustGetSession(r.Context())
	code := model.RoomCode(mux.Vars(r)["code"])

	var req request.GuessRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	rm, err := h.guessController.Guess(r.Context(), code, session.Email, model.Identity(req.Accused))
	if err != nil {
		WriteError(w, err)
		return
	}

	if h.broadcaster != nil {
		if rm.GameState == model.GameStateOver {
			h.broadcaster.BroadcastEvent(code, model.EventGameOver, model.GameOverPayload{
				Winner: rm.Winner,
			})
		} else {
			h.broadcaster.BroadcastEvent(code, model.EventRoundStarted, model.RoundStartedPayload{
				Seeker: rm.Seeker,
				Roster: rm.Roster,
			})
		}
	}

	response.JSON(w, http.StatusOK, response.RoomFromModel(rm))
}
