package handler

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/aiguessr/aiguessr-go/internal/api/middleware"
	"github.com/aiguessr/aiguessr-go/internal/api/response"
	"github.com/aiguessr/aiguessr-go/internal/model"
	"github.com/aiguessr/aiguessr-go/internal/services/room"
	"github.com/aiguessr/aiguessr-go/internal/sse"
)

// RoomHandler handles room lifecycle endpoints
type RoomHandler struct {
	roomController room.ControllerInterface
	hubManager     *sse.HubManager
	broadcaster    *sse.Broadcaster
}

// NewRoomHandler creates a new room handler
func NewRoomHandler(roomController room.ControllerInterface, hubManager *sse.HubManager, broadcaster *sse.Broadcaster) *RoomHandler {
	return &RoomHandler{
		roomController: roomController,
		hubManager:     hubManager,
		broadcaster:    broadcaster,
	}
}

// Join handles POST /api/v1/rooms/{code}/join
// The room is created on first join; the first player becomes host.
func (h *RoomHandler) Join(w http.ResponseWriter, r *http.Request) {
	session := middleware.MustGetSession(r.Context())
	code := model.RoomCode(mux.Vars(r)["code"])

	rm, err := h.roomController.JoinRoom(r.Context(), code, session.Email)
	if err != nil {
		WriteError(w, err)
		return
	}

	if h.broadcaster != nil {
		if player, ok := rm.GetPlayer(session.Email); ok {
			h.broadcaster.BroadcastEvent(code, model.EventPlayerJoined, model.PlayerJoinedPayload{
				Player: player,
				IsHost: rm.Host == session.Email,
			})
		}
	}

	response.JSON(w, http.StatusOK, response.RoomFromModel(rm))
}

// Get handles GET /api/v1/rooms/{code}
func (h *RoomHandler) Get(w http.ResponseWriter, r *http.Request) {
	code := model.RoomCode(mux.Vars(r)["code"])

	rm, err := h.roomController.GetRoom(r.Context(), code)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.RoomFromModel(rm))
}

// Leave handles POST /api/v1/rooms/{code}/leave
// When the host leaves the whole room is torn down.
func (h *RoomHandler) Leave(w http.ResponseWriter, r *http.Request) {
	session := middleware.MustGetSession(r.Context())
	code := model.RoomCode(mux.Vars(r)["code"])

	rm, err := h.roomController.GetRoom(r.Context(), code)
	if err != nil {
		WriteError(w, err)
		return
	}
	wasHost := rm.Host == session.Email

	if err := h.roomController.LeaveRoom(r.Context(), code, session.Email); err != nil {
		WriteError(w, err)
		return
	}

	if h.broadcaster != nil {
		if wasHost {
			h.broadcaster.BroadcastRoomDeleted(code)
		} else {
			h.broadcaster.BroadcastEvent(code, model.EventPlayerLeft, model.PlayerLeftPayload{
				Identity: session.Email,
				WasHost:  false,
			})
		}
	}

	response.NoContent(w)
}

// Start handles POST /api/v1/rooms/{code}/start
func (h *RoomHandler) Start(w http.ResponseWriter, r *http.Request) {
	session := middleware.MustGetSession(r.Context())
	code := model.RoomCode(mux.Vars(r)["code"])

	rm, err := h.roomController.StartGame(r.Context(), code, session.Email)
	if err != nil {
		WriteError(w, err)
		return
	}

	h.broadcastRoundStarted(code, rm)
	response.JSON(w, http.StatusOK, response.RoomFromModel(rm))
}

// Restart handles POST /api/v1/rooms/{code}/restart
// Any member can restart after a finished game.
func (h *RoomHandler) Restart(w http.ResponseWriter, r *http.Request) {
	session := middleware.MustGetSession(r.Context())
	code := model.RoomCode(mux.Vars(r)["code"])

	rm, err := h.roomController.RestartGame(r.Context(), code, session.Email)
	if err != nil {
		WriteError(w, err)
		return
	}

	h.broadcastRoundStarted(code, rm)
	response.JSON(w, http.StatusOK, response.RoomFromModel(rm))
}

// Acknowledge handles POST /api/v1/rooms/{code}/ack
// The first client that observes the fresh round flips it into the
// free-chat phase.
func (h *RoomHandler) Acknowledge(w http.ResponseWriter, r *http.Request) {
	code := model.RoomCode(mux.Vars(r)["code"])

	rm, err := h.roomController.AcknowledgeRoundStart(r.Context(), code)
	if err != nil {
		WriteError(w, err)
		return
	}

	if h.broadcaster != nil {
		h.broadcaster.BroadcastEvent(code, model.EventRoundAcked, nil)
	}

	response.JSON(w, http.StatusOK, response.RoomFromModel(rm))
}

// Events handles GET /api/v1/rooms/{code}/events
// Upgrades the connection to a server-sent event stream for the room.
func (h *RoomHandler) Events(w http.ResponseWriter, r *http.Request) {
	session := middleware.MustGetSession(r.Context())
	code := model.RoomCode(mux.Vars(r)["code"])

	rm, err := h.roomController.GetRoom(r.Context(), code)
	if err != nil {
		WriteError(w, err)
		return
	}
	if _, ok := rm.GetPlayer(session.Email); !ok {
		WriteError(w, model.ErrNotInRoom)
		return
	}

	hub := h.hubManager.GetOrCreateHub(code)
	sse.ServeSSE(w, r, hub, session.Email)
}

func (h *RoomHandler) broadcastRoundStarted(code model.RoomCode, rm *model.Room) {
	if h.broadcaster == nil {
		return
	}
	h.broadcaster.BroadcastEvent(code, model.EventRoundStarted, model.RoundStartedPayload{
		Seeker: rm.Seeker,
		Roster: rm.Roster,
	})
}
