package apierr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/aiguessr/aiguessr-go/internal/model"
	"github.com/aiguessr/aiguessr-go/internal/services/auth"
	"github.com/aiguessr/aiguessr-go/internal/services/question"
)

// APIError represents an API error response
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse wraps an APIError
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// Common error codes
const (
	CodeInvalidRequest     = "INVALID_REQUEST"
	CodeUnauthorized       = "UNAUTHORIZED"
	CodeForbidden          = "FORBIDDEN"
	CodeNotHost            = "NOT_HOST"
	CodeNotYourTurn        = "NOT_YOUR_TURN"
	CodeQuotaExhausted     = "QUOTA_EXHAUSTED"
	CodeMessageTooLong     = "MESSAGE_TOO_LONG"
	CodeEmptyMessage       = "EMPTY_MESSAGE"
	CodeRoomNotFound       = "ROOM_NOT_FOUND"
	CodeRoomDeleted        = "ROOM_DELETED"
	CodePlayerNotFound     = "PLAYER_NOT_FOUND"
	CodeNotInRoom          = "NOT_IN_ROOM"
	CodeNotInConversation  = "NOT_IN_CONVERSATION"
	CodeGameOver           = "GAME_OVER"
	CodeRoundNotActive     = "ROUND_NOT_ACTIVE"
	CodeNoPlayers          = "NO_PLAYERS"
	CodeNotSeeker          = "NOT_SEEKER"
	CodeNoGuessTarget      = "NO_GUESS_TARGET"
	CodeEmailExists        = "EMAIL_EXISTS"
	CodeInvalidEmail       = "INVALID_EMAIL"
	CodeInvalidCredentials = "INVALID_CREDENTIALS"
	CodeMissingFields      = "MISSING_FIELDS"
	CodeInternalError      = "INTERNAL_ERROR"
)

// httpError combines an HTTP status code with an APIError
type httpError struct {
	status   int
	apiError APIError
}

// Error implements error interface
func (e *httpError) Error() string {
	return e.apiError.Message
}

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	he := toHTTPError(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(he.status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: he.apiError})
}

// toHTTPError converts an error to an httpError
func toHTTPError(err error) *httpError {
	// Check for specific error types
	var he *httpError
	if errors.As(err, &he) {
		return he
	}

	// Map model errors
	switch {
	case errors.Is(err, model.ErrRoomNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeRoomNotFound, "Room not found"}}
	case errors.Is(err, model.ErrRoomDeleted):
		return &httpError{http.StatusGone, APIError{CodeRoomDeleted, "Room has been deleted"}}
	case errors.Is(err, model.ErrPlayerNotFound):
		return &httpError{http.StatusNotFound, APIError{CodePlayerNotFound, "Player not found"}}
	case errors.Is(err, model.ErrNotInRoom):
		return &httpError{http.StatusNotFound, APIError{CodeNotInRoom, "Not a member of this room"}}
	case errors.Is(err, model.ErrNotHost):
		return &httpError{http.StatusForbidden, APIError{CodeNotHost, "Only the host can perform this action"}}
	case errors.Is(err, model.ErrNoPlayers):
		return &httpError{http.StatusConflict, APIError{CodeNoPlayers, "No players in the room"}}
	case errors.Is(err, model.ErrGameOver):
		return &httpError{http.StatusConflict, APIError{CodeGameOver, "Game is already over"}}
	case errors.Is(err, model.ErrRoundNotActive):
		return &httpError{http.StatusConflict, APIError{CodeRoundNotActive, "No round is active"}}
	case errors.Is(err, model.ErrNotYourTurn):
		return &httpError{http.StatusForbidden, APIError{CodeNotYourTurn, "Not your turn"}}
	case errors.Is(err, model.ErrQuotaExhausted):
		return &httpError{http.StatusForbidden, APIError{CodeQuotaExhausted, "Message quota exhausted for this conversation"}}
	case errors.Is(err, model.ErrMessageTooLong):
		return &httpError{http.StatusBadRequest, APIError{CodeMessageTooLong, "Message exceeds length limit"}}
	case errors.Is(err, model.ErrEmptyMessage):
		return &httpError{http.StatusBadRequest, APIError{CodeEmptyMessage, "Message is empty"}}
	case errors.Is(err, model.ErrNotInConversation):
		return &httpError{http.StatusForbidden, APIError{CodeNotInConversation, "Not part of this conversation"}}
	case errors.Is(err, model.ErrNotSeeker):
		return &httpError{http.StatusForbidden, APIError{CodeNotSeeker, "Only the seeker can guess"}}
	case errors.Is(err, model.ErrNoGuessTarget):
		return &httpError{http.StatusBadRequest, APIError{CodeNoGuessTarget, "Invalid guess target"}}

	// Map auth errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		return &httpError{http.StatusUnauthorized, APIError{CodeInvalidCredentials, "Invalid email or password"}}
	case errors.Is(err, auth.ErrInvalidSession):
		return &httpError{http.StatusUnauthorized, APIError{CodeUnauthorized, "Invalid or expired session"}}
	case errors.Is(err, auth.ErrEmailExists):
		return &httpError{http.StatusConflict, APIError{CodeEmailExists, "Email already registered"}}
	case errors.Is(err, auth.ErrInvalidEmail):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidEmail, "Not a valid email address"}}

	// Map question mini-game errors
	case errors.Is(err, question.ErrMissingFields):
		return &httpError{http.StatusBadRequest, APIError{CodeMissingFields, "Input, email, username and fingerprint are required"}}

	default:
		return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
	}
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, message}}
}

// NewUnauthorizedError creates an unauthorized error
func NewUnauthorizedError() error {
	return &httpError{http.StatusUnauthorized, APIError{CodeUnauthorized, "Authentication required"}}
}

// NewForbiddenError creates a forbidden error
func NewForbiddenError(message string) error {
	return &httpError{http.StatusForbidden, APIError{CodeForbidden, message}}
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
}
