package model

import "errors"

// Common errors used across the application
var (
	// Room errors
	ErrRoomNotFound   = errors.New("room not found")
	ErrRoomDeleted    = errors.New("room has been deleted")
	ErrNotInRoom      = errors.New("player is not in room")
	ErrAlreadyInRoom  = errors.New("player is already in room")
	ErrNotHost        = errors.New("player is not the host")
	ErrNoPlayers      = errors.New("no players in the room")
	ErrGameOver       = errors.New("game is already over")
	ErrRoundNotActive = errors.New("no round is active")

	// Chat errors
	ErrNotYourTurn       = errors.New("not this player's turn")
	ErrQuotaExhausted    = errors.New("seeker message quota exhausted")
	ErrMessageTooLong    = errors.New("message exceeds length limit")
	ErrEmptyMessage      = errors.New("message is empty")
	ErrNotInConversation = errors.New("player is not part of this conversation")

	// Guess errors
	ErrNotSeeker     = errors.New("only the seeker can make guesses")
	ErrNoGuessTarget = errors.New("no guess target supplied")

	// Player/account errors
	ErrPlayerNotFound = errors.New("player not found")

	// Prompt errors
	ErrPromptNotSet = errors.New("prompt not set")
)
