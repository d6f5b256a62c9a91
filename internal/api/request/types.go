package request

// CreateGuestRequest is the request body for creating a guest session
type CreateGuestRequest struct {
	Email string `json:"email"`
}

// RegisterRequest is the request body for registering an account
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest is the request body for logging in
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SendMessageRequest is the request body for sending a chat message
type SendMessageRequest struct {
	To      string `json:"to"`
	Message string `json:"message"`
}

// GuessRequest is the request body for the seeker's accusation
type GuessRequest struct {
	Accused string `json:"accused"`
}

// UpdatePromptRequest is the request body for replacing the AI system prompt
type UpdatePromptRequest struct {
	Prompt string `json:"prompt"`
}

// QuestionRequest is the request body for the question mini-game
type QuestionRequest struct {
	Email       string `json:"email"`
	Username    string `json:"username"`
	Fingerprint string `json:"fingerprint"`
	Input       string `json:"input"`
}

// LegacySendMessageRequest is the body of the original frontend's
// synchronous AI chat route
type LegacySendMessageRequest struct {
	Message  string `json:"message"`
	UserID   string `json:"userId"`
	RoomCode string `json:"roomCode"`
}

// LegacyUpdatePromptRequest is the body of the original frontend's
// prompt update route
type LegacyUpdatePromptRequest struct {
	NewPrompt string `json:"newPrompt"`
}
