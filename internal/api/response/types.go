package response

import (
	"time"

	"github.com/aiguessr/aiguessr-go/internal/model"
	"github.com/aiguessr/aiguessr-go/internal/services/auth"
	"github.com/aiguessr/aiguessr-go/internal/storage"
)

// Session represents an authenticated session in API responses
type Session struct {
	Email   string `json:"email"`
	IsGuest bool   `json:"is_guest"`
	IsAdmin bool   `json:"is_admin,omitempty"`
}

// AuthResponse is the response for authentication endpoints
type AuthResponse struct {
	Session      Session `json:"session"`
	SessionToken string  `json:"session_token"`
}

// AuthResponseFromSession creates an AuthResponse from a session
func AuthResponseFromSession(s *auth.Session) AuthResponse {
	return AuthResponse{
		Session: Session{
			Email:   string(s.Email),
			IsGuest: s.IsGuest,
			IsAdmin: s.IsAdmin,
		},
		SessionToken: s.Token,
	}
}

// Player represents a room member
type Player struct {
	Email    string    `json:"email"`
	Status   string    `json:"status"`
	State    string    `json:"state"`
	JoinedAt time.Time `json:"joined_at"`
}

// PlayerFromModel converts a model.Player to a response Player
func PlayerFromModel(p model.Player) Player {
	return Player{
		Email:    string(p.Email),
		Status:   string(p.Status),
		State:    string(p.State),
		JoinedAt: p.JoinedAt,
	}
}

// Room represents a room in API responses
type Room struct {
	Code      string   `json:"code"`
	Host      string   `json:"host"`
	Players   []Player `json:"players"`
	Seeker    string   `json:"seeker,omitempty"`
	GameState string   `json:"game_state"`
	Winner    string   `json:"winner,omitempty"`
	Roster    []string `json:"roster,omitempty"`
}

// RoomFromModel converts model.Room
func RoomFromModel(r *model.Room) Room {
	players := make([]Player, 0, len(r.Players))
	for _, p := range r.Players {
		players = append(players, PlayerFromModel(p))
	}

	roster := make([]string, len(r.Roster))
	for i, id := range r.Roster {
		roster[i] = string(id)
	}

	return Room{
		Code:      string(r.Code),
		Host:      string(r.Host),
		Players:   players,
		Seeker:    string(r.Seeker),
		GameState: string(r.GameState),
		Winner:    string(r.Winner),
		Roster:    roster,
	}
}

// Message represents a chat message
type Message struct {
	ID        string `json:"id"`
	From      string `json:"from"`
	To        string `json:"to"`
	Message   string `json:"message"`
	Timestamp int64  `json:"timestamp"`
}

// MessageFromModel converts model.Message
func MessageFromModel(m *model.Message) Message {
	return Message{
		ID:        string(m.ID),
		From:      string(m.From),
		To:        string(m.To),
		Message:   m.Message,
		Timestamp: m.Timestamp,
	}
}

// MessagesFromModel converts a slice of model.Message
func MessagesFromModel(msgs []model.Message) []Message {
	out := make([]Message, len(msgs))
	for i := range msgs {
		out[i] = MessageFromModel(&msgs[i])
	}
	return out
}

// TurnInfo reports whose move it is in one conversation
type TurnInfo struct {
	State          string `json:"state"`
	QuotaRemaining int    `json:"quota_remaining"`
}

// MessageList is the response for fetching a conversation
type MessageList struct {
	Messages []Message `json:"messages"`
	Turn     TurnInfo  `json:"turn"`
}

// Prompt is the response for fetching the AI system prompt
type Prompt struct {
	Prompt string `json:"prompt"`
}

// Reply is the response of the synchronous AI chat route
type Reply struct {
	Reply string `json:"reply"`
}

// QuestionScore represents a judged mini-game submission
type QuestionScore struct {
	Email         string    `json:"email"`
	Username      string    `json:"username"`
	Input         string    `json:"input"`
	Relevance     int       `json:"relevance"`
	Clarity       int       `json:"clarity"`
	Originality   int       `json:"originality"`
	HumanLikeness int       `json:"human_likeness"`
	Engagement    int       `json:"engagement"`
	TotalPoints   int       `json:"total_points"`
	Explanation   string    `json:"explanation"`
	SubmittedAt   time.Time `json:"submitted_at"`
}

// QuestionScoreFromStorage converts a stored score
func QuestionScoreFromStorage(s *storage.QuestionScore) QuestionScore {
	return QuestionScore{
		Email:         string(s.Email),
		Username:      s.Username,
		Input:         s.Input,
		Relevance:     s.Relevance,
		Clarity:       s.Clarity,
		Originality:   s.Originality,
		HumanLikeness: s.HumanLikeness,
		Engagement:    s.Engagement,
		TotalPoints:   s.TotalPoints,
		Explanation:   s.Explanation,
		SubmittedAt:   s.SubmittedAt,
	}
}

// Leaderboard is the response for the mini-game leaderboard
type Leaderboard struct {
	Scores []QuestionScore `json:"scores"`
}

// LeaderboardFromStorage converts stored scores
func LeaderboardFromStorage(scores []storage.QuestionScore) Leaderboard {
	out := make([]QuestionScore, len(scores))
	for i := range scores {
		out[i] = QuestionScoreFromStorage(&scores[i])
	}
	return Leaderboard{Scores: out}
}
