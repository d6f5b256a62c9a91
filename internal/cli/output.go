package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(format string) *Output {
	return &Output{format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.format == "json" {
		errData := map[string]any{
			"error": map[string]string{
				"message": err.Error(),
			},
		}
		data, _ := json.Marshal(errData)
		fmt.Fprintln(os.Stderr, string(data))
	} else {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Println(string(data))
	} else {
		fmt.Println(msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case Session:
		o.printSession(v)
	case AuthResult:
		o.printAuthResult(v)
	case Room:
		o.printRoom(v)
	case Message:
		o.printMessage(v)
	case MessageList:
		o.printMessageList(v)
	case TurnInfo:
		o.printTurnInfo(v)
	case Prompt:
		o.printPrompt(v)
	case QuestionScore:
		o.printQuestionScore(v)
	case Leaderboard:
		o.printLeaderboard(v)
	case HealthResult:
		o.printHealthResult(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// Session response type (matches API)
type Session struct {
	Email   string `json:"email"`
	IsGuest bool   `json:"is_guest"`
	IsAdmin bool   `json:"is_admin,omitempty"`
}

// AuthResult combines session and token
type AuthResult struct {
	Session      Session `json:"session"`
	SessionToken string  `json:"session_token"`
}

// RoomPlayer response type
type RoomPlayer struct {
	Email    string    `json:"email"`
	Status   string    `json:"status"`
	State    string    `json:"state"`
	JoinedAt time.Time `json:"joined_at"`
}

// Room response type
type Room struct {
	Code      string       `json:"code"`
	Host      string       `json:"host"`
	Players   []RoomPlayer `json:"players"`
	Seeker    string       `json:"seeker,omitempty"`
	GameState string       `json:"game_state"`
	Winner    string       `json:"winner,omitempty"`
	Roster    []string     `json:"roster,omitempty"`
}

// Message response type
type Message struct {
	ID        string `json:"id"`
	From      string `json:"from"`
	To        string `json:"to"`
	Message   string `json:"message"`
	Timestamp int64  `json:"timestamp"`
}

// TurnInfo response type
type TurnInfo struct {
	State          string `json:"state"`
	QuotaRemaining int    `json:"quota_remaining"`
}

// MessageList response type
type MessageList struct {
	Messages []Message `json:"messages"`
	Turn     TurnInfo  `json:"turn"`
}

// Prompt response type
type Prompt struct {
	Prompt string `json:"prompt"`
}

// QuestionScore response type
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

// Leaderboard response type
type Leaderboard struct {
	Scores []QuestionScore `json:"scores"`
}

// HealthResult response type
type HealthResult struct {
	Status string `json:"status"`
}

func (o *Output) printSession(s Session) {
	fmt.Printf("Signed in as: %s\n", s.Email)
	if s.IsGuest {
		fmt.Println("Guest: yes")
	}
	if s.IsAdmin {
		fmt.Println("Admin: yes")
	}
}

func (o *Output) printAuthResult(a AuthResult) {
	o.printSession(a.Session)
	fmt.Printf("Token: %s\n", a.SessionToken)
}

func (o *Output) printRoom(r Room) {
	fmt.Printf("Room: %s\n", r.Code)
	fmt.Printf("State: %s\n", r.GameState)
	fmt.Printf("Host: %s\n", r.Host)
	if r.Seeker != "" {
		fmt.Printf("Seeker: %s\n", r.Seeker)
	}
	if r.Winner != "" {
		fmt.Printf("Winner: %s\n", r.Winner)
	}
	fmt.Printf("Players (%d):\n", len(r.Players))
	for _, p := range r.Players {
		marker := ""
		if p.Email == r.Host {
			marker = " [host]"
		}
		if p.Email == r.Seeker {
			marker += " [seeker]"
		}
		fmt.Printf("  - %s (%s, %s)%s\n", p.Email, p.State, p.Status, marker)
	}
	if len(r.Roster) > 0 {
		fmt.Printf("Roster: %s\n", strings.Join(r.Roster, ", "))
	}
}

func (o *Output) printMessage(m Message) {
	fmt.Printf("[%s -> %s] %s\n", m.From, m.To, m.Message)
}

func (o *Output) printMessageList(l MessageList) {
	if len(l.Messages) == 0 {
		fmt.Println("No messages yet")
	}
	for _, m := range l.Messages {
		o.printMessage(m)
	}
	fmt.Printf("Turn: %s (%d seeker messages left)\n", l.Turn.State, l.Turn.QuotaRemaining)
}

func (o *Output) printTurnInfo(t TurnInfo) {
	fmt.Printf("Turn: %s\n", t.State)
	fmt.Printf("Seeker messages left: %d\n", t.QuotaRemaining)
}

func (o *Output) printPrompt(p Prompt) {
	fmt.Println(p.Prompt)
}

func (o *Output) printQuestionScore(q QuestionScore) {
	fmt.Printf("Question: %s\n", q.Input)
	fmt.Printf("Total: %d points\n", q.TotalPoints)
	fmt.Printf("  Relevance:      %d\n", q.Relevance)
	fmt.Printf("  Clarity:        %d\n", q.Clarity)
	fmt.Printf("  Originality:    %d\n", q.Originality)
	fmt.Printf("  Human-likeness: %d\n", q.HumanLikeness)
	fmt.Printf("  Engagement:     %d\n", q.Engagement)
	if q.Explanation != "" {
		fmt.Printf("Judge: %s\n", q.Explanation)
	}
}

func (o *Output) printLeaderboard(l Leaderboard) {
	if len(l.Scores) == 0 {
		fmt.Println("No scores yet")
		return
	}
	fmt.Printf("Leaderboard (%d):\n", len(l.Scores))
	for i, s := range l.Scores {
		fmt.Printf("  %2d. %s - %d points - %q\n", i+1, s.Username, s.TotalPoints, s.Input)
	}
}

func (o *Output) printHealthResult(h HealthResult) {
	fmt.Printf("Status: %s\n", h.Status)
}
