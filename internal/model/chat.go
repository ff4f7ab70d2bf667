package model

// Chat roles for assistant transcripts.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// ChatMessage is one turn of an assistant conversation. Transcripts are
// session-scoped and never touch the database.
type ChatMessage struct {
	Role      string `json:"role"`
	Content   string `json:"content"`
	CreatedAt int64  `json:"created_at"` // epoch milliseconds
}

// AskRequest is the payload for an assistant query.
type AskRequest struct {
	SessionID string `json:"session_id"`
	Query     string `json:"query"`
}

// AskResponse carries the assistant turn plus the session id so a first
// request without one learns its session.
type AskResponse struct {
	SessionID string      `json:"session_id"`
	Message   ChatMessage `json:"message"`
	Provider  string      `json:"provider"`
}
