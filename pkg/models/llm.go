package models

// Role tags a chat message sent to the LLM collaborator.
type Role string

const (
	RoleSystem Role = "system"
	RoleUser   Role = "user"
)

// Message is one role-tagged message in a completion request.
type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// CompletionRequest carries everything one completion call needs, including
// the caller's credential. Keys travel with the request rather than living in
// process state so concurrent requests with different callers stay isolated.
type CompletionRequest struct {
	Messages    []Message
	Model       string
	MaxTokens   int
	Temperature float32
	APIKey      string
}
