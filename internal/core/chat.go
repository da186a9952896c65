package core

// ChatRole tags one turn of the follow-up conversation.
type ChatRole string

const (
	RoleUser  ChatRole = "user"
	RoleModel ChatRole = "model"
)

// ChatMessage is a single role-tagged turn. The caller owns the transcript and
// replays it in full on every request; the server holds no session state.
type ChatMessage struct {
	Role ChatRole `json:"role"`
	Text string   `json:"text"`
}

// ChatRequest is one follow-up question about previously reviewed code.
type ChatRequest struct {
	Code     string        `json:"code,omitempty"`
	Question string        `json:"question"`
	History  []ChatMessage `json:"history,omitempty"`
	Model    string        `json:"model,omitempty"`
	ErrorLog string        `json:"errorLog,omitempty"`
}
