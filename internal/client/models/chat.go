package models

// ChatRequest is the body of POST /agent/chat. SessionID is omitted until
// the backend has assigned one.
type ChatRequest struct {
	Message   string `json:"message"`
	SessionID string `json:"session_id,omitempty"`
}

type ChatResponse struct {
	Response         string   `json:"response"`
	SessionID        string   `json:"session_id"`
	SuggestedActions []string `json:"suggested_actions"`
}
