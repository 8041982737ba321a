package websocket

import "github.com/campushire/driveport-backend/internal/model"

// ─── Actions (Client → Server) ──────────────────────────────────────

type Action string

const (
	ActionPing Action = "ping"
)

// RequestEnvelope is used to peek at the action before full parsing.
type RequestEnvelope struct {
	Action Action `json:"action"`
}

// ─── Events (Server → Client) ───────────────────────────────────────

type Event string

const (
	EventProgress Event = "progress"
	EventError    Event = "error"
	EventPong     Event = "pong"
)

// ProgressResponse relays one email delivery progress update.
type ProgressResponse struct {
	Event    Event                    `json:"event"`
	Progress model.EmailProgressEvent `json:"progress"`
}

type ErrorResponse struct {
	Event Event  `json:"event"`
	Error string `json:"error"`
}

type PongResponse struct {
	Event Event `json:"event"`
}
