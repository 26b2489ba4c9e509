package service

import "context"

// Live message types pushed to admin sessions.
const (
	LiveMessageVisitorEvent = "visitor-event"
	LiveMessageSessionCount = "session-count"
)

// LiveMessage is a real-time notification for connected admin sessions.
type LiveMessage struct {
	Type string `json:"type"`
	Data any    `json:"data"`
}

// Broadcaster fans live messages out to connected admin sessions.
// Delivery is best-effort.
type Broadcaster interface {
	Broadcast(ctx context.Context, msg *LiveMessage)

	// SessionCount returns the number of connected admin sessions.
	SessionCount() int
}
