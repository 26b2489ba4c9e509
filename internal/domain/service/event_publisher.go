package service

import (
	"context"
	"time"
)

// ContactMessageEvent is a contact form submission handed to the mailer.
type ContactMessageEvent struct {
	RequestID string    `json:"request_id,omitempty"` // For distributed tracing
	MessageID string    `json:"message_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	IP        string    `json:"ip,omitempty"`
	SentAt    time.Time `json:"sent_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	PublishContactMessage(ctx context.Context, event *ContactMessageEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
