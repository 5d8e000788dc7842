package events

import "time"

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventMemberCreated EventType = "member_created"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	MemberID  string      `json:"member_id"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// MemberCreatedPayload payload.
type MemberCreatedPayload struct {
	Email                  string `json:"email"`
	NewsletterSubscription bool   `json:"newsletter_subscription"`
}
