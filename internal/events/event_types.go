package events

import (
	"time"

	"github.com/tmhigienizacao/site-api/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventContactCreated       EventType = "contact_created"
	EventContactStatusChanged EventType = "contact_status_changed"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	ContactID string      `json:"contact_id"`
	Actor     string      `json:"actor,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// ContactCreatedPayload payload.
type ContactCreatedPayload struct {
	Name    string               `json:"name"`
	Phone   string               `json:"phone"`
	Service *string              `json:"service,omitempty"`
	Source  domain.ContactSource `json:"source"`
}

// ContactStatusChangedPayload payload.
type ContactStatusChangedPayload struct {
	OldStatus domain.ContactStatus `json:"old_status"`
	NewStatus domain.ContactStatus `json:"new_status"`
}
