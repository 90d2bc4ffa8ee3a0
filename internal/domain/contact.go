package domain

import "time"

// ContactStatus tracks how far a lead has progressed.
type ContactStatus string

const (
	ContactStatusPending   ContactStatus = "pending"
	ContactStatusContacted ContactStatus = "contacted"
	ContactStatusConverted ContactStatus = "converted"
	ContactStatusClosed    ContactStatus = "closed"
)

// ContactSource is the channel a lead arrived through.
type ContactSource string

const (
	ContactSourceForm     ContactSource = "form"
	ContactSourceWhatsApp ContactSource = "whatsapp"
	ContactSourcePhone    ContactSource = "phone"
)

// Contact is a lead captured by the contact form.
type Contact struct {
	ID        string        `json:"id"`
	Name      string        `json:"name"`
	Phone     string        `json:"phone"`
	Email     *string       `json:"email"`
	Service   *string       `json:"service"`
	Message   string        `json:"message"`
	Source    ContactSource `json:"source"`
	Status    ContactStatus `json:"status"`
	CreatedAt time.Time     `json:"created_at"`
}
