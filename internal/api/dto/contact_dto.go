package dto

import (
	"github.com/tmhigienizacao/site-api/internal/domain"
	"github.com/tmhigienizacao/site-api/internal/service"
)

// ContactCreateRequest is the public lead form payload. The site form posts
// blank strings for the optional email and service fields, and email is
// stored as typed.
type ContactCreateRequest struct {
	Name    string  `json:"name" validate:"required"`
	Phone   string  `json:"phone" validate:"required"`
	Email   *string `json:"email"`
	Service *string `json:"service"`
	Message string  `json:"message" validate:"required"`
	Source  string  `json:"source" validate:"omitempty,oneof=form whatsapp phone"`
}

func (r ContactCreateRequest) ToSubmission() service.ContactSubmission {
	return service.ContactSubmission{
		Name:    r.Name,
		Phone:   r.Phone,
		Email:   r.Email,
		Service: r.Service,
		Message: r.Message,
		Source:  domain.ContactSource(r.Source),
	}
}

// ContactCreateResponse acknowledges a received lead.
type ContactCreateResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	ContactID string `json:"contact_id"`
}

// ContactStatusUpdateRequest payload.
type ContactStatusUpdateRequest struct {
	Status string `json:"status" validate:"required,oneof=pending contacted converted closed"`
}
