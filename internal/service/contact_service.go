package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/tmhigienizacao/site-api/internal/domain"
	"github.com/tmhigienizacao/site-api/internal/events"
	"github.com/tmhigienizacao/site-api/internal/observability"
	"github.com/tmhigienizacao/site-api/internal/repository"
	apperrors "github.com/tmhigienizacao/site-api/pkg/util"
)

// ContactSubmission is a lead as received from the public form.
type ContactSubmission struct {
	Name    string
	Phone   string
	Email   *string
	Service *string
	Message string
	Source  domain.ContactSource
}

// ContactService handles lead intake and status tracking.
type ContactService struct {
	contacts   repository.ContactRepository
	dispatcher events.Dispatcher
	logger     *zap.Logger
	metrics    *observability.Metrics
	now        func() time.Time
}

// NewContactService builds the service.
func NewContactService(contacts repository.ContactRepository, dispatcher events.Dispatcher, logger *zap.Logger, metrics *observability.Metrics) *ContactService {
	return &ContactService{
		contacts:   contacts,
		dispatcher: dispatcher,
		logger:     logger,
		metrics:    metrics,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// Submit stores a new lead with a generated id, creation time and pending status.
func (s *ContactService) Submit(ctx context.Context, sub ContactSubmission) (*domain.Contact, error) {
	source := sub.Source
	if source == "" {
		source = domain.ContactSourceForm
	}
	contact := &domain.Contact{
		ID:        uuid.NewString(),
		Name:      sub.Name,
		Phone:     sub.Phone,
		Email:     sub.Email,
		Service:   sub.Service,
		Message:   sub.Message,
		Source:    source,
		Status:    domain.ContactStatusPending,
		CreatedAt: s.now(),
	}
	if err := s.contacts.Create(ctx, contact); err != nil {
		return nil, err
	}
	s.metrics.RecordContact(string(source))

	s.publish(ctx, events.Event{
		Type:      events.EventContactCreated,
		ContactID: contact.ID,
		Payload: events.ContactCreatedPayload{
			Name:    contact.Name,
			Phone:   contact.Phone,
			Service: contact.Service,
			Source:  contact.Source,
		},
	})
	return contact, nil
}

// List returns every contact, newest first.
func (s *ContactService) List(ctx context.Context) ([]domain.Contact, error) {
	return s.contacts.ListNewestFirst(ctx)
}

// UpdateStatus moves a lead to a new status on behalf of actor.
func (s *ContactService) UpdateStatus(ctx context.Context, actor, id string, status domain.ContactStatus) (*domain.Contact, error) {
	if !ValidContactStatus(status) {
		return nil, apperrors.NewValidationError("invalid contact status", map[string]any{"status": status})
	}
	previous, err := s.contacts.GetByID(ctx, id)
	if err != nil {
		return nil, resourceError(err, "Contact")
	}
	updated, err := s.contacts.UpdateStatus(ctx, id, status)
	if err != nil {
		return nil, resourceError(err, "Contact")
	}

	if previous.Status != updated.Status {
		s.publish(ctx, events.Event{
			Type:      events.EventContactStatusChanged,
			ContactID: id,
			Actor:     actor,
			Payload: events.ContactStatusChangedPayload{
				OldStatus: previous.Status,
				NewStatus: updated.Status,
			},
		})
	}
	return updated, nil
}

// Delete removes a contact.
func (s *ContactService) Delete(ctx context.Context, id string) error {
	return resourceError(s.contacts.Delete(ctx, id), "Contact")
}

// publish fills event metadata and dispatches it. Delivery failures are logged
// and never fail the request that caused them.
func (s *ContactService) publish(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	event.ID = uuid.NewString()
	event.Timestamp = s.now()
	if err := s.dispatcher.Publish(ctx, event); err != nil {
		s.logger.Warn("event delivery failed",
			zap.String("event_type", string(event.Type)),
			zap.String("contact_id", event.ContactID),
			zap.Error(err))
	}
}

// ValidContactStatus reports whether status is one of the tracked lead states.
func ValidContactStatus(status domain.ContactStatus) bool {
	switch status {
	case domain.ContactStatusPending, domain.ContactStatusContacted, domain.ContactStatusConverted, domain.ContactStatusClosed:
		return true
	}
	return false
}
