package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/tmhigienizacao/site-api/internal/domain"
	"github.com/tmhigienizacao/site-api/internal/repository"
	apperrors "github.com/tmhigienizacao/site-api/pkg/util"
)

const noFieldsMessage = "No fields to update"

// ContentService serves the site content: services, pricing, testimonials and company info.
type ContentService struct {
	services     repository.ServiceRepository
	pricing      repository.PricingRepository
	testimonials repository.TestimonialRepository
	company      repository.CompanyInfoRepository
	now          func() time.Time
}

// NewContentService builds the service.
func NewContentService(repos *repository.Repositories) *ContentService {
	return &ContentService{
		services:     repos.Services,
		pricing:      repos.Pricing,
		testimonials: repos.Testimonials,
		company:      repos.CompanyInfo,
		now:          func() time.Time { return time.Now().UTC() },
	}
}

// ListServices returns active services, or all of them when includeInactive is set.
func (s *ContentService) ListServices(ctx context.Context, includeInactive bool) ([]domain.Service, error) {
	return s.services.List(ctx, !includeInactive)
}

// CreateService stamps id and creation time and stores the service.
func (s *ContentService) CreateService(ctx context.Context, svc domain.Service) (*domain.Service, error) {
	svc.ID = uuid.NewString()
	svc.CreatedAt = s.now()
	if svc.Features == nil {
		svc.Features = []string{}
	}
	if err := s.services.Create(ctx, &svc); err != nil {
		return nil, err
	}
	return &svc, nil
}

// UpdateService applies a partial update.
func (s *ContentService) UpdateService(ctx context.Context, id string, patch domain.ServicePatch) (*domain.Service, error) {
	if patch.Empty() {
		return nil, apperrors.NewValidationError(noFieldsMessage, nil)
	}
	svc, err := s.services.Update(ctx, id, patch)
	if err != nil {
		return nil, resourceError(err, "Service")
	}
	return svc, nil
}

// DeleteService removes a service.
func (s *ContentService) DeleteService(ctx context.Context, id string) error {
	return resourceError(s.services.Delete(ctx, id), "Service")
}

// ListPricing returns active pricing categories, or all when includeInactive is set.
func (s *ContentService) ListPricing(ctx context.Context, includeInactive bool) ([]domain.PricingCategory, error) {
	return s.pricing.List(ctx, !includeInactive)
}

// CreatePricing stores a new pricing category.
func (s *ContentService) CreatePricing(ctx context.Context, cat domain.PricingCategory) (*domain.PricingCategory, error) {
	cat.ID = uuid.NewString()
	cat.CreatedAt = s.now()
	if cat.Items == nil {
		cat.Items = []domain.PricingItem{}
	}
	if err := s.pricing.Create(ctx, &cat); err != nil {
		return nil, err
	}
	return &cat, nil
}

// UpdatePricing applies a partial update.
func (s *ContentService) UpdatePricing(ctx context.Context, id string, patch domain.PricingCategoryPatch) (*domain.PricingCategory, error) {
	if patch.Empty() {
		return nil, apperrors.NewValidationError(noFieldsMessage, nil)
	}
	cat, err := s.pricing.Update(ctx, id, patch)
	if err != nil {
		return nil, resourceError(err, "Pricing category")
	}
	return cat, nil
}

// DeletePricing removes a pricing category.
func (s *ContentService) DeletePricing(ctx context.Context, id string) error {
	return resourceError(s.pricing.Delete(ctx, id), "Pricing category")
}

// ListTestimonials returns active testimonials, or all when includeInactive is set.
func (s *ContentService) ListTestimonials(ctx context.Context, includeInactive bool) ([]domain.Testimonial, error) {
	return s.testimonials.List(ctx, !includeInactive)
}

// CreateTestimonial stores a new testimonial.
func (s *ContentService) CreateTestimonial(ctx context.Context, t domain.Testimonial) (*domain.Testimonial, error) {
	if err := validateRating(t.Rating); err != nil {
		return nil, err
	}
	t.ID = uuid.NewString()
	t.CreatedAt = s.now()
	if err := s.testimonials.Create(ctx, &t); err != nil {
		return nil, err
	}
	return &t, nil
}

// UpdateTestimonial applies a partial update.
func (s *ContentService) UpdateTestimonial(ctx context.Context, id string, patch domain.TestimonialPatch) (*domain.Testimonial, error) {
	if patch.Empty() {
		return nil, apperrors.NewValidationError(noFieldsMessage, nil)
	}
	if patch.Rating != nil {
		if err := validateRating(*patch.Rating); err != nil {
			return nil, err
		}
	}
	t, err := s.testimonials.Update(ctx, id, patch)
	if err != nil {
		return nil, resourceError(err, "Testimonial")
	}
	return t, nil
}

// DeleteTestimonial removes a testimonial.
func (s *ContentService) DeleteTestimonial(ctx context.Context, id string) error {
	return resourceError(s.testimonials.Delete(ctx, id), "Testimonial")
}

// CompanyInfo returns the stored company info, or the built-in default.
func (s *ContentService) CompanyInfo(ctx context.Context) (*domain.CompanyInfo, error) {
	info, err := s.company.Get(ctx)
	if errors.Is(err, apperrors.ErrNotFound) {
		def := domain.DefaultCompanyInfo()
		return &def, nil
	}
	return info, err
}

// ReplaceCompanyInfo upserts the singleton and returns what was stored.
func (s *ContentService) ReplaceCompanyInfo(ctx context.Context, info domain.CompanyInfo) (*domain.CompanyInfo, error) {
	if err := s.company.Replace(ctx, info); err != nil {
		return nil, err
	}
	return s.company.Get(ctx)
}

func validateRating(rating int) error {
	if rating < 1 || rating > 5 {
		return apperrors.NewValidationError("rating must be between 1 and 5", map[string]any{"rating": rating})
	}
	return nil
}

// resourceError turns the repository not-found sentinel into a named 404.
func resourceError(err error, resource string) error {
	if errors.Is(err, apperrors.ErrNotFound) {
		return apperrors.NewNotFound(resource)
	}
	return err
}
