package dto

import "github.com/tmhigienizacao/site-api/internal/domain"

// ServiceCreateRequest payload.
type ServiceCreateRequest struct {
	Title       string   `json:"title" validate:"required"`
	Description string   `json:"description" validate:"required"`
	Icon        string   `json:"icon" validate:"required"`
	Features    []string `json:"features" validate:"required"`
	Active      *bool    `json:"active"`
}

// ToDomain converts the payload; active defaults to true.
func (r ServiceCreateRequest) ToDomain() domain.Service {
	return domain.Service{
		Title:       r.Title,
		Description: r.Description,
		Icon:        r.Icon,
		Features:    r.Features,
		Active:      boolOrTrue(r.Active),
	}
}

// ServiceUpdateRequest payload. Omitted fields are left unchanged.
type ServiceUpdateRequest struct {
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	Icon        *string  `json:"icon"`
	Features    []string `json:"features"`
	Active      *bool    `json:"active"`
}

func (r ServiceUpdateRequest) ToPatch() domain.ServicePatch {
	return domain.ServicePatch{
		Title:       r.Title,
		Description: r.Description,
		Icon:        r.Icon,
		Features:    r.Features,
		Active:      r.Active,
	}
}

// PricingItemRequest is a single price line.
type PricingItemRequest struct {
	Name        string  `json:"name" validate:"required"`
	Price       string  `json:"price" validate:"required"`
	Description *string `json:"description"`
}

// PricingCreateRequest payload.
type PricingCreateRequest struct {
	Category string               `json:"category" validate:"required"`
	Items    []PricingItemRequest `json:"items" validate:"required,dive"`
	Active   *bool                `json:"active"`
}

func (r PricingCreateRequest) ToDomain() domain.PricingCategory {
	return domain.PricingCategory{
		Category: r.Category,
		Items:    toPricingItems(r.Items),
		Active:   boolOrTrue(r.Active),
	}
}

// PricingUpdateRequest payload.
type PricingUpdateRequest struct {
	Category *string              `json:"category"`
	Items    []PricingItemRequest `json:"items" validate:"omitempty,dive"`
	Active   *bool                `json:"active"`
}

func (r PricingUpdateRequest) ToPatch() domain.PricingCategoryPatch {
	return domain.PricingCategoryPatch{
		Category: r.Category,
		Items:    toPricingItems(r.Items),
		Active:   r.Active,
	}
}

// TestimonialCreateRequest payload.
type TestimonialCreateRequest struct {
	Name     string `json:"name" validate:"required"`
	Location string `json:"location" validate:"required"`
	Rating   int    `json:"rating" validate:"required,min=1,max=5"`
	Text     string `json:"text" validate:"required"`
	Active   *bool  `json:"active"`
}

func (r TestimonialCreateRequest) ToDomain() domain.Testimonial {
	return domain.Testimonial{
		Name:     r.Name,
		Location: r.Location,
		Rating:   r.Rating,
		Text:     r.Text,
		Active:   boolOrTrue(r.Active),
	}
}

// TestimonialUpdateRequest payload.
type TestimonialUpdateRequest struct {
	Name     *string `json:"name"`
	Location *string `json:"location"`
	Rating   *int    `json:"rating" validate:"omitempty,min=1,max=5"`
	Text     *string `json:"text"`
	Active   *bool   `json:"active"`
}

func (r TestimonialUpdateRequest) ToPatch() domain.TestimonialPatch {
	return domain.TestimonialPatch{
		Name:     r.Name,
		Location: r.Location,
		Rating:   r.Rating,
		Text:     r.Text,
		Active:   r.Active,
	}
}

// CompanyInfoRequest replaces the company info. Callers should start from
// NewCompanyInfoRequest so omitted fields keep their defaults.
type CompanyInfoRequest struct {
	Name         string `json:"name"`
	Location     string `json:"location"`
	Phone        string `json:"phone"`
	WhatsApp     string `json:"whatsapp"`
	Email        string `json:"email"`
	Address      string `json:"address"`
	WorkingHours string `json:"workingHours"`
}

// NewCompanyInfoRequest returns a request pre-filled with the default company info.
func NewCompanyInfoRequest() CompanyInfoRequest {
	def := domain.DefaultCompanyInfo()
	return CompanyInfoRequest(def)
}

func (r CompanyInfoRequest) ToDomain() domain.CompanyInfo {
	return domain.CompanyInfo(r)
}

func toPricingItems(items []PricingItemRequest) []domain.PricingItem {
	if items == nil {
		return nil
	}
	result := make([]domain.PricingItem, 0, len(items))
	for _, item := range items {
		result = append(result, domain.PricingItem{
			Name:        item.Name,
			Price:       item.Price,
			Description: item.Description,
		})
	}
	return result
}

func boolOrTrue(v *bool) bool {
	if v == nil {
		return true
	}
	return *v
}
