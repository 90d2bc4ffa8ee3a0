package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tmhigienizacao/site-api/internal/api/dto"
	"github.com/tmhigienizacao/site-api/internal/service"
)

// AdminContentHandler exposes CRUD over services, pricing, testimonials and company info.
type AdminContentHandler struct {
	content *service.ContentService
}

// NewAdminContentHandler constructs handler.
func NewAdminContentHandler(content *service.ContentService) *AdminContentHandler {
	return &AdminContentHandler{content: content}
}

func deleted(c *fiber.Ctx, kind string) error {
	return c.JSON(fiber.Map{"success": true, "message": kind + " deleted"})
}

// ListServices handles GET /api/admin/services.
func (h *AdminContentHandler) ListServices(c *fiber.Ctx) error {
	services, err := h.content.ListServices(c.UserContext(), true)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"services": services})
}

// CreateService handles POST /api/admin/services.
func (h *AdminContentHandler) CreateService(c *fiber.Ctx) error {
	var req dto.ServiceCreateRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}
	svc, err := h.content.CreateService(c.UserContext(), req.ToDomain())
	if err != nil {
		return err
	}
	return c.JSON(svc)
}

// UpdateService handles PUT /api/admin/services/:id.
func (h *AdminContentHandler) UpdateService(c *fiber.Ctx) error {
	var req dto.ServiceUpdateRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}
	svc, err := h.content.UpdateService(c.UserContext(), c.Params("id"), req.ToPatch())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "service": svc})
}

// DeleteService handles DELETE /api/admin/services/:id.
func (h *AdminContentHandler) DeleteService(c *fiber.Ctx) error {
	if err := h.content.DeleteService(c.UserContext(), c.Params("id")); err != nil {
		return err
	}
	return deleted(c, "Service")
}

// ListPricing handles GET /api/admin/pricing.
func (h *AdminContentHandler) ListPricing(c *fiber.Ctx) error {
	pricing, err := h.content.ListPricing(c.UserContext(), true)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"pricing": pricing})
}

// CreatePricing handles POST /api/admin/pricing.
func (h *AdminContentHandler) CreatePricing(c *fiber.Ctx) error {
	var req dto.PricingCreateRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}
	cat, err := h.content.CreatePricing(c.UserContext(), req.ToDomain())
	if err != nil {
		return err
	}
	return c.JSON(cat)
}

// UpdatePricing handles PUT /api/admin/pricing/:id.
func (h *AdminContentHandler) UpdatePricing(c *fiber.Ctx) error {
	var req dto.PricingUpdateRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}
	cat, err := h.content.UpdatePricing(c.UserContext(), c.Params("id"), req.ToPatch())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "pricing": cat})
}

// DeletePricing handles DELETE /api/admin/pricing/:id.
func (h *AdminContentHandler) DeletePricing(c *fiber.Ctx) error {
	if err := h.content.DeletePricing(c.UserContext(), c.Params("id")); err != nil {
		return err
	}
	return deleted(c, "Pricing category")
}

// ListTestimonials handles GET /api/admin/testimonials.
func (h *AdminContentHandler) ListTestimonials(c *fiber.Ctx) error {
	testimonials, err := h.content.ListTestimonials(c.UserContext(), true)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"testimonials": testimonials})
}

// CreateTestimonial handles POST /api/admin/testimonials.
func (h *AdminContentHandler) CreateTestimonial(c *fiber.Ctx) error {
	var req dto.TestimonialCreateRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}
	t, err := h.content.CreateTestimonial(c.UserContext(), req.ToDomain())
	if err != nil {
		return err
	}
	return c.JSON(t)
}

// UpdateTestimonial handles PUT /api/admin/testimonials/:id.
func (h *AdminContentHandler) UpdateTestimonial(c *fiber.Ctx) error {
	var req dto.TestimonialUpdateRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}
	t, err := h.content.UpdateTestimonial(c.UserContext(), c.Params("id"), req.ToPatch())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "testimonial": t})
}

// DeleteTestimonial handles DELETE /api/admin/testimonials/:id.
func (h *AdminContentHandler) DeleteTestimonial(c *fiber.Ctx) error {
	if err := h.content.DeleteTestimonial(c.UserContext(), c.Params("id")); err != nil {
		return err
	}
	return deleted(c, "Testimonial")
}

// GetCompanyInfo handles GET /api/admin/company-info.
func (h *AdminContentHandler) GetCompanyInfo(c *fiber.Ctx) error {
	info, err := h.content.CompanyInfo(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"company": info})
}

// ReplaceCompanyInfo handles PUT /api/admin/company-info.
func (h *AdminContentHandler) ReplaceCompanyInfo(c *fiber.Ctx) error {
	req := dto.NewCompanyInfoRequest()
	if err := bindJSON(c, &req); err != nil {
		return err
	}
	info, err := h.content.ReplaceCompanyInfo(c.UserContext(), req.ToDomain())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "company": info})
}
