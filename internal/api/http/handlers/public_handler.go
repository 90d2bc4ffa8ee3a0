package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tmhigienizacao/site-api/internal/api/dto"
	"github.com/tmhigienizacao/site-api/internal/service"
)

// PublicHandler serves the site's public content and the lead form.
type PublicHandler struct {
	content  *service.ContentService
	contacts *service.ContactService
	version  string
}

// NewPublicHandler constructs handler.
func NewPublicHandler(content *service.ContentService, contacts *service.ContactService, version string) *PublicHandler {
	return &PublicHandler{content: content, contacts: contacts, version: version}
}

// Root handles GET /api/.
func (h *PublicHandler) Root(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"message": "TM Higienização API", "version": h.version})
}

// Services handles GET /api/services.
func (h *PublicHandler) Services(c *fiber.Ctx) error {
	services, err := h.content.ListServices(c.UserContext(), false)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"services": services})
}

// Pricing handles GET /api/pricing.
func (h *PublicHandler) Pricing(c *fiber.Ctx) error {
	pricing, err := h.content.ListPricing(c.UserContext(), false)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"pricing": pricing})
}

// Testimonials handles GET /api/testimonials.
func (h *PublicHandler) Testimonials(c *fiber.Ctx) error {
	testimonials, err := h.content.ListTestimonials(c.UserContext(), false)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"testimonials": testimonials})
}

// CompanyInfo handles GET /api/company-info.
func (h *PublicHandler) CompanyInfo(c *fiber.Ctx) error {
	info, err := h.content.CompanyInfo(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"company": info})
}

// SubmitContact handles POST /api/contact.
func (h *PublicHandler) SubmitContact(c *fiber.Ctx) error {
	var req dto.ContactCreateRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}

	contact, err := h.contacts.Submit(c.UserContext(), req.ToSubmission())
	if err != nil {
		return err
	}

	return c.JSON(dto.ContactCreateResponse{
		Success:   true,
		Message:   "Contato recebido com sucesso",
		ContactID: contact.ID,
	})
}
