package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tmhigienizacao/site-api/internal/api/dto"
	"github.com/tmhigienizacao/site-api/internal/auth"
	"github.com/tmhigienizacao/site-api/internal/domain"
	"github.com/tmhigienizacao/site-api/internal/service"
)

// AdminContactsHandler exposes lead tracking to the admin panel.
type AdminContactsHandler struct {
	contacts *service.ContactService
}

// NewAdminContactsHandler constructs handler.
func NewAdminContactsHandler(contacts *service.ContactService) *AdminContactsHandler {
	return &AdminContactsHandler{contacts: contacts}
}

// List handles GET /api/admin/contacts.
func (h *AdminContactsHandler) List(c *fiber.Ctx) error {
	contacts, err := h.contacts.List(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"contacts": contacts})
}

// UpdateStatus handles PUT /api/admin/contacts/:id/status.
func (h *AdminContactsHandler) UpdateStatus(c *fiber.Ctx) error {
	var req dto.ContactStatusUpdateRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}

	actor := ""
	if principal, ok := auth.PrincipalFromContext(c); ok {
		actor = principal.Subject
	}

	contact, err := h.contacts.UpdateStatus(c.UserContext(), actor, c.Params("id"), domain.ContactStatus(req.Status))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "contact": contact})
}

// Delete handles DELETE /api/admin/contacts/:id.
func (h *AdminContactsHandler) Delete(c *fiber.Ctx) error {
	if err := h.contacts.Delete(c.UserContext(), c.Params("id")); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "message": "Contact deleted"})
}
