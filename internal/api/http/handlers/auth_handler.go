package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tmhigienizacao/site-api/internal/api/dto"
	"github.com/tmhigienizacao/site-api/internal/auth"
	"github.com/tmhigienizacao/site-api/internal/service"
	apperrors "github.com/tmhigienizacao/site-api/pkg/util"
)

// AuthHandler exposes admin login and token verification.
type AuthHandler struct {
	auth *service.AuthService
}

// NewAuthHandler constructs handler.
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{auth: authService}
}

// Login handles POST /api/admin/login.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.AdminLoginRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	token, err := h.auth.Login(req.Username, req.Password)
	if err != nil {
		return err
	}

	return c.JSON(dto.TokenResponse{AccessToken: token.Value, TokenType: "bearer"})
}

// Verify handles GET /api/admin/verify.
func (h *AuthHandler) Verify(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthenticated("Could not validate credentials")
	}
	return c.JSON(dto.VerifyResponse{Valid: true, User: principal.Subject})
}
