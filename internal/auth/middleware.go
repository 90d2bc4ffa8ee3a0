package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/tmhigienizacao/site-api/internal/domain"
	apperrors "github.com/tmhigienizacao/site-api/pkg/util"
)

const (
	principalKey = "auth_principal"

	invalidTokenMessage = "Could not validate credentials"
)

// Authorizer validates bearer tokens in front of admin routes.
type Authorizer struct {
	tokens *TokenManager
	logger *zap.Logger
}

// NewAuthorizer constructs the middleware.
func NewAuthorizer(tokens *TokenManager, logger *zap.Logger) *Authorizer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Authorizer{tokens: tokens, logger: logger}
}

// Authorize resolves a raw bearer token to a principal. Malformed, foreign,
// expired and subject-less tokens all fail with the same Unauthenticated error.
func (a *Authorizer) Authorize(rawToken string) (*domain.Principal, error) {
	if rawToken == "" {
		return nil, apperrors.NewUnauthenticated(invalidTokenMessage)
	}
	principal, err := a.tokens.ParseToken(rawToken)
	if err != nil {
		a.logger.Debug("token rejected", zap.Error(err))
		return nil, apperrors.NewUnauthenticated(invalidTokenMessage)
	}
	return principal, nil
}

// Handle enforces authentication for protected routes.
func (a *Authorizer) Handle(c *fiber.Ctx) error {
	principal, err := a.Authorize(bearerToken(c.Get(fiber.HeaderAuthorization)))
	if err != nil {
		return err
	}
	c.Locals(principalKey, principal)
	return c.Next()
}

func bearerToken(header string) string {
	parts := strings.SplitN(strings.TrimSpace(header), " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

// PrincipalFromContext retrieves the authenticated entity.
func PrincipalFromContext(c *fiber.Ctx) (*domain.Principal, bool) {
	val := c.Locals(principalKey)
	if val == nil {
		return nil, false
	}
	principal, ok := val.(*domain.Principal)
	return principal, ok
}
