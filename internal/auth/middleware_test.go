package auth

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/tmhigienizacao/site-api/pkg/util"
)

func newProtectedApp(authz *Authorizer, reached *int) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			de := apperrors.ToDomainError(err)
			return c.Status(de.HTTPStatus).SendString(de.Code)
		},
	})
	app.Get("/admin", authz.Handle, func(c *fiber.Ctx) error {
		*reached++
		principal, ok := PrincipalFromContext(c)
		if !ok {
			return fiber.ErrInternalServerError
		}
		return c.SendString(principal.Subject)
	})
	return app
}

func TestAuthorizerHandle(t *testing.T) {
	tm := NewTokenManager(testSecret, time.Hour)
	valid, err := tm.GenerateToken("admin")
	require.NoError(t, err)
	expired, err := NewTokenManager(testSecret, time.Hour, WithClock(func() time.Time {
		return time.Now().Add(-2 * time.Hour)
	})).GenerateToken("admin")
	require.NoError(t, err)
	foreign, err := NewTokenManager("another", time.Hour).GenerateToken("admin")
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
		status int
		body   string
	}{
		{"valid token", "Bearer " + valid.Value, http.StatusOK, "admin"},
		{"lowercase scheme", "bearer " + valid.Value, http.StatusOK, "admin"},
		{"missing header", "", http.StatusUnauthorized, apperrors.CodeUnauthenticated},
		{"basic scheme", "Basic YWRtaW46dG0xMjNhZG1pbg==", http.StatusUnauthorized, apperrors.CodeUnauthenticated},
		{"bearer without token", "Bearer ", http.StatusUnauthorized, apperrors.CodeUnauthenticated},
		{"expired token", "Bearer " + expired.Value, http.StatusUnauthorized, apperrors.CodeUnauthenticated},
		{"foreign secret", "Bearer " + foreign.Value, http.StatusUnauthorized, apperrors.CodeUnauthenticated},
		{"altered token", "Bearer " + valid.Value + "x", http.StatusUnauthorized, apperrors.CodeUnauthenticated},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			reached := 0
			app := newProtectedApp(NewAuthorizer(tm, nil), &reached)

			req := httptest.NewRequest(http.MethodGet, "/admin", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			resp, err := app.Test(req, -1)
			require.NoError(t, err)
			defer resp.Body.Close()

			assert.Equal(t, tc.status, resp.StatusCode)
			body, err := io.ReadAll(resp.Body)
			require.NoError(t, err)
			assert.Equal(t, tc.body, string(body))
			if tc.status != http.StatusOK {
				assert.Zero(t, reached, "handler must not run")
			}
		})
	}
}

func TestAuthorizeEmptyToken(t *testing.T) {
	_, err := NewAuthorizer(NewTokenManager(testSecret, time.Hour), nil).Authorize("")
	de := apperrors.ToDomainError(err)
	require.NotNil(t, de)
	assert.Equal(t, apperrors.CodeUnauthenticated, de.Code)
}
