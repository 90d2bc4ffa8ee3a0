package http

import (
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/tmhigienizacao/site-api/internal/api/http/handlers"
	"github.com/tmhigienizacao/site-api/internal/auth"
	"github.com/tmhigienizacao/site-api/internal/config"
	"github.com/tmhigienizacao/site-api/internal/domain"
	"github.com/tmhigienizacao/site-api/internal/events"
	"github.com/tmhigienizacao/site-api/internal/observability"
	"github.com/tmhigienizacao/site-api/internal/repository"
	"github.com/tmhigienizacao/site-api/internal/service"
)

type testServer struct {
	app   *fiber.App
	repos *repository.Repositories
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	cfg := config.Config{
		App:   config.AppConfig{Name: "site-api", Version: "1.0.0"},
		Auth:  config.AuthConfig{JWTSecret: "test-secret", AccessTokenTTLMinutes: 480},
		Admin: config.AdminConfig{Username: "admin", Password: "tm123admin"},
	}
	logger := zap.NewNop()
	metrics := observability.NewMetrics("site_api_test")
	repos := repository.NewMemoryRepositories()
	require.NoError(t, service.SeedDefaults(context.Background(), repos, logger))

	dispatcher := events.NewInMemoryDispatcher()
	authService := service.NewAuthService(cfg, logger, metrics)
	content := service.NewContentService(repos)
	contacts := service.NewContactService(repos.Contacts, dispatcher, logger, metrics)

	app := fiber.New()
	RegisterMiddlewares(app, MiddlewareConfig{Logger: logger, Metrics: metrics, AllowOrigins: "*"})
	RegisterRoutes(app, RouteConfig{
		Health:     handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, nil, nil),
		Public:     handlers.NewPublicHandler(content, contacts, cfg.App.Version),
		Auth:       handlers.NewAuthHandler(authService),
		Content:    handlers.NewAdminContentHandler(content),
		Contacts:   handlers.NewAdminContactsHandler(contacts),
		Authorizer: auth.NewAuthorizer(authService.TokenManager(), logger),
		Registry:   metrics.Registry(),
	})
	return &testServer{app: app, repos: repos}
}

func (s *testServer) do(t *testing.T, method, path, token, body string) (int, map[string]any, string) {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	}
	resp, err := s.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var decoded map[string]any
	if len(raw) > 0 && raw[0] == '{' {
		require.NoError(t, json.Unmarshal(raw, &decoded))
	}
	return resp.StatusCode, decoded, resp.Header.Get(fiber.HeaderWWWAuthenticate)
}

func (s *testServer) login(t *testing.T) string {
	t.Helper()
	status, body, _ := s.do(t, fiber.MethodPost, "/api/admin/login", "", `{"username":"admin","password":"tm123admin"}`)
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "bearer", body["token_type"])
	token, _ := body["access_token"].(string)
	require.NotEmpty(t, token)
	return token
}

func errorCode(t *testing.T, body map[string]any) string {
	t.Helper()
	envelope, ok := body["error"].(map[string]any)
	require.True(t, ok, "expected error envelope, got %v", body)
	code, _ := envelope["code"].(string)
	return code
}

func TestAdminLoginThenListServices(t *testing.T) {
	srv := newTestServer(t)
	token := srv.login(t)

	require.NoError(t, srv.repos.Services.Create(context.Background(), &domain.Service{
		ID: "hidden", Title: "Hidden", Description: "inactive", Icon: "x", Active: false,
	}))

	status, body, _ := srv.do(t, fiber.MethodGet, "/api/admin/services", token, "")
	require.Equal(t, fiber.StatusOK, status)
	adminList := body["services"].([]any)

	status, body, _ = srv.do(t, fiber.MethodGet, "/api/services", "", "")
	require.Equal(t, fiber.StatusOK, status)
	publicList := body["services"].([]any)

	assert.Len(t, adminList, len(publicList)+1)

	status, body, _ = srv.do(t, fiber.MethodGet, "/api/admin/verify", token, "")
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, true, body["valid"])
	assert.Equal(t, "admin", body["user"])
}

func TestAdminRoutesRequireToken(t *testing.T) {
	srv := newTestServer(t)
	before, err := srv.repos.Services.Count(context.Background())
	require.NoError(t, err)

	tests := []struct {
		name   string
		method string
		path   string
		token  string
		body   string
	}{
		{"list without header", fiber.MethodGet, "/api/admin/services", "", ""},
		{"create without header", fiber.MethodPost, "/api/admin/services", "", `{"title":"X","description":"Y","icon":"z"}`},
		{"garbage token", fiber.MethodPost, "/api/admin/services", "not-a-jwt", `{"title":"X","description":"Y","icon":"z"}`},
		{"verify without header", fiber.MethodGet, "/api/admin/verify", "", ""},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			status, body, challenge := srv.do(t, tc.method, tc.path, tc.token, tc.body)
			assert.Equal(t, fiber.StatusUnauthorized, status)
			assert.Equal(t, "UNAUTHENTICATED", errorCode(t, body))
			assert.Equal(t, "Bearer", challenge)
		})
	}

	after, err := srv.repos.Services.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestLoginWrongPassword(t *testing.T) {
	srv := newTestServer(t)

	status, body, challenge := srv.do(t, fiber.MethodPost, "/api/admin/login", "", `{"username":"admin","password":"wrong"}`)
	assert.Equal(t, fiber.StatusUnauthorized, status)
	assert.Equal(t, "UNAUTHORIZED", errorCode(t, body))
	assert.Equal(t, "Bearer", challenge)
	assert.NotContains(t, body, "access_token")
}

func TestContactFlow(t *testing.T) {
	srv := newTestServer(t)

	status, body, _ := srv.do(t, fiber.MethodPost, "/api/contact", "",
		`{"name":"Maria","phone":"11 99999-0000","message":"Orçamento de sofá","service":"Sofás"}`)
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, true, body["success"])
	contactID, _ := body["contact_id"].(string)
	require.NotEmpty(t, contactID)

	token := srv.login(t)
	status, body, _ = srv.do(t, fiber.MethodGet, "/api/admin/contacts", token, "")
	require.Equal(t, fiber.StatusOK, status)
	list := body["contacts"].([]any)
	require.Len(t, list, 1)
	first := list[0].(map[string]any)
	assert.Equal(t, "pending", first["status"])
	assert.Equal(t, "form", first["source"])

	status, body, _ = srv.do(t, fiber.MethodPut, "/api/admin/contacts/"+contactID+"/status", token, `{"status":"contacted"}`)
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "contacted", body["contact"].(map[string]any)["status"])

	status, body, _ = srv.do(t, fiber.MethodPut, "/api/admin/contacts/"+contactID+"/status", token, `{"status":"archived"}`)
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "VALIDATION_FAILED", errorCode(t, body))

	status, _, _ = srv.do(t, fiber.MethodDelete, "/api/admin/contacts/"+contactID, token, "")
	assert.Equal(t, fiber.StatusOK, status)

	status, body, _ = srv.do(t, fiber.MethodDelete, "/api/admin/contacts/"+contactID, token, "")
	assert.Equal(t, fiber.StatusNotFound, status)
	assert.Equal(t, "NOT_FOUND", errorCode(t, body))
}

func TestContactAcceptsBlankOptionalFields(t *testing.T) {
	srv := newTestServer(t)

	tests := []struct {
		name  string
		body  string
		email string
	}{
		{"site form with blanks", `{"name":"Maria","phone":"(13) 99999-0000","email":"","service":"","message":"Orçamento"}`, ""},
		{"free-form email", `{"name":"Maria","phone":"1","email":"maria-at-gmail","message":"m"}`, "maria-at-gmail"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			status, body, _ := srv.do(t, fiber.MethodPost, "/api/contact", "", tc.body)
			require.Equal(t, fiber.StatusOK, status, "body: %v", body)
			contactID, _ := body["contact_id"].(string)
			require.NotEmpty(t, contactID)

			stored, err := srv.repos.Contacts.GetByID(context.Background(), contactID)
			require.NoError(t, err)
			assert.Equal(t, domain.ContactStatusPending, stored.Status)
			require.NotNil(t, stored.Email)
			assert.Equal(t, tc.email, *stored.Email)
		})
	}
}

func TestContactValidation(t *testing.T) {
	srv := newTestServer(t)

	status, body, _ := srv.do(t, fiber.MethodPost, "/api/contact", "", `{"name":"Maria","message":"oi"}`)
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "VALIDATION_FAILED", errorCode(t, body))

	stored, err := srv.repos.Contacts.ListNewestFirst(context.Background())
	require.NoError(t, err)
	assert.Empty(t, stored)
}

func TestServiceUpdateEdgeCases(t *testing.T) {
	srv := newTestServer(t)
	token := srv.login(t)

	status, body, _ := srv.do(t, fiber.MethodPost, "/api/admin/services", token,
		`{"title":"Colchões","description":"Limpeza","icon":"bed","features":["a"]}`)
	require.Equal(t, fiber.StatusOK, status)
	id, _ := body["id"].(string)
	require.NotEmpty(t, id)
	assert.Equal(t, true, body["active"])

	status, body, _ = srv.do(t, fiber.MethodPut, "/api/admin/services/"+id, token, `{}`)
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "VALIDATION_FAILED", errorCode(t, body))

	status, body, _ = srv.do(t, fiber.MethodPut, "/api/admin/services/"+id, token, `{"active":false}`)
	require.Equal(t, fiber.StatusOK, status)
	updated := body["service"].(map[string]any)
	assert.Equal(t, false, updated["active"])
	assert.Equal(t, "Colchões", updated["title"])

	status, body, _ = srv.do(t, fiber.MethodPut, "/api/admin/services/missing", token, `{"title":"x"}`)
	assert.Equal(t, fiber.StatusNotFound, status)
	assert.Equal(t, "NOT_FOUND", errorCode(t, body))
}

func TestCompanyInfoRoundTrip(t *testing.T) {
	srv := newTestServer(t)
	token := srv.login(t)

	status, _, _ := srv.do(t, fiber.MethodPut, "/api/admin/company-info", token, `{"phone":"(11) 90000-0000"}`)
	require.Equal(t, fiber.StatusOK, status)

	status, body, _ := srv.do(t, fiber.MethodGet, "/api/company-info", "", "")
	require.Equal(t, fiber.StatusOK, status)
	company := body["company"].(map[string]any)
	assert.Equal(t, "(11) 90000-0000", company["phone"])
	assert.Equal(t, domain.DefaultCompanyInfo().Name, company["name"])
}

func TestPublicRootAndHealth(t *testing.T) {
	srv := newTestServer(t)

	status, body, _ := srv.do(t, fiber.MethodGet, "/api/", "", "")
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "1.0.0", body["version"])

	status, body, _ = srv.do(t, fiber.MethodGet, "/health/ready", "", "")
	require.Equal(t, fiber.StatusOK, status)
	deps := body["dependencies"].(map[string]any)
	assert.Equal(t, "disabled", deps["postgres"])
	assert.Equal(t, "disabled", deps["redis"])
}
