package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tmhigienizacao/site-api/internal/api/http/handlers"
	"github.com/tmhigienizacao/site-api/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health     *handlers.HealthHandler
	Public     *handlers.PublicHandler
	Auth       *handlers.AuthHandler
	Content    *handlers.AdminContentHandler
	Contacts   *handlers.AdminContactsHandler
	Authorizer *auth.Authorizer
	Registry   *prometheus.Registry
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	if cfg.Health != nil {
		app.Get("/health/live", cfg.Health.Live)
		app.Get("/health/ready", cfg.Health.Ready)
	}
	if cfg.Registry != nil {
		app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(cfg.Registry, promhttp.HandlerOpts{})))
	}

	api := app.Group("/api")
	api.Get("/", cfg.Public.Root)
	api.Get("/services", cfg.Public.Services)
	api.Get("/pricing", cfg.Public.Pricing)
	api.Get("/testimonials", cfg.Public.Testimonials)
	api.Get("/company-info", cfg.Public.CompanyInfo)
	api.Post("/contact", cfg.Public.SubmitContact)

	api.Post("/admin/login", cfg.Auth.Login)

	admin := api.Group("/admin", cfg.Authorizer.Handle)
	admin.Get("/verify", cfg.Auth.Verify)

	admin.Get("/services", cfg.Content.ListServices)
	admin.Post("/services", cfg.Content.CreateService)
	admin.Put("/services/:id", cfg.Content.UpdateService)
	admin.Delete("/services/:id", cfg.Content.DeleteService)

	admin.Get("/pricing", cfg.Content.ListPricing)
	admin.Post("/pricing", cfg.Content.CreatePricing)
	admin.Put("/pricing/:id", cfg.Content.UpdatePricing)
	admin.Delete("/pricing/:id", cfg.Content.DeletePricing)

	admin.Get("/testimonials", cfg.Content.ListTestimonials)
	admin.Post("/testimonials", cfg.Content.CreateTestimonial)
	admin.Put("/testimonials/:id", cfg.Content.UpdateTestimonial)
	admin.Delete("/testimonials/:id", cfg.Content.DeleteTestimonial)

	admin.Get("/company-info", cfg.Content.GetCompanyInfo)
	admin.Put("/company-info", cfg.Content.ReplaceCompanyInfo)

	admin.Get("/contacts", cfg.Contacts.List)
	admin.Put("/contacts/:id/status", cfg.Contacts.UpdateStatus)
	admin.Delete("/contacts/:id", cfg.Contacts.Delete)
}
