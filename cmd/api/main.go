package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/tmhigienizacao/site-api/internal/api/http"
	"github.com/tmhigienizacao/site-api/internal/api/http/handlers"
	"github.com/tmhigienizacao/site-api/internal/auth"
	"github.com/tmhigienizacao/site-api/internal/config"
	"github.com/tmhigienizacao/site-api/internal/events"
	"github.com/tmhigienizacao/site-api/internal/observability"
	"github.com/tmhigienizacao/site-api/internal/persistence"
	"github.com/tmhigienizacao/site-api/internal/repository"
	"github.com/tmhigienizacao/site-api/internal/service"
	"github.com/tmhigienizacao/site-api/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	metrics := observability.NewMetrics("site_api")

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	var repos *repository.Repositories
	if pg.Enabled() {
		if cfg.Postgres.RunMigrations {
			if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
				logger.Fatal("failed to run migrations", zap.Error(err))
			}
		}
		repos = repository.NewPostgresRepositories(pg.PoolHandle())
	} else {
		logger.Warn("using in-memory store; content is lost on restart")
		repos = repository.NewMemoryRepositories()
	}

	if cfg.Seed.OnStart {
		if err := service.SeedDefaults(ctx, repos, logger); err != nil {
			logger.Fatal("failed to seed default content", zap.Error(err))
		}
	}

	redis := persistence.NewRedis(ctx, cfg.Redis, logger)
	defer redis.Close()

	dispatcher := events.NewInMemoryDispatcher()
	worker.StartNotificationWorker(dispatcher, redis, logger, cfg.Notification)

	authService := service.NewAuthService(*cfg, logger, metrics)
	contentService := service.NewContentService(repos)
	contactService := service.NewContactService(repos.Contacts, dispatcher, logger, metrics)
	authorizer := auth.NewAuthorizer(authService.TokenManager(), logger)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	})
	httptransport.RegisterMiddlewares(app, httptransport.MiddlewareConfig{
		Logger:       logger,
		Metrics:      metrics,
		Timeout:      cfg.App.RequestTimeout(),
		AllowOrigins: cfg.CORS.AllowOrigins,
	})

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:     handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis),
		Public:     handlers.NewPublicHandler(contentService, contactService, cfg.App.Version),
		Auth:       handlers.NewAuthHandler(authService),
		Content:    handlers.NewAdminContentHandler(contentService),
		Contacts:   handlers.NewAdminContactsHandler(contactService),
		Authorizer: authorizer,
		Registry:   metrics.Registry(),
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		logger.Warn("shutdown", zap.Error(err))
	}
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
