package worker

import (
	"go.uber.org/zap"

	"github.com/tmhigienizacao/site-api/internal/config"
	"github.com/tmhigienizacao/site-api/internal/events"
	"github.com/tmhigienizacao/site-api/internal/service"
)

// StartNotificationWorker subscribes lead notifications to the dispatcher.
// A nil publisher keeps notifications log-only.
func StartNotificationWorker(dispatcher events.Dispatcher, publisher service.Publisher, logger *zap.Logger, cfg config.NotificationConfig) *service.NotificationService {
	notifications := service.NewNotificationService(dispatcher, publisher, logger.Named("notifications"), cfg)
	notifications.RegisterHandlers()
	logger.Info("notification worker started",
		zap.String("channel", cfg.RedisChannel),
		zap.Bool("forwarding", publisher != nil && publisher.Enabled()))
	return notifications
}
