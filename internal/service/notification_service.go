package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/tmhigienizacao/site-api/internal/config"
	"github.com/tmhigienizacao/site-api/internal/events"
)

// Publisher sends a payload to a named channel. *persistence.Redis implements it.
type Publisher interface {
	Enabled() bool
	Publish(ctx context.Context, channel string, payload []byte) error
}

// NotificationService fans lead events out so the team can follow up.
type NotificationService struct {
	dispatcher events.Dispatcher
	publisher  Publisher
	logger     *zap.Logger
	cfg        config.NotificationConfig
}

// NewNotificationService creates the service. publisher may be nil.
func NewNotificationService(dispatcher events.Dispatcher, publisher Publisher, logger *zap.Logger, cfg config.NotificationConfig) *NotificationService {
	return &NotificationService{
		dispatcher: dispatcher,
		publisher:  publisher,
		logger:     logger,
		cfg:        cfg,
	}
}

// RegisterHandlers subscribes to events.
func (n *NotificationService) RegisterHandlers() {
	if n.dispatcher == nil {
		return
	}
	n.dispatcher.Subscribe(events.EventContactCreated, n.handleContactCreated)
	n.dispatcher.Subscribe(events.EventContactStatusChanged, n.handleContactStatusChanged)
}

func (n *NotificationService) handleContactCreated(ctx context.Context, event events.Event) error {
	n.logger.Info("ContactCreated", zap.String("contact_id", event.ContactID), zap.Any("payload", event.Payload))
	return n.forward(ctx, event)
}

func (n *NotificationService) handleContactStatusChanged(ctx context.Context, event events.Event) error {
	n.logger.Info("ContactStatusChanged",
		zap.String("contact_id", event.ContactID),
		zap.String("actor", event.Actor),
		zap.Any("payload", event.Payload))
	return n.forward(ctx, event)
}

func (n *NotificationService) forward(ctx context.Context, event events.Event) error {
	if n.publisher == nil || !n.publisher.Enabled() || strings.TrimSpace(n.cfg.RedisChannel) == "" {
		return nil
	}
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("encode %s event: %w", event.Type, err)
	}
	if err := n.publisher.Publish(ctx, n.cfg.RedisChannel, body); err != nil {
		return fmt.Errorf("publish %s event: %w", event.Type, err)
	}
	n.logger.Debug("event forwarded",
		zap.String("channel", n.cfg.RedisChannel),
		zap.String("event_type", string(event.Type)))
	return nil
}
