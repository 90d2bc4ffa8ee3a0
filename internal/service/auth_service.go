package service

import (
	"go.uber.org/zap"

	"github.com/tmhigienizacao/site-api/internal/auth"
	"github.com/tmhigienizacao/site-api/internal/config"
	"github.com/tmhigienizacao/site-api/internal/domain"
	"github.com/tmhigienizacao/site-api/internal/observability"
)

// AuthService coordinates admin login.
type AuthService struct {
	verifier *auth.CredentialVerifier
	tokenMgr *auth.TokenManager
	logger   *zap.Logger
	metrics  *observability.Metrics
}

// NewAuthService builds the service and its token manager from configuration.
func NewAuthService(cfg config.Config, logger *zap.Logger, metrics *observability.Metrics, opts ...auth.TokenOption) *AuthService {
	tokenMgr := auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.AccessTokenTTL(), opts...)
	return &AuthService{
		verifier: auth.NewCredentialVerifier(cfg.Admin, tokenMgr),
		tokenMgr: tokenMgr,
		logger:   logger,
		metrics:  metrics,
	}
}

// Login authenticates the admin and returns a session token.
func (s *AuthService) Login(username, password string) (*domain.SessionToken, error) {
	token, err := s.verifier.Authenticate(username, password)
	s.metrics.RecordLogin(err == nil)
	if err != nil {
		s.logger.Warn("admin login rejected", zap.String("username", username))
		return nil, err
	}
	s.logger.Info("admin login", zap.String("username", username), zap.Time("expires_at", token.ExpiresAt))
	return token, nil
}

// TokenManager exposes the underlying token manager for middleware usage.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}
