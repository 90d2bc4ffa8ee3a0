package auth

import (
	"crypto/subtle"

	"github.com/tmhigienizacao/site-api/internal/config"
	"github.com/tmhigienizacao/site-api/internal/domain"
	apperrors "github.com/tmhigienizacao/site-api/pkg/util"
)

const invalidCredentialsMessage = "Incorrect username or password"

// CredentialVerifier checks login attempts against the single admin identity
// and mints session tokens for the ones that match.
type CredentialVerifier struct {
	username     string
	password     string
	passwordHash string
	tokens       *TokenManager
}

// NewCredentialVerifier constructs a verifier for the configured admin.
func NewCredentialVerifier(admin config.AdminConfig, tokens *TokenManager) *CredentialVerifier {
	return &CredentialVerifier{
		username:     admin.Username,
		password:     admin.Password,
		passwordHash: admin.PasswordHash,
		tokens:       tokens,
	}
}

// Authenticate returns a signed session token when both fields match exactly.
// Any mismatch yields the same Unauthorized error.
func (v *CredentialVerifier) Authenticate(username, password string) (*domain.SessionToken, error) {
	if !v.matches(username, password) {
		return nil, apperrors.NewUnauthorized(invalidCredentialsMessage)
	}
	token, err := v.tokens.GenerateToken(username)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	return token, nil
}

func (v *CredentialVerifier) matches(username, password string) bool {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(v.username)) == 1

	var passOK bool
	if v.passwordHash != "" {
		passOK = ComparePassword(v.passwordHash, password) == nil
	} else {
		passOK = subtle.ConstantTimeCompare([]byte(password), []byte(v.password)) == 1
	}
	return userOK && passOK
}
