package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tmhigienizacao/site-api/internal/config"
	apperrors "github.com/tmhigienizacao/site-api/pkg/util"
)

func newTestVerifier(admin config.AdminConfig) *CredentialVerifier {
	return NewCredentialVerifier(admin, NewTokenManager(testSecret, 8*time.Hour))
}

func TestAuthenticateAcceptsExactPair(t *testing.T) {
	v := newTestVerifier(config.AdminConfig{Username: "admin", Password: "tm123admin"})

	token, err := v.Authenticate("admin", "tm123admin")
	require.NoError(t, err)
	assert.Equal(t, "admin", token.Subject)

	principal, err := v.tokens.ParseToken(token.Value)
	require.NoError(t, err)
	assert.Equal(t, "admin", principal.Subject)
}

func TestAuthenticateRejectsMismatches(t *testing.T) {
	v := newTestVerifier(config.AdminConfig{Username: "admin", Password: "tm123admin"})

	cases := []struct{ username, password string }{
		{"admin", "wrong"},
		{"root", "tm123admin"},
		{"Admin", "tm123admin"},
		{"admin", "TM123ADMIN"},
		{"admin ", "tm123admin"},
		{"admin", "tm123admin "},
		{"", ""},
		{"admin", ""},
	}

	var messages []string
	for _, tc := range cases {
		token, err := v.Authenticate(tc.username, tc.password)
		assert.Nil(t, token)
		domainErr := apperrors.ToDomainError(err)
		require.NotNil(t, domainErr)
		assert.Equal(t, apperrors.CodeUnauthorized, domainErr.Code)
		messages = append(messages, domainErr.Message)
	}
	for _, msg := range messages {
		assert.Equal(t, messages[0], msg)
	}
}

func TestAuthenticateWithPasswordHash(t *testing.T) {
	hash, err := HashPassword("s3cret", 4)
	require.NoError(t, err)
	v := newTestVerifier(config.AdminConfig{Username: "admin", Password: "tm123admin", PasswordHash: hash})

	_, err = v.Authenticate("admin", "s3cret")
	require.NoError(t, err)

	_, err = v.Authenticate("admin", "tm123admin")
	require.Error(t, err)
}
