package util

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func TestToDomainError(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		code   string
		status int
	}{
		{"domain error passes through", NewUnauthorized("nope"), CodeUnauthorized, http.StatusUnauthorized},
		{"wrapped domain error", fmt.Errorf("login: %w", NewUnauthenticated("bad token")), CodeUnauthenticated, http.StatusUnauthorized},
		{"fiber not found", fiber.ErrNotFound, CodeNotFound, http.StatusNotFound},
		{"fiber bad request", fiber.NewError(http.StatusBadRequest, "invalid payload"), CodeValidationFailed, http.StatusBadRequest},
		{"repository not found", fmt.Errorf("get service: %w", ErrNotFound), CodeNotFound, http.StatusNotFound},
		{"unknown error", errors.New("boom"), CodeInternal, http.StatusInternalServerError},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := ToDomainError(tc.err)
			assert.Equal(t, tc.code, got.Code)
			assert.Equal(t, tc.status, got.HTTPStatus)
		})
	}
}

func TestToDomainErrorNil(t *testing.T) {
	assert.Nil(t, ToDomainError(nil))
}

func TestInternalErrorHidesCause(t *testing.T) {
	got := ToDomainError(errors.New("connection refused on 10.0.0.3"))
	assert.Equal(t, "internal server error", got.Message)
	assert.ErrorContains(t, got, "connection refused")
}
