package handlers

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	apperrors "github.com/tmhigienizacao/site-api/pkg/util"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// bindJSON decodes the request body into dst and runs struct validation.
func bindJSON(c *fiber.Ctx, dst any) error {
	if err := c.BodyParser(dst); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := validate.Struct(dst); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			details := make(map[string]any, len(verrs))
			for _, fe := range verrs {
				details[fieldName(fe)] = fe.Tag()
			}
			return apperrors.NewValidationError("request validation failed", details)
		}
		return apperrors.NewValidationError(err.Error(), nil)
	}
	return nil
}

func fieldName(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		ns = ns[i+1:]
	}
	return strings.ToLower(ns)
}
