package utils

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	appErrors "github.com/aaravmahajanofficial/jewelry-storefront/internal/errors"
	"github.com/aaravmahajanofficial/jewelry-storefront/internal/utils/response"
	"github.com/go-playground/validator/v10"
)

// ParseAndValidate decodes the body into dest and runs struct validation.
// On failure it has already written a 400 carrying invalidMessage.
func ParseAndValidate(r *http.Request, w http.ResponseWriter, dest any, validate *validator.Validate, logger *slog.Logger, invalidMessage string) bool {

	if err := DecodeJSONBody(r, dest); err != nil {
		logger.Warn("Invalid request body", slog.String("error", err.Error()))
		response.Error(w, appErrors.ValidationError(invalidMessage).WithError(err))
		return false
	}

	if err := ValidateStruct(validate, dest); err != nil {
		logger.Warn("Validation failed", slog.String("error", err.Error()))

		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			response.ValidationError(w, invalidMessage, validationErrs)
			return false
		}

		response.Error(w, appErrors.ValidationError(invalidMessage).WithError(err))
		return false
	}

	return true

}

// ParseID reads a positive integer path or query value.
func ParseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || id <= 0 {
		return 0, errors.New("must be a positive integer")
	}
	return id, nil
}

// NormalizeVariant maps a blank variant to nil.
func NormalizeVariant(variant *string) *string {
	if variant == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*variant)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
