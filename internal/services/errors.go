package service

import (
	appErrors "github.com/aaravmahajanofficial/jewelry-storefront/internal/errors"
)

// wrapErr keeps an AppError raised inside a transaction and maps anything else to fallback.
func wrapErr(err error, fallback *appErrors.AppError) error {
	if appErr, ok := appErrors.IsAppError(err); ok {
		return appErr
	}
	return fallback.WithError(err)
}
