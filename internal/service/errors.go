package service

import (
	"errors"

	"shopping-backend/internal/apperr"
)

// ledgerErr passes application errors through unchanged and wraps anything
// else (driver failures, broken connections) as LedgerUnavailable.
func ledgerErr(err error) error {
	if err == nil {
		return nil
	}
	var appErr *apperr.Error
	if errors.As(err, &appErr) {
		return err
	}
	return apperr.ErrLedgerUnavailable.Wrap(err)
}
