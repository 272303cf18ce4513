package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Error is an application error with a stable machine-readable code.
// Services return these; the HTTP layer maps Status to the response code.
type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Status  int    `json:"-"`
	Err     error  `json:"-"`
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches two application errors by code, so sentinel errors below
// work with errors.Is even after Wrap.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return e.Code == t.Code
}

// Wrap returns a copy of e carrying err as its cause.
func (e *Error) Wrap(err error) *Error {
	return &Error{Code: e.Code, Message: e.Message, Status: e.Status, Err: err}
}

func New(code string, status int, message string) *Error {
	return &Error{Code: code, Message: message, Status: status}
}

// Authentication
var (
	ErrMissingCredentials        = New("MISSING_CREDENTIALS", http.StatusUnauthorized, "no authorization header")
	ErrUnsupportedCredentialType = New("UNSUPPORTED_CREDENTIAL_TYPE", http.StatusUnauthorized, "authorization scheme is not Bearer")
	ErrInvalidToken              = New("INVALID_TOKEN", http.StatusUnauthorized, "invalid or expired token")
)

// Login
var (
	ErrInvalidEmail    = New("INVALID_EMAIL", http.StatusBadRequest, "no user with this email")
	ErrInvalidPassword = New("INVALID_PASSWORD", http.StatusBadRequest, "invalid password")
)

// Cart / order domain
var (
	ErrForbidden              = New("FORBIDDEN", http.StatusForbidden, "resource belongs to another user")
	ErrEmptyCart              = New("EMPTY_CART", http.StatusBadRequest, "cart is empty")
	ErrInvalidCartTotal       = New("INVALID_CART_TOTAL", http.StatusBadRequest, "cart total is inconsistent")
	ErrOrderNotFound          = New("ORDER_NOT_FOUND", http.StatusNotFound, "order not found")
	ErrCartItemNotFound       = New("CART_ITEM_NOT_FOUND", http.StatusNotFound, "cart item not found")
	ErrProductNotFound        = New("PRODUCT_NOT_FOUND", http.StatusNotFound, "product not found")
	ErrConcurrentModification = New("CONCURRENT_MODIFICATION", http.StatusConflict, "cart changed during checkout")
)

// Dependencies
var (
	ErrRateUnavailable   = New("RATE_UNAVAILABLE", http.StatusBadGateway, "exchange rate source unavailable")
	ErrLedgerUnavailable = New("LEDGER_UNAVAILABLE", http.StatusServiceUnavailable, "persistence unavailable")
)
