package middleware

import (
	"strings"

	"shopping-backend/internal/apperr"
	"shopping-backend/internal/auth"

	"github.com/labstack/echo/v4"
)

const (
	// UserIDKey is the echo context key the verified user id is stored under.
	UserIDKey = "user_id"

	bearerPrefix = "Bearer "
)

// AuthMiddleware gates protected routes behind a valid bearer token and
// attaches the verified user id to the request context. It short-circuits
// before the handler runs on any failure.
func AuthMiddleware(tokens auth.TokenProvider) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if header == "" {
				return apperr.ErrMissingCredentials
			}
			if !strings.HasPrefix(header, bearerPrefix) {
				return apperr.ErrUnsupportedCredentialType
			}

			userID, err := tokens.Verify(header[len(bearerPrefix):])
			if err != nil {
				return err
			}

			c.Set(UserIDKey, userID)
			return next(c)
		}
	}
}

// UserID reads the authenticated user id attached by AuthMiddleware.
func UserID(c echo.Context) (uint, error) {
	userID, ok := c.Get(UserIDKey).(uint)
	if !ok {
		return 0, apperr.ErrMissingCredentials
	}
	return userID, nil
}
