package middleware

import (
	"wallet-api/internal/errors"
	"wallet-api/internal/handlers"
	"wallet-api/internal/services"

	"github.com/labstack/echo/v4"
)

// RequireUnlock creates a middleware that requires a valid unlock session
// token. When the lock feature is disabled the gate is a pass-through.
func RequireUnlock(tokenService services.TokenServiceInterface, enabled bool) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !enabled {
				return next(c)
			}

			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return handlers.SendError(c, errors.LockSessionRequired)
			}

			token, err := tokenService.ExtractTokenFromHeader(authHeader)
			if err != nil {
				return handlers.SendError(c, errors.LockInvalidSession)
			}

			claims, err := tokenService.ValidateSessionToken(token)
			if err != nil {
				if err == services.ErrExpiredToken {
					return handlers.SendError(c, errors.LockSessionExpired)
				}
				return handlers.SendError(c, errors.LockInvalidSession)
			}

			c.Set("unlock_method", claims.Method)
			c.Set("session_jti", claims.ID)

			return next(c)
		}
	}
}
