package middleware

import (
	"net/http"
	"strings"

	"github.com/gogostanoev/e-commerce-backend-assignment/pkg/apperror"
	"github.com/gogostanoev/e-commerce-backend-assignment/pkg/jwtutil"
	"github.com/gogostanoev/e-commerce-backend-assignment/pkg/logger"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

const codeUnauthorized = "UNAUTHORIZED"

// WriteGuard requires a valid Bearer token on state-changing requests.
// Reads pass through untouched. A nil signer disables the guard.
func WriteGuard(signer *jwtutil.Signer) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		if signer == nil {
			return next
		}
		return func(c echo.Context) error {
			switch c.Request().Method {
			case http.MethodGet, http.MethodHead, http.MethodOptions:
				return next(c)
			}

			log := logger.FromContext(c)

			authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
			if authHeader == "" {
				log.Warn("Missing Authorization header")
				return unauthorized(c, "missing authorization token")
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
				log.Warn("Invalid Authorization header format")
				return unauthorized(c, "invalid authorization format, expected Bearer token")
			}

			claims, err := signer.ValidateToken(parts[1])
			if err != nil {
				log.Warn("Invalid JWT token", zap.Error(err))
				return unauthorized(c, "invalid or expired token")
			}

			c.Set("editor", claims.Subject)
			c.Set("editor_role", claims.Role)
			return next(c)
		}
	}
}

func unauthorized(c echo.Context, msg string) error {
	return c.JSON(http.StatusUnauthorized, echo.Map{
		"error": &apperror.AppError{Code: codeUnauthorized, Message: msg},
	})
}
