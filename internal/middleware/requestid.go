package middleware

import (
	"github.com/gogostanoev/e-commerce-backend-assignment/pkg/logger"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// RequestIDHeader carries the request id in and out of the service.
const RequestIDHeader = "X-Request-ID"

// RequestIDMiddleware adds a unique request ID to each request and a logger
// tagged with it. An inbound X-Request-ID is kept.
func RequestIDMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := c.Request().Header.Get(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.New().String()
			c.Request().Header.Set(RequestIDHeader, requestID)
		}
		c.Response().Header().Set(RequestIDHeader, requestID)
		c.Set("request_id", requestID)

		log := logger.FromStdContext(c.Request().Context()).With(zap.String("request_id", requestID))
		c.Set(logger.EchoKey, log)
		// GraphQL resolvers only see the request context
		c.SetRequest(c.Request().WithContext(logger.WithLogger(c.Request().Context(), log)))

		return next(c)
	}
}
