package middleware

import (
	"strconv"
	"time"

	"github.com/gogostanoev/e-commerce-backend-assignment/prometheus"

	"github.com/labstack/echo/v4"
)

// MetricsMiddleware adds prometheus metrics to track HTTP requests
func MetricsMiddleware(m *prometheus.Metrics) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			if err := next(c); err != nil {
				c.Error(err)
			}

			// Route template keeps label cardinality bounded
			path := c.Path()
			if path == "" {
				path = "unmatched"
			}
			m.ObserveHTTPRequest(c.Request().Method, path, strconv.Itoa(c.Response().Status), time.Since(start))
			return nil
		}
	}
}
