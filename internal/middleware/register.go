package middleware

import (
	"github.com/gogostanoev/e-commerce-backend-assignment/prometheus"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
)

// Register installs the request middleware chain on e. Recover runs inside
// logging and metrics so a panicking request is still logged and counted.
func Register(e *echo.Echo, m *prometheus.Metrics) {
	e.Use(RequestIDMiddleware)
	e.Use(LoggingMiddleware)
	e.Use(MetricsMiddleware(m))
	e.Use(echomw.Recover())
}
