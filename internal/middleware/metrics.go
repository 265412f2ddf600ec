package middleware

import (
	"time"

	"storefront/internal/metrics"

	"github.com/labstack/echo/v4"
)

// HTTPメトリクスを記録する。endpointはルートのパターン (/products/:slug)。
func Metrics(m *metrics.Metrics) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if metrics.ShouldSkipEndpoint(c.Request().URL.Path) {
				return next(c)
			}

			start := time.Now()
			err := next(c)
			if err != nil {
				c.Error(err)
			}

			m.RecordHTTPRequest(
				c.Request().Method,
				c.Path(),
				c.Response().Status,
				time.Since(start),
			)
			return nil
		}
	}
}
