package middleware

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/trip-search/trip-offer-aggregation-service/internal/obs"
)

// Metrics returns middleware that records request counts and latencies.
// Paths are recorded as route templates (e.g., /api/v1/bookings/:id) so the
// label set stays bounded regardless of path parameters.
func Metrics(m *obs.Metrics) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)
			if err != nil {
				c.Error(err)
			}

			path := c.Path()
			if path == "" {
				path = c.Request().URL.Path
			}

			method := c.Request().Method
			status := strconv.Itoa(c.Response().Status)

			m.IncHTTPRequestsTotal(method, path, status)
			m.ObserveHTTPRequestDuration(method, path, status, time.Since(start).Seconds())

			return nil
		}
	}
}
