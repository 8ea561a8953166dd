package httpv1

import (
	"github.com/Lead-Coder/api-rate-limit/internal/domain"
	"github.com/labstack/echo/v4"
)

// awaitRestore holds requests until the stored session has been restored.
func awaitRestore(nav Navigator) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if err := nav.WaitReady(c.Request().Context()); err != nil {
				return respondError(c, err)
			}
			return next(c)
		}
	}
}

// requireRoles applies the access gate to API endpoints that back a screen.
func requireRoles(nav Navigator, roles ...domain.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			d, err := nav.Authorize(c.Request().Context(), roles)
			if err != nil {
				return respondError(c, err)
			}
			if !d.Allowed() {
				return respondDecision(c, d)
			}
			return next(c)
		}
	}
}
