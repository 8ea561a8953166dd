package metrics

import (
	"net/http"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
)

func ConfigureRouter(handler *echo.Echo) {
	handler.GET("/metrics", echoprometheus.NewHandler())
	handler.GET("/healthz", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
}
