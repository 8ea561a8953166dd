package httpv1

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

type screenRoutes struct {
	nav Navigator
}

func newScreenRoutes(g *echo.Group, nav Navigator) {
	r := &screenRoutes{nav: nav}
	g.GET("", r.navigate)
	g.GET("/*", r.navigate)
}

// navigate always answers 200: redirects are part of the decision body.
func (r *screenRoutes) navigate(c echo.Context) error {
	out, err := r.nav.Navigate(c.Request().Context(), "/"+c.Param("*"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
