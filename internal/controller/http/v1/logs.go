package httpv1

import (
	"errors"
	"net/http"

	"github.com/Lead-Coder/api-rate-limit/internal/domain"
	"github.com/Lead-Coder/api-rate-limit/internal/logquery"
	"github.com/Lead-Coder/api-rate-limit/internal/service"
	"github.com/labstack/echo/v4"
)

type logRoutes struct {
	logs Logs
}

type pageRequest struct {
	Page      int    `json:"page"`
	Direction string `json:"direction"`
}

func newLogRoutes(g *echo.Group, logs Logs) {
	r := &logRoutes{logs: logs}
	g.GET("", r.view)
	g.POST("/filters", r.filters)
	g.POST("/clear", r.clear)
	g.POST("/page", r.page)
	g.POST("/refresh", r.refresh)
}

// view answers with the current page, loading the collection first if it
// has never been loaded.
func (r *logRoutes) view(c echo.Context) error {
	if r.logs.View().Status == service.StatusLoading {
		if err := r.logs.Refresh(c.Request().Context()); err != nil && !errors.Is(err, domain.ErrTransientFetch) {
			return respondError(c, err)
		}
	}
	return c.JSON(http.StatusOK, r.logs.View())
}

func (r *logRoutes) filters(c echo.Context) error {
	var f logquery.Filters
	if err := c.Bind(&f); err != nil {
		return badRequest(c, err)
	}
	return c.JSON(http.StatusOK, r.logs.SetFilters(f))
}

func (r *logRoutes) clear(c echo.Context) error {
	return c.JSON(http.StatusOK, r.logs.ClearFilters())
}

func (r *logRoutes) page(c echo.Context) error {
	var req pageRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, err)
	}

	switch req.Direction {
	case "next":
		return c.JSON(http.StatusOK, r.logs.NextPage())
	case "prev":
		return c.JSON(http.StatusOK, r.logs.PrevPage())
	case "":
	default:
		return badRequest(c, errors.New("direction must be next or prev"))
	}

	if req.Page < 1 {
		return respondError(c, logquery.ErrInvalidPage)
	}
	return c.JSON(http.StatusOK, r.logs.SetPage(req.Page))
}

func (r *logRoutes) refresh(c echo.Context) error {
	if err := r.logs.Refresh(c.Request().Context()); err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, r.logs.View())
}
