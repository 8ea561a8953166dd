package httpv1

import (
	"errors"
	"net/http"

	"github.com/Lead-Coder/api-rate-limit/internal/controller/http/validators"
	"github.com/Lead-Coder/api-rate-limit/internal/domain"
	"github.com/labstack/echo/v4"
)

type clientRoutes struct {
	clients Clients
}

func newClientRoutes(g *echo.Group, clients Clients) {
	r := &clientRoutes{clients: clients}
	g.GET("", r.list)
	g.POST("", r.create)
	g.PUT("/:id", r.update)
	g.DELETE("/:id", r.delete)
}

// list reloads and returns the client list filtered by ?q. A transient
// failure still answers with the last known list marked stale.
func (r *clientRoutes) list(c echo.Context) error {
	r.clients.SetQuery(c.QueryParam("q"))
	if err := r.clients.Refresh(c.Request().Context()); err != nil && !errors.Is(err, domain.ErrTransientFetch) {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, r.clients.View())
}

func (r *clientRoutes) create(c echo.Context) error {
	var req domain.NewClient
	if err := c.Bind(&req); err != nil {
		return badRequest(c, err)
	}
	if err := validators.ValidateNewClient(&req); err != nil {
		return badRequest(c, err)
	}

	created, err := r.clients.Create(c.Request().Context(), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, created)
}

func (r *clientRoutes) update(c echo.Context) error {
	var req domain.ClientPatch
	if err := c.Bind(&req); err != nil {
		return badRequest(c, err)
	}
	if err := validators.ValidateClientPatch(&req); err != nil {
		return badRequest(c, err)
	}

	updated, err := r.clients.Update(c.Request().Context(), c.Param("id"), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, updated)
}

func (r *clientRoutes) delete(c echo.Context) error {
	if err := r.clients.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return respondError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
