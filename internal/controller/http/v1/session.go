package httpv1

import (
	"net/http"

	"github.com/Lead-Coder/api-rate-limit/internal/controller/http/validators"
	"github.com/Lead-Coder/api-rate-limit/internal/domain"
	"github.com/Lead-Coder/api-rate-limit/internal/gate"
	"github.com/labstack/echo/v4"
)

type sessionRoutes struct {
	auth Auth
	nav  Navigator
}

type loginRequest struct {
	Credential string `json:"credential"`
	ReturnTo   string `json:"returnTo"`
}

type sessionResponse struct {
	Authenticated bool        `json:"authenticated"`
	Role          domain.Role `json:"role,omitempty"`
	Credential    string      `json:"credential,omitempty"`
}

func newSessionRoutes(g *echo.Group, auth Auth, nav Navigator) {
	r := &sessionRoutes{auth: auth, nav: nav}
	g.GET("", r.current)
	g.POST("/login", r.login)
	g.POST("/logout", r.logout)
}

func (r *sessionRoutes) current(c echo.Context) error {
	sess, ok := r.auth.Session()
	if !ok {
		return c.JSON(http.StatusOK, sessionResponse{})
	}
	return c.JSON(http.StatusOK, sessionResponse{
		Authenticated: true,
		Role:          sess.Role,
		Credential:    sess.Masked(),
	})
}

func (r *sessionRoutes) login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, err)
	}
	if err := validators.ValidateCredential(req.Credential); err != nil {
		return badRequest(c, err)
	}

	res, err := r.auth.Login(c.Request().Context(), req.Credential, req.ReturnTo)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, res)
}

func (r *sessionRoutes) logout(c echo.Context) error {
	if err := r.auth.Logout(c.Request().Context()); err != nil {
		return respondError(c, err)
	}
	r.nav.Reset()
	return c.JSON(http.StatusOK, map[string]string{"redirect": gate.PathLogin})
}
