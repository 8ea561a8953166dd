package httpv1

import (
	"context"
	"errors"
	"net/http"

	"github.com/Lead-Coder/api-rate-limit/internal/controller/http/validators"
	"github.com/Lead-Coder/api-rate-limit/internal/domain"
	"github.com/Lead-Coder/api-rate-limit/internal/gate"
	"github.com/Lead-Coder/api-rate-limit/internal/logquery"
	"github.com/labstack/echo/v4"
	log "github.com/sirupsen/logrus"
)

type errorResponse struct {
	Error    string `json:"error"`
	Redirect string `json:"redirect,omitempty"`
}

const msgInvalidCredential = "Invalid or inactive API key"

func respondError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidCredential):
		return c.JSON(http.StatusUnauthorized, errorResponse{Error: msgInvalidCredential})
	case errors.Is(err, domain.ErrUnauthenticated), errors.Is(err, domain.ErrSessionInvalidated):
		return c.JSON(http.StatusUnauthorized, errorResponse{Error: "session expired", Redirect: gate.PathLogin})
	case errors.Is(err, domain.ErrForbidden):
		return c.JSON(http.StatusForbidden, errorResponse{Error: "not authorized", Redirect: gate.PathNotAuthorized})
	case errors.Is(err, domain.ErrStaleResponse):
		return c.JSON(http.StatusConflict, errorResponse{Error: "session changed, retry"})
	case errors.Is(err, domain.ErrTransientFetch):
		return c.JSON(http.StatusBadGateway, errorResponse{Error: "backend unavailable"})
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return c.JSON(http.StatusServiceUnavailable, errorResponse{Error: "session restore pending"})
	case validators.IsValidation(err),
		errors.Is(err, logquery.ErrInvalidPage),
		errors.Is(err, logquery.ErrPageOutOfRange):
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	log.WithField("path", c.Path()).Errorf("unhandled error: %v", err)
	return c.JSON(http.StatusInternalServerError, errorResponse{Error: "internal error"})
}

func respondDecision(c echo.Context, d gate.Decision) error {
	switch d.Kind {
	case gate.RedirectLogin:
		return c.JSON(http.StatusUnauthorized, errorResponse{Error: "authentication required", Redirect: d.Redirect})
	case gate.RedirectForbidden:
		return c.JSON(http.StatusForbidden, errorResponse{Error: "not authorized", Redirect: d.Redirect})
	}
	return c.NoContent(http.StatusOK)
}

func badRequest(c echo.Context, err error) error {
	return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
}
