package httpv1

import (
	"context"

	"github.com/Lead-Coder/api-rate-limit/internal/domain"
	"github.com/Lead-Coder/api-rate-limit/internal/gate"
	"github.com/Lead-Coder/api-rate-limit/internal/logquery"
	"github.com/Lead-Coder/api-rate-limit/internal/metrics"
	"github.com/Lead-Coder/api-rate-limit/internal/router"
	"github.com/Lead-Coder/api-rate-limit/internal/service"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	log "github.com/sirupsen/logrus"
)

type Navigator interface {
	Navigate(ctx context.Context, path string) (router.Outcome, error)
	WaitReady(ctx context.Context) error
	Authorize(ctx context.Context, roles []domain.Role) (gate.Decision, error)
	Reset()
}

type Auth interface {
	Login(ctx context.Context, credential, returnTo string) (service.LoginResult, error)
	Logout(ctx context.Context) error
	Session() (domain.Session, bool)
}

type Clients interface {
	Refresh(ctx context.Context) error
	SetQuery(q string)
	View() service.ClientsSnapshot
	Create(ctx context.Context, nc domain.NewClient) (domain.Client, error)
	Update(ctx context.Context, id string, patch domain.ClientPatch) (domain.Client, error)
	Delete(ctx context.Context, id string) error
}

type Logs interface {
	Refresh(ctx context.Context) error
	SetFilters(f logquery.Filters) service.LogsSnapshot
	ClearFilters() service.LogsSnapshot
	SetPage(page int) service.LogsSnapshot
	NextPage() service.LogsSnapshot
	PrevPage() service.LogsSnapshot
	View() service.LogsSnapshot
}

type Dependencies struct {
	Navigator Navigator
	Auth      Auth
	Clients   Clients
	Logs      Logs
	Counters  *metrics.Counters
}

func ConfigureRouter(e *echo.Echo, deps Dependencies) {
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recover())
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:       true,
		LogMethod:    true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(_ echo.Context, v middleware.RequestLoggerValues) error {
			entry := log.WithFields(log.Fields{
				"method":     v.Method,
				"uri":        v.URI,
				"status":     v.Status,
				"latency":    v.Latency.String(),
				"request_id": v.RequestID,
			})
			if v.Error != nil {
				entry.WithField("error", v.Error).Warn("request failed")
				return nil
			}
			entry.Debug("request")
			return nil
		},
	}))

	newSessionRoutes(e.Group("/api/session", awaitRestore(deps.Navigator)), deps.Auth, deps.Navigator)
	newScreenRoutes(e.Group("/screens"), deps.Navigator)

	admin := e.Group("/api/admin", requireRoles(deps.Navigator, domain.RoleAdmin))
	newClientRoutes(admin.Group("/clients"), deps.Clients)
	newLogRoutes(admin.Group("/logs"), deps.Logs)
}
