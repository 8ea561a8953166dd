package service

import (
	"context"
	"time"

	"github.com/Lead-Coder/api-rate-limit/internal/domain"
	"github.com/Lead-Coder/api-rate-limit/internal/gate"
	"github.com/Lead-Coder/api-rate-limit/internal/gateway"
	"github.com/Lead-Coder/api-rate-limit/internal/logquery"
	"github.com/Lead-Coder/api-rate-limit/internal/metrics"
)

// Sessions is what views need from the session store.
type Sessions interface {
	Current() (domain.Session, bool)
	Epoch() uint64
}

type SessionManager interface {
	Sessions
	Login(ctx context.Context, credential string, role domain.Role) error
	Logout(ctx context.Context) error
	Expire(ctx context.Context, epoch uint64) (domain.Session, bool, error)
}

type Auditor interface {
	Record(ctx context.Context, event string, sess domain.Session, reason string) error
}

type Services struct {
	Auth      *AuthService
	Dashboard *AdminDashboardView
	Clients   *ClientsView
	Logs      *LogsView
	Usage     *UsageView
	Profile   *ProfileView
}

type ServicesDependencies struct {
	Sessions     SessionManager
	Gate         *gate.Gate
	Gateway      gateway.API
	Auditor      Auditor
	Counters     *metrics.Counters
	Engine       *logquery.Engine
	PollInterval time.Duration
}

func NewServices(deps ServicesDependencies) *Services {
	return &Services{
		Auth:      NewAuthService(deps.Sessions, deps.Gateway, deps.Gate, deps.Auditor, deps.Counters),
		Dashboard: NewAdminDashboardView(deps.Sessions, deps.Gateway, deps.Gateway),
		Clients:   NewClientsView(deps.Sessions, deps.Gateway),
		Logs:      NewLogsView(deps.Sessions, deps.Gateway, deps.Engine),
		Usage:     NewUsageView(deps.Sessions, deps.Gateway, deps.PollInterval, deps.Counters.PollTicks),
		Profile:   NewProfileView(deps.Sessions, deps.Gateway, deps.PollInterval, deps.Counters.PollTicks),
	}
}

// Screens maps each gated screen to the view that renders it.
func (s *Services) Screens() map[string]View {
	return map[string]View{
		gate.PathAdmin:        s.Dashboard,
		gate.PathAdminClients: s.Clients,
		gate.PathAdminLogs:    s.Logs,
		gate.PathClient:       s.Usage,
		gate.PathProfile:      s.Profile,
	}
}

// Stop deactivates every view. Used on shutdown.
func (s *Services) Stop() {
	for _, v := range s.Screens() {
		v.Deactivate()
	}
}
