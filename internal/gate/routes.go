package gate

import "github.com/Lead-Coder/api-rate-limit/internal/domain"

const (
	PathRoot          = "/"
	PathLogin         = "/login"
	PathNotAuthorized = "/not-authorized"
	PathAdmin         = "/admin"
	PathAdminClients  = "/admin/clients"
	PathAdminLogs     = "/admin/logs"
	PathClient        = "/client"
	PathProfile       = "/profile"
)

// Route declares who may see a screen. Nil Roles means any authenticated
// session; Public screens skip the gate entirely.
type Route struct {
	Path   string
	Roles  []domain.Role
	Public bool
}

// ConsoleRoutes is the screen table of the console.
func ConsoleRoutes() []Route {
	admin := []domain.Role{domain.RoleAdmin}
	return []Route{
		{Path: PathLogin, Public: true},
		{Path: PathNotAuthorized, Public: true},
		{Path: PathAdmin, Roles: admin},
		{Path: PathAdminClients, Roles: admin},
		{Path: PathAdminLogs, Roles: admin},
		{Path: PathClient, Roles: []domain.Role{domain.RoleClient}},
		{Path: PathProfile},
	}
}

// DefaultHomes maps each role to the screen root navigation lands on.
func DefaultHomes() map[domain.Role]string {
	return map[domain.Role]string{
		domain.RoleAdmin:  PathAdmin,
		domain.RoleClient: PathClient,
	}
}
