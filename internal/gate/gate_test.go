package gate_test

import (
	"testing"

	"github.com/Lead-Coder/api-rate-limit/internal/domain"
	"github.com/Lead-Coder/api-rate-limit/internal/gate"
	"github.com/stretchr/testify/assert"
)

var (
	noSession  = domain.Session{}
	adminSess  = domain.Session{Credential: "admin_x", Role: domain.RoleAdmin}
	clientSess = domain.Session{Credential: "api_1", Role: domain.RoleClient}
)

func TestGate_Decide(t *testing.T) {
	g := gate.Default()

	tcs := []struct {
		name    string
		session domain.Session
		path    string
		want    gate.Decision
	}{
		{
			name:    "scenario C: admin on client screen",
			session: adminSess,
			path:    gate.PathClient,
			want:    gate.Decision{Kind: gate.RedirectForbidden, Screen: gate.PathClient, Redirect: gate.PathNotAuthorized},
		},
		{
			name:    "scenario D: no session on admin screen",
			session: noSession,
			path:    gate.PathAdminLogs,
			want:    gate.Decision{Kind: gate.RedirectLogin, Screen: gate.PathAdminLogs, Redirect: gate.PathLogin, ReturnTo: gate.PathAdminLogs},
		},
		{
			name:    "client on admin screen",
			session: clientSess,
			path:    gate.PathAdminClients,
			want:    gate.Decision{Kind: gate.RedirectForbidden, Screen: gate.PathAdminClients, Redirect: gate.PathNotAuthorized},
		},
		{
			name:    "admin allowed",
			session: adminSess,
			path:    gate.PathAdminClients,
			want:    gate.Decision{Kind: gate.Allow, Screen: gate.PathAdminClients},
		},
		{
			name:    "profile open to any role",
			session: clientSess,
			path:    gate.PathProfile,
			want:    gate.Decision{Kind: gate.Allow, Screen: gate.PathProfile},
		},
		{
			name:    "root resolves admin home",
			session: adminSess,
			path:    gate.PathRoot,
			want:    gate.Decision{Kind: gate.Allow, Screen: gate.PathAdmin},
		},
		{
			name:    "root resolves client home",
			session: clientSess,
			path:    "",
			want:    gate.Decision{Kind: gate.Allow, Screen: gate.PathClient},
		},
		{
			name:    "root without session",
			session: noSession,
			path:    gate.PathRoot,
			want:    gate.Decision{Kind: gate.RedirectLogin, Screen: gate.PathRoot, Redirect: gate.PathLogin},
		},
		{
			name:    "unknown path falls back to root",
			session: clientSess,
			path:    "/does/not/exist",
			want:    gate.Decision{Kind: gate.Allow, Screen: gate.PathClient},
		},
		{
			name:    "trailing slash and query are ignored",
			session: adminSess,
			path:    "/admin/logs/?page=2",
			want:    gate.Decision{Kind: gate.Allow, Screen: gate.PathAdminLogs},
		},
		{
			name:    "login is public",
			session: noSession,
			path:    gate.PathLogin,
			want:    gate.Decision{Kind: gate.Allow, Screen: gate.PathLogin},
		},
		{
			name:    "not-authorized is public",
			session: clientSess,
			path:    gate.PathNotAuthorized,
			want:    gate.Decision{Kind: gate.Allow, Screen: gate.PathNotAuthorized},
		},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, g.Decide(tc.session, tc.path))
		})
	}
}

func TestGate_Totality(t *testing.T) {
	g := gate.Default()
	sessions := []domain.Session{
		noSession, adminSess, clientSess,
		{Credential: "dangling"},
		{Role: domain.RoleAdmin},
	}
	paths := []string{"", "/", "/login", "/not-authorized", "/admin", "/admin/clients",
		"/admin/logs", "/client", "/profile", "/nope", "admin", "/admin/", "/client?x=1"}

	for _, s := range sessions {
		for _, p := range paths {
			d := g.Decide(s, p)
			switch d.Kind {
			case gate.Allow:
				assert.Empty(t, d.Redirect, "%v %q", s, p)
			case gate.RedirectLogin:
				assert.Equal(t, gate.PathLogin, d.Redirect)
				assert.False(t, s.Valid())
			case gate.RedirectForbidden:
				assert.Equal(t, gate.PathNotAuthorized, d.Redirect)
				assert.True(t, s.Valid())
			default:
				t.Fatalf("no decision for %v %q", s, p)
			}
		}
	}
}

func TestGate_NoHistoryDependence(t *testing.T) {
	g := gate.Default()
	want := g.Decide(clientSess, gate.PathAdmin)

	for _, p := range []string{gate.PathClient, gate.PathLogin, gate.PathAdminLogs, gate.PathProfile} {
		g.Decide(clientSess, p)
		g.Decide(adminSess, p)
		g.Decide(noSession, p)
	}

	assert.Equal(t, want, g.Decide(clientSess, gate.PathAdmin))
}

func TestGate_Authorize(t *testing.T) {
	g := gate.Default()
	admin := []domain.Role{domain.RoleAdmin}

	assert.Equal(t, gate.RedirectLogin, g.Authorize(noSession, admin).Kind)
	assert.Equal(t, gate.RedirectForbidden, g.Authorize(clientSess, admin).Kind)
	assert.Equal(t, gate.Allow, g.Authorize(adminSess, admin).Kind)
	assert.Equal(t, gate.Allow, g.Authorize(clientSess, nil).Kind)
}

func TestGate_AfterLogin(t *testing.T) {
	g := gate.Default()

	assert.Equal(t, gate.PathAdminLogs, g.AfterLogin(adminSess, gate.PathAdminLogs))
	assert.Equal(t, gate.PathClient, g.AfterLogin(clientSess, gate.PathAdminLogs), "forbidden target falls back to home")
	assert.Equal(t, gate.PathAdmin, g.AfterLogin(adminSess, ""))
	assert.Equal(t, gate.PathClient, g.AfterLogin(clientSess, gate.PathLogin))
	assert.Equal(t, gate.PathProfile, g.AfterLogin(clientSess, gate.PathProfile))
}

func TestGate_RolesFor(t *testing.T) {
	g := gate.Default()

	assert.Equal(t, []domain.Role{domain.RoleAdmin}, g.RolesFor("/admin/logs"))
	assert.Nil(t, g.RolesFor(gate.PathProfile))
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "allow", gate.Allow.String())
	assert.Equal(t, "login", gate.RedirectLogin.String())
	assert.Equal(t, "forbidden", gate.RedirectForbidden.String())
}
