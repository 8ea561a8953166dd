// Package gate decides, per navigation, whether a session may reach a screen.
// Decisions are a pure function of the session, the route table and the path.
package gate

import (
	"fmt"
	"net/url"
	"slices"
	"strings"

	"github.com/Lead-Coder/api-rate-limit/internal/domain"
)

type Kind int

const (
	Allow Kind = iota + 1
	RedirectLogin
	RedirectForbidden
)

func (k Kind) String() string {
	switch k {
	case Allow:
		return "allow"
	case RedirectLogin:
		return "login"
	case RedirectForbidden:
		return "forbidden"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Decision is the single outcome of one navigation.
type Decision struct {
	Kind Kind `json:"decision"`
	// Screen is the resolved path that was evaluated.
	Screen string `json:"screen"`
	// Redirect is set for the two redirect kinds.
	Redirect string `json:"redirect,omitempty"`
	// ReturnTo preserves the requested screen across a login redirect.
	ReturnTo string `json:"returnTo,omitempty"`
}

func (d Decision) Allowed() bool {
	return d.Kind == Allow
}

type Gate struct {
	routes map[string]Route
	homes  map[domain.Role]string
}

type Option func(*Gate)

func WithHomes(homes map[domain.Role]string) Option {
	return func(g *Gate) {
		g.homes = homes
	}
}

func New(routes []Route, opts ...Option) *Gate {
	g := &Gate{
		routes: make(map[string]Route, len(routes)),
		homes:  DefaultHomes(),
	}
	for _, r := range routes {
		g.routes[normalize(r.Path)] = r
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Default builds the gate over the console's route table.
func Default() *Gate {
	return New(ConsoleRoutes())
}

// Resolve maps a requested path onto a known screen: unknown paths fall back
// to root and root lands on the role's home when there is a session.
func (g *Gate) Resolve(sess domain.Session, path string) string {
	p := normalize(path)
	if _, ok := g.routes[p]; !ok {
		p = PathRoot
	}
	if p == PathRoot && sess.Valid() {
		if home, ok := g.homes[sess.Role]; ok {
			return home
		}
	}
	return p
}

// Decide evaluates one navigation.
func (g *Gate) Decide(sess domain.Session, path string) Decision {
	screen := g.Resolve(sess, path)
	route, known := g.routes[screen]

	if known && route.Public {
		return Decision{Kind: Allow, Screen: screen}
	}

	if !sess.Valid() {
		d := Decision{Kind: RedirectLogin, Screen: screen, Redirect: PathLogin}
		if screen != PathRoot {
			d.ReturnTo = screen
		}
		return d
	}

	if known && !permits(route.Roles, sess.Role) {
		return Decision{Kind: RedirectForbidden, Screen: screen, Redirect: PathNotAuthorized}
	}

	return Decision{Kind: Allow, Screen: screen}
}

// Authorize applies the same rules to a role set without a route, for API
// endpoints that belong to a screen.
func (g *Gate) Authorize(sess domain.Session, roles []domain.Role) Decision {
	if !sess.Valid() {
		return Decision{Kind: RedirectLogin, Redirect: PathLogin}
	}
	if !permits(roles, sess.Role) {
		return Decision{Kind: RedirectForbidden, Redirect: PathNotAuthorized}
	}
	return Decision{Kind: Allow}
}

// AfterLogin picks where a fresh session lands: the preserved screen if the
// session may see it, its home otherwise.
func (g *Gate) AfterLogin(sess domain.Session, returnTo string) string {
	if returnTo != "" {
		d := g.Decide(sess, returnTo)
		if d.Allowed() && !g.routes[d.Screen].Public {
			return d.Screen
		}
	}
	return g.Resolve(sess, PathRoot)
}

// RolesFor returns the role set a screen declares.
func (g *Gate) RolesFor(path string) []domain.Role {
	return g.routes[normalize(path)].Roles
}

func permits(roles []domain.Role, role domain.Role) bool {
	return len(roles) == 0 || slices.Contains(roles, role)
}

func normalize(path string) string {
	if u, err := url.Parse(path); err == nil {
		path = u.Path
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	if len(path) > 1 {
		path = strings.TrimRight(path, "/")
		if path == "" {
			path = PathRoot
		}
	}
	return path
}
