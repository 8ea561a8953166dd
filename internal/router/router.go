// Package router turns navigations into gate decisions and keeps exactly one
// screen's view active.
package router

import (
	"context"
	"sync"

	logginghelper "github.com/Lead-Coder/api-rate-limit/internal/controller/common/logging"
	"github.com/Lead-Coder/api-rate-limit/internal/domain"
	"github.com/Lead-Coder/api-rate-limit/internal/events"
	"github.com/Lead-Coder/api-rate-limit/internal/gate"
	"github.com/Lead-Coder/api-rate-limit/internal/metrics"
	"github.com/Lead-Coder/api-rate-limit/internal/service"
	errorsUtils "github.com/Lead-Coder/api-rate-limit/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type Sessions interface {
	Ready() <-chan struct{}
	Current() (domain.Session, bool)
	Epoch() uint64
}

type Invalidator interface {
	Invalidate(ctx context.Context, ev events.SessionInvalidated)
}

type Subscriber interface {
	OnSessionInvalidated(fn func(events.SessionInvalidated)) error
	OnSessionInvalidatedAsync(fn func(events.SessionInvalidated)) error
}

// Outcome is what a navigation rendered.
type Outcome struct {
	gate.Decision
	View any `json:"view,omitempty"`
}

type Router struct {
	sessions Sessions
	gate     *gate.Gate
	views    map[string]service.View
	counter  metrics.Counter

	mu      sync.Mutex
	screen  string
	current service.View
}

func New(s Sessions, g *gate.Gate, views map[string]service.View, counter metrics.Counter) *Router {
	return &Router{
		sessions: s,
		gate:     g,
		views:    views,
		counter:  counter,
	}
}

// Subscribe wires the router to SessionInvalidated. The session is cleared
// synchronously inside Publish; the screen change happens on the async path
// because the publisher may be running under a view that Navigate holds.
func (r *Router) Subscribe(bus Subscriber, inv Invalidator) error {
	if err := bus.OnSessionInvalidated(func(ev events.SessionInvalidated) {
		inv.Invalidate(context.Background(), ev)
	}); err != nil {
		return errorsUtils.WrapPathErr(err)
	}
	if err := bus.OnSessionInvalidatedAsync(func(ev events.SessionInvalidated) {
		if _, ok := r.sessions.Current(); ok {
			// a new login already replaced the rejected session
			return
		}
		log.WithField("reason", ev.Reason).Info("Session invalidated, returning to login")
		r.Reset()
	}); err != nil {
		return errorsUtils.WrapPathErr(err)
	}
	return nil
}

// Navigate evaluates path for the current session, swaps the active view and
// returns what should be shown. It blocks until the session store has been
// restored.
func (r *Router) Navigate(ctx context.Context, path string) (Outcome, error) {
	if err := r.WaitReady(ctx); err != nil {
		return Outcome{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for {
		sess, _ := r.sessions.Current()
		epoch := r.sessions.Epoch()
		d := r.gate.Decide(sess, path)

		logginghelper.LogNavigation(path, d)
		r.observe(d)

		if !d.Allowed() {
			r.switchTo(ctx, d.Redirect, nil)
			return Outcome{Decision: d}, nil
		}

		view := r.views[d.Screen]
		r.switchTo(ctx, d.Screen, view)

		// The session may have ended while the view loaded; decide again.
		if r.sessions.Epoch() != epoch {
			continue
		}

		out := Outcome{Decision: d}
		if view != nil {
			out.View = view.Snapshot()
		}
		return out, nil
	}
}

// switchTo deactivates the current view and activates next. Must hold r.mu.
func (r *Router) switchTo(ctx context.Context, screen string, next service.View) {
	if r.current != nil {
		r.current.Deactivate()
	}
	r.screen = screen
	r.current = next
	if next != nil {
		next.Activate(ctx)
	}
}

// Reset deactivates the current view and parks the router on the login screen.
func (r *Router) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.switchTo(context.Background(), gate.PathLogin, nil)
}

// Screen is the screen last shown.
func (r *Router) Screen() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.screen
}

// WaitReady blocks until the stored session has been restored, so that a
// request arriving during startup is not mistaken for a signed-out one.
func (r *Router) WaitReady(ctx context.Context) error {
	select {
	case <-r.sessions.Ready():
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Authorize decides whether the current session may call an endpoint gated on
// roles. Like Navigate it waits for the restore first.
func (r *Router) Authorize(ctx context.Context, roles []domain.Role) (gate.Decision, error) {
	if err := r.WaitReady(ctx); err != nil {
		return gate.Decision{}, err
	}
	sess, _ := r.sessions.Current()
	return r.gate.Authorize(sess, roles), nil
}

func (r *Router) observe(d gate.Decision) {
	if r.counter != nil {
		r.counter.Inc(d.Screen, d.Kind.String())
	}
}
