package service

import (
	"context"
	"errors"
	"time"

	"github.com/Lead-Coder/api-rate-limit/internal/domain"
)

// View is a screen's model. The router activates it when its screen is shown
// and deactivates it on the way out.
type View interface {
	Name() string
	Activate(ctx context.Context)
	Deactivate()
	Snapshot() any
}

type Status string

const (
	StatusLoading Status = "loading"
	StatusReady   Status = "ready"
	StatusError   Status = "error"
)

// State is the envelope every view snapshot carries.
type State struct {
	Status    Status    `json:"status"`
	Error     string    `json:"error,omitempty"`
	Stale     bool      `json:"stale,omitempty"`
	UpdatedAt time.Time `json:"updatedAt,omitempty"`
}

// cache holds the last good value of a view together with the session epoch it
// was fetched under. A failure after a successful load keeps the value and
// only marks it stale.
type cache[T any] struct {
	value     T
	loaded    bool
	epoch     uint64
	err       error
	updatedAt time.Time
}

func (c *cache[T]) apply(v T, epoch uint64) {
	c.value = v
	c.loaded = true
	c.epoch = epoch
	c.err = nil
	c.updatedAt = time.Now()
}

func (c *cache[T]) fail(err error) {
	c.err = err
}

// forget drops the value when it belongs to another session.
func (c *cache[T]) forget(epoch uint64) {
	if c.loaded && c.epoch != epoch {
		*c = cache[T]{}
	}
}

func (c *cache[T]) state() State {
	switch {
	case c.loaded:
		s := State{Status: StatusReady, UpdatedAt: c.updatedAt}
		if c.err != nil {
			s.Stale = true
			s.Error = userMessage(c.err)
		}
		return s
	case c.err != nil:
		return State{Status: StatusError, Error: userMessage(c.err)}
	}
	return State{Status: StatusLoading}
}

func userMessage(err error) string {
	switch {
	case errors.Is(err, domain.ErrTransientFetch):
		return "backend unavailable"
	case errors.Is(err, domain.ErrSessionInvalidated), errors.Is(err, domain.ErrUnauthenticated):
		return "session expired"
	}
	return err.Error()
}
