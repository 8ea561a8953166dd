// Package events carries the typed signals between the HTTP boundary and the
// router, over an asaskevich/EventBus topic bus.
package events

import (
	"time"

	evbus "github.com/asaskevich/EventBus"
)

const TopicSessionInvalidated = "session:invalidated"

// SessionInvalidated is emitted when the backend rejects the session (401/403)
// or a call needs a credential and there is none. Epoch is the session epoch
// the failed call was issued under.
type SessionInvalidated struct {
	Epoch  uint64
	Reason string
	Status int
	At     time.Time
}

type Bus struct {
	bus evbus.Bus
}

func New() *Bus {
	return &Bus{bus: evbus.New()}
}

func (b *Bus) PublishSessionInvalidated(ev SessionInvalidated) {
	if ev.At.IsZero() {
		ev.At = time.Now()
	}
	b.bus.Publish(TopicSessionInvalidated, ev)
}

// OnSessionInvalidated runs fn synchronously inside Publish.
func (b *Bus) OnSessionInvalidated(fn func(SessionInvalidated)) error {
	return b.bus.Subscribe(TopicSessionInvalidated, fn)
}

// OnSessionInvalidatedAsync runs fn on its own goroutine, for handlers that
// take locks the publisher might hold.
func (b *Bus) OnSessionInvalidatedAsync(fn func(SessionInvalidated)) error {
	return b.bus.SubscribeAsync(TopicSessionInvalidated, fn, false)
}

// Wait blocks until async handlers have returned.
func (b *Bus) Wait() {
	b.bus.WaitAsync()
}
