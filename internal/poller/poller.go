package poller

import (
	"context"
	"sync"
	"time"

	"github.com/Lead-Coder/api-rate-limit/internal/metrics"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/semaphore"
)

const (
	OutcomeApplied   = "applied"
	OutcomeFailed    = "failed"
	OutcomeSkipped   = "skipped"
	OutcomeDiscarded = "discarded"
)

type Config struct {
	Name     string
	Interval time.Duration
}

type Sink[T any] struct {
	Apply func(T)
	Fail  func(error)
}

type Option func(*options)

type options struct {
	counter metrics.Counter
}

func WithCounter(c metrics.Counter) Option {
	return func(o *options) {
		o.counter = c
	}
}

// Task is a running periodic fetch. After Stop returns no sink callback runs.
type Task struct {
	name    string
	counter metrics.Counter

	mu      sync.Mutex
	stopped bool

	cancel   context.CancelFunc
	busy     *semaphore.Weighted
	loopDone chan struct{}
	inflight sync.WaitGroup
}

func Start[T any](ctx context.Context, cfg Config, fetch func(context.Context) (T, error), sink Sink[T], opts ...Option) *Task {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	ctx, cancel := context.WithCancel(ctx)
	t := &Task{
		name:     cfg.Name,
		counter:  o.counter,
		cancel:   cancel,
		busy:     semaphore.NewWeighted(1),
		loopDone: make(chan struct{}),
	}

	go t.loop(ctx, cfg.Interval, func() { tick(ctx, t, fetch, sink) })

	return t
}

func (t *Task) loop(ctx context.Context, interval time.Duration, fire func()) {
	defer close(t.loopDone)

	fire()
	if interval <= 0 {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			fire()
		}
	}
}

func tick[T any](ctx context.Context, t *Task, fetch func(context.Context) (T, error), sink Sink[T]) {
	if ctx.Err() != nil {
		return
	}
	if !t.busy.TryAcquire(1) {
		t.observe(OutcomeSkipped)
		log.WithField("poller", t.name).Debug("previous tick still running, skipping")
		return
	}

	t.inflight.Add(1)
	go func() {
		defer t.inflight.Done()
		defer t.busy.Release(1)

		v, err := fetch(ctx)

		t.mu.Lock()
		defer t.mu.Unlock()

		if t.stopped {
			t.observe(OutcomeDiscarded)
			return
		}
		if err != nil {
			t.observe(OutcomeFailed)
			if sink.Fail != nil {
				sink.Fail(err)
			}
			return
		}
		t.observe(OutcomeApplied)
		if sink.Apply != nil {
			sink.Apply(v)
		}
	}()
}

// Stop cancels the task and waits for the ticker loop to exit.
// A fetch still in flight completes in the background and its result is dropped.
func (t *Task) Stop() {
	t.mu.Lock()
	t.stopped = true
	t.mu.Unlock()

	t.cancel()
	<-t.loopDone
}

// Wait blocks until every started fetch has returned.
func (t *Task) Wait() {
	t.inflight.Wait()
}

func (t *Task) Stopped() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.stopped
}

func (t *Task) observe(outcome string) {
	if t.counter != nil {
		t.counter.Inc(t.name, outcome)
	}
}
