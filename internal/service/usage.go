package service

import (
	"context"
	"sync"
	"time"

	logginghelper "github.com/Lead-Coder/api-rate-limit/internal/controller/common/logging"
	"github.com/Lead-Coder/api-rate-limit/internal/domain"
	"github.com/Lead-Coder/api-rate-limit/internal/gateway"
	"github.com/Lead-Coder/api-rate-limit/internal/metrics"
	"github.com/Lead-Coder/api-rate-limit/internal/poller"
)

const DefaultPollInterval = 5 * time.Second

type Usage struct {
	domain.UsageStats
	Percent   float64 `json:"usagePercent"`
	NearLimit bool    `json:"nearLimit"`
	AtLimit   bool    `json:"atLimit"`
}

func NewUsage(s domain.UsageStats) Usage {
	return Usage{
		UsageStats: s,
		Percent:    s.Percent(),
		NearLimit:  s.NearLimit(),
		AtLimit:    s.AtLimit(),
	}
}

type UsageSnapshot struct {
	State
	Usage
	Polling bool `json:"polling"`
}

// usagePoller keeps quota stats fresh while its screen is shown.
type usagePoller struct {
	name     string
	sessions Sessions
	gw       gateway.Stats
	interval time.Duration
	counter  metrics.Counter

	mu   sync.Mutex
	data cache[domain.UsageStats]
	task *poller.Task
}

func newUsagePoller(name string, s Sessions, gw gateway.Stats, interval time.Duration, counter metrics.Counter) *usagePoller {
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	return &usagePoller{
		name:     name,
		sessions: s,
		gw:       gw,
		interval: interval,
		counter:  counter,
	}
}

// start restarts polling under the current session. The task outlives the
// request that triggered it, so only the context's values are kept.
func (p *usagePoller) start(ctx context.Context) {
	epoch := p.sessions.Epoch()
	sink := poller.Sink[domain.UsageStats]{
		Apply: func(s domain.UsageStats) {
			p.mu.Lock()
			defer p.mu.Unlock()
			if p.sessions.Epoch() != epoch {
				return
			}
			p.data.apply(s, epoch)
		},
		Fail: func(err error) {
			p.mu.Lock()
			defer p.mu.Unlock()
			if p.sessions.Epoch() != epoch {
				return
			}
			p.data.fail(err)
			logginghelper.LogViewError(p.name, err)
		},
	}

	var opts []poller.Option
	if p.counter != nil {
		opts = append(opts, poller.WithCounter(p.counter))
	}

	p.mu.Lock()
	old := p.task
	p.data.forget(epoch)
	p.task = poller.Start(context.WithoutCancel(ctx),
		poller.Config{Name: p.name, Interval: p.interval},
		p.gw.UsageStats, sink, opts...)
	p.mu.Unlock()

	if old != nil {
		old.Stop()
	}
}

// stop must not hold p.mu while waiting: an in-flight Apply holds the task
// lock and wants p.mu.
func (p *usagePoller) stop() {
	p.mu.Lock()
	task := p.task
	p.task = nil
	p.mu.Unlock()

	if task != nil {
		task.Stop()
	}
}

func (p *usagePoller) snapshot() UsageSnapshot {
	p.mu.Lock()
	defer p.mu.Unlock()
	return UsageSnapshot{
		State:   p.data.state(),
		Usage:   NewUsage(p.data.value),
		Polling: p.task != nil,
	}
}

// UsageView is the client dashboard.
type UsageView struct {
	*usagePoller
}

func NewUsageView(s Sessions, gw gateway.Stats, interval time.Duration, counter metrics.Counter) *UsageView {
	return &UsageView{usagePoller: newUsagePoller("client-dashboard", s, gw, interval, counter)}
}

func (v *UsageView) Name() string { return v.name }

func (v *UsageView) Activate(ctx context.Context) { v.start(ctx) }

func (v *UsageView) Deactivate() { v.stop() }

func (v *UsageView) Snapshot() any { return v.View() }

func (v *UsageView) View() UsageSnapshot { return v.snapshot() }

type ProfileSnapshot struct {
	UsageSnapshot
	Credential string      `json:"credential"`
	Role       domain.Role `json:"role"`
}

type ProfileView struct {
	*usagePoller
}

func NewProfileView(s Sessions, gw gateway.Stats, interval time.Duration, counter metrics.Counter) *ProfileView {
	return &ProfileView{usagePoller: newUsagePoller("profile", s, gw, interval, counter)}
}

func (v *ProfileView) Name() string { return v.name }

func (v *ProfileView) Activate(ctx context.Context) { v.start(ctx) }

func (v *ProfileView) Deactivate() { v.stop() }

func (v *ProfileView) Snapshot() any { return v.View() }

func (v *ProfileView) View() ProfileSnapshot {
	sess, _ := v.sessions.Current()
	return ProfileSnapshot{
		UsageSnapshot: v.snapshot(),
		Credential:    sess.Masked(),
		Role:          sess.Role,
	}
}
