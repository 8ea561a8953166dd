package service

import (
	"context"
	"sync"

	logginghelper "github.com/Lead-Coder/api-rate-limit/internal/controller/common/logging"
	"github.com/Lead-Coder/api-rate-limit/internal/domain"
	"github.com/Lead-Coder/api-rate-limit/internal/gateway"
	"github.com/Lead-Coder/api-rate-limit/internal/logquery"
	errorsUtils "github.com/Lead-Coder/api-rate-limit/pkg/errors"
)

type LogsSnapshot struct {
	State
	Filters logquery.Filters `json:"filters"`
	Facets  logquery.Facets  `json:"facets"`
	Total   int              `json:"total"`
	logquery.Result
}

type LogsView struct {
	sessions Sessions
	gw       gateway.Logs

	mu      sync.Mutex
	data    cache[int]
	browser *logquery.Browser
}

func NewLogsView(s Sessions, gw gateway.Logs, engine *logquery.Engine) *LogsView {
	return &LogsView{
		sessions: s,
		gw:       gw,
		browser:  logquery.NewBrowser(engine),
	}
}

func (v *LogsView) Name() string { return "logs" }

func (v *LogsView) Activate(ctx context.Context) {
	v.mu.Lock()
	if v.data.loaded && v.data.epoch != v.sessions.Epoch() {
		v.browser.Reset()
	}
	v.data.forget(v.sessions.Epoch())
	v.mu.Unlock()

	if err := v.Refresh(ctx); err != nil {
		logginghelper.LogViewError(v.Name(), err)
	}
}

func (v *LogsView) Deactivate() {}

// Refresh reloads the collection from the backend. The page returns to 1 on
// every successful reload; filters survive.
func (v *LogsView) Refresh(ctx context.Context) error {
	epoch := v.sessions.Epoch()
	logs, err := v.gw.ListLogs(ctx)

	v.mu.Lock()
	defer v.mu.Unlock()

	if v.sessions.Epoch() != epoch {
		return domain.ErrStaleResponse
	}
	if err != nil {
		v.data.fail(err)
		return errorsUtils.WrapPathErr(err)
	}
	v.browser.Load(logs)
	v.data.apply(len(logs), epoch)
	return nil
}

func (v *LogsView) SetFilters(f logquery.Filters) LogsSnapshot {
	return v.mutate(func(b *logquery.Browser) { b.SetFilters(f) })
}

func (v *LogsView) ClearFilters() LogsSnapshot {
	return v.mutate(func(b *logquery.Browser) { b.ClearFilters() })
}

func (v *LogsView) SetPage(page int) LogsSnapshot {
	return v.mutate(func(b *logquery.Browser) { b.SetPage(page) })
}

func (v *LogsView) NextPage() LogsSnapshot {
	return v.mutate(func(b *logquery.Browser) { b.NextPage() })
}

func (v *LogsView) PrevPage() LogsSnapshot {
	return v.mutate(func(b *logquery.Browser) { b.PrevPage() })
}

func (v *LogsView) mutate(fn func(*logquery.Browser)) LogsSnapshot {
	v.mu.Lock()
	defer v.mu.Unlock()
	fn(v.browser)
	return v.snapshotLocked()
}

func (v *LogsView) Snapshot() any {
	return v.View()
}

func (v *LogsView) View() LogsSnapshot {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.snapshotLocked()
}

func (v *LogsView) snapshotLocked() LogsSnapshot {
	return LogsSnapshot{
		State:   v.data.state(),
		Filters: v.browser.Spec().Filters,
		Facets:  v.browser.Facets(),
		Total:   len(v.browser.Base()),
		Result:  v.browser.View(),
	}
}
