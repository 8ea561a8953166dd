package service

import (
	"context"
	"net/http"
	"sort"
	"sync"

	logginghelper "github.com/Lead-Coder/api-rate-limit/internal/controller/common/logging"
	"github.com/Lead-Coder/api-rate-limit/internal/domain"
	"github.com/Lead-Coder/api-rate-limit/internal/gateway"
	errorsUtils "github.com/Lead-Coder/api-rate-limit/pkg/errors"
	"golang.org/x/sync/errgroup"
)

type StatusCount struct {
	StatusCode int `json:"statusCode"`
	Count      int `json:"count"`
}

type DashboardStats struct {
	TotalRequests   int           `json:"totalRequests"`
	BlockedRequests int           `json:"blockedRequests"`
	ActiveClients   int           `json:"activeClients"`
	TotalClients    int           `json:"totalClients"`
	AvgResponseTime float64       `json:"avgResponseTime"`
	StatusCodes     []StatusCount `json:"statusCodes"`
}

type DashboardSnapshot struct {
	State
	DashboardStats
}

type AdminDashboardView struct {
	sessions Sessions
	clients  gateway.Clients
	logs     gateway.Logs

	mu   sync.Mutex
	data cache[DashboardStats]
}

func NewAdminDashboardView(s Sessions, c gateway.Clients, l gateway.Logs) *AdminDashboardView {
	return &AdminDashboardView{sessions: s, clients: c, logs: l}
}

func (v *AdminDashboardView) Name() string { return "admin-dashboard" }

func (v *AdminDashboardView) Activate(ctx context.Context) {
	v.mu.Lock()
	v.data.forget(v.sessions.Epoch())
	v.mu.Unlock()

	if err := v.Refresh(ctx); err != nil {
		logginghelper.LogViewError(v.Name(), err)
	}
}

func (v *AdminDashboardView) Deactivate() {}

// Refresh fetches clients and logs concurrently; either failing fails the refresh.
func (v *AdminDashboardView) Refresh(ctx context.Context) error {
	epoch := v.sessions.Epoch()

	var (
		clients []domain.Client
		logs    []domain.LogEntry
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		clients, err = v.clients.ListClients(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		logs, err = v.logs.ListLogs(gctx)
		return err
	})
	err := g.Wait()

	v.mu.Lock()
	defer v.mu.Unlock()

	if v.sessions.Epoch() != epoch {
		return domain.ErrStaleResponse
	}
	if err != nil {
		v.data.fail(err)
		return errorsUtils.WrapPathErr(err)
	}
	v.data.apply(Summarize(clients, logs), epoch)
	return nil
}

// Summarize derives the dashboard figures. Status codes are ordered ascending.
func Summarize(clients []domain.Client, logs []domain.LogEntry) DashboardStats {
	st := DashboardStats{
		TotalRequests: len(logs),
		TotalClients:  len(clients),
		StatusCodes:   []StatusCount{},
	}

	for _, c := range clients {
		if c.Status == domain.StatusActive {
			st.ActiveClients++
		}
	}

	var totalTime int64
	byCode := map[int]int{}
	for _, l := range logs {
		if l.StatusCode == http.StatusTooManyRequests {
			st.BlockedRequests++
		}
		byCode[l.StatusCode]++
		totalTime += l.ResponseTimeMillis
	}
	if len(logs) > 0 {
		st.AvgResponseTime = float64(totalTime) / float64(len(logs))
	}

	for code, n := range byCode {
		st.StatusCodes = append(st.StatusCodes, StatusCount{StatusCode: code, Count: n})
	}
	sort.Slice(st.StatusCodes, func(i, j int) bool {
		return st.StatusCodes[i].StatusCode < st.StatusCodes[j].StatusCode
	})
	return st
}

func (v *AdminDashboardView) Snapshot() any {
	return v.View()
}

func (v *AdminDashboardView) View() DashboardSnapshot {
	v.mu.Lock()
	defer v.mu.Unlock()
	return DashboardSnapshot{State: v.data.state(), DashboardStats: v.data.value}
}
