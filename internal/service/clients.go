package service

import (
	"context"
	"slices"
	"sync"

	logginghelper "github.com/Lead-Coder/api-rate-limit/internal/controller/common/logging"
	"github.com/Lead-Coder/api-rate-limit/internal/domain"
	"github.com/Lead-Coder/api-rate-limit/internal/gateway"
	"github.com/Lead-Coder/api-rate-limit/internal/search"
	errorsUtils "github.com/Lead-Coder/api-rate-limit/pkg/errors"
)

type ClientsSnapshot struct {
	State
	Query   string          `json:"query"`
	Clients []domain.Client `json:"clients"`
	Total   int             `json:"total"`
}

type ClientsView struct {
	sessions Sessions
	gw       gateway.Clients

	mu    sync.Mutex
	data  cache[[]domain.Client]
	query string
}

func NewClientsView(s Sessions, gw gateway.Clients) *ClientsView {
	return &ClientsView{sessions: s, gw: gw}
}

func (v *ClientsView) Name() string { return "clients" }

func (v *ClientsView) Activate(ctx context.Context) {
	v.mu.Lock()
	v.data.forget(v.sessions.Epoch())
	v.mu.Unlock()

	if err := v.Refresh(ctx); err != nil {
		logginghelper.LogViewError(v.Name(), err)
	}
}

func (v *ClientsView) Deactivate() {}

// Refresh reloads the client list. A response that arrives after the session
// changed is dropped.
func (v *ClientsView) Refresh(ctx context.Context) error {
	epoch := v.sessions.Epoch()
	clients, err := v.gw.ListClients(ctx)

	v.mu.Lock()
	defer v.mu.Unlock()

	if v.sessions.Epoch() != epoch {
		return domain.ErrStaleResponse
	}
	if err != nil {
		v.data.fail(err)
		return errorsUtils.WrapPathErr(err)
	}
	v.data.apply(clients, epoch)
	return nil
}

func (v *ClientsView) SetQuery(q string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.query = q
}

// Search matches q case-insensitively against display name and credential.
func Search(clients []domain.Client, q string) []domain.Client {
	return search.Filter(clients, func(c domain.Client) bool {
		return search.ContainsFold(q, c.DisplayName, c.Credential)
	})
}

func (v *ClientsView) Create(ctx context.Context, nc domain.NewClient) (domain.Client, error) {
	epoch := v.sessions.Epoch()
	created, err := v.gw.CreateClient(ctx, nc)
	if err != nil {
		return domain.Client{}, errorsUtils.WrapPathErr(err)
	}

	v.mu.Lock()
	defer v.mu.Unlock()
	if v.sessions.Epoch() == epoch && v.data.loaded {
		v.data.value = append(slices.Clone(v.data.value), created)
	}
	return created, nil
}

func (v *ClientsView) Update(ctx context.Context, id string, patch domain.ClientPatch) (domain.Client, error) {
	epoch := v.sessions.Epoch()
	updated, err := v.gw.UpdateClient(ctx, id, patch)
	if err != nil {
		return domain.Client{}, errorsUtils.WrapPathErr(err)
	}

	v.mu.Lock()
	defer v.mu.Unlock()
	if v.sessions.Epoch() == epoch && v.data.loaded {
		next := slices.Clone(v.data.value)
		if i := slices.IndexFunc(next, func(c domain.Client) bool { return c.ID == id }); i >= 0 {
			next[i] = updated
		}
		v.data.value = next
	}
	return updated, nil
}

func (v *ClientsView) Delete(ctx context.Context, id string) error {
	epoch := v.sessions.Epoch()
	if err := v.gw.DeleteClient(ctx, id); err != nil {
		return errorsUtils.WrapPathErr(err)
	}

	v.mu.Lock()
	defer v.mu.Unlock()
	if v.sessions.Epoch() == epoch && v.data.loaded {
		v.data.value = slices.DeleteFunc(slices.Clone(v.data.value), func(c domain.Client) bool { return c.ID == id })
	}
	return nil
}

func (v *ClientsView) Snapshot() any {
	return v.View()
}

func (v *ClientsView) View() ClientsSnapshot {
	v.mu.Lock()
	defer v.mu.Unlock()

	all := v.data.value
	return ClientsSnapshot{
		State:   v.data.state(),
		Query:   v.query,
		Clients: Search(all, v.query),
		Total:   len(all),
	}
}
