package router_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/Lead-Coder/api-rate-limit/internal/domain"
	"github.com/Lead-Coder/api-rate-limit/internal/events"
	"github.com/Lead-Coder/api-rate-limit/internal/gate"
	"github.com/Lead-Coder/api-rate-limit/internal/metrics"
	countermocks "github.com/Lead-Coder/api-rate-limit/internal/mocks/counters"
	"github.com/Lead-Coder/api-rate-limit/internal/repo/memdb"
	"github.com/Lead-Coder/api-rate-limit/internal/router"
	"github.com/Lead-Coder/api-rate-limit/internal/service"
	"github.com/Lead-Coder/api-rate-limit/internal/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fakeView struct {
	name       string
	onActivate func()

	mu          sync.Mutex
	active      bool
	activations int
}

func (v *fakeView) Name() string { return v.name }

func (v *fakeView) Activate(context.Context) {
	v.mu.Lock()
	v.active = true
	v.activations++
	v.mu.Unlock()
	if v.onActivate != nil {
		v.onActivate()
	}
}

func (v *fakeView) Deactivate() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.active = false
}

func (v *fakeView) Snapshot() any { return v.name }

func (v *fakeView) isActive() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.active
}

type storeInvalidator struct {
	store *session.Store
}

func (i storeInvalidator) Invalidate(ctx context.Context, _ events.SessionInvalidated) {
	_ = i.store.Logout(ctx)
}

type fixture struct {
	store  *session.Store
	bus    *events.Bus
	router *router.Router
	views  map[string]*fakeView
}

func newFixture(t *testing.T, sess *domain.Session) *fixture {
	t.Helper()
	ctx := context.Background()

	repo := memdb.NewSessionRepo()
	if sess != nil {
		require.NoError(t, repo.Save(ctx, *sess))
	}
	store := session.NewStore(repo)
	require.NoError(t, store.Restore(ctx))

	views := map[string]*fakeView{}
	screens := map[string]service.View{}
	for _, p := range []string{gate.PathAdmin, gate.PathAdminClients, gate.PathAdminLogs, gate.PathClient, gate.PathProfile} {
		v := &fakeView{name: p}
		views[p] = v
		screens[p] = v
	}

	bus := events.New()
	r := router.New(store, gate.Default(), screens, metrics.NewTestCounters().GateDecisions)
	require.NoError(t, r.Subscribe(bus, storeInvalidator{store: store}))

	return &fixture{store: store, bus: bus, router: r, views: views}
}

var (
	admin  = &domain.Session{Credential: "admin_0001", Role: domain.RoleAdmin}
	client = &domain.Session{Credential: "api_0001", Role: domain.RoleClient}
)

func TestNavigate_WaitsForRestore(t *testing.T) {
	store := session.NewStore(memdb.NewSessionRepo())
	r := router.New(store, gate.Default(), nil, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err := r.Navigate(ctx, gate.PathAdmin)
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	require.NoError(t, store.Restore(context.Background()))
	out, err := r.Navigate(context.Background(), gate.PathAdmin)
	require.NoError(t, err)
	assert.Equal(t, gate.RedirectLogin, out.Kind)
}

func TestNavigate_Decisions(t *testing.T) {
	tcs := []struct {
		name         string
		sess         *domain.Session
		path         string
		wantKind     gate.Kind
		wantScreen   string
		wantRedirect string
		wantReturnTo string
		wantActive   string
	}{
		{
			name: "unauthenticated deep link", path: gate.PathAdminLogs,
			wantKind: gate.RedirectLogin, wantScreen: gate.PathAdminLogs,
			wantRedirect: gate.PathLogin, wantReturnTo: gate.PathAdminLogs,
		},
		{
			name: "client on admin screen", sess: client, path: gate.PathAdminClients,
			wantKind: gate.RedirectForbidden, wantScreen: gate.PathAdminClients, wantRedirect: gate.PathNotAuthorized,
		},
		{
			name: "admin on logs", sess: admin, path: gate.PathAdminLogs,
			wantKind: gate.Allow, wantScreen: gate.PathAdminLogs, wantActive: gate.PathAdminLogs,
		},
		{
			name: "client root lands home", sess: client, path: "/",
			wantKind: gate.Allow, wantScreen: gate.PathClient, wantActive: gate.PathClient,
		},
		{
			name: "unknown path falls back to root", sess: admin, path: "/nowhere",
			wantKind: gate.Allow, wantScreen: gate.PathAdmin, wantActive: gate.PathAdmin,
		},
		{
			name: "login is public", path: gate.PathLogin,
			wantKind: gate.Allow, wantScreen: gate.PathLogin,
		},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture(t, tc.sess)

			out, err := f.router.Navigate(context.Background(), tc.path)
			require.NoError(t, err)

			assert.Equal(t, tc.wantKind, out.Kind)
			assert.Equal(t, tc.wantScreen, out.Screen)
			assert.Equal(t, tc.wantRedirect, out.Redirect)
			assert.Equal(t, tc.wantReturnTo, out.ReturnTo)

			for p, v := range f.views {
				assert.Equal(t, p == tc.wantActive, v.isActive(), p)
			}
			if tc.wantActive != "" {
				assert.Equal(t, tc.wantActive, out.View)
			}
		})
	}
}

func TestNavigate_SwitchDeactivatesPrevious(t *testing.T) {
	f := newFixture(t, admin)
	ctx := context.Background()

	_, err := f.router.Navigate(ctx, gate.PathAdminLogs)
	require.NoError(t, err)
	assert.True(t, f.views[gate.PathAdminLogs].isActive())

	out, err := f.router.Navigate(ctx, gate.PathClient)
	require.NoError(t, err)
	assert.Equal(t, gate.RedirectForbidden, out.Kind)
	assert.False(t, f.views[gate.PathAdminLogs].isActive())
	assert.False(t, f.views[gate.PathClient].isActive())
	assert.Equal(t, gate.PathNotAuthorized, f.router.Screen())

	_, err = f.router.Navigate(ctx, gate.PathProfile)
	require.NoError(t, err)
	assert.True(t, f.views[gate.PathProfile].isActive())
}

func TestSessionInvalidated_ReturnsToLogin(t *testing.T) {
	f := newFixture(t, client)

	_, err := f.router.Navigate(context.Background(), gate.PathClient)
	require.NoError(t, err)

	f.bus.PublishSessionInvalidated(events.SessionInvalidated{Epoch: f.store.Epoch(), Reason: "usage_stats rejected", Status: 401})
	assert.False(t, f.store.IsAuthenticated())

	f.bus.Wait()
	assert.Equal(t, gate.PathLogin, f.router.Screen())
	assert.False(t, f.views[gate.PathClient].isActive())
}

func TestSessionInvalidated_DuringActivation(t *testing.T) {
	f := newFixture(t, admin)
	f.views[gate.PathAdmin].onActivate = func() {
		f.bus.PublishSessionInvalidated(events.SessionInvalidated{Epoch: f.store.Epoch(), Reason: "list_logs rejected", Status: 403})
	}

	done := make(chan router.Outcome, 1)
	go func() {
		out, err := f.router.Navigate(context.Background(), gate.PathAdmin)
		assert.NoError(t, err)
		done <- out
	}()

	select {
	case out := <-done:
		assert.Equal(t, gate.RedirectLogin, out.Kind)
		assert.Equal(t, gate.PathLogin, out.Redirect)
	case <-time.After(time.Second):
		t.Fatal("navigation deadlocked on invalidation")
	}

	f.bus.Wait()
	assert.False(t, f.views[gate.PathAdmin].isActive())
	assert.Equal(t, gate.PathLogin, f.router.Screen())
}

func TestAuthorize(t *testing.T) {
	f := newFixture(t, client)
	ctx := context.Background()

	d, err := f.router.Authorize(ctx, []domain.Role{domain.RoleAdmin})
	require.NoError(t, err)
	assert.Equal(t, gate.RedirectForbidden, d.Kind)

	d, err = f.router.Authorize(ctx, []domain.Role{domain.RoleClient})
	require.NoError(t, err)
	assert.True(t, d.Allowed())
}

func TestAuthorize_WaitsForRestore(t *testing.T) {
	ctx := context.Background()
	repo := memdb.NewSessionRepo()
	require.NoError(t, repo.Save(ctx, *admin))
	store := session.NewStore(repo)
	r := router.New(store, gate.Default(), nil, nil)

	done := make(chan gate.Decision, 1)
	go func() {
		d, err := r.Authorize(ctx, []domain.Role{domain.RoleAdmin})
		assert.NoError(t, err)
		done <- d
	}()

	select {
	case d := <-done:
		t.Fatalf("authorized before restore: %s", d.Kind)
	case <-time.After(20 * time.Millisecond):
	}

	require.NoError(t, store.Restore(ctx))

	select {
	case d := <-done:
		assert.True(t, d.Allowed())
	case <-time.After(time.Second):
		t.Fatal("authorize did not resume after restore")
	}
}

func TestAuthorize_ContextCancelled(t *testing.T) {
	store := session.NewStore(memdb.NewSessionRepo())
	r := router.New(store, gate.Default(), nil, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err := r.Authorize(ctx, []domain.Role{domain.RoleAdmin})
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestNavigate_CountsDecisions(t *testing.T) {
	ctrl := gomock.NewController(t)
	counter := countermocks.NewMockCounter(ctrl)
	gomock.InOrder(
		counter.EXPECT().Inc(gate.PathAdminLogs, "login"),
		counter.EXPECT().Inc(gate.PathLogin, "allow"),
	)

	store := session.NewStore(memdb.NewSessionRepo())
	require.NoError(t, store.Restore(context.Background()))
	r := router.New(store, gate.Default(), nil, counter)

	_, err := r.Navigate(context.Background(), gate.PathAdminLogs)
	require.NoError(t, err)
	_, err = r.Navigate(context.Background(), gate.PathLogin)
	require.NoError(t, err)
}
