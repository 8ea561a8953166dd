package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/Lead-Coder/api-rate-limit/internal/domain"
	"github.com/Lead-Coder/api-rate-limit/internal/metrics"
	gatewaymocks "github.com/Lead-Coder/api-rate-limit/internal/mocks/gateway"
	"github.com/Lead-Coder/api-rate-limit/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestUsageView_PollsWhileActive(t *testing.T) {
	ctrl := gomock.NewController(t)
	gw := gatewaymocks.NewMockStats(ctrl)
	gw.EXPECT().UsageStats(gomock.Any()).
		Return(domain.UsageStats{RequestsUsed: 85, RateLimit: 100, RemainingQuota: 15}, nil).
		MinTimes(2)

	v := service.NewUsageView(newStore(t, clientSession), gw, 5*time.Millisecond, metrics.NewTestCounters().PollTicks)
	v.Activate(context.Background())

	require.Eventually(t, func() bool {
		return v.View().Status == service.StatusReady
	}, time.Second, 2*time.Millisecond)

	snap := v.View()
	assert.True(t, snap.Polling)
	assert.True(t, snap.NearLimit)
	assert.False(t, snap.AtLimit)
	assert.InDelta(t, 85.0, snap.Percent, 0.001)

	time.Sleep(30 * time.Millisecond)
	v.Deactivate()
	assert.False(t, v.View().Polling)
}

func TestUsageView_ResponseAfterLogoutDiscarded(t *testing.T) {
	ctrl := gomock.NewController(t)
	gw := gatewaymocks.NewMockStats(ctrl)
	store := newStore(t, clientSession)

	started := make(chan struct{})
	release := make(chan struct{})
	gw.EXPECT().UsageStats(gomock.Any()).DoAndReturn(func(context.Context) (domain.UsageStats, error) {
		close(started)
		<-release
		return domain.UsageStats{RequestsUsed: 1, RateLimit: 10}, nil
	})

	v := service.NewUsageView(store, gw, time.Hour, nil)
	v.Activate(context.Background())

	<-started
	require.NoError(t, store.Logout(context.Background()))
	close(release)

	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, service.StatusLoading, v.View().Status)
	assert.Zero(t, v.View().RequestsUsed)

	v.Deactivate()
}

func TestUsageView_DeactivateStopsInFlight(t *testing.T) {
	ctrl := gomock.NewController(t)
	gw := gatewaymocks.NewMockStats(ctrl)

	started := make(chan struct{})
	release := make(chan struct{})
	gw.EXPECT().UsageStats(gomock.Any()).DoAndReturn(func(context.Context) (domain.UsageStats, error) {
		close(started)
		<-release
		return domain.UsageStats{RequestsUsed: 5, RateLimit: 10}, nil
	})

	v := service.NewUsageView(newStore(t, clientSession), gw, time.Hour, nil)
	v.Activate(context.Background())

	<-started
	v.Deactivate()
	close(release)

	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, service.StatusLoading, v.View().Status)
}

func TestUsageView_FailureKeepsLastStats(t *testing.T) {
	ctrl := gomock.NewController(t)
	gw := gatewaymocks.NewMockStats(ctrl)
	gomock.InOrder(
		gw.EXPECT().UsageStats(gomock.Any()).Return(domain.UsageStats{RequestsUsed: 100, RateLimit: 100}, nil),
		gw.EXPECT().UsageStats(gomock.Any()).Return(domain.UsageStats{}, errBackend).AnyTimes(),
	)

	v := service.NewUsageView(newStore(t, clientSession), gw, 5*time.Millisecond, nil)
	v.Activate(context.Background())

	require.Eventually(t, func() bool {
		return v.View().Stale
	}, time.Second, 2*time.Millisecond)
	v.Deactivate()

	snap := v.View()
	assert.Equal(t, service.StatusReady, snap.Status)
	assert.True(t, snap.AtLimit)
}

func TestProfileView_MasksCredential(t *testing.T) {
	ctrl := gomock.NewController(t)
	gw := gatewaymocks.NewMockStats(ctrl)
	gw.EXPECT().UsageStats(gomock.Any()).Return(domain.UsageStats{RequestsUsed: 3, RateLimit: 10}, nil).AnyTimes()

	sess := &domain.Session{Credential: "api_0123456789", Role: domain.RoleClient}
	v := service.NewProfileView(newStore(t, sess), gw, time.Hour, nil)
	v.Activate(context.Background())
	defer v.Deactivate()

	require.Eventually(t, func() bool {
		return v.View().Status == service.StatusReady
	}, time.Second, 2*time.Millisecond)

	snap := v.View()
	assert.Equal(t, "api_012•••••••", snap.Credential)
	assert.Equal(t, domain.RoleClient, snap.Role)
	assert.Equal(t, 3, snap.RequestsUsed)
}
