package service_test

import (
	"context"
	"testing"

	"github.com/Lead-Coder/api-rate-limit/internal/domain"
	gatewaymocks "github.com/Lead-Coder/api-rate-limit/internal/mocks/gateway"
	"github.com/Lead-Coder/api-rate-limit/internal/service"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestSummarize(t *testing.T) {
	logs := []domain.LogEntry{
		{StatusCode: 200, ResponseTimeMillis: 10},
		{StatusCode: 429, ResponseTimeMillis: 2},
		{StatusCode: 429, ResponseTimeMillis: 3},
		{StatusCode: 500, ResponseTimeMillis: 25},
	}

	got := service.Summarize(sampleClients, logs)

	assert.Equal(t, 4, got.TotalRequests)
	assert.Equal(t, 2, got.BlockedRequests)
	assert.Equal(t, 2, got.ActiveClients)
	assert.Equal(t, 3, got.TotalClients)
	assert.InDelta(t, 10.0, got.AvgResponseTime, 0.001)
	assert.Equal(t, []service.StatusCount{
		{StatusCode: 200, Count: 1},
		{StatusCode: 429, Count: 2},
		{StatusCode: 500, Count: 1},
	}, got.StatusCodes)
}

func TestSummarize_Empty(t *testing.T) {
	got := service.Summarize(nil, nil)
	assert.Zero(t, got.TotalRequests)
	assert.Zero(t, got.AvgResponseTime)
	assert.Empty(t, got.StatusCodes)
}

func TestAdminDashboardView_Refresh(t *testing.T) {
	type mockBehavior func(c *gatewaymocks.MockClients, l *gatewaymocks.MockLogs)

	testCases := []struct {
		name         string
		mockBehavior mockBehavior
		wantStatus   service.Status
		wantErr      error
	}{
		{
			name: "both loaded",
			mockBehavior: func(c *gatewaymocks.MockClients, l *gatewaymocks.MockLogs) {
				c.EXPECT().ListClients(gomock.Any()).Return(sampleClients, nil)
				l.EXPECT().ListLogs(gomock.Any()).Return(makeLogs(6), nil)
			},
			wantStatus: service.StatusReady,
		},
		{
			name: "logs failing fails the refresh",
			mockBehavior: func(c *gatewaymocks.MockClients, l *gatewaymocks.MockLogs) {
				c.EXPECT().ListClients(gomock.Any()).Return(sampleClients, nil).AnyTimes()
				l.EXPECT().ListLogs(gomock.Any()).Return(nil, errBackend)
			},
			wantStatus: service.StatusError,
			wantErr:    domain.ErrTransientFetch,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			c := gatewaymocks.NewMockClients(ctrl)
			l := gatewaymocks.NewMockLogs(ctrl)
			tc.mockBehavior(c, l)

			v := service.NewAdminDashboardView(newStore(t, adminSession), c, l)
			err := v.Refresh(context.Background())

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tc.wantStatus, v.View().Status)
		})
	}
}
