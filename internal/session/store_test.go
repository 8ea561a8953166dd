package session_test

import (
	"context"
	"errors"
	"testing"

	"github.com/Lead-Coder/api-rate-limit/internal/domain"
	repomocks "github.com/Lead-Coder/api-rate-limit/internal/mocks/repository"
	"github.com/Lead-Coder/api-rate-limit/internal/repo/memdb"
	"github.com/Lead-Coder/api-rate-limit/internal/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestStore_LoginLogout(t *testing.T) {
	ctx := context.Background()
	r := memdb.NewSessionRepo()
	s := session.NewStore(r)

	assert.False(t, s.IsAuthenticated())
	before := s.Epoch()

	require.NoError(t, s.Login(ctx, "admin_x", domain.RoleAdmin))

	sess, ok := s.Current()
	assert.True(t, ok)
	assert.Equal(t, domain.Session{Credential: "admin_x", Role: domain.RoleAdmin}, sess)
	assert.NotEqual(t, before, s.Epoch())

	stored, ok, err := r.Load(ctx)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, sess, stored)

	afterLogin := s.Epoch()
	require.NoError(t, s.Logout(ctx))

	assert.False(t, s.IsAuthenticated())
	assert.NotEqual(t, afterLogin, s.Epoch())
	_, ok, err = r.Load(ctx)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestStore_LoginRejectsPartialSession(t *testing.T) {
	s := session.NewStore(memdb.NewSessionRepo())

	err := s.Login(context.Background(), "api_1", domain.Role("superuser"))
	assert.ErrorIs(t, err, domain.ErrInvalidCredential)

	err = s.Login(context.Background(), "", domain.RoleClient)
	assert.ErrorIs(t, err, domain.ErrInvalidCredential)

	assert.False(t, s.IsAuthenticated())
}

func TestStore_LoginPersistFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	r := repomocks.NewMockSession(ctrl)
	r.EXPECT().Save(ctx, gomock.Any()).Return(errors.New("disk full"))

	s := session.NewStore(r)

	assert.Error(t, s.Login(ctx, "api_1", domain.RoleClient))
	assert.False(t, s.IsAuthenticated())
}

func TestStore_LogoutClearsMemoryEvenIfStorageFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	r := repomocks.NewMockSession(ctrl)
	r.EXPECT().Save(ctx, gomock.Any()).Return(nil)
	r.EXPECT().Clear(ctx).Return(errors.New("io error"))

	s := session.NewStore(r)
	require.NoError(t, s.Login(ctx, "api_1", domain.RoleClient))

	assert.Error(t, s.Logout(ctx))
	assert.False(t, s.IsAuthenticated())
}

func TestStore_Restore(t *testing.T) {
	type mockBehavior func(r *repomocks.MockSession, ctx context.Context)

	ctx := context.Background()
	tcs := []struct {
		name         string
		mockBehavior mockBehavior
		wantAuth     bool
		wantRole     domain.Role
		wantErr      bool
	}{
		{
			name: "stored session",
			mockBehavior: func(r *repomocks.MockSession, ctx context.Context) {
				r.EXPECT().Load(ctx).Return(domain.Session{Credential: "api_1", Role: domain.RoleClient}, true, nil)
			},
			wantAuth: true,
			wantRole: domain.RoleClient,
		},
		{
			name: "nothing stored",
			mockBehavior: func(r *repomocks.MockSession, ctx context.Context) {
				r.EXPECT().Load(ctx).Return(domain.Session{}, false, nil)
			},
		},
		{
			name: "partial record is erased",
			mockBehavior: func(r *repomocks.MockSession, ctx context.Context) {
				r.EXPECT().Load(ctx).Return(domain.Session{Credential: "api_1"}, true, nil)
				r.EXPECT().Clear(ctx).Return(nil)
			},
		},
		{
			name: "storage error",
			mockBehavior: func(r *repomocks.MockSession, ctx context.Context) {
				r.EXPECT().Load(ctx).Return(domain.Session{}, false, errors.New("redis down"))
			},
			wantErr: true,
		},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			r := repomocks.NewMockSession(ctrl)
			tc.mockBehavior(r, ctx)
			s := session.NewStore(r)

			select {
			case <-s.Ready():
				t.Fatal("ready before restore")
			default:
			}

			err := s.Restore(ctx)
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}

			select {
			case <-s.Ready():
			default:
				t.Fatal("restore must signal ready")
			}

			sess, ok := s.Current()
			assert.Equal(t, tc.wantAuth, ok)
			assert.Equal(t, tc.wantRole, sess.Role)
		})
	}
}

func TestStore_ExpireIgnoresNewerSession(t *testing.T) {
	ctx := context.Background()
	r := memdb.NewSessionRepo()
	s := session.NewStore(r)

	require.NoError(t, s.Login(ctx, "api_old", domain.RoleClient))
	_, oldEpoch, ok := s.Snapshot()
	require.True(t, ok)

	require.NoError(t, s.Logout(ctx))
	require.NoError(t, s.Login(ctx, "admin_new", domain.RoleAdmin))

	_, expired, err := s.Expire(ctx, oldEpoch)
	require.NoError(t, err)
	assert.False(t, expired)

	sess, ok := s.Current()
	assert.True(t, ok)
	assert.Equal(t, "admin_new", sess.Credential)
	_, stored, err := r.Load(ctx)
	require.NoError(t, err)
	assert.True(t, stored)

	_, epoch, _ := s.Snapshot()
	gone, expired, err := s.Expire(ctx, epoch)
	require.NoError(t, err)
	assert.True(t, expired)
	assert.Equal(t, "admin_new", gone.Credential)
	assert.False(t, s.IsAuthenticated())
	_, stored, err = r.Load(ctx)
	require.NoError(t, err)
	assert.False(t, stored)
}
