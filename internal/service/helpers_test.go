package service_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/Lead-Coder/api-rate-limit/internal/domain"
	"github.com/Lead-Coder/api-rate-limit/internal/repo/memdb"
	"github.com/Lead-Coder/api-rate-limit/internal/session"
	"github.com/stretchr/testify/require"
)

type auditRecord struct {
	event  string
	sess   domain.Session
	reason string
}

type fakeAuditor struct {
	mu      sync.Mutex
	records []auditRecord
}

func (f *fakeAuditor) Record(_ context.Context, event string, sess domain.Session, reason string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.records = append(f.records, auditRecord{event: event, sess: sess, reason: reason})
	return nil
}

func (f *fakeAuditor) events() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, 0, len(f.records))
	for _, r := range f.records {
		out = append(out, r.event)
	}
	return out
}

type failingAuditor struct{}

func (failingAuditor) Record(context.Context, string, domain.Session, string) error {
	return errors.New("broker unavailable")
}

func newStore(t *testing.T, sess *domain.Session) *session.Store {
	t.Helper()
	s := session.NewStore(memdb.NewSessionRepo())
	if sess != nil {
		require.NoError(t, s.Login(context.Background(), sess.Credential, sess.Role))
	}
	return s
}

var (
	adminSession  = &domain.Session{Credential: "admin_0001", Role: domain.RoleAdmin}
	clientSession = &domain.Session{Credential: "api_0001", Role: domain.RoleClient}
)
