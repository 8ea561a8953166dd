package memdb

import (
	"context"
	"sync"

	"github.com/Lead-Coder/api-rate-limit/internal/domain"
)

// SessionRepo keeps the record in process memory; it does not survive restarts.
type SessionRepo struct {
	mu     sync.Mutex
	record *domain.Session
}

func NewSessionRepo() *SessionRepo {
	return &SessionRepo{}
}

func (r *SessionRepo) Load(_ context.Context) (domain.Session, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.record == nil {
		return domain.Session{}, false, nil
	}
	return *r.record, true, nil
}

func (r *SessionRepo) Save(_ context.Context, s domain.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.record = &s
	return nil
}

func (r *SessionRepo) Clear(_ context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.record = nil
	return nil
}

func (r *SessionRepo) Close() error {
	return nil
}
