// Package session owns the console's single operator session.
package session

import (
	"context"
	"fmt"
	"sync"

	"github.com/Lead-Coder/api-rate-limit/internal/domain"
	"github.com/Lead-Coder/api-rate-limit/internal/repo"
	errorsUtils "github.com/Lead-Coder/api-rate-limit/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// Store is the only writer of the session. Memory state is authoritative;
// the repo is touched only at Login, Logout and Restore.
type Store struct {
	repo repo.Session

	mu      sync.RWMutex
	current domain.Session
	epoch   uint64

	ready     chan struct{}
	readyOnce sync.Once
}

func NewStore(r repo.Session) *Store {
	return &Store{
		repo:  r,
		ready: make(chan struct{}),
	}
}

// Login persists the pair first so a failed write never leaves a session
// that would vanish on restart.
func (s *Store) Login(ctx context.Context, credential string, role domain.Role) error {
	sess := domain.Session{Credential: credential, Role: role}
	if !sess.Valid() {
		return fmt.Errorf("%w: incomplete session", domain.ErrInvalidCredential)
	}

	if err := s.repo.Save(ctx, sess); err != nil {
		return errorsUtils.WrapPathErr(err)
	}

	s.mu.Lock()
	s.current = sess
	s.epoch++
	s.mu.Unlock()

	log.WithField("role", role).Info("Session established")
	return nil
}

// Logout drops the in-memory session before touching storage so that no
// caller observes an authenticated state after Logout starts.
func (s *Store) Logout(ctx context.Context) error {
	s.mu.Lock()
	wasAuthenticated := s.current.Valid()
	s.current = domain.Session{}
	s.epoch++
	s.mu.Unlock()

	if wasAuthenticated {
		log.Info("Session cleared")
	}

	return errorsUtils.WrapPathErr(s.repo.Clear(ctx))
}

// Expire ends the session only if it is still the one issued at epoch. A
// rejection that belongs to an earlier login must not end a newer one.
func (s *Store) Expire(ctx context.Context, epoch uint64) (domain.Session, bool, error) {
	s.mu.Lock()
	if s.epoch != epoch || !s.current.Valid() {
		s.mu.Unlock()
		return domain.Session{}, false, nil
	}
	sess := s.current
	s.current = domain.Session{}
	s.epoch++
	s.mu.Unlock()

	log.Info("Session expired")
	return sess, true, errorsUtils.WrapPathErr(s.repo.Clear(ctx))
}

// Restore rehydrates memory from the durable record. It signals Ready even on
// failure so navigation is never blocked forever.
func (s *Store) Restore(ctx context.Context) error {
	defer s.markReady()

	sess, ok, err := s.repo.Load(ctx)
	if err != nil {
		return errorsUtils.WrapPathErr(err)
	}
	if !ok {
		log.Debug("No stored session")
		return nil
	}
	if !sess.Valid() {
		log.Warn("Discarding partial stored session")
		return errorsUtils.WrapPathErr(s.repo.Clear(ctx))
	}

	s.mu.Lock()
	s.current = sess
	s.epoch++
	s.mu.Unlock()

	log.WithField("role", sess.Role).Info("Session restored")
	return nil
}

func (s *Store) markReady() {
	s.readyOnce.Do(func() { close(s.ready) })
}

// Ready is closed once Restore has finished.
func (s *Store) Ready() <-chan struct{} {
	return s.ready
}

func (s *Store) Current() (domain.Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current, s.current.Valid()
}

// Snapshot returns the session together with the epoch it belongs to.
func (s *Store) Snapshot() (domain.Session, uint64, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current, s.epoch, s.current.Valid()
}

func (s *Store) IsAuthenticated() bool {
	_, ok := s.Current()
	return ok
}

// Epoch changes on every login and logout. A response is only applied if the
// epoch captured before the request still matches.
func (s *Store) Epoch() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.epoch
}

func (s *Store) Close() error {
	return s.repo.Close()
}
