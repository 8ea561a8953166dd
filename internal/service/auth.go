package service

import (
	"context"
	"errors"
	"strings"

	"github.com/Lead-Coder/api-rate-limit/internal/broker"
	logginghelper "github.com/Lead-Coder/api-rate-limit/internal/controller/common/logging"
	"github.com/Lead-Coder/api-rate-limit/internal/domain"
	"github.com/Lead-Coder/api-rate-limit/internal/events"
	"github.com/Lead-Coder/api-rate-limit/internal/gate"
	"github.com/Lead-Coder/api-rate-limit/internal/gateway"
	"github.com/Lead-Coder/api-rate-limit/internal/metrics"
	errorsUtils "github.com/Lead-Coder/api-rate-limit/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type LoginResult struct {
	Role        domain.Role `json:"role"`
	Credential  string      `json:"credential"`
	DisplayName string      `json:"displayName,omitempty"`
	RateLimit   int         `json:"rateLimit,omitempty"`
	Redirect    string      `json:"redirect"`
}

type AuthService struct {
	sessions SessionManager
	auth     gateway.Auth
	gate     *gate.Gate
	auditor  Auditor
	counters *metrics.Counters
}

func NewAuthService(s SessionManager, a gateway.Auth, g *gate.Gate, au Auditor, cnt *metrics.Counters) *AuthService {
	if au == nil {
		au = broker.NewAuditor(nil)
	}
	return &AuthService{
		sessions: s,
		auth:     a,
		gate:     g,
		auditor:  au,
		counters: cnt,
	}
}

// Login validates the credential with the backend and, on success, establishes
// the session with the role the backend reported. returnTo is honoured when the
// new session may see it.
func (s *AuthService) Login(ctx context.Context, credential, returnTo string) (LoginResult, error) {
	credential = strings.TrimSpace(credential)

	v, err := s.auth.Validate(ctx, credential)
	if err != nil {
		logginghelper.LogLoginRejected(credential, err)
		s.count("login_rejected")
		if errors.Is(err, domain.ErrInvalidCredential) {
			return LoginResult{}, err
		}
		return LoginResult{}, errorsUtils.WrapPathErr(err)
	}

	if err := s.sessions.Login(ctx, credential, v.Role); err != nil {
		return LoginResult{}, errorsUtils.WrapPathErr(err)
	}

	sess := domain.Session{Credential: credential, Role: v.Role}
	logginghelper.LogLogin(sess)
	s.count("login")
	s.audit(ctx, broker.EventLogin, sess, "")

	return LoginResult{
		Role:        v.Role,
		Credential:  sess.Masked(),
		DisplayName: v.DisplayName,
		RateLimit:   v.RateLimit,
		Redirect:    s.gate.AfterLogin(sess, returnTo),
	}, nil
}

func (s *AuthService) Logout(ctx context.Context) error {
	sess, _ := s.sessions.Current()
	if err := s.sessions.Logout(ctx); err != nil {
		return errorsUtils.WrapPathErr(err)
	}
	s.count("logout")
	s.audit(ctx, broker.EventLogout, sess, "")
	return nil
}

// Invalidate ends the session after the backend rejected it, unless the
// rejection belongs to an earlier session. It runs inside the publisher's call
// stack, so it must not wait on anything a view holds.
func (s *AuthService) Invalidate(ctx context.Context, ev events.SessionInvalidated) {
	sess, ok, err := s.sessions.Expire(ctx, ev.Epoch)
	if err != nil {
		log.WithField("reason", ev.Reason).Errorf("failed to clear invalidated session: %v", err)
	}
	if !ok {
		log.WithFields(log.Fields{"reason": ev.Reason, "epoch": ev.Epoch}).Debug("ignoring invalidation of a previous session")
		return
	}
	s.count("invalidated")
	s.audit(ctx, broker.EventInvalidated, sess, ev.Reason)
}

func (s *AuthService) Session() (domain.Session, bool) {
	return s.sessions.Current()
}

func (s *AuthService) audit(ctx context.Context, event string, sess domain.Session, reason string) {
	if err := s.auditor.Record(ctx, event, sess, reason); err != nil {
		log.WithField("event", event).Debugf("audit record dropped: %v", err)
	}
}

func (s *AuthService) count(event string) {
	if s.counters != nil {
		s.counters.SessionEvents.Inc(event)
	}
}
