package broker

import (
	"context"
	"encoding/json"
	"time"

	"github.com/Lead-Coder/api-rate-limit/internal/domain"
	errorsUtils "github.com/Lead-Coder/api-rate-limit/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type Producer interface {
	SendMessage(ctx context.Context, key string, value []byte) error
	Close() error
}

const (
	EventLogin       = "login"
	EventLogout      = "logout"
	EventInvalidated = "invalidated"
)

// AuditEvent is a session lifecycle record. The credential is always masked.
type AuditEvent struct {
	Event      string      `json:"event"`
	Role       domain.Role `json:"role,omitempty"`
	Credential string      `json:"credential,omitempty"`
	Reason     string      `json:"reason,omitempty"`
	At         time.Time   `json:"at"`
}

type Auditor struct {
	producer Producer
}

func NewAuditor(p Producer) *Auditor {
	if p == nil {
		p = NopProducer{}
	}
	return &Auditor{producer: p}
}

// Record publishes one audit event. Delivery failures are logged and returned
// but callers treat them as best effort.
func (a *Auditor) Record(ctx context.Context, event string, sess domain.Session, reason string) error {
	ev := AuditEvent{
		Event:      event,
		Role:       sess.Role,
		Credential: sess.Masked(),
		Reason:     reason,
		At:         time.Now().UTC(),
	}
	value, err := json.Marshal(ev)
	if err != nil {
		return errorsUtils.WrapPathErr(err)
	}
	if err := a.producer.SendMessage(ctx, event, value); err != nil {
		log.WithField("event", event).Warnf("audit event not delivered: %v", err)
		return errorsUtils.WrapPathErr(err)
	}
	return nil
}

func (a *Auditor) Close() error {
	return a.producer.Close()
}

type NopProducer struct{}

func (NopProducer) SendMessage(context.Context, string, []byte) error { return nil }

func (NopProducer) Close() error { return nil }
