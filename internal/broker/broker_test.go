package broker_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/Lead-Coder/api-rate-limit/internal/broker"
	"github.com/Lead-Coder/api-rate-limit/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type captureProducer struct {
	key   string
	value []byte
	err   error
}

func (c *captureProducer) SendMessage(_ context.Context, key string, value []byte) error {
	c.key, c.value = key, value
	return c.err
}

func (c *captureProducer) Close() error { return nil }

func TestAuditor_RecordMasksCredential(t *testing.T) {
	p := &captureProducer{}
	a := broker.NewAuditor(p)

	err := a.Record(context.Background(), broker.EventLogin,
		domain.Session{Credential: "admin_secret_key", Role: domain.RoleAdmin}, "")
	require.NoError(t, err)

	var ev broker.AuditEvent
	require.NoError(t, json.Unmarshal(p.value, &ev))
	assert.Equal(t, broker.EventLogin, p.key)
	assert.Equal(t, broker.EventLogin, ev.Event)
	assert.Equal(t, domain.RoleAdmin, ev.Role)
	assert.Equal(t, "admin_se••••••••", ev.Credential)
	assert.NotContains(t, string(p.value), "admin_secret_key")
}

func TestAuditor_DeliveryFailure(t *testing.T) {
	boom := errors.New("broker down")
	a := broker.NewAuditor(&captureProducer{err: boom})

	err := a.Record(context.Background(), broker.EventLogout, domain.Session{}, "")
	assert.ErrorIs(t, err, boom)
}

func TestAuditor_NilProducerIsNop(t *testing.T) {
	a := broker.NewAuditor(nil)
	assert.NoError(t, a.Record(context.Background(), broker.EventInvalidated, domain.Session{}, "401"))
	assert.NoError(t, a.Close())
}
