package metrics

import "github.com/prometheus/client_golang/prometheus"

type Counter interface {
	Inc(labels ...string)
}

type Counters struct {
	// screen, decision
	GateDecisions Counter
	// operation, outcome
	GatewayRequests Counter
	// view, outcome
	PollTicks Counter
	// event
	SessionEvents Counter
}

type PrometheusCounter struct {
	counter *prometheus.CounterVec
}

func NewPrometheusCounter(reg prometheus.Registerer, name, help string, labels []string) *PrometheusCounter {
	c := &PrometheusCounter{
		counter: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "console",
			Name:      name,
			Help:      help,
		}, labels),
	}
	reg.MustRegister(c.counter)
	return c
}

func (p *PrometheusCounter) Inc(labels ...string) {
	p.counter.WithLabelValues(labels...).Inc()
}

func New() *Counters {
	return newCounters(prometheus.DefaultRegisterer)
}

// NewTestCounters registers on a private registry so tests can build as many as they like.
func NewTestCounters() *Counters {
	return newCounters(prometheus.NewRegistry())
}

func newCounters(reg prometheus.Registerer) *Counters {
	return &Counters{
		GateDecisions: NewPrometheusCounter(reg,
			"gate_decisions_total",
			"Navigation decisions by screen and outcome",
			[]string{"screen", "decision"},
		),
		GatewayRequests: NewPrometheusCounter(reg,
			"gateway_requests_total",
			"Backend gateway calls by operation and outcome",
			[]string{"operation", "outcome"},
		),
		PollTicks: NewPrometheusCounter(reg,
			"poll_ticks_total",
			"Usage poll ticks by view and outcome",
			[]string{"view", "outcome"},
		),
		SessionEvents: NewPrometheusCounter(reg,
			"session_events_total",
			"Session lifecycle events",
			[]string{"event"},
		),
	}
}
