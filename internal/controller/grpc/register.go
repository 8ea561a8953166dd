package grpccontroller

import (
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
)

const ServiceName = "console"

// Health reports NOT_SERVING until the session store has been restored.
type Health struct {
	server *health.Server
}

func NewHealth() *Health {
	h := &Health{server: health.NewServer()}
	h.server.SetServingStatus(ServiceName, healthpb.HealthCheckResponse_NOT_SERVING)
	h.server.SetServingStatus("", healthpb.HealthCheckResponse_NOT_SERVING)
	return h
}

func (h *Health) MarkServing() {
	h.server.SetServingStatus(ServiceName, healthpb.HealthCheckResponse_SERVING)
	h.server.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
}

// Shutdown flips every service to NOT_SERVING and ignores later updates.
func (h *Health) Shutdown() {
	h.server.Shutdown()
}

func RegisterServices(h *Health) func(s *grpc.Server) {
	return func(s *grpc.Server) {
		healthpb.RegisterHealthServer(s, h.server)
		reflection.Register(s)
	}
}
