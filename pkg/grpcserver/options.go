package grpcserver

import (
	"net"
	"time"
)

type Option func(*Server)

func WithPort(port string) Option {
	return func(s *Server) {
		s.addr = net.JoinHostPort("", port)
	}
}

// WithAddr sets the full listen address, e.g. "127.0.0.1:0".
func WithAddr(addr string) Option {
	return func(s *Server) {
		s.addr = addr
	}
}

func WithShutdownTimeout(d time.Duration) Option {
	return func(s *Server) {
		s.shutdownTimeout = d
	}
}
