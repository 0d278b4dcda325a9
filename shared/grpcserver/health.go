// Package grpcserver runs the gRPC side of a service. Services expose the
// standard health protocol only.
package grpcserver

import (
	"context"
	"log"
	"net"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
)

// Server is a gRPC server with the health service registered.
type Server struct {
	grpc   *grpc.Server
	health *health.Server
}

// New registers health and reflection and marks the given service names
// (plus the "" overall entry) as SERVING.
func New(services ...string) *Server {
	s := grpc.NewServer()
	hs := health.NewServer()
	healthpb.RegisterHealthServer(s, hs)
	reflection.Register(s)

	hs.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	for _, name := range services {
		hs.SetServingStatus(name, healthpb.HealthCheckResponse_SERVING)
	}
	return &Server{grpc: s, health: hs}
}

// Health exposes the health server so callers can flip statuses.
func (s *Server) Health() *health.Server {
	return s.health
}

// Serve listens on addr until ctx is done, then drains.
func (s *Server) Serve(ctx context.Context, addr string) error {
	lis, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}

	go func() {
		<-ctx.Done()
		s.health.Shutdown()
		s.grpc.GracefulStop()
	}()

	log.Printf("gRPC health server running on %s", addr)
	return s.grpc.Serve(lis)
}
