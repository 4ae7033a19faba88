package grpc

import (
	"context"
	"fmt"
	"log/slog"
	"net"

	"github.com/couchcryptid/weather-observation-service/internal/adapter/grpc/weatherpb"
	"github.com/couchcryptid/weather-observation-service/internal/config"
	"github.com/couchcryptid/weather-observation-service/internal/observability"
	"google.golang.org/grpc"
)

// Server serves weather.WeatherService.
type Server struct {
	grpcServer *grpc.Server
	addr       string
	logger     *slog.Logger
}

// NewServer creates a gRPC server with a bounded worker pool and the
// logging and auth interceptors, in that order.
func NewServer(cfg *config.Config, handler weatherpb.WeatherServiceServer, logger *slog.Logger, metrics *observability.Metrics) *Server {
	gs := grpc.NewServer(
		grpc.NumStreamWorkers(uint32(cfg.GRPCWorkers)),
		grpc.MaxConcurrentStreams(uint32(cfg.GRPCMaxConcurrentStreams)),
		grpc.ChainUnaryInterceptor(
			LoggingInterceptor(logger, metrics),
			AuthInterceptor(cfg.GRPCAPIKey),
		),
	)
	weatherpb.RegisterWeatherServiceServer(gs, handler)

	return &Server{grpcServer: gs, addr: cfg.GRPCAddr, logger: logger}
}

// Start listens on the configured address and blocks serving requests.
func (s *Server) Start() error {
	lis, err := net.Listen("tcp", s.addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", s.addr, err)
	}
	return s.Serve(lis)
}

// Serve blocks serving requests on lis.
func (s *Server) Serve(lis net.Listener) error {
	s.logger.Info("grpc server starting", "addr", lis.Addr().String())
	return s.grpcServer.Serve(lis)
}

// Shutdown stops accepting calls and waits for in-flight ones until ctx
// expires, then stops hard.
func (s *Server) Shutdown(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		s.grpcServer.GracefulStop()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		s.grpcServer.Stop()
		return ctx.Err()
	}
}
