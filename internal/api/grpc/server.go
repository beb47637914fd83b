package grpcapi

import (
	"context"
	"errors"
	"fmt"
	"net"
	"time"

	grpc_prometheus "github.com/grpc-ecosystem/go-grpc-prometheus"
	"github.com/prometheus/client_golang/prometheus"
	"google.golang.org/grpc"

	"telemetry-monitor/internal/logging"
	"telemetry-monitor/pkg/api"
)

const defaultShutdownTimeout = 10 * time.Second

// Options describes the gRPC server runtime parameters.
type Options struct {
	// Address is the listen address, for example ":50051".
	Address string
	// ShutdownTimeout bounds graceful termination of active streams.
	ShutdownTimeout time.Duration
	// Registerer allows metrics registration in a custom Prometheus registry.
	// When unset, prometheus.DefaultRegisterer is used.
	Registerer prometheus.Registerer
}

// Server encapsulates the ingress gRPC server and manages its lifecycle.
type Server struct {
	address         string
	logger          *logging.Logger
	grpcServer      *grpc.Server
	listener        net.Listener
	shutdownTimeout time.Duration
}

// NewServer creates a gRPC server with logging and metrics interceptors
// wired in, listening on the configured address.
func NewServer(logger *logging.Logger, service api.TelemetryIngressServer, opts Options) (*Server, error) {
	if service == nil {
		return nil, errors.New("ingress service is required")
	}

	address := opts.Address
	if address == "" {
		return nil, errors.New("address is required")
	}

	listener, err := net.Listen("tcp", address)
	if err != nil {
		return nil, fmt.Errorf("listen %s: %w", address, err)
	}

	shutdownTimeout := opts.ShutdownTimeout
	if shutdownTimeout <= 0 {
		shutdownTimeout = defaultShutdownTimeout
	}

	serverMetrics := grpc_prometheus.NewServerMetrics()
	registerer := opts.Registerer
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}
	if err := registerer.Register(serverMetrics); err != nil {
		alreadyRegistered := prometheus.AlreadyRegisteredError{}
		if errors.As(err, &alreadyRegistered) {
			if existing, ok := alreadyRegistered.ExistingCollector.(*grpc_prometheus.ServerMetrics); ok {
				serverMetrics = existing
			} else {
				listener.Close()
				return nil, fmt.Errorf("register metrics: %w", err)
			}
		} else {
			listener.Close()
			return nil, fmt.Errorf("register metrics: %w", err)
		}
	}

	server := grpc.NewServer(
		grpc.ChainStreamInterceptor(
			loggingStreamInterceptor(logger),
			serverMetrics.StreamServerInterceptor(),
		),
	)

	api.RegisterTelemetryIngressServer(server, service)
	serverMetrics.InitializeMetrics(server)

	return &Server{
		address:         address,
		logger:          logger.WithComponent("grpc"),
		grpcServer:      server,
		listener:        listener,
		shutdownTimeout: shutdownTimeout,
	}, nil
}

// Serve runs the gRPC server until the context ends, then stops it gracefully.
func (s *Server) Serve(ctx context.Context) error {
	if s == nil {
		return errors.New("server is not initialized")
	}
	defer s.listener.Close()

	errCh := make(chan error, 1)
	go func() {
		errCh <- s.grpcServer.Serve(s.listener)
	}()

	s.logger.Info("gRPC ingress started", "address", s.listener.Addr().String())

	select {
	case <-ctx.Done():
		s.logger.Info("gRPC ingress shutdown initiated")
		shutdownErr := s.shutdown()
		serveErr := <-errCh
		if errors.Is(serveErr, grpc.ErrServerStopped) {
			serveErr = nil
		}
		if serveErr != nil && shutdownErr == nil {
			shutdownErr = serveErr
		}
		return shutdownErr
	case err := <-errCh:
		if errors.Is(err, grpc.ErrServerStopped) {
			return nil
		}
		return err
	}
}

// Addr returns the bound listen address.
func (s *Server) Addr() net.Addr {
	return s.listener.Addr()
}

func (s *Server) shutdown() error {
	done := make(chan struct{})
	go func() {
		s.grpcServer.GracefulStop()
		close(done)
	}()

	select {
	case <-done:
		s.logger.Info("gRPC ingress stopped gracefully")
		return nil
	case <-time.After(s.shutdownTimeout):
		s.logger.Warn("gRPC ingress graceful shutdown timed out, forcing stop", "timeout", s.shutdownTimeout.String())
		s.grpcServer.Stop()
		return fmt.Errorf("graceful shutdown exceeded %s", s.shutdownTimeout)
	}
}

func loggingStreamInterceptor(logger *logging.Logger) grpc.StreamServerInterceptor {
	return func(srv any, ss grpc.ServerStream, info *grpc.StreamServerInfo, handler grpc.StreamHandler) error {
		start := time.Now()

		err := handler(srv, ss)

		fields := []any{"method", info.FullMethod, "duration", time.Since(start)}
		if err != nil {
			logger.Error("gRPC stream completed", logging.AttachError(err, fields...)...)
		} else {
			logger.Info("gRPC stream completed", fields...)
		}

		return err
	}
}
