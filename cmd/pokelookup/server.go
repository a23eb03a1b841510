package main

import (
	"context"
	"log/slog"
	"net"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	grpc_logging "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"
	grpc_recovery "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/recovery"

	"github.com/KirkDiggler/pokelookup/internal/errors"
	"github.com/KirkDiggler/pokelookup/internal/handlers/lookup/v1alpha1"
	"github.com/KirkDiggler/pokelookup/internal/pkg/idgen"
)

const shutdownTimeout = 30 * time.Second

var listenAddr string

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the gRPC lookup server",
	Long:  `Start a gRPC server that answers every lookup remotely.`,
	Args:  exactArgs(0),
	RunE:  runServer,
}

func init() {
	serverCmd.Flags().StringVar(&listenAddr, "address", "", "listen address (default: server.address from config)")
}

func runServer(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	addr := cfg.Server.Address
	if listenAddr != "" {
		addr = listenAddr
	}

	lis, err := net.Listen("tcp", addr)
	if err != nil {
		return errors.WrapWithCodef(err, errors.CodeUnavailable, "failed to listen on %s", addr)
	}

	service, cleanup, err := newService(ctx, cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	handler, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{
		LookupService: service,
		IDGenerator:   idgen.NewUUID("req"),
	})
	if err != nil {
		return errors.Wrap(err, "failed to create lookup handler")
	}

	srv := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			grpc_logging.UnaryServerInterceptor(grpc_logging.LoggerFunc(logFunc)),
			grpc_recovery.UnaryServerInterceptor(),
		),
	)

	v1alpha1.RegisterLookupServiceServer(srv, handler)

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(srv, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus(v1alpha1.ServiceName, grpc_health_v1.HealthCheckResponse_SERVING)

	reflection.Register(srv)

	errChan := make(chan error, 1)
	go func() {
		slog.Info("gRPC server starting", "address", lis.Addr().String())
		if err := srv.Serve(lis); err != nil {
			errChan <- errors.WrapWithCode(err, errors.CodeUnavailable, "failed to serve")
		}
	}()

	select {
	case <-ctx.Done():
		slog.Info("shutting down gRPC server")
		healthServer.Shutdown()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		stopped := make(chan struct{})
		go func() {
			srv.GracefulStop()
			close(stopped)
		}()

		select {
		case <-shutdownCtx.Done():
			slog.Warn("graceful shutdown timeout exceeded, forcing stop")
			srv.Stop()
		case <-stopped:
			slog.Info("server stopped gracefully")
		}

		return nil
	case err := <-errChan:
		return err
	}
}

// logFunc bridges the interceptor logger to slog
func logFunc(ctx context.Context, level grpc_logging.Level, msg string, fields ...any) {
	slog.Log(ctx, slog.Level(level), msg, fields...)
}
