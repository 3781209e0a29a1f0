package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"mylogin/adapters"
	"mylogin/api"
	"mylogin/handlers"
	"mylogin/interfaces"
	"mylogin/service"

	"github.com/go-kit/log/level"
	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
)

func main() {
	bootLogger, _ := newLogger(os.Stderr, "info")

	level.Info(bootLogger).Log("msg", "Starting MyLogin service")

	config, err := LoadConfig()
	if err != nil {
		level.Error(bootLogger).Log("msg", "Failed to load configuration", "err", err)
		os.Exit(1)
	}

	logger, err := newLogger(os.Stderr, config.LogLevel)
	if err != nil {
		level.Error(bootLogger).Log("msg", "Failed to create logger", "err", err)
		os.Exit(1)
	}

	level.Info(logger).Log(
		"msg", "Configuration loaded",
		"service_port_http", config.HTTPPort,
		"service_port_grpc", config.GRPCPort,
		"store_uri", config.Store.URI,
		"store_database", config.Store.Database,
		"store_collection", config.Store.Collection,
		"store_timeout", config.Store.Timeout,
		"static_dir", config.Static.Dir,
		"log_level", config.LogLevel,
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var store interfaces.CredentialStore
	{
		store, err = adapters.NewCredentialStore(ctx, config.Store.StoreConfig)
		if err != nil {
			level.Error(logger).Log("msg", "Failed to create credential store", "err", err)
			os.Exit(1)
		}
		defer store.Close()
	}

	var hasher interfaces.PasswordHasher
	{
		hasher, err = service.NewBcryptHasher(bcrypt.DefaultCost)
		if err != nil {
			level.Error(logger).Log("msg", "Failed to create password hasher", "err", err)
			os.Exit(1)
		}
	}

	var validator echo.MiddlewareFunc
	{
		doc, err := api.LoadSpec(ctx)
		if err != nil {
			level.Error(logger).Log("msg", "Failed to load OpenAPI spec", "err", err)
			os.Exit(1)
		}
		validator, err = service.OpenAPIRequestValidator(doc)
		if err != nil {
			level.Error(logger).Log("msg", "Failed to create request validator", "err", err)
			os.Exit(1)
		}
	}

	var e *echo.Echo
	{
		static := os.DirFS(config.Static.Dir)
		if !handlers.StaticIndexExists(static, config.Static.Index) {
			level.Warn(logger).Log("msg", "Static index not found", "dir", config.Static.Dir, "index", config.Static.Index)
		}
		httpServer := handlers.NewHTTPServer(store, hasher, config.Store.Timeout, logger)
		e = handlers.NewEcho(httpServer, validator, static, config.Static.Index, logger)
	}

	var grpcServer *grpc.Server
	if config.GRPCPort > 0 {
		healthServer := health.NewServer()
		healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_NOT_SERVING)
		grpcServer = newGRPCServer(healthServer)

		lis, err := net.Listen("tcp", fmt.Sprintf(":%d", config.GRPCPort))
		if err != nil {
			level.Error(logger).Log("msg", "Failed to listen", "err", err)
			os.Exit(1)
		}

		checker := service.NewHealthChecker(store, healthServer, config.Health.Interval, config.Store.Timeout, logger)
		go checker.Run(ctx)

		go func() {
			level.Info(logger).Log("msg", "Starting gRPC health server", "addr", lis.Addr())
			if err := grpcServer.Serve(lis); err != nil {
				level.Error(logger).Log("msg", "gRPC server error", "err", err)
			}
		}()
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	go func() {
		addr := fmt.Sprintf(":%d", config.HTTPPort)
		level.Info(logger).Log("msg", "Starting HTTP server", "addr", addr)
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			level.Error(logger).Log("msg", "HTTP server error", "err", err)
			quit <- syscall.SIGTERM
		}
	}()

	<-quit
	level.Info(logger).Log("msg", "Shutting down server...")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		level.Error(logger).Log("msg", "Error during server shutdown", "err", err)
	}
	if grpcServer != nil {
		grpcServer.GracefulStop()
	}

	level.Info(logger).Log("msg", "Server stopped")
}

// newGRPCServer creates the gRPC server exposing the health service and reflection.
func newGRPCServer(healthServer grpc_health_v1.HealthServer) *grpc.Server {
	grpcServer := grpc.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	reflection.Register(grpcServer)
	return grpcServer
}
