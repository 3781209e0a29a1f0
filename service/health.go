package service

import (
	"context"
	"time"

	"mylogin/helpers"
	"mylogin/interfaces"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"google.golang.org/grpc/health/grpc_health_v1"
)

// HealthStatusSetter is satisfied by *health.Server from google.golang.org/grpc/health.
type HealthStatusSetter interface {
	SetServingStatus(service string, servingStatus grpc_health_v1.HealthCheckResponse_ServingStatus)
}

// HealthChecker probes the credential store and publishes the result as the overall
// ("" service) gRPC health status.
type HealthChecker struct {
	store    interfaces.CredentialStore
	status   HealthStatusSetter
	interval time.Duration
	timeout  time.Duration
	logger   log.Logger

	last grpc_health_v1.HealthCheckResponse_ServingStatus
}

// NewHealthChecker creates a HealthChecker. Panics on nil store or status.
func NewHealthChecker(
	store interfaces.CredentialStore,
	status HealthStatusSetter,
	interval time.Duration,
	timeout time.Duration,
	logger log.Logger,
) *HealthChecker {
	return &HealthChecker{
		store:    helpers.NilPanic(store, "service.health.go: store is required"),
		status:   helpers.NilPanic(status, "service.health.go: status is required"),
		interval: interval,
		timeout:  timeout,
		logger:   log.WithPrefix(logger, "component", "HealthChecker"),
		last:     grpc_health_v1.HealthCheckResponse_UNKNOWN,
	}
}

// Run probes immediately and then every interval until ctx is done.
func (h *HealthChecker) Run(ctx context.Context) {
	h.Check(ctx)

	ticker := time.NewTicker(h.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			h.Check(ctx)
		}
	}
}

// Check probes the store once, publishes and returns the resulting status.
func (h *HealthChecker) Check(ctx context.Context) grpc_health_v1.HealthCheckResponse_ServingStatus {
	status := grpc_health_v1.HealthCheckResponse_SERVING
	if err := h.probe(ctx); err != nil {
		status = grpc_health_v1.HealthCheckResponse_NOT_SERVING
		level.Warn(h.logger).Log("msg", "Credential store probe failed", "err", err)
	}

	if status != h.last {
		level.Info(h.logger).Log("msg", "Health status changed", "from", h.last, "to", status)
		h.last = status
	}
	h.status.SetServingStatus("", status)
	return status
}

func (h *HealthChecker) probe(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, h.timeout)
	defer cancel()

	session, err := h.store.Connect(ctx)
	if err != nil {
		return err
	}
	return session.Close()
}
