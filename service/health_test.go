package service

import (
	"context"
	"testing"
	"time"

	"mylogin/interfaces"
	"mylogin/interfaces/mock"

	"github.com/go-kit/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
)

func healthStatus(t *testing.T, hs *health.Server) grpc_health_v1.HealthCheckResponse_ServingStatus {
	t.Helper()
	resp, err := hs.Check(context.Background(), &grpc_health_v1.HealthCheckRequest{Service: ""})
	require.NoError(t, err)
	return resp.Status
}

func TestHealthChecker_Check(t *testing.T) {
	tests := []struct {
		name       string
		store      *mock.CredentialStoreMock
		wantStatus grpc_health_v1.HealthCheckResponse_ServingStatus
	}{
		{
			name: "store reachable",
			store: &mock.CredentialStoreMock{
				ConnectFunc: func(ctx context.Context) (interfaces.CredentialSession, error) {
					return &mock.CredentialSessionMock{}, nil
				},
			},
			wantStatus: grpc_health_v1.HealthCheckResponse_SERVING,
		},
		{
			name: "store unreachable",
			store: &mock.CredentialStoreMock{
				ConnectFunc: func(ctx context.Context) (interfaces.CredentialSession, error) {
					return nil, NewInternalServerError("redis down", assert.AnError)
				},
			},
			wantStatus: grpc_health_v1.HealthCheckResponse_NOT_SERVING,
		},
		{
			name: "close fails",
			store: &mock.CredentialStoreMock{
				ConnectFunc: func(ctx context.Context) (interfaces.CredentialSession, error) {
					return &mock.CredentialSessionMock{
						CloseFunc: func() error { return assert.AnError },
					}, nil
				},
			},
			wantStatus: grpc_health_v1.HealthCheckResponse_NOT_SERVING,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hs := health.NewServer()
			checker := NewHealthChecker(tt.store, hs, time.Second, time.Second, log.NewNopLogger())

			got := checker.Check(context.Background())
			assert.Equal(t, tt.wantStatus, got)
			assert.Equal(t, tt.wantStatus, healthStatus(t, hs))
			assert.Len(t, tt.store.ConnectCalls(), 1)
		})
	}
}

func TestHealthChecker_Run_RecoversAndStops(t *testing.T) {
	session := &mock.CredentialSessionMock{}
	calls := 0
	store := &mock.CredentialStoreMock{
		ConnectFunc: func(ctx context.Context) (interfaces.CredentialSession, error) {
			calls++
			if calls == 1 {
				return nil, assert.AnError
			}
			return session, nil
		},
	}
	hs := health.NewServer()
	checker := NewHealthChecker(store, hs, 10*time.Millisecond, time.Second, log.NewNopLogger())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		checker.Run(ctx)
		close(done)
	}()

	require.Eventually(t, func() bool {
		if len(session.CloseCalls()) == 0 {
			return false
		}
		resp, err := hs.Check(context.Background(), &grpc_health_v1.HealthCheckRequest{})
		return err == nil && resp.Status == grpc_health_v1.HealthCheckResponse_SERVING
	}, 2*time.Second, 5*time.Millisecond)

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not stop after context cancellation")
	}
	assert.GreaterOrEqual(t, len(store.ConnectCalls()), 2)
}

func TestNewHealthChecker_NilStorePanics(t *testing.T) {
	assert.Panics(t, func() {
		NewHealthChecker(nil, health.NewServer(), time.Second, time.Second, log.NewNopLogger())
	})
}
