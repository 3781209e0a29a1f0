package main

import (
	"context"
	"net"
	"testing"
	"time"

	"mylogin/adapters"
	"mylogin/service"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-kit/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/protobuf/proto"
)

func TestHealthCheck(t *testing.T) {
	mr := miniredis.RunT(t)
	ctx := context.Background()

	store, err := adapters.NewCredentialStore(ctx, adapters.StoreConfig{
		URI:        "redis://" + mr.Addr(),
		Database:   "login",
		Collection: "credential",
	})
	require.NoError(t, err)
	defer store.Close()

	lis, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	healthServer := health.NewServer()
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_NOT_SERVING)
	grpcServer := newGRPCServer(healthServer)
	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			t.Logf("Server error: %v", err)
		}
	}()
	defer grpcServer.GracefulStop()

	conn, err := grpc.NewClient(
		lis.Addr().String(),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	defer conn.Close()
	healthClient := grpc_health_v1.NewHealthClient(conn)

	checkStatus := func() *grpc_health_v1.HealthCheckResponse {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		resp, err := healthClient.Check(ctx, &grpc_health_v1.HealthCheckRequest{Service: ""})
		require.NoError(t, err)
		return resp
	}
	serving := &grpc_health_v1.HealthCheckResponse{Status: grpc_health_v1.HealthCheckResponse_SERVING}
	notServing := &grpc_health_v1.HealthCheckResponse{Status: grpc_health_v1.HealthCheckResponse_NOT_SERVING}

	assert.True(t, proto.Equal(notServing, checkStatus()))

	checker := service.NewHealthChecker(store, healthServer, time.Hour, time.Second, log.NewNopLogger())

	checker.Check(ctx)
	assert.True(t, proto.Equal(serving, checkStatus()))

	mr.Close()
	checker.Check(ctx)
	assert.True(t, proto.Equal(notServing, checkStatus()))
}
