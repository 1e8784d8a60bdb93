// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package grpc

import (
	"github.com/MKhiriev/custody-vault/internal/logger"
	"github.com/MKhiriev/custody-vault/internal/metrics"
	"github.com/MKhiriev/custody-vault/internal/service"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// Handler is the root gRPC transport handler. It implements [CustodyServer]
// on top of the service layer.
type Handler struct {
	services *service.Services
	metrics  *metrics.RequestMetrics
	health   *health.Server

	logger *logger.Logger
}

// NewHandler constructs a [Handler]. m may be nil.
func NewHandler(services *service.Services, m *metrics.RequestMetrics, logger *logger.Logger) *Handler {
	logger.Info().Msg("gRPC handler created")
	return &Handler{
		services: services,
		metrics:  m,
		health:   health.NewServer(),
		logger:   logger,
	}
}

// ServerOptions returns the interceptor chain every custody call runs
// through: trace id and logging, metrics, then authentication.
func (h *Handler) ServerOptions() []grpc.ServerOption {
	return []grpc.ServerOption{
		grpc.ChainUnaryInterceptor(
			h.withLogging,
			h.withMetrics,
			h.auth,
		),
	}
}

// Register installs the custody service and the standard health service on s
// and marks both as serving.
func (h *Handler) Register(s *grpc.Server) {
	s.RegisterService(&ServiceDesc, h)
	healthpb.RegisterHealthServer(s, h.health)

	h.health.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	h.health.SetServingStatus(ServiceName, healthpb.HealthCheckResponse_SERVING)
}

// Shutdown flips the health status to NOT_SERVING so that load balancers
// drain the instance before the server stops.
func (h *Handler) Shutdown() {
	h.health.Shutdown()
}
