// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import (
	"github.com/MKhiriev/custody-vault/internal/config"
	"github.com/MKhiriev/custody-vault/internal/handler/grpc"
	"github.com/MKhiriev/custody-vault/internal/handler/http"
	"github.com/MKhiriev/custody-vault/internal/logger"
	"github.com/MKhiriev/custody-vault/internal/metrics"
	"github.com/MKhiriev/custody-vault/internal/service"
	"github.com/prometheus/client_golang/prometheus"
)

type Handlers struct {
	HTTP *http.Handler
	GRPC *grpc.Handler
}

// NewHandlers creates a handler for every transport with a configured
// address. reg collects the request metrics of both transports and is served
// on GET /metrics; it may be nil to disable instrumentation.
func NewHandlers(services *service.Services, cfg config.StructuredConfig, reg *prometheus.Registry, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.Server.HTTPAddress != "" {
		options := http.Options{HashKey: cfg.App.HashKey}
		if reg != nil {
			options.Gatherer = reg
			options.Metrics = metrics.NewRequestMetrics(reg, "http")
		}
		handlers.HTTP = http.NewHandler(services, options, logger)
	}
	if cfg.Server.GRPCAddress != "" {
		var m *metrics.RequestMetrics
		if reg != nil {
			m = metrics.NewRequestMetrics(reg, "grpc")
		}
		handlers.GRPC = grpc.NewHandler(services, m, logger)
	}

	if handlers.HTTP == nil && handlers.GRPC == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
