// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/MKhiriev/custody-vault/internal/logger"
	"github.com/MKhiriev/custody-vault/internal/metrics"
	"github.com/MKhiriev/custody-vault/internal/service"
	"github.com/MKhiriev/custody-vault/internal/utils"
	"github.com/prometheus/client_golang/prometheus"
)

// Options configures the cross-cutting parts of the HTTP API.
type Options struct {
	// HashKey signs response bodies in the HashSHA256 header and verifies
	// signed request bodies. Disabled when empty.
	HashKey string

	// Gatherer backs GET /metrics. The route is not registered when nil.
	Gatherer prometheus.Gatherer

	// Metrics instruments every request. May be nil.
	Metrics *metrics.RequestMetrics
}

type Handler struct {
	services *service.Services
	options  Options

	// hasher is nil when no hash key is configured
	hasher *utils.Hasher

	logger *logger.Logger
}

func NewHandler(services *service.Services, options Options, logger *logger.Logger) *Handler {
	h := &Handler{
		services: services,
		options:  options,
		logger:   logger,
	}
	if options.HashKey != "" {
		h.hasher = utils.NewHasher(options.HashKey)
	}

	logger.Info().Bool("signing", h.hasher != nil).Msg("http handler created")
	return h
}
