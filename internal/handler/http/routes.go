// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer, h.withTraceID, h.withLogging, h.withMetrics, withGZip, h.withHashing)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/auth/token", h.issueToken)
		r.Get("/api/version", h.getServerVersion)
		r.Get("/api/assets/{asset}", h.getAsset)
		if h.options.Gatherer != nil {
			r.Handle("/metrics", promhttp.HandlerFor(h.options.Gatherer, promhttp.HandlerOpts{}))
		}
	})

	// routes with authorization
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Post("/api/vaults", h.provisionVault)
		r.Route("/api/vaults/{vault}", func(r chi.Router) {
			r.Get("/", h.getVault)
			r.Post("/asset", h.provisionAsset)
			r.Post("/consent", h.grantConsent)
			r.Post("/consent/clear", h.clearConsent)
			r.Post("/withdraw", h.withdraw)
			r.Post("/transfer", h.transfer)
			r.Post("/burn", h.burn)
			r.Get("/operations", h.listOperations)
		})

		r.Post("/api/accounts", h.openAccount)
		r.Get("/api/accounts/{account}", h.getAccount)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
