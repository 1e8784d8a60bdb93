// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
)

// withMetrics records every request under its route pattern, so that
// /api/vaults/{vault} is one series regardless of the vault address.
func (h *Handler) withMetrics(next http.Handler) http.Handler {
	if h.options.Metrics == nil {
		return next
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		mw := &responseWriter{ResponseWriter: w}
		next.ServeHTTP(mw, r)

		endpoint := "unmatched"
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			if pattern := rctx.RoutePattern(); pattern != "" {
				endpoint = r.Method + " " + pattern
			}
		}

		status := mw.status
		if status == 0 {
			status = http.StatusOK
		}

		h.options.Metrics.Observe(endpoint, strconv.Itoa(status), time.Since(start).Seconds())
	})
}
