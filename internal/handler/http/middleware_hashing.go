// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"io"
	"net/http"

	"github.com/MKhiriev/custody-vault/internal/logger"
	"github.com/MKhiriev/custody-vault/internal/utils"
)

// hashHeader carries the hex HMAC-SHA256 of a body under the shared hash key.
const hashHeader = "HashSHA256"

// withHashing verifies signed request bodies and signs every response body
// when a hash key is configured. Requests without the header pass unchecked.
func (h *Handler) withHashing(next http.Handler) http.Handler {
	if h.hasher == nil {
		return next
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		if expected := r.Header.Get(hashHeader); expected != "" && r.Body != nil {
			body, err := io.ReadAll(r.Body)
			if err != nil {
				log.Err(err).Str("func", "*Handler.withHashing").Msg("failed to read request body")
				utils.WriteError(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
				return
			}
			r.Body = io.NopCloser(bytes.NewReader(body))

			if !h.hasher.Verify(body, expected) {
				log.Error().Str("func", "*Handler.withHashing").
					Str("hash from request", expected).
					Msg("request body signature mismatch")
				utils.WriteError(w, errIntegrityFail.Error(), http.StatusBadRequest)
				return
			}
		}

		hw := &hashingResponseWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(hw, r)

		w.Header().Set(hashHeader, h.hasher.Sum(hw.body.Bytes()))
		w.WriteHeader(hw.status)
		if _, err := w.Write(hw.body.Bytes()); err != nil {
			log.Err(err).Str("func", "*Handler.withHashing").Msg("failed to write response body")
		}
	})
}

// hashingResponseWriter buffers the response so that its signature can be
// sent as a header before the body.
type hashingResponseWriter struct {
	http.ResponseWriter
	status int
	body   bytes.Buffer
}

func (w *hashingResponseWriter) WriteHeader(statusCode int) {
	w.status = statusCode
}

func (w *hashingResponseWriter) Write(b []byte) (int, error) {
	return w.body.Write(b)
}
