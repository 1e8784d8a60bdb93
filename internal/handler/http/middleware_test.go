// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"compress/gzip"
	"encoding/hex"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/custody-vault/internal/logger"
	"github.com/MKhiriev/custody-vault/internal/metrics"
	"github.com/MKhiriev/custody-vault/internal/service"
	"github.com/MKhiriev/custody-vault/internal/utils"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBareHandler(options Options) *Handler {
	return NewHandler(&service.Services{}, options, logger.Nop())
}

// ─────────────────────────────────────────────
// withGZip
// ─────────────────────────────────────────────

func gzipBytes(t *testing.T, data string) []byte {
	t.Helper()

	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, err := zw.Write([]byte(data))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func TestGZip_CompressesResponse(t *testing.T) {
	handler := withGZip(okHandler(`{"ok":true}`))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Accept-Encoding", "deflate, gzip")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, "gzip", rec.Header().Get("Content-Encoding"))
	zr, err := gzip.NewReader(rec.Body)
	require.NoError(t, err)
	body, err := io.ReadAll(zr)
	require.NoError(t, err)
	assert.Equal(t, `{"ok":true}`, string(body))
}

func TestGZip_PlainWhenNotAccepted(t *testing.T) {
	handler := withGZip(okHandler("plain"))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Empty(t, rec.Header().Get("Content-Encoding"))
	assert.Equal(t, "plain", rec.Body.String())
}

func TestGZip_EmptyBodyIsValidStream(t *testing.T) {
	handler := withGZip(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, "gzip", rec.Header().Get("Content-Encoding"))
	zr, err := gzip.NewReader(rec.Body)
	require.NoError(t, err)
	body, err := io.ReadAll(zr)
	require.NoError(t, err)
	assert.Empty(t, body)
}

func TestGZip_DecompressesRequest(t *testing.T) {
	var received string
	var acceptEncoding string
	handler := withGZip(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		_ = r.Body.Close()
		received = string(body)
		acceptEncoding = r.Header.Get("Accept-Encoding")
	}))

	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(gzipBytes(t, "compressed payload")))
	req.Header.Set("Content-Encoding", "gzip")
	req.Header.Set("Accept-Encoding", "gzip")
	handler.ServeHTTP(httptest.NewRecorder(), req)

	assert.Equal(t, "compressed payload", received)
	assert.Empty(t, acceptEncoding, "inner handlers must not compress again")
}

func TestGZip_InvalidRequestBody(t *testing.T) {
	handler := withGZip(okHandler("unreachable"))

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("not gzip"))
	req.Header.Set("Content-Encoding", "gzip")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// ─────────────────────────────────────────────
// withTraceID
// ─────────────────────────────────────────────

func TestWithTraceID(t *testing.T) {
	h := newBareHandler(Options{})
	handler := h.withTraceID(okHandler("ok"))

	tests := []struct {
		name     string
		incoming string
		keep     bool
	}{
		{name: "generated when absent"},
		{name: "propagated when present", incoming: "trace-123", keep: true},
		{name: "replaced when too long", incoming: strings.Repeat("x", maxTraceIDLength+1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.incoming != "" {
				req.Header.Set(traceIDHeader, tt.incoming)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			got := rec.Header().Get(traceIDHeader)
			require.NotEmpty(t, got)
			if tt.keep {
				assert.Equal(t, tt.incoming, got)
			} else {
				assert.NotEqual(t, tt.incoming, got)
				assert.Len(t, got, 36)
			}
		})
	}
}

func TestWithTraceID_LoggerCarriesTraceID(t *testing.T) {
	var out bytes.Buffer
	h := NewHandler(&service.Services{}, Options{}, logger.NewLoggerTo(&out, "test"))

	handler := h.withTraceID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.FromRequest(r).Info().Msg("inside")
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(traceIDHeader, "trace-abc")
	handler.ServeHTTP(httptest.NewRecorder(), req)

	assert.Contains(t, out.String(), `"trace_id":"trace-abc"`)
}

// ─────────────────────────────────────────────
// withLogging and responseWriter
// ─────────────────────────────────────────────

func TestWithLogging(t *testing.T) {
	var out bytes.Buffer
	h := NewHandler(&service.Services{}, Options{}, logger.NewLoggerTo(&out, "test"))

	handler := h.withTraceID(h.withLogging(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		_, _ = w.Write([]byte("12345"))
	})))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/vaults", nil))

	assert.Equal(t, http.StatusTeapot, rec.Code)
	logged := out.String()
	assert.Contains(t, logged, `"status":418`)
	assert.Contains(t, logged, `"size":5`)
	assert.Contains(t, logged, `"method":"POST"`)
}

func TestResponseWriter(t *testing.T) {
	rec := httptest.NewRecorder()
	rw := &responseWriter{ResponseWriter: rec}

	_, err := rw.Write([]byte("abc"))
	require.NoError(t, err)
	rw.WriteHeader(http.StatusInternalServerError)
	_, err = rw.Write([]byte("de"))
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, rw.status, "implicit status wins over a late WriteHeader")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 5, rw.size)
	assert.Same(t, rec, rw.Unwrap())
}

// ─────────────────────────────────────────────
// withMetrics
// ─────────────────────────────────────────────

func TestWithMetrics_UsesRoutePattern(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.NewRequestMetrics(reg, "http")
	h := newBareHandler(Options{Metrics: m})

	router := chi.NewRouter()
	router.Use(h.withMetrics)
	router.Get("/api/vaults/{vault}", okHandler("ok").ServeHTTP)

	for _, vault := range []string{"a", "b", "c"} {
		router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/vaults/"+vault, nil))
	}
	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/nowhere", nil))

	assert.Equal(t, 3.0, testutil.ToFloat64(m.RequestCounts.WithLabelValues("GET /api/vaults/{vault}", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.RequestCounts.WithLabelValues("unmatched", "404")))
}

// ─────────────────────────────────────────────
// withHashing
// ─────────────────────────────────────────────

func TestWithHashing(t *testing.T) {
	const key = "hash-key"
	h := newBareHandler(Options{HashKey: key})

	var received string
	handler := h.withHashing(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		received = string(body)
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"signed":true}`))
	}))

	t.Run("signs the response", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, `{"signed":true}`, rec.Body.String())
		assert.Equal(t, utils.HashString(`{"signed":true}`, key), rec.Header().Get(hashHeader))
	})

	t.Run("accepts a correctly signed request", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"amount":1}`))
		req.Header.Set(hashHeader, utils.HashString(`{"amount":1}`, key))
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, `{"amount":1}`, received, "the body is restored for the handler")
	})

	t.Run("rejects a tampered request", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"amount":1000}`))
		req.Header.Set(hashHeader, hex.EncodeToString([]byte("forged")))
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestWithHashing_DisabledWithoutKey(t *testing.T) {
	h := newBareHandler(Options{})

	rec := httptest.NewRecorder()
	h.withHashing(okHandler("x")).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Empty(t, rec.Header().Get(hashHeader))
}
