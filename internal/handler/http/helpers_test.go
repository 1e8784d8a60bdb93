// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/custody-vault/internal/logger"
	"github.com/MKhiriev/custody-vault/internal/mock"
	"github.com/MKhiriev/custody-vault/internal/service"
	"github.com/MKhiriev/custody-vault/models"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	qVault   models.Address = "8RBsoeyoRwajj86MZfZE6gMDJQVYGYcdSfx1zxqxNHbr"
	qAdmin   models.Address = "67WKXSxm4oc149PvQjdXLacKFZpK5DyYdqBwpiVydJbb"
	qAsset   models.Address = "FnqbqF7YJekTNEMkZJMcujSouSfd4CzTacotg2LmSqeV"
	qAccount models.Address = "ZSx1e5zpVu3SY2cwo1vqUrSe34UaGkRdinnbv99nmSc"

	validToken = "valid-token"
)

type testAPI struct {
	router *chi.Mux
	auth   *mock.MockAuthService
	vault  *mock.MockVaultService
	info   *mock.MockAppInfoService
}

func newTestAPI(t *testing.T, options Options) *testAPI {
	t.Helper()
	ctrl := gomock.NewController(t)

	api := &testAPI{
		auth:  mock.NewMockAuthService(ctrl),
		vault: mock.NewMockVaultService(ctrl),
		info:  mock.NewMockAppInfoService(ctrl),
	}

	// every authorized request in these tests acts as qAdmin
	api.auth.EXPECT().
		ParseToken(gomock.Any(), validToken).
		Return(models.Token{Caller: qAdmin}, nil).
		AnyTimes()

	services := &service.Services{
		AuthService:    api.auth,
		VaultService:   api.vault,
		AppInfoService: api.info,
	}
	api.router = NewHandler(services, options, logger.Nop()).Init()

	return api
}

// do sends body as JSON. An empty token sends no Authorization header.
func (a *testAPI) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var payload bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&payload).Encode(body))
	}

	req := httptest.NewRequest(method, path, &payload)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	a.router.ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v))
	return v
}

// okHandler writes body with status 200.
func okHandler(body string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(body))
	})
}
