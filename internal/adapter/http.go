// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"crypto/ed25519"
	"crypto/hmac"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/custody-vault/internal/config"
	"github.com/MKhiriev/custody-vault/internal/logger"
	"github.com/MKhiriev/custody-vault/internal/utils"
	"github.com/MKhiriev/custody-vault/models"
	"github.com/go-resty/resty/v2"
)

const hashHeader = "HashSHA256"

type httpServerAdapter struct {
	client  *utils.HTTPClient
	hashKey string

	mu    sync.RWMutex
	token string

	// now is replaced in tests
	now func() time.Time

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of
// [ServerAdapter]. It normalises and validates cfg.BaseURL and configures the
// underlying resty client with the request timeout. When cfg.HashKey is set,
// request bodies are signed and response signatures are verified.
func NewHTTPServerAdapter(cfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter base url: %w", err)
	}

	client := utils.NewHTTPClient(cfg.RequestTimeout)
	client.SetBaseURL(baseURL)

	return &httpServerAdapter{
		client:  client,
		hashKey: cfg.HashKey,
		now:     time.Now,
		logger:  logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrEmptyAddress
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Authenticate implements [ServerAdapter]. It signs the challenge for the
// current time and POSTs it to /api/auth/token.
func (h *httpServerAdapter) Authenticate(ctx context.Context, key ed25519.PrivateKey) (models.TokenResponse, error) {
	timestamp := h.now().Unix()
	request := models.TokenRequest{
		PublicKey: models.AddressFromPublicKey(key.Public().(ed25519.PublicKey)),
		Timestamp: timestamp,
		Signature: utils.SignChallenge(key, timestamp),
	}

	var response models.TokenResponse
	if err := h.do(ctx, resty.MethodPost, "/api/auth/token", request, &response); err != nil {
		return models.TokenResponse{}, fmt.Errorf("authenticate: %w", err)
	}

	h.SetToken(response.Token)
	return response, nil
}

func (h *httpServerAdapter) ProvisionVault(ctx context.Context, request models.ProvisionVaultRequest) (models.VaultView, error) {
	var view models.VaultView
	if err := h.do(ctx, resty.MethodPost, "/api/vaults", request, &view); err != nil {
		return models.VaultView{}, fmt.Errorf("provision vault: %w", err)
	}
	return view, nil
}

func (h *httpServerAdapter) ProvisionAsset(ctx context.Context, request models.ProvisionAssetRequest) (models.Asset, error) {
	var asset models.Asset
	if err := h.do(ctx, resty.MethodPost, vaultPath(request.Vault, "/asset"), request, &asset); err != nil {
		return models.Asset{}, fmt.Errorf("provision asset: %w", err)
	}
	return asset, nil
}

func (h *httpServerAdapter) OpenAccount(ctx context.Context, request models.OpenAccountRequest) (models.AccountView, error) {
	var view models.AccountView
	if err := h.do(ctx, resty.MethodPost, "/api/accounts", request, &view); err != nil {
		return models.AccountView{}, fmt.Errorf("open account: %w", err)
	}
	return view, nil
}

func (h *httpServerAdapter) GrantConsent(ctx context.Context, vault models.Address) (models.VaultView, error) {
	var view models.VaultView
	if err := h.do(ctx, resty.MethodPost, vaultPath(vault, "/consent"), nil, &view); err != nil {
		return models.VaultView{}, fmt.Errorf("grant consent: %w", err)
	}
	return view, nil
}

func (h *httpServerAdapter) ClearConsent(ctx context.Context, vault models.Address) (models.VaultView, error) {
	var view models.VaultView
	if err := h.do(ctx, resty.MethodPost, vaultPath(vault, "/consent/clear"), nil, &view); err != nil {
		return models.VaultView{}, fmt.Errorf("clear consent: %w", err)
	}
	return view, nil
}

func (h *httpServerAdapter) Withdraw(ctx context.Context, request models.WithdrawRequest) (models.Operation, error) {
	var op models.Operation
	if err := h.do(ctx, resty.MethodPost, vaultPath(request.Vault, "/withdraw"), request, &op); err != nil {
		return models.Operation{}, fmt.Errorf("withdraw: %w", err)
	}
	return op, nil
}

func (h *httpServerAdapter) Transfer(ctx context.Context, request models.TransferRequest) (models.Operation, error) {
	var op models.Operation
	if err := h.do(ctx, resty.MethodPost, vaultPath(request.Vault, "/transfer"), request, &op); err != nil {
		return models.Operation{}, fmt.Errorf("transfer: %w", err)
	}
	return op, nil
}

func (h *httpServerAdapter) Burn(ctx context.Context, request models.BurnRequest) (models.Operation, error) {
	var op models.Operation
	if err := h.do(ctx, resty.MethodPost, vaultPath(request.Vault, "/burn"), request, &op); err != nil {
		return models.Operation{}, fmt.Errorf("burn: %w", err)
	}
	return op, nil
}

func (h *httpServerAdapter) GetVault(ctx context.Context, vault models.Address) (models.VaultView, error) {
	var view models.VaultView
	if err := h.do(ctx, resty.MethodGet, vaultPath(vault, ""), nil, &view); err != nil {
		return models.VaultView{}, fmt.Errorf("get vault: %w", err)
	}
	return view, nil
}

func (h *httpServerAdapter) GetAccount(ctx context.Context, account models.Address) (models.AccountView, error) {
	var view models.AccountView
	if err := h.do(ctx, resty.MethodGet, "/api/accounts/"+url.PathEscape(account.String()), nil, &view); err != nil {
		return models.AccountView{}, fmt.Errorf("get account: %w", err)
	}
	return view, nil
}

func (h *httpServerAdapter) GetAsset(ctx context.Context, asset models.Address) (models.Asset, error) {
	var result models.Asset
	if err := h.do(ctx, resty.MethodGet, "/api/assets/"+url.PathEscape(asset.String()), nil, &result); err != nil {
		return models.Asset{}, fmt.Errorf("get asset: %w", err)
	}
	return result, nil
}

func (h *httpServerAdapter) ListOperations(ctx context.Context, query models.OperationsQuery) ([]models.Operation, error) {
	path := vaultPath(query.Vault, "/operations")
	if query.Limit > 0 {
		path += "?limit=" + strconv.FormatUint(query.Limit, 10)
	}

	var operations []models.Operation
	if err := h.do(ctx, resty.MethodGet, path, nil, &operations); err != nil {
		return nil, fmt.Errorf("list operations: %w", err)
	}
	return operations, nil
}

func (h *httpServerAdapter) Version(ctx context.Context) (models.VersionInfo, error) {
	var info models.VersionInfo
	if err := h.do(ctx, resty.MethodGet, "/api/version", nil, &info); err != nil {
		return models.VersionInfo{}, fmt.Errorf("version: %w", err)
	}
	return info, nil
}

// do sends body as JSON and decodes a successful response into result.
func (h *httpServerAdapter) do(ctx context.Context, method, path string, body, result any) error {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}

	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		req.SetHeader("Content-Type", "application/json").SetBody(payload)
		if h.hashKey != "" {
			req.SetHeader(hashHeader, utils.HashString(string(payload), h.hashKey))
		}
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}

	h.logger.Debug().
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode()).
		Dur("duration", resp.Time()).
		Msg("request completed")

	if err = h.verify(resp); err != nil {
		return err
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	if result == nil {
		return nil
	}
	if err = json.Unmarshal(resp.Body(), result); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// verify checks the response signature when a hash key is configured.
func (h *httpServerAdapter) verify(resp *resty.Response) error {
	if h.hashKey == "" {
		return nil
	}

	expected := resp.Header().Get(hashHeader)
	actual := utils.HashString(string(resp.Body()), h.hashKey)
	if !hmac.Equal([]byte(expected), []byte(actual)) {
		return ErrIntegrity
	}
	return nil
}

func vaultPath(vault models.Address, suffix string) string {
	return "/api/vaults/" + url.PathEscape(vault.String()) + suffix
}
