// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client side of the custody vault API.
//
// The primary abstraction is [ServerAdapter], used by the vaultctl CLI. The
// package ships an HTTP/REST implementation ([NewHTTPServerAdapter]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] (e.g. [ErrConflict] for
// 409, [ErrUnauthorized] for 401).
package adapter

import (
	"context"
	"crypto/ed25519"

	"github.com/MKhiriev/custody-vault/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines communication with the custody vault server.
// Implementations are responsible for serialisation, authentication header
// management and mapping transport-level errors to the sentinel values
// defined in this package.
type ServerAdapter interface {
	// SetToken stores the bearer token attached to all subsequent
	// authenticated requests.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	// Authenticate signs a fresh challenge with key, exchanges it for a token
	// and stores the token via SetToken.
	Authenticate(ctx context.Context, key ed25519.PrivateKey) (models.TokenResponse, error)

	ProvisionVault(ctx context.Context, request models.ProvisionVaultRequest) (models.VaultView, error)
	ProvisionAsset(ctx context.Context, request models.ProvisionAssetRequest) (models.Asset, error)
	OpenAccount(ctx context.Context, request models.OpenAccountRequest) (models.AccountView, error)

	GrantConsent(ctx context.Context, vault models.Address) (models.VaultView, error)
	ClearConsent(ctx context.Context, vault models.Address) (models.VaultView, error)

	Withdraw(ctx context.Context, request models.WithdrawRequest) (models.Operation, error)
	Transfer(ctx context.Context, request models.TransferRequest) (models.Operation, error)
	Burn(ctx context.Context, request models.BurnRequest) (models.Operation, error)

	GetVault(ctx context.Context, vault models.Address) (models.VaultView, error)
	GetAccount(ctx context.Context, account models.Address) (models.AccountView, error)
	GetAsset(ctx context.Context, asset models.Address) (models.Asset, error)
	ListOperations(ctx context.Context, query models.OperationsQuery) ([]models.Operation, error)

	// Version returns the server build information.
	Version(ctx context.Context) (models.VersionInfo, error)
}
