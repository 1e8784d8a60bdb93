// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"time"

	"github.com/MKhiriev/custody-vault/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// VaultRepository persists vault records. The ForUpdate variants take a row
// lock that is held until the surrounding transaction ends.
type VaultRepository interface {
	CreateVault(ctx context.Context, vault models.VaultRecord) error
	GetVault(ctx context.Context, address models.Address) (models.VaultRecord, error)
	GetVaultForUpdate(ctx context.Context, address models.Address) (models.VaultRecord, error)
	UpdateConsent(ctx context.Context, vault models.VaultRecord) error
	SetAsset(ctx context.Context, vault, asset, custodyAccount models.Address, updatedAt time.Time) error
	ListVaults(ctx context.Context) ([]models.VaultRecord, error)
}

// AssetRepository persists asset types and their total supply.
type AssetRepository interface {
	CreateAsset(ctx context.Context, asset models.Asset) error
	GetAsset(ctx context.Context, address models.Address) (models.Asset, error)
	UpdateSupply(ctx context.Context, address models.Address, supply uint64) error
	ListAssets(ctx context.Context) ([]models.Asset, error)
}

// AccountRepository persists holder and custody accounts.
type AccountRepository interface {
	CreateAccount(ctx context.Context, account models.Account) error
	GetAccount(ctx context.Context, address models.Address) (models.Account, error)
	GetAccountForUpdate(ctx context.Context, address models.Address) (models.Account, error)
	UpdateBalance(ctx context.Context, address models.Address, balance uint64, updatedAt time.Time) error
}

// OperationRepository is the append-only audit trail.
type OperationRepository interface {
	AppendOperation(ctx context.Context, operation models.Operation) error
	ListOperations(ctx context.Context, vault models.Address, limit uint64) ([]models.Operation, error)
}

// Transactor runs fn inside one database transaction. The transaction is
// committed when fn returns nil and rolled back otherwise. Repositories
// passed to fn are bound to the transaction and must not escape it.
type Transactor interface {
	InTx(ctx context.Context, fn func(ctx context.Context, repos Repositories) error) error
}

// ErrorClassificator maps driver errors to retry decisions.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
	IsUniqueViolation(err error) bool
}
