// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	lru "github.com/hashicorp/golang-lru"

	"github.com/MKhiriev/custody-vault/internal/config"
	"github.com/MKhiriev/custody-vault/internal/gate"
	"github.com/MKhiriev/custody-vault/internal/logger"
	"github.com/MKhiriev/custody-vault/internal/metrics"
	"github.com/MKhiriev/custody-vault/internal/store"
	"github.com/MKhiriev/custody-vault/internal/utils"
	"github.com/MKhiriev/custody-vault/models"
)

// vaultService implements [VaultService] on top of the ledger store. Every
// state change runs in one store transaction that starts by locking the
// vault row, so consent checks and asset movements on one vault are
// serialized.
type vaultService struct {
	storages *store.Storages

	// assets caches asset records by address. Everything but the supply is
	// immutable after provisioning; the cache is only used for formatting.
	assets *lru.Cache

	metrics *metrics.CustodyMetrics
	ids     *utils.UUIDGenerator
	now     func() time.Time

	initialSupply   uint64
	defaultDecimals int32

	logger *logger.Logger
}

// NewVaultService constructs the custody core. m may be nil.
func NewVaultService(storages *store.Storages, cfg config.Vault, m *metrics.CustodyMetrics, logger *logger.Logger) (VaultService, error) {
	if storages == nil {
		return nil, errors.New("storages are required")
	}

	size := cfg.AssetCacheSize
	if size <= 0 {
		size = config.DefaultAssetCacheSize
	}
	cache, err := lru.New(size)
	if err != nil {
		return nil, fmt.Errorf("error creating asset cache: %w", err)
	}

	return &vaultService{
		storages:        storages,
		assets:          cache,
		metrics:         m,
		ids:             utils.NewUUIDGenerator(),
		now:             func() time.Time { return time.Now().UTC() },
		initialSupply:   cfg.InitialSupply,
		defaultDecimals: cfg.DefaultDecimals,
		logger:          logger,
	}, nil
}

// asset returns the asset record, from cache when possible.
func (s *vaultService) asset(ctx context.Context, repos store.Repositories, address models.Address) (models.Asset, error) {
	if cached, ok := s.assets.Get(address); ok {
		return cached.(models.Asset), nil
	}

	asset, err := repos.Assets.GetAsset(ctx, address)
	if err != nil {
		return models.Asset{}, err
	}

	s.assets.Add(address, asset)
	return asset, nil
}

// vaultView builds the client read model of record.
func (s *vaultService) vaultView(ctx context.Context, repos store.Repositories, record models.VaultRecord) (models.VaultView, error) {
	view := models.VaultView{
		VaultRecord:  record,
		ConsentState: gate.StateOf(&record).String(),
	}
	if !record.HasAsset() {
		return view, nil
	}

	custody, err := repos.Accounts.GetAccount(ctx, record.CustodyAccount)
	if err != nil {
		return models.VaultView{}, fmt.Errorf("error reading custody account: %w", err)
	}
	asset, err := s.asset(ctx, repos, record.AssetType)
	if err != nil {
		return models.VaultView{}, fmt.Errorf("error reading vault asset: %w", err)
	}

	view.CustodyBalance = asset.FormatAmount(custody.Balance)
	return view, nil
}

func (s *vaultService) accountView(ctx context.Context, repos store.Repositories, account models.Account) (models.AccountView, error) {
	asset, err := s.asset(ctx, repos, account.Asset)
	if err != nil {
		return models.AccountView{}, fmt.Errorf("error reading account asset: %w", err)
	}

	return models.AccountView{
		Account:   account,
		UIBalance: asset.FormatAmount(account.Balance),
	}, nil
}

func (s *vaultService) operation(kind models.OperationKind, vault, caller models.Address, at time.Time) models.Operation {
	return models.Operation{
		ID:        s.ids.Generate(),
		Vault:     vault,
		Kind:      kind,
		Caller:    caller,
		CreatedAt: at,
	}
}

// rejectedErrors are domain outcomes; anything else counts as an error in
// metrics.
var rejectedErrors = []error{
	ErrUnauthorized,
	ErrInsufficientConsent,
	ErrInsufficientBalance,
	ErrInvalidAmount,
	ErrInvalidApprovers,
	ErrAssetNotProvisioned,
	ErrAssetAlreadyProvisioned,
	ErrAssetMismatch,
	ErrSameAccount,
	store.ErrVaultNotFound,
	store.ErrVaultAlreadyExists,
	store.ErrAccountNotFound,
	store.ErrAccountAlreadyExists,
	store.ErrAssetNotFound,
}

func resultOf(err error) string {
	if err == nil {
		return metrics.ResultOK
	}
	for _, target := range rejectedErrors {
		if errors.Is(err, target) {
			return metrics.ResultRejected
		}
	}
	return metrics.ResultError
}
