// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/custody-vault/internal/logger"
	"github.com/MKhiriev/custody-vault/internal/store"
	"github.com/MKhiriev/custody-vault/models"
)

// DefaultOperationsLimit applies when a query does not set a limit.
const DefaultOperationsLimit = 100

func (s *vaultService) GetVault(ctx context.Context, vault models.Address) (models.VaultView, error) {
	record, err := s.storages.Vaults.GetVault(ctx, vault)
	if err != nil {
		return models.VaultView{}, fmt.Errorf("error reading vault: %w", err)
	}

	return s.vaultView(ctx, s.storages.Repositories, record)
}

func (s *vaultService) GetAccount(ctx context.Context, account models.Address) (models.AccountView, error) {
	found, err := s.storages.Accounts.GetAccount(ctx, account)
	if err != nil {
		return models.AccountView{}, fmt.Errorf("error reading account: %w", err)
	}

	return s.accountView(ctx, s.storages.Repositories, found)
}

// GetAsset always reads the store so that the supply is current.
func (s *vaultService) GetAsset(ctx context.Context, asset models.Address) (models.Asset, error) {
	found, err := s.storages.Assets.GetAsset(ctx, asset)
	if err != nil {
		return models.Asset{}, fmt.Errorf("error reading asset: %w", err)
	}

	return found, nil
}

func (s *vaultService) ListOperations(ctx context.Context, query models.OperationsQuery) ([]models.Operation, error) {
	limit := query.Limit
	if limit == 0 {
		limit = DefaultOperationsLimit
	}

	if _, err := s.storages.Vaults.GetVault(ctx, query.Vault); err != nil {
		return nil, fmt.Errorf("error reading vault: %w", err)
	}

	operations, err := s.storages.Operations.ListOperations(ctx, query.Vault, limit)
	if err != nil {
		return nil, fmt.Errorf("error listing operations: %w", err)
	}

	return operations, nil
}

// SupplyReport returns the supply and custody balance of every provisioned
// asset.
func (s *vaultService) SupplyReport(ctx context.Context) ([]models.SupplyReport, error) {
	log := logger.FromContext(ctx)

	assets, err := s.storages.Assets.ListAssets(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing assets: %w", err)
	}

	reports := make([]models.SupplyReport, 0, len(assets))
	for _, asset := range assets {
		report := models.SupplyReport{
			Asset:  asset.Address,
			Symbol: asset.Symbol,
			Vault:  asset.Vault,
			Supply: asset.Supply,
		}

		record, err := s.storages.Vaults.GetVault(ctx, asset.Vault)
		if err != nil {
			return nil, fmt.Errorf("error reading vault of asset %s: %w", asset.Address, err)
		}
		custody, err := s.storages.Accounts.GetAccount(ctx, record.CustodyAccount)
		switch {
		case errors.Is(err, store.ErrAccountNotFound):
			log.Warn().Str("vault", record.Address.String()).Msg("custody account is missing")
		case err != nil:
			return nil, fmt.Errorf("error reading custody account: %w", err)
		default:
			report.CustodyBalance = custody.Balance
		}

		s.metrics.SetSupply(asset.Address.String(), asset.Symbol, asset.Supply)
		s.metrics.SetCustodyBalance(record.Address.String(), report.CustodyBalance)
		reports = append(reports, report)
	}

	return reports, nil
}
