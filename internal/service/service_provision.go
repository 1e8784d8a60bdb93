// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/MKhiriev/custody-vault/internal/logger"
	"github.com/MKhiriev/custody-vault/internal/store"
	"github.com/MKhiriev/custody-vault/internal/utils"
	"github.com/MKhiriev/custody-vault/models"
)

// ProvisionVault creates the vault record of the calling administrator with
// both consent flags cleared. The approvers must be distinct from each other
// and from the administrator.
func (s *vaultService) ProvisionVault(ctx context.Context, request models.ProvisionVaultRequest) (models.VaultView, error) {
	log := logger.FromContext(ctx)

	admin := request.Caller
	if request.ApproverA == request.ApproverB || admin == request.ApproverA || admin == request.ApproverB {
		s.metrics.ObserveOperation(string(models.OperationProvisionVault), resultOf(ErrInvalidApprovers))
		return models.VaultView{}, ErrInvalidApprovers
	}

	now := s.now()
	record := models.VaultRecord{
		Address:       utils.VaultAddress(admin),
		Administrator: admin,
		ApproverA:     request.ApproverA,
		ApproverB:     request.ApproverB,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	var view models.VaultView
	err := s.storages.InTx(ctx, func(ctx context.Context, repos store.Repositories) error {
		if err := repos.Vaults.CreateVault(ctx, record); err != nil {
			return err
		}

		if err := repos.Operations.AppendOperation(ctx, s.operation(models.OperationProvisionVault, record.Address, admin, now)); err != nil {
			return err
		}

		var err error
		view, err = s.vaultView(ctx, repos, record)
		return err
	})
	s.metrics.ObserveOperation(string(models.OperationProvisionVault), resultOf(err))
	if err != nil {
		log.Err(err).Str("administrator", admin.String()).Msg("vault provisioning failed")
		return models.VaultView{}, fmt.Errorf("vault provisioning failed: %w", err)
	}

	log.Info().
		Str("vault", record.Address.String()).
		Str("administrator", admin.String()).
		Str("approver_a", record.ApproverA.String()).
		Str("approver_b", record.ApproverB.String()).
		Msg("vault provisioned")

	return view, nil
}

// ProvisionAsset creates the asset custodied by the vault together with the
// custody account and mints the initial supply into it. Only the
// administrator may call it, and only once per vault.
func (s *vaultService) ProvisionAsset(ctx context.Context, request models.ProvisionAssetRequest) (models.Asset, error) {
	log := logger.FromContext(ctx)

	decimals := s.defaultDecimals
	if request.Decimals != nil {
		decimals = *request.Decimals
	}
	if decimals < 0 || decimals > models.MaxDecimals {
		return models.Asset{}, ErrInvalidDataProvided
	}

	supply := request.InitialSupply
	if supply == 0 {
		supply = s.initialSupply
	}
	if supply > math.MaxInt64 {
		return models.Asset{}, ErrInvalidAmount
	}

	var asset models.Asset
	err := s.storages.InTx(ctx, func(ctx context.Context, repos store.Repositories) error {
		record, err := repos.Vaults.GetVaultForUpdate(ctx, request.Vault)
		if err != nil {
			return err
		}
		if record.Administrator != request.Caller {
			return ErrUnauthorized
		}
		if record.HasAsset() {
			return ErrAssetAlreadyProvisioned
		}

		now := s.now()
		asset = models.Asset{
			Address:   utils.MintAddress(record.Administrator),
			Vault:     record.Address,
			Name:      request.Name,
			Symbol:    request.Symbol,
			Decimals:  decimals,
			Supply:    supply,
			CreatedAt: now,
		}
		custody := models.Account{
			Address:   utils.AccountAddress(record.Address, asset.Address),
			Owner:     record.Address,
			Asset:     asset.Address,
			Balance:   supply,
			CreatedAt: now,
			UpdatedAt: now,
		}

		if err = repos.Assets.CreateAsset(ctx, asset); err != nil {
			return err
		}
		if err = repos.Accounts.CreateAccount(ctx, custody); err != nil {
			return err
		}
		if err = repos.Vaults.SetAsset(ctx, record.Address, asset.Address, custody.Address, now); err != nil {
			if errors.Is(err, store.ErrAssetAlreadyExists) {
				return ErrAssetAlreadyProvisioned
			}
			return err
		}

		op := s.operation(models.OperationProvisionAsset, record.Address, request.Caller, now)
		op.Destination = custody.Address
		op.Amount = supply
		return repos.Operations.AppendOperation(ctx, op)
	})
	s.metrics.ObserveOperation(string(models.OperationProvisionAsset), resultOf(err))
	if err != nil {
		log.Err(err).Str("vault", request.Vault.String()).Msg("asset provisioning failed")
		return models.Asset{}, fmt.Errorf("asset provisioning failed: %w", err)
	}

	s.assets.Add(asset.Address, asset)
	log.Info().
		Str("vault", asset.Vault.String()).
		Str("asset", asset.Address.String()).
		Str("symbol", asset.Symbol).
		Uint64("supply", asset.Supply).
		Msg("asset provisioned")

	return asset, nil
}

// OpenAccount opens an empty holder account of request.Asset owned by the
// caller.
func (s *vaultService) OpenAccount(ctx context.Context, request models.OpenAccountRequest) (models.AccountView, error) {
	log := logger.FromContext(ctx)

	var view models.AccountView
	err := s.storages.InTx(ctx, func(ctx context.Context, repos store.Repositories) error {
		if _, err := s.asset(ctx, repos, request.Asset); err != nil {
			return err
		}

		now := s.now()
		account := models.Account{
			Address:   utils.AccountAddress(request.Caller, request.Asset),
			Owner:     request.Caller,
			Asset:     request.Asset,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := repos.Accounts.CreateAccount(ctx, account); err != nil {
			return err
		}

		var err error
		view, err = s.accountView(ctx, repos, account)
		return err
	})
	if err != nil {
		log.Err(err).Str("owner", request.Caller.String()).Str("asset", request.Asset.String()).Msg("account opening failed")
		return models.AccountView{}, fmt.Errorf("account opening failed: %w", err)
	}

	log.Info().Str("account", view.Address.String()).Str("owner", view.Owner.String()).Msg("account opened")
	return view, nil
}
