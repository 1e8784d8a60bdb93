// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/custody-vault/internal/validators"
	"github.com/MKhiriev/custody-vault/models"
)

// VaultValidationService rejects malformed requests before they reach the
// custody core. Role and consent checks stay in the core, inside the ledger
// transaction.
type VaultValidationService struct {
	inner     VaultService
	validator validators.Validator
}

func NewVaultValidationService() VaultServiceWrapper {
	return &VaultValidationService{
		validator: validators.NewCustodyValidator(),
	}
}

func (v *VaultValidationService) Wrap(inner VaultService) VaultService {
	v.inner = inner
	return v
}

func (v *VaultValidationService) validate(ctx context.Context, request any) error {
	if err := v.validator.Validate(ctx, request); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return nil
}

func (v *VaultValidationService) ProvisionVault(ctx context.Context, request models.ProvisionVaultRequest) (models.VaultView, error) {
	if err := v.validate(ctx, request); err != nil {
		return models.VaultView{}, err
	}
	return v.inner.ProvisionVault(ctx, request)
}

func (v *VaultValidationService) ProvisionAsset(ctx context.Context, request models.ProvisionAssetRequest) (models.Asset, error) {
	if err := v.validate(ctx, request); err != nil {
		return models.Asset{}, err
	}
	return v.inner.ProvisionAsset(ctx, request)
}

func (v *VaultValidationService) OpenAccount(ctx context.Context, request models.OpenAccountRequest) (models.AccountView, error) {
	if err := v.validate(ctx, request); err != nil {
		return models.AccountView{}, err
	}
	return v.inner.OpenAccount(ctx, request)
}

func (v *VaultValidationService) GrantConsent(ctx context.Context, request models.ConsentRequest) (models.VaultView, error) {
	if err := v.validate(ctx, request); err != nil {
		return models.VaultView{}, err
	}
	return v.inner.GrantConsent(ctx, request)
}

func (v *VaultValidationService) ClearConsent(ctx context.Context, request models.ConsentRequest) (models.VaultView, error) {
	if err := v.validate(ctx, request); err != nil {
		return models.VaultView{}, err
	}
	return v.inner.ClearConsent(ctx, request)
}

func (v *VaultValidationService) Withdraw(ctx context.Context, request models.WithdrawRequest) (models.Operation, error) {
	if err := v.validate(ctx, request); err != nil {
		return models.Operation{}, err
	}
	return v.inner.Withdraw(ctx, request)
}

func (v *VaultValidationService) Transfer(ctx context.Context, request models.TransferRequest) (models.Operation, error) {
	if err := v.validate(ctx, request); err != nil {
		return models.Operation{}, err
	}
	return v.inner.Transfer(ctx, request)
}

func (v *VaultValidationService) Burn(ctx context.Context, request models.BurnRequest) (models.Operation, error) {
	if err := v.validate(ctx, request); err != nil {
		return models.Operation{}, err
	}
	return v.inner.Burn(ctx, request)
}

func (v *VaultValidationService) GetVault(ctx context.Context, vault models.Address) (models.VaultView, error) {
	if !vault.Valid() {
		return models.VaultView{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, validators.ErrInvalidVault)
	}
	return v.inner.GetVault(ctx, vault)
}

func (v *VaultValidationService) GetAccount(ctx context.Context, account models.Address) (models.AccountView, error) {
	if !account.Valid() {
		return models.AccountView{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, validators.ErrInvalidTarget)
	}
	return v.inner.GetAccount(ctx, account)
}

func (v *VaultValidationService) GetAsset(ctx context.Context, asset models.Address) (models.Asset, error) {
	if !asset.Valid() {
		return models.Asset{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, validators.ErrInvalidAsset)
	}
	return v.inner.GetAsset(ctx, asset)
}

func (v *VaultValidationService) ListOperations(ctx context.Context, query models.OperationsQuery) ([]models.Operation, error) {
	if err := v.validate(ctx, query); err != nil {
		return nil, err
	}
	return v.inner.ListOperations(ctx, query)
}

func (v *VaultValidationService) SupplyReport(ctx context.Context) ([]models.SupplyReport, error) {
	return v.inner.SupplyReport(ctx)
}
