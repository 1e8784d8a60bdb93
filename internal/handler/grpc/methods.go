// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package grpc

import (
	"context"

	"github.com/MKhiriev/custody-vault/internal/logger"
	"github.com/MKhiriev/custody-vault/internal/utils"
	"github.com/MKhiriev/custody-vault/models"
)

func (h *Handler) IssueToken(ctx context.Context, in *models.TokenRequest) (*models.TokenResponse, error) {
	token, err := h.services.AuthService.IssueToken(ctx, *in)
	if err != nil {
		return nil, h.fail(ctx, err, "token was not issued")
	}
	return &token, nil
}

func (h *Handler) ProvisionVault(ctx context.Context, in *models.ProvisionVaultRequest) (*models.VaultView, error) {
	caller, err := callerFrom(ctx)
	if err != nil {
		return nil, err
	}
	in.Caller = caller

	view, err := h.services.VaultService.ProvisionVault(ctx, *in)
	if err != nil {
		return nil, h.fail(ctx, err, "vault was not provisioned")
	}
	return &view, nil
}

func (h *Handler) ProvisionAsset(ctx context.Context, in *ProvisionAssetMessage) (*models.Asset, error) {
	caller, err := callerFrom(ctx)
	if err != nil {
		return nil, err
	}

	request := in.ProvisionAssetRequest
	request.Vault = in.Vault
	request.Caller = caller

	asset, err := h.services.VaultService.ProvisionAsset(ctx, request)
	if err != nil {
		return nil, h.fail(ctx, err, "asset was not provisioned")
	}
	return &asset, nil
}

func (h *Handler) OpenAccount(ctx context.Context, in *models.OpenAccountRequest) (*models.AccountView, error) {
	caller, err := callerFrom(ctx)
	if err != nil {
		return nil, err
	}
	in.Caller = caller

	view, err := h.services.VaultService.OpenAccount(ctx, *in)
	if err != nil {
		return nil, h.fail(ctx, err, "account was not opened")
	}
	return &view, nil
}

func (h *Handler) GrantConsent(ctx context.Context, in *VaultMessage) (*models.VaultView, error) {
	return h.consent(ctx, in, h.services.VaultService.GrantConsent)
}

func (h *Handler) ClearConsent(ctx context.Context, in *VaultMessage) (*models.VaultView, error) {
	return h.consent(ctx, in, h.services.VaultService.ClearConsent)
}

func (h *Handler) consent(ctx context.Context, in *VaultMessage, apply func(context.Context, models.ConsentRequest) (models.VaultView, error)) (*models.VaultView, error) {
	caller, err := callerFrom(ctx)
	if err != nil {
		return nil, err
	}

	view, err := apply(ctx, models.ConsentRequest{Vault: in.Vault, Caller: caller})
	if err != nil {
		return nil, h.fail(ctx, err, "consent was not changed")
	}
	return &view, nil
}

func (h *Handler) Withdraw(ctx context.Context, in *WithdrawMessage) (*models.Operation, error) {
	caller, err := callerFrom(ctx)
	if err != nil {
		return nil, err
	}

	request := in.WithdrawRequest
	request.Vault = in.Vault
	request.Caller = caller

	op, err := h.services.VaultService.Withdraw(ctx, request)
	return h.operation(ctx, op, err)
}

func (h *Handler) Transfer(ctx context.Context, in *TransferMessage) (*models.Operation, error) {
	caller, err := callerFrom(ctx)
	if err != nil {
		return nil, err
	}

	request := in.TransferRequest
	request.Vault = in.Vault
	request.Caller = caller

	op, err := h.services.VaultService.Transfer(ctx, request)
	return h.operation(ctx, op, err)
}

func (h *Handler) Burn(ctx context.Context, in *BurnMessage) (*models.Operation, error) {
	caller, err := callerFrom(ctx)
	if err != nil {
		return nil, err
	}

	request := in.BurnRequest
	request.Vault = in.Vault
	request.Caller = caller

	op, err := h.services.VaultService.Burn(ctx, request)
	return h.operation(ctx, op, err)
}

func (h *Handler) operation(ctx context.Context, op models.Operation, err error) (*models.Operation, error) {
	if err != nil {
		return nil, h.fail(ctx, err, "custody operation failed")
	}
	return &op, nil
}

func (h *Handler) GetVault(ctx context.Context, in *VaultMessage) (*models.VaultView, error) {
	view, err := h.services.VaultService.GetVault(ctx, in.Vault)
	if err != nil {
		return nil, h.fail(ctx, err, "error reading vault")
	}
	return &view, nil
}

func (h *Handler) GetAccount(ctx context.Context, in *AccountMessage) (*models.AccountView, error) {
	view, err := h.services.VaultService.GetAccount(ctx, in.Account)
	if err != nil {
		return nil, h.fail(ctx, err, "error reading account")
	}
	return &view, nil
}

func (h *Handler) GetAsset(ctx context.Context, in *AssetMessage) (*models.Asset, error) {
	asset, err := h.services.VaultService.GetAsset(ctx, in.Asset)
	if err != nil {
		return nil, h.fail(ctx, err, "error reading asset")
	}
	return &asset, nil
}

func (h *Handler) ListOperations(ctx context.Context, in *OperationsMessage) (*OperationsList, error) {
	operations, err := h.services.VaultService.ListOperations(ctx, models.OperationsQuery{Vault: in.Vault, Limit: in.Limit})
	if err != nil {
		return nil, h.fail(ctx, err, "error listing operations")
	}
	return &OperationsList{Operations: operations}, nil
}

func (h *Handler) GetVersion(ctx context.Context, _ *Empty) (*models.VersionInfo, error) {
	info := h.services.AppInfoService.GetVersionInfo(ctx)
	return &info, nil
}

// fail logs err and converts it to a status error.
func (h *Handler) fail(ctx context.Context, err error, msg string) error {
	logger.FromContext(ctx).Err(err).Msg(msg)
	return toStatus(err)
}

func callerFrom(ctx context.Context) (models.Address, error) {
	caller, ok := utils.GetCallerFromContext(ctx)
	if !ok {
		return "", errNoCaller
	}
	return caller, nil
}
