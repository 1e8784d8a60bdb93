// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service_test

import (
	"context"
	"testing"

	"github.com/MKhiriev/custody-vault/internal/mock"
	"github.com/MKhiriev/custody-vault/internal/service"
	"github.com/MKhiriev/custody-vault/internal/validators"
	"github.com/MKhiriev/custody-vault/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	qVault   models.Address = "8RBsoeyoRwajj86MZfZE6gMDJQVYGYcdSfx1zxqxNHbr"
	qAdmin   models.Address = "67WKXSxm4oc149PvQjdXLacKFZpK5DyYdqBwpiVydJbb"
	qAsset   models.Address = "FnqbqF7YJekTNEMkZJMcujSouSfd4CzTacotg2LmSqeV"
	qAccount models.Address = "ZSx1e5zpVu3SY2cwo1vqUrSe34UaGkRdinnbv99nmSc"
)

func TestVaultValidationService_RejectsBeforeInner(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	inner := mock.NewMockVaultService(ctrl)
	svc := service.NewVaultValidationService().Wrap(inner)

	// no inner call is expected for any of these
	_, err := svc.Withdraw(ctx, models.WithdrawRequest{Vault: qVault, Caller: qAdmin, Amount: 1, Destination: "bogus"})
	require.ErrorIs(t, err, service.ErrInvalidDataProvided)
	require.ErrorIs(t, err, validators.ErrInvalidDestination)

	_, err = svc.Transfer(ctx, models.TransferRequest{Vault: qVault, Caller: qAdmin, Amount: 1, Destination: qAccount})
	require.ErrorIs(t, err, validators.ErrInvalidSource)

	_, err = svc.Burn(ctx, models.BurnRequest{Vault: "", Caller: qAdmin, Amount: 1, Target: qAccount})
	require.ErrorIs(t, err, validators.ErrInvalidVault)

	_, err = svc.ProvisionVault(ctx, models.ProvisionVaultRequest{Caller: qAdmin, ApproverA: qAsset})
	require.ErrorIs(t, err, validators.ErrInvalidApprover)

	_, err = svc.ProvisionAsset(ctx, models.ProvisionAssetRequest{Vault: qVault, Caller: qAdmin, Symbol: "TST"})
	require.ErrorIs(t, err, validators.ErrEmptyName)

	_, err = svc.GrantConsent(ctx, models.ConsentRequest{Vault: qVault})
	require.ErrorIs(t, err, validators.ErrInvalidCaller)

	_, err = svc.GetVault(ctx, "0OIl")
	require.ErrorIs(t, err, service.ErrInvalidDataProvided)

	_, err = svc.ListOperations(ctx, models.OperationsQuery{Vault: qVault, Limit: 5000})
	require.ErrorIs(t, err, validators.ErrInvalidLimit)
}

func TestVaultValidationService_PassesThrough(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	inner := mock.NewMockVaultService(ctrl)
	svc := service.NewVaultValidationService().Wrap(inner)

	request := models.WithdrawRequest{Vault: qVault, Caller: qAdmin, Amount: 10, Destination: qAccount}
	inner.EXPECT().
		Withdraw(gomock.Any(), request).
		Return(models.Operation{ID: "op-1", Kind: models.OperationWithdraw}, nil)

	op, err := svc.Withdraw(ctx, request)
	require.NoError(t, err)
	assert.Equal(t, "op-1", op.ID)

	inner.EXPECT().
		GetAsset(gomock.Any(), qAsset).
		Return(models.Asset{Address: qAsset, Symbol: "TST"}, nil)

	asset, err := svc.GetAsset(ctx, qAsset)
	require.NoError(t, err)
	assert.Equal(t, "TST", asset.Symbol)

	inner.EXPECT().SupplyReport(gomock.Any()).Return(nil, nil)
	_, err = svc.SupplyReport(ctx)
	require.NoError(t, err)
}
