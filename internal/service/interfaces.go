// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/custody-vault/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

type AuthService interface {
	IssueToken(ctx context.Context, request models.TokenRequest) (models.TokenResponse, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// ProvisionService creates vaults, their asset and holder accounts.
type ProvisionService interface {
	ProvisionVault(ctx context.Context, request models.ProvisionVaultRequest) (models.VaultView, error)
	ProvisionAsset(ctx context.Context, request models.ProvisionAssetRequest) (models.Asset, error)
	OpenAccount(ctx context.Context, request models.OpenAccountRequest) (models.AccountView, error)
}

// ConsentService drives the authorization gate of a vault.
type ConsentService interface {
	GrantConsent(ctx context.Context, request models.ConsentRequest) (models.VaultView, error)
	ClearConsent(ctx context.Context, request models.ConsentRequest) (models.VaultView, error)
}

// CustodyService moves or destroys custodied value. Every operation requires
// both approvals and consumes them on success.
type CustodyService interface {
	Withdraw(ctx context.Context, request models.WithdrawRequest) (models.Operation, error)
	Transfer(ctx context.Context, request models.TransferRequest) (models.Operation, error)
	Burn(ctx context.Context, request models.BurnRequest) (models.Operation, error)
}

// QueryService serves read models.
type QueryService interface {
	GetVault(ctx context.Context, vault models.Address) (models.VaultView, error)
	GetAccount(ctx context.Context, account models.Address) (models.AccountView, error)
	GetAsset(ctx context.Context, asset models.Address) (models.Asset, error)
	ListOperations(ctx context.Context, query models.OperationsQuery) ([]models.Operation, error)
	SupplyReport(ctx context.Context) ([]models.SupplyReport, error)
}

// VaultService is everything a transport needs from the custody core.
type VaultService interface {
	ProvisionService
	ConsentService
	CustodyService
	QueryService
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetVersionInfo(ctx context.Context) models.VersionInfo
}

// VaultServiceWrapper defines middleware composition for VaultService.
// Implementations wrap an existing VaultService to add behavior such as
// validating.
type VaultServiceWrapper interface {
	Wrap(VaultService) VaultService
}
