// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package grpc

import "github.com/MKhiriev/custody-vault/models"

// Request messages that address a vault or account explicitly. Over HTTP
// these addresses are path parameters.

type VaultMessage struct {
	Vault models.Address `json:"vault"`
}

type AccountMessage struct {
	Account models.Address `json:"account"`
}

type ProvisionAssetMessage struct {
	models.ProvisionAssetRequest
	Vault models.Address `json:"vault"`
}

type WithdrawMessage struct {
	models.WithdrawRequest
	Vault models.Address `json:"vault"`
}

type TransferMessage struct {
	models.TransferRequest
	Vault models.Address `json:"vault"`
}

type BurnMessage struct {
	models.BurnRequest
	Vault models.Address `json:"vault"`
}

type AssetMessage struct {
	Asset models.Address `json:"asset"`
}

type OperationsMessage struct {
	Vault models.Address `json:"vault"`
	Limit uint64         `json:"limit,omitempty"`
}

type OperationsList struct {
	Operations []models.Operation `json:"operations"`
}

type Empty struct{}
