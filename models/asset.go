// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// MaxDecimals bounds [Asset.Decimals].
const MaxDecimals = 18

// Asset is the fungible asset type custodied by a vault.
type Asset struct {
	// Address is derived from the vault administrator and the "mint" namespace.
	Address Address `json:"address"`

	// Vault is the vault that provisioned the asset.
	Vault Address `json:"vault"`

	Name     string `json:"name"`
	Symbol   string `json:"symbol"`
	Decimals int32  `json:"decimals"`

	// Supply is the current total supply in base units. Burns decrease it.
	Supply uint64 `json:"supply"`

	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table backing [Asset].
func (a Asset) TableName() string {
	return "assets"
}

// FormatAmount renders a base-unit amount using the asset decimals,
// e.g. 12345 with 2 decimals becomes "123.45".
func (a Asset) FormatAmount(amount uint64) string {
	return decimal.NewFromUint64(amount).Shift(-a.Decimals).StringFixed(a.Decimals)
}

// SupplyReport is a point-in-time view of one asset, published by the
// supply reporter.
type SupplyReport struct {
	Asset          Address `json:"asset"`
	Symbol         string  `json:"symbol"`
	Vault          Address `json:"vault"`
	Supply         uint64  `json:"supply"`
	CustodyBalance uint64  `json:"custody_balance"`
}
