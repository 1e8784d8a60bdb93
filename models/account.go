// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Account holds a balance of one asset for one owner. The vault custody
// account is an Account whose Owner is the vault record address.
type Account struct {
	// Address is derived from the owner, the asset and the "account" namespace.
	Address Address `json:"address"`
	Owner   Address `json:"owner"`
	Asset   Address `json:"asset"`

	// Balance is expressed in base units of the asset.
	Balance uint64 `json:"balance"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table backing [Account].
func (a Account) TableName() string {
	return "accounts"
}

// AccountView is an [Account] together with its human-readable balance.
type AccountView struct {
	Account

	UIBalance string `json:"ui_balance"`
}
