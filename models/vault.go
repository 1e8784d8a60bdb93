// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// VaultRecord is the persistent state of one dual-control vault.
//
// Administrator, ApproverA, ApproverB and AssetType are fixed once set.
// ConsentA and ConsentB are the only short-lived fields: they are toggled by
// the authorization gate and reset after every successful custody operation.
type VaultRecord struct {
	// Address is derived from the administrator and the "vault_data" namespace.
	Address Address `json:"address"`

	// Administrator may clear consent and submit withdrawals.
	Administrator Address `json:"administrator"`

	// ApproverA and ApproverB are the two distinct identities whose consent
	// is required before any custody operation.
	ApproverA Address `json:"approver_a"`
	ApproverB Address `json:"approver_b"`

	ConsentA bool `json:"consent_a"`
	ConsentB bool `json:"consent_b"`

	// AssetType is the asset this vault custodies. Empty until the asset is
	// provisioned.
	AssetType Address `json:"asset_type,omitempty"`

	// CustodyAccount holds the pooled balance; its owner is the vault itself.
	CustodyAccount Address `json:"custody_account,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table backing [VaultRecord].
func (v VaultRecord) TableName() string {
	return "vaults"
}

// HasAsset reports whether the vault's asset type has been provisioned.
func (v VaultRecord) HasAsset() bool {
	return !v.AssetType.IsZero()
}

// VaultView is the read model returned to clients.
type VaultView struct {
	VaultRecord

	// ConsentState is one of "no_consent", "one_consent" or "full_consent".
	ConsentState string `json:"consent_state"`

	// CustodyBalance is the pooled balance, formatted with the asset decimals.
	// Empty when no asset is provisioned.
	CustodyBalance string `json:"custody_balance,omitempty"`
}
