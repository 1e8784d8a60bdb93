// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// TokenRequest proves control of the ed25519 key behind PublicKey.
// Signature is the base58 signature over [AuthChallenge](Timestamp).
type TokenRequest struct {
	PublicKey Address `json:"public_key"`
	Timestamp int64   `json:"timestamp"`
	Signature string  `json:"signature"`
}

// TokenResponse carries a freshly issued bearer token.
type TokenResponse struct {
	Token     string  `json:"token"`
	Caller    Address `json:"caller"`
	ExpiresAt int64   `json:"expires_at"`
}

// ProvisionVaultRequest creates the vault record of the calling administrator.
type ProvisionVaultRequest struct {
	Caller    Address `json:"-"`
	ApproverA Address `json:"approver_a"`
	ApproverB Address `json:"approver_b"`
}

// ProvisionAssetRequest creates the custodied asset of a vault and mints
// InitialSupply into the custody account. Zero values fall back to the
// configured defaults.
type ProvisionAssetRequest struct {
	Vault         Address `json:"-"`
	Caller        Address `json:"-"`
	Name          string  `json:"name"`
	Symbol        string  `json:"symbol"`
	Decimals      *int32  `json:"decimals,omitempty"`
	InitialSupply uint64  `json:"initial_supply,omitempty"`
}

// OpenAccountRequest opens a holder account of Asset owned by the caller.
type OpenAccountRequest struct {
	Caller Address `json:"-"`
	Asset  Address `json:"asset"`
}

// ConsentRequest targets the consent flags of one vault.
type ConsentRequest struct {
	Vault  Address `json:"-"`
	Caller Address `json:"-"`
}

// WithdrawRequest moves Amount from the custody account to Destination.
type WithdrawRequest struct {
	Vault       Address `json:"-"`
	Caller      Address `json:"-"`
	Amount      uint64  `json:"amount"`
	Destination Address `json:"destination"`
}

// TransferRequest moves Amount between two holder accounts.
type TransferRequest struct {
	Vault       Address `json:"-"`
	Caller      Address `json:"-"`
	Amount      uint64  `json:"amount"`
	Source      Address `json:"source"`
	Destination Address `json:"destination"`
}

// BurnRequest destroys Amount held in Target.
type BurnRequest struct {
	Vault  Address `json:"-"`
	Caller Address `json:"-"`
	Amount uint64  `json:"amount"`
	Target Address `json:"target"`
}

// OperationsQuery pages through the audit trail of a vault, newest first.
type OperationsQuery struct {
	Vault Address
	Limit uint64
}
