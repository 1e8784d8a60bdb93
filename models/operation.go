// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// OperationKind names a state change recorded in the audit trail.
type OperationKind string

const (
	OperationProvisionVault OperationKind = "provision_vault"
	OperationProvisionAsset OperationKind = "provision_asset"
	OperationGrantConsent   OperationKind = "grant_consent"
	OperationClearConsent   OperationKind = "clear_consent"
	OperationWithdraw       OperationKind = "withdraw"
	OperationTransfer       OperationKind = "transfer"
	OperationBurn           OperationKind = "burn"
)

// IsCustody reports whether the kind moves or destroys custodied value.
func (k OperationKind) IsCustody() bool {
	switch k {
	case OperationWithdraw, OperationTransfer, OperationBurn:
		return true
	default:
		return false
	}
}

// Operation is one audit-trail entry. It is written in the same transaction
// as the state change it describes.
type Operation struct {
	ID          string        `json:"id"`
	Vault       Address       `json:"vault"`
	Kind        OperationKind `json:"kind"`
	Caller      Address       `json:"caller"`
	Source      Address       `json:"source,omitempty"`
	Destination Address       `json:"destination,omitempty"`
	Amount      uint64        `json:"amount,omitempty"`
	CreatedAt   time.Time     `json:"created_at"`
}

// TableName returns the name of the database table backing [Operation].
func (o Operation) TableName() string {
	return "operations"
}
