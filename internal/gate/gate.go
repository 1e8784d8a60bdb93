// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package gate implements the dual-control authorization gate of a vault.
//
// The gate owns the two consent flags of a [models.VaultRecord]. Approver A
// and approver B each set only their own flag; the administrator clears both.
// A custody operation may run only while both flags are set and must call
// [Consume] once it has moved funds, so every approval pair authorizes
// exactly one operation.
//
// The functions mutate the record in memory only. Callers load the record
// under a row lock and persist it in the same transaction.
package gate

import (
	"errors"

	"github.com/MKhiriev/custody-vault/models"
)

var (
	// ErrUnauthorized is returned when the caller does not hold the role the
	// action requires.
	ErrUnauthorized = errors.New("caller is not authorized for this action")

	// ErrInsufficientConsent is returned when a custody operation is attempted
	// without both approvals.
	ErrInsufficientConsent = errors.New("both approvers must consent before custody operations")
)

// State is the aggregate consent state of a vault.
type State int

const (
	NoConsent State = iota
	OneConsent
	FullConsent
)

func (s State) String() string {
	switch s {
	case NoConsent:
		return "no_consent"
	case OneConsent:
		return "one_consent"
	case FullConsent:
		return "full_consent"
	default:
		return "unknown"
	}
}

// Grant records the consent of caller. Only the two approvers may grant.
// Granting twice is a no-op; changed reports whether a flag flipped.
func Grant(record *models.VaultRecord, caller models.Address) (changed bool, err error) {
	switch caller {
	case record.ApproverA:
		changed = !record.ConsentA
		record.ConsentA = true
	case record.ApproverB:
		changed = !record.ConsentB
		record.ConsentB = true
	default:
		return false, ErrUnauthorized
	}
	return changed, nil
}

// Clear resets both flags. Only the administrator may clear.
func Clear(record *models.VaultRecord, caller models.Address) error {
	if !IsAdministrator(record, caller) {
		return ErrUnauthorized
	}
	record.ConsentA = false
	record.ConsentB = false
	return nil
}

// FullyConsented reports whether both approvers have consented.
func FullyConsented(record *models.VaultRecord) bool {
	return record.ConsentA && record.ConsentB
}

// Require fails with [ErrInsufficientConsent] unless both flags are set.
func Require(record *models.VaultRecord) error {
	if !FullyConsented(record) {
		return ErrInsufficientConsent
	}
	return nil
}

// Consume clears both flags after a successful custody operation.
func Consume(record *models.VaultRecord) {
	record.ConsentA = false
	record.ConsentB = false
}

// StateOf summarizes the flags of record.
func StateOf(record *models.VaultRecord) State {
	switch {
	case record.ConsentA && record.ConsentB:
		return FullConsent
	case record.ConsentA || record.ConsentB:
		return OneConsent
	default:
		return NoConsent
	}
}

func IsAdministrator(record *models.VaultRecord, caller models.Address) bool {
	return !caller.IsZero() && caller == record.Administrator
}
