// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"

	"github.com/MKhiriev/custody-vault/internal/gate"
	"github.com/MKhiriev/custody-vault/internal/utils"
)

// Custody errors.
var (
	// ErrUnauthorized is returned when the caller does not hold the role the
	// operation requires.
	ErrUnauthorized = gate.ErrUnauthorized

	// ErrInsufficientConsent is returned for a custody operation on a vault
	// that is not fully consented.
	ErrInsufficientConsent = gate.ErrInsufficientConsent

	ErrInsufficientBalance = errors.New("insufficient balance")

	// ErrInvalidAmount covers zero amounts, amounts above math.MaxInt64 and
	// credits that would overflow the destination balance.
	ErrInvalidAmount = errors.New("invalid amount")

	ErrInvalidApprovers        = errors.New("approvers must be two distinct identities other than the administrator")
	ErrAssetNotProvisioned     = errors.New("vault asset is not provisioned")
	ErrAssetAlreadyProvisioned = errors.New("vault asset is already provisioned")
	ErrAssetMismatch           = errors.New("account does not hold the vault asset")
	ErrSameAccount             = errors.New("source and destination accounts must differ")
)

// Authentication errors.
var (
	ErrInvalidSignature        = utils.ErrInvalidSignature
	ErrChallengeExpired        = errors.New("authentication challenge timestamp is outside the allowed window")
	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
)

var (
	ErrInvalidDataProvided   = errors.New("invalid data provided")
	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
