// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidCaller      = errors.New("invalid caller address")
	ErrInvalidVault       = errors.New("invalid vault address")
	ErrInvalidApprover    = errors.New("invalid approver address")
	ErrInvalidAsset       = errors.New("invalid asset address")
	ErrInvalidSource      = errors.New("invalid source account address")
	ErrInvalidDestination = errors.New("invalid destination account address")
	ErrInvalidTarget      = errors.New("invalid target account address")
	ErrInvalidPublicKey   = errors.New("invalid public key")
	ErrEmptySignature     = errors.New("signature is required")
	ErrEmptyName          = errors.New("asset name is required")
	ErrEmptySymbol        = errors.New("asset symbol is required")
	ErrNameTooLong        = errors.New("asset name is too long")
	ErrSymbolTooLong      = errors.New("asset symbol is too long")
	ErrInvalidDecimals    = errors.New("asset decimals out of range")
	ErrInvalidLimit       = errors.New("invalid page limit")
)
