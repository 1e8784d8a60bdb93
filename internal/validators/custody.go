// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"

	"github.com/MKhiriev/custody-vault/models"
)

const (
	FieldCaller      = "caller"
	FieldVault       = "vault"
	FieldApprovers   = "approvers"
	FieldAsset       = "asset"
	FieldSource      = "source"
	FieldDestination = "destination"
	FieldTarget      = "target"
	FieldPublicKey   = "public_key"
	FieldSignature   = "signature"
	FieldName        = "name"
	FieldSymbol      = "symbol"
	FieldDecimals    = "decimals"
	FieldLimit       = "limit"
)

const (
	maxNameLength   = 32
	maxSymbolLength = 10
	maxPageLimit    = 1000
)

// CustodyValidator checks the shape of vault requests: address formats and
// asset metadata bounds. Amounts and roles are checked by the custody core
// inside the ledger transaction.
type CustodyValidator struct{}

func NewCustodyValidator() Validator {
	return &CustodyValidator{}
}

func (v *CustodyValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.TokenRequest:
		return v.validateTokenRequest(value, fields...)
	case *models.TokenRequest:
		return v.validateTokenRequest(*value, fields...)

	case models.ProvisionVaultRequest:
		return v.validateProvisionVault(value, fields...)
	case *models.ProvisionVaultRequest:
		return v.validateProvisionVault(*value, fields...)

	case models.ProvisionAssetRequest:
		return v.validateProvisionAsset(value, fields...)
	case *models.ProvisionAssetRequest:
		return v.validateProvisionAsset(*value, fields...)

	case models.OpenAccountRequest:
		return v.validateOpenAccount(value, fields...)
	case *models.OpenAccountRequest:
		return v.validateOpenAccount(*value, fields...)

	case models.ConsentRequest:
		return v.validateConsent(value, fields...)
	case *models.ConsentRequest:
		return v.validateConsent(*value, fields...)

	case models.WithdrawRequest:
		return v.validateWithdraw(value, fields...)
	case *models.WithdrawRequest:
		return v.validateWithdraw(*value, fields...)

	case models.TransferRequest:
		return v.validateTransfer(value, fields...)
	case *models.TransferRequest:
		return v.validateTransfer(*value, fields...)

	case models.BurnRequest:
		return v.validateBurn(value, fields...)
	case *models.BurnRequest:
		return v.validateBurn(*value, fields...)

	case models.OperationsQuery:
		return v.validateOperationsQuery(value, fields...)
	case *models.OperationsQuery:
		return v.validateOperationsQuery(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func checkAddress(addr models.Address, err error) error {
	if !addr.Valid() {
		return err
	}
	return nil
}

func (v *CustodyValidator) validateTokenRequest(request models.TokenRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldPublicKey, FieldSignature}
	}

	for _, f := range fields {
		switch f {
		case FieldPublicKey:
			if err := checkAddress(request.PublicKey, ErrInvalidPublicKey); err != nil {
				return err
			}
		case FieldSignature:
			if request.Signature == "" {
				return ErrEmptySignature
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *CustodyValidator) validateProvisionVault(request models.ProvisionVaultRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldCaller, FieldApprovers}
	}

	for _, f := range fields {
		switch f {
		case FieldCaller:
			if err := checkAddress(request.Caller, ErrInvalidCaller); err != nil {
				return err
			}
		case FieldApprovers:
			if err := checkAddress(request.ApproverA, ErrInvalidApprover); err != nil {
				return err
			}
			if err := checkAddress(request.ApproverB, ErrInvalidApprover); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *CustodyValidator) validateProvisionAsset(request models.ProvisionAssetRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldCaller, FieldVault, FieldName, FieldSymbol, FieldDecimals}
	}

	for _, f := range fields {
		switch f {
		case FieldCaller:
			if err := checkAddress(request.Caller, ErrInvalidCaller); err != nil {
				return err
			}
		case FieldVault:
			if err := checkAddress(request.Vault, ErrInvalidVault); err != nil {
				return err
			}
		case FieldName:
			if request.Name == "" {
				return ErrEmptyName
			}
			if len(request.Name) > maxNameLength {
				return ErrNameTooLong
			}
		case FieldSymbol:
			if request.Symbol == "" {
				return ErrEmptySymbol
			}
			if len(request.Symbol) > maxSymbolLength {
				return ErrSymbolTooLong
			}
		case FieldDecimals:
			if request.Decimals != nil && (*request.Decimals < 0 || *request.Decimals > models.MaxDecimals) {
				return ErrInvalidDecimals
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *CustodyValidator) validateOpenAccount(request models.OpenAccountRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldCaller, FieldAsset}
	}

	for _, f := range fields {
		switch f {
		case FieldCaller:
			if err := checkAddress(request.Caller, ErrInvalidCaller); err != nil {
				return err
			}
		case FieldAsset:
			if err := checkAddress(request.Asset, ErrInvalidAsset); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *CustodyValidator) validateConsent(request models.ConsentRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldCaller, FieldVault}
	}

	for _, f := range fields {
		switch f {
		case FieldCaller:
			if err := checkAddress(request.Caller, ErrInvalidCaller); err != nil {
				return err
			}
		case FieldVault:
			if err := checkAddress(request.Vault, ErrInvalidVault); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *CustodyValidator) validateWithdraw(request models.WithdrawRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldCaller, FieldVault, FieldDestination}
	}

	for _, f := range fields {
		switch f {
		case FieldCaller:
			if err := checkAddress(request.Caller, ErrInvalidCaller); err != nil {
				return err
			}
		case FieldVault:
			if err := checkAddress(request.Vault, ErrInvalidVault); err != nil {
				return err
			}
		case FieldDestination:
			if err := checkAddress(request.Destination, ErrInvalidDestination); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *CustodyValidator) validateTransfer(request models.TransferRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldCaller, FieldVault, FieldSource, FieldDestination}
	}

	for _, f := range fields {
		switch f {
		case FieldCaller:
			if err := checkAddress(request.Caller, ErrInvalidCaller); err != nil {
				return err
			}
		case FieldVault:
			if err := checkAddress(request.Vault, ErrInvalidVault); err != nil {
				return err
			}
		case FieldSource:
			if err := checkAddress(request.Source, ErrInvalidSource); err != nil {
				return err
			}
		case FieldDestination:
			if err := checkAddress(request.Destination, ErrInvalidDestination); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *CustodyValidator) validateBurn(request models.BurnRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldCaller, FieldVault, FieldTarget}
	}

	for _, f := range fields {
		switch f {
		case FieldCaller:
			if err := checkAddress(request.Caller, ErrInvalidCaller); err != nil {
				return err
			}
		case FieldVault:
			if err := checkAddress(request.Vault, ErrInvalidVault); err != nil {
				return err
			}
		case FieldTarget:
			if err := checkAddress(request.Target, ErrInvalidTarget); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *CustodyValidator) validateOperationsQuery(query models.OperationsQuery, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldVault, FieldLimit}
	}

	for _, f := range fields {
		switch f {
		case FieldVault:
			if err := checkAddress(query.Vault, ErrInvalidVault); err != nil {
				return err
			}
		case FieldLimit:
			if query.Limit > maxPageLimit {
				return ErrInvalidLimit
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
