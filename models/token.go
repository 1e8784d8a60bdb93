// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// Token wraps a JWT issued to an authenticated caller.
//
// It embeds [jwt.Token] for signing and parsing and [jwt.RegisteredClaims]
// for claim access. The "sub" claim carries the caller's base58 address.
type Token struct {
	*jwt.Token `json:"-"`

	jwt.RegisteredClaims

	// SignedString is the compact JWS form (header.payload.signature).
	SignedString string `json:"-"`

	// Caller is the address parsed from the "sub" claim.
	Caller Address `json:"-"`
}

// GetCaller extracts and validates the caller address from the "sub" claim.
func (t *Token) GetCaller() (Address, error) {
	subject, err := t.GetSubject()
	if err != nil {
		return "", fmt.Errorf("error extracting caller from token: %w", err)
	}

	caller, err := ParseAddress(subject)
	if err != nil {
		return "", fmt.Errorf("error parsing caller address from token: %w", err)
	}

	return caller, nil
}

// String returns the compact JWS serialization of the token.
func (t *Token) String() string {
	return t.SignedString
}
