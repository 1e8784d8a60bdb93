// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"crypto/ed25519"
	"errors"

	"github.com/btcsuite/btcd/btcutil/base58"
)

// AddressLength is the decoded size of every identity and account address.
const AddressLength = 32

// ErrInvalidAddress is returned by [ParseAddress] when the input is not a
// base58 string decoding to exactly [AddressLength] bytes.
var ErrInvalidAddress = errors.New("invalid address")

// Address identifies a party (an ed25519 public key) or a derived ledger
// record (vault, asset, account). It is always kept in its base58 text form.
type Address string

// ParseAddress validates s and returns it as an [Address].
func ParseAddress(s string) (Address, error) {
	if s == "" {
		return "", ErrInvalidAddress
	}

	decoded := base58.Decode(s)
	if len(decoded) != AddressLength {
		return "", ErrInvalidAddress
	}

	return Address(s), nil
}

// AddressFromBytes encodes raw 32-byte key material as an [Address].
func AddressFromBytes(b []byte) (Address, error) {
	if len(b) != AddressLength {
		return "", ErrInvalidAddress
	}

	return Address(base58.Encode(b)), nil
}

// AddressFromPublicKey returns the address of an ed25519 public key.
func AddressFromPublicKey(pub ed25519.PublicKey) Address {
	return Address(base58.Encode(pub))
}

// Bytes returns the decoded address bytes, or nil for a malformed address.
func (a Address) Bytes() []byte {
	decoded := base58.Decode(string(a))
	if len(decoded) != AddressLength {
		return nil
	}
	return decoded
}

// PublicKey interprets the address as an ed25519 public key.
func (a Address) PublicKey() (ed25519.PublicKey, error) {
	b := a.Bytes()
	if b == nil {
		return nil, ErrInvalidAddress
	}
	return ed25519.PublicKey(b), nil
}

// IsZero reports whether the address is unset.
func (a Address) IsZero() bool {
	return a == ""
}

// Valid reports whether the address decodes to [AddressLength] bytes.
func (a Address) Valid() bool {
	return a.Bytes() != nil
}

func (a Address) String() string {
	return string(a)
}
