// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "errors"

var (
	ErrWrongPassphrase    = errors.New("wrong passphrase or corrupted key file")
	ErrCorruptedKeyFile   = errors.New("corrupted key file")
	ErrUnsupportedKeyFile = errors.New("unsupported key file")
	ErrKeyMismatch        = errors.New("key does not match the key file address")
	ErrKeyFileExists      = errors.New("key file already exists")
	ErrInvalidKey         = errors.New("invalid ed25519 private key")
)
