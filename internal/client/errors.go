// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "errors"

var (
	ErrPassphraseMismatch = errors.New("passphrases do not match")
	ErrEmptyPassphrase    = errors.New("empty passphrase")
	ErrNoTerminal         = errors.New("no terminal to read the passphrase from, set VAULTCTL_PASSPHRASE")
)
