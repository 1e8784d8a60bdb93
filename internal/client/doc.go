// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements vaultctl, the command-line client of the custody
// vault.
//
// It wires the server adapter, the key chain and the passphrase prompt into
// a cobra command tree. Every command prints its result as JSON on stdout and
// logs to stderr.
package client
