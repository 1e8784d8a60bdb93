// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"

	"github.com/MKhiriev/custody-vault/internal/adapter"
	"github.com/MKhiriev/custody-vault/internal/config"
)

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run executes the command line args and returns when the command is
	// done.
	Run(ctx context.Context, args []string) error
}

// AdapterFactory builds the server adapter once flags are parsed, so that
// --server and --hash-key can override the environment.
type AdapterFactory func(cfg config.ClientAdapter) (adapter.ServerAdapter, error)

// PassphraseReader returns the passphrase protecting the key file. confirm
// asks for it twice, as keygen does.
type PassphraseReader func(prompt string, confirm bool) (string, error)
