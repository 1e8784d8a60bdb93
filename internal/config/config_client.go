// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// ClientAdapter holds the settings of the HTTP client used by vaultctl.
type ClientAdapter struct {
	// BaseURL is the server root, e.g. "http://localhost:8080".
	// Env: VAULTCTL_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// RequestTimeout bounds every outbound request.
	// Env: VAULTCTL_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// HashKey verifies the HashSHA256 response signature when non-empty.
	// Env: VAULTCTL_HASH_KEY
	HashKey string `env:"HASH_KEY"`
}

// ClientConfig is the configuration of the vaultctl CLI. It is read from the
// environment only; command-line flags belong to the CLI itself.
type ClientConfig struct {
	Adapter ClientAdapter `envPrefix:"VAULTCTL_"`

	// KeyFile is the default path of the encrypted signing key.
	// Env: VAULTCTL_KEY_FILE
	KeyFile string `env:"VAULTCTL_KEY_FILE"`
}

// GetClientConfig loads the client configuration from the environment and
// fills defaults.
func GetClientConfig() (*ClientConfig, error) {
	cfg := &ClientConfig{}
	if err := parseEnv(cfg); err != nil {
		return nil, fmt.Errorf("error get client config: %w", err)
	}

	if cfg.Adapter.BaseURL == "" {
		cfg.Adapter.BaseURL = DefaultAdapterBaseURL
	}
	if cfg.Adapter.RequestTimeout == 0 {
		cfg.Adapter.RequestTimeout = DefaultRequestTimeout
	}
	if cfg.KeyFile == "" {
		cfg.KeyFile = DefaultKeyFile
	}

	return cfg, cfg.validate()
}
