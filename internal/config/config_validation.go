// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"math"
	"net/url"
	"strings"
)

const maxDecimals = 18

var supportedDSNPrefixes = []string{"postgres://", "postgresql://", "file:", "sqlite://", "memory://"}

// validate checks the merged [StructuredConfig] before startup.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.TokenSignKey == "" || cfg.App.TokenIssuer == "" {
		return fmt.Errorf("%w: token sign key and issuer are required", ErrInvalidAppConfigs)
	}
	if cfg.App.TokenDuration <= 0 || cfg.App.AuthWindow <= 0 {
		return fmt.Errorf("%w: token duration and auth window must be positive", ErrInvalidAppConfigs)
	}

	if !hasSupportedScheme(cfg.Storage.DB.DSN) {
		return fmt.Errorf("%w: unsupported DSN %q", ErrInvalidStorageConfigs, redactDSN(cfg.Storage.DB.DSN))
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.GRPCAddress == "" {
		return fmt.Errorf("%w: http and grpc addresses are required", ErrInvalidServerConfigs)
	}
	if cfg.Server.RequestTimeout <= 0 {
		return fmt.Errorf("%w: request timeout must be positive", ErrInvalidServerConfigs)
	}

	if cfg.Vault.InitialSupply > math.MaxInt64 {
		return fmt.Errorf("%w: initial supply exceeds %d", ErrInvalidVaultConfigs, int64(math.MaxInt64))
	}
	if cfg.Vault.DefaultDecimals < 0 || cfg.Vault.DefaultDecimals > maxDecimals {
		return fmt.Errorf("%w: default decimals must be in [0, %d]", ErrInvalidVaultConfigs, maxDecimals)
	}
	if cfg.Vault.AssetCacheSize <= 0 {
		return fmt.Errorf("%w: asset cache size must be positive", ErrInvalidVaultConfigs)
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	u, err := url.Parse(cfg.Adapter.BaseURL)
	if cfg.Adapter.BaseURL == "" || err != nil || u.Host == "" {
		return ErrInvalidAdapterConfigs
	}
	if cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	return nil
}

func hasSupportedScheme(dsn string) bool {
	for _, prefix := range supportedDSNPrefixes {
		if strings.HasPrefix(dsn, prefix) {
			return true
		}
	}
	return false
}

// redactDSN hides credentials before a DSN is logged or returned in errors.
func redactDSN(dsn string) string {
	u, err := url.Parse(dsn)
	if err != nil || u.User == nil {
		return dsn
	}
	return u.Redacted()
}
