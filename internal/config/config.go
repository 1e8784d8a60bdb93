// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"os"
	"time"
)

// StructuredConfig is the top-level configuration of the custody vault
// server. It is populated by merging environment variables, command-line
// flags, an optional JSON file and built-in defaults, in that priority order.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds token and request-signing settings.
	App App `envPrefix:"APP_"`

	// Storage holds the ledger database settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds HTTP and gRPC listener settings.
	Server Server `envPrefix:"SERVER_"`

	// Vault holds provisioning defaults.
	Vault Vault `envPrefix:"VAULT_"`

	// Workers holds background worker settings.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Storage groups the persistence settings.
type Storage struct {
	DB DB `envPrefix:"DB_"`
}

// App holds application-level settings for authentication and integrity.
type App struct {
	// TokenSignKey is the HS256 secret used to sign and verify JWT tokens.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim of every issued token.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration is the lifetime of an issued token.
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// AuthWindow bounds the clock skew accepted for signed auth challenges.
	// Env: APP_AUTH_WINDOW
	AuthWindow time.Duration `env:"AUTH_WINDOW"`

	// HashKey enables the HashSHA256 response signature when non-empty.
	// Env: APP_HASH_KEY
	HashKey string `env:"HASH_KEY"`

	// Version is reported by GET /api/version.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Server holds network and timeout settings for the inbound transports.
type Server struct {
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// Env: SERVER_GRPC_ADDRESS
	GRPCAddress string `env:"GRPC_ADDRESS"`

	// RequestTimeout bounds a single inbound request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// DB holds the ledger database connection settings.
type DB struct {
	// DSN selects the backend by scheme:
	//   postgres://… or postgresql://…  PostgreSQL (pgx)
	//   file:… or sqlite://…             SQLite
	//   memory://                        in-process store
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Vault holds defaults applied when an asset is provisioned without
// explicit values.
type Vault struct {
	// InitialSupply is minted into the custody account on asset provisioning.
	// Env: VAULT_INITIAL_SUPPLY
	InitialSupply uint64 `env:"INITIAL_SUPPLY"`

	// DefaultDecimals is used when the request omits decimals.
	// Env: VAULT_DEFAULT_DECIMALS
	DefaultDecimals int32 `env:"DEFAULT_DECIMALS"`

	// AssetCacheSize is the number of asset records kept in the LRU cache.
	// Env: VAULT_ASSET_CACHE_SIZE
	AssetCacheSize int `env:"ASSET_CACHE_SIZE"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// SupplyReportInterval is how often supply gauges are refreshed. Zero
	// falls back to the default; a negative interval disables the reporter.
	// Env: WORKERS_SUPPLY_REPORT_INTERVAL
	SupplyReportInterval time.Duration `env:"SUPPLY_REPORT_INTERVAL"`
}

// GetStructuredConfig loads, merges and validates the server configuration
// from (highest priority first):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
func GetStructuredConfig() (*StructuredConfig, error) {
	cfg, err := newConfigBuilder().
		withEnv().
		withFlags(os.Args[1:]).
		withJSON().
		withDefaults().
		build()
	if err != nil {
		return nil, err
	}

	if err = cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}
