// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

const (
	DefaultHTTPAddress          = "localhost:8080"
	DefaultGRPCAddress          = "localhost:9090"
	DefaultRequestTimeout       = 30 * time.Second
	DefaultTokenIssuer          = "custody-vault"
	DefaultTokenDuration        = time.Hour
	DefaultAuthWindow           = 5 * time.Minute
	DefaultInitialSupply        = 1_000_000
	DefaultAssetCacheSize       = 128
	DefaultSupplyReportInterval = 15 * time.Second
	DefaultAdapterBaseURL       = "http://localhost:8080"
	DefaultKeyFile              = "vaultctl.key"
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:   DefaultTokenIssuer,
			TokenDuration: DefaultTokenDuration,
			AuthWindow:    DefaultAuthWindow,
		},
		Server: Server{
			HTTPAddress:    DefaultHTTPAddress,
			GRPCAddress:    DefaultGRPCAddress,
			RequestTimeout: DefaultRequestTimeout,
		},
		Vault: Vault{
			InitialSupply:  DefaultInitialSupply,
			AssetCacheSize: DefaultAssetCacheSize,
		},
		Workers: Workers{
			SupplyReportInterval: DefaultSupplyReportInterval,
		},
	}
}
