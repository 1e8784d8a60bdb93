// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

// Repositories groups the repositories bound to one connection or
// transaction.
type Repositories struct {
	Vaults     VaultRepository
	Assets     AssetRepository
	Accounts   AccountRepository
	Operations OperationRepository
}
