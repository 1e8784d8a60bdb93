// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"maps"
	"slices"
	"sync"
	"time"

	"github.com/MKhiriev/custody-vault/models"
)

// memoryState is one consistent snapshot of the ledger.
type memoryState struct {
	vaults     map[models.Address]models.VaultRecord
	assets     map[models.Address]models.Asset
	accounts   map[models.Address]models.Account
	operations []models.Operation
}

func newMemoryState() *memoryState {
	return &memoryState{
		vaults:   make(map[models.Address]models.VaultRecord),
		assets:   make(map[models.Address]models.Asset),
		accounts: make(map[models.Address]models.Account),
	}
}

func (s *memoryState) clone() *memoryState {
	return &memoryState{
		vaults:     maps.Clone(s.vaults),
		assets:     maps.Clone(s.assets),
		accounts:   maps.Clone(s.accounts),
		operations: slices.Clone(s.operations),
	}
}

// MemoryDB keeps the ledger in process memory. Transactions are serialized
// by a single mutex and work on a private copy of the state that replaces
// the live state on commit, so a failed transaction leaves nothing behind.
type MemoryDB struct {
	mu    sync.Mutex
	state *memoryState
}

// NewMemoryDB returns an empty in-memory ledger.
func NewMemoryDB() *MemoryDB {
	return &MemoryDB{state: newMemoryState()}
}

// Repositories returns repositories that lock the live state per call.
func (m *MemoryDB) Repositories() Repositories {
	return m.bind(func() (*memoryState, func()) {
		m.mu.Lock()
		return m.state, m.mu.Unlock
	})
}

// InTx implements [Transactor].
func (m *MemoryDB) InTx(ctx context.Context, fn func(ctx context.Context, repos Repositories) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}

	snapshot := m.state.clone()
	repos := m.bind(func() (*memoryState, func()) {
		return snapshot, func() {}
	})

	if err := fn(ctx, repos); err != nil {
		return err
	}

	m.state = snapshot
	return nil
}

func (m *MemoryDB) bind(acquire func() (*memoryState, func())) Repositories {
	r := &memoryRepository{acquire: acquire}
	return Repositories{
		Vaults:     r,
		Assets:     r,
		Accounts:   r,
		Operations: r,
	}
}

// memoryRepository implements every repository interface over one state.
type memoryRepository struct {
	acquire func() (*memoryState, func())
}

// ─── vaults ──────────────────────────────────────────────────────────────────

func (r *memoryRepository) CreateVault(_ context.Context, vault models.VaultRecord) error {
	s, release := r.acquire()
	defer release()

	if _, ok := s.vaults[vault.Address]; ok {
		return ErrVaultAlreadyExists
	}
	for _, v := range s.vaults {
		if v.Administrator == vault.Administrator {
			return ErrVaultAlreadyExists
		}
	}

	s.vaults[vault.Address] = vault
	return nil
}

func (r *memoryRepository) GetVault(_ context.Context, address models.Address) (models.VaultRecord, error) {
	s, release := r.acquire()
	defer release()

	v, ok := s.vaults[address]
	if !ok {
		return models.VaultRecord{}, ErrVaultNotFound
	}
	return v, nil
}

func (r *memoryRepository) GetVaultForUpdate(ctx context.Context, address models.Address) (models.VaultRecord, error) {
	return r.GetVault(ctx, address)
}

func (r *memoryRepository) UpdateConsent(_ context.Context, vault models.VaultRecord) error {
	s, release := r.acquire()
	defer release()

	v, ok := s.vaults[vault.Address]
	if !ok {
		return ErrVaultNotFound
	}

	v.ConsentA = vault.ConsentA
	v.ConsentB = vault.ConsentB
	v.UpdatedAt = vault.UpdatedAt
	s.vaults[vault.Address] = v
	return nil
}

func (r *memoryRepository) SetAsset(_ context.Context, vault, asset, custodyAccount models.Address, updatedAt time.Time) error {
	s, release := r.acquire()
	defer release()

	v, ok := s.vaults[vault]
	if !ok || v.HasAsset() {
		return ErrAssetAlreadyExists
	}

	v.AssetType = asset
	v.CustodyAccount = custodyAccount
	v.UpdatedAt = updatedAt
	s.vaults[vault] = v
	return nil
}

func (r *memoryRepository) ListVaults(_ context.Context) ([]models.VaultRecord, error) {
	s, release := r.acquire()
	defer release()

	vaults := slices.Collect(maps.Values(s.vaults))
	slices.SortFunc(vaults, func(a, b models.VaultRecord) int {
		if c := a.CreatedAt.Compare(b.CreatedAt); c != 0 {
			return c
		}
		return compareAddress(a.Address, b.Address)
	})
	return vaults, nil
}

// ─── assets ──────────────────────────────────────────────────────────────────

func (r *memoryRepository) CreateAsset(_ context.Context, asset models.Asset) error {
	s, release := r.acquire()
	defer release()

	if _, ok := s.assets[asset.Address]; ok {
		return ErrAssetAlreadyExists
	}

	s.assets[asset.Address] = asset
	return nil
}

func (r *memoryRepository) GetAsset(_ context.Context, address models.Address) (models.Asset, error) {
	s, release := r.acquire()
	defer release()

	a, ok := s.assets[address]
	if !ok {
		return models.Asset{}, ErrAssetNotFound
	}
	return a, nil
}

func (r *memoryRepository) UpdateSupply(_ context.Context, address models.Address, supply uint64) error {
	s, release := r.acquire()
	defer release()

	a, ok := s.assets[address]
	if !ok {
		return ErrAssetNotFound
	}

	a.Supply = supply
	s.assets[address] = a
	return nil
}

func (r *memoryRepository) ListAssets(_ context.Context) ([]models.Asset, error) {
	s, release := r.acquire()
	defer release()

	assets := slices.Collect(maps.Values(s.assets))
	slices.SortFunc(assets, func(a, b models.Asset) int {
		if c := a.CreatedAt.Compare(b.CreatedAt); c != 0 {
			return c
		}
		return compareAddress(a.Address, b.Address)
	})
	return assets, nil
}

// ─── accounts ────────────────────────────────────────────────────────────────

func (r *memoryRepository) CreateAccount(_ context.Context, account models.Account) error {
	s, release := r.acquire()
	defer release()

	if _, ok := s.accounts[account.Address]; ok {
		return ErrAccountAlreadyExists
	}

	s.accounts[account.Address] = account
	return nil
}

func (r *memoryRepository) GetAccount(_ context.Context, address models.Address) (models.Account, error) {
	s, release := r.acquire()
	defer release()

	a, ok := s.accounts[address]
	if !ok {
		return models.Account{}, ErrAccountNotFound
	}
	return a, nil
}

func (r *memoryRepository) GetAccountForUpdate(ctx context.Context, address models.Address) (models.Account, error) {
	return r.GetAccount(ctx, address)
}

func (r *memoryRepository) UpdateBalance(_ context.Context, address models.Address, balance uint64, updatedAt time.Time) error {
	s, release := r.acquire()
	defer release()

	a, ok := s.accounts[address]
	if !ok {
		return ErrAccountNotFound
	}

	a.Balance = balance
	a.UpdatedAt = updatedAt
	s.accounts[address] = a
	return nil
}

// ─── operations ──────────────────────────────────────────────────────────────

func (r *memoryRepository) AppendOperation(_ context.Context, operation models.Operation) error {
	s, release := r.acquire()
	defer release()

	s.operations = append(s.operations, operation)
	return nil
}

func (r *memoryRepository) ListOperations(_ context.Context, vault models.Address, limit uint64) ([]models.Operation, error) {
	s, release := r.acquire()
	defer release()

	operations := make([]models.Operation, 0)
	for i := len(s.operations) - 1; i >= 0; i-- {
		if s.operations[i].Vault != vault {
			continue
		}
		operations = append(operations, s.operations[i])
		if limit > 0 && uint64(len(operations)) == limit {
			break
		}
	}
	return operations, nil
}

func compareAddress(a, b models.Address) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
