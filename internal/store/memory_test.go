// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/custody-vault/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryDB_VaultLifecycle(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStorages()
	v := testVault()

	require.NoError(t, s.Vaults.CreateVault(ctx, v))
	require.ErrorIs(t, s.Vaults.CreateVault(ctx, v), ErrVaultAlreadyExists)

	other := v
	other.Address = qAccount
	require.ErrorIs(t, s.Vaults.CreateVault(ctx, other), ErrVaultAlreadyExists, "one vault per administrator")

	v.ConsentA = true
	require.NoError(t, s.Vaults.UpdateConsent(ctx, v))

	got, err := s.Vaults.GetVault(ctx, qVault)
	require.NoError(t, err)
	assert.True(t, got.ConsentA)

	require.NoError(t, s.Vaults.SetAsset(ctx, qVault, qAsset, qAccount, testNow))
	require.ErrorIs(t, s.Vaults.SetAsset(ctx, qVault, qAsset, qAccount, testNow), ErrAssetAlreadyExists)

	_, err = s.Vaults.GetVault(ctx, qAdmin)
	require.ErrorIs(t, err, ErrVaultNotFound)
}

func TestMemoryDB_InTxRollsBackOnError(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStorages()
	require.NoError(t, s.Vaults.CreateVault(ctx, testVault()))

	fnErr := errors.New("rejected")
	err := s.InTx(ctx, func(ctx context.Context, repos Repositories) error {
		v, err := repos.Vaults.GetVaultForUpdate(ctx, qVault)
		require.NoError(t, err)
		v.ConsentA, v.ConsentB = true, true
		require.NoError(t, repos.Vaults.UpdateConsent(ctx, v))
		require.NoError(t, repos.Operations.AppendOperation(ctx, models.Operation{ID: "x", Vault: qVault}))
		return fnErr
	})
	require.ErrorIs(t, err, fnErr)

	v, err := s.Vaults.GetVault(ctx, qVault)
	require.NoError(t, err)
	assert.False(t, v.ConsentA)
	assert.False(t, v.ConsentB)

	ops, err := s.Operations.ListOperations(ctx, qVault, 0)
	require.NoError(t, err)
	assert.Empty(t, ops)
}

func TestMemoryDB_InTxCommits(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStorages()

	err := s.InTx(ctx, func(ctx context.Context, repos Repositories) error {
		if err := repos.Vaults.CreateVault(ctx, testVault()); err != nil {
			return err
		}
		return repos.Assets.CreateAsset(ctx, models.Asset{Address: qAsset, Vault: qVault, Supply: 10})
	})
	require.NoError(t, err)

	a, err := s.Assets.GetAsset(ctx, qAsset)
	require.NoError(t, err)
	assert.Equal(t, uint64(10), a.Supply)
}

func TestMemoryDB_InTxHonoursCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	called := false
	err := NewMemoryDB().InTx(ctx, func(ctx context.Context, repos Repositories) error {
		called = true
		return nil
	})
	require.ErrorIs(t, err, context.Canceled)
	assert.False(t, called)
}

func TestMemoryDB_Accounts(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStorages()
	acc := models.Account{Address: qAccount, Owner: qAdmin, Asset: qAsset, Balance: 5}

	require.NoError(t, s.Accounts.CreateAccount(ctx, acc))
	require.ErrorIs(t, s.Accounts.CreateAccount(ctx, acc), ErrAccountAlreadyExists)

	later := testNow.Add(time.Minute)
	require.NoError(t, s.Accounts.UpdateBalance(ctx, qAccount, 42, later))

	got, err := s.Accounts.GetAccountForUpdate(ctx, qAccount)
	require.NoError(t, err)
	assert.Equal(t, uint64(42), got.Balance)
	assert.Equal(t, later, got.UpdatedAt)

	require.ErrorIs(t, s.Accounts.UpdateBalance(ctx, qVault, 1, later), ErrAccountNotFound)
}

func TestMemoryDB_ListOperationsNewestFirst(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStorages()

	for i, id := range []string{"a", "b", "c"} {
		require.NoError(t, s.Operations.AppendOperation(ctx, models.Operation{
			ID:        id,
			Vault:     qVault,
			CreatedAt: testNow.Add(time.Duration(i) * time.Second),
		}))
	}
	require.NoError(t, s.Operations.AppendOperation(ctx, models.Operation{ID: "other", Vault: qAdmin}))

	ops, err := s.Operations.ListOperations(ctx, qVault, 2)
	require.NoError(t, err)
	require.Len(t, ops, 2)
	assert.Equal(t, "c", ops[0].ID)
	assert.Equal(t, "b", ops[1].ID)

	all, err := s.Operations.ListOperations(ctx, qVault, 0)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestNewStorages_Memory(t *testing.T) {
	s, err := NewStorages(context.Background(), configDB("memory://"), nopLogger())
	require.NoError(t, err)
	require.NotNil(t, s.Transactor)
	require.NoError(t, s.Close())
}

func TestNewStorages_UnsupportedScheme(t *testing.T) {
	_, err := NewStorages(context.Background(), configDB("mysql://root@localhost/db"), nopLogger())
	require.ErrorIs(t, err, ErrUnsupportedDSN)
}
