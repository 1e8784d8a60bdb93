//go:build cgo

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"path/filepath"
	"sync"
	"testing"

	"github.com/MKhiriev/custody-vault/internal/config"
	"github.com/MKhiriev/custody-vault/internal/logger"
	"github.com/MKhiriev/custody-vault/internal/store"
	"github.com/MKhiriev/custody-vault/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newSQLiteFixture provisions the fixture vault in a fresh SQLite file so the
// custody path runs against real row locks and transactions.
func newSQLiteFixture(t *testing.T, supply uint64) *fixture {
	t.Helper()

	dsn := "file:" + filepath.Join(t.TempDir(), "vault.db")
	storages, err := store.NewStorages(context.Background(), config.DB{DSN: dsn}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = storages.Close() })

	return newFixtureWithStorages(t, storages, supply)
}

// ─────────────────────────────────────────────────────────────────────────────
// Custody on SQLite
// ─────────────────────────────────────────────────────────────────────────────

func TestSQLite_WithdrawBothApprove(t *testing.T) {
	ctx := context.Background()
	f := newSQLiteFixture(t, testSupply)
	_, recipient := f.openAccount(t)
	f.approveBoth(t)

	op, err := f.svc.Withdraw(ctx, models.WithdrawRequest{
		Vault: f.vault, Caller: f.admin.addr, Amount: 100, Destination: recipient,
	})
	require.NoError(t, err)
	assert.Equal(t, models.OperationWithdraw, op.Kind)

	assert.Equal(t, uint64(100), f.balance(t, recipient))
	assert.Equal(t, uint64(testSupply-100), f.balance(t, f.custody))

	record := f.record(t)
	assert.False(t, record.ConsentA || record.ConsentB, "consent is consumed")

	history, err := f.svc.ListOperations(ctx, models.OperationsQuery{Vault: f.vault, Limit: 10})
	require.NoError(t, err)
	ids := make([]string, 0, len(history))
	for _, h := range history {
		ids = append(ids, h.ID)
	}
	assert.Contains(t, ids, op.ID)
}

func TestSQLite_WithdrawOneApprovalOnly(t *testing.T) {
	ctx := context.Background()
	f := newSQLiteFixture(t, testSupply)
	_, recipient := f.openAccount(t)

	_, err := f.svc.GrantConsent(ctx, models.ConsentRequest{Vault: f.vault, Caller: f.approverA.addr})
	require.NoError(t, err)

	_, err = f.svc.Withdraw(ctx, models.WithdrawRequest{
		Vault: f.vault, Caller: f.admin.addr, Amount: 100, Destination: recipient,
	})
	require.ErrorIs(t, err, ErrInsufficientConsent)

	record := f.record(t)
	assert.True(t, record.ConsentA, "a rejected attempt keeps consent")
	assert.False(t, record.ConsentB)
	assert.Equal(t, uint64(0), f.balance(t, recipient))
}

func TestSQLite_TransferPeerToPeer(t *testing.T) {
	f := newSQLiteFixture(t, testSupply)
	sender, from := f.openAccount(t)
	_, to := f.openAccount(t)
	f.fund(t, from, 100)
	f.approveBoth(t)

	_, err := f.svc.Transfer(context.Background(), models.TransferRequest{
		Vault: f.vault, Caller: sender.addr, Amount: 30, Source: from, Destination: to,
	})
	require.NoError(t, err)

	assert.Equal(t, uint64(70), f.balance(t, from))
	assert.Equal(t, uint64(30), f.balance(t, to))
}

func TestSQLite_BurnLowersSupply(t *testing.T) {
	f := newSQLiteFixture(t, testSupply)
	holder, account := f.openAccount(t)
	f.fund(t, account, 50)
	f.approveBoth(t)

	_, err := f.svc.Burn(context.Background(), models.BurnRequest{
		Vault: f.vault, Caller: holder.addr, Amount: 50, Target: account,
	})
	require.NoError(t, err)

	assert.Equal(t, uint64(0), f.balance(t, account))
	assert.Equal(t, uint64(testSupply-50), f.supply(t))
}

func TestSQLite_ConcurrentDoubleSpend(t *testing.T) {
	ctx := context.Background()
	f := newSQLiteFixture(t, testSupply)
	_, recipient := f.openAccount(t)
	f.approveBoth(t)

	const attempts = 8
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		succeeded int
		rejected  int
	)
	for range attempts {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := f.svc.Withdraw(ctx, models.WithdrawRequest{
				Vault: f.vault, Caller: f.admin.addr, Amount: 10, Destination: recipient,
			})

			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				succeeded++
			case assert.ErrorIs(t, err, ErrInsufficientConsent):
				rejected++
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, succeeded)
	assert.Equal(t, attempts-1, rejected)
	assert.Equal(t, uint64(10), f.balance(t, recipient))
	assert.Equal(t, uint64(testSupply-10), f.balance(t, f.custody))
}
