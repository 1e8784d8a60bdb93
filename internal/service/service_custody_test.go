// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"math"
	"sync"
	"testing"

	"github.com/MKhiriev/custody-vault/internal/metrics"
	"github.com/MKhiriev/custody-vault/internal/store"
	"github.com/MKhiriev/custody-vault/models"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSupply = 1_000_000

// ─────────────────────────────────────────────────────────────────────────────
// Withdraw
// ─────────────────────────────────────────────────────────────────────────────

func TestWithdraw_BothApprove(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, testSupply)
	_, recipient := f.openAccount(t)

	f.approveBoth(t)
	op, err := f.svc.Withdraw(ctx, models.WithdrawRequest{
		Vault:       f.vault,
		Caller:      f.admin.addr,
		Amount:      100,
		Destination: recipient,
	})
	require.NoError(t, err)

	assert.Equal(t, models.OperationWithdraw, op.Kind)
	assert.Equal(t, f.custody, op.Source)
	assert.Equal(t, recipient, op.Destination)
	assert.Equal(t, uint64(100), op.Amount)

	assert.Equal(t, uint64(100), f.balance(t, recipient))
	assert.Equal(t, uint64(testSupply-100), f.balance(t, f.custody))

	record := f.record(t)
	assert.False(t, record.ConsentA, "consent is single-use")
	assert.False(t, record.ConsentB, "consent is single-use")

	assert.Equal(t, 1.0, testutil.ToFloat64(f.metrics.Operations.WithLabelValues("withdraw", metrics.ResultOK)))
	assert.Equal(t, 100.0, testutil.ToFloat64(f.metrics.Volume.WithLabelValues("withdraw")))
}

func TestWithdraw_OneApprovalOnly(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, testSupply)
	_, recipient := f.openAccount(t)

	_, err := f.svc.GrantConsent(ctx, models.ConsentRequest{Vault: f.vault, Caller: f.approverA.addr})
	require.NoError(t, err)

	_, err = f.svc.Withdraw(ctx, models.WithdrawRequest{
		Vault:       f.vault,
		Caller:      f.admin.addr,
		Amount:      100,
		Destination: recipient,
	})
	require.ErrorIs(t, err, ErrInsufficientConsent)

	assert.Equal(t, uint64(0), f.balance(t, recipient))
	assert.Equal(t, uint64(testSupply), f.balance(t, f.custody))

	record := f.record(t)
	assert.True(t, record.ConsentA, "a rejected attempt keeps consent")
	assert.False(t, record.ConsentB)
}

func TestWithdraw_NoApproval(t *testing.T) {
	f := newFixture(t, testSupply)
	_, recipient := f.openAccount(t)

	_, err := f.svc.Withdraw(context.Background(), models.WithdrawRequest{
		Vault: f.vault, Caller: f.admin.addr, Amount: 1, Destination: recipient,
	})
	require.ErrorIs(t, err, ErrInsufficientConsent)
}

func TestWithdraw_RejectedByRole(t *testing.T) {
	f := newFixture(t, testSupply)
	holder, recipient := f.openAccount(t)
	f.approveBoth(t)

	for name, caller := range map[string]models.Address{
		"approver A": f.approverA.addr,
		"approver B": f.approverB.addr,
		"holder":     holder.addr,
	} {
		t.Run(name, func(t *testing.T) {
			_, err := f.svc.Withdraw(context.Background(), models.WithdrawRequest{
				Vault: f.vault, Caller: caller, Amount: 10, Destination: recipient,
			})
			require.ErrorIs(t, err, ErrUnauthorized)
		})
	}

	record := f.record(t)
	assert.True(t, record.ConsentA && record.ConsentB, "unauthorized attempts keep consent")
	assert.Equal(t, uint64(0), f.balance(t, recipient))
}

func TestWithdraw_InsufficientBalanceKeepsConsent(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, 500)
	_, recipient := f.openAccount(t)
	f.approveBoth(t)

	_, err := f.svc.Withdraw(ctx, models.WithdrawRequest{
		Vault: f.vault, Caller: f.admin.addr, Amount: 501, Destination: recipient,
	})
	require.ErrorIs(t, err, ErrInsufficientBalance)

	record := f.record(t)
	require.True(t, record.ConsentA && record.ConsentB)

	_, err = f.svc.Withdraw(ctx, models.WithdrawRequest{
		Vault: f.vault, Caller: f.admin.addr, Amount: 500, Destination: recipient,
	})
	require.NoError(t, err, "the retained approval is still usable")
	assert.Equal(t, uint64(500), f.balance(t, recipient))
	assert.Equal(t, uint64(0), f.balance(t, f.custody))
}

func TestWithdraw_InvalidAmount(t *testing.T) {
	f := newFixture(t, testSupply)
	_, recipient := f.openAccount(t)
	f.approveBoth(t)

	for _, amount := range []uint64{0, math.MaxInt64 + 1, math.MaxUint64} {
		_, err := f.svc.Withdraw(context.Background(), models.WithdrawRequest{
			Vault: f.vault, Caller: f.admin.addr, Amount: amount, Destination: recipient,
		})
		require.ErrorIs(t, err, ErrInvalidAmount, "amount %d", amount)
	}

	record := f.record(t)
	assert.True(t, record.ConsentA && record.ConsentB)
}

func TestWithdraw_ToCustodyAccount(t *testing.T) {
	f := newFixture(t, testSupply)
	f.approveBoth(t)

	_, err := f.svc.Withdraw(context.Background(), models.WithdrawRequest{
		Vault: f.vault, Caller: f.admin.addr, Amount: 1, Destination: f.custody,
	})
	require.ErrorIs(t, err, ErrSameAccount)
}

func TestWithdraw_UnknownDestination(t *testing.T) {
	f := newFixture(t, testSupply)
	f.approveBoth(t)

	_, err := f.svc.Withdraw(context.Background(), models.WithdrawRequest{
		Vault: f.vault, Caller: f.admin.addr, Amount: 1, Destination: newParty(t).addr,
	})
	require.ErrorIs(t, err, store.ErrAccountNotFound)
}

func TestWithdraw_WithoutConsentRevealsNothing(t *testing.T) {
	f := newFixture(t, testSupply)

	for name, destination := range map[string]models.Address{
		"unknown destination": newParty(t).addr,
		"custody account":     f.custody,
	} {
		t.Run(name, func(t *testing.T) {
			_, err := f.svc.Withdraw(context.Background(), models.WithdrawRequest{
				Vault: f.vault, Caller: f.admin.addr, Amount: 1, Destination: destination,
			})
			require.ErrorIs(t, err, ErrInsufficientConsent)
		})
	}
	assert.Equal(t, uint64(testSupply), f.balance(t, f.custody))
}

func TestWithdraw_AssetMismatch(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, testSupply)
	other := newFixtureWithStorages(t, f.storages, testSupply)
	_, foreign := other.openAccount(t)
	f.approveBoth(t)

	_, err := f.svc.Withdraw(ctx, models.WithdrawRequest{
		Vault: f.vault, Caller: f.admin.addr, Amount: 1, Destination: foreign,
	})
	require.ErrorIs(t, err, ErrAssetMismatch)
}

func TestWithdraw_DestinationOverflow(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, testSupply)
	_, recipient := f.openAccount(t)
	require.NoError(t, f.storages.Accounts.UpdateBalance(ctx, recipient, math.MaxInt64, f.svc.now()))
	f.approveBoth(t)

	_, err := f.svc.Withdraw(ctx, models.WithdrawRequest{
		Vault: f.vault, Caller: f.admin.addr, Amount: 1, Destination: recipient,
	})
	require.ErrorIs(t, err, ErrInvalidAmount)
	assert.Equal(t, uint64(testSupply), f.balance(t, f.custody))
}

func TestWithdraw_AssetNotProvisioned(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, testSupply)

	admin, a, b := newParty(t), newParty(t), newParty(t)
	view, err := f.svc.ProvisionVault(ctx, models.ProvisionVaultRequest{Caller: admin.addr, ApproverA: a.addr, ApproverB: b.addr})
	require.NoError(t, err)

	_, err = f.svc.Withdraw(ctx, models.WithdrawRequest{
		Vault: view.Address, Caller: admin.addr, Amount: 1, Destination: f.custody,
	})
	require.ErrorIs(t, err, ErrAssetNotProvisioned)
}

// ─────────────────────────────────────────────────────────────────────────────
// Transfer
// ─────────────────────────────────────────────────────────────────────────────

func TestTransfer_PeerToPeer(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, testSupply)
	sender, from := f.openAccount(t)
	_, to := f.openAccount(t)
	f.fund(t, from, 100)

	f.approveBoth(t)
	op, err := f.svc.Transfer(ctx, models.TransferRequest{
		Vault:       f.vault,
		Caller:      sender.addr,
		Amount:      30,
		Source:      from,
		Destination: to,
	})
	require.NoError(t, err)
	assert.Equal(t, models.OperationTransfer, op.Kind)

	assert.Equal(t, uint64(70), f.balance(t, from))
	assert.Equal(t, uint64(30), f.balance(t, to))
	assert.Equal(t, uint64(testSupply),
		f.balance(t, from)+f.balance(t, to)+f.balance(t, f.custody), "transfers conserve value")
	assert.Equal(t, uint64(testSupply), f.supply(t))

	record := f.record(t)
	assert.False(t, record.ConsentA || record.ConsentB)
}

func TestTransfer_NotOwner(t *testing.T) {
	f := newFixture(t, testSupply)
	_, from := f.openAccount(t)
	thief, to := f.openAccount(t)
	f.fund(t, from, 100)
	f.approveBoth(t)

	_, err := f.svc.Transfer(context.Background(), models.TransferRequest{
		Vault: f.vault, Caller: thief.addr, Amount: 10, Source: from, Destination: to,
	})
	require.ErrorIs(t, err, ErrUnauthorized)
	assert.Equal(t, uint64(100), f.balance(t, from))
}

func TestTransfer_FromCustodyIsNotAllowed(t *testing.T) {
	f := newFixture(t, testSupply)
	_, to := f.openAccount(t)
	f.approveBoth(t)

	_, err := f.svc.Transfer(context.Background(), models.TransferRequest{
		Vault: f.vault, Caller: f.admin.addr, Amount: 10, Source: f.custody, Destination: to,
	})
	require.ErrorIs(t, err, ErrUnauthorized)
}

func TestTransfer_BackIntoCustody(t *testing.T) {
	f := newFixture(t, testSupply)
	holder, from := f.openAccount(t)
	f.fund(t, from, 40)
	f.approveBoth(t)

	_, err := f.svc.Transfer(context.Background(), models.TransferRequest{
		Vault: f.vault, Caller: holder.addr, Amount: 40, Source: from, Destination: f.custody,
	})
	require.NoError(t, err)
	assert.Equal(t, uint64(testSupply), f.balance(t, f.custody))
}

func TestTransfer_SameAccount(t *testing.T) {
	f := newFixture(t, testSupply)
	holder, from := f.openAccount(t)
	f.approveBoth(t)

	_, err := f.svc.Transfer(context.Background(), models.TransferRequest{
		Vault: f.vault, Caller: holder.addr, Amount: 1, Source: from, Destination: from,
	})
	require.ErrorIs(t, err, ErrSameAccount)
}

func TestTransfer_WithoutConsentChecksNothingElse(t *testing.T) {
	f := newFixture(t, testSupply)
	holder, from := f.openAccount(t)
	stranger, _ := f.openAccount(t)
	_, to := f.openAccount(t)
	f.fund(t, from, 100)

	tests := []struct {
		name    string
		request models.TransferRequest
	}{
		{
			name:    "same account",
			request: models.TransferRequest{Caller: holder.addr, Amount: 1, Source: from, Destination: from},
		},
		{
			name:    "unknown destination",
			request: models.TransferRequest{Caller: holder.addr, Amount: 1, Source: from, Destination: newParty(t).addr},
		},
		{
			name:    "not the owner",
			request: models.TransferRequest{Caller: stranger.addr, Amount: 1, Source: from, Destination: to},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.request.Vault = f.vault
			_, err := f.svc.Transfer(context.Background(), tt.request)
			require.ErrorIs(t, err, ErrInsufficientConsent)
		})
	}
	assert.Equal(t, uint64(100), f.balance(t, from))
}

func TestTransfer_WithoutConsent(t *testing.T) {
	f := newFixture(t, testSupply)
	sender, from := f.openAccount(t)
	_, to := f.openAccount(t)
	f.fund(t, from, 100)

	_, err := f.svc.Transfer(context.Background(), models.TransferRequest{
		Vault: f.vault, Caller: sender.addr, Amount: 30, Source: from, Destination: to,
	})
	require.ErrorIs(t, err, ErrInsufficientConsent)
	assert.Equal(t, uint64(100), f.balance(t, from))
	assert.Equal(t, uint64(0), f.balance(t, to))
}

// ─────────────────────────────────────────────────────────────────────────────
// Burn
// ─────────────────────────────────────────────────────────────────────────────

func TestBurn_HolderBurnsEverything(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, testSupply)
	holder, account := f.openAccount(t)
	f.fund(t, account, 50)

	f.approveBoth(t)
	op, err := f.svc.Burn(ctx, models.BurnRequest{
		Vault:  f.vault,
		Caller: holder.addr,
		Amount: 50,
		Target: account,
	})
	require.NoError(t, err)
	assert.Equal(t, models.OperationBurn, op.Kind)
	assert.True(t, op.Destination.IsZero())

	assert.Equal(t, uint64(0), f.balance(t, account))
	assert.Equal(t, uint64(testSupply-50), f.supply(t))

	record := f.record(t)
	assert.False(t, record.ConsentA || record.ConsentB)
}

func TestBurn_AdministratorBurnsFromCustody(t *testing.T) {
	f := newFixture(t, testSupply)
	f.approveBoth(t)

	_, err := f.svc.Burn(context.Background(), models.BurnRequest{
		Vault: f.vault, Caller: f.admin.addr, Amount: 1000, Target: f.custody,
	})
	require.NoError(t, err)

	assert.Equal(t, uint64(testSupply-1000), f.balance(t, f.custody))
	assert.Equal(t, uint64(testSupply-1000), f.supply(t))
}

func TestBurn_AdministratorCannotBurnHolderFunds(t *testing.T) {
	f := newFixture(t, testSupply)
	_, account := f.openAccount(t)
	f.fund(t, account, 50)
	f.approveBoth(t)

	_, err := f.svc.Burn(context.Background(), models.BurnRequest{
		Vault: f.vault, Caller: f.admin.addr, Amount: 50, Target: account,
	})
	require.ErrorIs(t, err, ErrUnauthorized)
	assert.Equal(t, uint64(50), f.balance(t, account))
}

func TestBurn_MoreThanBalance(t *testing.T) {
	f := newFixture(t, testSupply)
	holder, account := f.openAccount(t)
	f.fund(t, account, 50)
	f.approveBoth(t)

	_, err := f.svc.Burn(context.Background(), models.BurnRequest{
		Vault: f.vault, Caller: holder.addr, Amount: 51, Target: account,
	})
	require.ErrorIs(t, err, ErrInsufficientBalance)
	assert.Equal(t, uint64(testSupply), f.supply(t))
}

// ─────────────────────────────────────────────────────────────────────────────
// Concurrency
// ─────────────────────────────────────────────────────────────────────────────

// TestCustody_ConcurrentDoubleSpend races custody operations after a single
// dual approval: exactly one may succeed.
func TestCustody_ConcurrentDoubleSpend(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, testSupply)
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
}
