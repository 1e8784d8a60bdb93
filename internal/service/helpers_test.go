// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"crypto/ed25519"
	"testing"

	"github.com/MKhiriev/custody-vault/internal/config"
	"github.com/MKhiriev/custody-vault/internal/logger"
	"github.com/MKhiriev/custody-vault/internal/metrics"
	"github.com/MKhiriev/custody-vault/internal/store"
	"github.com/MKhiriev/custody-vault/models"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
)

type party struct {
	key  ed25519.PrivateKey
	addr models.Address
}

func newParty(t *testing.T) party {
	t.Helper()

	pub, priv, err := ed25519.GenerateKey(nil)
	require.NoError(t, err)
	return party{key: priv, addr: models.AddressFromPublicKey(pub)}
}

// fixture is a provisioned vault with its asset minted into custody.
type fixture struct {
	svc      *vaultService
	storages *store.Storages
	metrics  *metrics.CustodyMetrics

	admin     party
	approverA party
	approverB party

	vault   models.Address
	asset   models.Asset
	custody models.Address
}

func newFixture(t *testing.T, supply uint64) *fixture {
	t.Helper()
	return newFixtureWithStorages(t, store.NewMemoryStorages(), supply)
}

func newFixtureWithStorages(t *testing.T, storages *store.Storages, supply uint64) *fixture {
	t.Helper()
	ctx := context.Background()

	m := metrics.NewCustodyMetrics(prometheus.NewRegistry())
	svc, err := NewVaultService(storages, config.Vault{InitialSupply: supply, AssetCacheSize: 8}, m, logger.Nop())
	require.NoError(t, err)

	f := &fixture{
		svc:       svc.(*vaultService),
		storages:  storages,
		metrics:   m,
		admin:     newParty(t),
		approverA: newParty(t),
		approverB: newParty(t),
	}

	view, err := f.svc.ProvisionVault(ctx, models.ProvisionVaultRequest{
		Caller:    f.admin.addr,
		ApproverA: f.approverA.addr,
		ApproverB: f.approverB.addr,
	})
	require.NoError(t, err)
	f.vault = view.Address

	f.asset, err = f.svc.ProvisionAsset(ctx, models.ProvisionAssetRequest{
		Vault:  f.vault,
		Caller: f.admin.addr,
		Name:   "Test Token",
		Symbol: "TST",
	})
	require.NoError(t, err)

	record, err := storages.Vaults.GetVault(ctx, f.vault)
	require.NoError(t, err)
	f.custody = record.CustodyAccount

	return f
}

// openAccount opens an account of the fixture asset for a fresh holder.
func (f *fixture) openAccount(t *testing.T) (party, models.Address) {
	t.Helper()

	holder := newParty(t)
	view, err := f.svc.OpenAccount(context.Background(), models.OpenAccountRequest{Caller: holder.addr, Asset: f.asset.Address})
	require.NoError(t, err)
	return holder, view.Address
}

func (f *fixture) approveBoth(t *testing.T) {
	t.Helper()
	ctx := context.Background()

	_, err := f.svc.GrantConsent(ctx, models.ConsentRequest{Vault: f.vault, Caller: f.approverA.addr})
	require.NoError(t, err)
	_, err = f.svc.GrantConsent(ctx, models.ConsentRequest{Vault: f.vault, Caller: f.approverB.addr})
	require.NoError(t, err)
}

// fund withdraws amount from custody into account with a fresh approval.
func (f *fixture) fund(t *testing.T, account models.Address, amount uint64) {
	t.Helper()

	f.approveBoth(t)
	_, err := f.svc.Withdraw(context.Background(), models.WithdrawRequest{
		Vault:       f.vault,
		Caller:      f.admin.addr,
		Amount:      amount,
		Destination: account,
	})
	require.NoError(t, err)
}

func (f *fixture) balance(t *testing.T, account models.Address) uint64 {
	t.Helper()

	acc, err := f.storages.Accounts.GetAccount(context.Background(), account)
	require.NoError(t, err)
	return acc.Balance
}

func (f *fixture) record(t *testing.T) models.VaultRecord {
	t.Helper()

	record, err := f.storages.Vaults.GetVault(context.Background(), f.vault)
	require.NoError(t, err)
	return record
}

func (f *fixture) supply(t *testing.T) uint64 {
	t.Helper()

	asset, err := f.storages.Assets.GetAsset(context.Background(), f.asset.Address)
	require.NoError(t, err)
	return asset.Supply
}
