// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/custody-vault/models"
)

var (
	vaultColumns = []string{
		"address", "administrator", "approver_a", "approver_b",
		"consent_a", "consent_b", "asset_type", "custody_account",
		"created_at", "updated_at",
	}
	assetColumns = []string{
		"address", "vault", "name", "symbol", "decimals", "supply", "created_at",
	}
	accountColumns = []string{
		"address", "owner", "asset", "balance", "created_at", "updated_at",
	}
	operationColumns = []string{
		"id", "vault", "kind", "caller", "source", "destination", "amount", "created_at",
	}
)

// queries builds the SQL statements for one dialect.
type queries struct {
	sb   sq.StatementBuilderType
	lock string
}

func newQueries(d dialect) queries {
	return queries{
		sb:   sq.StatementBuilder.PlaceholderFormat(d.placeholder),
		lock: d.lockSuffix,
	}
}

func (q queries) selectOne(table string, columns []string, address models.Address, forUpdate bool) (string, []any, error) {
	b := q.sb.Select(columns...).
		From(table).
		Where(sq.Eq{"address": string(address)})
	if forUpdate && q.lock != "" {
		b = b.Suffix(q.lock)
	}
	return b.ToSql()
}

// ─── vaults ──────────────────────────────────────────────────────────────────

func (q queries) insertVault(v models.VaultRecord) (string, []any, error) {
	return q.sb.Insert(models.VaultRecord{}.TableName()).
		Columns(vaultColumns...).
		Values(
			string(v.Address), string(v.Administrator), string(v.ApproverA), string(v.ApproverB),
			v.ConsentA, v.ConsentB, string(v.AssetType), string(v.CustodyAccount),
			v.CreatedAt, v.UpdatedAt,
		).
		ToSql()
}

func (q queries) selectVault(address models.Address, forUpdate bool) (string, []any, error) {
	return q.selectOne(models.VaultRecord{}.TableName(), vaultColumns, address, forUpdate)
}

func (q queries) updateConsent(v models.VaultRecord) (string, []any, error) {
	return q.sb.Update(models.VaultRecord{}.TableName()).
		Set("consent_a", v.ConsentA).
		Set("consent_b", v.ConsentB).
		Set("updated_at", v.UpdatedAt).
		Where(sq.Eq{"address": string(v.Address)}).
		ToSql()
}

func (q queries) setVaultAsset(vault, asset, custody models.Address, updatedAt time.Time) (string, []any, error) {
	return q.sb.Update(models.VaultRecord{}.TableName()).
		Set("asset_type", string(asset)).
		Set("custody_account", string(custody)).
		Set("updated_at", updatedAt).
		Where(sq.Eq{"address": string(vault), "asset_type": ""}).
		ToSql()
}

func (q queries) listVaults() (string, []any, error) {
	return q.sb.Select(vaultColumns...).
		From(models.VaultRecord{}.TableName()).
		OrderBy("created_at", "address").
		ToSql()
}

// ─── assets ──────────────────────────────────────────────────────────────────

func (q queries) insertAsset(a models.Asset) (string, []any, error) {
	return q.sb.Insert(models.Asset{}.TableName()).
		Columns(assetColumns...).
		Values(string(a.Address), string(a.Vault), a.Name, a.Symbol, a.Decimals, int64(a.Supply), a.CreatedAt).
		ToSql()
}

func (q queries) selectAsset(address models.Address) (string, []any, error) {
	return q.selectOne(models.Asset{}.TableName(), assetColumns, address, false)
}

func (q queries) updateSupply(address models.Address, supply uint64) (string, []any, error) {
	return q.sb.Update(models.Asset{}.TableName()).
		Set("supply", int64(supply)).
		Where(sq.Eq{"address": string(address)}).
		ToSql()
}

func (q queries) listAssets() (string, []any, error) {
	return q.sb.Select(assetColumns...).
		From(models.Asset{}.TableName()).
		OrderBy("created_at", "address").
		ToSql()
}

// ─── accounts ────────────────────────────────────────────────────────────────

func (q queries) insertAccount(a models.Account) (string, []any, error) {
	return q.sb.Insert(models.Account{}.TableName()).
		Columns(accountColumns...).
		Values(string(a.Address), string(a.Owner), string(a.Asset), int64(a.Balance), a.CreatedAt, a.UpdatedAt).
		ToSql()
}

func (q queries) selectAccount(address models.Address, forUpdate bool) (string, []any, error) {
	return q.selectOne(models.Account{}.TableName(), accountColumns, address, forUpdate)
}

func (q queries) updateBalance(address models.Address, balance uint64, updatedAt time.Time) (string, []any, error) {
	return q.sb.Update(models.Account{}.TableName()).
		Set("balance", int64(balance)).
		Set("updated_at", updatedAt).
		Where(sq.Eq{"address": string(address)}).
		ToSql()
}

// ─── operations ──────────────────────────────────────────────────────────────

func (q queries) insertOperation(o models.Operation) (string, []any, error) {
	return q.sb.Insert(models.Operation{}.TableName()).
		Columns(operationColumns...).
		Values(
			o.ID, string(o.Vault), string(o.Kind), string(o.Caller),
			string(o.Source), string(o.Destination), int64(o.Amount), o.CreatedAt,
		).
		ToSql()
}

// listOperations returns the newest entries first.
func (q queries) listOperations(vault models.Address, limit uint64) (string, []any, error) {
	b := q.sb.Select(operationColumns...).
		From(models.Operation{}.TableName()).
		Where(sq.Eq{"vault": string(vault)}).
		OrderBy("created_at DESC", "id DESC")
	if limit > 0 {
		b = b.Limit(limit)
	}
	return b.ToSql()
}
