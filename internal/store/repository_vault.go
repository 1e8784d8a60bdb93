// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/custody-vault/internal/logger"
	"github.com/MKhiriev/custody-vault/models"
)

// vaultRepository is the SQL-backed implementation of [VaultRepository].
type vaultRepository struct {
	sqlRepository
}

// CreateVault inserts a new vault record. A second vault for the same
// administrator fails with [ErrVaultAlreadyExists].
func (r *vaultRepository) CreateVault(ctx context.Context, vault models.VaultRecord) error {
	log := logger.FromContext(ctx)

	query, args, err := r.queries.insertVault(vault)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.q.ExecContext(ctx, query, args...); err != nil {
		if r.isUniqueViolation(err) {
			return ErrVaultAlreadyExists
		}
		log.Err(err).
			Str("func", "vaultRepository.CreateVault").
			Str("vault", vault.Address.String()).
			Msg("failed to insert vault")
		return r.wrap(ErrExecutingQuery, err)
	}

	return nil
}

func (r *vaultRepository) GetVault(ctx context.Context, address models.Address) (models.VaultRecord, error) {
	return r.get(ctx, address, false)
}

// GetVaultForUpdate reads the vault and locks its row until the transaction
// ends.
func (r *vaultRepository) GetVaultForUpdate(ctx context.Context, address models.Address) (models.VaultRecord, error) {
	return r.get(ctx, address, true)
}

func (r *vaultRepository) get(ctx context.Context, address models.Address, forUpdate bool) (models.VaultRecord, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.queries.selectVault(address, forUpdate)
	if err != nil {
		return models.VaultRecord{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	vault, err := scanVault(r.q.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.VaultRecord{}, ErrVaultNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "vaultRepository.get").
			Str("vault", address.String()).
			Bool("for_update", forUpdate).
			Msg("failed to read vault")
		return models.VaultRecord{}, r.wrap(ErrScanningRow, err)
	}

	return vault, nil
}

// UpdateConsent persists both consent flags of vault.
func (r *vaultRepository) UpdateConsent(ctx context.Context, vault models.VaultRecord) error {
	query, args, err := r.queries.updateConsent(vault)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	err = r.execUpdate(ctx, query, args)
	if errors.Is(err, ErrNothingUpdated) {
		return ErrVaultNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "vaultRepository.UpdateConsent").
			Str("vault", vault.Address.String()).
			Msg("failed to update consent")
	}

	return err
}

// SetAsset records the asset type and custody account of a vault. It only
// succeeds once: a vault that already has an asset is left untouched and
// [ErrAssetAlreadyExists] is returned.
func (r *vaultRepository) SetAsset(ctx context.Context, vault, asset, custodyAccount models.Address, updatedAt time.Time) error {
	query, args, err := r.queries.setVaultAsset(vault, asset, custodyAccount, updatedAt)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	err = r.execUpdate(ctx, query, args)
	if errors.Is(err, ErrNothingUpdated) {
		return ErrAssetAlreadyExists
	}

	return err
}

func (r *vaultRepository) ListVaults(ctx context.Context) ([]models.VaultRecord, error) {
	query, args, err := r.queries.listVaults()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, r.wrap(ErrExecutingQuery, err)
	}
	defer rows.Close()

	vaults := make([]models.VaultRecord, 0)
	for rows.Next() {
		vault, scanErr := scanVault(rows)
		if scanErr != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
		}
		vaults = append(vaults, vault)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return vaults, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanVault(row rowScanner) (models.VaultRecord, error) {
	var v models.VaultRecord
	err := row.Scan(
		&v.Address,
		&v.Administrator,
		&v.ApproverA,
		&v.ApproverB,
		&v.ConsentA,
		&v.ConsentB,
		&v.AssetType,
		&v.CustodyAccount,
		&v.CreatedAt,
		&v.UpdatedAt,
	)
	return v, err
}
