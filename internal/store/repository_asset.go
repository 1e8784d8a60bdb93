// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/custody-vault/internal/logger"
	"github.com/MKhiriev/custody-vault/models"
)

// assetRepository is the SQL-backed implementation of [AssetRepository].
type assetRepository struct {
	sqlRepository
}

func (r *assetRepository) CreateAsset(ctx context.Context, asset models.Asset) error {
	query, args, err := r.queries.insertAsset(asset)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.q.ExecContext(ctx, query, args...); err != nil {
		if r.isUniqueViolation(err) {
			return ErrAssetAlreadyExists
		}
		logger.FromContext(ctx).Err(err).
			Str("func", "assetRepository.CreateAsset").
			Str("asset", asset.Address.String()).
			Msg("failed to insert asset")
		return r.wrap(ErrExecutingQuery, err)
	}

	return nil
}

func (r *assetRepository) GetAsset(ctx context.Context, address models.Address) (models.Asset, error) {
	query, args, err := r.queries.selectAsset(address)
	if err != nil {
		return models.Asset{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	asset, err := scanAsset(r.q.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Asset{}, ErrAssetNotFound
	}
	if err != nil {
		return models.Asset{}, r.wrap(ErrScanningRow, err)
	}

	return asset, nil
}

func (r *assetRepository) UpdateSupply(ctx context.Context, address models.Address, supply uint64) error {
	query, args, err := r.queries.updateSupply(address, supply)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	err = r.execUpdate(ctx, query, args)
	if errors.Is(err, ErrNothingUpdated) {
		return ErrAssetNotFound
	}

	return err
}

func (r *assetRepository) ListAssets(ctx context.Context) ([]models.Asset, error) {
	query, args, err := r.queries.listAssets()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, r.wrap(ErrExecutingQuery, err)
	}
	defer rows.Close()

	assets := make([]models.Asset, 0)
	for rows.Next() {
		asset, scanErr := scanAsset(rows)
		if scanErr != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
		}
		assets = append(assets, asset)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return assets, nil
}

func scanAsset(row rowScanner) (models.Asset, error) {
	var a models.Asset
	err := row.Scan(&a.Address, &a.Vault, &a.Name, &a.Symbol, &a.Decimals, &a.Supply, &a.CreatedAt)
	return a, err
}
