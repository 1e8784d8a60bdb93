// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/custody-vault/internal/logger"
	"github.com/MKhiriev/custody-vault/models"
)

// operationRepository is the SQL-backed implementation of
// [OperationRepository]. Rows are never updated or deleted.
type operationRepository struct {
	sqlRepository
}

func (r *operationRepository) AppendOperation(ctx context.Context, operation models.Operation) error {
	query, args, err := r.queries.insertOperation(operation)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.q.ExecContext(ctx, query, args...); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "operationRepository.AppendOperation").
			Str("vault", operation.Vault.String()).
			Str("kind", string(operation.Kind)).
			Msg("failed to append operation")
		return r.wrap(ErrExecutingQuery, err)
	}

	return nil
}

// ListOperations returns up to limit entries of vault, newest first. A zero
// limit returns the whole trail.
func (r *operationRepository) ListOperations(ctx context.Context, vault models.Address, limit uint64) ([]models.Operation, error) {
	query, args, err := r.queries.listOperations(vault, limit)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, r.wrap(ErrExecutingQuery, err)
	}
	defer rows.Close()

	operations := make([]models.Operation, 0, limit)
	for rows.Next() {
		var o models.Operation
		if err = rows.Scan(
			&o.ID,
			&o.Vault,
			&o.Kind,
			&o.Caller,
			&o.Source,
			&o.Destination,
			&o.Amount,
			&o.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		operations = append(operations, o)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return operations, nil
}
