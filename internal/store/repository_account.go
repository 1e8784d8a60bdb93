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

// accountRepository is the SQL-backed implementation of [AccountRepository].
type accountRepository struct {
	sqlRepository
}

// CreateAccount inserts a new account. The (owner, asset) pair is unique, so
// opening the same account twice fails with [ErrAccountAlreadyExists].
func (r *accountRepository) CreateAccount(ctx context.Context, account models.Account) error {
	query, args, err := r.queries.insertAccount(account)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.q.ExecContext(ctx, query, args...); err != nil {
		if r.isUniqueViolation(err) {
			return ErrAccountAlreadyExists
		}
		logger.FromContext(ctx).Err(err).
			Str("func", "accountRepository.CreateAccount").
			Str("account", account.Address.String()).
			Str("owner", account.Owner.String()).
			Msg("failed to insert account")
		return r.wrap(ErrExecutingQuery, err)
	}

	return nil
}

func (r *accountRepository) GetAccount(ctx context.Context, address models.Address) (models.Account, error) {
	return r.get(ctx, address, false)
}

func (r *accountRepository) GetAccountForUpdate(ctx context.Context, address models.Address) (models.Account, error) {
	return r.get(ctx, address, true)
}

func (r *accountRepository) get(ctx context.Context, address models.Address, forUpdate bool) (models.Account, error) {
	query, args, err := r.queries.selectAccount(address, forUpdate)
	if err != nil {
		return models.Account{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var a models.Account
	err = r.q.QueryRowContext(ctx, query, args...).
		Scan(&a.Address, &a.Owner, &a.Asset, &a.Balance, &a.CreatedAt, &a.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Account{}, ErrAccountNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "accountRepository.get").
			Str("account", address.String()).
			Msg("failed to read account")
		return models.Account{}, r.wrap(ErrScanningRow, err)
	}

	return a, nil
}

func (r *accountRepository) UpdateBalance(ctx context.Context, address models.Address, balance uint64, updatedAt time.Time) error {
	query, args, err := r.queries.updateBalance(address, balance, updatedAt)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	err = r.execUpdate(ctx, query, args)
	if errors.Is(err, ErrNothingUpdated) {
		return ErrAccountNotFound
	}

	return err
}
