// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/custody-vault/internal/logger"
	"github.com/MKhiriev/custody-vault/migrations"
)

// dialect captures the differences between the supported SQL engines.
type dialect struct {
	// name is the database/sql driver name, also used as the goose dialect.
	name        string
	placeholder sq.PlaceholderFormat
	// lockSuffix is appended to SELECTs that must lock the row. SQLite has no
	// row locks; its write transactions are serialized by BEGIN IMMEDIATE.
	lockSuffix string
}

var (
	postgresDialect = dialect{name: "pgx", placeholder: sq.Dollar, lockSuffix: "FOR UPDATE"}
	sqliteDialect   = dialect{name: "sqlite3", placeholder: sq.Question}
)

// querier is the subset of *sql.DB and *sql.Tx used by the repositories.
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type DB struct {
	*sql.DB
	errorClassificator ErrorClassificator
	dialect            dialect
	logger             *logger.Logger
}

func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect.name)
}

// Repositories returns repositories that run every statement in autocommit
// mode.
func (db *DB) Repositories() Repositories {
	return db.bind(db.DB)
}

func (db *DB) bind(q querier) Repositories {
	base := sqlRepository{
		q:          q,
		queries:    newQueries(db.dialect),
		classifier: db.errorClassificator,
	}

	return Repositories{
		Vaults:     &vaultRepository{sqlRepository: base},
		Assets:     &assetRepository{sqlRepository: base},
		Accounts:   &accountRepository{sqlRepository: base},
		Operations: &operationRepository{sqlRepository: base},
	}
}

// InTx implements [Transactor].
func (db *DB) InTx(ctx context.Context, fn func(ctx context.Context, repos Repositories) error) error {
	log := logger.FromContext(ctx)

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "DB.InTx").Msg("failed to begin transaction")
		return db.wrapTxError(ErrBeginningTransaction, err)
	}
	defer tx.Rollback() //nolint:errcheck

	if err = fn(ctx, db.bind(tx)); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "DB.InTx").Msg("failed to commit transaction")
		return db.wrapTxError(ErrCommitingTransaction, err)
	}

	return nil
}

func (db *DB) wrapTxError(sentinel, err error) error {
	if db.errorClassificator != nil && db.errorClassificator.Classify(err) == Retryable {
		return fmt.Errorf("%w: %w: %w", sentinel, ErrConcurrentUpdate, err)
	}
	return fmt.Errorf("%w: %w", sentinel, err)
}

// sqlRepository carries what every SQL repository needs.
type sqlRepository struct {
	q          querier
	queries    queries
	classifier ErrorClassificator
}

// wrap annotates a driver error with sentinel, or with [ErrConcurrentUpdate]
// when the driver reports a conflicting writer.
func (r sqlRepository) wrap(sentinel, err error) error {
	if r.classifier != nil && r.classifier.Classify(err) == Retryable {
		return fmt.Errorf("%w: %w", ErrConcurrentUpdate, err)
	}
	return fmt.Errorf("%w: %w", sentinel, err)
}

func (r sqlRepository) isUniqueViolation(err error) bool {
	return r.classifier != nil && r.classifier.IsUniqueViolation(err)
}

// exec runs an UPDATE and fails with [ErrNothingUpdated] if no row matched.
func (r sqlRepository) execUpdate(ctx context.Context, query string, args []any) error {
	res, err := r.q.ExecContext(ctx, query, args...)
	if err != nil {
		return r.wrap(ErrExecutingQuery, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return r.wrap(ErrExecutingQuery, err)
	}
	if affected == 0 {
		return ErrNothingUpdated
	}

	return nil
}
