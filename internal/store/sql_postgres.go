// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/MKhiriev/custody-vault/internal/config"
	"github.com/MKhiriev/custody-vault/internal/logger"
	"github.com/jackc/pgx/v5/pgconn"
)

// Custody transactions hold row locks on the vault and both accounts for
// their whole duration, so the pool stays small and connections are recycled.
const (
	postgresMaxOpenConns    = 16
	postgresMaxIdleConns    = 4
	postgresConnMaxIdleTime = 5 * time.Minute
)

func NewConnectPostgres(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	conn, err := sql.Open("pgx", cfg.DSN)
	if err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("error opening ledger database")
		return nil, fmt.Errorf("open ledger database: %w", err)
	}

	conn.SetMaxOpenConns(postgresMaxOpenConns)
	conn.SetMaxIdleConns(postgresMaxIdleConns)
	conn.SetConnMaxIdleTime(postgresConnMaxIdleTime)

	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("ledger database is unreachable")
		_ = conn.Close()
		return nil, fmt.Errorf("ping ledger database: %w", err)
	}
	log.Info().Str("func", "NewConnectPostgres").Msg("connected to ledger database")

	return &DB{
		DB:                 conn,
		logger:             log,
		dialect:            postgresDialect,
		errorClassificator: NewPostgresErrorClassifier(),
	}, nil
}

// postgresCode returns the SQLSTATE of err, or "" for non-server errors.
func postgresCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}
