// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/custody-vault/internal/config"
	"github.com/MKhiriev/custody-vault/internal/logger"
)

// Storages is the persistence layer handed to the service layer. The
// embedded [Repositories] run in autocommit mode and serve reads; every
// state change goes through [Transactor.InTx].
type Storages struct {
	Repositories
	Transactor

	closeFn func() error
}

// Close releases the underlying connection pool, if any.
func (s *Storages) Close() error {
	if s == nil || s.closeFn == nil {
		return nil
	}
	return s.closeFn()
}

// NewStorages opens the backend selected by the DSN scheme and applies the
// schema migrations:
//
//	postgres://, postgresql://  PostgreSQL through pgx
//	file:, sqlite://            SQLite through go-sqlite3
//	memory://                   process memory, lost on exit
func NewStorages(ctx context.Context, cfg config.DB, log *logger.Logger) (*Storages, error) {
	var (
		db  *DB
		err error
	)

	switch {
	case strings.HasPrefix(cfg.DSN, "memory://"):
		log.Info().Str("func", "NewStorages").Msg("using in-memory storage")
		return NewMemoryStorages(), nil
	case strings.HasPrefix(cfg.DSN, "postgres://"), strings.HasPrefix(cfg.DSN, "postgresql://"):
		db, err = NewConnectPostgres(ctx, cfg, log)
	case strings.HasPrefix(cfg.DSN, "file:"), strings.HasPrefix(cfg.DSN, "sqlite://"):
		db, err = NewConnectSQLite(ctx, cfg, log)
	default:
		return nil, ErrUnsupportedDSN
	}
	if err != nil {
		return nil, err
	}

	if err = db.Migrate(); err != nil {
		log.Err(err).Str("func", "NewStorages").Msg("failed to apply migrations")
		_ = db.Close()
		return nil, fmt.Errorf("failed to apply migrations: %w", err)
	}

	return NewDBStorages(db), nil
}

// NewDBStorages wraps an open SQL connection.
func NewDBStorages(db *DB) *Storages {
	return &Storages{
		Repositories: db.Repositories(),
		Transactor:   db,
		closeFn:      db.Close,
	}
}

// NewMemoryStorages returns storages backed by a fresh [MemoryDB].
func NewMemoryStorages() *Storages {
	m := NewMemoryDB()
	return &Storages{
		Repositories: m.Repositories(),
		Transactor:   m,
	}
}
