// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"os"
	"strings"

	_ "github.com/mattn/go-sqlite3"

	"github.com/MKhiriev/custody-vault/internal/config"
	"github.com/MKhiriev/custody-vault/internal/logger"
)

// sqliteDefaults are appended to every SQLite DSN unless already present.
// _txlock=immediate takes the write lock at BEGIN so that two custody
// transactions can never read the same consent flags.
var sqliteDefaults = map[string]string{
	"_txlock":       "immediate",
	"_busy_timeout": "5000",
	"_foreign_keys": "on",
}

func NewConnectSQLite(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	dsn, path, err := normalizeSQLiteDSN(cfg.DSN)
	if err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("invalid sqlite dsn")
		return nil, err
	}

	// db will be in file
	if err = createLocalDBFileIfNotExists(path); err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error creating database file")
		return nil, fmt.Errorf("error creating database file: %w", err)
	}

	conn, err := sql.Open("sqlite3", dsn)
	if err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database")
		return nil, fmt.Errorf("error opening connection to DB: %w", err)
	}

	// ping database
	err = conn.PingContext(ctx)
	if err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database (ping)")
		_ = conn.Close()
		return nil, err
	}
	log.Debug().Str("func", "NewConnectSQLite").Str("path", path).Msg("connected to database successfully")

	// construct a DB struct
	db := &DB{
		DB:                 conn,
		logger:             log,
		dialect:            sqliteDialect,
		errorClassificator: NewSQLiteErrorClassifier(),
	}

	return db, nil
}

// normalizeSQLiteDSN accepts "file:<path>[?query]" and "sqlite://<path>[?query]"
// and returns a go-sqlite3 DSN carrying [sqliteDefaults] together with the
// bare file path.
func normalizeSQLiteDSN(raw string) (dsn, path string, err error) {
	rest, ok := strings.CutPrefix(raw, "sqlite://")
	if !ok {
		rest, ok = strings.CutPrefix(raw, "file:")
	}
	if !ok {
		return "", "", fmt.Errorf("%w: %q", ErrUnsupportedDSN, raw)
	}

	path, rawQuery, _ := strings.Cut(rest, "?")
	if path == "" {
		return "", "", fmt.Errorf("%w: empty sqlite path", ErrUnsupportedDSN)
	}

	params, err := url.ParseQuery(rawQuery)
	if err != nil {
		return "", "", fmt.Errorf("%w: %w", ErrUnsupportedDSN, err)
	}
	for k, v := range sqliteDefaults {
		if params.Get(k) == "" {
			params.Set(k, v)
		}
	}

	return "file:" + path + "?" + params.Encode(), path, nil
}

func createLocalDBFileIfNotExists(dbFile string) error {
	if _, err := os.Stat(dbFile); os.IsNotExist(err) {
		// if not found - create
		f, err := os.Create(dbFile)
		if err != nil {
			return fmt.Errorf("error creating DB file: %w", err)
		}
		f.Close()
	}

	// file already exists
	return nil
}
