// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrVaultNotFound is returned when no vault record exists at the address.
	ErrVaultNotFound = errors.New("vault was not found")

	// ErrVaultAlreadyExists is returned when the administrator already owns a
	// vault record.
	ErrVaultAlreadyExists = errors.New("vault already exists")

	// ErrAssetNotFound is returned when no asset exists at the address.
	ErrAssetNotFound = errors.New("asset was not found")

	// ErrAssetAlreadyExists is returned when the derived asset address is
	// already taken.
	ErrAssetAlreadyExists = errors.New("asset already exists")

	// ErrAccountNotFound is returned when no account exists at the address.
	ErrAccountNotFound = errors.New("account was not found")

	// ErrAccountAlreadyExists is returned when the owner already holds an
	// account of the asset.
	ErrAccountAlreadyExists = errors.New("account already exists")

	// ErrConcurrentUpdate is returned when the database aborted the
	// transaction because of a conflicting concurrent writer (serialization
	// failure, deadlock, busy database). The caller may retry.
	ErrConcurrentUpdate = errors.New("concurrent update, retry the operation")

	// ErrNothingUpdated is returned when an UPDATE matched no rows.
	ErrNothingUpdated = errors.New("no rows were updated")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrScanningRow is returned when scanning a single result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning fails during multi-row
	// iteration.
	ErrScanningRows = errors.New("failed to scan rows")

	// ErrUnsupportedDSN is returned by [NewStorages] for an unknown scheme.
	ErrUnsupportedDSN = errors.New("unsupported database DSN")
)
