// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "github.com/jackc/pgerrcode"

// ErrorClassification tells the repositories whether a failed statement lost
// a race with another writer ([Retryable], surfaced as [ErrConcurrentUpdate])
// or failed for good.
type ErrorClassification int

const (
	NonRetryable ErrorClassification = iota
	Retryable
)

// PostgresErrorClassifier classifies pgx errors by SQLSTATE.
type PostgresErrorClassifier struct{}

func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

// Classify implements [ErrorClassificator].
func (c *PostgresErrorClassifier) Classify(err error) ErrorClassification {
	if err == nil {
		return NonRetryable
	}
	return classifyPostgresCode(postgresCode(err))
}

// IsUniqueViolation implements [ErrorClassificator]. A unique violation on
// insert means the vault, asset or account address is already taken.
func (c *PostgresErrorClassifier) IsUniqueViolation(err error) bool {
	return postgresCode(err) == pgerrcode.UniqueViolation
}

// classifyPostgresCode treats serialization failures, deadlocks between two
// custody transactions and dropped connections as lost races. Everything
// else, including constraint and syntax errors, is final.
func classifyPostgresCode(code string) ErrorClassification {
	switch code {
	case pgerrcode.SerializationFailure,
		pgerrcode.DeadlockDetected,
		pgerrcode.TransactionRollback,
		pgerrcode.LockNotAvailable:
		return Retryable
	case pgerrcode.ConnectionException,
		pgerrcode.ConnectionDoesNotExist,
		pgerrcode.ConnectionFailure,
		pgerrcode.CannotConnectNow:
		return Retryable
	default:
		return NonRetryable
	}
}
