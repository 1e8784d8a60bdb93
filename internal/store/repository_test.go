// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/custody-vault/internal/logger"
	"github.com/MKhiriev/custody-vault/models"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDB(t *testing.T) (*DB, sqlmock.Sqlmock) {
	t.Helper()

	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	db := &DB{
		DB:                 conn,
		dialect:            postgresDialect,
		errorClassificator: NewPostgresErrorClassifier(),
		logger:             logger.Nop(),
	}
	return db, mock
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

var testNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func testVault() models.VaultRecord {
	return models.VaultRecord{
		Address:       qVault,
		Administrator: qAdmin,
		ApproverA:     qAsset,
		ApproverB:     qAccount,
		CreatedAt:     testNow,
		UpdatedAt:     testNow,
	}
}

// ─── vaults ──────────────────────────────────────────────────────────────────

func TestCreateVault_Success(t *testing.T) {
	db, mock := newTestDB(t)
	v := testVault()

	mock.ExpectExec("INSERT INTO vaults").
		WithArgs(string(v.Address), string(v.Administrator), string(v.ApproverA), string(v.ApproverB),
			false, false, "", "", testNow, testNow).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := db.Repositories().Vaults.CreateVault(context.Background(), v)
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateVault_UniqueViolation(t *testing.T) {
	db, mock := newTestDB(t)

	mock.ExpectExec("INSERT INTO vaults").
		WillReturnError(pgError(pgerrcode.UniqueViolation))

	err := db.Repositories().Vaults.CreateVault(context.Background(), testVault())
	require.ErrorIs(t, err, ErrVaultAlreadyExists)
}

func TestCreateVault_OtherError(t *testing.T) {
	db, mock := newTestDB(t)

	mock.ExpectExec("INSERT INTO vaults").
		WillReturnError(errors.New("boom"))

	err := db.Repositories().Vaults.CreateVault(context.Background(), testVault())
	require.ErrorIs(t, err, ErrExecutingQuery)
	assert.NotErrorIs(t, err, ErrVaultAlreadyExists)
}

func TestGetVaultForUpdate_Success(t *testing.T) {
	db, mock := newTestDB(t)

	rows := sqlmock.NewRows(vaultColumns).
		AddRow(string(qVault), string(qAdmin), string(qAsset), string(qAccount), true, false, "", "", testNow, testNow)

	mock.ExpectQuery(regexp.QuoteMeta("FROM vaults WHERE address = $1 FOR UPDATE")).
		WithArgs(string(qVault)).
		WillReturnRows(rows)

	v, err := db.Repositories().Vaults.GetVaultForUpdate(context.Background(), qVault)
	require.NoError(t, err)
	assert.Equal(t, qAdmin, v.Administrator)
	assert.True(t, v.ConsentA)
	assert.False(t, v.ConsentB)
	assert.False(t, v.HasAsset())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetVault_NotFound(t *testing.T) {
	db, mock := newTestDB(t)

	mock.ExpectQuery("FROM vaults").
		WithArgs(string(qVault)).
		WillReturnError(sql.ErrNoRows)

	_, err := db.Repositories().Vaults.GetVault(context.Background(), qVault)
	require.ErrorIs(t, err, ErrVaultNotFound)
}

func TestGetVault_SerializationFailureIsConcurrentUpdate(t *testing.T) {
	db, mock := newTestDB(t)

	mock.ExpectQuery("FROM vaults").
		WillReturnError(pgError(pgerrcode.SerializationFailure))

	_, err := db.Repositories().Vaults.GetVault(context.Background(), qVault)
	require.ErrorIs(t, err, ErrConcurrentUpdate)
}

func TestUpdateConsent(t *testing.T) {
	tests := []struct {
		name     string
		affected int64
		wantErr  error
	}{
		{name: "updated", affected: 1},
		{name: "missing vault", affected: 0, wantErr: ErrVaultNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newTestDB(t)
			v := testVault()
			v.ConsentB = true

			mock.ExpectExec(regexp.QuoteMeta("UPDATE vaults SET consent_a = $1, consent_b = $2, updated_at = $3 WHERE address = $4")).
				WithArgs(false, true, testNow, string(qVault)).
				WillReturnResult(sqlmock.NewResult(0, tt.affected))

			err := db.Repositories().Vaults.UpdateConsent(context.Background(), v)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestSetAsset_AlreadySet(t *testing.T) {
	db, mock := newTestDB(t)

	mock.ExpectExec("UPDATE vaults SET asset_type").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := db.Repositories().Vaults.SetAsset(context.Background(), qVault, qAsset, qAccount, testNow)
	require.ErrorIs(t, err, ErrAssetAlreadyExists)
}

func TestListVaults(t *testing.T) {
	db, mock := newTestDB(t)

	rows := sqlmock.NewRows(vaultColumns).
		AddRow(string(qVault), string(qAdmin), string(qAsset), string(qAccount), false, false, string(qAsset), string(qAccount), testNow, testNow)

	mock.ExpectQuery("FROM vaults ORDER BY created_at, address").WillReturnRows(rows)

	vaults, err := db.Repositories().Vaults.ListVaults(context.Background())
	require.NoError(t, err)
	require.Len(t, vaults, 1)
	assert.Equal(t, qAccount, vaults[0].CustodyAccount)
}

// ─── assets ──────────────────────────────────────────────────────────────────

func TestCreateAsset_Success(t *testing.T) {
	db, mock := newTestDB(t)
	a := models.Asset{Address: qAsset, Vault: qVault, Name: "Gold", Symbol: "GLD", Decimals: 2, Supply: 1000, CreatedAt: testNow}

	mock.ExpectExec("INSERT INTO assets").
		WithArgs(string(qAsset), string(qVault), "Gold", "GLD", int32(2), int64(1000), testNow).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, db.Repositories().Assets.CreateAsset(context.Background(), a))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetAsset(t *testing.T) {
	db, mock := newTestDB(t)

	rows := sqlmock.NewRows(assetColumns).
		AddRow(string(qAsset), string(qVault), "Gold", "GLD", int64(2), int64(990), testNow)
	mock.ExpectQuery("FROM assets WHERE address").WithArgs(string(qAsset)).WillReturnRows(rows)

	a, err := db.Repositories().Assets.GetAsset(context.Background(), qAsset)
	require.NoError(t, err)
	assert.Equal(t, int32(2), a.Decimals)
	assert.Equal(t, uint64(990), a.Supply)
}

func TestGetAsset_NotFound(t *testing.T) {
	db, mock := newTestDB(t)

	mock.ExpectQuery("FROM assets").WillReturnError(sql.ErrNoRows)

	_, err := db.Repositories().Assets.GetAsset(context.Background(), qAsset)
	require.ErrorIs(t, err, ErrAssetNotFound)
}

func TestUpdateSupply(t *testing.T) {
	db, mock := newTestDB(t)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE assets SET supply = $1 WHERE address = $2")).
		WithArgs(int64(700), string(qAsset)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, db.Repositories().Assets.UpdateSupply(context.Background(), qAsset, 700))
}

// ─── accounts ────────────────────────────────────────────────────────────────

func TestCreateAccount_Duplicate(t *testing.T) {
	db, mock := newTestDB(t)

	mock.ExpectExec("INSERT INTO accounts").
		WillReturnError(pgError(pgerrcode.UniqueViolation))

	err := db.Repositories().Accounts.CreateAccount(context.Background(), models.Account{Address: qAccount})
	require.ErrorIs(t, err, ErrAccountAlreadyExists)
}

func TestGetAccountForUpdate(t *testing.T) {
	db, mock := newTestDB(t)

	rows := sqlmock.NewRows(accountColumns).
		AddRow(string(qAccount), string(qAdmin), string(qAsset), int64(500), testNow, testNow)
	mock.ExpectQuery(regexp.QuoteMeta("FROM accounts WHERE address = $1 FOR UPDATE")).
		WithArgs(string(qAccount)).
		WillReturnRows(rows)

	a, err := db.Repositories().Accounts.GetAccountForUpdate(context.Background(), qAccount)
	require.NoError(t, err)
	assert.Equal(t, uint64(500), a.Balance)
	assert.Equal(t, qAdmin, a.Owner)
}

func TestGetAccount_NotFound(t *testing.T) {
	db, mock := newTestDB(t)

	mock.ExpectQuery("FROM accounts").WillReturnError(sql.ErrNoRows)

	_, err := db.Repositories().Accounts.GetAccount(context.Background(), qAccount)
	require.ErrorIs(t, err, ErrAccountNotFound)
}

func TestUpdateBalance_Missing(t *testing.T) {
	db, mock := newTestDB(t)

	mock.ExpectExec("UPDATE accounts SET balance").
		WithArgs(int64(10), testNow, string(qAccount)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := db.Repositories().Accounts.UpdateBalance(context.Background(), qAccount, 10, testNow)
	require.ErrorIs(t, err, ErrAccountNotFound)
}

// ─── operations ──────────────────────────────────────────────────────────────

func TestAppendOperation(t *testing.T) {
	db, mock := newTestDB(t)
	op := models.Operation{
		ID:          "op-1",
		Vault:       qVault,
		Kind:        models.OperationWithdraw,
		Caller:      qAdmin,
		Source:      qAccount,
		Destination: qAsset,
		Amount:      250,
		CreatedAt:   testNow,
	}

	mock.ExpectExec("INSERT INTO operations").
		WithArgs("op-1", string(qVault), "withdraw", string(qAdmin), string(qAccount), string(qAsset), int64(250), testNow).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, db.Repositories().Operations.AppendOperation(context.Background(), op))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestListOperations(t *testing.T) {
	db, mock := newTestDB(t)

	rows := sqlmock.NewRows(operationColumns).
		AddRow("op-2", string(qVault), "burn", string(qAdmin), string(qAccount), "", int64(5), testNow).
		AddRow("op-1", string(qVault), "grant_consent", string(qAsset), "", "", int64(0), testNow)
	mock.ExpectQuery(regexp.QuoteMeta("WHERE vault = $1 ORDER BY created_at DESC, id DESC LIMIT 10")).
		WithArgs(string(qVault)).
		WillReturnRows(rows)

	ops, err := db.Repositories().Operations.ListOperations(context.Background(), qVault, 10)
	require.NoError(t, err)
	require.Len(t, ops, 2)
	assert.Equal(t, models.OperationBurn, ops[0].Kind)
	assert.Equal(t, uint64(5), ops[0].Amount)
	assert.True(t, ops[1].Destination.IsZero())
}

// ─── transactions ────────────────────────────────────────────────────────────

func TestInTx_Commit(t *testing.T) {
	db, mock := newTestDB(t)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE assets SET supply").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := db.InTx(context.Background(), func(ctx context.Context, repos Repositories) error {
		return repos.Assets.UpdateSupply(ctx, qAsset, 1)
	})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestInTx_RollbackOnError(t *testing.T) {
	db, mock := newTestDB(t)
	fnErr := errors.New("rejected")

	mock.ExpectBegin()
	mock.ExpectRollback()

	err := db.InTx(context.Background(), func(ctx context.Context, repos Repositories) error {
		return fnErr
	})
	require.ErrorIs(t, err, fnErr)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestInTx_BeginFails(t *testing.T) {
	db, mock := newTestDB(t)

	mock.ExpectBegin().WillReturnError(errors.New("no connection"))

	called := false
	err := db.InTx(context.Background(), func(ctx context.Context, repos Repositories) error {
		called = true
		return nil
	})
	require.ErrorIs(t, err, ErrBeginningTransaction)
	assert.False(t, called)
}

func TestInTx_CommitSerializationFailure(t *testing.T) {
	db, mock := newTestDB(t)

	mock.ExpectBegin()
	mock.ExpectCommit().WillReturnError(pgError(pgerrcode.SerializationFailure))

	err := db.InTx(context.Background(), func(ctx context.Context, repos Repositories) error {
		return nil
	})
	require.ErrorIs(t, err, ErrCommitingTransaction)
	require.ErrorIs(t, err, ErrConcurrentUpdate)
}

// ─── classification ──────────────────────────────────────────────────────────

func TestPostgresErrorClassifier(t *testing.T) {
	c := NewPostgresErrorClassifier()

	assert.Equal(t, Retryable, c.Classify(pgError(pgerrcode.DeadlockDetected)))
	assert.Equal(t, Retryable, c.Classify(pgError(pgerrcode.SerializationFailure)))
	assert.Equal(t, NonRetryable, c.Classify(pgError(pgerrcode.UniqueViolation)))
	assert.Equal(t, NonRetryable, c.Classify(errors.New("plain")))
	assert.Equal(t, NonRetryable, c.Classify(nil))

	assert.True(t, c.IsUniqueViolation(pgError(pgerrcode.UniqueViolation)))
	assert.False(t, c.IsUniqueViolation(pgError(pgerrcode.CheckViolation)))
	assert.False(t, c.IsUniqueViolation(nil))
}
