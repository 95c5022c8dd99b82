package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/haneefojay/flashai-client/internal/logger"
)

func newTestDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db, mock
}

func newTestRepo(t *testing.T, db *sql.DB) SessionRepository {
	t.Helper()
	storeDB := &DB{DB: db, logger: logger.Nop()}
	return NewSessionRepository(storeDB, logger.Nop())
}

func TestSaveCredential_Insert(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestRepo(t, db)

	mock.ExpectExec(`INSERT INTO session`).
		WithArgs(sessionKey, "bearer abc").
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := repo.SaveCredential(context.Background(), "bearer abc")

	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveCredential_OverwritesExisting(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestRepo(t, db)

	// The upsert replaces the previous row, no separate UPDATE path.
	mock.ExpectExec(`INSERT INTO session .*ON CONFLICT`).
		WithArgs(sessionKey, "bearer new").
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := repo.SaveCredential(context.Background(), "bearer new")

	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveCredential_ExecError(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestRepo(t, db)

	mock.ExpectExec(`INSERT INTO session`).
		WithArgs(sessionKey, "bearer abc").
		WillReturnError(errors.New("disk I/O error"))

	err := repo.SaveCredential(context.Background(), "bearer abc")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrExecutingQuery)
	assert.Contains(t, err.Error(), "disk I/O error")
}

func TestDeleteCredential_ExecError(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestRepo(t, db)

	mock.ExpectExec(`DELETE FROM session`).
		WithArgs(sessionKey).
		WillReturnError(errors.New("database is locked"))

	err := repo.DeleteCredential(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrExecutingQuery)
}

func TestGetCredential_Found(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestRepo(t, db)

	rows := sqlmock.NewRows([]string{"credential"}).AddRow("bearer abc")
	mock.ExpectQuery(`SELECT credential FROM session`).
		WithArgs(sessionKey).
		WillReturnRows(rows)

	got, err := repo.GetCredential(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "bearer abc", got)
}

func TestGetCredential_NotFound(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestRepo(t, db)

	mock.ExpectQuery(`SELECT credential FROM session`).
		WithArgs(sessionKey).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetCredential(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrCredentialNotFound)
}

func TestGetCredential_QueryError(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestRepo(t, db)

	mock.ExpectQuery(`SELECT credential FROM session`).
		WithArgs(sessionKey).
		WillReturnError(errors.New("database is locked"))

	_, err := repo.GetCredential(context.Background())

	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrCredentialNotFound)
}

func TestDeleteCredential_Success(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestRepo(t, db)

	mock.ExpectExec(`DELETE FROM session`).
		WithArgs(sessionKey).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.DeleteCredential(context.Background())

	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteCredential_NoRow_IsNotAnError(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestRepo(t, db)

	mock.ExpectExec(`DELETE FROM session`).
		WithArgs(sessionKey).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.DeleteCredential(context.Background())

	require.NoError(t, err)
}
