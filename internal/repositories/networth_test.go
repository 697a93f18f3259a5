package repositories

import (
	"context"
	"database/sql"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })
	return sqlx.NewDb(mockDB, "sqlmock"), mock
}

func TestNetworthWriteRepository_Credit(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewNetworthWriteRepository(db, nil)

	userID := uuid.New()
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO networth")).
		WithArgs(sqlmock.AnyArg(), userID, "USD", int64(100)).
		WillReturnRows(sqlmock.NewRows([]string{"total"}).AddRow(int64(100)))

	total, err := repo.Credit(context.Background(), userID, "USD", 100)
	require.NoError(t, err)
	assert.Equal(t, int64(100), total)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNetworthWriteRepository_Debit(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewNetworthWriteRepository(db, nil)

	userID := uuid.New()
	mock.ExpectQuery(regexp.QuoteMeta("UPDATE networth")).
		WithArgs(userID, "USD", int64(40)).
		WillReturnRows(sqlmock.NewRows([]string{"total"}).AddRow(int64(60)))

	total, err := repo.Debit(context.Background(), userID, "USD", 40)
	require.NoError(t, err)
	assert.Equal(t, int64(60), total)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNetworthWriteRepository_Debit_GuardFails(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewNetworthWriteRepository(db, nil)

	userID := uuid.New()
	// The guarded update matches no row when the total is too small.
	mock.ExpectQuery(regexp.QuoteMeta("UPDATE networth")).
		WithArgs(userID, "USD", int64(150)).
		WillReturnRows(sqlmock.NewRows([]string{"total"}))

	_, err := repo.Debit(context.Background(), userID, "USD", 150)
	assert.ErrorIs(t, err, sql.ErrNoRows)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNetworthReadRepository_GetTotal(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewNetworthReadRepository(db)

	userID := uuid.New()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT total FROM networth")).
		WithArgs(userID, "USD").
		WillReturnRows(sqlmock.NewRows([]string{"total"}).AddRow(int64(100)))

	total, found, err := repo.GetTotal(context.Background(), userID, "USD")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, int64(100), total)
}

func TestNetworthReadRepository_GetTotal_MissingRow(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewNetworthReadRepository(db)

	userID := uuid.New()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT total FROM networth")).
		WithArgs(userID, "JPY").
		WillReturnRows(sqlmock.NewRows([]string{"total"}))

	total, found, err := repo.GetTotal(context.Background(), userID, "JPY")
	require.NoError(t, err)
	assert.False(t, found)
	assert.Zero(t, total)
}

func TestNetworthReadRepository_GetAll(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewNetworthReadRepository(db)

	userID := uuid.New()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT currency, total FROM networth")).
		WithArgs(userID).
		WillReturnRows(sqlmock.NewRows([]string{"currency", "total"}).
			AddRow("USD", int64(100)).
			AddRow("EUR", int64(50)))

	totals, err := repo.GetAll(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, map[string]int64{"USD": 100, "EUR": 50}, totals)
}
