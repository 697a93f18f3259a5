package repositories

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imhotep-finance/finance-service/internal/models"
)

func TestTransactionWriteRepository_Save(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewTransactionWriteRepository(db, nil)

	userID := uuid.New()
	transID := uuid.New()
	date := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO trans")).
		WithArgs(userID, date, "USD", int64(100), models.StatusDeposit, "salary", "").
		WillReturnRows(sqlmock.NewRows([]string{"transaction_id"}).AddRow(transID.String()))

	id, err := repo.Save(context.Background(), models.TransactionDB{
		UserID:   userID,
		Date:     date,
		Currency: "USD",
		Amount:   100,
		Status:   models.StatusDeposit,
		Details:  "salary",
	})
	require.NoError(t, err)
	assert.Equal(t, transID, id)
}

func TestTransactionWriteRepository_Update_MissingRow(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewTransactionWriteRepository(db, nil)

	transID := uuid.New()
	date := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE trans")).
		WithArgs(transID, date, int64(75), "groceries", "").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Update(context.Background(), transID, date, 75, "groceries", "")
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestTransactionWriteRepository_Delete(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewTransactionWriteRepository(db, nil)

	transID := uuid.New()
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM trans")).
		WithArgs(transID).
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.Delete(context.Background(), transID))
}

func TestTransactionReadRepository_GetByID_Missing(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewTransactionReadRepository(db)

	transID := uuid.New()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT transaction_id, user_id, date, currency, amount, status, details, details_link, created_at FROM trans")).
		WithArgs(transID).
		WillReturnRows(sqlmock.NewRows([]string{"transaction_id"}))

	got, err := repo.GetByID(context.Background(), transID)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func transactionRows(ids ...uuid.UUID) *sqlmock.Rows {
	rows := sqlmock.NewRows([]string{
		"transaction_id", "user_id", "date", "currency", "amount", "status", "details", "details_link", "created_at",
	})
	for i, id := range ids {
		rows.AddRow(id.String(), uuid.New().String(), time.Now(), "USD", int64(10*(i+1)), "deposit", "", "", time.Now())
	}
	return rows
}

func TestTransactionReadRepository_List_FilterPredicates(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewTransactionReadRepository(db)

	userID := uuid.New()
	from := time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 7, 31, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("AND status = $4 AND details ILIKE $5")).
		WithArgs(userID, from, to, "withdraw", "%rent%").
		WillReturnRows(transactionRows(uuid.New()))

	trans, err := repo.List(context.Background(), userID, models.TransactionFilter{
		From:    from,
		To:      to,
		Status:  "withdraw",
		Details: "rent",
	})
	require.NoError(t, err)
	assert.Len(t, trans, 1)
}

func TestTransactionReadRepository_Iterate(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewTransactionReadRepository(db)

	userID := uuid.New()
	from := time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 7, 31, 0, 0, 0, 0, time.UTC)

	// Each range re-executes the query.
	mock.ExpectQuery(regexp.QuoteMeta("FROM trans")).
		WithArgs(userID, from, to).
		WillReturnRows(transactionRows(uuid.New(), uuid.New()))
	mock.ExpectQuery(regexp.QuoteMeta("FROM trans")).
		WithArgs(userID, from, to).
		WillReturnRows(transactionRows(uuid.New(), uuid.New()))

	seq := repo.Iterate(context.Background(), userID, models.TransactionFilter{From: from, To: to})

	for range 2 {
		count := 0
		for _, err := range seq {
			require.NoError(t, err)
			count++
		}
		assert.Equal(t, 2, count)
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}
