package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/imhotep-finance/finance-service/internal/models"
)

// setupPostgres spins up a throwaway Postgres container. Gated behind
// INTEGRATION_TESTS so the suite stays runnable without Docker.
func setupPostgres(t *testing.T) (*sqlx.DB, func()) {
	if os.Getenv("INTEGRATION_TESTS") == "" {
		t.Skip("set INTEGRATION_TESTS=1 to run container-backed tests")
	}
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "postgres:15-alpine",
		Env:          map[string]string{"POSTGRES_PASSWORD": "secret", "POSTGRES_DB": "testdb", "POSTGRES_USER": "postgres"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForListeningPort("5432/tcp").WithStartupTimeout(30 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "5432")
	require.NoError(t, err)

	dsn := fmt.Sprintf("postgres://postgres:secret@%s:%s/testdb?sslmode=disable", host, port.Port())
	db, err := sqlx.Connect("pgx", dsn)
	require.NoError(t, err)

	migrations := []string{
		`CREATE TABLE IF NOT EXISTS users (
			user_id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			username VARCHAR(64) NOT NULL UNIQUE,
			email VARCHAR(128) NOT NULL UNIQUE,
			password_hash VARCHAR(255) NOT NULL,
			mail_verified BOOLEAN NOT NULL DEFAULT FALSE,
			verification_code VARCHAR(16) NOT NULL DEFAULT '',
			favorite_currency CHAR(3) NOT NULL DEFAULT 'USD',
			created_at TIMESTAMP NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMP NOT NULL DEFAULT NOW()
		);`,
		`CREATE TABLE IF NOT EXISTS networth (
			networth_id UUID PRIMARY KEY,
			user_id UUID NOT NULL,
			currency CHAR(3) NOT NULL,
			total BIGINT NOT NULL DEFAULT 0,
			created_at TIMESTAMP NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMP NOT NULL DEFAULT NOW(),
			UNIQUE (user_id, currency)
		);`,
		`CREATE TABLE IF NOT EXISTS trans (
			transaction_id UUID PRIMARY KEY,
			user_id UUID NOT NULL,
			date DATE NOT NULL,
			currency CHAR(3) NOT NULL,
			amount BIGINT NOT NULL,
			status VARCHAR(16) NOT NULL,
			details TEXT NOT NULL DEFAULT '',
			details_link TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMP NOT NULL DEFAULT NOW()
		);`,
	}
	for _, m := range migrations {
		_, err = db.Exec(m)
		require.NoError(t, err)
	}

	return db, func() {
		db.Close()
		container.Terminate(ctx)
	}
}

func TestLedgerCreditDebit_Integration(t *testing.T) {
	db, cleanup := setupPostgres(t)
	defer cleanup()
	ctx := context.Background()

	writer := NewNetworthWriteRepository(db, nil)
	reader := NewNetworthReadRepository(db)
	userID := uuid.New()

	total, err := writer.Credit(ctx, userID, "USD", 100)
	require.NoError(t, err)
	assert.Equal(t, int64(100), total)

	total, err = writer.Credit(ctx, userID, "USD", 50)
	require.NoError(t, err)
	assert.Equal(t, int64(150), total)

	total, err = writer.Debit(ctx, userID, "USD", 40)
	require.NoError(t, err)
	assert.Equal(t, int64(110), total)

	// Over-debit leaves the row untouched.
	_, err = writer.Debit(ctx, userID, "USD", 200)
	assert.ErrorIs(t, err, sql.ErrNoRows)

	got, found, err := reader.GetTotal(ctx, userID, "USD")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, int64(110), got)
}

func TestLedgerConcurrentDebits_Integration(t *testing.T) {
	db, cleanup := setupPostgres(t)
	defer cleanup()
	ctx := context.Background()

	writer := NewNetworthWriteRepository(db, nil)
	reader := NewNetworthReadRepository(db)
	userID := uuid.New()

	_, err := writer.Credit(ctx, userID, "USD", 100)
	require.NoError(t, err)

	// Two debits of 80 race; the guard lets at most one through.
	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i := range errs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = writer.Debit(ctx, userID, "USD", 80)
		}(i)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
		} else {
			assert.True(t, errors.Is(err, sql.ErrNoRows))
		}
	}
	assert.Equal(t, 1, succeeded)

	total, _, err := reader.GetTotal(ctx, userID, "USD")
	require.NoError(t, err)
	assert.Equal(t, int64(20), total)
}

func TestTransactionJournal_Integration(t *testing.T) {
	db, cleanup := setupPostgres(t)
	defer cleanup()
	ctx := context.Background()

	writer := NewTransactionWriteRepository(db, nil)
	reader := NewTransactionReadRepository(db)
	userID := uuid.New()
	date := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)

	id, err := writer.Save(ctx, models.TransactionDB{
		UserID:   userID,
		Date:     date,
		Currency: "USD",
		Amount:   100,
		Status:   models.StatusDeposit,
		Details:  "salary",
	})
	require.NoError(t, err)

	got, err := reader.GetByID(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, int64(100), got.Amount)

	trans, err := reader.List(ctx, userID, models.TransactionFilter{
		From: date.AddDate(0, 0, -1),
		To:   date.AddDate(0, 0, 1),
	})
	require.NoError(t, err)
	assert.Len(t, trans, 1)

	require.NoError(t, writer.Delete(ctx, id))
	got, err = reader.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Nil(t, got)
}
