package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"iter"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/imhotep-finance/finance-service/internal/logger"
	"github.com/imhotep-finance/finance-service/internal/models"
)

// TransactionWriteRepository mutates rows of the trans table.
type TransactionWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewTransactionWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *TransactionWriteRepository {
	return &TransactionWriteRepository{db: db, txGetter: txGetter}
}

func (r *TransactionWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// Save inserts a transaction record and returns its store-generated id.
func (r *TransactionWriteRepository) Save(ctx context.Context, t models.TransactionDB) (uuid.UUID, error) {
	const query = `
		INSERT INTO trans (transaction_id, user_id, date, currency, amount, status, details, details_link, created_at)
		VALUES (gen_random_uuid(), $1, $2, $3, $4, $5, $6, $7, NOW())
		RETURNING transaction_id
	`
	args := []any{t.UserID, t.Date, t.Currency, t.Amount, t.Status, t.Details, t.DetailsLink}

	var id uuid.UUID
	err := sqlx.GetContext(ctx, r.executor(ctx), &id, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", id,
		"error", err,
	)

	return id, err
}

// Update rewrites the editable fields of a transaction: date, amount,
// details and details link. Currency and status are fixed at record time.
func (r *TransactionWriteRepository) Update(ctx context.Context, id uuid.UUID, date time.Time, amount int64, details, detailsLink string) error {
	const query = `
		UPDATE trans
		SET date = $2, amount = $3, details = $4, details_link = $5
		WHERE transaction_id = $1
	`
	args := []any{id, date, amount, details, detailsLink}

	res, err := r.executor(ctx).ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", rowsAffected,
		"error", err,
	)

	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// Delete removes a transaction row.
func (r *TransactionWriteRepository) Delete(ctx context.Context, id uuid.UUID) error {
	const query = `DELETE FROM trans WHERE transaction_id = $1`

	res, err := r.executor(ctx).ExecContext(ctx, query, id)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{id},
		"result", rowsAffected,
		"error", err,
	)

	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// TransactionReadRepository reads rows of the trans table.
type TransactionReadRepository struct {
	db *sqlx.DB
}

func NewTransactionReadRepository(db *sqlx.DB) *TransactionReadRepository {
	return &TransactionReadRepository{db: db}
}

// GetByID returns a transaction or nil when no row matches.
func (r *TransactionReadRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.TransactionDB, error) {
	const query = `
		SELECT transaction_id, user_id, date, currency, amount, status, details, details_link, created_at
		FROM trans
		WHERE transaction_id = $1
	`

	var t models.TransactionDB
	err := r.db.GetContext(ctx, &t, query, id)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{id},
		"result", t,
		"error", err,
	)

	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, err
	}
	return &t, nil
}

// listQuery builds the filtered journal query shared by List and Iterate.
// The date range is inclusive; status and details predicates apply only
// when set. Results are ordered by insertion order (created_at, then id as
// a tie-breaker).
func listQuery(userID uuid.UUID, f models.TransactionFilter) (string, []any) {
	query := `
		SELECT transaction_id, user_id, date, currency, amount, status, details, details_link, created_at
		FROM trans
		WHERE user_id = $1 AND date BETWEEN $2 AND $3`
	args := []any{userID, f.From, f.To}

	if f.Status != "" {
		args = append(args, f.Status)
		query += fmt.Sprintf(" AND status = $%d", len(args))
	}
	if f.Details != "" {
		args = append(args, "%"+f.Details+"%")
		query += fmt.Sprintf(" AND details ILIKE $%d", len(args))
	}
	query += " ORDER BY created_at, transaction_id"

	return query, args
}

// List returns the user's transactions matching the filter, oldest first.
func (r *TransactionReadRepository) List(ctx context.Context, userID uuid.UUID, f models.TransactionFilter) ([]models.TransactionDB, error) {
	query, args := listQuery(userID, f)

	var trans []models.TransactionDB
	err := r.db.SelectContext(ctx, &trans, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", len(trans),
		"error", err,
	)

	return trans, err
}

// Iterate streams the same result set lazily. Each range over the returned
// sequence re-executes the query, so the sequence is restartable; breaking
// out of the loop closes the rows.
func (r *TransactionReadRepository) Iterate(ctx context.Context, userID uuid.UUID, f models.TransactionFilter) iter.Seq2[models.TransactionDB, error] {
	query, args := listQuery(userID, f)

	return func(yield func(models.TransactionDB, error) bool) {
		rows, err := r.db.QueryxContext(ctx, query, args...)
		if err != nil {
			yield(models.TransactionDB{}, err)
			return
		}
		defer rows.Close()

		for rows.Next() {
			var t models.TransactionDB
			if err := rows.StructScan(&t); err != nil {
				yield(models.TransactionDB{}, err)
				return
			}
			if !yield(t, nil) {
				return
			}
		}
		if err := rows.Err(); err != nil {
			yield(models.TransactionDB{}, err)
		}
	}
}
