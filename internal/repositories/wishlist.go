package repositories

import (
	"context"
	"database/sql"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/imhotep-finance/finance-service/internal/logger"
	"github.com/imhotep-finance/finance-service/internal/models"
)

// WishlistWriteRepository mutates rows of the wishlist table.
type WishlistWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewWishlistWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *WishlistWriteRepository {
	return &WishlistWriteRepository{db: db, txGetter: txGetter}
}

func (r *WishlistWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// Save inserts a pending wish and returns its store-generated id.
func (r *WishlistWriteRepository) Save(ctx context.Context, w models.WishDB) (uuid.UUID, error) {
	const query = `
		INSERT INTO wishlist (wish_id, user_id, year, price, currency, details, link, status)
		VALUES (gen_random_uuid(), $1, $2, $3, $4, $5, $6, $7)
		RETURNING wish_id
	`
	args := []any{w.UserID, w.Year, w.Price, w.Currency, w.Details, w.Link, models.WishPending}

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

// Update rewrites the editable fields of a wish.
func (r *WishlistWriteRepository) Update(ctx context.Context, id uuid.UUID, year int, price int64, currency, details, link string) error {
	const query = `
		UPDATE wishlist
		SET year = $2, price = $3, currency = $4, details = $5, link = $6
		WHERE wish_id = $1
	`
	args := []any{id, year, price, currency, details, link}

	return r.exec(ctx, query, args)
}

// Delete removes a wish row.
func (r *WishlistWriteRepository) Delete(ctx context.Context, id uuid.UUID) error {
	const query = `DELETE FROM wishlist WHERE wish_id = $1`
	return r.exec(ctx, query, []any{id})
}

// MarkFunded flips a wish to done and links the withdrawal that funded it.
func (r *WishlistWriteRepository) MarkFunded(ctx context.Context, wishID, transactionID uuid.UUID) error {
	const query = `
		UPDATE wishlist
		SET status = $2, transaction_id = $3
		WHERE wish_id = $1
	`
	return r.exec(ctx, query, []any{wishID, models.WishDone, transactionID})
}

// MarkPending flips a wish back to pending and clears its transaction link.
func (r *WishlistWriteRepository) MarkPending(ctx context.Context, wishID uuid.UUID) error {
	const query = `
		UPDATE wishlist
		SET status = $2, transaction_id = NULL
		WHERE wish_id = $1
	`
	return r.exec(ctx, query, []any{wishID, models.WishPending})
}

// ResetByTransaction resets every wish linked to the given transaction back
// to pending with its link cleared. Used when the transaction is deleted
// from the journal; affecting zero rows is not an error.
func (r *WishlistWriteRepository) ResetByTransaction(ctx context.Context, transactionID uuid.UUID) error {
	const query = `
		UPDATE wishlist
		SET status = $2, transaction_id = NULL
		WHERE transaction_id = $1
	`
	args := []any{transactionID, models.WishPending}

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

	return err
}

func (r *WishlistWriteRepository) exec(ctx context.Context, query string, args []any) error {
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

// WishlistReadRepository reads rows of the wishlist table.
type WishlistReadRepository struct {
	db *sqlx.DB
}

func NewWishlistReadRepository(db *sqlx.DB) *WishlistReadRepository {
	return &WishlistReadRepository{db: db}
}

// GetByID returns a wish or nil when no row matches.
func (r *WishlistReadRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.WishDB, error) {
	const query = `
		SELECT wish_id, user_id, year, price, currency, details, link, status, transaction_id
		FROM wishlist
		WHERE wish_id = $1
	`

	var w models.WishDB
	err := r.db.GetContext(ctx, &w, query, id)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{id},
		"result", w,
		"error", err,
	)

	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, err
	}
	return &w, nil
}

// ListByYear returns the user's wishes for one year, oldest first.
func (r *WishlistReadRepository) ListByYear(ctx context.Context, userID uuid.UUID, year int) ([]models.WishDB, error) {
	const query = `
		SELECT wish_id, user_id, year, price, currency, details, link, status, transaction_id
		FROM wishlist
		WHERE user_id = $1 AND year = $2
		ORDER BY wish_id
	`

	var wishes []models.WishDB
	err := r.db.SelectContext(ctx, &wishes, query, userID, year)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, year},
		"result", len(wishes),
		"error", err,
	)

	return wishes, err
}

// Years returns the distinct years the user has wishes in, ascending.
func (r *WishlistReadRepository) Years(ctx context.Context, userID uuid.UUID) ([]int, error) {
	const query = `
		SELECT DISTINCT year
		FROM wishlist
		WHERE user_id = $1
		ORDER BY year
	`

	var years []int
	err := r.db.SelectContext(ctx, &years, query, userID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"result", years,
		"error", err,
	)

	return years, err
}
