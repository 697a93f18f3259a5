package repositories

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/imhotep-finance/finance-service/internal/logger"
)

// NetworthWriteRepository mutates the per-(user, currency) ledger rows.
type NetworthWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewNetworthWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *NetworthWriteRepository {
	return &NetworthWriteRepository{db: db, txGetter: txGetter}
}

func (r *NetworthWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// Credit adds amount to the (user, currency) total, creating the ledger row
// on first deposit in that currency. Returns the new total.
func (r *NetworthWriteRepository) Credit(ctx context.Context, userID uuid.UUID, currency string, amount int64) (int64, error) {
	const query = `
		INSERT INTO networth (networth_id, user_id, currency, total, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		ON CONFLICT (user_id, currency)
		DO UPDATE SET total = networth.total + EXCLUDED.total, updated_at = NOW()
		RETURNING total
	`

	var total int64
	err := sqlx.GetContext(ctx, r.executor(ctx), &total, query, uuid.New(), userID, currency, amount)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, currency, amount},
		"result", total,
		"error", err,
	)

	return total, err
}

// Debit subtracts amount from the (user, currency) total in a single
// conditional UPDATE, so two concurrent debits can never both pass the
// sufficiency check against a stale total. It returns sql.ErrNoRows when
// the row is missing or holds less than amount; callers distinguish the
// two cases with the read repository.
func (r *NetworthWriteRepository) Debit(ctx context.Context, userID uuid.UUID, currency string, amount int64) (int64, error) {
	const query = `
		UPDATE networth
		SET total = total - $3, updated_at = NOW()
		WHERE user_id = $1 AND currency = $2 AND total >= $3
		RETURNING total
	`

	var total int64
	err := sqlx.GetContext(ctx, r.executor(ctx), &total, query, userID, currency, amount)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, currency, amount},
		"result", total,
		"error", err,
	)

	return total, err
}

// NetworthReadRepository reads ledger rows.
type NetworthReadRepository struct {
	db *sqlx.DB
}

func NewNetworthReadRepository(db *sqlx.DB) *NetworthReadRepository {
	return &NetworthReadRepository{db: db}
}

// GetTotal returns the current total for (user, currency). The boolean
// reports whether a ledger row exists at all, which is what tells an
// unknown currency apart from an insufficient balance.
func (r *NetworthReadRepository) GetTotal(ctx context.Context, userID uuid.UUID, currency string) (int64, bool, error) {
	const query = `
		SELECT total
		FROM networth
		WHERE user_id = $1 AND currency = $2
	`

	var total int64
	err := r.db.GetContext(ctx, &total, query, userID, currency)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, currency},
		"result", total,
		"error", err,
	)

	if err != nil {
		if isNoRows(err) {
			return 0, false, nil
		}
		return 0, false, err
	}
	return total, true, nil
}

// GetAll returns every (currency, total) the user holds as a map.
func (r *NetworthReadRepository) GetAll(ctx context.Context, userID uuid.UUID) (map[string]int64, error) {
	const query = `
		SELECT currency, total
		FROM networth
		WHERE user_id = $1
	`

	var rows []struct {
		Currency string `db:"currency"`
		Total    int64  `db:"total"`
	}

	err := r.db.SelectContext(ctx, &rows, query, userID)

	totals := make(map[string]int64, len(rows))
	for _, row := range rows {
		totals[row.Currency] = row.Total
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"result", totals,
		"error", err,
	)

	return totals, err
}
