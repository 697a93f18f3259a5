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

const userColumns = `user_id, username, email, password_hash, mail_verified, verification_code, favorite_currency, created_at, updated_at`

// UserReadRepository reads rows of the users table.
type UserReadRepository struct {
	db *sqlx.DB
}

func NewUserReadRepository(db *sqlx.DB) *UserReadRepository {
	return &UserReadRepository{db: db}
}

// GetByUsernameOrEmail looks a user up by username or email; a nil
// argument skips that predicate. With both set it matches either, which is
// what the registration uniqueness check needs. Returns nil when no row
// matches.
func (r *UserReadRepository) GetByUsernameOrEmail(ctx context.Context, username, email *string) (*models.UserDB, error) {
	const query = `
		SELECT ` + userColumns + `
		FROM users
		WHERE ($1::VARCHAR IS NOT NULL AND LOWER(username) = LOWER($1))
		   OR ($2::VARCHAR IS NOT NULL AND LOWER(email) = LOWER($2))
		LIMIT 1
	`

	var user models.UserDB
	err := r.db.GetContext(ctx, &user, query, username, email)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{username, email},
		"result", user.UserID,
		"error", err,
	)

	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

// GetByID returns a user by primary key, or nil when no row matches.
func (r *UserReadRepository) GetByID(ctx context.Context, userID uuid.UUID) (*models.UserDB, error) {
	const query = `
		SELECT ` + userColumns + `
		FROM users
		WHERE user_id = $1
	`

	var user models.UserDB
	err := r.db.GetContext(ctx, &user, query, userID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"result", user.UserID,
		"error", err,
	)

	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

// UserWriteRepository mutates rows of the users table.
type UserWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewUserWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *UserWriteRepository {
	return &UserWriteRepository{db: db, txGetter: txGetter}
}

func (r *UserWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// Save inserts a new unverified user with the default favorite currency and
// returns the store-generated id.
func (r *UserWriteRepository) Save(ctx context.Context, username, email, passwordHash, verificationCode string) (uuid.UUID, error) {
	const query = `
		INSERT INTO users (user_id, username, email, password_hash, mail_verified, verification_code, favorite_currency, created_at, updated_at)
		VALUES (gen_random_uuid(), $1, $2, $3, FALSE, $4, 'USD', NOW(), NOW())
		RETURNING user_id
	`
	args := []any{username, email, passwordHash, verificationCode}

	var id uuid.UUID
	err := sqlx.GetContext(ctx, r.executor(ctx), &id, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{username, email},
		"result", id,
		"error", err,
	)

	return id, err
}

// SetMailVerified marks the user's mail address verified and clears the code.
func (r *UserWriteRepository) SetMailVerified(ctx context.Context, userID uuid.UUID) error {
	const query = `
		UPDATE users
		SET mail_verified = TRUE, verification_code = '', updated_at = NOW()
		WHERE user_id = $1
	`
	return r.exec(ctx, query, []any{userID})
}

// SetVerificationCode stores a fresh verification code for the user.
func (r *UserWriteRepository) SetVerificationCode(ctx context.Context, userID uuid.UUID, code string) error {
	const query = `
		UPDATE users
		SET verification_code = $2, updated_at = NOW()
		WHERE user_id = $1
	`
	return r.exec(ctx, query, []any{userID, code})
}

// UpdatePassword replaces the user's password hash.
func (r *UserWriteRepository) UpdatePassword(ctx context.Context, userID uuid.UUID, passwordHash string) error {
	const query = `
		UPDATE users
		SET password_hash = $2, updated_at = NOW()
		WHERE user_id = $1
	`
	return r.exec(ctx, query, []any{userID, passwordHash})
}

// UpdateFavoriteCurrency changes the currency net worth is aggregated into.
func (r *UserWriteRepository) UpdateFavoriteCurrency(ctx context.Context, userID uuid.UUID, currency string) error {
	const query = `
		UPDATE users
		SET favorite_currency = $2, updated_at = NOW()
		WHERE user_id = $1
	`
	return r.exec(ctx, query, []any{userID, currency})
}

// UpdateEmail changes the mail address, marks it unverified and stores the
// new verification code.
func (r *UserWriteRepository) UpdateEmail(ctx context.Context, userID uuid.UUID, email, verificationCode string) error {
	const query = `
		UPDATE users
		SET email = $2, mail_verified = FALSE, verification_code = $3, updated_at = NOW()
		WHERE user_id = $1
	`
	return r.exec(ctx, query, []any{userID, email, verificationCode})
}

func (r *UserWriteRepository) exec(ctx context.Context, query string, args []any) error {
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
