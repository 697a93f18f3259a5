package models

import (
	"time"

	"github.com/google/uuid"
)

// UserDB represents a row of the users table.
type UserDB struct {
	UserID           uuid.UUID `db:"user_id"`
	Username         string    `db:"username"`
	Email            string    `db:"email"`
	PasswordHash     string    `db:"password_hash"`
	MailVerified     bool      `db:"mail_verified"`
	VerificationCode string    `db:"verification_code"`
	FavoriteCurrency string    `db:"favorite_currency"`
	CreatedAt        time.Time `db:"created_at"`
	UpdatedAt        time.Time `db:"updated_at"`
}
