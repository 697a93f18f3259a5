package models

import "github.com/google/uuid"

// Wish statuses.
const (
	WishPending = "pending"
	WishDone    = "done"
)

// WishDB represents a row of the wishlist table. TransactionID points at
// the withdrawal that funded the wish and is set exactly when Status is
// done.
type WishDB struct {
	WishID        uuid.UUID  `db:"wish_id" json:"wish_id"`
	UserID        uuid.UUID  `db:"user_id" json:"user_id"`
	Year          int        `db:"year" json:"year"`
	Price         int64      `db:"price" json:"price"`
	Currency      string     `db:"currency" json:"currency"`
	Details       string     `db:"details" json:"details"`
	Link          string     `db:"link" json:"link"`
	Status        string     `db:"status" json:"status"`
	TransactionID *uuid.UUID `db:"transaction_id" json:"transaction_id,omitempty"`
}
