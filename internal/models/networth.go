package models

import "github.com/google/uuid"

// NetworthDB represents a row of the networth table: the running total a
// user holds in one currency. Rows are created lazily on first deposit and
// are never deleted, only zeroed.
type NetworthDB struct {
	NetworthID uuid.UUID `db:"networth_id"`
	UserID     uuid.UUID `db:"user_id"`
	Currency   string    `db:"currency"`
	Total      int64     `db:"total"`
}
