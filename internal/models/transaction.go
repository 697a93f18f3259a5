package models

import (
	"time"

	"github.com/google/uuid"
)

// Transaction statuses.
const (
	StatusDeposit  = "deposit"
	StatusWithdraw = "withdraw"
)

// TransactionDB represents a row of the trans table.
// Amount is in whole currency units and is always positive;
// Status tells whether it credited or debited the ledger.
type TransactionDB struct {
	TransactionID uuid.UUID `db:"transaction_id" json:"transaction_id"`
	UserID        uuid.UUID `db:"user_id" json:"user_id"`
	Date          time.Time `db:"date" json:"date"`
	Currency      string    `db:"currency" json:"currency"`
	Amount        int64     `db:"amount" json:"amount"`
	Status        string    `db:"status" json:"status"`
	Details       string    `db:"details" json:"details"`
	DetailsLink   string    `db:"details_link" json:"details_link"`
	CreatedAt     time.Time `db:"created_at" json:"created_at"`
}

// TransactionFilter narrows a journal listing. From and To are inclusive;
// Status and Details are optional (empty means no predicate, Details
// matches as a case-insensitive substring).
type TransactionFilter struct {
	From    time.Time
	To      time.Time
	Status  string
	Details string
}

// TransactionEvent is the payload published to Kafka for every
// ledger-affecting operation.
type TransactionEvent struct {
	TransactionID string `json:"transaction_id"`
	UserID        string `json:"user_id"`
	Timestamp     int64  `json:"timestamp"`
	Currency      string `json:"currency"`
	Amount        int64  `json:"amount"`
	Operation     string `json:"operation"`
}
