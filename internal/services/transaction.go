package services

import (
	"context"
	"database/sql"
	"errors"
	"iter"
	"time"

	"github.com/google/uuid"
	"github.com/imhotep-finance/finance-service/internal/logger"
	"github.com/imhotep-finance/finance-service/internal/models"
)

// LedgerReader defines read access to the per-(user, currency) ledger.
type LedgerReader interface {
	GetTotal(ctx context.Context, userID uuid.UUID, currency string) (int64, bool, error) // Returns total and whether the row exists
	GetAll(ctx context.Context, userID uuid.UUID) (map[string]int64, error)               // Returns all totals by currency
}

// LedgerWriter defines ledger mutations. Debit returns sql.ErrNoRows when
// the guarded update matched no row (missing row or insufficient total).
type LedgerWriter interface {
	Credit(ctx context.Context, userID uuid.UUID, currency string, amount int64) (int64, error)
	Debit(ctx context.Context, userID uuid.UUID, currency string, amount int64) (int64, error)
}

// TransactionReader defines read access to the journal.
type TransactionReader interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.TransactionDB, error)
	List(ctx context.Context, userID uuid.UUID, f models.TransactionFilter) ([]models.TransactionDB, error)
	Iterate(ctx context.Context, userID uuid.UUID, f models.TransactionFilter) iter.Seq2[models.TransactionDB, error]
}

// TransactionWriter defines journal mutations.
type TransactionWriter interface {
	Save(ctx context.Context, t models.TransactionDB) (uuid.UUID, error)
	Update(ctx context.Context, id uuid.UUID, date time.Time, amount int64, details, detailsLink string) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// WishlistResetter resets wishes that referenced a deleted transaction.
type WishlistResetter interface {
	ResetByTransaction(ctx context.Context, transactionID uuid.UUID) error
}

/// TransactionService keeps the journal and the ledger consistent: every
// record, edit or delete applies the matching ledger delta in the same
// request transaction, and every mutation publishes an event.
type TransactionService struct {
	ledgerReader LedgerReader
	ledgerWriter LedgerWriter
	reader       TransactionReader
	writer       TransactionWriter
	wishlist     WishlistResetter
	kafkaWriter  KafkaWriter
}

// NewTransactionService creates a new TransactionService.
func NewTransactionService(
	ledgerReader LedgerReader,
	ledgerWriter LedgerWriter,
	reader TransactionReader,
	writer TransactionWriter,
	wishlist WishlistResetter,
	kafkaWriter KafkaWriter,
) *TransactionService {
	return &TransactionService{
		ledgerReader: ledgerReader,
		ledgerWriter: ledgerWriter,
		reader:       reader,
		writer:       writer,
		wishlist:     wishlist,
		kafkaWriter:  kafkaWriter,
	}
}

// Record inserts a deposit or withdrawal and applies its ledger effect.
// The ledger is touched first: a withdrawal that fails the sufficiency
// check never leaves a journal row behind. Returns the new transaction id
// and the resulting total in the transaction's currency.
func (s *TransactionService) Record(ctx context.Context, userID uuid.UUID, date time.Time, currency string, amount int64, status, details, detailsLink string) (uuid.UUID, int64, error) {
	var (
		newTotal int64
		err      error
	)

	switch status {
	case models.StatusDeposit:
		newTotal, err = s.ledgerWriter.Credit(ctx, userID, currency, amount)
		if err != nil {
			logger.Log.Errorw("failed to credit ledger", "userID", userID, "currency", currency, "amount", amount, "error", err)
			return uuid.Nil, 0, err
		}
	case models.StatusWithdraw:
		_, found, err := s.ledgerReader.GetTotal(ctx, userID, currency)
		if err != nil {
			return uuid.Nil, 0, err
		}
		if !found {
			return uuid.Nil, 0, ErrUnknownCurrency
		}

		newTotal, err = s.ledgerWriter.Debit(ctx, userID, currency, amount)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return uuid.Nil, 0, ErrInsufficientFunds
			}
			logger.Log.Errorw("failed to debit ledger", "userID", userID, "currency", currency, "amount", amount, "error", err)
			return uuid.Nil, 0, err
		}
	default:
		return uuid.Nil, 0, errors.New("invalid transaction status: " + status)
	}

	id, err := s.writer.Save(ctx, models.TransactionDB{
		UserID:      userID,
		Date:        date,
		Currency:    currency,
		Amount:      amount,
		Status:      status,
		Details:     details,
		DetailsLink: detailsLink,
	})
	if err != nil {
		logger.Log.Errorw("failed to save transaction", "userID", userID, "currency", currency, "amount", amount, "error", err)
		return uuid.Nil, 0, err
	}

	publishEvent(ctx, s.kafkaWriter, userID, id, currency, amount, status)

	return id, newTotal, nil
}

// Edit rewrites a transaction's date, amount and details and re-derives
// the ledger delta: the old amount's effect is reversed and the new
// amount's effect applied in the original direction. Both collapse into a
// single guarded ledger operation on the amount difference, so an edit
// that would drive the total negative fails with ErrInsufficientFunds and
// mutates nothing.
func (s *TransactionService) Edit(ctx context.Context, userID, id uuid.UUID, date time.Time, amount int64, details, detailsLink string) error {
	t, err := s.reader.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if t == nil || t.UserID != userID {
		return ErrNotFound
	}

	diff := amount - t.Amount

	var needDebit int64
	switch {
	case diff == 0:
		// Amount unchanged, ledger untouched.
	case t.Status == models.StatusWithdraw && diff > 0:
		needDebit = diff
	case t.Status == models.StatusWithdraw && diff < 0:
		if _, err := s.ledgerWriter.Credit(ctx, userID, t.Currency, -diff); err != nil {
			return err
		}
	case t.Status == models.StatusDeposit && diff > 0:
		if _, err := s.ledgerWriter.Credit(ctx, userID, t.Currency, diff); err != nil {
			return err
		}
	case t.Status == models.StatusDeposit && diff < 0:
		needDebit = -diff
	}

	if needDebit > 0 {
		if _, err := s.ledgerWriter.Debit(ctx, userID, t.Currency, needDebit); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return ErrInsufficientFunds
			}
			return err
		}
	}

	if err := s.writer.Update(ctx, id, date, amount, details, detailsLink); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}

	publishEvent(ctx, s.kafkaWriter, userID, id, t.Currency, amount, "edit")

	return nil
}

// Delete removes a transaction and reverses its ledger effect: a deleted
// withdrawal credits the amount back, a deleted deposit debits it. When
// reversing a deposit would drive the total negative the delete is
// rejected with ErrWouldOrphanBalance. Any wish funded by the deleted
// transaction is reset to pending with its link cleared.
func (s *TransactionService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	t, err := s.reader.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if t == nil || t.UserID != userID {
		return ErrNotFound
	}

	switch t.Status {
	case models.StatusDeposit:
		if _, err := s.ledgerWriter.Debit(ctx, userID, t.Currency, t.Amount); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return ErrWouldOrphanBalance
			}
			return err
		}
	case models.StatusWithdraw:
		if _, err := s.ledgerWriter.Credit(ctx, userID, t.Currency, t.Amount); err != nil {
			return err
		}
	}

	if err := s.writer.Delete(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}

	if err := s.wishlist.ResetByTransaction(ctx, id); err != nil {
		logger.Log.Errorw("failed to reset wishes for deleted transaction", "transaction_id", id, "error", err)
		return err
	}

	publishEvent(ctx, s.kafkaWriter, userID, id, t.Currency, t.Amount, "delete")

	return nil
}

// List returns the user's transactions matching the filter, oldest first.
// An unset To defaults to today, an unset From to thirty days before To.
func (s *TransactionService) List(ctx context.Context, userID uuid.UUID, f models.TransactionFilter) ([]models.TransactionDB, error) {
	return s.reader.List(ctx, userID, normalizeFilter(f))
}

// Iterate streams the same result set lazily; the sequence re-runs the
// query on every range, so it is restartable.
func (s *TransactionService) Iterate(ctx context.Context, userID uuid.UUID, f models.TransactionFilter) iter.Seq2[models.TransactionDB, error] {
	return s.reader.Iterate(ctx, userID, normalizeFilter(f))
}

func normalizeFilter(f models.TransactionFilter) models.TransactionFilter {
	if f.To.IsZero() {
		f.To = time.Now().UTC().Truncate(24 * time.Hour)
	}
	if f.From.IsZero() {
		f.From = f.To.AddDate(0, 0, -30)
	}
	return f
}
