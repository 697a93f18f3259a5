package services

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/imhotep-finance/finance-service/internal/logger"
	"github.com/imhotep-finance/finance-service/internal/models"
)

// WishlistReader defines read access to the wishlist.
type WishlistReader interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.WishDB, error)
	ListByYear(ctx context.Context, userID uuid.UUID, year int) ([]models.WishDB, error)
	Years(ctx context.Context, userID uuid.UUID) ([]int, error)
}

// WishlistWriter defines wishlist mutations.
type WishlistWriter interface {
	Save(ctx context.Context, w models.WishDB) (uuid.UUID, error)
	Update(ctx context.Context, id uuid.UUID, year int, price int64, currency, details, link string) error
	Delete(ctx context.Context, id uuid.UUID) error
	MarkFunded(ctx context.Context, wishID, transactionID uuid.UUID) error
	MarkPending(ctx context.Context, wishID uuid.UUID) error
}

// WishTransactionWriter covers the journal writes the funding engine needs.
type WishTransactionWriter interface {
	Save(ctx context.Context, t models.TransactionDB) (uuid.UUID, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

/// WishlistService drives the pending/done state machine: funding a wish
// debits the ledger and materializes a linked withdrawal, unfunding
// reverses both.
type WishlistService struct {
	reader       WishlistReader
	writer       WishlistWriter
	ledgerReader LedgerReader
	ledgerWriter LedgerWriter
	transWriter  WishTransactionWriter
	kafkaWriter  KafkaWriter
}

// NewWishlistService creates a new WishlistService.
func NewWishlistService(
	reader WishlistReader,
	writer WishlistWriter,
	ledgerReader LedgerReader,
	ledgerWriter LedgerWriter,
	transWriter WishTransactionWriter,
	kafkaWriter KafkaWriter,
) *WishlistService {
	return &WishlistService{
		reader:       reader,
		writer:       writer,
		ledgerReader: ledgerReader,
		ledgerWriter: ledgerWriter,
		transWriter:  transWriter,
		kafkaWriter:  kafkaWriter,
	}
}

// Add creates a pending wish.
func (s *WishlistService) Add(ctx context.Context, userID uuid.UUID, year int, price int64, currency, details, link string) (uuid.UUID, error) {
	id, err := s.writer.Save(ctx, models.WishDB{
		UserID:   userID,
		Year:     year,
		Price:    price,
		Currency: currency,
		Details:  details,
		Link:     link,
	})
	if err != nil {
		logger.Log.Errorw("failed to save wish", "userID", userID, "error", err)
		return uuid.Nil, err
	}
	return id, nil
}

// Edit rewrites a wish. Only pending wishes are editable: a done wish is
// backed by a recorded withdrawal whose amount must stay in sync.
func (s *WishlistService) Edit(ctx context.Context, userID, wishID uuid.UUID, year int, price int64, currency, details, link string) error {
	w, err := s.getOwned(ctx, userID, wishID)
	if err != nil {
		return err
	}
	if w.Status == models.WishDone {
		return ErrWishAlreadyFunded
	}

	if err := s.writer.Update(ctx, wishID, year, price, currency, details, link); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

// Delete removes a wish. The linked transaction of a done wish stays in
// the journal; only the wish row goes away.
func (s *WishlistService) Delete(ctx context.Context, userID, wishID uuid.UUID) error {
	if _, err := s.getOwned(ctx, userID, wishID); err != nil {
		return err
	}

	if err := s.writer.Delete(ctx, wishID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

// Fund moves a wish from pending to done: it debits the ledger by the
// wish's price, records a withdrawal carrying the wish's details and link,
// and links it to the wish. A user with no ledger row in the wish's
// currency gets ErrUnknownCurrency; one with too small a total,
// ErrInsufficientFunds. Either way the wish stays pending.
func (s *WishlistService) Fund(ctx context.Context, userID, wishID uuid.UUID) (uuid.UUID, error) {
	w, err := s.getOwned(ctx, userID, wishID)
	if err != nil {
		return uuid.Nil, err
	}
	if w.Status == models.WishDone {
		return uuid.Nil, ErrWishAlreadyFunded
	}

	total, found, err := s.ledgerReader.GetTotal(ctx, userID, w.Currency)
	if err != nil {
		return uuid.Nil, err
	}
	if !found {
		return uuid.Nil, ErrUnknownCurrency
	}
	if total < w.Price {
		return uuid.Nil, ErrInsufficientFunds
	}

	if _, err := s.ledgerWriter.Debit(ctx, userID, w.Currency, w.Price); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return uuid.Nil, ErrInsufficientFunds
		}
		return uuid.Nil, err
	}

	transID, err := s.transWriter.Save(ctx, models.TransactionDB{
		UserID:      userID,
		Date:        time.Now().UTC().Truncate(24 * time.Hour),
		Currency:    w.Currency,
		Amount:      w.Price,
		Status:      models.StatusWithdraw,
		Details:     w.Details,
		DetailsLink: w.Link,
	})
	if err != nil {
		logger.Log.Errorw("failed to record funding withdrawal", "wishID", wishID, "error", err)
		return uuid.Nil, err
	}

	if err := s.writer.MarkFunded(ctx, wishID, transID); err != nil {
		logger.Log.Errorw("failed to mark wish funded", "wishID", wishID, "error", err)
		return uuid.Nil, err
	}

	publishEvent(ctx, s.kafkaWriter, userID, transID, w.Currency, w.Price, "fund")

	return transID, nil
}

// Unfund moves a done wish back to pending: the linked withdrawal is
// deleted, the ledger credited back by the wish's price, and the link
// cleared. Crediting back never fails, so unfund always succeeds on a
// done wish.
func (s *WishlistService) Unfund(ctx context.Context, userID, wishID uuid.UUID) error {
	w, err := s.getOwned(ctx, userID, wishID)
	if err != nil {
		return err
	}
	if w.Status != models.WishDone || w.TransactionID == nil {
		return ErrNotFound
	}

	if err := s.transWriter.Delete(ctx, *w.TransactionID); err != nil && !errors.Is(err, sql.ErrNoRows) {
		return err
	}

	if _, err := s.ledgerWriter.Credit(ctx, userID, w.Currency, w.Price); err != nil {
		return err
	}

	if err := s.writer.MarkPending(ctx, wishID); err != nil {
		return err
	}

	publishEvent(ctx, s.kafkaWriter, userID, *w.TransactionID, w.Currency, w.Price, "unfund")

	return nil
}

// ListByYear returns the user's wishes for one year; a zero year means the
// current year.
func (s *WishlistService) ListByYear(ctx context.Context, userID uuid.UUID, year int) ([]models.WishDB, error) {
	if year == 0 {
		year = time.Now().UTC().Year()
	}
	return s.reader.ListByYear(ctx, userID, year)
}

// Years returns the distinct years the user has wishes in.
func (s *WishlistService) Years(ctx context.Context, userID uuid.UUID) ([]int, error) {
	return s.reader.Years(ctx, userID)
}

func (s *WishlistService) getOwned(ctx context.Context, userID, wishID uuid.UUID) (*models.WishDB, error) {
	w, err := s.reader.GetByID(ctx, wishID)
	if err != nil {
		return nil, err
	}
	if w == nil || w.UserID != userID {
		return nil, ErrNotFound
	}
	return w, nil
}
