package services

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imhotep-finance/finance-service/internal/models"
)

func newWishlistServiceForTest(ctrl *gomock.Controller) (
	*WishlistService,
	*MockWishlistReader,
	*MockWishlistWriter,
	*MockLedgerReader,
	*MockLedgerWriter,
	*MockWishTransactionWriter,
) {
	reader := NewMockWishlistReader(ctrl)
	writer := NewMockWishlistWriter(ctrl)
	ledgerReader := NewMockLedgerReader(ctrl)
	ledgerWriter := NewMockLedgerWriter(ctrl)
	transWriter := NewMockWishTransactionWriter(ctrl)
	svc := NewWishlistService(reader, writer, ledgerReader, ledgerWriter, transWriter, nil)
	return svc, reader, writer, ledgerReader, ledgerWriter, transWriter
}

func pendingWish(userID uuid.UUID) *models.WishDB {
	return &models.WishDB{
		WishID:   uuid.New(),
		UserID:   userID,
		Year:     2026,
		Price:    80,
		Currency: "USD",
		Details:  "mechanical keyboard",
		Link:     "https://example.com/kb",
		Status:   models.WishPending,
	}
}

func TestWishlistService_Fund(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, reader, writer, ledgerReader, ledgerWriter, transWriter := newWishlistServiceForTest(ctrl)

	userID := uuid.New()
	w := pendingWish(userID)
	transID := uuid.New()

	reader.EXPECT().GetByID(gomock.Any(), w.WishID).Return(w, nil)
	ledgerReader.EXPECT().GetTotal(gomock.Any(), userID, "USD").Return(int64(100), true, nil)
	ledgerWriter.EXPECT().Debit(gomock.Any(), userID, "USD", int64(80)).Return(int64(20), nil)
	transWriter.EXPECT().
		Save(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, tr models.TransactionDB) (uuid.UUID, error) {
			assert.Equal(t, models.StatusWithdraw, tr.Status)
			assert.Equal(t, int64(80), tr.Amount)
			assert.Equal(t, w.Details, tr.Details)
			assert.Equal(t, w.Link, tr.DetailsLink)
			return transID, nil
		})
	writer.EXPECT().MarkFunded(gomock.Any(), w.WishID, transID).Return(nil)

	got, err := svc.Fund(context.Background(), userID, w.WishID)
	require.NoError(t, err)
	assert.Equal(t, transID, got)
}

func TestWishlistService_Fund_UnknownCurrency(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, reader, _, ledgerReader, _, _ := newWishlistServiceForTest(ctrl)

	userID := uuid.New()
	w := pendingWish(userID)
	w.Currency = "JPY"

	reader.EXPECT().GetByID(gomock.Any(), w.WishID).Return(w, nil)
	ledgerReader.EXPECT().GetTotal(gomock.Any(), userID, "JPY").Return(int64(0), false, nil)

	_, err := svc.Fund(context.Background(), userID, w.WishID)
	assert.ErrorIs(t, err, ErrUnknownCurrency)
}

func TestWishlistService_Fund_InsufficientFunds(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, reader, _, ledgerReader, _, _ := newWishlistServiceForTest(ctrl)

	userID := uuid.New()
	w := pendingWish(userID)

	reader.EXPECT().GetByID(gomock.Any(), w.WishID).Return(w, nil)
	ledgerReader.EXPECT().GetTotal(gomock.Any(), userID, "USD").Return(int64(50), true, nil)

	_, err := svc.Fund(context.Background(), userID, w.WishID)
	assert.ErrorIs(t, err, ErrInsufficientFunds)
}

func TestWishlistService_Fund_LostRace(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, reader, _, ledgerReader, ledgerWriter, _ := newWishlistServiceForTest(ctrl)

	userID := uuid.New()
	w := pendingWish(userID)

	// The read said there was enough, the guarded debit disagreed.
	reader.EXPECT().GetByID(gomock.Any(), w.WishID).Return(w, nil)
	ledgerReader.EXPECT().GetTotal(gomock.Any(), userID, "USD").Return(int64(100), true, nil)
	ledgerWriter.EXPECT().Debit(gomock.Any(), userID, "USD", int64(80)).Return(int64(0), sql.ErrNoRows)

	_, err := svc.Fund(context.Background(), userID, w.WishID)
	assert.ErrorIs(t, err, ErrInsufficientFunds)
}

func TestWishlistService_Fund_AlreadyFunded(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, reader, _, _, _, _ := newWishlistServiceForTest(ctrl)

	userID := uuid.New()
	w := pendingWish(userID)
	transID := uuid.New()
	w.Status = models.WishDone
	w.TransactionID = &transID

	reader.EXPECT().GetByID(gomock.Any(), w.WishID).Return(w, nil)

	_, err := svc.Fund(context.Background(), userID, w.WishID)
	assert.ErrorIs(t, err, ErrWishAlreadyFunded)
}

func TestWishlistService_Unfund(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, reader, writer, _, ledgerWriter, transWriter := newWishlistServiceForTest(ctrl)

	userID := uuid.New()
	w := pendingWish(userID)
	transID := uuid.New()
	w.Status = models.WishDone
	w.TransactionID = &transID

	reader.EXPECT().GetByID(gomock.Any(), w.WishID).Return(w, nil)
	transWriter.EXPECT().Delete(gomock.Any(), transID).Return(nil)
	ledgerWriter.EXPECT().Credit(gomock.Any(), userID, "USD", int64(80)).Return(int64(100), nil)
	writer.EXPECT().MarkPending(gomock.Any(), w.WishID).Return(nil)

	err := svc.Unfund(context.Background(), userID, w.WishID)
	assert.NoError(t, err)
}

func TestWishlistService_Unfund_Pending(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, reader, _, _, _, _ := newWishlistServiceForTest(ctrl)

	userID := uuid.New()
	w := pendingWish(userID)

	reader.EXPECT().GetByID(gomock.Any(), w.WishID).Return(w, nil)

	err := svc.Unfund(context.Background(), userID, w.WishID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestWishlistService_Edit_DoneRejected(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, reader, _, _, _, _ := newWishlistServiceForTest(ctrl)

	userID := uuid.New()
	w := pendingWish(userID)
	transID := uuid.New()
	w.Status = models.WishDone
	w.TransactionID = &transID

	reader.EXPECT().GetByID(gomock.Any(), w.WishID).Return(w, nil)

	err := svc.Edit(context.Background(), userID, w.WishID, 2027, 90, "USD", "", "")
	assert.ErrorIs(t, err, ErrWishAlreadyFunded)
}

func TestWishlistService_Edit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, reader, writer, _, _, _ := newWishlistServiceForTest(ctrl)

	userID := uuid.New()
	w := pendingWish(userID)

	reader.EXPECT().GetByID(gomock.Any(), w.WishID).Return(w, nil)
	writer.EXPECT().Update(gomock.Any(), w.WishID, 2027, int64(90), "EUR", "new details", "").Return(nil)

	err := svc.Edit(context.Background(), userID, w.WishID, 2027, 90, "EUR", "new details", "")
	assert.NoError(t, err)
}

func TestWishlistService_Delete_NotOwned(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, reader, _, _, _, _ := newWishlistServiceForTest(ctrl)

	w := pendingWish(uuid.New())
	reader.EXPECT().GetByID(gomock.Any(), w.WishID).Return(w, nil)

	err := svc.Delete(context.Background(), uuid.New(), w.WishID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestWishlistService_ListByYear_DefaultsToCurrentYear(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, reader, _, _, _, _ := newWishlistServiceForTest(ctrl)

	userID := uuid.New()
	reader.EXPECT().
		ListByYear(gomock.Any(), userID, time.Now().UTC().Year()).
		Return([]models.WishDB{}, nil)

	wishes, err := svc.ListByYear(context.Background(), userID, 0)
	require.NoError(t, err)
	assert.Empty(t, wishes)
}
