package services

import (
	"context"
	"database/sql"
	"iter"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imhotep-finance/finance-service/internal/models"
)

func newTransactionServiceForTest(ctrl *gomock.Controller) (
	*TransactionService,
	*MockLedgerReader,
	*MockLedgerWriter,
	*MockTransactionReader,
	*MockTransactionWriter,
	*MockWishlistResetter,
) {
	ledgerReader := NewMockLedgerReader(ctrl)
	ledgerWriter := NewMockLedgerWriter(ctrl)
	reader := NewMockTransactionReader(ctrl)
	writer := NewMockTransactionWriter(ctrl)
	wishlist := NewMockWishlistResetter(ctrl)
	svc := NewTransactionService(ledgerReader, ledgerWriter, reader, writer, wishlist, nil)
	return svc, ledgerReader, ledgerWriter, reader, writer, wishlist
}

func TestTransactionService_Record_Deposit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, ledgerWriter, _, writer, _ := newTransactionServiceForTest(ctrl)

	userID := uuid.New()
	transID := uuid.New()
	date := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)

	ledgerWriter.EXPECT().
		Credit(gomock.Any(), userID, "USD", int64(100)).
		Return(int64(100), nil)
	writer.EXPECT().
		Save(gomock.Any(), models.TransactionDB{
			UserID:   userID,
			Date:     date,
			Currency: "USD",
			Amount:   100,
			Status:   models.StatusDeposit,
			Details:  "salary",
		}).
		Return(transID, nil)

	id, total, err := svc.Record(context.Background(), userID, date, "USD", 100, models.StatusDeposit, "salary", "")
	require.NoError(t, err)
	assert.Equal(t, transID, id)
	assert.Equal(t, int64(100), total)
}

func TestTransactionService_Record_WithdrawInsufficient(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, ledgerReader, ledgerWriter, _, _, _ := newTransactionServiceForTest(ctrl)

	userID := uuid.New()

	ledgerReader.EXPECT().
		GetTotal(gomock.Any(), userID, "USD").
		Return(int64(100), true, nil)
	ledgerWriter.EXPECT().
		Debit(gomock.Any(), userID, "USD", int64(150)).
		Return(int64(0), sql.ErrNoRows)

	// No Save expectation: a rejected withdrawal must not reach the journal.
	_, _, err := svc.Record(context.Background(), userID, time.Now(), "USD", 150, models.StatusWithdraw, "", "")
	assert.ErrorIs(t, err, ErrInsufficientFunds)
}

func TestTransactionService_Record_WithdrawUnknownCurrency(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, ledgerReader, _, _, _, _ := newTransactionServiceForTest(ctrl)

	userID := uuid.New()

	ledgerReader.EXPECT().
		GetTotal(gomock.Any(), userID, "JPY").
		Return(int64(0), false, nil)

	_, _, err := svc.Record(context.Background(), userID, time.Now(), "JPY", 10, models.StatusWithdraw, "", "")
	assert.ErrorIs(t, err, ErrUnknownCurrency)
}

func TestTransactionService_Record_WithdrawSuccess(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, ledgerReader, ledgerWriter, _, writer, _ := newTransactionServiceForTest(ctrl)

	userID := uuid.New()
	transID := uuid.New()

	ledgerReader.EXPECT().
		GetTotal(gomock.Any(), userID, "USD").
		Return(int64(100), true, nil)
	ledgerWriter.EXPECT().
		Debit(gomock.Any(), userID, "USD", int64(40)).
		Return(int64(60), nil)
	writer.EXPECT().
		Save(gomock.Any(), gomock.Any()).
		Return(transID, nil)

	id, total, err := svc.Record(context.Background(), userID, time.Now(), "USD", 40, models.StatusWithdraw, "", "")
	require.NoError(t, err)
	assert.Equal(t, transID, id)
	assert.Equal(t, int64(60), total)
}

func TestTransactionService_Record_InvalidStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _, _, _, _ := newTransactionServiceForTest(ctrl)

	_, _, err := svc.Record(context.Background(), uuid.New(), time.Now(), "USD", 10, "transfer", "", "")
	assert.Error(t, err)
}

func TestTransactionService_Edit(t *testing.T) {
	userID := uuid.New()
	transID := uuid.New()
	date := time.Date(2026, 7, 15, 0, 0, 0, 0, time.UTC)

	existing := func(status string, amount int64) *models.TransactionDB {
		return &models.TransactionDB{
			TransactionID: transID,
			UserID:        userID,
			Date:          date,
			Currency:      "USD",
			Amount:        amount,
			Status:        status,
		}
	}

	tests := []struct {
		name      string
		trans     *models.TransactionDB
		newAmount int64
		setup     func(lw *MockLedgerWriter, w *MockTransactionWriter)
		wantErr   error
	}{
		{
			name:      "deposit raised credits the difference",
			trans:     existing(models.StatusDeposit, 100),
			newAmount: 130,
			setup: func(lw *MockLedgerWriter, w *MockTransactionWriter) {
				lw.EXPECT().Credit(gomock.Any(), userID, "USD", int64(30)).Return(int64(130), nil)
				w.EXPECT().Update(gomock.Any(), transID, gomock.Any(), int64(130), "", "").Return(nil)
			},
		},
		{
			name:      "deposit lowered debits the difference",
			trans:     existing(models.StatusDeposit, 100),
			newAmount: 70,
			setup: func(lw *MockLedgerWriter, w *MockTransactionWriter) {
				lw.EXPECT().Debit(gomock.Any(), userID, "USD", int64(30)).Return(int64(70), nil)
				w.EXPECT().Update(gomock.Any(), transID, gomock.Any(), int64(70), "", "").Return(nil)
			},
		},
		{
			name:      "withdrawal raised debits the difference",
			trans:     existing(models.StatusWithdraw, 50),
			newAmount: 80,
			setup: func(lw *MockLedgerWriter, w *MockTransactionWriter) {
				lw.EXPECT().Debit(gomock.Any(), userID, "USD", int64(30)).Return(int64(20), nil)
				w.EXPECT().Update(gomock.Any(), transID, gomock.Any(), int64(80), "", "").Return(nil)
			},
		},
		{
			name:      "withdrawal lowered credits the difference",
			trans:     existing(models.StatusWithdraw, 50),
			newAmount: 20,
			setup: func(lw *MockLedgerWriter, w *MockTransactionWriter) {
				lw.EXPECT().Credit(gomock.Any(), userID, "USD", int64(30)).Return(int64(80), nil)
				w.EXPECT().Update(gomock.Any(), transID, gomock.Any(), int64(20), "", "").Return(nil)
			},
		},
		{
			name:      "unchanged amount leaves the ledger alone",
			trans:     existing(models.StatusDeposit, 100),
			newAmount: 100,
			setup: func(lw *MockLedgerWriter, w *MockTransactionWriter) {
				w.EXPECT().Update(gomock.Any(), transID, gomock.Any(), int64(100), "", "").Return(nil)
			},
		},
		{
			name:      "deposit lowered past the balance is rejected",
			trans:     existing(models.StatusDeposit, 100),
			newAmount: 10,
			setup: func(lw *MockLedgerWriter, w *MockTransactionWriter) {
				lw.EXPECT().Debit(gomock.Any(), userID, "USD", int64(90)).Return(int64(0), sql.ErrNoRows)
			},
			wantErr: ErrInsufficientFunds,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc, _, ledgerWriter, reader, writer, _ := newTransactionServiceForTest(ctrl)

			reader.EXPECT().GetByID(gomock.Any(), transID).Return(tt.trans, nil)
			tt.setup(ledgerWriter, writer)

			err := svc.Edit(context.Background(), userID, transID, date, tt.newAmount, "", "")
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestTransactionService_Edit_NotOwned(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _, reader, _, _ := newTransactionServiceForTest(ctrl)

	transID := uuid.New()
	reader.EXPECT().GetByID(gomock.Any(), transID).Return(&models.TransactionDB{
		TransactionID: transID,
		UserID:        uuid.New(),
	}, nil)

	err := svc.Edit(context.Background(), uuid.New(), transID, time.Now(), 10, "", "")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestTransactionService_Delete_WithdrawCreditsBack(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, ledgerWriter, reader, writer, wishlist := newTransactionServiceForTest(ctrl)

	userID := uuid.New()
	transID := uuid.New()

	reader.EXPECT().GetByID(gomock.Any(), transID).Return(&models.TransactionDB{
		TransactionID: transID,
		UserID:        userID,
		Currency:      "EUR",
		Amount:        40,
		Status:        models.StatusWithdraw,
	}, nil)
	ledgerWriter.EXPECT().Credit(gomock.Any(), userID, "EUR", int64(40)).Return(int64(90), nil)
	writer.EXPECT().Delete(gomock.Any(), transID).Return(nil)
	wishlist.EXPECT().ResetByTransaction(gomock.Any(), transID).Return(nil)

	err := svc.Delete(context.Background(), userID, transID)
	assert.NoError(t, err)
}

func TestTransactionService_Delete_DepositWouldOrphanBalance(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, ledgerWriter, reader, _, _ := newTransactionServiceForTest(ctrl)

	userID := uuid.New()
	transID := uuid.New()

	reader.EXPECT().GetByID(gomock.Any(), transID).Return(&models.TransactionDB{
		TransactionID: transID,
		UserID:        userID,
		Currency:      "USD",
		Amount:        100,
		Status:        models.StatusDeposit,
	}, nil)
	ledgerWriter.EXPECT().Debit(gomock.Any(), userID, "USD", int64(100)).Return(int64(0), sql.ErrNoRows)

	err := svc.Delete(context.Background(), userID, transID)
	assert.ErrorIs(t, err, ErrWouldOrphanBalance)
}

func TestTransactionService_Delete_Missing(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _, reader, _, _ := newTransactionServiceForTest(ctrl)

	transID := uuid.New()
	reader.EXPECT().GetByID(gomock.Any(), transID).Return(nil, nil)

	err := svc.Delete(context.Background(), uuid.New(), transID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestTransactionService_List_DefaultsWindow(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _, reader, _, _ := newTransactionServiceForTest(ctrl)

	userID := uuid.New()
	reader.EXPECT().
		List(gomock.Any(), userID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, f models.TransactionFilter) ([]models.TransactionDB, error) {
			require.False(t, f.To.IsZero())
			require.False(t, f.From.IsZero())
			assert.Equal(t, f.To.AddDate(0, 0, -30), f.From)
			return nil, nil
		})

	_, err := svc.List(context.Background(), userID, models.TransactionFilter{})
	assert.NoError(t, err)
}

func TestTransactionService_Iterate_Restartable(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _, reader, _, _ := newTransactionServiceForTest(ctrl)

	userID := uuid.New()
	rows := []models.TransactionDB{
		{TransactionID: uuid.New(), Amount: 10},
		{TransactionID: uuid.New(), Amount: 20},
	}
	seq := iter.Seq2[models.TransactionDB, error](func(yield func(models.TransactionDB, error) bool) {
		for _, r := range rows {
			if !yield(r, nil) {
				return
			}
		}
	})
	reader.EXPECT().Iterate(gomock.Any(), userID, gomock.Any()).Return(seq)

	got := svc.Iterate(context.Background(), userID, models.TransactionFilter{})

	// Two full passes over the same sequence.
	for range 2 {
		var amounts []int64
		for tr, err := range got {
			require.NoError(t, err)
			amounts = append(amounts, tr.Amount)
		}
		assert.Equal(t, []int64{10, 20}, amounts)
	}
}
