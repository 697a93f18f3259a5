package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/imhotep-finance/finance-service/internal/models"
	"github.com/imhotep-finance/finance-service/internal/services"
)

func TestWithdrawHandler(t *testing.T) {
	tests := []struct {
		name       string
		recordErr  error
		wantStatus int
	}{
		{"success", nil, http.StatusOK},
		{"insufficient funds", services.ErrInsufficientFunds, http.StatusBadRequest},
		{"unknown currency", services.ErrUnknownCurrency, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			tokener, userID, header := newTestToken(t)
			svc := NewMockWithdrawRecorder(ctrl)

			svc.EXPECT().
				Record(gomock.Any(), userID, gomock.Any(), "USD", int64(150), models.StatusWithdraw, "", "").
				Return(uuid.New(), int64(0), tt.recordErr)

			req := httptest.NewRequest(http.MethodPost, "/wallet/withdraw",
				strings.NewReader(`{"amount":150,"currency":"USD"}`))
			req.Header.Set("Authorization", header)
			rec := httptest.NewRecorder()
			NewWithdrawHandler(svc, tokener)(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestWithdrawHandler_Unauthorized(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tokener, _, _ := newTestToken(t)
	svc := NewMockWithdrawRecorder(ctrl)

	req := httptest.NewRequest(http.MethodPost, "/wallet/withdraw",
		strings.NewReader(`{"amount":10,"currency":"USD"}`))
	req.Header.Set("Authorization", "Bearer bogus")
	rec := httptest.NewRecorder()
	NewWithdrawHandler(svc, tokener)(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
