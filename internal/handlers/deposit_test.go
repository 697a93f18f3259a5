package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imhotep-finance/finance-service/internal/models"
)

func TestDepositHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tokener, userID, header := newTestToken(t)
	svc := NewMockDepositRecorder(ctrl)
	transID := uuid.New()

	svc.EXPECT().
		Record(gomock.Any(), userID, gomock.Any(), "USD", int64(100), models.StatusDeposit, "salary", "").
		Return(transID, int64(100), nil)

	req := httptest.NewRequest(http.MethodPost, "/wallet/deposit",
		strings.NewReader(`{"amount":100,"currency":"usd","details":"salary"}`))
	req.Header.Set("Authorization", header)
	rec := httptest.NewRecorder()
	NewDepositHandler(svc, tokener)(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp DepositResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, transID.String(), resp.TransactionID)
	assert.Equal(t, int64(100), resp.NewTotal)
}

func TestDepositHandler_Unauthorized(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tokener, _, _ := newTestToken(t)
	svc := NewMockDepositRecorder(ctrl)

	req := httptest.NewRequest(http.MethodPost, "/wallet/deposit",
		strings.NewReader(`{"amount":100,"currency":"USD"}`))
	rec := httptest.NewRecorder()
	NewDepositHandler(svc, tokener)(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestDepositHandler_InvalidBody(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"zero amount", `{"amount":0,"currency":"USD"}`},
		{"negative amount", `{"amount":-5,"currency":"USD"}`},
		{"bad currency", `{"amount":10,"currency":"DOLLARS"}`},
		{"bad date", `{"amount":10,"currency":"USD","date":"15.07.2026"}`},
		{"malformed json", `{`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			tokener, _, header := newTestToken(t)
			svc := NewMockDepositRecorder(ctrl)

			req := httptest.NewRequest(http.MethodPost, "/wallet/deposit", strings.NewReader(tt.body))
			req.Header.Set("Authorization", header)
			rec := httptest.NewRecorder()
			NewDepositHandler(svc, tokener)(rec, req)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}
