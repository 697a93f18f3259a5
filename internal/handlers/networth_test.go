package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imhotep-finance/finance-service/internal/services"
)

func TestNetworthHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tokener, userID, header := newTestToken(t)
	svc := NewMockNetworthReader(ctrl)

	svc.EXPECT().
		TotalInFavoriteCurrency(gomock.Any(), userID).
		Return(155.56, "USD", nil)

	req := httptest.NewRequest(http.MethodGet, "/networth", nil)
	req.Header.Set("Authorization", header)
	rec := httptest.NewRecorder()
	NewNetworthHandler(svc, tokener)(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp NetworthResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.InDelta(t, 155.56, resp.Total, 0.001)
	assert.Equal(t, "USD", resp.Currency)
}

func TestNetworthHandler_ProvidersDown(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tokener, userID, header := newTestToken(t)
	svc := NewMockNetworthReader(ctrl)

	svc.EXPECT().
		TotalInFavoriteCurrency(gomock.Any(), userID).
		Return(0.0, "", services.ErrRateProviderUnavailable)

	req := httptest.NewRequest(http.MethodGet, "/networth", nil)
	req.Header.Set("Authorization", header)
	rec := httptest.NewRecorder()
	NewNetworthHandler(svc, tokener)(rec, req)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestBalanceHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tokener, userID, header := newTestToken(t)
	svc := NewMockBalanceReader(ctrl)

	svc.EXPECT().
		Balances(gomock.Any(), userID).
		Return(map[string]int64{"USD": 100, "EUR": 50}, nil)

	req := httptest.NewRequest(http.MethodGet, "/balance", nil)
	req.Header.Set("Authorization", header)
	rec := httptest.NewRecorder()
	NewBalanceHandler(svc, tokener)(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp BalanceResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, map[string]int64{"USD": 100, "EUR": 50}, resp.Balance)
}
