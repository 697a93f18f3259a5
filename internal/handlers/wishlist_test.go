package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imhotep-finance/finance-service/internal/models"
	"github.com/imhotep-finance/finance-service/internal/services"
)

func TestWishlistListHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tokener, userID, header := newTestToken(t)
	svc := NewMockWishlistViewer(ctrl)

	svc.EXPECT().
		ListByYear(gomock.Any(), userID, 2026).
		Return([]models.WishDB{{WishID: uuid.New(), Year: 2026, Price: 80}}, nil)

	req := httptest.NewRequest(http.MethodGet, "/wishlist?year=2026", nil)
	req.Header.Set("Authorization", header)
	rec := httptest.NewRecorder()
	NewWishlistListHandler(svc, tokener)(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp WishlistResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Len(t, resp.Wishes, 1)
}

func TestWishlistYearsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tokener, userID, header := newTestToken(t)
	svc := NewMockWishlistViewer(ctrl)

	svc.EXPECT().Years(gomock.Any(), userID).Return([]int{2025, 2026}, nil)

	req := httptest.NewRequest(http.MethodGet, "/wishlist/years", nil)
	req.Header.Set("Authorization", header)
	rec := httptest.NewRecorder()
	NewWishlistYearsHandler(svc, tokener)(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp WishlistYearsResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, []int{2025, 2026}, resp.Years)
}

func TestWishAddHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tokener, userID, header := newTestToken(t)
	svc := NewMockWishlistEditor(ctrl)
	wishID := uuid.New()

	svc.EXPECT().
		Add(gomock.Any(), userID, 2026, int64(80), "USD", "keyboard", "https://example.com/kb").
		Return(wishID, nil)

	req := httptest.NewRequest(http.MethodPost, "/wishlist",
		strings.NewReader(`{"year":2026,"price":80,"currency":"usd","details":"keyboard","link":"https://example.com/kb"}`))
	req.Header.Set("Authorization", header)
	rec := httptest.NewRecorder()
	NewWishAddHandler(svc, tokener)(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	var resp WishResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, wishID.String(), resp.WishID)
}

func TestWishEditHandler_AlreadyFunded(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tokener, userID, header := newTestToken(t)
	svc := NewMockWishlistEditor(ctrl)
	wishID := uuid.New()

	svc.EXPECT().
		Edit(gomock.Any(), userID, wishID, 2026, int64(90), "USD", "", "").
		Return(services.ErrWishAlreadyFunded)

	router := chi.NewRouter()
	router.Put("/wishlist/{id}", NewWishEditHandler(svc, tokener))

	req := httptest.NewRequest(http.MethodPut, "/wishlist/"+wishID.String(),
		strings.NewReader(`{"year":2026,"price":90,"currency":"USD"}`))
	req.Header.Set("Authorization", header)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestWishFundHandler(t *testing.T) {
	wishID := uuid.New()

	tests := []struct {
		name       string
		fundErr    error
		wantStatus int
	}{
		{"success", nil, http.StatusOK},
		{"not found", services.ErrNotFound, http.StatusNotFound},
		{"already funded", services.ErrWishAlreadyFunded, http.StatusConflict},
		{"unknown currency", services.ErrUnknownCurrency, http.StatusBadRequest},
		{"insufficient funds", services.ErrInsufficientFunds, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			tokener, userID, header := newTestToken(t)
			svc := NewMockWishlistFunder(ctrl)

			svc.EXPECT().Fund(gomock.Any(), userID, wishID).Return(uuid.New(), tt.fundErr)

			router := chi.NewRouter()
			router.Post("/wishlist/{id}/fund", NewWishFundHandler(svc, tokener))

			req := httptest.NewRequest(http.MethodPost, "/wishlist/"+wishID.String()+"/fund", nil)
			req.Header.Set("Authorization", header)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestWishUnfundHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tokener, userID, header := newTestToken(t)
	svc := NewMockWishlistFunder(ctrl)
	wishID := uuid.New()

	svc.EXPECT().Unfund(gomock.Any(), userID, wishID).Return(nil)

	router := chi.NewRouter()
	router.Post("/wishlist/{id}/unfund", NewWishUnfundHandler(svc, tokener))

	req := httptest.NewRequest(http.MethodPost, "/wishlist/"+wishID.String()+"/unfund", nil)
	req.Header.Set("Authorization", header)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}
