package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/imhotep-finance/finance-service/internal/services"
)

func TestFavoriteCurrencyHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tokener, userID, header := newTestToken(t)
	svc := NewMockProfileUpdater(ctrl)

	svc.EXPECT().SetFavoriteCurrency(gomock.Any(), userID, "EUR").Return(nil)

	req := httptest.NewRequest(http.MethodPut, "/settings/favorite-currency",
		strings.NewReader(`{"currency":"EUR"}`))
	req.Header.Set("Authorization", header)
	rec := httptest.NewRecorder()
	NewFavoriteCurrencyHandler(svc, tokener)(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestChangePasswordHandler_WrongCurrent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tokener, userID, header := newTestToken(t)
	svc := NewMockProfileUpdater(ctrl)

	svc.EXPECT().
		ChangePassword(gomock.Any(), userID, "wrong", "longenough").
		Return(services.ErrInvalidCredentials)

	req := httptest.NewRequest(http.MethodPut, "/settings/password",
		strings.NewReader(`{"current_password":"wrong","new_password":"longenough"}`))
	req.Header.Set("Authorization", header)
	rec := httptest.NewRecorder()
	NewChangePasswordHandler(svc, tokener)(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestChangePasswordHandler_ShortNewPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tokener, _, header := newTestToken(t)
	svc := NewMockProfileUpdater(ctrl)

	req := httptest.NewRequest(http.MethodPut, "/settings/password",
		strings.NewReader(`{"current_password":"secret","new_password":"pw"}`))
	req.Header.Set("Authorization", header)
	rec := httptest.NewRecorder()
	NewChangePasswordHandler(svc, tokener)(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestChangeEmailHandler_Taken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tokener, userID, header := newTestToken(t)
	svc := NewMockProfileUpdater(ctrl)

	svc.EXPECT().
		ChangeEmail(gomock.Any(), userID, "taken@example.com").
		Return(services.ErrUserAlreadyExists)

	req := httptest.NewRequest(http.MethodPut, "/settings/email",
		strings.NewReader(`{"email":"taken@example.com"}`))
	req.Header.Set("Authorization", header)
	rec := httptest.NewRecorder()
	NewChangeEmailHandler(svc, tokener)(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
}
