package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/imhotep-finance/finance-service/internal/jwt"
	"github.com/imhotep-finance/finance-service/internal/logger"
	"github.com/imhotep-finance/finance-service/internal/services"
)

// SettingsTokener defines only the methods needed by these handlers.
type SettingsTokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// ProfileUpdater defines the interface that the service must implement.
type ProfileUpdater interface {
	SetFavoriteCurrency(ctx context.Context, userID uuid.UUID, currency string) error
	ChangePassword(ctx context.Context, userID uuid.UUID, current, newPassword string) error
	ChangeEmail(ctx context.Context, userID uuid.UUID, newEmail string) error
}

// FavoriteCurrencyRequest represents the JSON body for the favorite currency
// swagger:model FavoriteCurrencyRequest
type FavoriteCurrencyRequest struct {
	// ISO currency code net worth is displayed in
	// required: true
	// default: USD
	Currency string `json:"currency" validate:"required,len=3,alpha"`
}

// ChangePasswordRequest represents the JSON body for changing the password
// swagger:model ChangePasswordRequest
type ChangePasswordRequest struct {
	// Current password
	// required: true
	CurrentPassword string `json:"current_password" validate:"required"`

	// New password
	// required: true
	NewPassword string `json:"new_password" validate:"required,min=8"`
}

// ChangeEmailRequest represents the JSON body for changing the email
// swagger:model ChangeEmailRequest
type ChangeEmailRequest struct {
	// New email address, receives a fresh verification code
	// required: true
	Email string `json:"email" validate:"required,email"`
}

// SettingsMessageResponse represents a success message
// swagger:model SettingsMessageResponse
type SettingsMessageResponse struct {
	// Success message
	Message string `json:"message"`
}

// SettingsErrorResponse represents an error response for settings
// swagger:model SettingsErrorResponse
type SettingsErrorResponse struct {
	// Error message
	Error string `json:"error"`
}

func settingsClaims(tokenGetter SettingsTokener, w http.ResponseWriter, r *http.Request) (*jwt.Claims, bool) {
	ctx := r.Context()
	tokenStr, err := tokenGetter.GetTokenFromRequest(ctx, r)
	if err != nil {
		logger.Log.Errorw("failed to get token from request", "error", err)
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(SettingsErrorResponse{Error: "Unauthorized"})
		return nil, false
	}
	claims, err := tokenGetter.GetClaims(ctx, tokenStr)
	if err != nil {
		logger.Log.Errorw("failed to get claims from token", "error", err)
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(SettingsErrorResponse{Error: "Unauthorized"})
		return nil, false
	}
	return claims, true
}

// NewFavoriteCurrencyHandler returns an HTTP handler for the favorite currency.
// @Summary Set favorite currency
// @Description Change the currency net worth is displayed in.
// @Tags settings
// @Accept json
// @Produce json
// @Param request body handlers.FavoriteCurrencyRequest true "Favorite Currency Request"
// @Success 200 {object} handlers.SettingsMessageResponse "Favorite currency updated"
// @Failure 400 {object} handlers.SettingsErrorResponse "Invalid currency"
// @Failure 401 {object} handlers.SettingsErrorResponse "Unauthorized"
// @Router /settings/favorite-currency [put]
// @Security BearerAuth
func NewFavoriteCurrencyHandler(
	svc ProfileUpdater,
	tokenGetter SettingsTokener,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		w.Header().Set("Content-Type", "application/json")

		claims, ok := settingsClaims(tokenGetter, w, r)
		if !ok {
			return
		}

		var req FavoriteCurrencyRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(SettingsErrorResponse{Error: "Invalid request body"})
			return
		}
		if err := validate.Struct(req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(SettingsErrorResponse{Error: "Invalid currency"})
			return
		}

		if err := svc.SetFavoriteCurrency(ctx, claims.UserID, req.Currency); err != nil {
			logger.Log.Errorw("failed to set favorite currency", "userID", claims.UserID, "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(SettingsErrorResponse{Error: "Internal server error"})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(SettingsMessageResponse{Message: "Favorite currency updated"})
	}
}

// NewChangePasswordHandler returns an HTTP handler for changing the password.
// @Summary Change password
// @Description Replace the password after checking the current one.
// @Tags settings
// @Accept json
// @Produce json
// @Param request body handlers.ChangePasswordRequest true "Change Password Request"
// @Success 200 {object} handlers.SettingsMessageResponse "Password updated"
// @Failure 400 {object} handlers.SettingsErrorResponse "Invalid request"
// @Failure 401 {object} handlers.SettingsErrorResponse "Wrong current password"
// @Router /settings/password [put]
// @Security BearerAuth
func NewChangePasswordHandler(
	svc ProfileUpdater,
	tokenGetter SettingsTokener,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		w.Header().Set("Content-Type", "application/json")

		claims, ok := settingsClaims(tokenGetter, w, r)
		if !ok {
			return
		}

		var req ChangePasswordRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(SettingsErrorResponse{Error: "Invalid request body"})
			return
		}
		if err := validate.Struct(req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(SettingsErrorResponse{Error: "New password must be at least 8 characters"})
			return
		}

		if err := svc.ChangePassword(ctx, claims.UserID, req.CurrentPassword, req.NewPassword); err != nil {
			if errors.Is(err, services.ErrInvalidCredentials) {
				w.WriteHeader(http.StatusUnauthorized)
				json.NewEncoder(w).Encode(SettingsErrorResponse{Error: "Wrong current password"})
				return
			}
			logger.Log.Errorw("failed to change password", "userID", claims.UserID, "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(SettingsErrorResponse{Error: "Internal server error"})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(SettingsMessageResponse{Message: "Password updated"})
	}
}

// NewChangeEmailHandler returns an HTTP handler for changing the email.
// @Summary Change email
// @Description Switch the account to a new address. The address becomes unverified and receives a fresh code.
// @Tags settings
// @Accept json
// @Produce json
// @Param request body handlers.ChangeEmailRequest true "Change Email Request"
// @Success 200 {object} handlers.SettingsMessageResponse "Email updated"
// @Failure 400 {object} handlers.SettingsErrorResponse "Invalid email"
// @Failure 401 {object} handlers.SettingsErrorResponse "Unauthorized"
// @Failure 409 {object} handlers.SettingsErrorResponse "Email already taken"
// @Router /settings/email [put]
// @Security BearerAuth
func NewChangeEmailHandler(
	svc ProfileUpdater,
	tokenGetter SettingsTokener,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		w.Header().Set("Content-Type", "application/json")

		claims, ok := settingsClaims(tokenGetter, w, r)
		if !ok {
			return
		}

		var req ChangeEmailRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(SettingsErrorResponse{Error: "Invalid request body"})
			return
		}
		if err := validate.Struct(req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(SettingsErrorResponse{Error: "Invalid email"})
			return
		}

		if err := svc.ChangeEmail(ctx, claims.UserID, req.Email); err != nil {
			if errors.Is(err, services.ErrUserAlreadyExists) {
				w.WriteHeader(http.StatusConflict)
				json.NewEncoder(w).Encode(SettingsErrorResponse{Error: "Email already taken"})
				return
			}
			logger.Log.Errorw("failed to change email", "userID", claims.UserID, "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(SettingsErrorResponse{Error: "Internal server error"})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(SettingsMessageResponse{Message: "Email updated"})
	}
}
