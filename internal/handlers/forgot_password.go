package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/imhotep-finance/finance-service/internal/logger"
	"github.com/imhotep-finance/finance-service/internal/services"
)

// PasswordResetter defines the interface that the service must implement.
type PasswordResetter interface {
	ForgotPassword(ctx context.Context, email string) error
}

// ForgotPasswordRequest represents the JSON body for a password reset
// swagger:model ForgotPasswordRequest
type ForgotPasswordRequest struct {
	// Email address of the account
	// required: true
	Email string `json:"email" validate:"required,email"`
}

// ForgotPasswordResponse represents a successful reset response
// swagger:model ForgotPasswordResponse
type ForgotPasswordResponse struct {
	// Success message
	// default: Temporary password sent
	Message string `json:"message"`
}

// ForgotPasswordErrorResponse represents an error response for a reset
// swagger:model ForgotPasswordErrorResponse
type ForgotPasswordErrorResponse struct {
	// Error message
	Error string `json:"error"`
}

// NewForgotPasswordHandler returns an HTTP handler for password resets.
// @Summary Forgot password
// @Description Mail a temporary password to the account's address.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body handlers.ForgotPasswordRequest true "Forgot Password Request"
// @Success 200 {object} handlers.ForgotPasswordResponse "Temporary password sent"
// @Failure 400 {object} handlers.ForgotPasswordErrorResponse "Invalid request"
// @Failure 404 {object} handlers.ForgotPasswordErrorResponse "User not found"
// @Router /forgot-password [post]
func NewForgotPasswordHandler(svc PasswordResetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		w.Header().Set("Content-Type", "application/json")

		var req ForgotPasswordRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ForgotPasswordErrorResponse{Error: "Invalid request body"})
			return
		}
		if err := validate.Struct(req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ForgotPasswordErrorResponse{Error: "A valid email is required"})
			return
		}

		if err := svc.ForgotPassword(ctx, req.Email); err != nil {
			if errors.Is(err, services.ErrUserDoesNotExist) {
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ForgotPasswordErrorResponse{Error: "User not found"})
				return
			}
			logger.Log.Errorw("failed to reset password", "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ForgotPasswordErrorResponse{Error: "Internal server error"})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(ForgotPasswordResponse{Message: "Temporary password sent"})
	}
}
