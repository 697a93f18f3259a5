package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/imhotep-finance/finance-service/internal/logger"
	"github.com/imhotep-finance/finance-service/internal/services"
)

// EmailVerifier defines the interface that the service must implement.
type EmailVerifier interface {
	VerifyEmail(ctx context.Context, email, code string) error
}

// VerifyEmailRequest represents the JSON body for confirming an address
// swagger:model VerifyEmailRequest
type VerifyEmailRequest struct {
	// Email address being verified
	// required: true
	Email string `json:"email" validate:"required,email"`

	// Code received by mail
	// required: true
	Code string `json:"code" validate:"required"`
}

// VerifyEmailResponse represents a successful verification response
// swagger:model VerifyEmailResponse
type VerifyEmailResponse struct {
	// Success message
	// default: Email verified successfully
	Message string `json:"message"`
}

// VerifyEmailErrorResponse represents an error response for verification
// swagger:model VerifyEmailErrorResponse
type VerifyEmailErrorResponse struct {
	// Error message
	Error string `json:"error"`
}

// NewVerifyEmailHandler returns an HTTP handler for confirming a mail address.
// @Summary Verify email
// @Description Confirm the verification code mailed at registration.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body handlers.VerifyEmailRequest true "Verify Email Request"
// @Success 200 {object} handlers.VerifyEmailResponse "Email verified successfully"
// @Failure 400 {object} handlers.VerifyEmailErrorResponse "Invalid code"
// @Failure 404 {object} handlers.VerifyEmailErrorResponse "User not found"
// @Router /verify-email [post]
func NewVerifyEmailHandler(svc EmailVerifier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		w.Header().Set("Content-Type", "application/json")

		var req VerifyEmailRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(VerifyEmailErrorResponse{Error: "Invalid request body"})
			return
		}
		if err := validate.Struct(req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(VerifyEmailErrorResponse{Error: "Email and code are required"})
			return
		}

		if err := svc.VerifyEmail(ctx, req.Email, req.Code); err != nil {
			switch {
			case errors.Is(err, services.ErrUserDoesNotExist):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(VerifyEmailErrorResponse{Error: "User not found"})
			case errors.Is(err, services.ErrInvalidVerificationCode):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(VerifyEmailErrorResponse{Error: "Invalid code"})
			default:
				logger.Log.Errorw("failed to verify email", "error", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(VerifyEmailErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(VerifyEmailResponse{Message: "Email verified successfully"})
	}
}
