package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/imhotep-finance/finance-service/internal/logger"
	"github.com/imhotep-finance/finance-service/internal/services"
)

// LoginService defines the interface that the service must implement.
type LoginService interface {
	Login(ctx context.Context, usernameOrEmail, password string) (string, error)
}

// LoginRequest represents the JSON body for logging in
// swagger:model LoginRequest
type LoginRequest struct {
	// Username or email address
	// required: true
	Login string `json:"login" validate:"required"`

	// Password
	// required: true
	Password string `json:"password" validate:"required"`
}

// LoginResponse represents a successful login response
// swagger:model LoginResponse
type LoginResponse struct {
	// JWT token for authenticated requests
	Token string `json:"token"`
}

// LoginErrorResponse represents an error response for login
// swagger:model LoginErrorResponse
type LoginErrorResponse struct {
	// Error message
	Error string `json:"error"`
}

// NewLoginHandler returns an HTTP handler for logging in.
// @Summary Login
// @Description Authenticate by username or email and receive a JWT token. Accounts with unverified mail are rejected.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body handlers.LoginRequest true "Login Request"
// @Success 200 {object} handlers.LoginResponse "Authenticated"
// @Failure 400 {object} handlers.LoginErrorResponse "Invalid request"
// @Failure 401 {object} handlers.LoginErrorResponse "Invalid credentials"
// @Failure 403 {object} handlers.LoginErrorResponse "Email not verified"
// @Router /login [post]
func NewLoginHandler(svc LoginService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		w.Header().Set("Content-Type", "application/json")

		var req LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Log.Errorw("failed to decode login request", "error", err)
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(LoginErrorResponse{Error: "Invalid request body"})
			return
		}
		if err := validate.Struct(req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(LoginErrorResponse{Error: "Login and password are required"})
			return
		}

		token, err := svc.Login(ctx, req.Login, req.Password)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUserDoesNotExist), errors.Is(err, services.ErrInvalidCredentials):
				w.WriteHeader(http.StatusUnauthorized)
				json.NewEncoder(w).Encode(LoginErrorResponse{Error: "Invalid credentials"})
			case errors.Is(err, services.ErrMailNotVerified):
				w.WriteHeader(http.StatusForbidden)
				json.NewEncoder(w).Encode(LoginErrorResponse{Error: "Email not verified"})
			default:
				logger.Log.Errorw("failed to login", "error", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(LoginErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(LoginResponse{Token: token})
	}
}
