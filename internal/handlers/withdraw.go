package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/imhotep-finance/finance-service/internal/jwt"
	"github.com/imhotep-finance/finance-service/internal/logger"
	"github.com/imhotep-finance/finance-service/internal/models"
	"github.com/imhotep-finance/finance-service/internal/services"
)

// WithdrawTokener defines only the methods needed by this handler.
type WithdrawTokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// WithdrawRecorder defines the interface that the service must implement.
type WithdrawRecorder interface {
	Record(ctx context.Context, userID uuid.UUID, date time.Time, currency string, amount int64, status, details, detailsLink string) (uuid.UUID, int64, error)
}

// WithdrawRequest represents the JSON body for withdrawing funds
// swagger:model WithdrawRequest
type WithdrawRequest struct {
	// Date of the withdrawal, YYYY-MM-DD, defaults to today
	Date string `json:"date"`

	// Amount in whole currency units
	// required: true
	// default: 50
	Amount int64 `json:"amount" validate:"required,gt=0"`

	// ISO currency code
	// required: true
	// default: USD
	Currency string `json:"currency" validate:"required,len=3,alpha"`

	// Free-form details
	Details string `json:"details"`

	// Link related to the withdrawal
	DetailsLink string `json:"details_link" validate:"omitempty,url"`
}

// WithdrawResponse represents a successful withdrawal response
// swagger:model WithdrawResponse
type WithdrawResponse struct {
	// Success message
	// default: Withdrawal recorded successfully
	Message string `json:"message"`

	// Id of the created transaction
	TransactionID string `json:"transaction_id"`

	// New total in the withdrawal's currency
	NewTotal int64 `json:"new_total"`
}

// WithdrawErrorResponse represents an error response for withdrawal
// swagger:model WithdrawErrorResponse
type WithdrawErrorResponse struct {
	// Error message
	// default: Insufficient funds
	Error string `json:"error"`
}

// NewWithdrawHandler returns an HTTP handler for recording a withdrawal.
// @Summary Withdraw funds
// @Description Record a withdrawal transaction and debit the matching currency total. Fails when the currency is unknown or the total is too small.
// @Tags wallet
// @Accept json
// @Produce json
// @Param request body handlers.WithdrawRequest true "Withdraw Request"
// @Success 200 {object} handlers.WithdrawResponse "Withdrawal recorded successfully"
// @Failure 400 {object} handlers.WithdrawErrorResponse "Invalid amount, unknown currency or insufficient funds"
// @Failure 401 {object} handlers.WithdrawErrorResponse "Unauthorized"
// @Router /wallet/withdraw [post]
// @Security BearerAuth
func NewWithdrawHandler(
	svc WithdrawRecorder,
	tokenGetter WithdrawTokener,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		w.Header().Set("Content-Type", "application/json")

		tokenStr, err := tokenGetter.GetTokenFromRequest(ctx, r)
		if err != nil {
			logger.Log.Errorw("failed to get token from request", "error", err)
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(WithdrawErrorResponse{Error: "Unauthorized"})
			return
		}
		claims, err := tokenGetter.GetClaims(ctx, tokenStr)
		if err != nil {
			logger.Log.Errorw("failed to get claims from token", "error", err)
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(WithdrawErrorResponse{Error: "Unauthorized"})
			return
		}

		var req WithdrawRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Log.Errorw("failed to decode withdraw request", "error", err)
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(WithdrawErrorResponse{Error: "Invalid request body"})
			return
		}
		if err := validate.Struct(req); err != nil {
			logger.Log.Warnw("invalid withdraw request", "error", err)
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(WithdrawErrorResponse{Error: "Invalid amount or currency"})
			return
		}
		date, err := parseDate(req.Date)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(WithdrawErrorResponse{Error: "Invalid date, expected YYYY-MM-DD"})
			return
		}

		id, total, err := svc.Record(ctx, claims.UserID, date, strings.ToUpper(req.Currency), req.Amount, models.StatusWithdraw, req.Details, req.DetailsLink)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUnknownCurrency):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(WithdrawErrorResponse{Error: "No balance in this currency"})
			case errors.Is(err, services.ErrInsufficientFunds):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(WithdrawErrorResponse{Error: "Insufficient funds"})
			default:
				logger.Log.Errorw("failed to record withdrawal", "userID", claims.UserID, "amount", req.Amount, "currency", req.Currency, "error", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(WithdrawErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(WithdrawResponse{
			Message:       "Withdrawal recorded successfully",
			TransactionID: id.String(),
			NewTotal:      total,
		})
	}
}
