package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/imhotep-finance/finance-service/internal/jwt"
	"github.com/imhotep-finance/finance-service/internal/logger"
	"github.com/imhotep-finance/finance-service/internal/models"
)

// DepositTokener defines only the methods needed by this handler.
type DepositTokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// DepositRecorder defines the interface that the service must implement.
type DepositRecorder interface {
	Record(ctx context.Context, userID uuid.UUID, date time.Time, currency string, amount int64, status, details, detailsLink string) (uuid.UUID, int64, error)
}

// DepositRequest represents the JSON body for depositing funds
// swagger:model DepositRequest
type DepositRequest struct {
	// Date of the deposit, YYYY-MM-DD, defaults to today
	Date string `json:"date"`

	// Amount in whole currency units
	// required: true
	// default: 100
	Amount int64 `json:"amount" validate:"required,gt=0"`

	// ISO currency code
	// required: true
	// default: USD
	Currency string `json:"currency" validate:"required,len=3,alpha"`

	// Free-form details
	Details string `json:"details"`

	// Link related to the deposit
	DetailsLink string `json:"details_link" validate:"omitempty,url"`
}

// DepositResponse represents a successful deposit response
// swagger:model DepositResponse
type DepositResponse struct {
	// Success message
	// default: Deposit recorded successfully
	Message string `json:"message"`

	// Id of the created transaction
	TransactionID string `json:"transaction_id"`

	// New total in the deposit's currency
	NewTotal int64 `json:"new_total"`
}

// DepositErrorResponse represents an error response for deposit
// swagger:model DepositErrorResponse
type DepositErrorResponse struct {
	// Error message
	// default: Invalid amount or currency
	Error string `json:"error"`
}

// NewDepositHandler returns an HTTP handler for recording a deposit.
// @Summary Deposit funds
// @Description Record a deposit transaction and credit the matching currency total.
// @Tags wallet
// @Accept json
// @Produce json
// @Param request body handlers.DepositRequest true "Deposit Request"
// @Success 200 {object} handlers.DepositResponse "Deposit recorded successfully"
// @Failure 400 {object} handlers.DepositErrorResponse "Invalid amount or currency"
// @Failure 401 {object} handlers.DepositErrorResponse "Unauthorized"
// @Router /wallet/deposit [post]
// @Security BearerAuth
func NewDepositHandler(
	svc DepositRecorder,
	tokenGetter DepositTokener,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		w.Header().Set("Content-Type", "application/json")

		tokenStr, err := tokenGetter.GetTokenFromRequest(ctx, r)
		if err != nil {
			logger.Log.Errorw("failed to get token from request", "error", err)
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(DepositErrorResponse{Error: "Unauthorized"})
			return
		}
		claims, err := tokenGetter.GetClaims(ctx, tokenStr)
		if err != nil {
			logger.Log.Errorw("failed to get claims from token", "error", err)
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(DepositErrorResponse{Error: "Unauthorized"})
			return
		}

		var req DepositRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Log.Errorw("failed to decode deposit request", "error", err)
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(DepositErrorResponse{Error: "Invalid request body"})
			return
		}
		if err := validate.Struct(req); err != nil {
			logger.Log.Warnw("invalid deposit request", "error", err)
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(DepositErrorResponse{Error: "Invalid amount or currency"})
			return
		}
		date, err := parseDate(req.Date)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(DepositErrorResponse{Error: "Invalid date, expected YYYY-MM-DD"})
			return
		}

		id, total, err := svc.Record(ctx, claims.UserID, date, strings.ToUpper(req.Currency), req.Amount, models.StatusDeposit, req.Details, req.DetailsLink)
		if err != nil {
			logger.Log.Errorw("failed to record deposit", "userID", claims.UserID, "amount", req.Amount, "currency", req.Currency, "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(DepositErrorResponse{Error: "Internal server error"})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(DepositResponse{
			Message:       "Deposit recorded successfully",
			TransactionID: id.String(),
			NewTotal:      total,
		})
	}
}
