package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/imhotep-finance/finance-service/internal/jwt"
	"github.com/imhotep-finance/finance-service/internal/logger"
)

// BalanceTokener defines only the methods needed by this handler.
type BalanceTokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// BalanceReader defines the interface that the service must implement.
type BalanceReader interface {
	Balances(ctx context.Context, userID uuid.UUID) (map[string]int64, error)
}

// BalanceResponse represents the per-currency totals
// swagger:model BalanceResponse
type BalanceResponse struct {
	// Totals keyed by ISO currency code
	Balance map[string]int64 `json:"balance"`
}

// BalanceErrorResponse represents an error response for balance
// swagger:model BalanceErrorResponse
type BalanceErrorResponse struct {
	// Error message
	Error string `json:"error"`
}

// NewBalanceHandler returns an HTTP handler for reading per-currency totals.
// @Summary Get balance
// @Description Return the user's raw totals in every currency they hold.
// @Tags wallet
// @Produce json
// @Success 200 {object} handlers.BalanceResponse "Balances"
// @Failure 401 {object} handlers.BalanceErrorResponse "Unauthorized"
// @Router /balance [get]
// @Security BearerAuth
func NewBalanceHandler(
	svc BalanceReader,
	tokenGetter BalanceTokener,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		w.Header().Set("Content-Type", "application/json")

		tokenStr, err := tokenGetter.GetTokenFromRequest(ctx, r)
		if err != nil {
			logger.Log.Errorw("failed to get token from request", "error", err)
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(BalanceErrorResponse{Error: "Unauthorized"})
			return
		}
		claims, err := tokenGetter.GetClaims(ctx, tokenStr)
		if err != nil {
			logger.Log.Errorw("failed to get claims from token", "error", err)
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(BalanceErrorResponse{Error: "Unauthorized"})
			return
		}

		totals, err := svc.Balances(ctx, claims.UserID)
		if err != nil {
			logger.Log.Errorw("failed to read balances", "userID", claims.UserID, "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(BalanceErrorResponse{Error: "Internal server error"})
			return
		}
		if totals == nil {
			totals = map[string]int64{}
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(BalanceResponse{Balance: totals})
	}
}
