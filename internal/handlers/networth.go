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

// NetworthTokener defines only the methods needed by this handler.
type NetworthTokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// NetworthReader defines the interface that the service must implement.
type NetworthReader interface {
	TotalInFavoriteCurrency(ctx context.Context, userID uuid.UUID) (float64, string, error)
}

// NetworthResponse represents the aggregated net worth
// swagger:model NetworthResponse
type NetworthResponse struct {
	// Net worth in the favorite currency, rounded to two decimals
	Total float64 `json:"total"`

	// Favorite currency the total is expressed in
	// default: USD
	Currency string `json:"currency"`
}

// NetworthErrorResponse represents an error response for net worth
// swagger:model NetworthErrorResponse
type NetworthErrorResponse struct {
	// Error message
	Error string `json:"error"`
}

// NewNetworthHandler returns an HTTP handler for the aggregated net worth.
// @Summary Get net worth
// @Description Convert every currency total into the user's favorite currency and sum them. Conversion rates come from a cache backed by external providers.
// @Tags wallet
// @Produce json
// @Success 200 {object} handlers.NetworthResponse "Net worth"
// @Failure 401 {object} handlers.NetworthErrorResponse "Unauthorized"
// @Failure 503 {object} handlers.NetworthErrorResponse "Rate providers unavailable"
// @Router /networth [get]
// @Security BearerAuth
func NewNetworthHandler(
	svc NetworthReader,
	tokenGetter NetworthTokener,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		w.Header().Set("Content-Type", "application/json")

		tokenStr, err := tokenGetter.GetTokenFromRequest(ctx, r)
		if err != nil {
			logger.Log.Errorw("failed to get token from request", "error", err)
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(NetworthErrorResponse{Error: "Unauthorized"})
			return
		}
		claims, err := tokenGetter.GetClaims(ctx, tokenStr)
		if err != nil {
			logger.Log.Errorw("failed to get claims from token", "error", err)
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(NetworthErrorResponse{Error: "Unauthorized"})
			return
		}

		total, currency, err := svc.TotalInFavoriteCurrency(ctx, claims.UserID)
		if err != nil {
			if errors.Is(err, services.ErrRateProviderUnavailable) {
				w.WriteHeader(http.StatusServiceUnavailable)
				json.NewEncoder(w).Encode(NetworthErrorResponse{Error: "Conversion rates unavailable, try again later"})
				return
			}
			logger.Log.Errorw("failed to aggregate net worth", "userID", claims.UserID, "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(NetworthErrorResponse{Error: "Internal server error"})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(NetworthResponse{Total: total, Currency: currency})
	}
}
