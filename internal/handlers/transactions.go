package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/imhotep-finance/finance-service/internal/jwt"
	"github.com/imhotep-finance/finance-service/internal/logger"
	"github.com/imhotep-finance/finance-service/internal/models"
	"github.com/imhotep-finance/finance-service/internal/services"
)

// TransactionsTokener defines only the methods needed by these handlers.
type TransactionsTokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// TransactionLister defines the read interface that the service must implement.
type TransactionLister interface {
	List(ctx context.Context, userID uuid.UUID, f models.TransactionFilter) ([]models.TransactionDB, error)
}

// TransactionEditor defines the edit interface that the service must implement.
type TransactionEditor interface {
	Edit(ctx context.Context, userID, id uuid.UUID, date time.Time, amount int64, details, detailsLink string) error
}

// TransactionDeleter defines the delete interface that the service must implement.
type TransactionDeleter interface {
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

// TransactionsResponse represents a journal listing
// swagger:model TransactionsResponse
type TransactionsResponse struct {
	// Transactions ordered oldest first
	Transactions []models.TransactionDB `json:"transactions"`
}

// TransactionEditRequest represents the JSON body for editing a transaction
// swagger:model TransactionEditRequest
type TransactionEditRequest struct {
	// New date, YYYY-MM-DD
	// required: true
	Date string `json:"date" validate:"required"`

	// New amount in whole currency units
	// required: true
	Amount int64 `json:"amount" validate:"required,gt=0"`

	// New details
	Details string `json:"details"`

	// New link
	DetailsLink string `json:"details_link" validate:"omitempty,url"`
}

// TransactionMessageResponse represents a success message
// swagger:model TransactionMessageResponse
type TransactionMessageResponse struct {
	// Success message
	Message string `json:"message"`
}

// TransactionErrorResponse represents an error response for journal operations
// swagger:model TransactionErrorResponse
type TransactionErrorResponse struct {
	// Error message
	Error string `json:"error"`
}

func transactionClaims(tokenGetter TransactionsTokener, w http.ResponseWriter, r *http.Request) (*jwt.Claims, bool) {
	ctx := r.Context()
	tokenStr, err := tokenGetter.GetTokenFromRequest(ctx, r)
	if err != nil {
		logger.Log.Errorw("failed to get token from request", "error", err)
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(TransactionErrorResponse{Error: "Unauthorized"})
		return nil, false
	}
	claims, err := tokenGetter.GetClaims(ctx, tokenStr)
	if err != nil {
		logger.Log.Errorw("failed to get claims from token", "error", err)
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(TransactionErrorResponse{Error: "Unauthorized"})
		return nil, false
	}
	return claims, true
}

// NewTransactionsListHandler returns an HTTP handler for listing transactions.
// @Summary List transactions
// @Description List the user's transactions. Optional query parameters: from, to (YYYY-MM-DD, defaults to the last thirty days), status (deposit or withdraw) and details (substring match).
// @Tags transactions
// @Produce json
// @Param from query string false "Start date, inclusive"
// @Param to query string false "End date, inclusive"
// @Param status query string false "deposit or withdraw"
// @Param details query string false "Details substring"
// @Success 200 {object} handlers.TransactionsResponse "Transactions"
// @Failure 400 {object} handlers.TransactionErrorResponse "Invalid filter"
// @Failure 401 {object} handlers.TransactionErrorResponse "Unauthorized"
// @Router /transactions [get]
// @Security BearerAuth
func NewTransactionsListHandler(
	svc TransactionLister,
	tokenGetter TransactionsTokener,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		w.Header().Set("Content-Type", "application/json")

		claims, ok := transactionClaims(tokenGetter, w, r)
		if !ok {
			return
		}

		var f models.TransactionFilter
		q := r.URL.Query()
		if s := q.Get("from"); s != "" {
			from, err := time.Parse(dateLayout, s)
			if err != nil {
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(TransactionErrorResponse{Error: "Invalid from date, expected YYYY-MM-DD"})
				return
			}
			f.From = from
		}
		if s := q.Get("to"); s != "" {
			to, err := time.Parse(dateLayout, s)
			if err != nil {
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(TransactionErrorResponse{Error: "Invalid to date, expected YYYY-MM-DD"})
				return
			}
			f.To = to
		}
		if s := q.Get("status"); s != "" {
			if s != models.StatusDeposit && s != models.StatusWithdraw {
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(TransactionErrorResponse{Error: "Invalid status"})
				return
			}
			f.Status = s
		}
		f.Details = q.Get("details")

		transactions, err := svc.List(ctx, claims.UserID, f)
		if err != nil {
			logger.Log.Errorw("failed to list transactions", "userID", claims.UserID, "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(TransactionErrorResponse{Error: "Internal server error"})
			return
		}
		if transactions == nil {
			transactions = []models.TransactionDB{}
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(TransactionsResponse{Transactions: transactions})
	}
}

// NewTransactionEditHandler returns an HTTP handler for editing a transaction.
// @Summary Edit transaction
// @Description Rewrite a transaction's date, amount and details. The currency total is adjusted by the amount difference; an edit that would drive it negative is rejected.
// @Tags transactions
// @Accept json
// @Produce json
// @Param id path string true "Transaction id"
// @Param request body handlers.TransactionEditRequest true "Edit Request"
// @Success 200 {object} handlers.TransactionMessageResponse "Transaction updated"
// @Failure 400 {object} handlers.TransactionErrorResponse "Invalid request or insufficient funds"
// @Failure 401 {object} handlers.TransactionErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.TransactionErrorResponse "Transaction not found"
// @Router /transactions/{id} [put]
// @Security BearerAuth
func NewTransactionEditHandler(
	svc TransactionEditor,
	tokenGetter TransactionsTokener,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		w.Header().Set("Content-Type", "application/json")

		claims, ok := transactionClaims(tokenGetter, w, r)
		if !ok {
			return
		}

		id, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(TransactionErrorResponse{Error: "Invalid transaction id"})
			return
		}

		var req TransactionEditRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(TransactionErrorResponse{Error: "Invalid request body"})
			return
		}
		if err := validate.Struct(req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(TransactionErrorResponse{Error: "Invalid date or amount"})
			return
		}
		date, err := time.Parse(dateLayout, req.Date)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(TransactionErrorResponse{Error: "Invalid date, expected YYYY-MM-DD"})
			return
		}

		if err := svc.Edit(ctx, claims.UserID, id, date, req.Amount, req.Details, req.DetailsLink); err != nil {
			switch {
			case errors.Is(err, services.ErrNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(TransactionErrorResponse{Error: "Transaction not found"})
			case errors.Is(err, services.ErrInsufficientFunds):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(TransactionErrorResponse{Error: "Insufficient funds"})
			default:
				logger.Log.Errorw("failed to edit transaction", "transactionID", id, "error", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(TransactionErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(TransactionMessageResponse{Message: "Transaction updated"})
	}
}

// NewTransactionDeleteHandler returns an HTTP handler for deleting a transaction.
// @Summary Delete transaction
// @Description Remove a transaction and reverse its effect on the currency total. Deleting a deposit whose amount has already been spent is rejected.
// @Tags transactions
// @Produce json
// @Param id path string true "Transaction id"
// @Success 200 {object} handlers.TransactionMessageResponse "Transaction deleted"
// @Failure 400 {object} handlers.TransactionErrorResponse "Deleting would orphan the balance"
// @Failure 401 {object} handlers.TransactionErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.TransactionErrorResponse "Transaction not found"
// @Router /transactions/{id} [delete]
// @Security BearerAuth
func NewTransactionDeleteHandler(
	svc TransactionDeleter,
	tokenGetter TransactionsTokener,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		w.Header().Set("Content-Type", "application/json")

		claims, ok := transactionClaims(tokenGetter, w, r)
		if !ok {
			return
		}

		id, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(TransactionErrorResponse{Error: "Invalid transaction id"})
			return
		}

		if err := svc.Delete(ctx, claims.UserID, id); err != nil {
			switch {
			case errors.Is(err, services.ErrNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(TransactionErrorResponse{Error: "Transaction not found"})
			case errors.Is(err, services.ErrWouldOrphanBalance):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(TransactionErrorResponse{Error: "Deleting this deposit would make the balance negative"})
			default:
				logger.Log.Errorw("failed to delete transaction", "transactionID", id, "error", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(TransactionErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(TransactionMessageResponse{Message: "Transaction deleted"})
	}
}
