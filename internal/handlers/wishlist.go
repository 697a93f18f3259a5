package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/imhotep-finance/finance-service/internal/jwt"
	"github.com/imhotep-finance/finance-service/internal/logger"
	"github.com/imhotep-finance/finance-service/internal/models"
	"github.com/imhotep-finance/finance-service/internal/services"
)

// WishlistTokener defines only the methods needed by these handlers.
type WishlistTokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// WishlistViewer defines the read interface that the service must implement.
type WishlistViewer interface {
	ListByYear(ctx context.Context, userID uuid.UUID, year int) ([]models.WishDB, error)
	Years(ctx context.Context, userID uuid.UUID) ([]int, error)
}

// WishlistEditor defines the mutation interface that the service must implement.
type WishlistEditor interface {
	Add(ctx context.Context, userID uuid.UUID, year int, price int64, currency, details, link string) (uuid.UUID, error)
	Edit(ctx context.Context, userID, wishID uuid.UUID, year int, price int64, currency, details, link string) error
	Delete(ctx context.Context, userID, wishID uuid.UUID) error
}

// WishlistFunder defines the funding interface that the service must implement.
type WishlistFunder interface {
	Fund(ctx context.Context, userID, wishID uuid.UUID) (uuid.UUID, error)
	Unfund(ctx context.Context, userID, wishID uuid.UUID) error
}

// WishRequest represents the JSON body for creating or editing a wish
// swagger:model WishRequest
type WishRequest struct {
	// Year the wish belongs to, defaults to the current year
	Year int `json:"year" validate:"omitempty,gte=1970"`

	// Price in whole currency units
	// required: true
	Price int64 `json:"price" validate:"required,gt=0"`

	// ISO currency code
	// required: true
	// default: USD
	Currency string `json:"currency" validate:"required,len=3,alpha"`

	// What the wish is
	Details string `json:"details"`

	// Link to the wished item
	Link string `json:"link" validate:"omitempty,url"`
}

// WishResponse represents a created wish
// swagger:model WishResponse
type WishResponse struct {
	// Id of the created wish
	WishID string `json:"wish_id"`
}

// WishlistResponse represents a wishlist listing
// swagger:model WishlistResponse
type WishlistResponse struct {
	// Wishes of the requested year
	Wishes []models.WishDB `json:"wishes"`
}

// WishlistYearsResponse represents the years a user has wishes in
// swagger:model WishlistYearsResponse
type WishlistYearsResponse struct {
	// Distinct years, ascending
	Years []int `json:"years"`
}

// WishFundResponse represents a successful funding
// swagger:model WishFundResponse
type WishFundResponse struct {
	// Success message
	// default: Wish funded
	Message string `json:"message"`

	// Id of the withdrawal that funded the wish
	TransactionID string `json:"transaction_id"`
}

// WishMessageResponse represents a success message
// swagger:model WishMessageResponse
type WishMessageResponse struct {
	// Success message
	Message string `json:"message"`
}

// WishErrorResponse represents an error response for wishlist operations
// swagger:model WishErrorResponse
type WishErrorResponse struct {
	// Error message
	Error string `json:"error"`
}

func wishlistClaims(tokenGetter WishlistTokener, w http.ResponseWriter, r *http.Request) (*jwt.Claims, bool) {
	ctx := r.Context()
	tokenStr, err := tokenGetter.GetTokenFromRequest(ctx, r)
	if err != nil {
		logger.Log.Errorw("failed to get token from request", "error", err)
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(WishErrorResponse{Error: "Unauthorized"})
		return nil, false
	}
	claims, err := tokenGetter.GetClaims(ctx, tokenStr)
	if err != nil {
		logger.Log.Errorw("failed to get claims from token", "error", err)
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(WishErrorResponse{Error: "Unauthorized"})
		return nil, false
	}
	return claims, true
}

func wishID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(WishErrorResponse{Error: "Invalid wish id"})
		return uuid.Nil, false
	}
	return id, true
}

// NewWishlistListHandler returns an HTTP handler for listing wishes.
// @Summary List wishlist
// @Description List the user's wishes for one year. An absent year means the current year.
// @Tags wishlist
// @Produce json
// @Param year query int false "Year"
// @Success 200 {object} handlers.WishlistResponse "Wishes"
// @Failure 400 {object} handlers.WishErrorResponse "Invalid year"
// @Failure 401 {object} handlers.WishErrorResponse "Unauthorized"
// @Router /wishlist [get]
// @Security BearerAuth
func NewWishlistListHandler(
	svc WishlistViewer,
	tokenGetter WishlistTokener,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		w.Header().Set("Content-Type", "application/json")

		claims, ok := wishlistClaims(tokenGetter, w, r)
		if !ok {
			return
		}

		year := 0
		if s := r.URL.Query().Get("year"); s != "" {
			var err error
			year, err = strconv.Atoi(s)
			if err != nil {
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(WishErrorResponse{Error: "Invalid year"})
				return
			}
		}

		wishes, err := svc.ListByYear(ctx, claims.UserID, year)
		if err != nil {
			logger.Log.Errorw("failed to list wishes", "userID", claims.UserID, "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(WishErrorResponse{Error: "Internal server error"})
			return
		}
		if wishes == nil {
			wishes = []models.WishDB{}
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(WishlistResponse{Wishes: wishes})
	}
}

// NewWishlistYearsHandler returns an HTTP handler for the wishlist years.
// @Summary List wishlist years
// @Description Return the distinct years the user has wishes in.
// @Tags wishlist
// @Produce json
// @Success 200 {object} handlers.WishlistYearsResponse "Years"
// @Failure 401 {object} handlers.WishErrorResponse "Unauthorized"
// @Router /wishlist/years [get]
// @Security BearerAuth
func NewWishlistYearsHandler(
	svc WishlistViewer,
	tokenGetter WishlistTokener,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		w.Header().Set("Content-Type", "application/json")

		claims, ok := wishlistClaims(tokenGetter, w, r)
		if !ok {
			return
		}

		years, err := svc.Years(ctx, claims.UserID)
		if err != nil {
			logger.Log.Errorw("failed to list wishlist years", "userID", claims.UserID, "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(WishErrorResponse{Error: "Internal server error"})
			return
		}
		if years == nil {
			years = []int{}
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(WishlistYearsResponse{Years: years})
	}
}

// NewWishAddHandler returns an HTTP handler for creating a wish.
// @Summary Add wish
// @Description Create a pending wish.
// @Tags wishlist
// @Accept json
// @Produce json
// @Param request body handlers.WishRequest true "Wish Request"
// @Success 201 {object} handlers.WishResponse "Wish created"
// @Failure 400 {object} handlers.WishErrorResponse "Invalid request"
// @Failure 401 {object} handlers.WishErrorResponse "Unauthorized"
// @Router /wishlist [post]
// @Security BearerAuth
func NewWishAddHandler(
	svc WishlistEditor,
	tokenGetter WishlistTokener,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		w.Header().Set("Content-Type", "application/json")

		claims, ok := wishlistClaims(tokenGetter, w, r)
		if !ok {
			return
		}

		var req WishRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(WishErrorResponse{Error: "Invalid request body"})
			return
		}
		if err := validate.Struct(req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(WishErrorResponse{Error: "Invalid price or currency"})
			return
		}

		id, err := svc.Add(ctx, claims.UserID, req.Year, req.Price, strings.ToUpper(req.Currency), req.Details, req.Link)
		if err != nil {
			logger.Log.Errorw("failed to add wish", "userID", claims.UserID, "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(WishErrorResponse{Error: "Internal server error"})
			return
		}

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(WishResponse{WishID: id.String()})
	}
}

// NewWishEditHandler returns an HTTP handler for editing a wish.
// @Summary Edit wish
// @Description Rewrite a pending wish. A funded wish must be unfunded first.
// @Tags wishlist
// @Accept json
// @Produce json
// @Param id path string true "Wish id"
// @Param request body handlers.WishRequest true "Wish Request"
// @Success 200 {object} handlers.WishMessageResponse "Wish updated"
// @Failure 400 {object} handlers.WishErrorResponse "Invalid request"
// @Failure 401 {object} handlers.WishErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.WishErrorResponse "Wish not found"
// @Failure 409 {object} handlers.WishErrorResponse "Wish already funded"
// @Router /wishlist/{id} [put]
// @Security BearerAuth
func NewWishEditHandler(
	svc WishlistEditor,
	tokenGetter WishlistTokener,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		w.Header().Set("Content-Type", "application/json")

		claims, ok := wishlistClaims(tokenGetter, w, r)
		if !ok {
			return
		}
		id, ok := wishID(w, r)
		if !ok {
			return
		}

		var req WishRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(WishErrorResponse{Error: "Invalid request body"})
			return
		}
		if err := validate.Struct(req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(WishErrorResponse{Error: "Invalid price or currency"})
			return
		}

		if err := svc.Edit(ctx, claims.UserID, id, req.Year, req.Price, strings.ToUpper(req.Currency), req.Details, req.Link); err != nil {
			switch {
			case errors.Is(err, services.ErrNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(WishErrorResponse{Error: "Wish not found"})
			case errors.Is(err, services.ErrWishAlreadyFunded):
				w.WriteHeader(http.StatusConflict)
				json.NewEncoder(w).Encode(WishErrorResponse{Error: "Wish already funded, unfund it first"})
			default:
				logger.Log.Errorw("failed to edit wish", "wishID", id, "error", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(WishErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(WishMessageResponse{Message: "Wish updated"})
	}
}

// NewWishDeleteHandler returns an HTTP handler for deleting a wish.
// @Summary Delete wish
// @Description Remove a wish. The withdrawal that funded a done wish stays in the journal.
// @Tags wishlist
// @Produce json
// @Param id path string true "Wish id"
// @Success 200 {object} handlers.WishMessageResponse "Wish deleted"
// @Failure 401 {object} handlers.WishErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.WishErrorResponse "Wish not found"
// @Router /wishlist/{id} [delete]
// @Security BearerAuth
func NewWishDeleteHandler(
	svc WishlistEditor,
	tokenGetter WishlistTokener,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		w.Header().Set("Content-Type", "application/json")

		claims, ok := wishlistClaims(tokenGetter, w, r)
		if !ok {
			return
		}
		id, ok := wishID(w, r)
		if !ok {
			return
		}

		if err := svc.Delete(ctx, claims.UserID, id); err != nil {
			if errors.Is(err, services.ErrNotFound) {
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(WishErrorResponse{Error: "Wish not found"})
				return
			}
			logger.Log.Errorw("failed to delete wish", "wishID", id, "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(WishErrorResponse{Error: "Internal server error"})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(WishMessageResponse{Message: "Wish deleted"})
	}
}

// NewWishFundHandler returns an HTTP handler for funding a wish.
// @Summary Fund wish
// @Description Debit the wish's price from the matching currency total and record a linked withdrawal. Fails when the currency is unknown or the total is too small.
// @Tags wishlist
// @Produce json
// @Param id path string true "Wish id"
// @Success 200 {object} handlers.WishFundResponse "Wish funded"
// @Failure 400 {object} handlers.WishErrorResponse "Unknown currency or insufficient funds"
// @Failure 401 {object} handlers.WishErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.WishErrorResponse "Wish not found"
// @Failure 409 {object} handlers.WishErrorResponse "Wish already funded"
// @Router /wishlist/{id}/fund [post]
// @Security BearerAuth
func NewWishFundHandler(
	svc WishlistFunder,
	tokenGetter WishlistTokener,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		w.Header().Set("Content-Type", "application/json")

		claims, ok := wishlistClaims(tokenGetter, w, r)
		if !ok {
			return
		}
		id, ok := wishID(w, r)
		if !ok {
			return
		}

		transID, err := svc.Fund(ctx, claims.UserID, id)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(WishErrorResponse{Error: "Wish not found"})
			case errors.Is(err, services.ErrWishAlreadyFunded):
				w.WriteHeader(http.StatusConflict)
				json.NewEncoder(w).Encode(WishErrorResponse{Error: "Wish already funded"})
			case errors.Is(err, services.ErrUnknownCurrency):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(WishErrorResponse{Error: "No balance in the wish's currency"})
			case errors.Is(err, services.ErrInsufficientFunds):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(WishErrorResponse{Error: "Insufficient funds"})
			default:
				logger.Log.Errorw("failed to fund wish", "wishID", id, "error", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(WishErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(WishFundResponse{
			Message:       "Wish funded",
			TransactionID: transID.String(),
		})
	}
}

// NewWishUnfundHandler returns an HTTP handler for unfunding a wish.
// @Summary Unfund wish
// @Description Delete the withdrawal that funded the wish, credit the amount back and mark the wish pending again.
// @Tags wishlist
// @Produce json
// @Param id path string true "Wish id"
// @Success 200 {object} handlers.WishMessageResponse "Wish unfunded"
// @Failure 401 {object} handlers.WishErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.WishErrorResponse "Wish not found or not funded"
// @Router /wishlist/{id}/unfund [post]
// @Security BearerAuth
func NewWishUnfundHandler(
	svc WishlistFunder,
	tokenGetter WishlistTokener,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		w.Header().Set("Content-Type", "application/json")

		claims, ok := wishlistClaims(tokenGetter, w, r)
		if !ok {
			return
		}
		id, ok := wishID(w, r)
		if !ok {
			return
		}

		if err := svc.Unfund(ctx, claims.UserID, id); err != nil {
			if errors.Is(err, services.ErrNotFound) {
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(WishErrorResponse{Error: "Wish not found or not funded"})
				return
			}
			logger.Log.Errorw("failed to unfund wish", "wishID", id, "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(WishErrorResponse{Error: "Internal server error"})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(WishMessageResponse{Message: "Wish unfunded"})
	}
}
