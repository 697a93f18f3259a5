package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/imhotep-finance/finance-service/internal/logger"
	"github.com/imhotep-finance/finance-service/internal/models"
)

// RateSource fetches a conversion-rate table keyed by base currency from
// the external providers.
type RateSource interface {
	GetConversionRates(ctx context.Context, base string) (map[string]float64, error)
}

// RateCache caches conversion-rate tables.
type RateCache interface {
	GetRates(ctx context.Context, base string) (map[string]float64, error)
	SetRates(ctx context.Context, base string, rates map[string]float64) error
}

// UserGetter looks a user up by id.
type UserGetter interface {
	GetByID(ctx context.Context, userID uuid.UUID) (*models.UserDB, error)
}

// NetworthService aggregates all of a user's ledger totals into their
// favorite currency.
type NetworthService struct {
	ledgerReader LedgerReader
	users        UserGetter
	rates        RateSource
	cache        RateCache
}

// NewNetworthService creates a new NetworthService.
func NewNetworthService(ledgerReader LedgerReader, users UserGetter, rates RateSource, cache RateCache) *NetworthService {
	return &NetworthService{
		ledgerReader: ledgerReader,
		users:        users,
		rates:        rates,
		cache:        cache,
	}
}

// Balances returns the user's raw per-currency totals.
func (s *NetworthService) Balances(ctx context.Context, userID uuid.UUID) (map[string]int64, error) {
	return s.ledgerReader.GetAll(ctx, userID)
}

// TotalInFavoriteCurrency converts every ledger total into the user's
// favorite currency and sums them. Rates come from the cache when fresh,
// otherwise from the providers (primary, then fallback); when both
// providers fail the operation fails with ErrRateProviderUnavailable. A
// held currency missing from the fetched table counts as a provider
// failure too.
func (s *NetworthService) TotalInFavoriteCurrency(ctx context.Context, userID uuid.UUID) (float64, string, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return 0, "", err
	}
	if user == nil {
		return 0, "", ErrNotFound
	}
	favorite := user.FavoriteCurrency

	totals, err := s.ledgerReader.GetAll(ctx, userID)
	if err != nil {
		return 0, "", err
	}
	if len(totals) == 0 {
		return 0, favorite, nil
	}

	rates, err := s.cache.GetRates(ctx, favorite)
	if err != nil {
		rates, err = s.rates.GetConversionRates(ctx, favorite)
		if err != nil {
			logger.Log.Errorw("all rate providers failed", "base", favorite, "error", err)
			return 0, "", fmt.Errorf("%w: %v", ErrRateProviderUnavailable, err)
		}
		if err := s.cache.SetRates(ctx, favorite, rates); err != nil {
			logger.Log.Errorw("failed to cache rate table", "base", favorite, "error", err)
		}
	}

	sum := decimal.Zero
	for currency, total := range totals {
		rate, ok := rates[currency]
		if !ok || rate <= 0 {
			logger.Log.Errorw("rate table misses a held currency", "base", favorite, "currency", currency)
			return 0, "", fmt.Errorf("%w: no rate for %s", ErrRateProviderUnavailable, currency)
		}
		converted := decimal.NewFromInt(total).Div(decimal.NewFromFloat(rate))
		sum = sum.Add(converted)
	}

	total, _ := sum.Round(2).Float64()
	return total, favorite, nil
}
