// Package facades wraps the external collaborators the core calls into.
package facades

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/imhotep-finance/finance-service/internal/logger"
)

// RatesHTTPFacade fetches conversion-rate tables from an exchange-rate API
// over HTTP. Two endpoints are configured; the fallback is tried once when
// the primary is unreachable or returns a malformed table.
type RatesHTTPFacade struct {
	client      *http.Client
	primaryURL  string
	fallbackURL string
}

// NewRatesHTTPFacade creates a facade with a bounded per-call timeout.
// Each URL is a base endpoint to which "/{BASE_CURRENCY}" is appended.
func NewRatesHTTPFacade(primaryURL, fallbackURL string, timeout time.Duration) *RatesHTTPFacade {
	return &RatesHTTPFacade{
		client:      &http.Client{Timeout: timeout},
		primaryURL:  primaryURL,
		fallbackURL: fallbackURL,
	}
}

type ratesResponse struct {
	ConversionRates map[string]float64 `json:"conversion_rates"`
}

// GetConversionRates returns the rate table keyed by the given base
// currency, trying the primary provider first and the fallback second.
func (f *RatesHTTPFacade) GetConversionRates(ctx context.Context, base string) (map[string]float64, error) {
	rates, primaryErr := f.fetch(ctx, f.primaryURL, base)
	if primaryErr == nil {
		return rates, nil
	}
	logger.Log.Warnw("primary rate provider failed, trying fallback", "base", base, "error", primaryErr)

	rates, fallbackErr := f.fetch(ctx, f.fallbackURL, base)
	if fallbackErr == nil {
		return rates, nil
	}
	logger.Log.Errorw("fallback rate provider failed", "base", base, "error", fallbackErr)

	return nil, fmt.Errorf("primary: %v; fallback: %v", primaryErr, fallbackErr)
}

func (f *RatesHTTPFacade) fetch(ctx context.Context, baseURL, base string) (map[string]float64, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, baseURL+"/"+base, nil)
	if err != nil {
		return nil, err
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("rate provider returned status %d", resp.StatusCode)
	}

	var body ratesResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("malformed rate response: %w", err)
	}
	if len(body.ConversionRates) == 0 {
		return nil, fmt.Errorf("rate response has no conversion_rates")
	}

	return body.ConversionRates, nil
}
