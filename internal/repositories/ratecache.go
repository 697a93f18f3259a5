package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/imhotep-finance/finance-service/internal/logger"
)

// RateCacheRepository caches conversion-rate tables in Redis, one table per
// base currency, so the aggregator does not hit the external provider on
// every request.
type RateCacheRepository struct {
	client *redis.Client
	exp    time.Duration
}

// NewRateCacheRepository creates a cache with the given TTL per table.
func NewRateCacheRepository(client *redis.Client, expiration time.Duration) *RateCacheRepository {
	return &RateCacheRepository{
		client: client,
		exp:    expiration,
	}
}

func rateKey(base string) string {
	return fmt.Sprintf("conversion_rates:%s", base)
}

// GetRates fetches the cached rate table for a base currency.
func (r *RateCacheRepository) GetRates(ctx context.Context, base string) (map[string]float64, error) {
	key := rateKey(base)

	val, err := r.client.Get(ctx, key).Result()
	if err != nil {
		logger.Log.Infow(
			"key", key,
			"error", err,
		)
		if err == redis.Nil {
			return nil, fmt.Errorf("conversion rates not cached for base %s", base)
		}
		return nil, err
	}

	var rates map[string]float64
	if err := json.Unmarshal([]byte(val), &rates); err != nil {
		logger.Log.Errorw("corrupt cached rate table", "key", key, "error", err)
		return nil, err
	}

	logger.Log.Infow(
		"key", key,
		"result", len(rates),
		"error", nil,
	)

	return rates, nil
}

// SetRates caches a rate table for a base currency with expiration.
func (r *RateCacheRepository) SetRates(ctx context.Context, base string, rates map[string]float64) error {
	key := rateKey(base)

	data, err := json.Marshal(rates)
	if err != nil {
		return err
	}

	err = r.client.Set(ctx, key, data, r.exp).Err()

	logger.Log.Infow(
		"key", key,
		"rates", len(rates),
		"error", err,
	)

	return err
}
