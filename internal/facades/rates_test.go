package facades

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ratesServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/USD", r.URL.Path)
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestRatesHTTPFacade_Primary(t *testing.T) {
	primary := ratesServer(t, http.StatusOK, `{"conversion_rates":{"USD":1,"EUR":0.9}}`)
	fallback := ratesServer(t, http.StatusInternalServerError, "")

	facade := NewRatesHTTPFacade(primary.URL, fallback.URL, time.Second)
	rates, err := facade.GetConversionRates(context.Background(), "USD")
	require.NoError(t, err)
	assert.Equal(t, map[string]float64{"USD": 1, "EUR": 0.9}, rates)
}

func TestRatesHTTPFacade_FallsBack(t *testing.T) {
	primary := ratesServer(t, http.StatusServiceUnavailable, "")
	fallback := ratesServer(t, http.StatusOK, `{"conversion_rates":{"USD":1,"GBP":0.8}}`)

	facade := NewRatesHTTPFacade(primary.URL, fallback.URL, time.Second)
	rates, err := facade.GetConversionRates(context.Background(), "USD")
	require.NoError(t, err)
	assert.Equal(t, 0.8, rates["GBP"])
}

func TestRatesHTTPFacade_EmptyTableIsMalformed(t *testing.T) {
	// A 200 with no rates must not be treated as a usable answer.
	primary := ratesServer(t, http.StatusOK, `{"conversion_rates":{}}`)
	fallback := ratesServer(t, http.StatusOK, `{"conversion_rates":{"USD":1}}`)

	facade := NewRatesHTTPFacade(primary.URL, fallback.URL, time.Second)
	rates, err := facade.GetConversionRates(context.Background(), "USD")
	require.NoError(t, err)
	assert.Equal(t, map[string]float64{"USD": 1}, rates)
}

func TestRatesHTTPFacade_BothDown(t *testing.T) {
	primary := ratesServer(t, http.StatusBadGateway, "")
	fallback := ratesServer(t, http.StatusOK, `not json`)

	facade := NewRatesHTTPFacade(primary.URL, fallback.URL, time.Second)
	_, err := facade.GetConversionRates(context.Background(), "USD")
	assert.Error(t, err)
}
