package coingecko_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wallet-tracker-api/internal/clients/coingecko"
	apperrors "wallet-tracker-api/pkg/errors"
)

func newTestClient(server *httptest.Server) *coingecko.Client {
	return coingecko.NewClient(&coingecko.Config{
		BaseURL:   server.URL,
		Timeout:   2 * time.Second,
		RateLimit: 60000, // keep the limiter out of the way in tests
	})
}

func TestClient_GetPrice(t *testing.T) {
	t.Run("returns the usd quote", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/simple/price", r.URL.Path)
			assert.Equal(t, "bitcoin", r.URL.Query().Get("ids"))
			assert.Equal(t, "usd", r.URL.Query().Get("vs_currencies"))
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"bitcoin":{"usd":50000.25}}`))
		}))
		defer server.Close()

		price, err := newTestClient(server).GetPrice(context.Background(), "bitcoin")

		require.NoError(t, err)
		assert.Equal(t, 50000.25, price)
	})

	t.Run("missing coin key is a lookup failure", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{}`))
		}))
		defer server.Close()

		_, err := newTestClient(server).GetPrice(context.Background(), "nonexistent-coin")

		assert.Error(t, err)
		assert.True(t, apperrors.IsKind(err, apperrors.KindLookup))
	})

	t.Run("malformed body is a transport failure", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`not json`))
		}))
		defer server.Close()

		_, err := newTestClient(server).GetPrice(context.Background(), "bitcoin")

		assert.Error(t, err)
		assert.True(t, apperrors.IsKind(err, apperrors.KindTransport))
	})

	t.Run("provider 500 is a transport failure", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		_, err := newTestClient(server).GetPrice(context.Background(), "bitcoin")

		assert.Error(t, err)
		assert.True(t, apperrors.IsKind(err, apperrors.KindTransport))
	})

	t.Run("provider 404 is a lookup failure", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"error":"coin not found"}`))
		}))
		defer server.Close()

		_, err := newTestClient(server).GetPrice(context.Background(), "bitcoin")

		assert.Error(t, err)
		assert.True(t, apperrors.IsKind(err, apperrors.KindLookup))
	})
}

func TestClient_ListCoins(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/coins/list", r.URL.Path)
		w.Write([]byte(`[{"id":"bitcoin","symbol":"btc","name":"Bitcoin"},{"id":"ethereum","symbol":"eth","name":"Ethereum"}]`))
	}))
	defer server.Close()

	coins, err := newTestClient(server).ListCoins(context.Background())

	require.NoError(t, err)
	require.Len(t, coins, 2)
	assert.Equal(t, "bitcoin", coins[0].ID)
	assert.Equal(t, "eth", coins[1].Symbol)
}

func TestClient_GetCoin(t *testing.T) {
	t.Run("returns the raw payload untouched", func(t *testing.T) {
		payload := `{"id":"bitcoin","symbol":"btc","market_data":{"current_price":{"usd":50000}}}`
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/coins/bitcoin", r.URL.Path)
			w.Write([]byte(payload))
		}))
		defer server.Close()

		got, err := newTestClient(server).GetCoin(context.Background(), "bitcoin")

		require.NoError(t, err)
		assert.JSONEq(t, payload, string(got))
	})

	t.Run("unknown id surfaces the provider error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"error":"coin not found"}`))
		}))
		defer server.Close()

		_, err := newTestClient(server).GetCoin(context.Background(), "nope")

		assert.Error(t, err)
		assert.True(t, apperrors.IsKind(err, apperrors.KindLookup))
	})
}

func TestClient_SendsAPIKeyHeader(t *testing.T) {
	var gotKey string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.Header.Get("x-cg-pro-api-key")
		w.Write([]byte(`{"gecko_says":"(V3) To the Moon!"}`))
	}))
	defer server.Close()

	client := coingecko.NewClient(&coingecko.Config{
		BaseURL:   server.URL,
		APIKey:    "test-key",
		RateLimit: 60000,
	})

	err := client.Ping(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "test-key", gotKey)
}
