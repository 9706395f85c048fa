package services_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"wallet-tracker-api/internal/clients/coingecko"
	"wallet-tracker-api/internal/services"
	apperrors "wallet-tracker-api/pkg/errors"
	"wallet-tracker-api/tests/mocks"
)

func TestCoinService_ListCoins(t *testing.T) {
	t.Run("maps catalog entries to ids", func(t *testing.T) {
		catalog := new(mocks.MockCoinCatalog)
		catalog.On("ListCoins", ctxArg()).Return([]coingecko.CoinListEntry{
			{ID: "bitcoin", Symbol: "btc", Name: "Bitcoin"},
			{ID: "ethereum", Symbol: "eth", Name: "Ethereum"},
		}, nil)
		service := services.NewCoinService(catalog)

		resp, err := service.ListCoins(context.Background())

		assert.NoError(t, err)
		assert.Equal(t, []string{"bitcoin", "ethereum"}, resp.Items)
	})

	t.Run("provider failure propagates", func(t *testing.T) {
		catalog := new(mocks.MockCoinCatalog)
		catalog.On("ListCoins", ctxArg()).Return(nil, apperrors.NewTransportError("provider down", nil))
		service := services.NewCoinService(catalog)

		_, err := service.ListCoins(context.Background())

		assert.Error(t, err)
		assert.True(t, apperrors.IsKind(err, apperrors.KindTransport))
	})
}

func TestCoinService_GetCoin(t *testing.T) {
	t.Run("returns raw provider payload", func(t *testing.T) {
		payload := json.RawMessage(`{"id":"bitcoin","symbol":"btc"}`)
		catalog := new(mocks.MockCoinCatalog)
		catalog.On("GetCoin", ctxArg(), "bitcoin").Return(payload, nil)
		service := services.NewCoinService(catalog)

		got, err := service.GetCoin(context.Background(), "bitcoin")

		assert.NoError(t, err)
		assert.JSONEq(t, string(payload), string(got))
	})

	t.Run("rejects malformed ids without calling the provider", func(t *testing.T) {
		catalog := new(mocks.MockCoinCatalog)
		service := services.NewCoinService(catalog)

		_, err := service.GetCoin(context.Background(), "BAD ID!")

		assert.Error(t, err)
		assert.True(t, apperrors.IsKind(err, apperrors.KindValidation))
		catalog.AssertNotCalled(t, "GetCoin", mock.Anything, mock.Anything)
	})

	t.Run("unknown coin id", func(t *testing.T) {
		catalog := new(mocks.MockCoinCatalog)
		catalog.On("GetCoin", ctxArg(), "nonexistent-coin").Return(nil, apperrors.NewLookupError("coin not found"))
		service := services.NewCoinService(catalog)

		_, err := service.GetCoin(context.Background(), "nonexistent-coin")

		assert.Error(t, err)
		assert.True(t, apperrors.IsKind(err, apperrors.KindLookup))
	})
}
