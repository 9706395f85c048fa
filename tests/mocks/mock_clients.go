package mocks

import (
	"context"
	"encoding/json"

	"github.com/stretchr/testify/mock"

	"wallet-tracker-api/internal/clients/coingecko"
)

type MockPriceLookup struct {
	mock.Mock
}

func (m *MockPriceLookup) GetPrice(ctx context.Context, code string) (float64, error) {
	args := m.Called(ctx, code)
	return args.Get(0).(float64), args.Error(1)
}

type MockCoinCatalog struct {
	mock.Mock
}

func (m *MockCoinCatalog) ListCoins(ctx context.Context) ([]coingecko.CoinListEntry, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]coingecko.CoinListEntry), args.Error(1)
}

func (m *MockCoinCatalog) GetCoin(ctx context.Context, coinID string) (json.RawMessage, error) {
	args := m.Called(ctx, coinID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(json.RawMessage), args.Error(1)
}
