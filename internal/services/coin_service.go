package services

import (
	"context"
	"encoding/json"

	"wallet-tracker-api/internal/clients/coingecko"
	"wallet-tracker-api/internal/dto"
	apperrors "wallet-tracker-api/pkg/errors"
	"wallet-tracker-api/pkg/utils"
)

// CoinCatalog is the provider surface the coin endpoints proxy.
type CoinCatalog interface {
	ListCoins(ctx context.Context) ([]coingecko.CoinListEntry, error)
	GetCoin(ctx context.Context, coinID string) (json.RawMessage, error)
}

type CoinService interface {
	ListCoins(ctx context.Context) (*dto.CoinListResponse, error)
	GetCoin(ctx context.Context, coinID string) (json.RawMessage, error)
}

type coinService struct {
	catalog CoinCatalog
}

func NewCoinService(catalog CoinCatalog) CoinService {
	return &coinService{
		catalog: catalog,
	}
}

func (s *coinService) ListCoins(ctx context.Context) (*dto.CoinListResponse, error) {
	coins, err := s.catalog.ListCoins(ctx)
	if err != nil {
		return nil, err
	}

	items := make([]string, 0, len(coins))
	for _, coin := range coins {
		items = append(items, coin.ID)
	}

	return &dto.CoinListResponse{Items: items}, nil
}

func (s *coinService) GetCoin(ctx context.Context, coinID string) (json.RawMessage, error) {
	if err := utils.ValidateTicker(coinID); err != nil {
		return nil, apperrors.NewValidationError("invalid coin id", err.Error())
	}
	return s.catalog.GetCoin(ctx, coinID)
}
