package services

import (
	"context"

	"github.com/shopspring/decimal"

	"wallet-tracker-api/internal/dto"
	"wallet-tracker-api/internal/repositories"
	apperrors "wallet-tracker-api/pkg/errors"
)

// PriceLookup resolves the current USD spot price for a currency code.
// A single failed call is terminal for the request; no retries.
type PriceLookup interface {
	GetPrice(ctx context.Context, code string) (float64, error)
}

const (
	TrendRising = "rising"
	TrendLow    = "low"
	TrendTied   = "tied"
)

type StatisticsService interface {
	// WalletStatistics builds the market-trend report for the user's wallet,
	// scoped to currencyCode when non-empty, otherwise aggregated over every
	// currency the wallet has transacted in.
	WalletStatistics(ctx context.Context, userID int32, currencyCode string) (*dto.WalletStatisticResponse, error)

	// AverageCost computes the weighted average price (money units per unit
	// of currency) the wallet paid across its whole history in that currency.
	AverageCost(currencyCode string, walletID int32) (float64, error)
}

type statisticsService struct {
	userRepo     repositories.UserRepository
	walletRepo   repositories.WalletRepository
	currencyRepo repositories.CurrencyRepository
	txRepo       repositories.TransactionRepository
	prices       PriceLookup
}

func NewStatisticsService(
	userRepo repositories.UserRepository,
	walletRepo repositories.WalletRepository,
	currencyRepo repositories.CurrencyRepository,
	txRepo repositories.TransactionRepository,
	prices PriceLookup,
) StatisticsService {
	return &statisticsService{
		userRepo:     userRepo,
		walletRepo:   walletRepo,
		currencyRepo: currencyRepo,
		txRepo:       txRepo,
		prices:       prices,
	}
}

func (s *statisticsService) WalletStatistics(ctx context.Context, userID int32, currencyCode string) (*dto.WalletStatisticResponse, error) {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		if apperrors.IsKind(err, apperrors.KindNotFound) {
			return nil, apperrors.NewAuthorizationError("no user matches the supplied identifier")
		}
		return nil, err
	}

	wallet, err := s.walletRepo.GetByUserID(user.ID)
	if err != nil {
		return nil, err
	}

	var walletAvg, actualPrice float64
	if currencyCode != "" {
		walletAvg, actualPrice, err = s.currencyFigures(ctx, currencyCode, wallet.ID)
	} else {
		walletAvg, actualPrice, err = s.portfolioFigures(ctx, wallet.ID)
	}
	if err != nil {
		return nil, err
	}

	if walletAvg == 0 {
		return nil, apperrors.NewInvalidStateError("wallet average cost is zero")
	}

	trend := TrendTied
	switch {
	case walletAvg < actualPrice:
		trend = TrendRising
	case walletAvg > actualPrice:
		trend = TrendLow
	}

	return &dto.WalletStatisticResponse{
		WalletAvg:   walletAvg,
		ActualPrice: actualPrice,
		Trend:       trend,
		Percentage:  round2(actualPrice/walletAvg*100 - 100),
	}, nil
}

func (s *statisticsService) currencyFigures(ctx context.Context, currencyCode string, walletID int32) (float64, float64, error) {
	walletAvg, err := s.AverageCost(currencyCode, walletID)
	if err != nil {
		return 0, 0, err
	}

	actualPrice, err := s.prices.GetPrice(ctx, currencyCode)
	if err != nil {
		return 0, 0, err
	}

	return walletAvg, actualPrice, nil
}

// portfolioFigures aggregates over every currency the wallet has transacted
// in by summing the per-currency averages and prices.
//
// TODO: summing per-unit averages and prices across different assets mixes
// incompatible units; kept until product decides on a weighted alternative.
func (s *statisticsService) portfolioFigures(ctx context.Context, walletID int32) (float64, float64, error) {
	currencyIDs, err := s.txRepo.DistinctCurrencyIDs(walletID)
	if err != nil {
		return 0, 0, err
	}

	if len(currencyIDs) == 0 {
		return 0, 0, apperrors.ErrTransactionsNotFound
	}

	var avgTotal, priceTotal float64
	for _, currencyID := range currencyIDs {
		currency, err := s.currencyRepo.GetByID(currencyID)
		if err != nil {
			return 0, 0, err
		}

		avg, price, err := s.currencyFigures(ctx, currency.Code, walletID)
		if err != nil {
			return 0, 0, err
		}

		avgTotal += avg
		priceTotal += price
	}

	return avgTotal, priceTotal, nil
}

func (s *statisticsService) AverageCost(currencyCode string, walletID int32) (float64, error) {
	currency, err := s.currencyRepo.GetByCode(currencyCode)
	if err != nil {
		return 0, err
	}

	transactions, err := s.txRepo.ListByWalletAndCurrency(walletID, currency.ID)
	if err != nil {
		return 0, err
	}

	// An empty selection is a reportable condition, never a silent zero.
	if len(transactions) == 0 {
		return 0, apperrors.ErrTransactionsNotFound
	}

	var currencyTotal, moneyTotal float64
	for _, transaction := range transactions {
		currencyTotal += transaction.CurrencyAmount
		moneyTotal += transaction.MoneyAmount
	}

	if currencyTotal == 0 {
		return 0, apperrors.NewInvalidStateError("total currency amount is zero")
	}

	return round2(moneyTotal / currencyTotal), nil
}

func round2(value float64) float64 {
	return decimal.NewFromFloat(value).Round(2).InexactFloat64()
}
