package dto

import (
	"time"

	"wallet-tracker-api/internal/models"
)

// MovementRequest is the payload for recording a wallet movement. Amounts
// must be strictly positive or the average-cost aggregation degenerates.
type MovementRequest struct {
	User           int32   `json:"user" binding:"required" validate:"required"`
	CurrencyID     int32   `json:"currency_id" binding:"required" validate:"required"`
	MoneyID        int32   `json:"money_id" binding:"required" validate:"required"`
	CurrencyAmount float64 `json:"currency_amount" binding:"required,gt=0" validate:"required,gt=0"`
	MoneyAmount    float64 `json:"money_amount" binding:"required,gt=0" validate:"required,gt=0"`
}

// StatisticRequest carries the user identifier for the statistics report.
// The optional currency filter travels as the currency_code query parameter.
type StatisticRequest struct {
	User int32 `json:"user" binding:"required" validate:"required"`
}

type WalletResponse struct {
	ID      int32   `json:"id"`
	Balance float64 `json:"balance"`
}

type TransactionResponse struct {
	ID              int32     `json:"id"`
	CurrencyAmount  float64   `json:"currency_amount"`
	MoneyAmount     float64   `json:"money_amount"`
	DateTransaction time.Time `json:"date_transaction"`
	CurrencyID      int32     `json:"currency_id"`
	MoneyID         int32     `json:"money_id"`
	WalletID        int32     `json:"wallet_id"`
}

// WalletStatisticResponse compares the historical average cost of a wallet's
// holdings against the current market price.
type WalletStatisticResponse struct {
	WalletAvg   float64 `json:"wallet_avg"`
	ActualPrice float64 `json:"actual_price"`
	Trend       string  `json:"trend"`
	Percentage  float64 `json:"percentage"`
}

func ToWalletResponse(wallet *models.Wallet) WalletResponse {
	return WalletResponse{
		ID:      wallet.ID,
		Balance: wallet.Balance,
	}
}

func ToTransactionResponse(transaction *models.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:              transaction.ID,
		CurrencyAmount:  transaction.CurrencyAmount,
		MoneyAmount:     transaction.MoneyAmount,
		DateTransaction: transaction.DateTransaction,
		CurrencyID:      transaction.CurrencyID,
		MoneyID:         transaction.MoneyID,
		WalletID:        transaction.WalletID,
	}
}
