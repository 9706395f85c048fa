package models

import (
	"time"
)

// Transaction is an append-only ledger entry: one exchange of CurrencyAmount
// units of a crypto-currency for MoneyAmount units of a money currency.
// Rows are never updated or deleted.
type Transaction struct {
	ID              int32     `json:"id" gorm:"primaryKey;autoIncrement"`
	CurrencyAmount  float64   `json:"currency_amount" gorm:"not null"`
	MoneyAmount     float64   `json:"money_amount" gorm:"not null"`
	DateTransaction time.Time `json:"date_transaction" gorm:"not null"`
	CurrencyID      int32     `json:"currency_id" gorm:"not null;index:idx_wallet_currency,priority:2"`
	MoneyID         int32     `json:"money_id" gorm:"not null"`
	WalletID        int32     `json:"wallet_id" gorm:"not null;index:idx_wallet_currency,priority:1"`

	Currency *Currency `json:"-" gorm:"foreignKey:CurrencyID"`
	Money    *Currency `json:"-" gorm:"foreignKey:MoneyID"`
	Wallet   *Wallet   `json:"-" gorm:"foreignKey:WalletID"`
}

func (t *Transaction) TableName() string {
	return "transactions"
}
