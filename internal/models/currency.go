package models

// Currency is immutable reference data. Code is the provider-side identifier
// (CoinGecko coin id for crypto assets, e.g. "bitcoin"; "usd" for money).
type Currency struct {
	ID   int32  `json:"id" gorm:"primaryKey;autoIncrement"`
	Code string `json:"code" gorm:"uniqueIndex;not null;size:64"`
	Name string `json:"name" gorm:"size:100"`
}

func (c *Currency) TableName() string {
	return "currencies"
}
