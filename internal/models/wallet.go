package models

// Wallet caches the money amount of the owner's latest movement in Balance.
// The statistics engine never reads it; concurrent movements on the same
// wallet resolve last write wins.
type Wallet struct {
	ID      int32   `json:"id" gorm:"primaryKey;autoIncrement"`
	Balance float64 `json:"balance" gorm:"type:decimal(15,2);default:0"`
	UserID  int32   `json:"user_id" gorm:"not null;index"`
}

func (w *Wallet) TableName() string {
	return "wallets"
}
