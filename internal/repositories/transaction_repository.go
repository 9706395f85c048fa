package repositories

import (
	"fmt"

	"gorm.io/gorm"

	"wallet-tracker-api/internal/models"
)

type TransactionRepository interface {
	// Record appends the transaction and overwrites the wallet balance in a
	// single database transaction.
	Record(transaction *models.Transaction, newBalance float64) error
	ListByWalletAndCurrency(walletID, currencyID int32) ([]models.Transaction, error)
	DistinctCurrencyIDs(walletID int32) ([]int32, error)
}

type transactionRepository struct {
	db *gorm.DB
}

func NewTransactionRepository(db *gorm.DB) TransactionRepository {
	return &transactionRepository{
		db: db,
	}
}

func (r *transactionRepository) Record(transaction *models.Transaction, newBalance float64) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(transaction).Error; err != nil {
			return err
		}
		result := tx.Model(&models.Wallet{}).
			Where("id = ?", transaction.WalletID).
			Update("balance", newBalance)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to record transaction: %w", err)
	}
	return nil
}

func (r *transactionRepository) ListByWalletAndCurrency(walletID, currencyID int32) ([]models.Transaction, error) {
	var transactions []models.Transaction
	if err := r.db.
		Where("wallet_id = ? AND currency_id = ?", walletID, currencyID).
		Order("date_transaction ASC").
		Find(&transactions).Error; err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	return transactions, nil
}

func (r *transactionRepository) DistinctCurrencyIDs(walletID int32) ([]int32, error) {
	var ids []int32
	if err := r.db.Model(&models.Transaction{}).
		Where("wallet_id = ?", walletID).
		Distinct("currency_id").
		Order("currency_id ASC").
		Pluck("currency_id", &ids).Error; err != nil {
		return nil, fmt.Errorf("failed to list wallet currencies: %w", err)
	}
	return ids, nil
}
