package repositories

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"wallet-tracker-api/internal/models"
	apperrors "wallet-tracker-api/pkg/errors"
)

type CurrencyRepository interface {
	GetByID(id int32) (*models.Currency, error)
	GetByCode(code string) (*models.Currency, error)
}

type currencyRepository struct {
	db *gorm.DB
}

func NewCurrencyRepository(db *gorm.DB) CurrencyRepository {
	return &currencyRepository{
		db: db,
	}
}

func (r *currencyRepository) GetByID(id int32) (*models.Currency, error) {
	var currency models.Currency
	if err := r.db.First(&currency, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCurrencyNotFound
		}
		return nil, fmt.Errorf("failed to get currency: %w", err)
	}
	return &currency, nil
}

func (r *currencyRepository) GetByCode(code string) (*models.Currency, error) {
	var currency models.Currency
	if err := r.db.Where("code = ?", code).First(&currency).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCurrencyNotFound
		}
		return nil, fmt.Errorf("failed to get currency by code: %w", err)
	}
	return &currency, nil
}
