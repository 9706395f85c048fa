package services

import (
	"time"

	"wallet-tracker-api/internal/dto"
	"wallet-tracker-api/internal/models"
	"wallet-tracker-api/internal/repositories"
	apperrors "wallet-tracker-api/pkg/errors"
	"wallet-tracker-api/pkg/utils"
)

type WalletService interface {
	GetWallet(walletID int32) (*models.Wallet, error)
	// RecordMovement appends a Transaction for the user's wallet and sets the
	// wallet balance to the posted money amount (replacement, not
	// accumulation).
	RecordMovement(req *dto.MovementRequest) (*models.Transaction, error)
}

type walletService struct {
	userRepo     repositories.UserRepository
	walletRepo   repositories.WalletRepository
	currencyRepo repositories.CurrencyRepository
	txRepo       repositories.TransactionRepository
}

func NewWalletService(
	userRepo repositories.UserRepository,
	walletRepo repositories.WalletRepository,
	currencyRepo repositories.CurrencyRepository,
	txRepo repositories.TransactionRepository,
) WalletService {
	return &walletService{
		userRepo:     userRepo,
		walletRepo:   walletRepo,
		currencyRepo: currencyRepo,
		txRepo:       txRepo,
	}
}

func (s *walletService) GetWallet(walletID int32) (*models.Wallet, error) {
	return s.walletRepo.GetByID(walletID)
}

func (s *walletService) RecordMovement(req *dto.MovementRequest) (*models.Transaction, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, apperrors.NewValidationError("invalid movement payload", err.Error())
	}

	user, err := s.userRepo.GetByID(req.User)
	if err != nil {
		return nil, err
	}

	currency, err := s.currencyRepo.GetByID(req.CurrencyID)
	if err != nil {
		return nil, err
	}

	money, err := s.currencyRepo.GetByID(req.MoneyID)
	if err != nil {
		return nil, err
	}

	wallet, err := s.walletRepo.GetByUserID(user.ID)
	if err != nil {
		return nil, err
	}

	transaction := &models.Transaction{
		CurrencyAmount:  req.CurrencyAmount,
		MoneyAmount:     req.MoneyAmount,
		DateTransaction: time.Now(),
		CurrencyID:      currency.ID,
		MoneyID:         money.ID,
		WalletID:        wallet.ID,
	}

	if err := s.txRepo.Record(transaction, req.MoneyAmount); err != nil {
		return nil, err
	}

	return transaction, nil
}
