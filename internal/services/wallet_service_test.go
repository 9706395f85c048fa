package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"wallet-tracker-api/internal/dto"
	"wallet-tracker-api/internal/models"
	"wallet-tracker-api/internal/services"
	apperrors "wallet-tracker-api/pkg/errors"
	"wallet-tracker-api/tests/mocks"
)

type walletFixture struct {
	userRepo     *mocks.MockUserRepository
	walletRepo   *mocks.MockWalletRepository
	currencyRepo *mocks.MockCurrencyRepository
	txRepo       *mocks.MockTransactionRepository
	service      services.WalletService
}

func newWalletFixture() *walletFixture {
	f := &walletFixture{
		userRepo:     new(mocks.MockUserRepository),
		walletRepo:   new(mocks.MockWalletRepository),
		currencyRepo: new(mocks.MockCurrencyRepository),
		txRepo:       new(mocks.MockTransactionRepository),
	}
	f.service = services.NewWalletService(f.userRepo, f.walletRepo, f.currencyRepo, f.txRepo)
	return f
}

func validMovement() *dto.MovementRequest {
	return &dto.MovementRequest{
		User:           1,
		CurrencyID:     2,
		MoneyID:        1,
		CurrencyAmount: 0.5,
		MoneyAmount:    150.75,
	}
}

func TestWalletService_RecordMovement(t *testing.T) {
	t.Run("records transaction and forwards new balance", func(t *testing.T) {
		f := newWalletFixture()
		f.userRepo.On("GetByID", int32(1)).Return(&models.User{ID: 1}, nil)
		f.currencyRepo.On("GetByID", int32(2)).Return(&models.Currency{ID: 2, Code: "bitcoin"}, nil)
		f.currencyRepo.On("GetByID", int32(1)).Return(&models.Currency{ID: 1, Code: "usd"}, nil)
		f.walletRepo.On("GetByUserID", int32(1)).Return(&models.Wallet{ID: 7, UserID: 1}, nil)
		f.txRepo.On("Record", mock.AnythingOfType("*models.Transaction"), 150.75).Return(nil)

		transaction, err := f.service.RecordMovement(validMovement())

		assert.NoError(t, err)
		assert.Equal(t, 0.5, transaction.CurrencyAmount)
		assert.Equal(t, 150.75, transaction.MoneyAmount)
		assert.Equal(t, int32(2), transaction.CurrencyID)
		assert.Equal(t, int32(1), transaction.MoneyID)
		assert.Equal(t, int32(7), transaction.WalletID)
		assert.False(t, transaction.DateTransaction.IsZero())
		f.txRepo.AssertExpectations(t)
	})

	t.Run("rejects non-positive amounts before touching storage", func(t *testing.T) {
		f := newWalletFixture()
		req := validMovement()
		req.CurrencyAmount = 0

		_, err := f.service.RecordMovement(req)

		assert.Error(t, err)
		assert.True(t, apperrors.IsKind(err, apperrors.KindValidation))
		f.txRepo.AssertNotCalled(t, "Record", mock.Anything, mock.Anything)
		f.userRepo.AssertNotCalled(t, "GetByID", mock.Anything)
	})

	t.Run("rejects negative money amount", func(t *testing.T) {
		f := newWalletFixture()
		req := validMovement()
		req.MoneyAmount = -3

		_, err := f.service.RecordMovement(req)

		assert.Error(t, err)
		assert.True(t, apperrors.IsKind(err, apperrors.KindValidation))
	})

	t.Run("unknown currency aborts the movement", func(t *testing.T) {
		f := newWalletFixture()
		f.userRepo.On("GetByID", int32(1)).Return(&models.User{ID: 1}, nil)
		f.currencyRepo.On("GetByID", int32(2)).Return(nil, apperrors.ErrCurrencyNotFound)

		_, err := f.service.RecordMovement(validMovement())

		assert.Error(t, err)
		assert.True(t, apperrors.IsKind(err, apperrors.KindNotFound))
		f.txRepo.AssertNotCalled(t, "Record", mock.Anything, mock.Anything)
	})

	t.Run("unknown user aborts the movement", func(t *testing.T) {
		f := newWalletFixture()
		f.userRepo.On("GetByID", int32(1)).Return(nil, apperrors.ErrUserNotFound)

		_, err := f.service.RecordMovement(validMovement())

		assert.Error(t, err)
		f.txRepo.AssertNotCalled(t, "Record", mock.Anything, mock.Anything)
	})

	t.Run("storage failure surfaces to the caller", func(t *testing.T) {
		f := newWalletFixture()
		f.userRepo.On("GetByID", int32(1)).Return(&models.User{ID: 1}, nil)
		f.currencyRepo.On("GetByID", int32(2)).Return(&models.Currency{ID: 2}, nil)
		f.currencyRepo.On("GetByID", int32(1)).Return(&models.Currency{ID: 1}, nil)
		f.walletRepo.On("GetByUserID", int32(1)).Return(&models.Wallet{ID: 7, UserID: 1}, nil)
		f.txRepo.On("Record", mock.AnythingOfType("*models.Transaction"), 150.75).
			Return(apperrors.NewInternalError("insert failed", nil))

		_, err := f.service.RecordMovement(validMovement())

		assert.Error(t, err)
		assert.True(t, apperrors.IsKind(err, apperrors.KindInternal))
	})
}

func TestWalletService_GetWallet(t *testing.T) {
	t.Run("returns stored wallet", func(t *testing.T) {
		f := newWalletFixture()
		f.walletRepo.On("GetByID", int32(7)).Return(&models.Wallet{ID: 7, Balance: 150.75, UserID: 1}, nil)

		wallet, err := f.service.GetWallet(7)

		assert.NoError(t, err)
		assert.Equal(t, 150.75, wallet.Balance)
	})

	t.Run("missing wallet", func(t *testing.T) {
		f := newWalletFixture()
		f.walletRepo.On("GetByID", int32(99)).Return(nil, apperrors.ErrWalletNotFound)

		_, err := f.service.GetWallet(99)

		assert.Error(t, err)
		assert.True(t, apperrors.IsKind(err, apperrors.KindNotFound))
	})
}
