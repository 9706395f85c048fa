package services

import (
	"strings"

	"wallet-tracker-api/internal/dto"
	"wallet-tracker-api/internal/models"
	"wallet-tracker-api/internal/repositories"
	apperrors "wallet-tracker-api/pkg/errors"
	"wallet-tracker-api/pkg/utils"
)

type UserService interface {
	// Register creates a user and the wallet that lives alongside it.
	Register(req *dto.RegisterRequest) (*models.User, *models.Wallet, error)
	GetUserByID(id int32) (*models.User, error)
}

type userService struct {
	userRepo   repositories.UserRepository
	walletRepo repositories.WalletRepository
}

func NewUserService(userRepo repositories.UserRepository, walletRepo repositories.WalletRepository) UserService {
	return &userService{
		userRepo:   userRepo,
		walletRepo: walletRepo,
	}
}

func (s *userService) Register(req *dto.RegisterRequest) (*models.User, *models.Wallet, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	if err := utils.ValidateEmail(email); err != nil {
		return nil, nil, apperrors.NewValidationError("invalid email", err.Error())
	}

	if err := utils.ValidatePassword(req.Password); err != nil {
		return nil, nil, apperrors.NewValidationError("invalid password", err.Error())
	}

	if existing, _ := s.userRepo.GetByEmail(email); existing != nil {
		return nil, nil, apperrors.NewConflictError("user with this email already exists")
	}

	passwordHash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, nil, apperrors.NewInternalError("failed to hash password", err)
	}

	user := &models.User{
		Email:        email,
		PasswordHash: passwordHash,
	}

	if err := s.userRepo.Create(user); err != nil {
		return nil, nil, err
	}

	wallet := &models.Wallet{
		UserID: user.ID,
	}

	if err := s.walletRepo.Create(wallet); err != nil {
		return nil, nil, err
	}

	return user, wallet, nil
}

func (s *userService) GetUserByID(id int32) (*models.User, error) {
	return s.userRepo.GetByID(id)
}
