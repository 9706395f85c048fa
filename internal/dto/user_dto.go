package dto

import (
	"time"

	"wallet-tracker-api/internal/models"
)

type RegisterRequest struct {
	Email    string `json:"email" binding:"required" validate:"required,email"`
	Password string `json:"password" binding:"required" validate:"required"`
}

type UserResponse struct {
	ID        int32     `json:"id"`
	Email     string    `json:"email"`
	WalletID  int32     `json:"wallet_id"`
	CreatedAt time.Time `json:"created_at"`
}

func ToUserResponse(user *models.User, wallet *models.Wallet) UserResponse {
	response := UserResponse{
		ID:        user.ID,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
	}
	if wallet != nil {
		response.WalletID = wallet.ID
	}
	return response
}
