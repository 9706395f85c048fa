package models

import (
	"time"
)

type User struct {
	ID           int32     `json:"id" gorm:"primaryKey;autoIncrement"`
	Email        string    `json:"email" gorm:"uniqueIndex;not null;size:150"`
	PasswordHash string    `json:"-" gorm:"not null;size:255"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
	Wallet       *Wallet   `json:"-" gorm:"foreignKey:UserID"`
}

func (u *User) TableName() string {
	return "users"
}
