package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel users 테이블 ORM 모델
type UserModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email          string    `gorm:"size:255;not null;uniqueIndex"`
	FullName       string    `gorm:"size:255;not null;default:''"`
	HashedPassword string    `gorm:"size:255;not null"`
	InviteCode     string    `gorm:"size:16;not null;uniqueIndex"`
	IsActive       bool      `gorm:"not null"`
	IsSuperuser    bool      `gorm:"not null"`
	CreatedAt      time.Time `gorm:"autoCreateTime"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime"`
}

func (UserModel) TableName() string {
	return "users"
}
