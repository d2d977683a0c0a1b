package model

import (
	"time"

	"github.com/google/uuid"
)

// CategoryModel categories 테이블 ORM 모델
type CategoryModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	OwnerID     uuid.UUID `gorm:"type:uuid;not null;index"`
	Title       string    `gorm:"size:255;not null"`
	Description string    `gorm:"size:255;not null;default:''"`
	Level       string    `gorm:"size:16;not null;default:'low'"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime"`

	Owner *UserModel `gorm:"foreignKey:OwnerID;constraint:OnDelete:CASCADE"`
}

func (CategoryModel) TableName() string {
	return "categories"
}
