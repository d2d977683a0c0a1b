package model

import (
	"time"

	"github.com/google/uuid"
)

// TodoModel todos 테이블 ORM 모델
type TodoModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Title       string    `gorm:"size:255;not null"`
	Description string    `gorm:"size:255;not null;default:''"`
	Status      string    `gorm:"size:32;not null;default:'in_progress'"`
	OwnerID     uuid.UUID `gorm:"type:uuid;not null;index:idx_todos_owner_created,priority:1"`
	CreatedAt   time.Time `gorm:"autoCreateTime;index:idx_todos_owner_created,priority:2"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime"`

	Owner *UserModel `gorm:"foreignKey:OwnerID;constraint:OnDelete:CASCADE"`
}

func (TodoModel) TableName() string {
	return "todos"
}
