package model

import (
	"time"

	"github.com/google/uuid"
)

// SubTodoModel sub_todos 테이블 ORM 모델. 부모 todo 삭제 시 함께 삭제됩니다.
type SubTodoModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	TodoID      uuid.UUID `gorm:"type:uuid;not null;index"`
	Title       string    `gorm:"size:255;not null"`
	Description string    `gorm:"size:255;not null;default:''"`
	Status      string    `gorm:"size:32;not null;default:'in_progress'"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime"`

	Todo *TodoModel `gorm:"foreignKey:TodoID;constraint:OnDelete:CASCADE"`
}

func (SubTodoModel) TableName() string {
	return "sub_todos"
}
