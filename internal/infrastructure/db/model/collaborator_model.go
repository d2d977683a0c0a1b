package model

import (
	"time"

	"github.com/google/uuid"
)

// CollaboratorModel collaborators 테이블 ORM 모델.
// (todo_id, user_id) 쌍은 유일합니다. todo 삭제 시 행은 애플리케이션에서 먼저 지웁니다.
type CollaboratorModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	TodoID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_collaborators_todo_user,priority:1"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_collaborators_todo_user,priority:2;index"`
	Status    string    `gorm:"size:32;not null;default:'pending'"`
	CreatedAt time.Time `gorm:"autoCreateTime"`

	Todo *TodoModel `gorm:"foreignKey:TodoID"`
	User *UserModel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

func (CollaboratorModel) TableName() string {
	return "collaborators"
}

// CollaboratorDetailRow collaborators와 users 조인 결과
type CollaboratorDetailRow struct {
	UserID     uuid.UUID
	TodoID     uuid.UUID
	Email      string
	FullName   string
	InviteCode string
	Status     string
	CreatedAt  time.Time
}
