package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/wekeepgrowing/semo-todo/internal/domain/entity"
	domainrepo "github.com/wekeepgrowing/semo-todo/internal/domain/repository"
	"github.com/wekeepgrowing/semo-todo/internal/infrastructure/db/model"
)

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository 사용자 레포지토리 구현체 생성
func NewUserRepository(db *gorm.DB) domainrepo.UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) findOne(ctx context.Context, query string, args ...interface{}) (*entity.User, error) {
	var m model.UserModel
	if err := r.db.WithContext(ctx).Where(query, args...).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return toUserEntity(&m), nil
}

func (r *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	return r.findOne(ctx, "id = ?", id)
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	return r.findOne(ctx, "email = ?", email)
}

func (r *userRepository) FindByInviteCode(ctx context.Context, inviteCode string) (*entity.User, error) {
	return r.findOne(ctx, "invite_code = ?", inviteCode)
}

func (r *userRepository) Create(ctx context.Context, user *entity.User) error {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	m := toUserModel(user)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return translateWriteError(err)
	}
	user.CreatedAt, user.UpdatedAt = m.CreatedAt, m.UpdatedAt
	return nil
}

// Update는 변경 가능한 필드만 저장합니다. invite_code는 변경하지 않습니다.
func (r *userRepository) Update(ctx context.Context, user *entity.User) error {
	m := toUserModel(user)
	err := r.db.WithContext(ctx).Model(m).
		Select("email", "full_name", "hashed_password", "is_active", "is_superuser", "updated_at").
		Updates(m).Error
	if err != nil {
		return translateWriteError(err)
	}
	user.UpdatedAt = m.UpdatedAt
	return nil
}
