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

type subTodoRepository struct {
	db *gorm.DB
}

// NewSubTodoRepository creates a gorm backed sub-todo repository
func NewSubTodoRepository(db *gorm.DB) domainrepo.SubTodoRepository {
	return &subTodoRepository{db: db}
}

func (r *subTodoRepository) Create(ctx context.Context, sub *entity.SubTodo) error {
	if sub.ID == uuid.Nil {
		sub.ID = uuid.New()
	}
	m := toSubTodoModel(sub)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return fmt.Errorf("failed to create sub-todo: %w", err)
	}
	sub.CreatedAt, sub.UpdatedAt = m.CreatedAt, m.UpdatedAt
	return nil
}

func (r *subTodoRepository) FindByID(ctx context.Context, todoID, id uuid.UUID) (*entity.SubTodo, error) {
	var m model.SubTodoModel
	err := r.db.WithContext(ctx).Where("id = ? AND todo_id = ?", id, todoID).First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find sub-todo: %w", err)
	}
	return toSubTodoEntity(&m), nil
}

func (r *subTodoRepository) Update(ctx context.Context, sub *entity.SubTodo) error {
	m := toSubTodoModel(sub)
	err := r.db.WithContext(ctx).Model(m).
		Select("title", "description", "status", "updated_at").
		Updates(m).Error
	if err != nil {
		return fmt.Errorf("failed to update sub-todo: %w", err)
	}
	sub.UpdatedAt = m.UpdatedAt
	return nil
}

func (r *subTodoRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.SubTodoModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete sub-todo: %w", err)
	}
	return nil
}

func (r *subTodoRepository) ListByTodo(ctx context.Context, todoID uuid.UUID, page entity.PaginationParams) ([]*entity.SubTodo, int64, error) {
	query := r.db.WithContext(ctx).Model(&model.SubTodoModel{}).Where("todo_id = ?", todoID)

	var total int64
	if err := query.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count sub-todos: %w", err)
	}

	var models []model.SubTodoModel
	if err := paginate(query.Order("created_at ASC"), page).Find(&models).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list sub-todos: %w", err)
	}

	subs := make([]*entity.SubTodo, 0, len(models))
	for i := range models {
		subs = append(subs, toSubTodoEntity(&models[i]))
	}
	return subs, total, nil
}
