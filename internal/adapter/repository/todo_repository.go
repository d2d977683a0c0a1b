package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/wekeepgrowing/semo-todo/internal/domain/entity"
	domainrepo "github.com/wekeepgrowing/semo-todo/internal/domain/repository"
	"github.com/wekeepgrowing/semo-todo/internal/infrastructure/db/model"
)

type todoRepository struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewTodoRepository creates a gorm backed todo repository
func NewTodoRepository(db *gorm.DB, logger *zap.Logger) domainrepo.TodoRepository {
	return &todoRepository{db: db, logger: logger}
}

func (r *todoRepository) Create(ctx context.Context, todo *entity.Todo) error {
	if todo.ID == uuid.Nil {
		todo.ID = uuid.New()
	}
	m := toTodoModel(todo)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return fmt.Errorf("failed to create todo: %w", translateWriteError(err))
	}
	todo.CreatedAt, todo.UpdatedAt = m.CreatedAt, m.UpdatedAt
	return nil
}

func (r *todoRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Todo, error) {
	var m model.TodoModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find todo: %w", err)
	}
	return toTodoEntity(&m), nil
}

func (r *todoRepository) Update(ctx context.Context, todo *entity.Todo) error {
	m := toTodoModel(todo)
	err := r.db.WithContext(ctx).Model(m).
		Select("title", "description", "status", "updated_at").
		Updates(m).Error
	if err != nil {
		return fmt.Errorf("failed to update todo: %w", err)
	}
	todo.UpdatedAt = m.UpdatedAt
	return nil
}

func (r *todoRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.TodoModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete todo: %w", err)
	}
	return nil
}

func (r *todoRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID, filter entity.TodoFilter, page entity.PaginationParams) ([]*entity.Todo, int64, error) {
	query := r.db.WithContext(ctx).Model(&model.TodoModel{}).Where("owner_id = ?", ownerID)
	return r.list(query, filter, page, "created_at DESC", zap.String("owner_id", ownerID.String()))
}

func (r *todoRepository) ListAll(ctx context.Context, filter entity.TodoFilter, page entity.PaginationParams) ([]*entity.Todo, int64, error) {
	return r.list(r.db.WithContext(ctx).Model(&model.TodoModel{}), filter, page, "")
}

func (r *todoRepository) ListCollaborated(ctx context.Context, userID uuid.UUID, statuses []entity.CollaborationStatus, page entity.PaginationParams) ([]*entity.Todo, int64, error) {
	query := r.db.WithContext(ctx).Model(&model.TodoModel{}).
		Joins("JOIN collaborators ON collaborators.todo_id = todos.id").
		Where("collaborators.user_id = ?", userID)
	if len(statuses) > 0 {
		values := make([]string, 0, len(statuses))
		for _, s := range statuses {
			values = append(values, string(s))
		}
		query = query.Where("collaborators.status IN ?", values)
	}
	return r.list(query, entity.TodoFilter{}, page, "todos.created_at DESC", zap.String("user_id", userID.String()))
}

// list counts the filtered rows before applying order and pagination.
func (r *todoRepository) list(query *gorm.DB, filter entity.TodoFilter, page entity.PaginationParams, order string, fields ...zap.Field) ([]*entity.Todo, int64, error) {
	query = containsAny(query, filter.Search, filter.CaseSensitive, "todos.title", "todos.description", "todos.status")

	var total int64
	if err := query.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		r.logger.Error("failed to count todos", append(fields, zap.Error(err))...)
		return nil, 0, fmt.Errorf("failed to count todos: %w", err)
	}

	if order != "" {
		query = query.Order(order)
	}

	var models []model.TodoModel
	if err := paginate(query, page).Select("todos.*").Find(&models).Error; err != nil {
		r.logger.Error("failed to list todos", append(fields, zap.Error(err))...)
		return nil, 0, fmt.Errorf("failed to list todos: %w", err)
	}

	return toTodoEntities(models), total, nil
}
