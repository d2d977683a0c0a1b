package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/wekeepgrowing/semo-todo/internal/domain/entity"
)

// SubTodoRepository stores sub-todos scoped to their parent todo.
type SubTodoRepository interface {
	Create(ctx context.Context, sub *entity.SubTodo) error
	// FindByID returns (nil, nil) when the sub-todo does not exist under todoID.
	FindByID(ctx context.Context, todoID, id uuid.UUID) (*entity.SubTodo, error)
	Update(ctx context.Context, sub *entity.SubTodo) error
	Delete(ctx context.Context, id uuid.UUID) error
	ListByTodo(ctx context.Context, todoID uuid.UUID, page entity.PaginationParams) ([]*entity.SubTodo, int64, error)
}
