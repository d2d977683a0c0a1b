package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/wekeepgrowing/semo-todo/internal/domain/entity"
)

// TodoRepository stores todos. FindByID returns (nil, nil) when no row matches.
type TodoRepository interface {
	Create(ctx context.Context, todo *entity.Todo) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Todo, error)
	Update(ctx context.Context, todo *entity.Todo) error
	// Delete removes the todo; its sub-todos go with it through the foreign key.
	Delete(ctx context.Context, id uuid.UUID) error

	// ListByOwner returns the owner's todos, newest first, and the filtered total.
	ListByOwner(ctx context.Context, ownerID uuid.UUID, filter entity.TodoFilter, page entity.PaginationParams) ([]*entity.Todo, int64, error)
	// ListAll returns every todo in storage order.
	ListAll(ctx context.Context, filter entity.TodoFilter, page entity.PaginationParams) ([]*entity.Todo, int64, error)
	// ListCollaborated returns todos the user has a collaborator row for,
	// restricted to the given statuses when any are passed.
	ListCollaborated(ctx context.Context, userID uuid.UUID, statuses []entity.CollaborationStatus, page entity.PaginationParams) ([]*entity.Todo, int64, error)
}
