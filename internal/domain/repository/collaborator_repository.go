package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/wekeepgrowing/semo-todo/internal/domain/entity"
)

// CollaboratorRepository stores invitation rows, unique per (todo, user).
type CollaboratorRepository interface {
	// Create inserts a row. ErrDuplicateKey means the pair already exists.
	Create(ctx context.Context, collaborator *entity.Collaborator) error
	// Find returns (nil, nil) when the user has no row for the todo.
	Find(ctx context.Context, todoID, userID uuid.UUID) (*entity.Collaborator, error)
	ListByTodo(ctx context.Context, todoID uuid.UUID) ([]*entity.Collaborator, error)
	// ListDetailsByTodo joins every row of the todo with its user's public fields.
	ListDetailsByTodo(ctx context.Context, todoID uuid.UUID) ([]*entity.CollaboratorDetail, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.CollaborationStatus) error
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteByTodo(ctx context.Context, todoID uuid.UUID) (int64, error)
}
