package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/wekeepgrowing/semo-todo/internal/domain/entity"
)

// CategoryRepository stores categories; every query is scoped by owner.
type CategoryRepository interface {
	Create(ctx context.Context, category *entity.Category) error
	// FindByID returns (nil, nil) when the owner has no such category.
	FindByID(ctx context.Context, ownerID, id uuid.UUID) (*entity.Category, error)
	Update(ctx context.Context, category *entity.Category) error
	Delete(ctx context.Context, id uuid.UUID) error
	ListByOwner(ctx context.Context, ownerID uuid.UUID, page entity.PaginationParams) ([]*entity.Category, int64, error)
	DeleteByOwner(ctx context.Context, ownerID uuid.UUID) (int64, error)
}
