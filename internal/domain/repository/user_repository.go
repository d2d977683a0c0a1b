package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/wekeepgrowing/semo-todo/internal/domain/entity"
)

// UserRepository stores accounts. Find methods return (nil, nil) when no row matches.
type UserRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	FindByInviteCode(ctx context.Context, inviteCode string) (*entity.User, error)

	// Create inserts a user. ErrDuplicateKey means the email or invite code is taken.
	Create(ctx context.Context, user *entity.User) error
	Update(ctx context.Context, user *entity.User) error
}
