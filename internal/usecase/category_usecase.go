package usecase

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/wekeepgrowing/semo-todo/internal/domain/entity"
	domainerrors "github.com/wekeepgrowing/semo-todo/internal/domain/errors"
	"github.com/wekeepgrowing/semo-todo/internal/domain/repository"
	apperrors "github.com/wekeepgrowing/semo-todo/pkg/errors"
)

// CategoryUseCase manages a user's private categories. Other users' categories
// are reported as not found.
type CategoryUseCase struct {
	validator *Validator
	limits    PageLimits
	logger    *zap.Logger
}

func NewCategoryUseCase(validator *Validator, limits PageLimits, logger *zap.Logger) *CategoryUseCase {
	return &CategoryUseCase{validator: validator, limits: limits, logger: logger}
}

func (uc *CategoryUseCase) Create(ctx context.Context, uow repository.UnitOfWork, actor *entity.User, in entity.CategoryCreate) (*entity.Category, error) {
	if err := uc.validator.Struct(in); err != nil {
		return nil, err
	}

	category := entity.NewCategory(actor.ID, in)
	if err := uow.Categories().Create(ctx, category); err != nil {
		apperrors.LogError(uc.logger, err, "failed to create category", zap.String("owner_id", actor.ID.String()))
		return nil, apperrors.Wrap(err, "failed to create category")
	}
	return category, nil
}

func (uc *CategoryUseCase) Get(ctx context.Context, uow repository.UnitOfWork, actor *entity.User, id uuid.UUID) (*entity.Category, error) {
	category, err := uow.Categories().FindByID(ctx, actor.ID, id)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to load category")
	}
	if category == nil {
		return nil, domainerrors.ErrCategoryNotFound
	}
	return category, nil
}

func (uc *CategoryUseCase) Update(ctx context.Context, uow repository.UnitOfWork, actor *entity.User, id uuid.UUID, in entity.CategoryUpdate) (*entity.Category, error) {
	if err := uc.validator.Struct(in); err != nil {
		return nil, err
	}

	category, err := uc.Get(ctx, uow, actor, id)
	if err != nil {
		return nil, err
	}

	in.Apply(category)
	if err := uow.Categories().Update(ctx, category); err != nil {
		return nil, apperrors.Wrap(err, "failed to update category")
	}
	return category, nil
}

func (uc *CategoryUseCase) Delete(ctx context.Context, uow repository.UnitOfWork, actor *entity.User, id uuid.UUID) error {
	category, err := uc.Get(ctx, uow, actor, id)
	if err != nil {
		return err
	}
	if err := uow.Categories().Delete(ctx, category.ID); err != nil {
		return apperrors.Wrap(err, "failed to delete category")
	}
	return nil
}

func (uc *CategoryUseCase) List(ctx context.Context, uow repository.UnitOfWork, actor *entity.User, page entity.PaginationParams) ([]*entity.Category, int64, error) {
	page = uc.limits.Apply(page)
	categories, total, err := uow.Categories().ListByOwner(ctx, actor.ID, page)
	if err != nil {
		return nil, 0, apperrors.Wrap(err, "failed to list categories")
	}
	return categories, total, nil
}

// DeleteAll removes every category of the actor and returns how many were deleted.
func (uc *CategoryUseCase) DeleteAll(ctx context.Context, uow repository.UnitOfWork, actor *entity.User) (int64, error) {
	n, err := uow.Categories().DeleteByOwner(ctx, actor.ID)
	if err != nil {
		return 0, apperrors.Wrap(err, "failed to delete categories")
	}
	return n, nil
}
