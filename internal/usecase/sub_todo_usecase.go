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

// SubTodoOptions tunes sub-todo access rules.
type SubTodoOptions struct {
	// EnforceCreateAccess limits creation to the parent's owner or a superuser.
	// When false any authenticated user may add a sub-todo to an existing todo.
	EnforceCreateAccess bool
}

// SubTodoUseCase manages sub-todos. Reads and writes require managing the
// parent todo; collaborators have no sub-todo access.
type SubTodoUseCase struct {
	access    *AccessUseCase
	validator *Validator
	limits    PageLimits
	opts      SubTodoOptions
	logger    *zap.Logger
}

func NewSubTodoUseCase(access *AccessUseCase, validator *Validator, limits PageLimits, opts SubTodoOptions, logger *zap.Logger) *SubTodoUseCase {
	return &SubTodoUseCase{
		access:    access,
		validator: validator,
		limits:    limits,
		opts:      opts,
		logger:    logger,
	}
}

func (uc *SubTodoUseCase) Create(ctx context.Context, uow repository.UnitOfWork, actor *entity.User, todoID uuid.UUID, in entity.SubTodoCreate) (*entity.SubTodo, error) {
	if err := uc.validator.Struct(in); err != nil {
		return nil, err
	}

	var (
		todo *entity.Todo
		err  error
	)
	if uc.opts.EnforceCreateAccess {
		todo, err = uc.access.Manageable(ctx, uow, actor, todoID)
	} else {
		todo, err = uc.access.loadTodo(ctx, uow, todoID)
	}
	if err != nil {
		return nil, err
	}

	sub := entity.NewSubTodo(todo.ID, in)
	if err := uow.SubTodos().Create(ctx, sub); err != nil {
		apperrors.LogError(uc.logger, err, "failed to create sub-todo", zap.String("todo_id", todo.ID.String()))
		return nil, apperrors.Wrap(err, "failed to create sub-todo")
	}
	return sub, nil
}

func (uc *SubTodoUseCase) Get(ctx context.Context, uow repository.UnitOfWork, actor *entity.User, todoID, id uuid.UUID) (*entity.SubTodo, error) {
	if _, err := uc.access.Manageable(ctx, uow, actor, todoID); err != nil {
		return nil, err
	}
	return uc.load(ctx, uow, todoID, id)
}

func (uc *SubTodoUseCase) Update(ctx context.Context, uow repository.UnitOfWork, actor *entity.User, todoID, id uuid.UUID, in entity.SubTodoUpdate) (*entity.SubTodo, error) {
	if err := uc.validator.Struct(in); err != nil {
		return nil, err
	}
	if _, err := uc.access.Manageable(ctx, uow, actor, todoID); err != nil {
		return nil, err
	}

	sub, err := uc.load(ctx, uow, todoID, id)
	if err != nil {
		return nil, err
	}

	in.Apply(sub)
	if err := uow.SubTodos().Update(ctx, sub); err != nil {
		return nil, apperrors.Wrap(err, "failed to update sub-todo")
	}
	return sub, nil
}

func (uc *SubTodoUseCase) Delete(ctx context.Context, uow repository.UnitOfWork, actor *entity.User, todoID, id uuid.UUID) error {
	if _, err := uc.access.Manageable(ctx, uow, actor, todoID); err != nil {
		return err
	}

	sub, err := uc.load(ctx, uow, todoID, id)
	if err != nil {
		return err
	}
	if err := uow.SubTodos().Delete(ctx, sub.ID); err != nil {
		return apperrors.Wrap(err, "failed to delete sub-todo")
	}
	return nil
}

func (uc *SubTodoUseCase) List(ctx context.Context, uow repository.UnitOfWork, actor *entity.User, todoID uuid.UUID, page entity.PaginationParams) ([]*entity.SubTodo, int64, error) {
	if _, err := uc.access.Manageable(ctx, uow, actor, todoID); err != nil {
		return nil, 0, err
	}

	page = uc.limits.Apply(page)
	subs, total, err := uow.SubTodos().ListByTodo(ctx, todoID, page)
	if err != nil {
		return nil, 0, apperrors.Wrap(err, "failed to list sub-todos")
	}
	return subs, total, nil
}

func (uc *SubTodoUseCase) load(ctx context.Context, uow repository.UnitOfWork, todoID, id uuid.UUID) (*entity.SubTodo, error) {
	sub, err := uow.SubTodos().FindByID(ctx, todoID, id)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to load sub-todo")
	}
	if sub == nil {
		return nil, domainerrors.ErrSubTodoNotFound
	}
	return sub, nil
}
