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

// AccessUseCase decides what an actor may do with a todo.
//
// Any relationship (ownership or a collaborator row of any status) grants
// read and write. Managing a todo (delete, invite, remove collaborators,
// sub-todos) requires ownership or superuser.
type AccessUseCase struct {
	logger *zap.Logger
}

func NewAccessUseCase(logger *zap.Logger) *AccessUseCase {
	return &AccessUseCase{logger: logger}
}

// CheckAccess reports whether actor owns the todo or has a collaborator row for it.
// It fails with ErrTodoNotFound when the todo does not exist.
func (a *AccessUseCase) CheckAccess(ctx context.Context, uow repository.UnitOfWork, actor *entity.User, todoID uuid.UUID) (bool, error) {
	todo, err := a.loadTodo(ctx, uow, todoID)
	if err != nil {
		return false, err
	}
	return a.related(ctx, uow, actor, todo)
}

// Readable returns the todo when actor may read it.
func (a *AccessUseCase) Readable(ctx context.Context, uow repository.UnitOfWork, actor *entity.User, todoID uuid.UUID) (*entity.Todo, error) {
	return a.Writable(ctx, uow, actor, todoID)
}

// Writable returns the todo when actor may change its fields.
func (a *AccessUseCase) Writable(ctx context.Context, uow repository.UnitOfWork, actor *entity.User, todoID uuid.UUID) (*entity.Todo, error) {
	todo, err := a.loadTodo(ctx, uow, todoID)
	if err != nil {
		return nil, err
	}
	if actor.IsSuperuser {
		return todo, nil
	}
	ok, err := a.related(ctx, uow, actor, todo)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domainerrors.ErrPermissionDenied
	}
	return todo, nil
}

// Manageable returns the todo when actor owns it or is a superuser.
func (a *AccessUseCase) Manageable(ctx context.Context, uow repository.UnitOfWork, actor *entity.User, todoID uuid.UUID) (*entity.Todo, error) {
	todo, err := a.loadTodo(ctx, uow, todoID)
	if err != nil {
		return nil, err
	}
	if !actor.Owns(todo) && !actor.IsSuperuser {
		return nil, domainerrors.ErrPermissionDenied
	}
	return todo, nil
}

func (a *AccessUseCase) loadTodo(ctx context.Context, uow repository.UnitOfWork, todoID uuid.UUID) (*entity.Todo, error) {
	todo, err := uow.Todos().FindByID(ctx, todoID)
	if err != nil {
		apperrors.LogError(a.logger, err, "failed to load todo", zap.String("todo_id", todoID.String()))
		return nil, apperrors.Wrap(err, "failed to load todo")
	}
	if todo == nil {
		return nil, domainerrors.ErrTodoNotFound
	}
	return todo, nil
}

func (a *AccessUseCase) related(ctx context.Context, uow repository.UnitOfWork, actor *entity.User, todo *entity.Todo) (bool, error) {
	if actor.Owns(todo) {
		return true, nil
	}
	row, err := uow.Collaborators().Find(ctx, todo.ID, actor.ID)
	if err != nil {
		apperrors.LogError(a.logger, err, "failed to load collaborator",
			zap.String("todo_id", todo.ID.String()),
			zap.String("user_id", actor.ID.String()))
		return false, apperrors.Wrap(err, "failed to check access")
	}
	return row != nil, nil
}
