package usecase

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/wekeepgrowing/semo-todo/internal/domain/entity"
	"github.com/wekeepgrowing/semo-todo/internal/domain/repository"
	apperrors "github.com/wekeepgrowing/semo-todo/pkg/errors"
)

// TodoUseCase handles todo lifecycle and listing
type TodoUseCase struct {
	access    *AccessUseCase
	validator *Validator
	publisher EventPublisher
	limits    PageLimits
	logger    *zap.Logger
}

// NewTodoUseCase creates a new todo use case
func NewTodoUseCase(access *AccessUseCase, validator *Validator, publisher EventPublisher, limits PageLimits, logger *zap.Logger) *TodoUseCase {
	return &TodoUseCase{
		access:    access,
		validator: validator,
		publisher: publisher,
		limits:    limits,
		logger:    logger,
	}
}

// Create stores a new todo owned by actor
func (uc *TodoUseCase) Create(ctx context.Context, uow repository.UnitOfWork, actor *entity.User, in entity.TodoCreate) (*entity.Todo, error) {
	if err := uc.validator.Struct(in); err != nil {
		return nil, err
	}

	todo := entity.NewTodo(actor.ID, in)
	if err := uow.Todos().Create(ctx, todo); err != nil {
		apperrors.LogError(uc.logger, err, "failed to create todo", zap.String("owner_id", actor.ID.String()))
		return nil, apperrors.Wrap(err, "failed to create todo")
	}
	return todo, nil
}

// Get returns a todo the actor owns or collaborates on
func (uc *TodoUseCase) Get(ctx context.Context, uow repository.UnitOfWork, actor *entity.User, id uuid.UUID) (*entity.Todo, error) {
	return uc.access.Readable(ctx, uow, actor, id)
}

// Update applies the field update set. Collaborators of any status may edit.
func (uc *TodoUseCase) Update(ctx context.Context, uow repository.UnitOfWork, actor *entity.User, id uuid.UUID, in entity.TodoUpdate) (*entity.Todo, error) {
	if err := uc.validator.Struct(in); err != nil {
		return nil, err
	}

	todo, err := uc.access.Writable(ctx, uow, actor, id)
	if err != nil {
		return nil, err
	}
	if in.IsEmpty() {
		return todo, nil
	}

	in.Apply(todo)
	if err := uow.Todos().Update(ctx, todo); err != nil {
		apperrors.LogError(uc.logger, err, "failed to update todo", zap.String("todo_id", id.String()))
		return nil, apperrors.Wrap(err, "failed to update todo")
	}
	return todo, nil
}

// Delete removes the todo together with its collaborator rows and sub-todos
func (uc *TodoUseCase) Delete(ctx context.Context, uow repository.UnitOfWork, actor *entity.User, id uuid.UUID) error {
	todo, err := uc.access.Manageable(ctx, uow, actor, id)
	if err != nil {
		return err
	}

	collaborators, err := uow.Collaborators().ListByTodo(ctx, todo.ID)
	if err != nil {
		return apperrors.Wrap(err, "failed to load collaborators")
	}
	if _, err := uow.Collaborators().DeleteByTodo(ctx, todo.ID); err != nil {
		apperrors.LogError(uc.logger, err, "failed to delete collaborators", zap.String("todo_id", id.String()))
		return apperrors.Wrap(err, "failed to delete collaborators")
	}
	if err := uow.Todos().Delete(ctx, todo.ID); err != nil {
		apperrors.LogError(uc.logger, err, "failed to delete todo", zap.String("todo_id", id.String()))
		return apperrors.Wrap(err, "failed to delete todo")
	}

	if len(collaborators) > 0 {
		ids := make([]uuid.UUID, 0, len(collaborators))
		for _, c := range collaborators {
			ids = append(ids, c.UserID)
		}
		publishAfterCommit(uow, uc.publisher, entity.CollaborationEvent{
			Type:       entity.EventTodoDeleted,
			TodoID:     todo.ID,
			ActorID:    actor.ID,
			Recipients: recipients(ids...),
		})
	}
	return nil
}

// List returns the actor's own todos newest first. Superusers see every todo
// in storage order.
func (uc *TodoUseCase) List(ctx context.Context, uow repository.UnitOfWork, actor *entity.User, page entity.PaginationParams, filter entity.TodoFilter) ([]*entity.Todo, int64, error) {
	page = uc.limits.Apply(page)

	var (
		todos []*entity.Todo
		total int64
		err   error
	)
	if actor.IsSuperuser {
		todos, total, err = uow.Todos().ListAll(ctx, filter, page)
	} else {
		todos, total, err = uow.Todos().ListByOwner(ctx, actor.ID, filter, page)
	}
	if err != nil {
		return nil, 0, apperrors.Wrap(err, "failed to list todos")
	}
	return todos, total, nil
}
