package usecase

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/wekeepgrowing/semo-todo/internal/domain/entity"
	domainerrors "github.com/wekeepgrowing/semo-todo/internal/domain/errors"
	"github.com/wekeepgrowing/semo-todo/internal/domain/repository"
	apperrors "github.com/wekeepgrowing/semo-todo/pkg/errors"
)

// CollaborationUseCase runs the invite, confirm, remove and leave workflow.
type CollaborationUseCase struct {
	access    *AccessUseCase
	validator *Validator
	publisher EventPublisher
	limits    PageLimits
	logger    *zap.Logger
}

func NewCollaborationUseCase(access *AccessUseCase, validator *Validator, publisher EventPublisher, limits PageLimits, logger *zap.Logger) *CollaborationUseCase {
	return &CollaborationUseCase{
		access:    access,
		validator: validator,
		publisher: publisher,
		limits:    limits,
		logger:    logger,
	}
}

// Invite creates a pending collaborator row for the user holding the invite code.
// Only the echoed invite code is returned.
func (uc *CollaborationUseCase) Invite(ctx context.Context, uow repository.UnitOfWork, actor *entity.User, todoID uuid.UUID, in entity.CollaboratorInvite) (*entity.CollaboratorInvite, error) {
	todo, err := uc.access.Manageable(ctx, uow, actor, todoID)
	if err != nil {
		return nil, err
	}
	if err := uc.validator.Struct(in); err != nil {
		return nil, err
	}

	target, err := uow.Users().FindByInviteCode(ctx, in.InviteCode)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to resolve invite code")
	}
	if target == nil {
		return nil, domainerrors.ErrInvalidInviteCode
	}
	if target.SameInviteCode(actor) {
		return nil, domainerrors.ErrSelfInvite
	}

	existing, err := uow.Collaborators().Find(ctx, todo.ID, target.ID)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to check collaborator")
	}
	if existing != nil {
		return nil, domainerrors.ErrDuplicateCollaborator
	}

	row := &entity.Collaborator{
		ID:     uuid.New(),
		TodoID: todo.ID,
		UserID: target.ID,
		Status: entity.CollaborationPending,
	}
	if err := uow.Collaborators().Create(ctx, row); err != nil {
		if errors.Is(err, repository.ErrDuplicateKey) {
			return nil, domainerrors.ErrDuplicateCollaborator
		}
		apperrors.LogError(uc.logger, err, "failed to create collaborator",
			zap.String("todo_id", todo.ID.String()),
			zap.String("user_id", target.ID.String()))
		return nil, apperrors.Wrap(err, "failed to create collaborator")
	}

	publishAfterCommit(uow, uc.publisher, entity.CollaborationEvent{
		Type:       entity.EventCollaboratorInvited,
		TodoID:     todo.ID,
		UserID:     target.ID,
		ActorID:    actor.ID,
		Recipients: recipients(target.ID),
	})

	return &entity.CollaboratorInvite{InviteCode: target.InviteCode}, nil
}

// Confirm records the invitee's decision and applies the todo field updates in
// the same unit of work. A rejection deletes the collaborator row.
//
// The row is the actor's own. A superuser without a row may act on the
// todo's only collaborator row; with several rows the target is ambiguous.
func (uc *CollaborationUseCase) Confirm(ctx context.Context, uow repository.UnitOfWork, actor *entity.User, todoID uuid.UUID, in entity.CollaborationConfirm) (*entity.Todo, error) {
	if err := uc.validator.Struct(in); err != nil {
		return nil, err
	}

	todo, err := uc.access.loadTodo(ctx, uow, todoID)
	if err != nil {
		return nil, err
	}

	row, err := uc.resolveConfirmRow(ctx, uow, actor, todo.ID)
	if err != nil {
		return nil, err
	}

	if in.Decision == entity.CollaborationRejected {
		err = uow.Collaborators().Delete(ctx, row.ID)
	} else {
		err = uow.Collaborators().UpdateStatus(ctx, row.ID, in.Decision)
	}
	if err != nil {
		apperrors.LogError(uc.logger, err, "failed to record collaboration decision",
			zap.String("todo_id", todo.ID.String()),
			zap.String("decision", string(in.Decision)))
		return nil, apperrors.Wrap(err, "failed to record decision")
	}

	if !in.Todo.IsEmpty() {
		in.Todo.Apply(todo)
		if err := uow.Todos().Update(ctx, todo); err != nil {
			return nil, apperrors.Wrap(err, "failed to update todo")
		}
	}

	publishAfterCommit(uow, uc.publisher, entity.CollaborationEvent{
		Type:       entity.EventForDecision(in.Decision),
		TodoID:     todo.ID,
		UserID:     row.UserID,
		ActorID:    actor.ID,
		Recipients: recipients(todo.OwnerID, row.UserID),
	})

	return todo, nil
}

func (uc *CollaborationUseCase) resolveConfirmRow(ctx context.Context, uow repository.UnitOfWork, actor *entity.User, todoID uuid.UUID) (*entity.Collaborator, error) {
	row, err := uow.Collaborators().Find(ctx, todoID, actor.ID)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to load collaborator")
	}
	if row != nil {
		return row, nil
	}

	rows, err := uow.Collaborators().ListByTodo(ctx, todoID)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to load collaborators")
	}
	switch {
	case len(rows) == 0:
		return nil, domainerrors.ErrCollaborationNotFound
	case actor.IsSuperuser && len(rows) == 1:
		return rows[0], nil
	default:
		return nil, domainerrors.ErrPermissionDenied
	}
}

// Remove deletes another user's collaborator row. Only the owner or a superuser may do this.
func (uc *CollaborationUseCase) Remove(ctx context.Context, uow repository.UnitOfWork, actor *entity.User, todoID, userID uuid.UUID) error {
	todo, err := uc.access.Manageable(ctx, uow, actor, todoID)
	if err != nil {
		return err
	}

	row, err := uow.Collaborators().Find(ctx, todo.ID, userID)
	if err != nil {
		return apperrors.Wrap(err, "failed to load collaborator")
	}
	if row == nil {
		return domainerrors.ErrCollaborationNotFound
	}

	if err := uow.Collaborators().Delete(ctx, row.ID); err != nil {
		return apperrors.Wrap(err, "failed to remove collaborator")
	}

	publishAfterCommit(uow, uc.publisher, entity.CollaborationEvent{
		Type:       entity.EventCollaboratorRemoved,
		TodoID:     todo.ID,
		UserID:     userID,
		ActorID:    actor.ID,
		Recipients: recipients(userID),
	})
	return nil
}

// Leave deletes the actor's own collaborator row, whatever its status.
func (uc *CollaborationUseCase) Leave(ctx context.Context, uow repository.UnitOfWork, actor *entity.User, todoID uuid.UUID) error {
	todo, err := uc.access.loadTodo(ctx, uow, todoID)
	if err != nil {
		return err
	}

	row, err := uow.Collaborators().Find(ctx, todo.ID, actor.ID)
	if err != nil {
		return apperrors.Wrap(err, "failed to load collaborator")
	}
	if row == nil {
		return domainerrors.ErrCollaborationNotFound
	}

	if err := uow.Collaborators().Delete(ctx, row.ID); err != nil {
		return apperrors.Wrap(err, "failed to leave collaboration")
	}

	publishAfterCommit(uow, uc.publisher, entity.CollaborationEvent{
		Type:       entity.EventCollaboratorLeft,
		TodoID:     todo.ID,
		UserID:     actor.ID,
		ActorID:    actor.ID,
		Recipients: recipients(todo.OwnerID),
	})
	return nil
}

// ListCollaborators returns every collaborator of the todo, any status, with
// their public user fields.
func (uc *CollaborationUseCase) ListCollaborators(ctx context.Context, uow repository.UnitOfWork, actor *entity.User, todoID uuid.UUID) ([]*entity.CollaboratorDetail, error) {
	todo, err := uc.access.Readable(ctx, uow, actor, todoID)
	if err != nil {
		return nil, err
	}

	details, err := uow.Collaborators().ListDetailsByTodo(ctx, todo.ID)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list collaborators")
	}
	return details, nil
}

// ListCollaboratedTodos returns todos the actor was invited to, newest first.
// With onlyAccepted the list is limited to accepted invitations; otherwise
// every status is included.
func (uc *CollaborationUseCase) ListCollaboratedTodos(ctx context.Context, uow repository.UnitOfWork, actor *entity.User, onlyAccepted bool, page entity.PaginationParams) ([]*entity.Todo, int64, error) {
	page = uc.limits.Apply(page)

	var statuses []entity.CollaborationStatus
	if onlyAccepted {
		statuses = []entity.CollaborationStatus{entity.CollaborationAccepted}
	}

	todos, total, err := uow.Todos().ListCollaborated(ctx, actor.ID, statuses, page)
	if err != nil {
		return nil, 0, apperrors.Wrap(err, "failed to list collaborated todos")
	}
	return todos, total, nil
}
