package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	adapterrepo "github.com/wekeepgrowing/semo-todo/internal/adapter/repository"
	"github.com/wekeepgrowing/semo-todo/internal/domain/entity"
	domainerrors "github.com/wekeepgrowing/semo-todo/internal/domain/errors"
	"github.com/wekeepgrowing/semo-todo/internal/domain/repository"
	"github.com/wekeepgrowing/semo-todo/internal/testutil"
	apperrors "github.com/wekeepgrowing/semo-todo/pkg/errors"
)

func TestCollaboration_InviteAcceptFlow(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	alice := testutil.CreateUser(t, f.db, "alice@example.com")
	bob := testutil.CreateUser(t, f.db, "bob@example.com")
	todo := testutil.CreateTodo(t, f.db, alice, "plan trip")

	ok, err := f.access.CheckAccess(ctx, f.uow, bob, todo.ID)
	require.NoError(t, err)
	assert.False(t, ok)

	invite, err := f.collaboration.Invite(ctx, f.uow, alice, todo.ID, entity.CollaboratorInvite{InviteCode: bob.InviteCode})
	require.NoError(t, err)
	assert.Equal(t, bob.InviteCode, invite.InviteCode)

	row, err := f.uow.Collaborators().Find(ctx, todo.ID, bob.ID)
	require.NoError(t, err)
	require.NotNil(t, row)
	assert.Equal(t, entity.CollaborationPending, row.Status)

	// a pending row already grants access
	ok, err = f.access.CheckAccess(ctx, f.uow, bob, todo.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	updated, err := f.collaboration.Confirm(ctx, f.uow, bob, todo.ID, entity.CollaborationConfirm{
		Decision: entity.CollaborationAccepted,
		Todo:     entity.TodoUpdate{Status: statusPtr(entity.TodoStatusCompleted)},
	})
	require.NoError(t, err)
	assert.Equal(t, entity.TodoStatusCompleted, updated.Status)

	row, err = f.uow.Collaborators().Find(ctx, todo.ID, bob.ID)
	require.NoError(t, err)
	require.NotNil(t, row)
	assert.Equal(t, entity.CollaborationAccepted, row.Status)

	stored, err := f.uow.Todos().FindByID(ctx, todo.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.TodoStatusCompleted, stored.Status)

	assert.Equal(t, []entity.CollaborationEventType{
		entity.EventCollaboratorInvited,
		entity.EventCollaboratorAccepted,
	}, f.publisher.types())
}

func TestCollaboration_InviteErrors(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	alice := testutil.CreateUser(t, f.db, "alice@example.com")
	bob := testutil.CreateUser(t, f.db, "bob@example.com")
	carol := testutil.CreateUser(t, f.db, "carol@example.com")
	todo := testutil.CreateTodo(t, f.db, alice, "shared")
	testutil.AddCollaborator(t, f.db, todo, carol, entity.CollaborationRejected)

	tests := []struct {
		name   string
		actor  *entity.User
		todoID uuid.UUID
		code   string
		want   error
	}{
		{"missing todo", alice, uuid.New(), bob.InviteCode, domainerrors.ErrTodoNotFound},
		{"not the owner", bob, todo.ID, carol.InviteCode, domainerrors.ErrPermissionDenied},
		{"unknown invite code", alice, todo.ID, "ffffffff0", domainerrors.ErrInvalidInviteCode},
		{"self invite", alice, todo.ID, alice.InviteCode, domainerrors.ErrSelfInvite},
		{"existing row of any status", alice, todo.ID, carol.InviteCode, domainerrors.ErrDuplicateCollaborator},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.collaboration.Invite(ctx, f.uow, tt.actor, tt.todoID, entity.CollaboratorInvite{InviteCode: tt.code})
			assert.ErrorIs(t, err, tt.want)
		})
	}

	t.Run("empty invite code", func(t *testing.T) {
		_, err := f.collaboration.Invite(ctx, f.uow, alice, todo.ID, entity.CollaboratorInvite{})
		require.Error(t, err)
		assert.Equal(t, apperrors.ErrInvalidArgument, apperrors.CodeOf(err))
	})

	t.Run("second invite is a duplicate", func(t *testing.T) {
		_, err := f.collaboration.Invite(ctx, f.uow, alice, todo.ID, entity.CollaboratorInvite{InviteCode: bob.InviteCode})
		require.NoError(t, err)
		_, err = f.collaboration.Invite(ctx, f.uow, alice, todo.ID, entity.CollaboratorInvite{InviteCode: bob.InviteCode})
		assert.ErrorIs(t, err, domainerrors.ErrDuplicateCollaborator)
	})

	t.Run("superuser may invite", func(t *testing.T) {
		admin := testutil.CreateUser(t, f.db, "admin@example.com", testutil.Superuser())
		dave := testutil.CreateUser(t, f.db, "dave@example.com")
		_, err := f.collaboration.Invite(ctx, f.uow, admin, todo.ID, entity.CollaboratorInvite{InviteCode: dave.InviteCode})
		assert.NoError(t, err)
	})
}

func TestCollaboration_Confirm(t *testing.T) {
	ctx := context.Background()

	t.Run("no collaborator rows", func(t *testing.T) {
		f := newFixture(t)
		alice := testutil.CreateUser(t, f.db, "alice@example.com")
		bob := testutil.CreateUser(t, f.db, "bob@example.com")
		todo := testutil.CreateTodo(t, f.db, alice, "solo")

		_, err := f.collaboration.Confirm(ctx, f.uow, bob, todo.ID, entity.CollaborationConfirm{Decision: entity.CollaborationAccepted})
		assert.ErrorIs(t, err, domainerrors.ErrCollaborationNotFound)
	})

	t.Run("rows exist but none is the actor's", func(t *testing.T) {
		f := newFixture(t)
		alice := testutil.CreateUser(t, f.db, "alice@example.com")
		bob := testutil.CreateUser(t, f.db, "bob@example.com")
		carol := testutil.CreateUser(t, f.db, "carol@example.com")
		todo := testutil.CreateTodo(t, f.db, alice, "shared")
		testutil.AddCollaborator(t, f.db, todo, bob, entity.CollaborationPending)

		_, err := f.collaboration.Confirm(ctx, f.uow, carol, todo.ID, entity.CollaborationConfirm{Decision: entity.CollaborationAccepted})
		assert.ErrorIs(t, err, domainerrors.ErrPermissionDenied)
	})

	t.Run("missing todo", func(t *testing.T) {
		f := newFixture(t)
		bob := testutil.CreateUser(t, f.db, "bob@example.com")

		_, err := f.collaboration.Confirm(ctx, f.uow, bob, uuid.New(), entity.CollaborationConfirm{Decision: entity.CollaborationAccepted})
		assert.ErrorIs(t, err, domainerrors.ErrTodoNotFound)
	})

	t.Run("unknown decision", func(t *testing.T) {
		f := newFixture(t)
		bob := testutil.CreateUser(t, f.db, "bob@example.com")

		_, err := f.collaboration.Confirm(ctx, f.uow, bob, uuid.New(), entity.CollaborationConfirm{Decision: "maybe"})
		require.Error(t, err)
		assert.Equal(t, apperrors.ErrInvalidArgument, apperrors.CodeOf(err))
	})

	t.Run("reject deletes the row and still applies fields", func(t *testing.T) {
		f := newFixture(t)
		alice := testutil.CreateUser(t, f.db, "alice@example.com")
		bob := testutil.CreateUser(t, f.db, "bob@example.com")
		todo := testutil.CreateTodo(t, f.db, alice, "shared")
		testutil.AddCollaborator(t, f.db, todo, bob, entity.CollaborationPending)

		updated, err := f.collaboration.Confirm(ctx, f.uow, bob, todo.ID, entity.CollaborationConfirm{
			Decision: entity.CollaborationRejected,
			Todo:     entity.TodoUpdate{Title: strPtr("renamed")},
		})
		require.NoError(t, err)
		assert.Equal(t, "renamed", updated.Title)

		row, err := f.uow.Collaborators().Find(ctx, todo.ID, bob.ID)
		require.NoError(t, err)
		assert.Nil(t, row)

		ok, err := f.access.CheckAccess(ctx, f.uow, bob, todo.ID)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("accepted can go back to pending", func(t *testing.T) {
		f := newFixture(t)
		alice := testutil.CreateUser(t, f.db, "alice@example.com")
		bob := testutil.CreateUser(t, f.db, "bob@example.com")
		todo := testutil.CreateTodo(t, f.db, alice, "shared")
		testutil.AddCollaborator(t, f.db, todo, bob, entity.CollaborationAccepted)

		_, err := f.collaboration.Confirm(ctx, f.uow, bob, todo.ID, entity.CollaborationConfirm{Decision: entity.CollaborationPending})
		require.NoError(t, err)

		row, err := f.uow.Collaborators().Find(ctx, todo.ID, bob.ID)
		require.NoError(t, err)
		assert.Equal(t, entity.CollaborationPending, row.Status)
	})

	t.Run("superuser confirms the only row", func(t *testing.T) {
		f := newFixture(t)
		alice := testutil.CreateUser(t, f.db, "alice@example.com")
		bob := testutil.CreateUser(t, f.db, "bob@example.com")
		admin := testutil.CreateUser(t, f.db, "admin@example.com", testutil.Superuser())
		todo := testutil.CreateTodo(t, f.db, alice, "shared")
		testutil.AddCollaborator(t, f.db, todo, bob, entity.CollaborationPending)

		_, err := f.collaboration.Confirm(ctx, f.uow, admin, todo.ID, entity.CollaborationConfirm{Decision: entity.CollaborationAccepted})
		require.NoError(t, err)

		row, err := f.uow.Collaborators().Find(ctx, todo.ID, bob.ID)
		require.NoError(t, err)
		assert.Equal(t, entity.CollaborationAccepted, row.Status)
	})

	t.Run("superuser with several rows is ambiguous", func(t *testing.T) {
		f := newFixture(t)
		alice := testutil.CreateUser(t, f.db, "alice@example.com")
		bob := testutil.CreateUser(t, f.db, "bob@example.com")
		carol := testutil.CreateUser(t, f.db, "carol@example.com")
		admin := testutil.CreateUser(t, f.db, "admin@example.com", testutil.Superuser())
		todo := testutil.CreateTodo(t, f.db, alice, "shared")
		testutil.AddCollaborator(t, f.db, todo, bob, entity.CollaborationPending)
		testutil.AddCollaborator(t, f.db, todo, carol, entity.CollaborationPending)

		_, err := f.collaboration.Confirm(ctx, f.uow, admin, todo.ID, entity.CollaborationConfirm{Decision: entity.CollaborationAccepted})
		assert.ErrorIs(t, err, domainerrors.ErrPermissionDenied)
	})
}

func TestCollaboration_ConfirmRollsBackWithTransaction(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	alice := testutil.CreateUser(t, f.db, "alice@example.com")
	bob := testutil.CreateUser(t, f.db, "bob@example.com")
	todo := testutil.CreateTodo(t, f.db, alice, "shared")
	testutil.AddCollaborator(t, f.db, todo, bob, entity.CollaborationPending)

	boom := errors.New("boom")
	tm := adapterrepo.NewTransactionManager(f.db, zap.NewNop())
	err := tm.WithinTransaction(ctx, func(ctx context.Context, uow repository.UnitOfWork) error {
		_, err := f.collaboration.Confirm(ctx, uow, bob, todo.ID, entity.CollaborationConfirm{
			Decision: entity.CollaborationRejected,
			Todo:     entity.TodoUpdate{Title: strPtr("renamed")},
		})
		require.NoError(t, err)
		return boom
	})
	assert.ErrorIs(t, err, boom)

	row, err := f.uow.Collaborators().Find(ctx, todo.ID, bob.ID)
	require.NoError(t, err)
	require.NotNil(t, row)
	assert.Equal(t, entity.CollaborationPending, row.Status)

	stored, err := f.uow.Todos().FindByID(ctx, todo.ID)
	require.NoError(t, err)
	assert.Equal(t, "shared", stored.Title)
	assert.Empty(t, f.publisher.types())
}

func TestCollaboration_RemoveAndLeave(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	alice := testutil.CreateUser(t, f.db, "alice@example.com")
	bob := testutil.CreateUser(t, f.db, "bob@example.com")
	carol := testutil.CreateUser(t, f.db, "carol@example.com")
	todo := testutil.CreateTodo(t, f.db, alice, "shared")
	testutil.AddCollaborator(t, f.db, todo, bob, entity.CollaborationAccepted)
	testutil.AddCollaborator(t, f.db, todo, carol, entity.CollaborationRejected)

	t.Run("collaborator cannot remove others", func(t *testing.T) {
		err := f.collaboration.Remove(ctx, f.uow, bob, todo.ID, carol.ID)
		assert.ErrorIs(t, err, domainerrors.ErrPermissionDenied)
	})

	t.Run("owner removes a collaborator", func(t *testing.T) {
		require.NoError(t, f.collaboration.Remove(ctx, f.uow, alice, todo.ID, bob.ID))

		ok, err := f.access.CheckAccess(ctx, f.uow, bob, todo.ID)
		require.NoError(t, err)
		assert.False(t, ok)

		err = f.collaboration.Remove(ctx, f.uow, alice, todo.ID, bob.ID)
		assert.ErrorIs(t, err, domainerrors.ErrCollaborationNotFound)
	})

	t.Run("collaborator leaves whatever the status", func(t *testing.T) {
		require.NoError(t, f.collaboration.Leave(ctx, f.uow, carol, todo.ID))

		err := f.collaboration.Leave(ctx, f.uow, carol, todo.ID)
		assert.ErrorIs(t, err, domainerrors.ErrCollaborationNotFound)
	})

	t.Run("leave on missing todo", func(t *testing.T) {
		err := f.collaboration.Leave(ctx, f.uow, carol, uuid.New())
		assert.ErrorIs(t, err, domainerrors.ErrTodoNotFound)
	})

	assert.Equal(t, []entity.CollaborationEventType{
		entity.EventCollaboratorRemoved,
		entity.EventCollaboratorLeft,
	}, f.publisher.types())
}

func TestCollaboration_ListCollaborators(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	alice := testutil.CreateUser(t, f.db, "alice@example.com")
	bob := testutil.CreateUser(t, f.db, "bob@example.com")
	carol := testutil.CreateUser(t, f.db, "carol@example.com")
	stranger := testutil.CreateUser(t, f.db, "stranger@example.com")
	admin := testutil.CreateUser(t, f.db, "admin@example.com", testutil.Superuser())
	todo := testutil.CreateTodo(t, f.db, alice, "shared")
	testutil.AddCollaborator(t, f.db, todo, bob, entity.CollaborationPending)
	testutil.AddCollaborator(t, f.db, todo, carol, entity.CollaborationAccepted)

	for _, actor := range []*entity.User{alice, bob, admin} {
		details, err := f.collaboration.ListCollaborators(ctx, f.uow, actor, todo.ID)
		require.NoError(t, err, actor.Email)
		require.Len(t, details, 2)

		byEmail := map[string]*entity.CollaboratorDetail{}
		for _, d := range details {
			byEmail[d.Email] = d
		}
		require.Contains(t, byEmail, "bob@example.com")
		assert.Equal(t, bob.ID, byEmail["bob@example.com"].UserID)
		assert.Equal(t, bob.InviteCode, byEmail["bob@example.com"].InviteCode)
		assert.Equal(t, entity.CollaborationPending, byEmail["bob@example.com"].Status)
		assert.Equal(t, entity.CollaborationAccepted, byEmail["carol@example.com"].Status)
	}

	_, err := f.collaboration.ListCollaborators(ctx, f.uow, stranger, todo.ID)
	assert.ErrorIs(t, err, domainerrors.ErrPermissionDenied)
}

func TestCollaboration_ListCollaboratedTodos(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	alice := testutil.CreateUser(t, f.db, "alice@example.com")
	bob := testutil.CreateUser(t, f.db, "bob@example.com")

	accepted := testutil.CreateTodo(t, f.db, alice, "accepted")
	pending := testutil.CreateTodo(t, f.db, alice, "pending")
	testutil.CreateTodo(t, f.db, alice, "unshared")
	testutil.AddCollaborator(t, f.db, accepted, bob, entity.CollaborationAccepted)
	testutil.AddCollaborator(t, f.db, pending, bob, entity.CollaborationPending)

	todos, total, err := f.collaboration.ListCollaboratedTodos(ctx, f.uow, bob, true, entity.PaginationParams{})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, todos, 1)
	assert.Equal(t, accepted.ID, todos[0].ID)

	todos, total, err = f.collaboration.ListCollaboratedTodos(ctx, f.uow, bob, false, entity.PaginationParams{})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, todos, 2)

	todos, total, err = f.collaboration.ListCollaboratedTodos(ctx, f.uow, bob, false, entity.PaginationParams{Page: 2, Limit: 1})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, todos, 1)

	todos, total, err = f.collaboration.ListCollaboratedTodos(ctx, f.uow, alice, false, entity.PaginationParams{})
	require.NoError(t, err)
	assert.Zero(t, total)
	assert.Empty(t, todos)
}
