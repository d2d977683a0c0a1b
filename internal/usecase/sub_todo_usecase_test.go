package usecase_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wekeepgrowing/semo-todo/internal/domain/entity"
	domainerrors "github.com/wekeepgrowing/semo-todo/internal/domain/errors"
	"github.com/wekeepgrowing/semo-todo/internal/testutil"
	"github.com/wekeepgrowing/semo-todo/internal/usecase"
)

func TestSubTodoUseCase_CreateAccess(t *testing.T) {
	ctx := context.Background()

	t.Run("any user may add to an existing todo by default", func(t *testing.T) {
		f := newFixture(t)
		alice := testutil.CreateUser(t, f.db, "alice@example.com")
		stranger := testutil.CreateUser(t, f.db, "stranger@example.com")
		todo := testutil.CreateTodo(t, f.db, alice, "parent")

		sub, err := f.subTodos.Create(ctx, f.uow, stranger, todo.ID, entity.SubTodoCreate{Title: "sneaky"})
		require.NoError(t, err)
		assert.Equal(t, todo.ID, sub.TodoID)
		assert.Equal(t, entity.TodoStatusInProgress, sub.Status)

		_, err = f.subTodos.Create(ctx, f.uow, stranger, uuid.New(), entity.SubTodoCreate{Title: "orphan"})
		assert.ErrorIs(t, err, domainerrors.ErrTodoNotFound)
	})

	t.Run("enforced creation requires ownership", func(t *testing.T) {
		f := newFixture(t, usecase.SubTodoOptions{EnforceCreateAccess: true})
		alice := testutil.CreateUser(t, f.db, "alice@example.com")
		bob := testutil.CreateUser(t, f.db, "bob@example.com")
		todo := testutil.CreateTodo(t, f.db, alice, "parent")
		testutil.AddCollaborator(t, f.db, todo, bob, entity.CollaborationAccepted)

		_, err := f.subTodos.Create(ctx, f.uow, bob, todo.ID, entity.SubTodoCreate{Title: "denied"})
		assert.ErrorIs(t, err, domainerrors.ErrPermissionDenied)

		_, err = f.subTodos.Create(ctx, f.uow, alice, todo.ID, entity.SubTodoCreate{Title: "allowed"})
		assert.NoError(t, err)
	})
}

func TestSubTodoUseCase_ManageableOnly(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	alice := testutil.CreateUser(t, f.db, "alice@example.com")
	bob := testutil.CreateUser(t, f.db, "bob@example.com")
	admin := testutil.CreateUser(t, f.db, "admin@example.com", testutil.Superuser())
	todo := testutil.CreateTodo(t, f.db, alice, "parent")
	other := testutil.CreateTodo(t, f.db, alice, "other")
	testutil.AddCollaborator(t, f.db, todo, bob, entity.CollaborationAccepted)

	sub, err := f.subTodos.Create(ctx, f.uow, alice, todo.ID, entity.SubTodoCreate{Title: "step 1"})
	require.NoError(t, err)
	_, err = f.subTodos.Create(ctx, f.uow, alice, todo.ID, entity.SubTodoCreate{Title: "step 2"})
	require.NoError(t, err)

	t.Run("collaborators are denied", func(t *testing.T) {
		_, err := f.subTodos.Get(ctx, f.uow, bob, todo.ID, sub.ID)
		assert.ErrorIs(t, err, domainerrors.ErrPermissionDenied)

		_, _, err = f.subTodos.List(ctx, f.uow, bob, todo.ID, entity.PaginationParams{})
		assert.ErrorIs(t, err, domainerrors.ErrPermissionDenied)

		_, err = f.subTodos.Update(ctx, f.uow, bob, todo.ID, sub.ID, entity.SubTodoUpdate{Title: strPtr("x")})
		assert.ErrorIs(t, err, domainerrors.ErrPermissionDenied)

		err = f.subTodos.Delete(ctx, f.uow, bob, todo.ID, sub.ID)
		assert.ErrorIs(t, err, domainerrors.ErrPermissionDenied)
	})

	t.Run("owner lists with total", func(t *testing.T) {
		subs, total, err := f.subTodos.List(ctx, f.uow, alice, todo.ID, entity.PaginationParams{Limit: 1})
		require.NoError(t, err)
		assert.Equal(t, int64(2), total)
		assert.Len(t, subs, 1)
	})

	t.Run("superuser updates", func(t *testing.T) {
		updated, err := f.subTodos.Update(ctx, f.uow, admin, todo.ID, sub.ID, entity.SubTodoUpdate{
			Status: statusPtr(entity.TodoStatusCompleted),
		})
		require.NoError(t, err)
		assert.Equal(t, entity.TodoStatusCompleted, updated.Status)
		assert.Equal(t, "step 1", updated.Title)
	})

	t.Run("sub-todo of another todo is not found", func(t *testing.T) {
		_, err := f.subTodos.Get(ctx, f.uow, alice, other.ID, sub.ID)
		assert.ErrorIs(t, err, domainerrors.ErrSubTodoNotFound)
	})

	t.Run("owner deletes", func(t *testing.T) {
		require.NoError(t, f.subTodos.Delete(ctx, f.uow, alice, todo.ID, sub.ID))

		_, err := f.subTodos.Get(ctx, f.uow, alice, todo.ID, sub.ID)
		assert.ErrorIs(t, err, domainerrors.ErrSubTodoNotFound)
	})
}
