package repository_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wekeepgrowing/semo-todo/internal/domain/entity"
	"github.com/wekeepgrowing/semo-todo/internal/domain/repository"
	"github.com/wekeepgrowing/semo-todo/internal/testutil"
)

func TestCollaboratorRepository(t *testing.T) {
	ctx := context.Background()
	gdb := testutil.NewTestDB(t)
	uow := testutil.NewUnitOfWork(gdb)

	owner := testutil.CreateUser(t, gdb, "owner@example.com")
	bob := testutil.CreateUser(t, gdb, "bob@example.com")
	carol := testutil.CreateUser(t, gdb, "carol@example.com")
	todo := testutil.CreateTodo(t, gdb, owner, "shared")

	bobRow := testutil.AddCollaborator(t, gdb, todo, bob, entity.CollaborationPending)
	testutil.AddCollaborator(t, gdb, todo, carol, entity.CollaborationAccepted)

	t.Run("unique per todo and user", func(t *testing.T) {
		err := uow.Collaborators().Create(ctx, &entity.Collaborator{TodoID: todo.ID, UserID: bob.ID, Status: entity.CollaborationAccepted})
		assert.ErrorIs(t, err, repository.ErrDuplicateKey)
	})

	t.Run("details carry user fields", func(t *testing.T) {
		details, err := uow.Collaborators().ListDetailsByTodo(ctx, todo.ID)
		require.NoError(t, err)
		require.Len(t, details, 2)

		emails := []string{details[0].Email, details[1].Email}
		assert.ElementsMatch(t, []string{"bob@example.com", "carol@example.com"}, emails)
		for _, d := range details {
			assert.Equal(t, todo.ID, d.TodoID)
			assert.NotEmpty(t, d.InviteCode)
		}
	})

	t.Run("update status", func(t *testing.T) {
		require.NoError(t, uow.Collaborators().UpdateStatus(ctx, bobRow.ID, entity.CollaborationAccepted))

		row, err := uow.Collaborators().Find(ctx, todo.ID, bob.ID)
		require.NoError(t, err)
		assert.Equal(t, entity.CollaborationAccepted, row.Status)
	})

	t.Run("collaborated listing filters by status", func(t *testing.T) {
		todos, total, err := uow.Todos().ListCollaborated(ctx, carol.ID, []entity.CollaborationStatus{entity.CollaborationPending}, entity.PaginationParams{Page: 1, Limit: 10})
		require.NoError(t, err)
		assert.Zero(t, total)
		assert.Empty(t, todos)

		todos, total, err = uow.Todos().ListCollaborated(ctx, carol.ID, nil, entity.PaginationParams{Page: 1, Limit: 10})
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
		require.Len(t, todos, 1)
		assert.Equal(t, "shared", todos[0].Title)
	})

	t.Run("delete by todo", func(t *testing.T) {
		n, err := uow.Collaborators().DeleteByTodo(ctx, todo.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(2), n)

		rows, err := uow.Collaborators().ListByTodo(ctx, todo.ID)
		require.NoError(t, err)
		assert.Empty(t, rows)
	})
}

func TestUserRepository_UniqueFields(t *testing.T) {
	ctx := context.Background()
	gdb := testutil.NewTestDB(t)
	uow := testutil.NewUnitOfWork(gdb)
	alice := testutil.CreateUser(t, gdb, "alice@example.com")

	err := uow.Users().Create(ctx, &entity.User{Email: "alice@example.com", InviteCode: "00000000", IsActive: true})
	assert.ErrorIs(t, err, repository.ErrDuplicateKey)

	err = uow.Users().Create(ctx, &entity.User{Email: "other@example.com", InviteCode: alice.InviteCode, IsActive: true})
	assert.ErrorIs(t, err, repository.ErrDuplicateKey)

	missing, err := uow.Users().FindByEmail(ctx, "nobody@example.com")
	assert.NoError(t, err)
	assert.Nil(t, missing)
}
