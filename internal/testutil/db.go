// Package testutil provides an in-memory database and fixtures for tests.
package testutil

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	adapterrepo "github.com/wekeepgrowing/semo-todo/internal/adapter/repository"
	"github.com/wekeepgrowing/semo-todo/internal/domain/entity"
	"github.com/wekeepgrowing/semo-todo/internal/domain/repository"
	"github.com/wekeepgrowing/semo-todo/internal/infrastructure/db"
)

// NewTestDB opens a migrated in-memory SQLite database that is closed when the test ends.
func NewTestDB(t testing.TB) *gorm.DB {
	t.Helper()

	gdb, err := db.NewSQLiteDB(db.Config{Path: ":memory:", LogLevel: "silent"}, zap.NewNop())
	require.NoError(t, err)
	require.NoError(t, db.Migrate(gdb, zap.NewNop()))

	t.Cleanup(func() {
		if sqlDB, err := gdb.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return gdb
}

// NewUnitOfWork returns a non-transactional unit of work over gdb.
func NewUnitOfWork(gdb *gorm.DB) repository.UnitOfWork {
	return adapterrepo.NewUnitOfWork(gdb, zap.NewNop())
}

// UserOption customises a fixture user.
type UserOption func(u *entity.User)

// Superuser marks the fixture user as superuser.
func Superuser() UserOption {
	return func(u *entity.User) { u.IsSuperuser = true }
}

// Inactive marks the fixture user as inactive.
func Inactive() UserOption {
	return func(u *entity.User) { u.IsActive = false }
}

// CreateUser inserts a user with a random invite code derived from its id.
func CreateUser(t testing.TB, gdb *gorm.DB, email string, opts ...UserOption) *entity.User {
	t.Helper()

	id := uuid.New()
	u := &entity.User{
		ID:             id,
		Email:          email,
		FullName:       strings.Split(email, "@")[0],
		HashedPassword: "not-a-real-hash",
		InviteCode:     strings.ReplaceAll(id.String(), "-", "")[:entity.InviteCodeLength],
		IsActive:       true,
	}
	for _, opt := range opts {
		opt(u)
	}

	require.NoError(t, NewUnitOfWork(gdb).Users().Create(context.Background(), u))
	return u
}

// CreateTodo inserts a todo owned by owner.
func CreateTodo(t testing.TB, gdb *gorm.DB, owner *entity.User, title string) *entity.Todo {
	t.Helper()

	todo := entity.NewTodo(owner.ID, entity.TodoCreate{Title: title})
	require.NoError(t, NewUnitOfWork(gdb).Todos().Create(context.Background(), todo))
	return todo
}

// AddCollaborator inserts a collaborator row directly.
func AddCollaborator(t testing.TB, gdb *gorm.DB, todo *entity.Todo, user *entity.User, status entity.CollaborationStatus) *entity.Collaborator {
	t.Helper()

	c := &entity.Collaborator{TodoID: todo.ID, UserID: user.ID, Status: status}
	require.NoError(t, NewUnitOfWork(gdb).Collaborators().Create(context.Background(), c))
	return c
}
