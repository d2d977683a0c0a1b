package entity_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/wekeepgrowing/semo-todo/internal/domain/entity"
)

func strPtr(s string) *string { return &s }

func TestNewTodoDefaultsStatus(t *testing.T) {
	owner := uuid.New()
	todo := entity.NewTodo(owner, entity.TodoCreate{Title: "Groceries"})

	assert.Equal(t, entity.TodoStatusInProgress, todo.Status)
	assert.Equal(t, owner, todo.OwnerID)
	assert.NotEqual(t, uuid.Nil, todo.ID)
}

func TestTodoUpdateAppliesOnlyPresentFields(t *testing.T) {
	todo := &entity.Todo{Title: "Old", Description: "keep", Status: entity.TodoStatusPending}
	done := entity.TodoStatusCompleted

	update := entity.TodoUpdate{Title: strPtr("New"), Status: &done}
	assert.False(t, update.IsEmpty())
	update.Apply(todo)

	assert.Equal(t, "New", todo.Title)
	assert.Equal(t, "keep", todo.Description)
	assert.Equal(t, entity.TodoStatusCompleted, todo.Status)

	assert.True(t, entity.TodoUpdate{}.IsEmpty())
}

func TestTodoUpdateCanClearDescription(t *testing.T) {
	todo := &entity.Todo{Description: "something"}
	entity.TodoUpdate{Description: strPtr("")}.Apply(todo)
	assert.Empty(t, todo.Description)
}

func TestStatusValid(t *testing.T) {
	assert.True(t, entity.TodoStatusPending.Valid())
	assert.False(t, entity.TodoStatus("done").Valid())
	assert.True(t, entity.CollaborationRejected.Valid())
	assert.False(t, entity.CollaborationStatus("removed").Valid())
	assert.True(t, entity.CategoryLevelHigh.Valid())
	assert.False(t, entity.CategoryLevel("urgent").Valid())
}

func TestPagination(t *testing.T) {
	p := entity.PaginationParams{Page: 0, Limit: 1000}
	p.Normalize()
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, entity.MaxPageSize, p.Limit)

	p = entity.PaginationParams{Page: 2, Limit: 10}
	p.Normalize()
	assert.Equal(t, 10, p.Offset())

	meta := entity.NewPaginationMeta(p, 15)
	assert.Equal(t, 2, meta.TotalPages)
	assert.Equal(t, int64(15), meta.Total)

	page := entity.NewPage[*entity.Todo](nil, p, 0)
	assert.NotNil(t, page.Data)
}

func TestUserOwnsAndInviteCode(t *testing.T) {
	u := &entity.User{ID: uuid.New(), InviteCode: "a1b2c3d4"}
	other := &entity.User{ID: uuid.New(), InviteCode: "a1b2c3d4"}

	assert.True(t, u.Owns(&entity.Todo{OwnerID: u.ID}))
	assert.False(t, u.Owns(&entity.Todo{OwnerID: other.ID}))
	assert.True(t, u.SameInviteCode(other))
}

func TestEventForDecision(t *testing.T) {
	assert.Equal(t, entity.EventCollaboratorAccepted, entity.EventForDecision(entity.CollaborationAccepted))
	assert.Equal(t, entity.EventCollaboratorRejected, entity.EventForDecision(entity.CollaborationRejected))
	assert.Equal(t, entity.EventCollaboratorPending, entity.EventForDecision(entity.CollaborationPending))
}
