package entity

import (
	"time"

	"github.com/google/uuid"
)

// TodoStatus is the progress state shared by todos and sub-todos.
type TodoStatus string

const (
	TodoStatusPending    TodoStatus = "pending"
	TodoStatusInProgress TodoStatus = "in_progress"
	TodoStatusCompleted  TodoStatus = "completed"

	DefaultTodoStatus = TodoStatusInProgress
)

// Valid reports whether s is one of the known statuses.
func (s TodoStatus) Valid() bool {
	switch s {
	case TodoStatusPending, TodoStatusInProgress, TodoStatusCompleted:
		return true
	}
	return false
}

// Todo is a task owned by exactly one user.
type Todo struct {
	ID          uuid.UUID  `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Status      TodoStatus `json:"status"`
	OwnerID     uuid.UUID  `json:"owner_id"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// TodoCreate is the payload for a new todo. An empty status means DefaultTodoStatus.
type TodoCreate struct {
	Title       string     `json:"title" validate:"required,min=1,max=255"`
	Description string     `json:"description" validate:"max=255"`
	Status      TodoStatus `json:"status" validate:"omitempty,oneof=pending in_progress completed"`
}

// NewTodo builds a todo owned by ownerID from the payload.
func NewTodo(ownerID uuid.UUID, in TodoCreate) *Todo {
	status := in.Status
	if status == "" {
		status = DefaultTodoStatus
	}
	return &Todo{
		ID:          uuid.New(),
		Title:       in.Title,
		Description: in.Description,
		Status:      status,
		OwnerID:     ownerID,
	}
}

// TodoUpdate is the field update set for a todo: only non-nil fields are applied.
type TodoUpdate struct {
	Title       *string     `json:"title,omitempty" validate:"omitempty,min=1,max=255"`
	Description *string     `json:"description,omitempty" validate:"omitempty,max=255"`
	Status      *TodoStatus `json:"status,omitempty" validate:"omitempty,oneof=pending in_progress completed"`
}

// IsEmpty reports whether no field is set.
func (p TodoUpdate) IsEmpty() bool {
	return p.Title == nil && p.Description == nil && p.Status == nil
}

// Apply copies every present field onto t.
func (p TodoUpdate) Apply(t *Todo) {
	if p.Title != nil {
		t.Title = *p.Title
	}
	if p.Description != nil {
		t.Description = *p.Description
	}
	if p.Status != nil {
		t.Status = *p.Status
	}
}

// TodoFilter narrows a todo listing to rows whose title, description or
// status contains Search.
type TodoFilter struct {
	Search        string
	CaseSensitive bool
}

// IsZero reports whether the filter matches everything.
func (f TodoFilter) IsZero() bool {
	return f.Search == ""
}
