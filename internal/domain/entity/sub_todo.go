package entity

import (
	"time"

	"github.com/google/uuid"
)

// SubTodo is a child task of a todo. It is deleted together with its parent.
type SubTodo struct {
	ID          uuid.UUID  `json:"id"`
	TodoID      uuid.UUID  `json:"todo_id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Status      TodoStatus `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// SubTodoCreate is the payload for a new sub-todo.
type SubTodoCreate struct {
	Title       string     `json:"title" validate:"required,min=1,max=255"`
	Description string     `json:"description" validate:"max=255"`
	Status      TodoStatus `json:"status" validate:"omitempty,oneof=pending in_progress completed"`
}

// NewSubTodo builds a sub-todo under todoID.
func NewSubTodo(todoID uuid.UUID, in SubTodoCreate) *SubTodo {
	status := in.Status
	if status == "" {
		status = DefaultTodoStatus
	}
	return &SubTodo{
		ID:          uuid.New(),
		TodoID:      todoID,
		Title:       in.Title,
		Description: in.Description,
		Status:      status,
	}
}

// SubTodoUpdate is the field update set for a sub-todo.
type SubTodoUpdate struct {
	Title       *string     `json:"title,omitempty" validate:"omitempty,min=1,max=255"`
	Description *string     `json:"description,omitempty" validate:"omitempty,max=255"`
	Status      *TodoStatus `json:"status,omitempty" validate:"omitempty,oneof=pending in_progress completed"`
}

// Apply copies every present field onto s.
func (p SubTodoUpdate) Apply(s *SubTodo) {
	if p.Title != nil {
		s.Title = *p.Title
	}
	if p.Description != nil {
		s.Description = *p.Description
	}
	if p.Status != nil {
		s.Status = *p.Status
	}
}
