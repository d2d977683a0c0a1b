package entity

import (
	"time"

	"github.com/google/uuid"
)

// CategoryLevel is the priority of a category.
type CategoryLevel string

const (
	CategoryLevelLow    CategoryLevel = "low"
	CategoryLevelMedium CategoryLevel = "medium"
	CategoryLevelHigh   CategoryLevel = "high"
)

// Valid reports whether l is one of the known levels.
func (l CategoryLevel) Valid() bool {
	switch l {
	case CategoryLevelLow, CategoryLevelMedium, CategoryLevelHigh:
		return true
	}
	return false
}

// Category is a user's private label with a priority level.
type Category struct {
	ID          uuid.UUID     `json:"id"`
	OwnerID     uuid.UUID     `json:"owner_id"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Level       CategoryLevel `json:"level"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

type CategoryCreate struct {
	Title       string        `json:"title" validate:"required,min=1,max=255"`
	Description string        `json:"description" validate:"max=255"`
	Level       CategoryLevel `json:"level" validate:"omitempty,oneof=low medium high"`
}

// NewCategory builds a category owned by ownerID. An empty level means low.
func NewCategory(ownerID uuid.UUID, in CategoryCreate) *Category {
	level := in.Level
	if level == "" {
		level = CategoryLevelLow
	}
	return &Category{
		ID:          uuid.New(),
		OwnerID:     ownerID,
		Title:       in.Title,
		Description: in.Description,
		Level:       level,
	}
}

type CategoryUpdate struct {
	Title       *string        `json:"title,omitempty" validate:"omitempty,min=1,max=255"`
	Description *string        `json:"description,omitempty" validate:"omitempty,max=255"`
	Level       *CategoryLevel `json:"level,omitempty" validate:"omitempty,oneof=low medium high"`
}

func (p CategoryUpdate) Apply(c *Category) {
	if p.Title != nil {
		c.Title = *p.Title
	}
	if p.Description != nil {
		c.Description = *p.Description
	}
	if p.Level != nil {
		c.Level = *p.Level
	}
}
