package entity

import (
	"time"

	"github.com/google/uuid"
)

// CollaborationStatus is the state of an invitation.
type CollaborationStatus string

const (
	CollaborationPending  CollaborationStatus = "pending"
	CollaborationAccepted CollaborationStatus = "accepted"
	CollaborationRejected CollaborationStatus = "rejected"
)

// Valid reports whether s is one of the known statuses.
func (s CollaborationStatus) Valid() bool {
	switch s {
	case CollaborationPending, CollaborationAccepted, CollaborationRejected:
		return true
	}
	return false
}

// Collaborator links one user to one todo they were invited to.
// At most one row exists per (TodoID, UserID).
type Collaborator struct {
	ID        uuid.UUID           `json:"id"`
	TodoID    uuid.UUID           `json:"todo_id"`
	UserID    uuid.UUID           `json:"user_id"`
	Status    CollaborationStatus `json:"status"`
	CreatedAt time.Time           `json:"created_at"`
}

// CollaboratorDetail is a collaborator row joined with the public fields of its user.
type CollaboratorDetail struct {
	UserID     uuid.UUID           `json:"id"`
	TodoID     uuid.UUID           `json:"todo_id"`
	Email      string              `json:"email"`
	FullName   string              `json:"full_name"`
	InviteCode string              `json:"invite_code"`
	Status     CollaborationStatus `json:"status"`
	CreatedAt  time.Time           `json:"created_at"`
}

// CollaboratorInvite addresses a user by invite code. It is both the invite
// request and its response.
type CollaboratorInvite struct {
	InviteCode string `json:"invite_code" validate:"required,max=64"`
}

// CollaborationConfirm is the invitee's decision plus the todo fields to change
// in the same transaction.
type CollaborationConfirm struct {
	Decision CollaborationStatus `json:"decision" validate:"required,oneof=pending accepted rejected"`
	Todo     TodoUpdate          `json:"todo"`
}
