package entity

import (
	"time"

	"github.com/google/uuid"
)

// CollaborationEventType names a change in a collaboration's lifecycle.
type CollaborationEventType string

const (
	EventCollaboratorInvited  CollaborationEventType = "collaborator.invited"
	EventCollaboratorAccepted CollaborationEventType = "collaborator.accepted"
	EventCollaboratorPending  CollaborationEventType = "collaborator.pending"
	EventCollaboratorRejected CollaborationEventType = "collaborator.rejected"
	EventCollaboratorRemoved  CollaborationEventType = "collaborator.removed"
	EventCollaboratorLeft     CollaborationEventType = "collaborator.left"
	EventTodoDeleted          CollaborationEventType = "todo.deleted"
)

// EventForDecision maps an invitee's decision to the event it emits.
func EventForDecision(decision CollaborationStatus) CollaborationEventType {
	switch decision {
	case CollaborationAccepted:
		return EventCollaboratorAccepted
	case CollaborationRejected:
		return EventCollaboratorRejected
	default:
		return EventCollaboratorPending
	}
}

// CollaborationEvent is published after the transaction that caused it commits.
// Recipients lists the users who should be notified.
type CollaborationEvent struct {
	Type       CollaborationEventType `json:"type"`
	TodoID     uuid.UUID              `json:"todo_id"`
	UserID     uuid.UUID              `json:"user_id"`
	ActorID    uuid.UUID              `json:"actor_id"`
	Recipients []uuid.UUID            `json:"-"`
	OccurredAt time.Time              `json:"occurred_at"`
}
