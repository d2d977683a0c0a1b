package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/wekeepgrowing/semo-todo/internal/domain/entity"
	"github.com/wekeepgrowing/semo-todo/internal/domain/repository"
)

// EventPublisher delivers collaboration events to interested users.
type EventPublisher interface {
	PublishCollaborationEvent(ctx context.Context, event entity.CollaborationEvent) error
}

// publishAfterCommit schedules event delivery for when uow commits.
// Delivery failures are logged by the publisher and never fail the request.
func publishAfterCommit(uow repository.UnitOfWork, publisher EventPublisher, event entity.CollaborationEvent) {
	if publisher == nil {
		return
	}
	event.OccurredAt = time.Now().UTC()
	uow.AfterCommit(func(ctx context.Context) {
		_ = publisher.PublishCollaborationEvent(ctx, event)
	})
}

func recipients(ids ...uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if id == uuid.Nil {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
