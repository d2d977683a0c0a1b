package usecase_test

import (
	"context"
	"sync"
	"testing"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/wekeepgrowing/semo-todo/internal/domain/entity"
	"github.com/wekeepgrowing/semo-todo/internal/domain/repository"
	"github.com/wekeepgrowing/semo-todo/internal/testutil"
	"github.com/wekeepgrowing/semo-todo/internal/usecase"
)

// recordingPublisher keeps every published event in memory
type recordingPublisher struct {
	mu     sync.Mutex
	events []entity.CollaborationEvent
}

func (p *recordingPublisher) PublishCollaborationEvent(_ context.Context, event entity.CollaborationEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
	return nil
}

func (p *recordingPublisher) types() []entity.CollaborationEventType {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]entity.CollaborationEventType, 0, len(p.events))
	for _, e := range p.events {
		out = append(out, e.Type)
	}
	return out
}

type fixture struct {
	db            *gorm.DB
	uow           repository.UnitOfWork
	publisher     *recordingPublisher
	access        *usecase.AccessUseCase
	todos         *usecase.TodoUseCase
	collaboration *usecase.CollaborationUseCase
	subTodos      *usecase.SubTodoUseCase
	categories    *usecase.CategoryUseCase
}

func newFixture(t *testing.T, opts ...usecase.SubTodoOptions) *fixture {
	t.Helper()

	logger := zap.NewNop()
	gdb := testutil.NewTestDB(t)
	validator := usecase.NewValidator()
	publisher := &recordingPublisher{}
	limits := usecase.PageLimits{Default: 10, Max: 50}
	access := usecase.NewAccessUseCase(logger)

	var subOpts usecase.SubTodoOptions
	if len(opts) > 0 {
		subOpts = opts[0]
	}

	return &fixture{
		db:            gdb,
		uow:           testutil.NewUnitOfWork(gdb),
		publisher:     publisher,
		access:        access,
		todos:         usecase.NewTodoUseCase(access, validator, publisher, limits, logger),
		collaboration: usecase.NewCollaborationUseCase(access, validator, publisher, limits, logger),
		subTodos:      usecase.NewSubTodoUseCase(access, validator, limits, subOpts, logger),
		categories:    usecase.NewCategoryUseCase(validator, limits, logger),
	}
}

func strPtr(s string) *string { return &s }

func statusPtr(s entity.TodoStatus) *entity.TodoStatus { return &s }
