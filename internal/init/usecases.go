package init

import (
	"go.uber.org/zap"

	"github.com/wekeepgrowing/semo-todo/internal/config"
	"github.com/wekeepgrowing/semo-todo/internal/domain/entity"
	"github.com/wekeepgrowing/semo-todo/internal/infrastructure/crypto"
	"github.com/wekeepgrowing/semo-todo/internal/infrastructure/idgen"
	"github.com/wekeepgrowing/semo-todo/internal/usecase"
)

// UseCases 애플리케이션의 모든 유스케이스 컨테이너
type UseCases struct {
	Access        *usecase.AccessUseCase
	User          *usecase.UserUseCase
	Todo          *usecase.TodoUseCase
	Collaboration *usecase.CollaborationUseCase
	SubTodo       *usecase.SubTodoUseCase
	Category      *usecase.CategoryUseCase

	Limits usecase.PageLimits
}

// NewUseCases 모든 유스케이스 인스턴스 생성 및 초기화
func NewUseCases(cfg *config.Config, publisher usecase.EventPublisher, logger *zap.Logger) *UseCases {
	validator := usecase.NewValidator()
	limits := usecase.PageLimits{
		Default: cfg.Pagination.DefaultLimit,
		Max:     cfg.Pagination.MaxLimit,
	}

	// 접근 권한 판단은 다른 유스케이스가 공유합니다
	access := usecase.NewAccessUseCase(logger)

	return &UseCases{
		Access: access,
		User: usecase.NewUserUseCase(
			validator,
			crypto.NewBcryptHasher(cfg.Security.BcryptCost),
			idgen.NewInviteCodeGenerator(entity.InviteCodeLength),
			logger,
		),
		Todo:          usecase.NewTodoUseCase(access, validator, publisher, limits, logger),
		Collaboration: usecase.NewCollaborationUseCase(access, validator, publisher, limits, logger),
		SubTodo: usecase.NewSubTodoUseCase(access, validator, limits, usecase.SubTodoOptions{
			EnforceCreateAccess: cfg.Access.EnforceSubTodoCreate,
		}, logger),
		Category: usecase.NewCategoryUseCase(validator, limits, logger),
		Limits:   limits,
	}
}
