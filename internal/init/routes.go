package init

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	handler "github.com/wekeepgrowing/semo-todo/internal/adapter/handler/http"
	"github.com/wekeepgrowing/semo-todo/internal/domain/repository"
	"github.com/wekeepgrowing/semo-todo/internal/infrastructure/http/middleware"
)

// RouteDeps 라우트 등록에 필요한 의존성
type RouteDeps struct {
	UseCases     *UseCases
	Transactions repository.TransactionManager
	// Lookup 인증 시 사용자 조회용 (트랜잭션 없음)
	Lookup    repository.UnitOfWork
	JWTSecret string
	Logger    *zap.Logger
}

// RegisterRoutes /api/v1 아래에 모든 핸들러를 등록합니다.
// 공개 라우트는 트랜잭션만, 보호 라우트는 인증 후 트랜잭션을 거칩니다.
func RegisterRoutes(v1 *echo.Group, deps RouteDeps) {
	uc := deps.UseCases

	tx := middleware.TransactionMiddleware(deps.Transactions, deps.Logger)
	auth := middleware.JWTMiddleware(middleware.JWTConfig{
		Secret:        deps.JWTSecret,
		Authenticator: uc.User,
		UnitOfWork:    deps.Lookup,
		Logger:        deps.Logger,
	})

	public := []echo.MiddlewareFunc{tx}
	protected := []echo.MiddlewareFunc{auth, tx}

	handler.NewUserHandler(uc.User, deps.Logger).RegisterRoutes(v1, public, protected)
	handler.NewCollaborationHandler(uc.Collaboration, uc.Limits, deps.Logger).RegisterRoutes(v1, protected...)
	handler.NewTodoHandler(uc.Todo, uc.Access, uc.Limits, deps.Logger).RegisterRoutes(v1, protected...)
	handler.NewSubTodoHandler(uc.SubTodo, uc.Limits, deps.Logger).RegisterRoutes(v1, protected...)
	handler.NewCategoryHandler(uc.Category, uc.Limits, deps.Logger).RegisterRoutes(v1, protected...)
}
