package http

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"github.com/wekeepgrowing/semo-todo/pkg/logger"
)

// Server HTTP 서버 구조체
type Server struct {
	router  *echo.Echo
	server  *http.Server
	logger  *zap.Logger
	address string
}

// Config HTTP 서버 설정
type Config struct {
	Port    string
	Timeout time.Duration
	Debug   bool
}

// HealthCheck 의존 자원 상태를 확인합니다.
type HealthCheck func(ctx context.Context) error

// NewServer HTTP 서버 생성
func NewServer(cfg Config, zapLogger *zap.Logger) *Server {
	e := echo.New()
	e.Debug = cfg.Debug

	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(logger.NewEchoRequestLogger(zapLogger))

	// 에러 응답 형식 설정
	logger.WithEchoLogger(e, zapLogger)

	address := fmt.Sprintf(":%s", cfg.Port)
	server := &http.Server{
		Addr:         address,
		ReadTimeout:  cfg.Timeout,
		WriteTimeout: cfg.Timeout,
		IdleTimeout:  cfg.Timeout,
	}

	return &Server{
		router:  e,
		server:  server,
		logger:  zapLogger,
		address: address,
	}
}

// Router Echo 인스턴스 반환
func (s *Server) Router() *echo.Echo {
	return s.router
}

// RegisterRoutes 헬스 체크와 /api/v1 라우트를 등록합니다.
func (s *Server) RegisterRoutes(health HealthCheck, register func(v1 *echo.Group)) {
	s.router.GET("/health", func(c echo.Context) error {
		ctx, cancel := context.WithTimeout(c.Request().Context(), 2*time.Second)
		defer cancel()

		if health != nil {
			if err := health(ctx); err != nil {
				s.logger.Warn("헬스 체크 실패", zap.Error(err))
				return c.JSON(http.StatusServiceUnavailable, map[string]string{
					"status": "unavailable",
				})
			}
		}
		return c.JSON(http.StatusOK, map[string]string{
			"status": "ok",
		})
	})

	register(s.router.Group("/api/v1"))
}

// Start HTTP 서버 시작
func (s *Server) Start() error {
	s.logger.Info("HTTP 서버 시작",
		zap.String("address", s.address),
	)

	s.server.Handler = s.router
	if err := s.router.StartServer(s.server); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Stop HTTP 서버 종료
func (s *Server) Stop() error {
	s.logger.Info("HTTP 서버 종료 중...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := s.router.Shutdown(ctx); err != nil {
		return fmt.Errorf("HTTP 서버 종료 실패: %w", err)
	}

	s.logger.Info("HTTP 서버 종료 완료")
	return nil
}
