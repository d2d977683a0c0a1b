package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/wekeepgrowing/semo-todo/internal/adapter/messaging"
	adapterrepo "github.com/wekeepgrowing/semo-todo/internal/adapter/repository"
	"github.com/wekeepgrowing/semo-todo/internal/config"
	"github.com/wekeepgrowing/semo-todo/internal/domain/repository"
	"github.com/wekeepgrowing/semo-todo/internal/infrastructure/db"
	"github.com/wekeepgrowing/semo-todo/internal/infrastructure/grpc"
	"github.com/wekeepgrowing/semo-todo/internal/infrastructure/http"
	appinit "github.com/wekeepgrowing/semo-todo/internal/init"
)

func main() {
	// 1. 설정 로드
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("설정 로드 실패: %v", err)
	}

	// 2. 로거 가져오기
	logger := cfg.Logger
	defer logger.Sync()

	logger.Info("todo 서비스를 시작합니다...",
		zap.String("service", cfg.Service.Name),
		zap.String("version", cfg.Service.Version),
	)

	if cfg.JWT.Secret == "" {
		logger.Fatal("jwt.secret 설정이 필요합니다")
	}

	ctx := context.Background()

	// 3. 인프라스트럭처 초기화
	infrastructure, err := db.NewInfrastructure(ctx, cfg)
	if err != nil {
		logger.Fatal("인프라스트럭처 초기화 실패", zap.Error(err))
	}
	defer infrastructure.Close()

	// 4. 트랜잭션 관리자와 이벤트 발행자
	transactions := adapterrepo.NewTransactionManager(infrastructure.DB, logger)
	publisher := messaging.NewCollaborationPublisher(infrastructure.Publisher, cfg.Redis.Channel, logger)

	// 5. 유스케이스 초기화
	useCases := appinit.NewUseCases(cfg, publisher, logger)

	if cfg.Superuser.Email != "" {
		err := transactions.WithinTransaction(ctx, func(ctx context.Context, uow repository.UnitOfWork) error {
			_, err := useCases.User.EnsureSuperuser(ctx, uow, cfg.Superuser.Email, cfg.Superuser.Password)
			return err
		})
		if err != nil {
			logger.Fatal("슈퍼유저 생성 실패", zap.Error(err))
		}
	}

	// 6. HTTP 서버 생성
	httpServer := http.NewServer(http.Config{
		Port:    cfg.Server.HTTP.Port,
		Timeout: cfg.Server.HTTP.Timeout,
		Debug:   cfg.Server.HTTP.Debug,
	}, logger)
	httpServer.RegisterRoutes(infrastructure.Ping, func(v1 *echo.Group) {
		appinit.RegisterRoutes(v1, appinit.RouteDeps{
			UseCases:     useCases,
			Transactions: transactions,
			Lookup:       adapterrepo.NewUnitOfWork(infrastructure.DB, logger),
			JWTSecret:    cfg.JWT.Secret,
			Logger:       logger,
		})
	})

	// 7. gRPC 서버 생성
	var grpcServer *grpc.Server
	if cfg.Server.GRPC.Enabled {
		grpcServer = grpc.NewServer(grpc.Config{
			Port:          cfg.Server.GRPC.Port,
			CheckInterval: cfg.Server.GRPC.HealthInterval,
		}, logger)
		grpcServer.WatchHealth(infrastructure.Ping)
	}

	// 8. 서버 시작
	go func() {
		if err := httpServer.Start(); err != nil {
			logger.Error("HTTP 서버 종료", zap.Error(err))
		}
	}()

	if grpcServer != nil {
		go func() {
			if err := grpcServer.Start(); err != nil {
				logger.Error("gRPC 서버 종료", zap.Error(err))
			}
		}()
	}

	// 9. 그레이스풀 종료를 위한 시그널 처리
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("서버를 종료합니다...")

	if err := httpServer.Stop(); err != nil {
		logger.Error("HTTP 서버 종료 오류", zap.Error(err))
	}
	if grpcServer != nil {
		grpcServer.Stop()
	}

	logger.Info("서버가 정상적으로 종료되었습니다")
}
