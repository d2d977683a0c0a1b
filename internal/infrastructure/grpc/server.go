package grpc

import (
	"context"
	"fmt"
	"net"
	"sync"
	"time"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	"github.com/wekeepgrowing/semo-todo/pkg/logger"
)

// ServiceName 헬스 체크에 등록되는 서비스 이름
const ServiceName = "semo.todo.v1.TodoService"

// Server gRPC 서버 구조체
type Server struct {
	server   *grpc.Server
	health   *health.Server
	logger   *zap.Logger
	address  string
	interval time.Duration

	stopOnce sync.Once
	stop     chan struct{}
}

// Config gRPC 서버 설정
type Config struct {
	Port string
	// CheckInterval 헬스 상태 갱신 주기
	CheckInterval time.Duration
}

// NewServer gRPC 서버 생성
func NewServer(cfg Config, zapLogger *zap.Logger) *Server {
	server := grpc.NewServer(
		grpc.ChainUnaryInterceptor(logger.NewGrpcUnaryServerInterceptor(zapLogger)),
		grpc.ChainStreamInterceptor(logger.NewGrpcStreamServerInterceptor(zapLogger)),
	)

	// 헬스 체크 서비스 등록
	healthServer := health.NewServer()
	healthpb.RegisterHealthServer(server, healthServer)
	healthServer.SetServingStatus("", healthpb.HealthCheckResponse_NOT_SERVING)
	healthServer.SetServingStatus(ServiceName, healthpb.HealthCheckResponse_NOT_SERVING)

	// 서버 리플렉션 설정
	reflection.Register(server)

	return &Server{
		server:   server,
		health:   healthServer,
		logger:   zapLogger,
		address:  fmt.Sprintf(":%s", cfg.Port),
		interval: cfg.CheckInterval,
		stop:     make(chan struct{}),
	}
}

// WatchHealth check 결과로 서빙 상태를 갱신합니다. Stop 이후 종료됩니다.
func (s *Server) WatchHealth(check func(ctx context.Context) error) {
	interval := s.interval
	if interval <= 0 {
		interval = 15 * time.Second
	}

	s.UpdateHealth(check)
	ticker := time.NewTicker(interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				s.UpdateHealth(check)
			case <-s.stop:
				return
			}
		}
	}()
}

// UpdateHealth check를 한 번 실행하고 결과를 반영합니다.
func (s *Server) UpdateHealth(check func(ctx context.Context) error) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	status := healthpb.HealthCheckResponse_SERVING
	if err := check(ctx); err != nil {
		s.logger.Warn("헬스 체크 실패", zap.Error(err))
		status = healthpb.HealthCheckResponse_NOT_SERVING
	}
	s.health.SetServingStatus("", status)
	s.health.SetServingStatus(ServiceName, status)
}

// Start gRPC 서버 시작
func (s *Server) Start() error {
	listener, err := net.Listen("tcp", s.address)
	if err != nil {
		return fmt.Errorf("gRPC 서버 리스너 생성 실패: %w", err)
	}

	s.logger.Info("gRPC 서버 시작",
		zap.String("address", s.address),
	)

	return s.Serve(listener)
}

// Serve 주어진 리스너로 서비스합니다.
func (s *Server) Serve(listener net.Listener) error {
	return s.server.Serve(listener)
}

// Stop gRPC 서버 중지
func (s *Server) Stop() {
	s.stopOnce.Do(func() {
		s.logger.Info("gRPC 서버 종료 중...")
		close(s.stop)
		s.health.Shutdown()
		s.server.GracefulStop()
		s.logger.Info("gRPC 서버 종료 완료")
	})
}
