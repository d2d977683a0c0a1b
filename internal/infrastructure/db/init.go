package db

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/wekeepgrowing/semo-todo/internal/config"
	"github.com/wekeepgrowing/semo-todo/pkg/messaging"
)

// Infrastructure 외부 자원 묶음
type Infrastructure struct {
	DB        *gorm.DB
	Publisher messaging.Publisher
	logger    *zap.Logger
}

// Open은 설정의 드라이버에 맞는 DB 연결을 생성합니다.
func Open(cfg Config, logger *zap.Logger) (*gorm.DB, error) {
	switch cfg.Driver {
	case "sqlite":
		return NewSQLiteDB(cfg, logger)
	case "postgres", "":
		return NewPostgresDB(cfg, logger)
	default:
		return nil, fmt.Errorf("지원하지 않는 데이터베이스 드라이버: %s", cfg.Driver)
	}
}

// NewInfrastructure DB와 Redis 연결을 초기화합니다.
func NewInfrastructure(ctx context.Context, cfg *config.Config) (*Infrastructure, error) {
	logger := cfg.Logger

	dbConfig := Config{
		Driver:          cfg.Database.Driver,
		Host:            cfg.Database.Host,
		Port:            cfg.Database.Port,
		Name:            cfg.Database.Name,
		User:            cfg.Database.User,
		Password:        cfg.Database.Password,
		SSLMode:         cfg.Database.SSLMode,
		Path:            cfg.Database.Path,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
		LogLevel:        cfg.Database.LogLevel,
		SlowThreshold:   cfg.Database.SlowThreshold,
	}

	database, err := Open(dbConfig, logger)
	if err != nil {
		return nil, err
	}

	if cfg.Database.AutoMigrate {
		if err := Migrate(database, logger); err != nil {
			return nil, fmt.Errorf("마이그레이션 실패: %w", err)
		}
	}

	infra := &Infrastructure{DB: database, Publisher: messaging.NopPublisher{}, logger: logger}

	if cfg.Redis.Enabled {
		publisher, err := messaging.NewRedisPublisher(ctx, messaging.RedisOptions{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			_ = infra.Close()
			return nil, err
		}
		infra.Publisher = publisher
	}

	logger.Info("인프라스트럭처 초기화 완료",
		zap.String("database", cfg.Database.Driver),
		zap.Bool("redis", cfg.Redis.Enabled),
	)
	return infra, nil
}

// Ping DB 연결 상태를 확인합니다.
func (i *Infrastructure) Ping(ctx context.Context) error {
	sqlDB, err := i.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// Close 모든 연결을 종료합니다.
func (i *Infrastructure) Close() error {
	if i.Publisher != nil {
		if err := i.Publisher.Close(); err != nil {
			i.logger.Warn("Redis 연결 종료 실패", zap.Error(err))
		}
	}

	sqlDB, err := i.DB.DB()
	if err != nil {
		return fmt.Errorf("DB 인스턴스 획득 실패: %w", err)
	}
	if err := sqlDB.Close(); err != nil {
		return fmt.Errorf("데이터베이스 연결 종료 실패: %w", err)
	}

	i.logger.Info("모든 인프라스트럭처 연결 종료됨")
	return nil
}
