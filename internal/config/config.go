package config

import (
	"time"

	"go.uber.org/zap"

	"github.com/wekeepgrowing/semo-todo/pkg/config"
	"github.com/wekeepgrowing/semo-todo/pkg/logger"
)

// ServiceName는 설정 파일 이름과 환경 변수 접두사(TODO_)로 쓰입니다.
const ServiceName = "todo"

// Config todo 서비스 설정 구조체
type Config struct {
	Service struct {
		Name    string
		Version string
	}

	Server struct {
		HTTP struct {
			Port    string
			Timeout time.Duration
			Debug   bool
		}
		GRPC struct {
			Port    string
			Enabled bool
			// HealthInterval 데이터베이스 핑으로 헬스 상태를 갱신하는 주기
			HealthInterval time.Duration
		}
	}

	Database struct {
		// Driver postgres 또는 sqlite
		Driver   string
		Host     string
		Port     int
		Name     string
		User     string
		Password string
		SSLMode  string
		// Path sqlite 파일 경로 (":memory:" 가능)
		Path            string
		MaxOpenConns    int
		MaxIdleConns    int
		ConnMaxLifetime time.Duration
		LogLevel        string
		SlowThreshold   time.Duration
		AutoMigrate     bool
	}

	Redis struct {
		Enabled  bool
		Addr     string
		Password string
		DB       int
		Channel  string
	}

	JWT struct {
		Secret string
	}

	Security struct {
		BcryptCost int
	}

	// Superuser 설정되어 있으면 시작 시 슈퍼유저 계정을 생성합니다.
	Superuser struct {
		Email    string
		Password string
	}

	Log logger.Config

	Access struct {
		// EnforceSubTodoCreate가 true면 sub-todo 생성도 부모 todo 소유자/슈퍼유저로 제한합니다.
		EnforceSubTodoCreate bool
	}

	Pagination struct {
		DefaultLimit int
		MaxLimit     int
	}

	Logger *zap.Logger
}

var defaults = map[string]interface{}{
	"service.name":                  "semo-todo",
	"service.version":               "0.1.0",
	"server.http.port":              "8080",
	"server.http.timeout":           "30s",
	"server.grpc.port":              "9090",
	"server.grpc.enabled":           true,
	"server.grpc.health_interval":   "15s",
	"database.driver":               "postgres",
	"database.host":                 "localhost",
	"database.port":                 5432,
	"database.sslmode":              "disable",
	"database.path":                 "todo.db",
	"database.max_open_conns":       20,
	"database.max_idle_conns":       5,
	"database.conn_max_lifetime":    "30m",
	"database.log_level":            "warn",
	"database.slow_threshold":       "1s",
	"database.auto_migrate":         true,
	"redis.enabled":                 false,
	"redis.addr":                    "localhost:6379",
	"redis.channel":                 "todo:collaboration",
	"security.bcrypt_cost":          12,
	"log.level":                     "info",
	"log.format":                    "json",
	"log.output":                    "stdout",
	"access.enforce_subtodo_create": false,
	"pagination.default_limit":      20,
	"pagination.max_limit":          100,
}

// Load 설정 파일을 읽고 로거를 생성합니다.
func Load() (*Config, error) {
	cfg, err := config.Load(ServiceName, config.WithDefaults(defaults))
	if err != nil {
		return nil, err
	}
	return FromSource(cfg)
}

// FromSource는 이미 로드된 설정 값으로 Config를 채웁니다.
func FromSource(cfg config.Config) (*Config, error) {
	c := &Config{}

	c.Service.Name = cfg.GetString("service.name")
	c.Service.Version = cfg.GetString("service.version")

	c.Server.HTTP.Port = cfg.GetString("server.http.port")
	c.Server.HTTP.Timeout = cfg.GetDuration("server.http.timeout")
	c.Server.HTTP.Debug = cfg.GetBool("server.http.debug")
	c.Server.GRPC.Port = cfg.GetString("server.grpc.port")
	c.Server.GRPC.Enabled = cfg.GetBool("server.grpc.enabled")
	c.Server.GRPC.HealthInterval = cfg.GetDuration("server.grpc.health_interval")

	c.Database.Driver = cfg.GetString("database.driver")
	c.Database.Host = cfg.GetString("database.host")
	c.Database.Port = cfg.GetInt("database.port")
	c.Database.Name = cfg.GetString("database.name")
	c.Database.User = cfg.GetString("database.user")
	c.Database.Password = cfg.GetString("database.password")
	c.Database.SSLMode = cfg.GetString("database.sslmode")
	c.Database.Path = cfg.GetString("database.path")
	c.Database.MaxOpenConns = cfg.GetInt("database.max_open_conns")
	c.Database.MaxIdleConns = cfg.GetInt("database.max_idle_conns")
	c.Database.ConnMaxLifetime = cfg.GetDuration("database.conn_max_lifetime")
	c.Database.LogLevel = cfg.GetString("database.log_level")
	c.Database.SlowThreshold = cfg.GetDuration("database.slow_threshold")
	c.Database.AutoMigrate = cfg.GetBool("database.auto_migrate")

	c.Redis.Enabled = cfg.GetBool("redis.enabled")
	c.Redis.Addr = cfg.GetString("redis.addr")
	c.Redis.Password = cfg.GetString("redis.password")
	c.Redis.DB = cfg.GetInt("redis.db")
	c.Redis.Channel = cfg.GetString("redis.channel")

	c.JWT.Secret = cfg.GetString("jwt.secret")
	c.Security.BcryptCost = cfg.GetInt("security.bcrypt_cost")
	c.Superuser.Email = cfg.GetString("superuser.email")
	c.Superuser.Password = cfg.GetString("superuser.password")

	c.Log = logger.Config{
		Level:       cfg.GetString("log.level"),
		Format:      cfg.GetString("log.format"),
		Output:      cfg.GetString("log.output"),
		FilePath:    cfg.GetString("log.file_path"),
		Development: cfg.GetBool("log.development"),
	}

	c.Access.EnforceSubTodoCreate = cfg.GetBool("access.enforce_subtodo_create")

	c.Pagination.DefaultLimit = cfg.GetInt("pagination.default_limit")
	c.Pagination.MaxLimit = cfg.GetInt("pagination.max_limit")

	zapLogger, err := logger.NewZapLogger(c.Log)
	if err != nil {
		return nil, err
	}
	c.Logger = zapLogger.With(zap.String("service", c.Service.Name))

	return c, nil
}
