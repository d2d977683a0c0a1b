package db

import (
	"fmt"
	"strings"

	"github.com/glebarez/sqlite"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// NewSQLiteDB 로컬 실행용 SQLite 연결을 생성합니다. 외래 키 검사를 켭니다.
// SQLite는 동시 쓰기를 지원하지 않으므로 연결은 하나만 사용합니다.
func NewSQLiteDB(config Config, zapLogger *zap.Logger) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(sqliteDSN(config.Path)), gormConfig(config, zapLogger))
	if err != nil {
		return nil, fmt.Errorf("SQLite 연결 실패: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("SQL DB 인스턴스 획득 실패: %w", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("SQLite 핑 실패: %w", err)
	}

	zapLogger.Info("데이터베이스 연결 성공",
		zap.String("driver", "sqlite"),
		zap.String("path", config.Path),
	)
	return db, nil
}

func sqliteDSN(path string) string {
	if path == "" || path == ":memory:" {
		path = "file::memory:"
	}
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return path + sep + "_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
}
