package db

import (
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/wekeepgrowing/semo-todo/internal/infrastructure/db/model"
)

// Migrate 테이블, 외래 키, 유니크 인덱스를 생성합니다.
func Migrate(db *gorm.DB, logger *zap.Logger) error {
	logger.Info("Running database migrations...")

	err := db.AutoMigrate(
		&model.UserModel{},
		&model.TodoModel{},
		&model.SubTodoModel{},
		&model.CollaboratorModel{},
		&model.CategoryModel{},
	)
	if err != nil {
		logger.Error("Failed to run migrations", zap.Error(err))
		return err
	}

	logger.Info("Database migrations completed successfully")
	return nil
}
