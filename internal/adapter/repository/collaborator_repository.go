package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/wekeepgrowing/semo-todo/internal/domain/entity"
	domainrepo "github.com/wekeepgrowing/semo-todo/internal/domain/repository"
	"github.com/wekeepgrowing/semo-todo/internal/infrastructure/db/model"
)

type collaboratorRepository struct {
	db *gorm.DB
}

// NewCollaboratorRepository creates a gorm backed collaborator repository
func NewCollaboratorRepository(db *gorm.DB) domainrepo.CollaboratorRepository {
	return &collaboratorRepository{db: db}
}

func (r *collaboratorRepository) Create(ctx context.Context, c *entity.Collaborator) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	m := toCollaboratorModel(c)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return fmt.Errorf("failed to create collaborator: %w", translateWriteError(err))
	}
	c.CreatedAt = m.CreatedAt
	return nil
}

func (r *collaboratorRepository) Find(ctx context.Context, todoID, userID uuid.UUID) (*entity.Collaborator, error) {
	var m model.CollaboratorModel
	err := r.db.WithContext(ctx).Where("todo_id = ? AND user_id = ?", todoID, userID).First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find collaborator: %w", err)
	}
	return toCollaboratorEntity(&m), nil
}

func (r *collaboratorRepository) ListByTodo(ctx context.Context, todoID uuid.UUID) ([]*entity.Collaborator, error) {
	var models []model.CollaboratorModel
	err := r.db.WithContext(ctx).Where("todo_id = ?", todoID).Order("created_at ASC").Find(&models).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list collaborators: %w", err)
	}

	collaborators := make([]*entity.Collaborator, 0, len(models))
	for i := range models {
		collaborators = append(collaborators, toCollaboratorEntity(&models[i]))
	}
	return collaborators, nil
}

func (r *collaboratorRepository) ListDetailsByTodo(ctx context.Context, todoID uuid.UUID) ([]*entity.CollaboratorDetail, error) {
	var rows []model.CollaboratorDetailRow
	err := r.db.WithContext(ctx).
		Table("collaborators").
		Select("collaborators.user_id, collaborators.todo_id, users.email, users.full_name, users.invite_code, collaborators.status, collaborators.created_at").
		Joins("JOIN users ON users.id = collaborators.user_id").
		Where("collaborators.todo_id = ?", todoID).
		Order("collaborators.created_at ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list collaborator details: %w", err)
	}

	details := make([]*entity.CollaboratorDetail, 0, len(rows))
	for i := range rows {
		details = append(details, toCollaboratorDetail(&rows[i]))
	}
	return details, nil
}

func (r *collaboratorRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.CollaborationStatus) error {
	err := r.db.WithContext(ctx).Model(&model.CollaboratorModel{}).
		Where("id = ?", id).
		Update("status", string(status)).Error
	if err != nil {
		return fmt.Errorf("failed to update collaborator status: %w", err)
	}
	return nil
}

func (r *collaboratorRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.CollaboratorModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete collaborator: %w", err)
	}
	return nil
}

func (r *collaboratorRepository) DeleteByTodo(ctx context.Context, todoID uuid.UUID) (int64, error) {
	result := r.db.WithContext(ctx).Where("todo_id = ?", todoID).Delete(&model.CollaboratorModel{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to delete collaborators: %w", result.Error)
	}
	return result.RowsAffected, nil
}
