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

type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository creates a gorm backed category repository
func NewCategoryRepository(db *gorm.DB) domainrepo.CategoryRepository {
	return &categoryRepository{db: db}
}

func (r *categoryRepository) Create(ctx context.Context, c *entity.Category) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	m := toCategoryModel(c)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return fmt.Errorf("failed to create category: %w", err)
	}
	c.CreatedAt, c.UpdatedAt = m.CreatedAt, m.UpdatedAt
	return nil
}

func (r *categoryRepository) FindByID(ctx context.Context, ownerID, id uuid.UUID) (*entity.Category, error) {
	var m model.CategoryModel
	err := r.db.WithContext(ctx).Where("id = ? AND owner_id = ?", id, ownerID).First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find category: %w", err)
	}
	return toCategoryEntity(&m), nil
}

func (r *categoryRepository) Update(ctx context.Context, c *entity.Category) error {
	m := toCategoryModel(c)
	err := r.db.WithContext(ctx).Model(m).
		Select("title", "description", "level", "updated_at").
		Updates(m).Error
	if err != nil {
		return fmt.Errorf("failed to update category: %w", err)
	}
	c.UpdatedAt = m.UpdatedAt
	return nil
}

func (r *categoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.CategoryModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}
	return nil
}

func (r *categoryRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID, page entity.PaginationParams) ([]*entity.Category, int64, error) {
	query := r.db.WithContext(ctx).Model(&model.CategoryModel{}).Where("owner_id = ?", ownerID)

	var total int64
	if err := query.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count categories: %w", err)
	}

	var models []model.CategoryModel
	if err := paginate(query.Order("created_at DESC"), page).Find(&models).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list categories: %w", err)
	}

	categories := make([]*entity.Category, 0, len(models))
	for i := range models {
		categories = append(categories, toCategoryEntity(&models[i]))
	}
	return categories, total, nil
}

func (r *categoryRepository) DeleteByOwner(ctx context.Context, ownerID uuid.UUID) (int64, error) {
	result := r.db.WithContext(ctx).Where("owner_id = ?", ownerID).Delete(&model.CategoryModel{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to delete categories: %w", result.Error)
	}
	return result.RowsAffected, nil
}
