package repository

import (
	"context"
	"errors"

	"chorus/internal/cache"
	"chorus/internal/models"

	"gorm.io/gorm"
)

// LabelRepository defines persistence operations for record labels.
type LabelRepository interface {
	GetByID(ctx context.Context, id uint) (*models.Label, error)
	GetByName(ctx context.Context, name string) (*models.Label, error)
	Create(ctx context.Context, label *models.Label) error
	Update(ctx context.Context, label *models.Label) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, limit, offset int) ([]models.Label, error)
	Count(ctx context.Context) (int64, error)
}

type labelRepository struct {
	db *gorm.DB
}

// NewLabelRepository returns a new LabelRepository implementation.
func NewLabelRepository(db *gorm.DB) LabelRepository {
	return &labelRepository{db: db}
}

func (r *labelRepository) GetByID(ctx context.Context, id uint) (*models.Label, error) {
	var label models.Label
	if err := r.db.WithContext(ctx).Preload("Artists", "active = ?", true).First(&label, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Label")
		}
		return nil, models.NewInternalError(err)
	}
	return &label, nil
}

func (r *labelRepository) GetByName(ctx context.Context, name string) (*models.Label, error) {
	var label models.Label
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&label).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, models.NewInternalError(err)
	}
	return &label, nil
}

func (r *labelRepository) Create(ctx context.Context, label *models.Label) error {
	if err := r.db.WithContext(ctx).Create(label).Error; err != nil {
		if isUniqueConstraintError(err) {
			return models.NewConflictError("A label with this name already exists")
		}
		return models.NewInternalError(err)
	}
	cache.Invalidate(ctx, cache.LabelListKey)
	return nil
}

func (r *labelRepository) Update(ctx context.Context, label *models.Label) error {
	if err := r.db.WithContext(ctx).Save(label).Error; err != nil {
		if isUniqueConstraintError(err) {
			return models.NewConflictError("A label with this name already exists")
		}
		return models.NewInternalError(err)
	}
	cache.Invalidate(ctx, cache.LabelListKey)
	return nil
}

func (r *labelRepository) Delete(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).Delete(&models.Label{}, id).Error; err != nil {
		return models.NewInternalError(err)
	}
	cache.Invalidate(ctx, cache.LabelListKey)
	return nil
}

func (r *labelRepository) List(ctx context.Context, limit, offset int) ([]models.Label, error) {
	var labels []models.Label
	if err := r.db.WithContext(ctx).Limit(limit).Offset(offset).Order("name ASC").Find(&labels).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return labels, nil
}

func (r *labelRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Label{}).Count(&count).Error; err != nil {
		return 0, models.NewInternalError(err)
	}
	return count, nil
}
