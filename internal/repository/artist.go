package repository

import (
	"context"
	"errors"

	"chorus/internal/cache"
	"chorus/internal/models"

	"gorm.io/gorm"
)

// ArtistRepository defines persistence operations for artist profiles.
type ArtistRepository interface {
	GetByID(ctx context.Context, id uint) (*models.Artist, error)
	GetByUserID(ctx context.Context, userID uint) (*models.Artist, error)
	GetByName(ctx context.Context, name string) (*models.Artist, error)
	Create(ctx context.Context, artist *models.Artist) error
	Update(ctx context.Context, artist *models.Artist) error
	List(ctx context.Context, limit, offset int) ([]models.Artist, error)
	Count(ctx context.Context) (int64, error)
	AddFollower(ctx context.Context, artistID, userID uint) error
	RemoveFollower(ctx context.Context, artistID, userID uint) error
	CountFollowers(ctx context.Context, artistID uint) (int64, error)
	ReplaceLabels(ctx context.Context, artist *models.Artist, labels []models.Label) error
}

type artistRepository struct {
	db *gorm.DB
}

// NewArtistRepository returns a new ArtistRepository implementation.
func NewArtistRepository(db *gorm.DB) ArtistRepository {
	return &artistRepository{db: db}
}

func (r *artistRepository) GetByID(ctx context.Context, id uint) (*models.Artist, error) {
	var artist models.Artist
	key := cache.ArtistKey(id)

	err := cache.Aside(ctx, key, &artist, cache.ArtistTTL, func() error {
		if err := r.db.WithContext(ctx).Preload("Labels").First(&artist, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.NewNotFoundError("Artist")
			}
			return models.NewInternalError(err)
		}
		return nil
	})

	if err != nil {
		return nil, err
	}
	return &artist, nil
}

func (r *artistRepository) GetByUserID(ctx context.Context, userID uint) (*models.Artist, error) {
	var artist models.Artist
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&artist).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, models.NewInternalError(err)
	}
	return &artist, nil
}

func (r *artistRepository) GetByName(ctx context.Context, name string) (*models.Artist, error) {
	var artist models.Artist
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&artist).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, models.NewInternalError(err)
	}
	return &artist, nil
}

func (r *artistRepository) Create(ctx context.Context, artist *models.Artist) error {
	if err := r.db.WithContext(ctx).Create(artist).Error; err != nil {
		if isUniqueConstraintError(err) {
			return models.NewConflictError("An artist profile with this name already exists")
		}
		return models.NewInternalError(err)
	}
	return nil
}

func (r *artistRepository) Update(ctx context.Context, artist *models.Artist) error {
	if err := r.db.WithContext(ctx).Save(artist).Error; err != nil {
		if isUniqueConstraintError(err) {
			return models.NewConflictError("An artist profile with this name already exists")
		}
		return models.NewInternalError(err)
	}
	cache.InvalidateArtist(ctx, artist.ID)
	return nil
}

// List returns active artists only; deactivated profiles are not discoverable.
func (r *artistRepository) List(ctx context.Context, limit, offset int) ([]models.Artist, error) {
	var artists []models.Artist
	if err := r.db.WithContext(ctx).Preload("Labels").Where("active = ?", true).Limit(limit).Offset(offset).Order("id ASC").Find(&artists).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return artists, nil
}

func (r *artistRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Artist{}).Where("active = ?", true).Count(&count).Error; err != nil {
		return 0, models.NewInternalError(err)
	}
	return count, nil
}

func (r *artistRepository) AddFollower(ctx context.Context, artistID, userID uint) error {
	err := r.db.WithContext(ctx).
		Model(&models.Artist{ID: artistID}).
		Association("Followers").
		Append(&models.User{ID: userID})
	if err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidateArtist(ctx, artistID)
	return nil
}

func (r *artistRepository) RemoveFollower(ctx context.Context, artistID, userID uint) error {
	err := r.db.WithContext(ctx).
		Model(&models.Artist{ID: artistID}).
		Association("Followers").
		Delete(&models.User{ID: userID})
	if err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidateArtist(ctx, artistID)
	return nil
}

func (r *artistRepository) CountFollowers(ctx context.Context, artistID uint) (int64, error) {
	count := r.db.WithContext(ctx).
		Model(&models.Artist{ID: artistID}).
		Association("Followers").
		Count()
	return count, nil
}

// ReplaceLabels overwrites the artist's label associations.
func (r *artistRepository) ReplaceLabels(ctx context.Context, artist *models.Artist, labels []models.Label) error {
	err := r.db.WithContext(ctx).Model(artist).Association("Labels").Replace(labels)
	if err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidateArtist(ctx, artist.ID)
	return nil
}
