package repository

import (
	"context"
	"errors"

	"chorus/internal/models"

	"gorm.io/gorm"
)

// SongRepository defines persistence operations for songs.
type SongRepository interface {
	GetByID(ctx context.Context, id uint) (*models.Song, error)
	Create(ctx context.Context, song *models.Song) error
	Update(ctx context.Context, song *models.Song) error
	ReplaceFeaturing(ctx context.Context, song *models.Song, featuring []models.Artist) error
	ListVisible(ctx context.Context, requesterArtistID uint, limit, offset int) ([]models.Song, error)
	CountVisible(ctx context.Context, requesterArtistID uint) (int64, error)
	ListByAlbum(ctx context.Context, albumID, requesterArtistID uint, limit, offset int) ([]models.Song, error)
	CountByAlbum(ctx context.Context, albumID, requesterArtistID uint) (int64, error)
}

type songRepository struct {
	db *gorm.DB
}

// NewSongRepository returns a new SongRepository implementation.
func NewSongRepository(db *gorm.DB) SongRepository {
	return &songRepository{db: db}
}

func visibleSongs(db *gorm.DB, requesterArtistID uint) *gorm.DB {
	if requesterArtistID == 0 {
		return db.Where("visibility = ? AND deleted = ?", true, false)
	}
	return db.Where("(visibility = ? AND deleted = ?) OR artist_id = ?", true, false, requesterArtistID)
}

func (r *songRepository) GetByID(ctx context.Context, id uint) (*models.Song, error) {
	var song models.Song
	if err := r.db.WithContext(ctx).
		Preload("Featuring").
		First(&song, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Song")
		}
		return nil, models.NewInternalError(err)
	}
	return &song, nil
}

func (r *songRepository) Create(ctx context.Context, song *models.Song) error {
	if err := r.db.WithContext(ctx).Create(song).Error; err != nil {
		if isUniqueConstraintError(err) {
			return models.NewConflictError("This song already exists")
		}
		return models.NewInternalError(err)
	}
	return nil
}

func (r *songRepository) Update(ctx context.Context, song *models.Song) error {
	if err := r.db.WithContext(ctx).Save(song).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

// ReplaceFeaturing overwrites the song's featured artist set.
func (r *songRepository) ReplaceFeaturing(ctx context.Context, song *models.Song, featuring []models.Artist) error {
	err := r.db.WithContext(ctx).Model(song).Association("Featuring").Replace(featuring)
	if err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *songRepository) ListVisible(ctx context.Context, requesterArtistID uint, limit, offset int) ([]models.Song, error) {
	var songs []models.Song
	q := visibleSongs(r.db.WithContext(ctx), requesterArtistID)
	if err := q.Preload("Featuring").Limit(limit).Offset(offset).Order("id ASC").Find(&songs).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return songs, nil
}

func (r *songRepository) CountVisible(ctx context.Context, requesterArtistID uint) (int64, error) {
	var count int64
	q := visibleSongs(r.db.WithContext(ctx).Model(&models.Song{}), requesterArtistID)
	if err := q.Count(&count).Error; err != nil {
		return 0, models.NewInternalError(err)
	}
	return count, nil
}

func (r *songRepository) ListByAlbum(ctx context.Context, albumID, requesterArtistID uint, limit, offset int) ([]models.Song, error) {
	var songs []models.Song
	q := visibleSongs(r.db.WithContext(ctx).Where("album_id = ?", albumID), requesterArtistID)
	if err := q.Limit(limit).Offset(offset).Order("id ASC").Find(&songs).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return songs, nil
}

func (r *songRepository) CountByAlbum(ctx context.Context, albumID, requesterArtistID uint) (int64, error) {
	var count int64
	q := visibleSongs(r.db.WithContext(ctx).Model(&models.Song{}).Where("album_id = ?", albumID), requesterArtistID)
	if err := q.Count(&count).Error; err != nil {
		return 0, models.NewInternalError(err)
	}
	return count, nil
}
