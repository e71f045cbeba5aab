package repository

import (
	"context"
	"errors"

	"chorus/internal/cache"
	"chorus/internal/models"

	"gorm.io/gorm"
)

// PlaylistRepository defines persistence operations for playlists and their entries.
type PlaylistRepository interface {
	GetByID(ctx context.Context, id uint) (*models.Playlist, error)
	Create(ctx context.Context, playlist *models.Playlist) error
	Update(ctx context.Context, playlist *models.Playlist) error
	Delete(ctx context.Context, id uint) error
	ListVisible(ctx context.Context, requesterUserID uint, limit, offset int) ([]models.Playlist, error)
	CountVisible(ctx context.Context, requesterUserID uint) (int64, error)
	AddSong(ctx context.Context, playlistID, songID uint, position int) error
	RemoveSong(ctx context.Context, playlistID, songID uint) error
	MaxPosition(ctx context.Context, playlistID uint) (int, error)
}

type playlistRepository struct {
	db *gorm.DB
}

// NewPlaylistRepository returns a new PlaylistRepository implementation.
func NewPlaylistRepository(db *gorm.DB) PlaylistRepository {
	return &playlistRepository{db: db}
}

func visiblePlaylists(db *gorm.DB, requesterUserID uint) *gorm.DB {
	if requesterUserID == 0 {
		return db.Where("public = ?", true)
	}
	return db.Where("public = ? OR user_id = ?", true, requesterUserID)
}

func (r *playlistRepository) GetByID(ctx context.Context, id uint) (*models.Playlist, error) {
	var playlist models.Playlist
	key := cache.PlaylistKey(id)

	err := cache.Aside(ctx, key, &playlist, cache.PlaylistTTL, func() error {
		if err := r.db.WithContext(ctx).
			Preload("Entries", func(db *gorm.DB) *gorm.DB {
				return db.Order("position ASC")
			}).
			Preload("Entries.Song").
			First(&playlist, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.NewNotFoundError("Playlist")
			}
			return models.NewInternalError(err)
		}
		return nil
	})

	if err != nil {
		return nil, err
	}
	return &playlist, nil
}

func (r *playlistRepository) Create(ctx context.Context, playlist *models.Playlist) error {
	if err := r.db.WithContext(ctx).Create(playlist).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *playlistRepository) Update(ctx context.Context, playlist *models.Playlist) error {
	if err := r.db.WithContext(ctx).Save(playlist).Error; err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidatePlaylist(ctx, playlist.ID)
	return nil
}

func (r *playlistRepository) Delete(ctx context.Context, id uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("playlist_id = ?", id).Delete(&models.PlaylistSong{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Playlist{}, id).Error
	})
	if err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidatePlaylist(ctx, id)
	return nil
}

func (r *playlistRepository) ListVisible(ctx context.Context, requesterUserID uint, limit, offset int) ([]models.Playlist, error) {
	var playlists []models.Playlist
	q := visiblePlaylists(r.db.WithContext(ctx), requesterUserID)
	if err := q.Limit(limit).Offset(offset).Order("id ASC").Find(&playlists).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return playlists, nil
}

func (r *playlistRepository) CountVisible(ctx context.Context, requesterUserID uint) (int64, error) {
	var count int64
	q := visiblePlaylists(r.db.WithContext(ctx).Model(&models.Playlist{}), requesterUserID)
	if err := q.Count(&count).Error; err != nil {
		return 0, models.NewInternalError(err)
	}
	return count, nil
}

func (r *playlistRepository) AddSong(ctx context.Context, playlistID, songID uint, position int) error {
	entry := models.PlaylistSong{
		PlaylistID: playlistID,
		SongID:     songID,
		Position:   position,
	}
	if err := r.db.WithContext(ctx).Create(&entry).Error; err != nil {
		if isUniqueConstraintError(err) {
			return models.NewConflictError("This song is already in the playlist")
		}
		return models.NewInternalError(err)
	}
	cache.InvalidatePlaylist(ctx, playlistID)
	return nil
}

func (r *playlistRepository) RemoveSong(ctx context.Context, playlistID, songID uint) error {
	res := r.db.WithContext(ctx).
		Where("playlist_id = ? AND song_id = ?", playlistID, songID).
		Delete(&models.PlaylistSong{})
	if res.Error != nil {
		return models.NewInternalError(res.Error)
	}
	if res.RowsAffected == 0 {
		return models.NewNotFoundError("Playlist entry")
	}
	cache.InvalidatePlaylist(ctx, playlistID)
	return nil
}

// MaxPosition returns the highest entry position in the playlist, 0 when empty.
func (r *playlistRepository) MaxPosition(ctx context.Context, playlistID uint) (int, error) {
	var max int
	err := r.db.WithContext(ctx).
		Model(&models.PlaylistSong{}).
		Where("playlist_id = ?", playlistID).
		Select("COALESCE(MAX(position), 0)").
		Scan(&max).Error
	if err != nil {
		return 0, models.NewInternalError(err)
	}
	return max, nil
}
