package repository

import (
	"context"
	"errors"

	"chorus/internal/cache"
	"chorus/internal/models"

	"gorm.io/gorm"
)

// AlbumRepository defines persistence operations for albums.
type AlbumRepository interface {
	GetByID(ctx context.Context, id uint) (*models.Album, error)
	Create(ctx context.Context, album *models.Album) error
	Update(ctx context.Context, album *models.Album) error
	ListVisible(ctx context.Context, requesterArtistID uint, limit, offset int) ([]models.Album, error)
	CountVisible(ctx context.Context, requesterArtistID uint) (int64, error)
	ListByArtist(ctx context.Context, artistID, requesterArtistID uint, limit, offset int) ([]models.Album, error)
	CountByArtist(ctx context.Context, artistID, requesterArtistID uint) (int64, error)
	Search(ctx context.Context, f AlbumFilter, requesterArtistID uint, limit, offset int) ([]models.Album, error)
	CountSearch(ctx context.Context, f AlbumFilter, requesterArtistID uint) (int64, error)
}

// AlbumFilter narrows album searches by exact field equality. Zero values
// leave the corresponding field unconstrained.
type AlbumFilter struct {
	Title    string
	Category string
	Year     int
}

type albumRepository struct {
	db *gorm.DB
}

// NewAlbumRepository returns a new AlbumRepository implementation.
func NewAlbumRepository(db *gorm.DB) AlbumRepository {
	return &albumRepository{db: db}
}

// visibleAlbums narrows a query to albums the requester may see: published
// and not withdrawn, or owned by the requester's artist profile.
func visibleAlbums(db *gorm.DB, requesterArtistID uint) *gorm.DB {
	if requesterArtistID == 0 {
		return db.Where("visibility = ? AND deleted = ?", true, false)
	}
	return db.Where("(visibility = ? AND deleted = ?) OR artist_id = ?", true, false, requesterArtistID)
}

func (r *albumRepository) GetByID(ctx context.Context, id uint) (*models.Album, error) {
	var album models.Album
	key := cache.AlbumKey(id)

	err := cache.Aside(ctx, key, &album, cache.AlbumTTL, func() error {
		if err := r.db.WithContext(ctx).
			Preload("Artist").
			Preload("Songs", "deleted = ?", false).
			First(&album, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.NewNotFoundError("Album")
			}
			return models.NewInternalError(err)
		}
		return nil
	})

	if err != nil {
		return nil, err
	}
	return &album, nil
}

func (r *albumRepository) Create(ctx context.Context, album *models.Album) error {
	if err := r.db.WithContext(ctx).Create(album).Error; err != nil {
		if isUniqueConstraintError(err) {
			return models.NewConflictError("This artist already has an album with this title")
		}
		return models.NewInternalError(err)
	}
	return nil
}

func (r *albumRepository) Update(ctx context.Context, album *models.Album) error {
	if err := r.db.WithContext(ctx).Save(album).Error; err != nil {
		if isUniqueConstraintError(err) {
			return models.NewConflictError("This artist already has an album with this title")
		}
		return models.NewInternalError(err)
	}
	cache.InvalidateAlbum(ctx, album.ID)
	return nil
}

func (r *albumRepository) ListVisible(ctx context.Context, requesterArtistID uint, limit, offset int) ([]models.Album, error) {
	var albums []models.Album
	q := visibleAlbums(r.db.WithContext(ctx), requesterArtistID)
	if err := q.Preload("Artist").Limit(limit).Offset(offset).Order("id ASC").Find(&albums).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return albums, nil
}

func (r *albumRepository) CountVisible(ctx context.Context, requesterArtistID uint) (int64, error) {
	var count int64
	q := visibleAlbums(r.db.WithContext(ctx).Model(&models.Album{}), requesterArtistID)
	if err := q.Count(&count).Error; err != nil {
		return 0, models.NewInternalError(err)
	}
	return count, nil
}

func (r *albumRepository) ListByArtist(ctx context.Context, artistID, requesterArtistID uint, limit, offset int) ([]models.Album, error) {
	var albums []models.Album
	q := visibleAlbums(r.db.WithContext(ctx).Where("artist_id = ?", artistID), requesterArtistID)
	if err := q.Limit(limit).Offset(offset).Order("year DESC, id ASC").Find(&albums).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return albums, nil
}

func applyAlbumFilter(db *gorm.DB, f AlbumFilter) *gorm.DB {
	if f.Title != "" {
		db = db.Where("title = ?", f.Title)
	}
	if f.Category != "" {
		db = db.Where("category = ?", f.Category)
	}
	if f.Year != 0 {
		db = db.Where("year = ?", f.Year)
	}
	return db
}

func (r *albumRepository) Search(ctx context.Context, f AlbumFilter, requesterArtistID uint, limit, offset int) ([]models.Album, error) {
	var albums []models.Album
	q := visibleAlbums(applyAlbumFilter(r.db.WithContext(ctx), f), requesterArtistID)
	if err := q.Preload("Artist").Limit(limit).Offset(offset).Order("id ASC").Find(&albums).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return albums, nil
}

func (r *albumRepository) CountSearch(ctx context.Context, f AlbumFilter, requesterArtistID uint) (int64, error) {
	var count int64
	q := visibleAlbums(applyAlbumFilter(r.db.WithContext(ctx).Model(&models.Album{}), f), requesterArtistID)
	if err := q.Count(&count).Error; err != nil {
		return 0, models.NewInternalError(err)
	}
	return count, nil
}

func (r *albumRepository) CountByArtist(ctx context.Context, artistID, requesterArtistID uint) (int64, error) {
	var count int64
	q := visibleAlbums(r.db.WithContext(ctx).Model(&models.Album{}).Where("artist_id = ?", artistID), requesterArtistID)
	if err := q.Count(&count).Error; err != nil {
		return 0, models.NewInternalError(err)
	}
	return count, nil
}
