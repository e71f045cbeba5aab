package service

import (
	"context"
	"time"

	"chorus/internal/models"
	"chorus/internal/repository"
	"chorus/internal/validation"
)

type AlbumService struct {
	albumRepo  repository.AlbumRepository
	artistRepo repository.ArtistRepository
	media      *MediaService
}

type CreateAlbumInput struct {
	UserID     uint
	Title      string
	Category   string
	Year       int
	Visibility bool
}

type UpdateAlbumInput struct {
	UserID     uint
	AlbumID    uint
	Title      string
	Category   string
	Year       int
	Visibility *bool
}

type SearchAlbumsInput struct {
	UserID   uint
	Title    string
	Category string
	Year     int
}

func NewAlbumService(albumRepo repository.AlbumRepository, artistRepo repository.ArtistRepository, media *MediaService) *AlbumService {
	return &AlbumService{albumRepo: albumRepo, artistRepo: artistRepo, media: media}
}

// requesterArtistID resolves the artist profile backing a user identity.
// Anonymous users and users without a profile map to 0.
func (s *AlbumService) requesterArtistID(ctx context.Context, userID uint) (uint, error) {
	if userID == 0 {
		return 0, nil
	}
	artist, err := s.artistRepo.GetByUserID(ctx, userID)
	if err != nil {
		return 0, err
	}
	if artist == nil {
		return 0, nil
	}
	return artist.ID, nil
}

func (s *AlbumService) Create(ctx context.Context, in CreateAlbumInput) (*models.Album, error) {
	if in.UserID == 0 {
		return nil, models.NewUnauthorizedError("Authentication required")
	}
	artist, err := s.artistRepo.GetByUserID(ctx, in.UserID)
	if err != nil {
		return nil, err
	}
	if artist == nil {
		return nil, models.NewForbiddenError("An artist profile is required to publish albums")
	}

	if err := validation.ValidateTitle(in.Title); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	if err := validation.ValidateCategory(in.Category); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	if err := validation.ValidateYear(in.Year, time.Now()); err != nil {
		return nil, models.NewValidationError(err.Error())
	}

	album := &models.Album{
		Title:      in.Title,
		Category:   in.Category,
		Year:       in.Year,
		Visibility: in.Visibility,
		ArtistID:   artist.ID,
	}
	if err := s.albumRepo.Create(ctx, album); err != nil {
		return nil, err
	}
	album.Artist = artist
	return album, nil
}

// Get applies the read policy: hidden or withdrawn albums answer 404 to
// everyone but their owner.
func (s *AlbumService) Get(ctx context.Context, albumID, userID uint) (*models.Album, error) {
	requesterID, err := s.requesterArtistID(ctx, userID)
	if err != nil {
		return nil, err
	}

	album, err := s.albumRepo.GetByID(ctx, albumID)
	if err != nil {
		return nil, err
	}
	if err := notFoundIfHidden(album.VisibleTo(requesterID), "Album"); err != nil {
		return nil, err
	}
	return album, nil
}

func (s *AlbumService) List(ctx context.Context, userID uint, limit, offset int) ([]models.Album, int64, error) {
	requesterID, err := s.requesterArtistID(ctx, userID)
	if err != nil {
		return nil, 0, err
	}

	albums, err := s.albumRepo.ListVisible(ctx, requesterID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.albumRepo.CountVisible(ctx, requesterID)
	if err != nil {
		return nil, 0, err
	}
	return albums, total, nil
}

func (s *AlbumService) ListByArtist(ctx context.Context, artistID, userID uint, limit, offset int) ([]models.Album, int64, error) {
	requesterID, err := s.requesterArtistID(ctx, userID)
	if err != nil {
		return nil, 0, err
	}

	albums, err := s.albumRepo.ListByArtist(ctx, artistID, requesterID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.albumRepo.CountByArtist(ctx, artistID, requesterID)
	if err != nil {
		return nil, 0, err
	}
	return albums, total, nil
}

// Search filters albums by exact title, category and year, under the same
// visibility policy as listing.
func (s *AlbumService) Search(ctx context.Context, in SearchAlbumsInput, limit, offset int) ([]models.Album, int64, error) {
	if in.Category != "" {
		if err := validation.ValidateCategory(in.Category); err != nil {
			return nil, 0, models.NewValidationError(err.Error())
		}
	}

	requesterID, err := s.requesterArtistID(ctx, in.UserID)
	if err != nil {
		return nil, 0, err
	}

	filter := repository.AlbumFilter{Title: in.Title, Category: in.Category, Year: in.Year}
	albums, err := s.albumRepo.Search(ctx, filter, requesterID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.albumRepo.CountSearch(ctx, filter, requesterID)
	if err != nil {
		return nil, 0, err
	}
	return albums, total, nil
}

// getOwned loads an album and checks the mutate rule.
func (s *AlbumService) getOwned(ctx context.Context, albumID, userID uint) (*models.Album, error) {
	if userID == 0 {
		return nil, models.NewUnauthorizedError("Authentication required")
	}
	requesterID, err := s.requesterArtistID(ctx, userID)
	if err != nil {
		return nil, err
	}

	album, err := s.albumRepo.GetByID(ctx, albumID)
	if err != nil {
		return nil, err
	}
	if err := notFoundIfHidden(album.VisibleTo(requesterID), "Album"); err != nil {
		return nil, err
	}
	if err := requireOwnerArtist(requesterID, album.ArtistID); err != nil {
		return nil, err
	}
	return album, nil
}

func (s *AlbumService) Update(ctx context.Context, in UpdateAlbumInput) (*models.Album, error) {
	album, err := s.getOwned(ctx, in.AlbumID, in.UserID)
	if err != nil {
		return nil, err
	}

	if in.Title != "" {
		if err := validation.ValidateTitle(in.Title); err != nil {
			return nil, models.NewValidationError(err.Error())
		}
		album.Title = in.Title
	}
	if in.Category != "" {
		if err := validation.ValidateCategory(in.Category); err != nil {
			return nil, models.NewValidationError(err.Error())
		}
		album.Category = in.Category
	}
	if in.Year != 0 {
		if err := validation.ValidateYear(in.Year, time.Now()); err != nil {
			return nil, models.NewValidationError(err.Error())
		}
		album.Year = in.Year
	}
	if in.Visibility != nil {
		album.Visibility = *in.Visibility
	}

	if err := s.albumRepo.Update(ctx, album); err != nil {
		return nil, err
	}
	return album, nil
}

// Delete withdraws the album. The row stays and remains owner-visible.
func (s *AlbumService) Delete(ctx context.Context, albumID, userID uint) error {
	album, err := s.getOwned(ctx, albumID, userID)
	if err != nil {
		return err
	}
	album.Deleted = true
	return s.albumRepo.Update(ctx, album)
}

// UpdateCover runs the payload through the upload guard and swaps the stored file.
func (s *AlbumService) UpdateCover(ctx context.Context, albumID, userID uint, dataURL string) (*models.Album, error) {
	album, err := s.getOwned(ctx, albumID, userID)
	if err != nil {
		return nil, err
	}

	rel, err := s.media.Replace(MediaKindCover, dataURL, album.Cover)
	if err != nil {
		return nil, err
	}
	album.Cover = rel

	if err := s.albumRepo.Update(ctx, album); err != nil {
		return nil, err
	}
	return album, nil
}
