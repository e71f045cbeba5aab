package service

import (
	"context"

	"chorus/internal/models"
	"chorus/internal/repository"
	"chorus/internal/validation"
)

type SongService struct {
	songRepo   repository.SongRepository
	albumRepo  repository.AlbumRepository
	artistRepo repository.ArtistRepository
	media      *MediaService
}

type CreateSongInput struct {
	UserID      uint
	AlbumID     uint
	Title       string
	Visibility  bool
	FeaturingID []uint
}

type UpdateSongInput struct {
	UserID     uint
	SongID     uint
	Title      string
	Visibility *bool
}

func NewSongService(songRepo repository.SongRepository, albumRepo repository.AlbumRepository, artistRepo repository.ArtistRepository, media *MediaService) *SongService {
	return &SongService{songRepo: songRepo, albumRepo: albumRepo, artistRepo: artistRepo, media: media}
}

func (s *SongService) requesterArtistID(ctx context.Context, userID uint) (uint, error) {
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

// Create adds a song to an album the caller owns. Featured artists must
// exist and may not include the primary artist.
func (s *SongService) Create(ctx context.Context, in CreateSongInput) (*models.Song, error) {
	if in.UserID == 0 {
		return nil, models.NewUnauthorizedError("Authentication required")
	}
	requesterID, err := s.requesterArtistID(ctx, in.UserID)
	if err != nil {
		return nil, err
	}

	album, err := s.albumRepo.GetByID(ctx, in.AlbumID)
	if err != nil {
		return nil, err
	}
	if err := notFoundIfHidden(album.VisibleTo(requesterID), "Album"); err != nil {
		return nil, err
	}
	if err := requireOwnerArtist(requesterID, album.ArtistID); err != nil {
		return nil, err
	}

	if err := validation.ValidateTitle(in.Title); err != nil {
		return nil, models.NewValidationError(err.Error())
	}

	featuring := make([]models.Artist, 0, len(in.FeaturingID))
	for _, id := range in.FeaturingID {
		if id == requesterID {
			return nil, models.NewSemanticError("The primary artist cannot also be featured")
		}
		featured, lookupErr := s.artistRepo.GetByID(ctx, id)
		if lookupErr != nil {
			return nil, lookupErr
		}
		featuring = append(featuring, *featured)
	}

	song := &models.Song{
		Title:      in.Title,
		Visibility: in.Visibility,
		AlbumID:    album.ID,
		ArtistID:   album.ArtistID,
		Featuring:  featuring,
	}
	if err := s.songRepo.Create(ctx, song); err != nil {
		return nil, err
	}
	return song, nil
}

func (s *SongService) Get(ctx context.Context, songID, userID uint) (*models.Song, error) {
	requesterID, err := s.requesterArtistID(ctx, userID)
	if err != nil {
		return nil, err
	}

	song, err := s.songRepo.GetByID(ctx, songID)
	if err != nil {
		return nil, err
	}
	if err := notFoundIfHidden(song.VisibleTo(requesterID), "Song"); err != nil {
		return nil, err
	}
	return song, nil
}

func (s *SongService) ListByAlbum(ctx context.Context, albumID, userID uint, limit, offset int) ([]models.Song, int64, error) {
	requesterID, err := s.requesterArtistID(ctx, userID)
	if err != nil {
		return nil, 0, err
	}

	album, err := s.albumRepo.GetByID(ctx, albumID)
	if err != nil {
		return nil, 0, err
	}
	if err := notFoundIfHidden(album.VisibleTo(requesterID), "Album"); err != nil {
		return nil, 0, err
	}

	songs, err := s.songRepo.ListByAlbum(ctx, albumID, requesterID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.songRepo.CountByAlbum(ctx, albumID, requesterID)
	if err != nil {
		return nil, 0, err
	}
	return songs, total, nil
}

func (s *SongService) getOwned(ctx context.Context, songID, userID uint) (*models.Song, error) {
	if userID == 0 {
		return nil, models.NewUnauthorizedError("Authentication required")
	}
	requesterID, err := s.requesterArtistID(ctx, userID)
	if err != nil {
		return nil, err
	}

	song, err := s.songRepo.GetByID(ctx, songID)
	if err != nil {
		return nil, err
	}
	if err := notFoundIfHidden(song.VisibleTo(requesterID), "Song"); err != nil {
		return nil, err
	}
	if err := requireOwnerArtist(requesterID, song.ArtistID); err != nil {
		return nil, err
	}
	return song, nil
}

func (s *SongService) Update(ctx context.Context, in UpdateSongInput) (*models.Song, error) {
	song, err := s.getOwned(ctx, in.SongID, in.UserID)
	if err != nil {
		return nil, err
	}

	if in.Title != "" {
		if err := validation.ValidateTitle(in.Title); err != nil {
			return nil, models.NewValidationError(err.Error())
		}
		song.Title = in.Title
	}
	if in.Visibility != nil {
		song.Visibility = *in.Visibility
	}

	if err := s.songRepo.Update(ctx, song); err != nil {
		return nil, err
	}
	return song, nil
}

// Delete withdraws the song. The row stays and remains owner-visible.
func (s *SongService) Delete(ctx context.Context, songID, userID uint) error {
	song, err := s.getOwned(ctx, songID, userID)
	if err != nil {
		return err
	}
	song.Deleted = true
	return s.songRepo.Update(ctx, song)
}

// UpdateAudio replaces the song's audio track after the upload guard.
func (s *SongService) UpdateAudio(ctx context.Context, songID, userID uint, dataURL string) (*models.Song, error) {
	song, err := s.getOwned(ctx, songID, userID)
	if err != nil {
		return nil, err
	}

	rel, err := s.media.Replace(MediaKindAudio, dataURL, song.Audio)
	if err != nil {
		return nil, err
	}
	song.Audio = rel

	if err := s.songRepo.Update(ctx, song); err != nil {
		return nil, err
	}
	return song, nil
}

// UpdateCover replaces the song's cover image after the upload guard.
func (s *SongService) UpdateCover(ctx context.Context, songID, userID uint, dataURL string) (*models.Song, error) {
	song, err := s.getOwned(ctx, songID, userID)
	if err != nil {
		return nil, err
	}

	rel, err := s.media.Replace(MediaKindCover, dataURL, song.Cover)
	if err != nil {
		return nil, err
	}
	song.Cover = rel

	if err := s.songRepo.Update(ctx, song); err != nil {
		return nil, err
	}
	return song, nil
}
