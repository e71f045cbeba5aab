package service

import (
	"context"

	"chorus/internal/models"
	"chorus/internal/repository"
	"chorus/internal/validation"
)

type PlaylistService struct {
	playlistRepo repository.PlaylistRepository
	songRepo     repository.SongRepository
	artistRepo   repository.ArtistRepository
}

type CreatePlaylistInput struct {
	UserID uint
	Title  string
	Public bool
}

type UpdatePlaylistInput struct {
	UserID     uint
	PlaylistID uint
	Title      string
	Public     *bool
}

func NewPlaylistService(playlistRepo repository.PlaylistRepository, songRepo repository.SongRepository, artistRepo repository.ArtistRepository) *PlaylistService {
	return &PlaylistService{playlistRepo: playlistRepo, songRepo: songRepo, artistRepo: artistRepo}
}

func (s *PlaylistService) Create(ctx context.Context, in CreatePlaylistInput) (*models.Playlist, error) {
	if in.UserID == 0 {
		return nil, models.NewUnauthorizedError("Authentication required")
	}
	if err := validation.ValidateTitle(in.Title); err != nil {
		return nil, models.NewValidationError(err.Error())
	}

	playlist := &models.Playlist{
		Title:  in.Title,
		Public: in.Public,
		UserID: in.UserID,
	}
	if err := s.playlistRepo.Create(ctx, playlist); err != nil {
		return nil, err
	}
	return playlist, nil
}

// Get applies the read policy: private playlists answer 404 to non-owners.
func (s *PlaylistService) Get(ctx context.Context, playlistID, userID uint) (*models.Playlist, error) {
	playlist, err := s.playlistRepo.GetByID(ctx, playlistID)
	if err != nil {
		return nil, err
	}
	if err := notFoundIfHidden(playlist.VisibleTo(userID), "Playlist"); err != nil {
		return nil, err
	}
	return playlist, nil
}

func (s *PlaylistService) List(ctx context.Context, userID uint, limit, offset int) ([]models.Playlist, int64, error) {
	playlists, err := s.playlistRepo.ListVisible(ctx, userID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.playlistRepo.CountVisible(ctx, userID)
	if err != nil {
		return nil, 0, err
	}
	return playlists, total, nil
}

func (s *PlaylistService) getOwned(ctx context.Context, playlistID, userID uint) (*models.Playlist, error) {
	playlist, err := s.playlistRepo.GetByID(ctx, playlistID)
	if err != nil {
		return nil, err
	}
	if err := notFoundIfHidden(playlist.VisibleTo(userID), "Playlist"); err != nil {
		return nil, err
	}
	if err := requireOwnerUser(userID, playlist.UserID); err != nil {
		return nil, err
	}
	return playlist, nil
}

func (s *PlaylistService) Update(ctx context.Context, in UpdatePlaylistInput) (*models.Playlist, error) {
	playlist, err := s.getOwned(ctx, in.PlaylistID, in.UserID)
	if err != nil {
		return nil, err
	}

	if in.Title != "" {
		if err := validation.ValidateTitle(in.Title); err != nil {
			return nil, models.NewValidationError(err.Error())
		}
		playlist.Title = in.Title
	}
	if in.Public != nil {
		playlist.Public = *in.Public
	}

	if err := s.playlistRepo.Update(ctx, playlist); err != nil {
		return nil, err
	}
	return playlist, nil
}

func (s *PlaylistService) Delete(ctx context.Context, playlistID, userID uint) error {
	playlist, err := s.getOwned(ctx, playlistID, userID)
	if err != nil {
		return err
	}
	return s.playlistRepo.Delete(ctx, playlist.ID)
}

// AddSong appends a song to the playlist. The song must be visible to the
// caller; a duplicate entry yields 409.
func (s *PlaylistService) AddSong(ctx context.Context, playlistID, songID, userID uint) (*models.Playlist, error) {
	playlist, err := s.getOwned(ctx, playlistID, userID)
	if err != nil {
		return nil, err
	}

	requesterArtistID := uint(0)
	if artist, lookupErr := s.artistRepo.GetByUserID(ctx, userID); lookupErr != nil {
		return nil, lookupErr
	} else if artist != nil {
		requesterArtistID = artist.ID
	}

	song, err := s.songRepo.GetByID(ctx, songID)
	if err != nil {
		return nil, err
	}
	if err := notFoundIfHidden(song.VisibleTo(requesterArtistID), "Song"); err != nil {
		return nil, err
	}

	max, err := s.playlistRepo.MaxPosition(ctx, playlist.ID)
	if err != nil {
		return nil, err
	}
	if err := s.playlistRepo.AddSong(ctx, playlist.ID, song.ID, max+1); err != nil {
		return nil, err
	}

	return s.playlistRepo.GetByID(ctx, playlist.ID)
}

func (s *PlaylistService) RemoveSong(ctx context.Context, playlistID, songID, userID uint) error {
	playlist, err := s.getOwned(ctx, playlistID, userID)
	if err != nil {
		return err
	}
	return s.playlistRepo.RemoveSong(ctx, playlist.ID, songID)
}
