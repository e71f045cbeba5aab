package service

import (
	"context"
	"testing"

	"chorus/internal/models"
	"chorus/internal/repository"

	"github.com/stretchr/testify/require"
)

// Function-field stubs for each repository interface. Unset fields return
// zero values so each test only wires what it cares about.

type userRepoStub struct {
	getByIDFn         func(context.Context, uint) (*models.User, error)
	getByEmailFn      func(context.Context, string) (*models.User, error)
	getByPhoneFn      func(context.Context, string) (*models.User, error)
	getByResetTokenFn func(context.Context, string) (*models.User, error)
	createFn          func(context.Context, *models.User) error
	updateFn          func(context.Context, *models.User) error
	listFn            func(context.Context, int, int) ([]models.User, error)
	countFn           func(context.Context) (int64, error)
}

func (s *userRepoStub) GetByID(ctx context.Context, id uint) (*models.User, error) {
	if s.getByIDFn != nil {
		return s.getByIDFn(ctx, id)
	}
	return nil, models.NewNotFoundError("User")
}

func (s *userRepoStub) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	if s.getByEmailFn != nil {
		return s.getByEmailFn(ctx, email)
	}
	return nil, nil
}

func (s *userRepoStub) GetByPhone(ctx context.Context, phone string) (*models.User, error) {
	if s.getByPhoneFn != nil {
		return s.getByPhoneFn(ctx, phone)
	}
	return nil, nil
}

func (s *userRepoStub) GetByResetToken(ctx context.Context, token string) (*models.User, error) {
	if s.getByResetTokenFn != nil {
		return s.getByResetTokenFn(ctx, token)
	}
	return nil, nil
}

func (s *userRepoStub) Create(ctx context.Context, user *models.User) error {
	if s.createFn != nil {
		return s.createFn(ctx, user)
	}
	return nil
}

func (s *userRepoStub) Update(ctx context.Context, user *models.User) error {
	if s.updateFn != nil {
		return s.updateFn(ctx, user)
	}
	return nil
}

func (s *userRepoStub) List(ctx context.Context, limit, offset int) ([]models.User, error) {
	if s.listFn != nil {
		return s.listFn(ctx, limit, offset)
	}
	return nil, nil
}

func (s *userRepoStub) Count(ctx context.Context) (int64, error) {
	if s.countFn != nil {
		return s.countFn(ctx)
	}
	return 0, nil
}

type artistRepoStub struct {
	getByIDFn        func(context.Context, uint) (*models.Artist, error)
	getByUserIDFn    func(context.Context, uint) (*models.Artist, error)
	getByNameFn      func(context.Context, string) (*models.Artist, error)
	createFn         func(context.Context, *models.Artist) error
	updateFn         func(context.Context, *models.Artist) error
	listFn           func(context.Context, int, int) ([]models.Artist, error)
	countFn          func(context.Context) (int64, error)
	addFollowerFn    func(context.Context, uint, uint) error
	removeFollowerFn func(context.Context, uint, uint) error
	countFollowersFn func(context.Context, uint) (int64, error)
	replaceLabelsFn  func(context.Context, *models.Artist, []models.Label) error
}

func (s *artistRepoStub) GetByID(ctx context.Context, id uint) (*models.Artist, error) {
	if s.getByIDFn != nil {
		return s.getByIDFn(ctx, id)
	}
	return nil, models.NewNotFoundError("Artist")
}

func (s *artistRepoStub) GetByUserID(ctx context.Context, userID uint) (*models.Artist, error) {
	if s.getByUserIDFn != nil {
		return s.getByUserIDFn(ctx, userID)
	}
	return nil, nil
}

func (s *artistRepoStub) GetByName(ctx context.Context, name string) (*models.Artist, error) {
	if s.getByNameFn != nil {
		return s.getByNameFn(ctx, name)
	}
	return nil, nil
}

func (s *artistRepoStub) Create(ctx context.Context, artist *models.Artist) error {
	if s.createFn != nil {
		return s.createFn(ctx, artist)
	}
	return nil
}

func (s *artistRepoStub) Update(ctx context.Context, artist *models.Artist) error {
	if s.updateFn != nil {
		return s.updateFn(ctx, artist)
	}
	return nil
}

func (s *artistRepoStub) List(ctx context.Context, limit, offset int) ([]models.Artist, error) {
	if s.listFn != nil {
		return s.listFn(ctx, limit, offset)
	}
	return nil, nil
}

func (s *artistRepoStub) Count(ctx context.Context) (int64, error) {
	if s.countFn != nil {
		return s.countFn(ctx)
	}
	return 0, nil
}

func (s *artistRepoStub) AddFollower(ctx context.Context, artistID, userID uint) error {
	if s.addFollowerFn != nil {
		return s.addFollowerFn(ctx, artistID, userID)
	}
	return nil
}

func (s *artistRepoStub) RemoveFollower(ctx context.Context, artistID, userID uint) error {
	if s.removeFollowerFn != nil {
		return s.removeFollowerFn(ctx, artistID, userID)
	}
	return nil
}

func (s *artistRepoStub) CountFollowers(ctx context.Context, artistID uint) (int64, error) {
	if s.countFollowersFn != nil {
		return s.countFollowersFn(ctx, artistID)
	}
	return 0, nil
}

func (s *artistRepoStub) ReplaceLabels(ctx context.Context, artist *models.Artist, labels []models.Label) error {
	if s.replaceLabelsFn != nil {
		return s.replaceLabelsFn(ctx, artist, labels)
	}
	return nil
}

type labelRepoStub struct {
	getByIDFn   func(context.Context, uint) (*models.Label, error)
	getByNameFn func(context.Context, string) (*models.Label, error)
	createFn    func(context.Context, *models.Label) error
	updateFn    func(context.Context, *models.Label) error
	deleteFn    func(context.Context, uint) error
	listFn      func(context.Context, int, int) ([]models.Label, error)
	countFn     func(context.Context) (int64, error)
}

func (s *labelRepoStub) GetByID(ctx context.Context, id uint) (*models.Label, error) {
	if s.getByIDFn != nil {
		return s.getByIDFn(ctx, id)
	}
	return nil, models.NewNotFoundError("Label")
}

func (s *labelRepoStub) GetByName(ctx context.Context, name string) (*models.Label, error) {
	if s.getByNameFn != nil {
		return s.getByNameFn(ctx, name)
	}
	return nil, nil
}

func (s *labelRepoStub) Create(ctx context.Context, label *models.Label) error {
	if s.createFn != nil {
		return s.createFn(ctx, label)
	}
	return nil
}

func (s *labelRepoStub) Update(ctx context.Context, label *models.Label) error {
	if s.updateFn != nil {
		return s.updateFn(ctx, label)
	}
	return nil
}

func (s *labelRepoStub) Delete(ctx context.Context, id uint) error {
	if s.deleteFn != nil {
		return s.deleteFn(ctx, id)
	}
	return nil
}

func (s *labelRepoStub) List(ctx context.Context, limit, offset int) ([]models.Label, error) {
	if s.listFn != nil {
		return s.listFn(ctx, limit, offset)
	}
	return nil, nil
}

func (s *labelRepoStub) Count(ctx context.Context) (int64, error) {
	if s.countFn != nil {
		return s.countFn(ctx)
	}
	return 0, nil
}

type albumRepoStub struct {
	getByIDFn       func(context.Context, uint) (*models.Album, error)
	createFn        func(context.Context, *models.Album) error
	updateFn        func(context.Context, *models.Album) error
	listVisibleFn   func(context.Context, uint, int, int) ([]models.Album, error)
	countVisibleFn  func(context.Context, uint) (int64, error)
	listByArtistFn  func(context.Context, uint, uint, int, int) ([]models.Album, error)
	countByArtistFn func(context.Context, uint, uint) (int64, error)
	searchFn        func(context.Context, repository.AlbumFilter, uint, int, int) ([]models.Album, error)
	countSearchFn   func(context.Context, repository.AlbumFilter, uint) (int64, error)
}

func (s *albumRepoStub) GetByID(ctx context.Context, id uint) (*models.Album, error) {
	if s.getByIDFn != nil {
		return s.getByIDFn(ctx, id)
	}
	return nil, models.NewNotFoundError("Album")
}

func (s *albumRepoStub) Create(ctx context.Context, album *models.Album) error {
	if s.createFn != nil {
		return s.createFn(ctx, album)
	}
	return nil
}

func (s *albumRepoStub) Update(ctx context.Context, album *models.Album) error {
	if s.updateFn != nil {
		return s.updateFn(ctx, album)
	}
	return nil
}

func (s *albumRepoStub) ListVisible(ctx context.Context, requesterArtistID uint, limit, offset int) ([]models.Album, error) {
	if s.listVisibleFn != nil {
		return s.listVisibleFn(ctx, requesterArtistID, limit, offset)
	}
	return nil, nil
}

func (s *albumRepoStub) CountVisible(ctx context.Context, requesterArtistID uint) (int64, error) {
	if s.countVisibleFn != nil {
		return s.countVisibleFn(ctx, requesterArtistID)
	}
	return 0, nil
}

func (s *albumRepoStub) ListByArtist(ctx context.Context, artistID, requesterArtistID uint, limit, offset int) ([]models.Album, error) {
	if s.listByArtistFn != nil {
		return s.listByArtistFn(ctx, artistID, requesterArtistID, limit, offset)
	}
	return nil, nil
}

func (s *albumRepoStub) CountByArtist(ctx context.Context, artistID, requesterArtistID uint) (int64, error) {
	if s.countByArtistFn != nil {
		return s.countByArtistFn(ctx, artistID, requesterArtistID)
	}
	return 0, nil
}

func (s *albumRepoStub) Search(ctx context.Context, f repository.AlbumFilter, requesterArtistID uint, limit, offset int) ([]models.Album, error) {
	if s.searchFn != nil {
		return s.searchFn(ctx, f, requesterArtistID, limit, offset)
	}
	return nil, nil
}

func (s *albumRepoStub) CountSearch(ctx context.Context, f repository.AlbumFilter, requesterArtistID uint) (int64, error) {
	if s.countSearchFn != nil {
		return s.countSearchFn(ctx, f, requesterArtistID)
	}
	return 0, nil
}

type songRepoStub struct {
	getByIDFn          func(context.Context, uint) (*models.Song, error)
	createFn           func(context.Context, *models.Song) error
	updateFn           func(context.Context, *models.Song) error
	replaceFeaturingFn func(context.Context, *models.Song, []models.Artist) error
	listVisibleFn      func(context.Context, uint, int, int) ([]models.Song, error)
	countVisibleFn     func(context.Context, uint) (int64, error)
	listByAlbumFn      func(context.Context, uint, uint, int, int) ([]models.Song, error)
	countByAlbumFn     func(context.Context, uint, uint) (int64, error)
}

func (s *songRepoStub) GetByID(ctx context.Context, id uint) (*models.Song, error) {
	if s.getByIDFn != nil {
		return s.getByIDFn(ctx, id)
	}
	return nil, models.NewNotFoundError("Song")
}

func (s *songRepoStub) Create(ctx context.Context, song *models.Song) error {
	if s.createFn != nil {
		return s.createFn(ctx, song)
	}
	return nil
}

func (s *songRepoStub) Update(ctx context.Context, song *models.Song) error {
	if s.updateFn != nil {
		return s.updateFn(ctx, song)
	}
	return nil
}

func (s *songRepoStub) ReplaceFeaturing(ctx context.Context, song *models.Song, featuring []models.Artist) error {
	if s.replaceFeaturingFn != nil {
		return s.replaceFeaturingFn(ctx, song, featuring)
	}
	return nil
}

func (s *songRepoStub) ListVisible(ctx context.Context, requesterArtistID uint, limit, offset int) ([]models.Song, error) {
	if s.listVisibleFn != nil {
		return s.listVisibleFn(ctx, requesterArtistID, limit, offset)
	}
	return nil, nil
}

func (s *songRepoStub) CountVisible(ctx context.Context, requesterArtistID uint) (int64, error) {
	if s.countVisibleFn != nil {
		return s.countVisibleFn(ctx, requesterArtistID)
	}
	return 0, nil
}

func (s *songRepoStub) ListByAlbum(ctx context.Context, albumID, requesterArtistID uint, limit, offset int) ([]models.Song, error) {
	if s.listByAlbumFn != nil {
		return s.listByAlbumFn(ctx, albumID, requesterArtistID, limit, offset)
	}
	return nil, nil
}

func (s *songRepoStub) CountByAlbum(ctx context.Context, albumID, requesterArtistID uint) (int64, error) {
	if s.countByAlbumFn != nil {
		return s.countByAlbumFn(ctx, albumID, requesterArtistID)
	}
	return 0, nil
}

type playlistRepoStub struct {
	getByIDFn      func(context.Context, uint) (*models.Playlist, error)
	createFn       func(context.Context, *models.Playlist) error
	updateFn       func(context.Context, *models.Playlist) error
	deleteFn       func(context.Context, uint) error
	listVisibleFn  func(context.Context, uint, int, int) ([]models.Playlist, error)
	countVisibleFn func(context.Context, uint) (int64, error)
	addSongFn      func(context.Context, uint, uint, int) error
	removeSongFn   func(context.Context, uint, uint) error
	maxPositionFn  func(context.Context, uint) (int, error)
}

func (s *playlistRepoStub) GetByID(ctx context.Context, id uint) (*models.Playlist, error) {
	if s.getByIDFn != nil {
		return s.getByIDFn(ctx, id)
	}
	return nil, models.NewNotFoundError("Playlist")
}

func (s *playlistRepoStub) Create(ctx context.Context, playlist *models.Playlist) error {
	if s.createFn != nil {
		return s.createFn(ctx, playlist)
	}
	return nil
}

func (s *playlistRepoStub) Update(ctx context.Context, playlist *models.Playlist) error {
	if s.updateFn != nil {
		return s.updateFn(ctx, playlist)
	}
	return nil
}

func (s *playlistRepoStub) Delete(ctx context.Context, id uint) error {
	if s.deleteFn != nil {
		return s.deleteFn(ctx, id)
	}
	return nil
}

func (s *playlistRepoStub) ListVisible(ctx context.Context, requesterUserID uint, limit, offset int) ([]models.Playlist, error) {
	if s.listVisibleFn != nil {
		return s.listVisibleFn(ctx, requesterUserID, limit, offset)
	}
	return nil, nil
}

func (s *playlistRepoStub) CountVisible(ctx context.Context, requesterUserID uint) (int64, error) {
	if s.countVisibleFn != nil {
		return s.countVisibleFn(ctx, requesterUserID)
	}
	return 0, nil
}

func (s *playlistRepoStub) AddSong(ctx context.Context, playlistID, songID uint, position int) error {
	if s.addSongFn != nil {
		return s.addSongFn(ctx, playlistID, songID, position)
	}
	return nil
}

func (s *playlistRepoStub) RemoveSong(ctx context.Context, playlistID, songID uint) error {
	if s.removeSongFn != nil {
		return s.removeSongFn(ctx, playlistID, songID)
	}
	return nil
}

func (s *playlistRepoStub) MaxPosition(ctx context.Context, playlistID uint) (int, error) {
	if s.maxPositionFn != nil {
		return s.maxPositionFn(ctx, playlistID)
	}
	return 0, nil
}

func assertAppStatus(t *testing.T, err error, status int) {
	t.Helper()
	require.Error(t, err)
	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	require.Equal(t, status, appErr.Status)
}
