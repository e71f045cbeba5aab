package service

import (
	"context"
	"testing"

	"chorus/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ownedAlbum(artistID uint) *albumRepoStub {
	return &albumRepoStub{getByIDFn: func(_ context.Context, id uint) (*models.Album, error) {
		return &models.Album{ID: id, ArtistID: artistID, Visibility: true}, nil
	}}
}

func TestSongService_Create(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("only the album owner may add songs", func(t *testing.T) {
		t.Parallel()
		svc := NewSongService(&songRepoStub{}, ownedAlbum(10), artistFor(2, 20), nil)
		_, err := svc.Create(ctx, CreateSongInput{UserID: 2, AlbumID: 1, Title: "Track"})
		assertAppStatus(t, err, 403)
	})

	t.Run("primary artist cannot feature on own song", func(t *testing.T) {
		t.Parallel()
		svc := NewSongService(&songRepoStub{}, ownedAlbum(10), artistFor(1, 10), nil)
		_, err := svc.Create(ctx, CreateSongInput{UserID: 1, AlbumID: 1, Title: "Track", FeaturingID: []uint{10}})
		assertAppStatus(t, err, 422)
	})

	t.Run("unknown featured artist answers 404", func(t *testing.T) {
		t.Parallel()
		artists := artistFor(1, 10)
		svc := NewSongService(&songRepoStub{}, ownedAlbum(10), artists, nil)
		_, err := svc.Create(ctx, CreateSongInput{UserID: 1, AlbumID: 1, Title: "Track", FeaturingID: []uint{55}})
		assertAppStatus(t, err, 404)
	})

	t.Run("happy path inherits album artist", func(t *testing.T) {
		t.Parallel()
		var created *models.Song
		songs := &songRepoStub{createFn: func(_ context.Context, s *models.Song) error {
			created = s
			return nil
		}}
		svc := NewSongService(songs, ownedAlbum(10), artistFor(1, 10), nil)

		_, err := svc.Create(ctx, CreateSongInput{UserID: 1, AlbumID: 1, Title: "Opener", Visibility: true})
		require.NoError(t, err)
		require.NotNil(t, created)
		assert.Equal(t, uint(10), created.ArtistID)
		assert.Equal(t, uint(1), created.AlbumID)
	})
}

func TestSongService_Get_Policy(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	hidden := &songRepoStub{getByIDFn: func(_ context.Context, id uint) (*models.Song, error) {
		return &models.Song{ID: id, ArtistID: 10, Visibility: false}, nil
	}}

	t.Run("hidden song answers 404 to strangers", func(t *testing.T) {
		t.Parallel()
		svc := NewSongService(hidden, &albumRepoStub{}, artistFor(2, 20), nil)
		_, err := svc.Get(ctx, 1, 2)
		assertAppStatus(t, err, 404)
	})

	t.Run("owner sees own hidden song", func(t *testing.T) {
		t.Parallel()
		svc := NewSongService(hidden, &albumRepoStub{}, artistFor(1, 10), nil)
		_, err := svc.Get(ctx, 1, 1)
		assert.NoError(t, err)
	})
}

func TestSongService_Delete_Soft(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	var saved *models.Song
	songs := &songRepoStub{
		getByIDFn: func(_ context.Context, id uint) (*models.Song, error) {
			return &models.Song{ID: id, ArtistID: 10, Visibility: true}, nil
		},
		updateFn: func(_ context.Context, s *models.Song) error {
			saved = s
			return nil
		},
	}
	svc := NewSongService(songs, &albumRepoStub{}, artistFor(1, 10), nil)

	require.NoError(t, svc.Delete(ctx, 1, 1))
	require.NotNil(t, saved)
	assert.True(t, saved.Deleted)
}
