package service

import (
	"context"
	"testing"
	"time"

	"chorus/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func birthDateForAge(age int) time.Time {
	return time.Now().AddDate(-age, 0, -1)
}

func TestArtistService_Become(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("under 16 rejected", func(t *testing.T) {
		t.Parallel()
		users := &userRepoStub{getByIDFn: func(_ context.Context, id uint) (*models.User, error) {
			return &models.User{ID: id, Active: true, BirthDate: birthDateForAge(15)}, nil
		}}
		svc := NewArtistService(&artistRepoStub{}, users, &labelRepoStub{}, nil)

		_, err := svc.Become(ctx, BecomeArtistInput{UserID: 1, Name: "Young One"})
		assertAppStatus(t, err, 422)
	})

	t.Run("16 accepted", func(t *testing.T) {
		t.Parallel()
		users := &userRepoStub{getByIDFn: func(_ context.Context, id uint) (*models.User, error) {
			return &models.User{ID: id, Active: true, BirthDate: birthDateForAge(16)}, nil
		}}
		var created *models.Artist
		artists := &artistRepoStub{createFn: func(_ context.Context, a *models.Artist) error {
			created = a
			return nil
		}}
		svc := NewArtistService(artists, users, &labelRepoStub{}, nil)

		artist, err := svc.Become(ctx, BecomeArtistInput{UserID: 1, Name: "Sixteen Candles"})
		require.NoError(t, err)
		assert.Equal(t, "Sixteen Candles", artist.Name)
		require.NotNil(t, created)
		assert.True(t, created.Active)
	})

	t.Run("second profile yields conflict", func(t *testing.T) {
		t.Parallel()
		users := &userRepoStub{getByIDFn: func(_ context.Context, id uint) (*models.User, error) {
			return &models.User{ID: id, Active: true, BirthDate: birthDateForAge(30)}, nil
		}}
		artists := &artistRepoStub{getByUserIDFn: func(_ context.Context, userID uint) (*models.Artist, error) {
			return &models.Artist{ID: 9, UserID: userID}, nil
		}}
		svc := NewArtistService(artists, users, &labelRepoStub{}, nil)

		_, err := svc.Become(ctx, BecomeArtistInput{UserID: 1, Name: "Second Try"})
		assertAppStatus(t, err, 409)
	})

	t.Run("taken name yields conflict", func(t *testing.T) {
		t.Parallel()
		users := &userRepoStub{getByIDFn: func(_ context.Context, id uint) (*models.User, error) {
			return &models.User{ID: id, Active: true, BirthDate: birthDateForAge(30)}, nil
		}}
		artists := &artistRepoStub{getByNameFn: func(_ context.Context, name string) (*models.Artist, error) {
			return &models.Artist{ID: 2, Name: name}, nil
		}}
		svc := NewArtistService(artists, users, &labelRepoStub{}, nil)

		_, err := svc.Become(ctx, BecomeArtistInput{UserID: 1, Name: "Taken"})
		assertAppStatus(t, err, 409)
	})

	t.Run("invalid name rejected", func(t *testing.T) {
		t.Parallel()
		users := &userRepoStub{getByIDFn: func(_ context.Context, id uint) (*models.User, error) {
			return &models.User{ID: id, Active: true, BirthDate: birthDateForAge(30)}, nil
		}}
		svc := NewArtistService(&artistRepoStub{}, users, &labelRepoStub{}, nil)

		_, err := svc.Become(ctx, BecomeArtistInput{UserID: 1, Name: ""})
		assertAppStatus(t, err, 400)
	})
}

func TestArtistService_Get_InactiveHidden(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	artists := &artistRepoStub{getByIDFn: func(_ context.Context, id uint) (*models.Artist, error) {
		return &models.Artist{ID: id, UserID: 7, Active: false}, nil
	}}
	svc := NewArtistService(artists, &userRepoStub{}, &labelRepoStub{}, nil)

	t.Run("non-owner gets 404", func(t *testing.T) {
		_, _, err := svc.Get(ctx, 3, 99)
		assertAppStatus(t, err, 404)
	})

	t.Run("owner still sees it", func(t *testing.T) {
		artist, _, err := svc.Get(ctx, 3, 7)
		require.NoError(t, err)
		assert.Equal(t, uint(3), artist.ID)
	})
}

func TestArtistService_Follow(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("cannot follow yourself", func(t *testing.T) {
		t.Parallel()
		artists := &artistRepoStub{getByIDFn: func(_ context.Context, id uint) (*models.Artist, error) {
			return &models.Artist{ID: id, UserID: 5, Active: true}, nil
		}}
		svc := NewArtistService(artists, &userRepoStub{}, &labelRepoStub{}, nil)

		err := svc.Follow(ctx, 1, 5)
		assertAppStatus(t, err, 422)
	})

	t.Run("inactive artist answers 404", func(t *testing.T) {
		t.Parallel()
		artists := &artistRepoStub{getByIDFn: func(_ context.Context, id uint) (*models.Artist, error) {
			return &models.Artist{ID: id, UserID: 5, Active: false}, nil
		}}
		svc := NewArtistService(artists, &userRepoStub{}, &labelRepoStub{}, nil)

		err := svc.Follow(ctx, 1, 9)
		assertAppStatus(t, err, 404)
	})

	t.Run("happy path records the follower", func(t *testing.T) {
		t.Parallel()
		var gotArtist, gotUser uint
		artists := &artistRepoStub{
			getByIDFn: func(_ context.Context, id uint) (*models.Artist, error) {
				return &models.Artist{ID: id, UserID: 5, Active: true}, nil
			},
			addFollowerFn: func(_ context.Context, artistID, userID uint) error {
				gotArtist, gotUser = artistID, userID
				return nil
			},
		}
		svc := NewArtistService(artists, &userRepoStub{}, &labelRepoStub{}, nil)

		require.NoError(t, svc.Follow(ctx, 1, 9))
		assert.Equal(t, uint(1), gotArtist)
		assert.Equal(t, uint(9), gotUser)
	})
}

func TestArtistService_Deactivate(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	var saved *models.Artist
	artists := &artistRepoStub{
		getByUserIDFn: func(_ context.Context, userID uint) (*models.Artist, error) {
			return &models.Artist{ID: 4, UserID: userID, Active: true}, nil
		},
		updateFn: func(_ context.Context, a *models.Artist) error {
			saved = a
			return nil
		},
	}
	svc := NewArtistService(artists, &userRepoStub{}, &labelRepoStub{}, nil)

	require.NoError(t, svc.Deactivate(ctx, 7))
	require.NotNil(t, saved)
	assert.False(t, saved.Active)
}
