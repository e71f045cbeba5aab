package service

import (
	"context"
	"testing"

	"chorus/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserService_UpdateProfile(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	activeUser := func(_ context.Context, id uint) (*models.User, error) {
		return &models.User{ID: id, Active: true, FirstName: "Ada", LastName: "Lovelace", Phone: "0612345678"}, nil
	}

	t.Run("invalid phone rejected", func(t *testing.T) {
		t.Parallel()
		svc := NewUserService(&userRepoStub{getByIDFn: activeUser}, nil)
		_, err := svc.UpdateProfile(ctx, UpdateProfileInput{UserID: 1, Phone: "123"})
		assertAppStatus(t, err, 400)
	})

	t.Run("phone already in use yields conflict", func(t *testing.T) {
		t.Parallel()
		repo := &userRepoStub{
			getByIDFn: activeUser,
			getByPhoneFn: func(_ context.Context, phone string) (*models.User, error) {
				return &models.User{ID: 2, Phone: phone}, nil
			},
		}
		svc := NewUserService(repo, nil)
		_, err := svc.UpdateProfile(ctx, UpdateProfileInput{UserID: 1, Phone: "0699999999"})
		assertAppStatus(t, err, 409)
	})

	t.Run("partial update keeps unset fields", func(t *testing.T) {
		t.Parallel()
		svc := NewUserService(&userRepoStub{getByIDFn: activeUser}, nil)
		user, err := svc.UpdateProfile(ctx, UpdateProfileInput{UserID: 1, FirstName: "Grace"})
		require.NoError(t, err)
		assert.Equal(t, "Grace", user.FirstName)
		assert.Equal(t, "Lovelace", user.LastName)
		assert.Equal(t, "0612345678", user.Phone)
	})

	t.Run("invalid sex rejected", func(t *testing.T) {
		t.Parallel()
		svc := NewUserService(&userRepoStub{getByIDFn: activeUser}, nil)
		bad := 3
		_, err := svc.UpdateProfile(ctx, UpdateProfileInput{UserID: 1, Sex: &bad})
		assertAppStatus(t, err, 400)
	})
}

func TestUserService_Deactivate(t *testing.T) {
	t.Parallel()

	var saved *models.User
	repo := &userRepoStub{
		getByIDFn: func(_ context.Context, id uint) (*models.User, error) {
			return &models.User{ID: id, Active: true}, nil
		},
		updateFn: func(_ context.Context, u *models.User) error {
			saved = u
			return nil
		},
	}
	svc := NewUserService(repo, nil)

	require.NoError(t, svc.Deactivate(context.Background(), 1))
	require.NotNil(t, saved)
	assert.False(t, saved.Active)
}

func TestUserService_GetProfile_InactiveHidden(t *testing.T) {
	t.Parallel()

	repo := &userRepoStub{getByIDFn: func(_ context.Context, id uint) (*models.User, error) {
		return &models.User{ID: id, Active: false}, nil
	}}
	svc := NewUserService(repo, nil)

	_, err := svc.GetProfile(context.Background(), 1)
	assertAppStatus(t, err, 404)
}
