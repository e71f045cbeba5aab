package service

import (
	"context"

	"chorus/internal/models"
	"chorus/internal/repository"
	"chorus/internal/validation"
)

type UserService struct {
	userRepo repository.UserRepository
	media    *MediaService
}

type UpdateProfileInput struct {
	UserID    uint
	FirstName string
	LastName  string
	Phone     string
	Sex       *int
}

func NewUserService(userRepo repository.UserRepository, media *MediaService) *UserService {
	return &UserService{userRepo: userRepo, media: media}
}

func (s *UserService) GetProfile(ctx context.Context, id uint) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !user.Active {
		return nil, models.NewNotFoundError("User")
	}
	return user, nil
}

func (s *UserService) UpdateProfile(ctx context.Context, in UpdateProfileInput) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, in.UserID)
	if err != nil {
		return nil, err
	}

	if in.FirstName != "" {
		if err := validation.ValidatePersonName("first name", in.FirstName); err != nil {
			return nil, models.NewValidationError(err.Error())
		}
		user.FirstName = in.FirstName
	}
	if in.LastName != "" {
		if err := validation.ValidatePersonName("last name", in.LastName); err != nil {
			return nil, models.NewValidationError(err.Error())
		}
		user.LastName = in.LastName
	}
	if in.Phone != "" {
		if err := validation.ValidatePhone(in.Phone); err != nil {
			return nil, models.NewValidationError(err.Error())
		}
		if existing, lookupErr := s.userRepo.GetByPhone(ctx, in.Phone); lookupErr != nil {
			return nil, lookupErr
		} else if existing != nil && existing.ID != user.ID {
			return nil, models.NewConflictError("An account with this phone already exists")
		}
		user.Phone = in.Phone
	}
	if in.Sex != nil {
		if err := validation.ValidateSex(*in.Sex); err != nil {
			return nil, models.NewValidationError(err.Error())
		}
		user.Sex = *in.Sex
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Deactivate performs the soft account deletion: the row stays, Active drops.
func (s *UserService) Deactivate(ctx context.Context, userID uint) error {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	user.Active = false
	return s.userRepo.Update(ctx, user)
}

// UpdateAvatar runs the payload through the upload guard and swaps the stored file.
func (s *UserService) UpdateAvatar(ctx context.Context, userID uint, dataURL string) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	rel, err := s.media.Replace(MediaKindAvatar, dataURL, user.Avatar)
	if err != nil {
		return nil, err
	}
	user.Avatar = rel

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}
