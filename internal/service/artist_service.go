package service

import (
	"context"
	"time"

	"chorus/internal/models"
	"chorus/internal/repository"
	"chorus/internal/validation"
)

type ArtistService struct {
	artistRepo repository.ArtistRepository
	userRepo   repository.UserRepository
	labelRepo  repository.LabelRepository
	media      *MediaService
}

type BecomeArtistInput struct {
	UserID    uint
	Name      string
	Biography string
}

type UpdateArtistInput struct {
	UserID    uint
	Name      string
	Biography *string
	LabelIDs  []uint
}

func NewArtistService(artistRepo repository.ArtistRepository, userRepo repository.UserRepository, labelRepo repository.LabelRepository, media *MediaService) *ArtistService {
	return &ArtistService{artistRepo: artistRepo, userRepo: userRepo, labelRepo: labelRepo, media: media}
}

// Become creates the caller's artist profile. Requires the user to be at
// least 16 and to not already have one.
func (s *ArtistService) Become(ctx context.Context, in BecomeArtistInput) (*models.Artist, error) {
	user, err := s.userRepo.GetByID(ctx, in.UserID)
	if err != nil {
		return nil, err
	}

	if user.Age(time.Now()) < validation.MinArtistAge {
		return nil, models.NewSemanticError("You must be at least 16 to create an artist profile")
	}

	existing, err := s.artistRepo.GetByUserID(ctx, in.UserID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, models.NewConflictError("You already have an artist profile")
	}

	if err := validation.ValidateArtistName(in.Name); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	if taken, err := s.artistRepo.GetByName(ctx, in.Name); err != nil {
		return nil, err
	} else if taken != nil {
		return nil, models.NewConflictError("An artist profile with this name already exists")
	}

	artist := &models.Artist{
		UserID:    in.UserID,
		Name:      in.Name,
		Biography: in.Biography,
		Active:    true,
	}
	if err := s.artistRepo.Create(ctx, artist); err != nil {
		return nil, err
	}
	return artist, nil
}

// Get returns an artist profile. Deactivated profiles answer 404 to everyone
// but their owner.
func (s *ArtistService) Get(ctx context.Context, id, requesterUserID uint) (*models.Artist, int64, error) {
	artist, err := s.artistRepo.GetByID(ctx, id)
	if err != nil {
		return nil, 0, err
	}
	if !artist.Active && artist.UserID != requesterUserID {
		return nil, 0, models.NewNotFoundError("Artist")
	}

	followers, err := s.artistRepo.CountFollowers(ctx, artist.ID)
	if err != nil {
		return nil, 0, err
	}
	return artist, followers, nil
}

// GetOwn resolves the caller's artist profile, 404 when they have none.
func (s *ArtistService) GetOwn(ctx context.Context, userID uint) (*models.Artist, error) {
	artist, err := s.artistRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if artist == nil {
		return nil, models.NewNotFoundError("Artist")
	}
	return artist, nil
}

func (s *ArtistService) List(ctx context.Context, limit, offset int) ([]models.Artist, int64, error) {
	artists, err := s.artistRepo.List(ctx, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.artistRepo.Count(ctx)
	if err != nil {
		return nil, 0, err
	}
	return artists, total, nil
}

func (s *ArtistService) Update(ctx context.Context, in UpdateArtistInput) (*models.Artist, error) {
	artist, err := s.GetOwn(ctx, in.UserID)
	if err != nil {
		return nil, err
	}

	if in.Name != "" && in.Name != artist.Name {
		if err := validation.ValidateArtistName(in.Name); err != nil {
			return nil, models.NewValidationError(err.Error())
		}
		if taken, lookupErr := s.artistRepo.GetByName(ctx, in.Name); lookupErr != nil {
			return nil, lookupErr
		} else if taken != nil && taken.ID != artist.ID {
			return nil, models.NewConflictError("An artist profile with this name already exists")
		}
		artist.Name = in.Name
	}
	if in.Biography != nil {
		artist.Biography = *in.Biography
	}

	if err := s.artistRepo.Update(ctx, artist); err != nil {
		return nil, err
	}

	if in.LabelIDs != nil {
		labels := make([]models.Label, 0, len(in.LabelIDs))
		for _, id := range in.LabelIDs {
			label, lookupErr := s.labelRepo.GetByID(ctx, id)
			if lookupErr != nil {
				return nil, lookupErr
			}
			labels = append(labels, *label)
		}
		if err := s.artistRepo.ReplaceLabels(ctx, artist, labels); err != nil {
			return nil, err
		}
		artist.Labels = labels
	}

	return artist, nil
}

// Deactivate soft-deletes the caller's artist profile.
func (s *ArtistService) Deactivate(ctx context.Context, userID uint) error {
	artist, err := s.GetOwn(ctx, userID)
	if err != nil {
		return err
	}
	artist.Active = false
	return s.artistRepo.Update(ctx, artist)
}

// UpdateAvatar runs the payload through the upload guard and swaps the stored file.
func (s *ArtistService) UpdateAvatar(ctx context.Context, userID uint, dataURL string) (*models.Artist, error) {
	artist, err := s.GetOwn(ctx, userID)
	if err != nil {
		return nil, err
	}

	rel, err := s.media.Replace(MediaKindAvatar, dataURL, artist.Avatar)
	if err != nil {
		return nil, err
	}
	artist.Avatar = rel

	if err := s.artistRepo.Update(ctx, artist); err != nil {
		return nil, err
	}
	return artist, nil
}

// Follow subscribes a user to an artist. Hidden artists answer 404.
func (s *ArtistService) Follow(ctx context.Context, artistID, userID uint) error {
	artist, err := s.artistRepo.GetByID(ctx, artistID)
	if err != nil {
		return err
	}
	if !artist.Active && artist.UserID != userID {
		return models.NewNotFoundError("Artist")
	}
	if artist.UserID == userID {
		return models.NewSemanticError("You cannot follow yourself")
	}
	return s.artistRepo.AddFollower(ctx, artistID, userID)
}

func (s *ArtistService) Unfollow(ctx context.Context, artistID, userID uint) error {
	if _, err := s.artistRepo.GetByID(ctx, artistID); err != nil {
		return err
	}
	return s.artistRepo.RemoveFollower(ctx, artistID, userID)
}
