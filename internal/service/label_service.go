package service

import (
	"context"

	"chorus/internal/models"
	"chorus/internal/repository"
)

type LabelService struct {
	labelRepo repository.LabelRepository
}

func NewLabelService(labelRepo repository.LabelRepository) *LabelService {
	return &LabelService{labelRepo: labelRepo}
}

func (s *LabelService) List(ctx context.Context, limit, offset int) ([]models.Label, int64, error) {
	labels, err := s.labelRepo.List(ctx, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.labelRepo.Count(ctx)
	if err != nil {
		return nil, 0, err
	}
	return labels, total, nil
}

func (s *LabelService) Get(ctx context.Context, id uint) (*models.Label, error) {
	return s.labelRepo.GetByID(ctx, id)
}
