package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/imtti/institute-api/internal/dto"
	"github.com/imtti/institute-api/internal/models"
	"github.com/imtti/institute-api/internal/repository"
)

// MarkService exposes mark listing and recording.
type MarkService interface {
	List(ctx context.Context) ([]models.Mark, error)
	Create(ctx context.Context, req dto.CreateMarkRequest) (uint, error)
}

type markService struct {
	repo   repository.MarkRepository
	logger zerolog.Logger
}

// NewMarkService constructs a mark service.
func NewMarkService(repo repository.MarkRepository, logger zerolog.Logger) MarkService {
	return &markService{
		repo:   repo,
		logger: logger.With().Str("component", "mark_service").Logger(),
	}
}

func (s *markService) List(ctx context.Context) ([]models.Mark, error) {
	return s.repo.List(ctx)
}

func (s *markService) Create(ctx context.Context, req dto.CreateMarkRequest) (uint, error) {
	mark := models.Mark{
		StudentID: req.StudentID,
		Subject:   req.Subject,
		Marks:     req.Marks,
		Grade:     req.Grade,
		CenterID:  req.CenterID,
	}

	if err := s.repo.Create(ctx, &mark); err != nil {
		return 0, err
	}

	s.logger.Info().Uint("mark_id", mark.ID).Msg("mark recorded")
	return mark.ID, nil
}
