package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/imtti/institute-api/internal/dto"
	"github.com/imtti/institute-api/internal/models"
	"github.com/imtti/institute-api/internal/repository"
)

// CenterService exposes center listing and registration.
type CenterService interface {
	List(ctx context.Context) ([]models.Center, error)
	Create(ctx context.Context, req dto.CreateCenterRequest) (uint, error)
}

type centerService struct {
	repo   repository.CenterRepository
	logger zerolog.Logger
}

// NewCenterService constructs a center service.
func NewCenterService(repo repository.CenterRepository, logger zerolog.Logger) CenterService {
	return &centerService{
		repo:   repo,
		logger: logger.With().Str("component", "center_service").Logger(),
	}
}

func (s *centerService) List(ctx context.Context) ([]models.Center, error) {
	return s.repo.List(ctx)
}

func (s *centerService) Create(ctx context.Context, req dto.CreateCenterRequest) (uint, error) {
	center := models.Center{
		Name:          req.Name,
		Email:         req.Email,
		Password:      req.Password,
		Location:      req.Location,
		ContactPerson: req.ContactPerson,
		Phone:         req.Phone,
	}

	if err := s.repo.Create(ctx, &center); err != nil {
		return 0, err
	}

	s.logger.Info().Uint("center_id", center.ID).Msg("center registered")
	return center.ID, nil
}
