package service

import (
	"context"

	"github.com/rs/zerolog"
	"gorm.io/datatypes"

	"github.com/imtti/institute-api/internal/dto"
	"github.com/imtti/institute-api/internal/models"
	"github.com/imtti/institute-api/internal/repository"
)

// DefaultApplicationStatus is stored when the client omits a status. The
// default is applied at storage only; create responses echo the client body.
const DefaultApplicationStatus = "pending"

// ApplicationService exposes application listing and submission.
type ApplicationService interface {
	List(ctx context.Context) ([]models.Application, error)
	Create(ctx context.Context, req dto.CreateApplicationRequest) (uint, error)
}

type applicationService struct {
	repo   repository.ApplicationRepository
	logger zerolog.Logger
}

// NewApplicationService constructs an application service.
func NewApplicationService(repo repository.ApplicationRepository, logger zerolog.Logger) ApplicationService {
	return &applicationService{
		repo:   repo,
		logger: logger.With().Str("component", "application_service").Logger(),
	}
}

func (s *applicationService) List(ctx context.Context) ([]models.Application, error) {
	return s.repo.List(ctx)
}

func (s *applicationService) Create(ctx context.Context, req dto.CreateApplicationRequest) (uint, error) {
	status := DefaultApplicationStatus
	if req.Status != nil && *req.Status != "" {
		status = *req.Status
	}

	application := models.Application{
		ApplicationNumber: req.ApplicationNumber,
		StudentID:         req.StudentID,
		CenterID:          req.CenterID,
		Data:              datatypes.JSONMap(req.Data),
		Status:            status,
	}

	if err := s.repo.Create(ctx, &application); err != nil {
		return 0, err
	}

	s.logger.Info().Uint("application_id", application.ID).Str("status", status).Msg("application submitted")
	return application.ID, nil
}
