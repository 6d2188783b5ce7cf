package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/imtti/institute-api/internal/models"
	"github.com/imtti/institute-api/internal/repository"
)

// AdminService exposes admin listing. There is no create operation over the
// API; the single admin row is seeded at startup.
type AdminService interface {
	List(ctx context.Context) ([]models.Admin, error)
}

type adminService struct {
	repo   repository.AdminRepository
	logger zerolog.Logger
}

// NewAdminService constructs an admin service.
func NewAdminService(repo repository.AdminRepository, logger zerolog.Logger) AdminService {
	return &adminService{
		repo:   repo,
		logger: logger.With().Str("component", "admin_service").Logger(),
	}
}

func (s *adminService) List(ctx context.Context) ([]models.Admin, error) {
	return s.repo.List(ctx)
}
