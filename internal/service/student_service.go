package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/imtti/institute-api/internal/dto"
	"github.com/imtti/institute-api/internal/models"
	"github.com/imtti/institute-api/internal/repository"
)

// StudentService exposes student listing and registration.
type StudentService interface {
	List(ctx context.Context) ([]models.Student, error)
	Create(ctx context.Context, req dto.CreateStudentRequest) (uint, error)
}

type studentService struct {
	repo   repository.StudentRepository
	logger zerolog.Logger
}

// NewStudentService constructs a student service.
func NewStudentService(repo repository.StudentRepository, logger zerolog.Logger) StudentService {
	return &studentService{
		repo:   repo,
		logger: logger.With().Str("component", "student_service").Logger(),
	}
}

func (s *studentService) List(ctx context.Context) ([]models.Student, error) {
	return s.repo.List(ctx)
}

func (s *studentService) Create(ctx context.Context, req dto.CreateStudentRequest) (uint, error) {
	student := models.Student{
		Name:           req.Name,
		Email:          req.Email,
		Phone:          req.Phone,
		DateOfBirth:    req.DateOfBirth,
		CenterID:       req.CenterID,
		Photo:          req.Photo,
		RegistrationID: req.RegistrationID,
	}

	if err := s.repo.Create(ctx, &student); err != nil {
		return 0, err
	}

	s.logger.Info().Uint("student_id", student.ID).Msg("student registered")
	return student.ID, nil
}
