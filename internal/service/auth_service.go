package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/imtti/institute-api/internal/models"
	"github.com/imtti/institute-api/internal/repository"
)

// ErrInvalidCredentials indicates no stored row matched the supplied
// credentials.
var ErrInvalidCredentials = errors.New("invalid credentials")

// AuthService performs the three credential lookups. Each is a plain
// equality match against the stored row; when several rows match, the one
// with the lowest primary key wins.
type AuthService interface {
	LoginAdmin(ctx context.Context, email, password string) (models.Admin, error)
	LoginCenter(ctx context.Context, email, password string) (models.Center, error)
	LoginStudent(ctx context.Context, registrationID, dateOfBirth string) (models.Student, error)
}

type authService struct {
	admins   repository.AdminRepository
	centers  repository.CenterRepository
	students repository.StudentRepository
	logger   zerolog.Logger
}

// NewAuthService constructs an auth service over the three credential stores.
func NewAuthService(admins repository.AdminRepository, centers repository.CenterRepository, students repository.StudentRepository, logger zerolog.Logger) AuthService {
	return &authService{
		admins:   admins,
		centers:  centers,
		students: students,
		logger:   logger.With().Str("component", "auth_service").Logger(),
	}
}

func (s *authService) LoginAdmin(ctx context.Context, email, password string) (models.Admin, error) {
	admin, err := s.admins.FindByCredentials(ctx, email, password)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Admin{}, ErrInvalidCredentials
		}
		return models.Admin{}, err
	}

	s.logger.Info().Str("email", email).Msg("admin authenticated")
	return admin, nil
}

func (s *authService) LoginCenter(ctx context.Context, email, password string) (models.Center, error) {
	// Inactive centers fail the lookup outright, indistinguishable from a
	// wrong password.
	center, err := s.centers.FindActiveByCredentials(ctx, email, password)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Center{}, ErrInvalidCredentials
		}
		return models.Center{}, err
	}

	s.logger.Info().Str("email", email).Msg("center authenticated")
	return center, nil
}

func (s *authService) LoginStudent(ctx context.Context, registrationID, dateOfBirth string) (models.Student, error) {
	student, err := s.students.FindByRegistration(ctx, registrationID, dateOfBirth)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Student{}, ErrInvalidCredentials
		}
		return models.Student{}, err
	}

	s.logger.Info().Str("registration_id", registrationID).Msg("student authenticated")
	return student, nil
}
