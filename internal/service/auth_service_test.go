package service

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/imtti/institute-api/internal/models"
)

func testLogger() zerolog.Logger {
	return zerolog.New(io.Discard)
}

type adminRepoStub struct {
	admin models.Admin
	err   error
}

func (s *adminRepoStub) List(context.Context) ([]models.Admin, error) { return nil, nil }

func (s *adminRepoStub) Create(context.Context, *models.Admin) error { return nil }

func (s *adminRepoStub) FindByCredentials(_ context.Context, email, password string) (models.Admin, error) {
	if s.err != nil {
		return models.Admin{}, s.err
	}
	if email == s.admin.Email && password == s.admin.Password {
		return s.admin, nil
	}
	return models.Admin{}, gorm.ErrRecordNotFound
}

type centerRepoStub struct {
	center models.Center
	err    error
}

func (s *centerRepoStub) List(context.Context) ([]models.Center, error) { return nil, nil }

func (s *centerRepoStub) Create(context.Context, *models.Center) error { return nil }

func (s *centerRepoStub) FindActiveByCredentials(_ context.Context, email, password string) (models.Center, error) {
	if s.err != nil {
		return models.Center{}, s.err
	}
	if s.center.IsActive && s.center.Email != nil && email == *s.center.Email &&
		s.center.Password != nil && password == *s.center.Password {
		return s.center, nil
	}
	return models.Center{}, gorm.ErrRecordNotFound
}

type studentRepoStub struct {
	student models.Student
	err     error
}

func (s *studentRepoStub) List(context.Context) ([]models.Student, error) { return nil, nil }

func (s *studentRepoStub) Create(context.Context, *models.Student) error { return nil }

func (s *studentRepoStub) FindByRegistration(_ context.Context, registrationID, dateOfBirth string) (models.Student, error) {
	if s.err != nil {
		return models.Student{}, s.err
	}
	if s.student.RegistrationID != nil && registrationID == *s.student.RegistrationID &&
		s.student.DateOfBirth != nil && dateOfBirth == *s.student.DateOfBirth {
		return s.student, nil
	}
	return models.Student{}, gorm.ErrRecordNotFound
}

func strPtr(value string) *string {
	return &value
}

func TestAuthServiceLoginAdmin(t *testing.T) {
	admins := &adminRepoStub{admin: models.Admin{ID: 1, Email: "admin@imtti.com", Password: "admin123"}}
	svc := NewAuthService(admins, &centerRepoStub{}, &studentRepoStub{}, testLogger())

	admin, err := svc.LoginAdmin(context.Background(), "admin@imtti.com", "admin123")
	require.NoError(t, err)
	require.Equal(t, uint(1), admin.ID)

	_, err = svc.LoginAdmin(context.Background(), "admin@imtti.com", "wrong")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthServiceLoginCenterRequiresActive(t *testing.T) {
	centers := &centerRepoStub{center: models.Center{
		ID:       2,
		Email:    strPtr("center@x.com"),
		Password: strPtr("p"),
		IsActive: false,
	}}
	svc := NewAuthService(&adminRepoStub{}, centers, &studentRepoStub{}, testLogger())

	_, err := svc.LoginCenter(context.Background(), "center@x.com", "p")
	require.ErrorIs(t, err, ErrInvalidCredentials, "correct credentials on an inactive center still fail")

	centers.center.IsActive = true
	center, err := svc.LoginCenter(context.Background(), "center@x.com", "p")
	require.NoError(t, err)
	require.Equal(t, uint(2), center.ID)
}

func TestAuthServiceLoginStudentUnknownPairIsInvalidNotError(t *testing.T) {
	students := &studentRepoStub{student: models.Student{
		ID:             3,
		RegistrationID: strPtr("REG-1"),
		DateOfBirth:    strPtr("2001-01-01"),
	}}
	svc := NewAuthService(&adminRepoStub{}, &centerRepoStub{}, students, testLogger())

	student, err := svc.LoginStudent(context.Background(), "REG-1", "2001-01-01")
	require.NoError(t, err)
	require.Equal(t, uint(3), student.ID)

	_, err = svc.LoginStudent(context.Background(), "REG-404", "2001-01-01")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthServicePropagatesStoreFailures(t *testing.T) {
	boom := errors.New("connection reset")
	svc := NewAuthService(
		&adminRepoStub{err: boom},
		&centerRepoStub{err: boom},
		&studentRepoStub{err: boom},
		testLogger(),
	)

	_, err := svc.LoginAdmin(context.Background(), "a", "b")
	require.ErrorIs(t, err, boom)
	require.NotErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.LoginCenter(context.Background(), "a", "b")
	require.ErrorIs(t, err, boom)

	_, err = svc.LoginStudent(context.Background(), "a", "b")
	require.ErrorIs(t, err, boom)
}
