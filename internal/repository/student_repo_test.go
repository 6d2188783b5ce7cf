package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/imtti/institute-api/internal/models"
)

func TestStudentRepositoryCreateAndList(t *testing.T) {
	db := setupTestDB(t, &models.Student{})
	repo := NewStudentRepository(db)

	now := time.Now()
	first := models.Student{
		Name:           strPtr("Asha"),
		RegistrationID: strPtr("REG-001"),
		DateOfBirth:    strPtr("2001-04-12"),
		CenterID:       uintPtr(3),
		CreatedAt:      now.Add(-time.Minute),
	}
	second := models.Student{Name: strPtr("Binod"), RegistrationID: strPtr("REG-002"), CreatedAt: now}

	require.NoError(t, repo.Create(context.Background(), &first))
	require.NoError(t, repo.Create(context.Background(), &second))

	students, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, students, 2)
	require.Equal(t, "Binod", *students[0].Name)
	require.Equal(t, uint(3), *students[1].CenterID)
}

func TestStudentRepositoryNullableColumnsStayNull(t *testing.T) {
	db := setupTestDB(t, &models.Student{})
	repo := NewStudentRepository(db)

	student := models.Student{Name: strPtr("Chitra")}
	require.NoError(t, repo.Create(context.Background(), &student))

	var stored models.Student
	require.NoError(t, db.First(&stored, student.ID).Error)
	require.Nil(t, stored.RegistrationID)
	require.Nil(t, stored.CenterID)
	require.Nil(t, stored.Photo)
}

func TestStudentRepositoryFindByRegistration(t *testing.T) {
	db := setupTestDB(t, &models.Student{})
	repo := NewStudentRepository(db)

	student := models.Student{
		Name:           strPtr("Asha"),
		RegistrationID: strPtr("REG-100"),
		DateOfBirth:    strPtr("2000-01-31"),
	}
	require.NoError(t, repo.Create(context.Background(), &student))

	found, err := repo.FindByRegistration(context.Background(), "REG-100", "2000-01-31")
	require.NoError(t, err)
	require.Equal(t, student.ID, found.ID)

	_, err = repo.FindByRegistration(context.Background(), "REG-100", "1999-12-31")
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)

	_, err = repo.FindByRegistration(context.Background(), "REG-404", "2000-01-31")
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestStudentRepositoryDuplicateRegistrationSurfacesStoreError(t *testing.T) {
	db := setupTestDB(t, &models.Student{})
	repo := NewStudentRepository(db)

	first := models.Student{RegistrationID: strPtr("REG-DUP")}
	require.NoError(t, repo.Create(context.Background(), &first))

	second := models.Student{RegistrationID: strPtr("REG-DUP")}
	require.Error(t, repo.Create(context.Background(), &second))
}
