package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/imtti/institute-api/internal/models"
)

// StudentRepository defines persistence operations for students.
type StudentRepository interface {
	List(ctx context.Context) ([]models.Student, error)
	Create(ctx context.Context, student *models.Student) error
	FindByRegistration(ctx context.Context, registrationID, dateOfBirth string) (models.Student, error)
}

type studentRepository struct {
	db *gorm.DB
}

// NewStudentRepository instantiates a GORM-backed repository.
func NewStudentRepository(db *gorm.DB) StudentRepository {
	return &studentRepository{db: db}
}

func (r *studentRepository) List(ctx context.Context) ([]models.Student, error) {
	students := make([]models.Student, 0)
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&students).Error; err != nil {
		return nil, err
	}

	return students, nil
}

func (r *studentRepository) Create(ctx context.Context, student *models.Student) error {
	return r.db.WithContext(ctx).Create(student).Error
}

func (r *studentRepository) FindByRegistration(ctx context.Context, registrationID, dateOfBirth string) (models.Student, error) {
	var student models.Student
	err := r.db.WithContext(ctx).
		Where("registration_id = ? AND date_of_birth = ?", registrationID, dateOfBirth).
		First(&student).Error
	if err != nil {
		return models.Student{}, err
	}

	return student, nil
}
