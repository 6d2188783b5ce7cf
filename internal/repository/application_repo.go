package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/imtti/institute-api/internal/models"
)

// ApplicationRepository defines persistence operations for applications.
type ApplicationRepository interface {
	List(ctx context.Context) ([]models.Application, error)
	Create(ctx context.Context, application *models.Application) error
}

type applicationRepository struct {
	db *gorm.DB
}

// NewApplicationRepository instantiates a GORM-backed repository.
func NewApplicationRepository(db *gorm.DB) ApplicationRepository {
	return &applicationRepository{db: db}
}

func (r *applicationRepository) List(ctx context.Context) ([]models.Application, error) {
	applications := make([]models.Application, 0)
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&applications).Error; err != nil {
		return nil, err
	}

	return applications, nil
}

func (r *applicationRepository) Create(ctx context.Context, application *models.Application) error {
	return r.db.WithContext(ctx).Create(application).Error
}
