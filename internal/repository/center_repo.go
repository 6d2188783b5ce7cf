package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/imtti/institute-api/internal/models"
)

// CenterRepository defines persistence operations for centers.
type CenterRepository interface {
	List(ctx context.Context) ([]models.Center, error)
	Create(ctx context.Context, center *models.Center) error
	FindActiveByCredentials(ctx context.Context, email, password string) (models.Center, error)
}

type centerRepository struct {
	db *gorm.DB
}

// NewCenterRepository instantiates a GORM-backed repository.
func NewCenterRepository(db *gorm.DB) CenterRepository {
	return &centerRepository{db: db}
}

func (r *centerRepository) List(ctx context.Context) ([]models.Center, error) {
	centers := make([]models.Center, 0)
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&centers).Error; err != nil {
		return nil, err
	}

	return centers, nil
}

func (r *centerRepository) Create(ctx context.Context, center *models.Center) error {
	return r.db.WithContext(ctx).Create(center).Error
}

func (r *centerRepository) FindActiveByCredentials(ctx context.Context, email, password string) (models.Center, error) {
	var center models.Center
	err := r.db.WithContext(ctx).
		Where("email = ? AND password = ? AND is_active = ?", email, password, true).
		First(&center).Error
	if err != nil {
		return models.Center{}, err
	}

	return center, nil
}
