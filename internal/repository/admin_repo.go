package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/imtti/institute-api/internal/models"
)

// AdminRepository defines persistence operations for admins. Admins are never
// created through the API; Create exists for the startup seed path.
type AdminRepository interface {
	List(ctx context.Context) ([]models.Admin, error)
	Create(ctx context.Context, admin *models.Admin) error
	FindByCredentials(ctx context.Context, email, password string) (models.Admin, error)
}

type adminRepository struct {
	db *gorm.DB
}

// NewAdminRepository instantiates a GORM-backed repository.
func NewAdminRepository(db *gorm.DB) AdminRepository {
	return &adminRepository{db: db}
}

func (r *adminRepository) List(ctx context.Context) ([]models.Admin, error) {
	admins := make([]models.Admin, 0)
	if err := r.db.WithContext(ctx).Find(&admins).Error; err != nil {
		return nil, err
	}

	return admins, nil
}

func (r *adminRepository) Create(ctx context.Context, admin *models.Admin) error {
	return r.db.WithContext(ctx).Create(admin).Error
}

func (r *adminRepository) FindByCredentials(ctx context.Context, email, password string) (models.Admin, error) {
	var admin models.Admin
	err := r.db.WithContext(ctx).
		Where("email = ? AND password = ?", email, password).
		First(&admin).Error
	if err != nil {
		return models.Admin{}, err
	}

	return admin, nil
}
