package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/imtti/institute-api/internal/models"
)

// MarkRepository defines persistence operations for marks.
type MarkRepository interface {
	List(ctx context.Context) ([]models.Mark, error)
	Create(ctx context.Context, mark *models.Mark) error
}

type markRepository struct {
	db *gorm.DB
}

// NewMarkRepository instantiates a GORM-backed repository.
func NewMarkRepository(db *gorm.DB) MarkRepository {
	return &markRepository{db: db}
}

func (r *markRepository) List(ctx context.Context) ([]models.Mark, error) {
	marks := make([]models.Mark, 0)
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&marks).Error; err != nil {
		return nil, err
	}

	return marks, nil
}

func (r *markRepository) Create(ctx context.Context, mark *models.Mark) error {
	return r.db.WithContext(ctx).Create(mark).Error
}
