package database

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/imtti/institute-api/internal/models"
)

// SeedAdminEmail is the email of the admin row ensured at startup.
const SeedAdminEmail = "admin@imtti.com"

// seedAdminPassword matches the credentials shipped with the original
// deployment; stored and compared in plaintext for behavioral parity.
const seedAdminPassword = "admin123"

// EnsureSchema idempotently creates the five tables and seeds the default
// admin row. Callers treat a failure as non-fatal: the service keeps running
// with whatever subset of schema exists.
func EnsureSchema(db *gorm.DB) error {
	if db == nil {
		return fmt.Errorf("no database connection")
	}

	if err := db.AutoMigrate(
		&models.Center{},
		&models.Student{},
		&models.Application{},
		&models.Mark{},
		&models.Admin{},
	); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}

	admin := models.Admin{
		Name:     "Administrator",
		Email:    SeedAdminEmail,
		Password: seedAdminPassword,
	}
	if err := db.Where(models.Admin{Email: SeedAdminEmail}).FirstOrCreate(&admin).Error; err != nil {
		return fmt.Errorf("failed to seed admin: %w", err)
	}

	return nil
}
