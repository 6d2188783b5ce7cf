package models

import (
	"time"

	"gorm.io/datatypes"
)

// Application represents a student's enrollment request. The payload is an
// opaque structured document stored as JSON text.
type Application struct {
	ID                uint              `gorm:"primaryKey" json:"id"`
	ApplicationNumber *string           `gorm:"size:64;uniqueIndex" json:"application_number"`
	StudentID         *uint             `gorm:"index" json:"student_id"`
	CenterID          *uint             `gorm:"index" json:"center_id"`
	Data              datatypes.JSONMap `gorm:"type:json" json:"data"`
	Status            string            `gorm:"size:32;default:pending" json:"status"`
	CreatedAt         time.Time         `json:"created_at"`
	UpdatedAt         time.Time         `json:"updated_at"`
}
