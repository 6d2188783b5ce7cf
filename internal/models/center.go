package models

import "time"

// Center represents a training location that registers and manages students.
type Center struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	Name          *string   `gorm:"size:255" json:"name"`
	Email         *string   `gorm:"size:255;uniqueIndex" json:"email"`
	Password      *string   `gorm:"size:255" json:"password"`
	Location      *string   `gorm:"size:255" json:"location"`
	ContactPerson *string   `gorm:"size:255" json:"contact_person"`
	Phone         *string   `gorm:"size:32" json:"phone"`
	IsActive      bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
