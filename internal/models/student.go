package models

import "time"

// Student represents a learner registered through a center. The registration
// identifier doubles as the student's login name, paired with the date of
// birth instead of a password.
type Student struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	Name           *string   `gorm:"size:255" json:"name"`
	Email          *string   `gorm:"size:255" json:"email"`
	Phone          *string   `gorm:"size:32" json:"phone"`
	DateOfBirth    *string   `gorm:"size:32" json:"date_of_birth"`
	CenterID       *uint     `gorm:"index" json:"center_id"`
	Photo          *string   `gorm:"type:text" json:"photo"`
	RegistrationID *string   `gorm:"size:64;uniqueIndex" json:"registration_id"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
