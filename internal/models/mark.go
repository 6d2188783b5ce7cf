package models

import "time"

// Mark represents a single subject score recorded for a student.
type Mark struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	StudentID *uint     `gorm:"index" json:"student_id"`
	Subject   *string   `gorm:"size:255" json:"subject"`
	Marks     *int      `json:"marks"`
	Grade     *string   `gorm:"size:16" json:"grade"`
	CenterID  *uint     `gorm:"index" json:"center_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
