package dto

// CreateStudentRequest carries the writable student columns. The photo is an
// opaque text blob (typically base64) stored verbatim.
type CreateStudentRequest struct {
	Name           *string `json:"name"`
	Email          *string `json:"email"`
	Phone          *string `json:"phone"`
	DateOfBirth    *string `json:"date_of_birth"`
	CenterID       *uint   `json:"center_id"`
	Photo          *string `json:"photo"`
	RegistrationID *string `json:"registration_id"`
}
