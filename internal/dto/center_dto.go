package dto

// CreateCenterRequest carries the writable center columns. Every field is
// optional; absent fields are stored as NULL and unrecognized fields are
// dropped at this boundary.
type CreateCenterRequest struct {
	Name          *string `json:"name"`
	Email         *string `json:"email"`
	Password      *string `json:"password"`
	Location      *string `json:"location"`
	ContactPerson *string `json:"contact_person"`
	Phone         *string `json:"phone"`
}
