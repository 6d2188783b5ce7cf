package dto

// CredentialsRequest is the login payload shared by the admin and center
// endpoints: a plain email/password pair compared by equality.
type CredentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// StudentLoginRequest is the student login payload. Students authenticate
// with identity fields rather than a password.
type StudentLoginRequest struct {
	RegistrationID string `json:"registration_id"`
	DateOfBirth    string `json:"date_of_birth"`
}
