package dto

// CreateMarkRequest carries the writable mark columns.
type CreateMarkRequest struct {
	StudentID *uint   `json:"student_id"`
	Subject   *string `json:"subject"`
	Marks     *int    `json:"marks"`
	Grade     *string `json:"grade"`
	CenterID  *uint   `json:"center_id"`
}
