package dto

// CreateApplicationRequest carries the writable application columns. Data is
// an opaque structured payload serialized to JSON text before storage, and
// status falls back to "pending" when the client does not supply one.
type CreateApplicationRequest struct {
	ApplicationNumber *string        `json:"application_number"`
	StudentID         *uint          `json:"student_id"`
	CenterID          *uint          `json:"center_id"`
	Data              map[string]any `json:"data"`
	Status            *string        `json:"status"`
}
