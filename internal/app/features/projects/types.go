// internal/app/features/projects/types.go
package projects

// CreateRequest is the POST /projects body. Image is a base64 data URI.
// Gallery entries may each be a base64 data URI (uploaded) or an already
// delivered URL (kept as-is, handle derived best-effort).
type CreateRequest struct {
	Title       string   `json:"title" validate:"required"`
	Category    string   `json:"category" validate:"required"`
	Location    string   `json:"location" validate:"required"`
	Year        string   `json:"year" validate:"required"`
	Client      string   `json:"client" validate:"required"`
	Description string   `json:"description" validate:"required"`
	Image       string   `json:"image" validate:"required"`
	Gallery     []string `json:"gallery"`
}

// UpdateRequest is the PUT /projects/:id body. Omitted fields are left
// unchanged. Gallery, when present, replaces the stored list wholesale;
// dropped entries have their media assets removed best-effort.
type UpdateRequest struct {
	Title       *string   `json:"title"`
	Category    *string   `json:"category"`
	Location    *string   `json:"location"`
	Year        *string   `json:"year"`
	Client      *string   `json:"client"`
	Description *string   `json:"description"`
	Image       *string   `json:"image"`
	Gallery     *[]string `json:"gallery"`
	IsActive    *bool     `json:"isActive"`
}
