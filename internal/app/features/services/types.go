// internal/app/features/services/types.go
package services

// SubServiceInput is an embedded sub-service entry. BlogID is a soft link
// to a blog post; a dangling id is tolerated, not validated.
type SubServiceInput struct {
	Title  string `json:"title" validate:"required"`
	BlogID string `json:"blogId"`
}

// CreateRequest is the POST /services body. Image is a base64 data URI,
// uploaded to the media gateway before the document is persisted.
type CreateRequest struct {
	Title       string            `json:"title" validate:"required"`
	Description string            `json:"description" validate:"required"`
	Image       string            `json:"image" validate:"required"`
	Order       *int              `json:"order"`
	SubServices []SubServiceInput `json:"subServices"`
}

// UpdateRequest is the PUT /services/:id body. Omitted fields are left
// unchanged. A new Image replaces the stored asset: the old handle is
// deleted only after the new upload is confirmed.
type UpdateRequest struct {
	Title       *string            `json:"title"`
	Description *string            `json:"description"`
	Image       *string            `json:"image"`
	Order       *int               `json:"order"`
	IsActive    *bool              `json:"isActive"`
	SubServices *[]SubServiceInput `json:"subServices"`
}
