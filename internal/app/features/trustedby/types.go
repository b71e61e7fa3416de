// internal/app/features/trustedby/types.go
package trustedby

// CreateRequest is the POST /trusted-by body. Logo is either a base64 data
// URI (uploaded to the media gateway) or an already delivered URL.
type CreateRequest struct {
	Name  string `json:"name" validate:"required"`
	Logo  string `json:"logo" validate:"required"`
	Order *int   `json:"order"`
}

// UpdateRequest is the PUT /trusted-by/:id body. Omitted fields are left
// unchanged.
type UpdateRequest struct {
	Name     *string `json:"name"`
	Logo     *string `json:"logo"`
	Order    *int    `json:"order"`
	IsActive *bool   `json:"isActive"`
}
