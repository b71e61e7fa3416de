// internal/app/features/blogs/types.go
package blogs

// CreateRequest is the POST /blogs body. Image is a base64 data URI.
type CreateRequest struct {
	Title    string `json:"title" validate:"required"`
	Excerpt  string `json:"excerpt" validate:"required"`
	Content  string `json:"content" validate:"required"`
	Category string `json:"category" validate:"required"`
	Author   string `json:"author"`
	Image    string `json:"image" validate:"required"`
}

// UpdateRequest is the PUT /blogs/:id body. Omitted fields are left
// unchanged. Views is never client-writable.
type UpdateRequest struct {
	Title     *string `json:"title"`
	Excerpt   *string `json:"excerpt"`
	Content   *string `json:"content"`
	Category  *string `json:"category"`
	Author    *string `json:"author"`
	Image     *string `json:"image"`
	Published *bool   `json:"published"`
}
