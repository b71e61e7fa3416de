// internal/app/features/testimonials/types.go
package testimonials

// CreateRequest is the POST /testimonials body.
type CreateRequest struct {
	Name        string `json:"name" validate:"required"`
	Position    string `json:"position" validate:"required"`
	Company     string `json:"company" validate:"required"`
	Testimonial string `json:"testimonial" validate:"required"`
	Rating      int    `json:"rating" validate:"omitempty,min=1,max=5"`
	Order       *int   `json:"order"`
}

// UpdateRequest is the PUT /testimonials/:id body. Omitted fields are left
// unchanged.
type UpdateRequest struct {
	Name        *string `json:"name"`
	Position    *string `json:"position"`
	Company     *string `json:"company"`
	Testimonial *string `json:"testimonial"`
	Rating      *int    `json:"rating"`
	Order       *int    `json:"order"`
	IsActive    *bool   `json:"isActive"`
}
