// internal/app/features/faqs/types.go
package faqs

// CreateRequest is the POST /faqs body.
type CreateRequest struct {
	Question string `json:"question" validate:"required"`
	Answer   string `json:"answer" validate:"required"`
	Order    *int   `json:"order"`
}

// UpdateRequest is the PUT /faqs/:id body. Omitted fields are left
// unchanged.
type UpdateRequest struct {
	Question *string `json:"question"`
	Answer   *string `json:"answer"`
	Order    *int    `json:"order"`
	IsActive *bool   `json:"isActive"`
}
