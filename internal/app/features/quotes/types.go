// internal/app/features/quotes/types.go
package quotes

// CreateRequest is the public POST /quotes body.
type CreateRequest struct {
	Name        string `json:"name" validate:"required"`
	Phone       string `json:"phone" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	ServiceType string `json:"serviceType" validate:"required"`
	Description string `json:"description" validate:"required"`
	Address     string `json:"address" validate:"required"`
}

// StatusRequest is the PATCH /quotes/:id/status body.
type StatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// CreatedPayload is the public create response. Internal fields (status,
// timestamps) are not echoed back to the submitter.
type CreatedPayload struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}
