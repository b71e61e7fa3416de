// internal/app/features/contacts/types.go
package contacts

// CreateRequest is the public POST /contacts body.
type CreateRequest struct {
	Name        string `json:"name" validate:"required"`
	Phone       string `json:"phone" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	ServiceType string `json:"serviceType" validate:"required"`
	Message     string `json:"message" validate:"required"`
}

// StatusRequest is the PATCH /contacts/:id/status body.
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
