// internal/app/features/auth/types.go
package auth

// LoginRequest is the POST /auth/login body.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// ChangePasswordRequest is the PUT /auth/change-password body.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required"`
}

// UserPayload is the client-visible identity shape. The password hash never
// leaves the server.
type UserPayload struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

// LoginPayload is the successful login response data.
type LoginPayload struct {
	Token string      `json:"token"`
	User  UserPayload `json:"user"`
}
