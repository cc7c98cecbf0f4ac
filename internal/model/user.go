package model

// RegisterUserRequest is the payload for POST /api/users
type RegisterUserRequest struct {
	Username string `json:"username" validate:"required,max=100"`
	Password string `json:"password" validate:"required,max=100"`
	Name     string `json:"name" validate:"required,max=100"`
}

// LoginUserRequest is the payload for POST /api/users/login
type LoginUserRequest struct {
	Username string `json:"username" validate:"required,max=100"`
	Password string `json:"password" validate:"required,max=100"`
}

// UpdateUserRequest is the payload for PATCH /api/users/current.
// Both fields are optional but at least one must be present.
type UpdateUserRequest struct {
	Name     string `json:"name" validate:"omitempty,max=100"`
	Password string `json:"password" validate:"omitempty,max=100"`
}

// UserResponse is the user projection; the password hash is never exposed
type UserResponse struct {
	Username string `json:"username"`
	Name     string `json:"name"`
}

// TokenResponse carries the session token issued on login
type TokenResponse struct {
	Token string `json:"token"`
}
