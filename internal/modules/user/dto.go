package user

// RegisterRequest is the payload for POST /users/register.
type RegisterRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginRequest is the payload for POST /users/login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// AuthResponse carries the logged-in profile and its access token.
type AuthResponse struct {
	User  *User  `json:"user"`
	Token string `json:"token"`
}
