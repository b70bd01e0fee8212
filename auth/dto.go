package auth

// RegisterRequest is the registration payload.
type RegisterRequest struct {
	Username string `json:"username" validate:"required" example:"alice"`
	Email    string `json:"email" validate:"required,email" example:"alice@example.com"`
	Password string `json:"password" validate:"required" example:"strongpassword123"`
}

// LoginRequest is the login payload. Login is by email only.
type LoginRequest struct {
	Email    string `json:"email" validate:"required" example:"alice@example.com"`
	Password string `json:"password" validate:"required" example:"strongpassword123"`
}

// LoginResponse carries the signed bearer token and the authenticated
// user's profile.
type LoginResponse struct {
	Token string `json:"token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
	User  *User  `json:"user"`
}
