package dto

// LoginRequest is the body of a login attempt.
type LoginRequest struct {
	Username string `json:"username" binding:"required" example:"admin"`
	Password string `json:"password" binding:"required" example:"secret"`
}

// UserInfo is the public view of an account.
type UserInfo struct {
	Username string `json:"username" example:"admin"`
}

// LoginResponse is returned on a successful login. No token or session is
// issued.
type LoginResponse struct {
	Success bool     `json:"success" example:"true"`
	User    UserInfo `json:"user"`
}
