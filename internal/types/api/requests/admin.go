package requests

// AdminLoginRequest represents the request body for the admin login check
type AdminLoginRequest struct {
	Password string `json:"password" binding:"required"`
}
