package dto

// AdminLoginRequest payload. Fields are not validated: an empty pair is
// simply a credential mismatch.
type AdminLoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// TokenResponse is returned by a successful login.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// VerifyResponse echoes the authenticated subject.
type VerifyResponse struct {
	Valid bool   `json:"valid"`
	User  string `json:"user"`
}
