// models/auth.go
package models

// TokenPair is the credential pair issued by the backend. The access
// token is short-lived; the refresh token exchanges for a new pair.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type,omitempty"`
	ExpiresIn    int    `json:"expires_in,omitempty"`
}

// AuthResponse is the envelope returned by login, register, refresh and
// the OAuth callback. Registration may omit Tokens entirely when the
// account still needs email verification; Message then carries the
// instruction to surface to the user.
type AuthResponse struct {
	User    *User      `json:"user,omitempty"`
	Tokens  *TokenPair `json:"tokens,omitempty"`
	Message string     `json:"message,omitempty"`
}

// MessageResponse is the generic acknowledgement envelope used by the
// password and email-verification endpoints.
type MessageResponse struct {
	Message string `json:"message"`
	Success bool   `json:"success,omitempty"`
}

// RegisterInput is the registration payload.
type RegisterInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"full_name"`
	Phone    string `json:"phone,omitempty"`
	Role     string `json:"role"`
}

// GoogleLoginURL is returned by GET /auth/google/login.
type GoogleLoginURL struct {
	URL     string `json:"url"`
	Message string `json:"message,omitempty"`
}
