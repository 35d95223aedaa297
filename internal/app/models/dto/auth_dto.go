package dto

// RegisterRequest represents a sign-up request
type RegisterRequest struct {
	Email    string `json:"email" binding:"required" example:"dr.engfield@example.edu"`
	Password string `json:"password" binding:"required" example:"abc123"`
}

// LoginRequest represents a sign-in request
type LoginRequest struct {
	Email    string `json:"email" binding:"required" example:"dr.engfield@example.edu"`
	Password string `json:"password" binding:"required" example:"abc123"`
}

// RefreshTokenRequest represents a token rotation request
type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

// ConfirmEmailRequest carries the token that activates a new account
type ConfirmEmailRequest struct {
	Token string `json:"token" binding:"required"`
}

// TokenResponse carries the tokens issued at sign-in or refresh.
type TokenResponse struct {
	AccessToken      string `json:"accessToken"`
	RefreshToken     string `json:"refreshToken"`
	ExpiresIn        int64  `json:"expiresIn" example:"3600"`
	RefreshExpiresIn int64  `json:"refreshExpiresIn" example:"604800"`
}

// AuthResponse is returned by sign-in: the identity plus its tokens.
type AuthResponse struct {
	UserID string        `json:"userId"`
	Email  string        `json:"email"`
	Tokens TokenResponse `json:"tokens"`
}

// UpdateProfileRequest renames the caller's profile.
type UpdateProfileRequest struct {
	Name string `json:"name" binding:"required" example:"Dr. Engfield"`
}
