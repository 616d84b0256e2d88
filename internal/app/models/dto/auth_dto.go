package dto

// RegisterRequest registers a new tenant together with its first user
type RegisterRequest struct {
	SchoolName string `json:"schoolName" example:"Riverside High"`
	Address    string `json:"address" example:"12 Main St"`
	Email      string `json:"email" example:"admin@school.edu"`
	Password   string `json:"password" example:"s3cret-pass"`
	FullName   string `json:"fullName" example:"Jane Admin"`
}

// LoginRequest carries sign-in credentials
type LoginRequest struct {
	Email    string `json:"email" example:"admin@school.edu"`
	Password string `json:"password" example:"s3cret-pass"`
}

// TokenResponse returns an issued access token
type TokenResponse struct {
	AccessToken string `json:"accessToken"`
	TokenType   string `json:"tokenType" example:"Bearer"`
	ExpiresIn   int    `json:"expiresIn" example:"86400"`
	TenantID    int64  `json:"tenantId" example:"1"`
}
