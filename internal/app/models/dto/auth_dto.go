package dto

// RegisterRequest represents the account registration payload
type RegisterRequest struct {
	Email       string `json:"email" binding:"required,email" example:"jane.doe@coursehub.app"`
	Password    string `json:"password" binding:"required,min=8" example:"s3cretPass"`
	FirstName   string `json:"firstName" binding:"required,max=30" example:"Jane"`
	LastName    string `json:"lastName" binding:"required,max=30" example:"Doe"`
	PhoneNumber string `json:"phoneNumber" binding:"required" example:"+905551112233"`
	Address     string `json:"address" binding:"required,max=255" example:"12 Campus Street"`
}

// LoginRequest represents the login payload
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email" example:"jane.doe@coursehub.app"`
	Password string `json:"password" binding:"required" example:"s3cretPass"`
}

// TokenResponse represents the issued token pair
type TokenResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	ExpiresIn    int64  `json:"expiresIn" example:"3600"` // Access token lifetime in seconds
}

// AuthResponse couples the authenticated person with the token pair
type AuthResponse struct {
	Person PersonResponse `json:"person"`
	Tokens TokenResponse  `json:"tokens"`
}
