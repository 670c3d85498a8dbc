package dto

import "time"

// LoginRequest carries local email+password credentials.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse returns the signed access token and the authenticated
// profile.
type LoginResponse struct {
	AccessToken string         `json:"accessToken"`
	ExpiresAt   time.Time      `json:"expiresAt"`
	User        TenantResponse `json:"user"`
}
