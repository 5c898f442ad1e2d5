package dto

import "time"

// LoginResponse carries the access token issued on successful login or
// refresh. The refresh token itself travels in an HTTP-only cookie.
type LoginResponse struct {
	AccessToken          string       `json:"accessToken"`
	AccessTokenExpiresAt time.Time    `json:"accessTokenExpiresAt"`
	User                 UserResponse `json:"user"`
}
