package models

import "github.com/golang-jwt/jwt/v5"

// CustomClaims is the JWT payload issued on login. UserID and Email identify
// the session owner; TokenType guards against a token minted for one purpose
// being presented as another.
type CustomClaims struct {
	jwt.RegisteredClaims
	UserID    string `json:"user_id"`
	Email     string `json:"email,omitempty"`
	TokenType string `json:"token_type"`
}
