package models

import "github.com/golang-jwt/jwt/v5"

// UserProfile holds display preferences kept in Postgres. The identity
// itself lives with the token issuer; this row is created lazily on first
// profile write.
type UserProfile struct {
	UserID   string `json:"user_id"`
	Name     string `json:"name"`
	Country  string `json:"country"`
	Currency string `json:"currency"`
}

// TokenClaims are the claims this service accepts on bearer tokens.
type TokenClaims struct {
	jwt.RegisteredClaims
	Email string `json:"email"`
}
