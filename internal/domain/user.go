package domain

import "time"

// User is an admin account allowed to assign medals
type User struct {
	ID           int    `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
}

// LoginRequest represents the body of POST /api/login
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse is returned after a successful login
type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
	User      *User     `json:"user"`
}

// SessionClaims describes the authenticated admin attached to a request
type SessionClaims struct {
	UserID   int    `json:"userId"`
	Username string `json:"username"`
}
