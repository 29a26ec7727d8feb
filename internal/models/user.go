package models

import (
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// User represents a platform user (PostgreSQL)
type User struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Login       string    `json:"login" gorm:"uniqueIndex;size:30"`
	Email       string    `json:"email" gorm:"uniqueIndex"` // Ensure email is unique across all users
	Password    string    `json:"-"`                        // Store hashed password, ignore for JSON serialization
	Banned      bool      `json:"banned" gorm:"default:false;index"`
	BanReason   string    `json:"ban_reason,omitempty"`
	FirebaseUID string    `json:"firebase_uid,omitempty" gorm:"uniqueIndex"` // Link to Firebase User UID
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"-"`
}

// SignupRequest defines the request body for local user registration
type SignupRequest struct {
	Login    string `json:"login" validate:"required,min=3,max=30"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6,max=72"`
}

// SigninRequest defines the request body for local user authentication
type SigninRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// BanUserRequest defines the request body for banning or unbanning a user
type BanUserRequest struct {
	IsBanned  bool   `json:"is_banned"`
	BanReason string `json:"ban_reason,omitempty" validate:"omitempty,min=3,max=500"`
}

// JwtCustomClaims are custom claims extending standard jwt.RegisteredClaims
type JwtCustomClaims struct {
	UserID uint   `json:"user_id"`
	Login  string `json:"login"`
	jwt.RegisteredClaims
}
