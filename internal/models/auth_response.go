package models

import (
	"time"

	"bookly-be/internal/entities"
)

// UserResponse represents a user in API responses (never the password hash)
type UserResponse struct {
	ID        string    `json:"id"` // UUID
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	IsAdmin   bool      `json:"is_admin"`
	CreatedAt time.Time `json:"created_at"`
}

// NewUserResponse converts a user entity to its API shape
func NewUserResponse(u *entities.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		IsAdmin:   u.IsAdmin,
		CreatedAt: u.CreatedAt,
	}
}

// AuthResponse represents the response after successful authentication
type AuthResponse struct {
	User      UserResponse `json:"user"`
	Token     string       `json:"token"` // JWT token
	TokenType string       `json:"token_type"`
}

// RegisterResponse represents the response after user registration
type RegisterResponse struct {
	Message string       `json:"message"`
	User    AuthResponse `json:"user"`
}

// UserListResponse represents a page of users, newest first
type UserListResponse struct {
	Users    []UserResponse `json:"users"`
	Page     int            `json:"page"`
	PageSize int            `json:"page_size"`
}
