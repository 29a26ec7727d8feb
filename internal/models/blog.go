package models

import "time"

// Blog represents a blog owned by a user (PostgreSQL)
type Blog struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	OwnerID     uint      `json:"owner_id" gorm:"index"` // ID of the user who owns the blog
	Name        string    `json:"name" gorm:"size:15;index"`
	Description string    `json:"description"`
	WebsiteURL  string    `json:"website_url"`
	Banned      bool      `json:"-" gorm:"default:false;index"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"-"`
}

// CreateBlogRequest defines the request body for creating a new blog
type CreateBlogRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=15"`
	Description string `json:"description" validate:"required,min=1,max=500"`
	WebsiteURL  string `json:"website_url" validate:"required,url,max=100"`
}

// UpdateBlogRequest defines the request body for updating an existing blog
type UpdateBlogRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=15"`
	Description string `json:"description" validate:"required,min=1,max=500"`
	WebsiteURL  string `json:"website_url" validate:"required,url,max=100"`
}
