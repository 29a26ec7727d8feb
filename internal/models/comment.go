package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Comment represents a comment on a post, stored in MongoDB
type Comment struct {
	ID            primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	PostID        uint               `json:"post_id" bson:"post_id"` // ID of the PostgreSQL post the comment belongs to
	UserID        uint               `json:"user_id" bson:"user_id"`
	UserLogin     string             `json:"user_login" bson:"user_login"` // Denormalized author login, captured at creation time
	Content       string             `json:"content" bson:"content"`
	LikesCount    int                `json:"likes_count" bson:"likes_count"`
	DislikesCount int                `json:"dislikes_count" bson:"dislikes_count"`
	IsBanned      bool               `json:"-" bson:"is_banned"`
	CreatedAt     time.Time          `json:"created_at" bson:"created_at"`
}

// CreateCommentRequest defines the request body for creating a new comment
type CreateCommentRequest struct {
	Content string `json:"content" validate:"required,min=20,max=300"`
}

// UpdateCommentRequest defines the request body for updating an existing comment
type UpdateCommentRequest struct {
	Content string `json:"content" validate:"required,min=20,max=300"`
}
