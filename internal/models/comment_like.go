package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// LikeStatus is the tri-state reaction a user can hold towards a comment
type LikeStatus string

const (
	LikeStatusNone    LikeStatus = "None"
	LikeStatusLike    LikeStatus = "Like"
	LikeStatusDislike LikeStatus = "Dislike"
)

// IsValid reports whether s is one of the three known statuses
func (s LikeStatus) IsValid() bool {
	return s == LikeStatusNone || s == LikeStatusLike || s == LikeStatusDislike
}

// CommentLike represents a user's reaction to a comment, stored in MongoDB.
// At most one document exists per (comment_id, user_id) pair.
type CommentLike struct {
	ID        primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	CommentID primitive.ObjectID `json:"comment_id" bson:"comment_id"`
	UserID    uint               `json:"user_id" bson:"user_id"`
	Status    LikeStatus         `json:"status" bson:"status"`
	IsBanned  bool               `json:"-" bson:"is_banned"` // Mirrors the reacting user's moderation state
	AddedAt   time.Time          `json:"added_at" bson:"added_at"`
}

// LikeStatusRequest defines the request body for setting a comment like status
type LikeStatusRequest struct {
	LikeStatus string `json:"like_status" validate:"required,oneof=None Like Dislike"`
}
