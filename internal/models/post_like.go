package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PostLike represents a user's reaction to a post, stored in MongoDB.
// The post itself lives in PostgreSQL, so the document references it by
// its numeric ID. At most one document exists per (post_id, user_id) pair.
type PostLike struct {
	ID       primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	PostID   uint               `json:"post_id" bson:"post_id"`
	UserID   uint               `json:"user_id" bson:"user_id"`
	Status   LikeStatus         `json:"status" bson:"status"`
	IsBanned bool               `json:"-" bson:"is_banned"` // Mirrors the reacting user's moderation state
	AddedAt  time.Time          `json:"added_at" bson:"added_at"`
}
