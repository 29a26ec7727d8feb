package repositories

import (
	"context"
	"time"

	"github.com/bloggerhub/backend/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// PostLikeRepository defines the interface for post like operations.
// The (post_id, user_id) pair addresses at most one document.
type PostLikeRepository interface {
	GetStatus(ctx context.Context, postID uint, userID uint) (models.LikeStatus, error)
	GetStatuses(ctx context.Context, postIDs []uint, userID uint) (map[uint]models.LikeStatus, error)
	SetStatus(ctx context.Context, postID uint, userID uint, status models.LikeStatus) (models.LikeStatus, error)
	CountVisibleByPost(ctx context.Context, postID uint, status models.LikeStatus) (int64, error)
	SetBannedByUser(ctx context.Context, userID uint, banned bool) error
	GetPostIDsByUser(ctx context.Context, userID uint) ([]uint, error)
}

// MongoPostLikeRepository implements PostLikeRepository for MongoDB
type MongoPostLikeRepository struct {
	collection *mongo.Collection
}

// NewMongoPostLikeRepository creates a new MongoPostLikeRepository
func NewMongoPostLikeRepository(db *mongo.Database) *MongoPostLikeRepository {
	return &MongoPostLikeRepository{collection: db.Collection("post_likes")}
}

// GetStatus performs the point lookup for a single (post, user) pair.
// A missing record resolves to None, never to an error.
func (r *MongoPostLikeRepository) GetStatus(ctx context.Context, postID uint, userID uint) (models.LikeStatus, error) {
	var like models.PostLike
	err := r.collection.FindOne(ctx, bson.M{"post_id": postID, "user_id": userID}).Decode(&like)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return models.LikeStatusNone, nil
		}
		return models.LikeStatusNone, err
	}
	return like.Status, nil
}

// GetStatuses resolves the statuses for a page of posts with one multi-key
// fetch. Posts without a stored record are absent from the returned map,
// which callers read as None.
func (r *MongoPostLikeRepository) GetStatuses(ctx context.Context, postIDs []uint, userID uint) (map[uint]models.LikeStatus, error) {
	statuses := make(map[uint]models.LikeStatus, len(postIDs))
	if len(postIDs) == 0 {
		return statuses, nil
	}

	cursor, err := r.collection.Find(ctx, bson.M{"post_id": bson.M{"$in": postIDs}, "user_id": userID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var likes []models.PostLike
	if err = cursor.All(ctx, &likes); err != nil {
		return nil, err
	}

	for _, like := range likes {
		statuses[like.PostID] = like.Status
	}
	return statuses, nil
}

// SetStatus upserts the (post, user) record to the given status and
// returns the previously stored status (None when no record existed)
func (r *MongoPostLikeRepository) SetStatus(ctx context.Context, postID uint, userID uint, status models.LikeStatus) (models.LikeStatus, error) {
	var prev models.PostLike
	err := r.collection.FindOneAndUpdate(ctx,
		bson.M{"post_id": postID, "user_id": userID},
		bson.M{
			"$set":         bson.M{"status": status, "added_at": time.Now()},
			"$setOnInsert": bson.M{"is_banned": false},
		},
		options.FindOneAndUpdate().SetUpsert(true),
	).Decode(&prev)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return models.LikeStatusNone, nil
		}
		return models.LikeStatusNone, err
	}
	return prev.Status, nil
}

// CountVisibleByPost counts non-banned reactions of one status on a post
func (r *MongoPostLikeRepository) CountVisibleByPost(ctx context.Context, postID uint, status models.LikeStatus) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{"post_id": postID, "status": status, "is_banned": false})
}

// SetBannedByUser flips the ban flag on every reaction left by a user
func (r *MongoPostLikeRepository) SetBannedByUser(ctx context.Context, userID uint, banned bool) error {
	_, err := r.collection.UpdateMany(ctx, bson.M{"user_id": userID}, bson.M{"$set": bson.M{"is_banned": banned}})
	return err
}

// GetPostIDsByUser retrieves the IDs of every post a user has reacted to
func (r *MongoPostLikeRepository) GetPostIDsByUser(ctx context.Context, userID uint) ([]uint, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"user_id": userID},
		options.Find().SetProjection(bson.M{"post_id": 1}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []struct {
		PostID uint `bson:"post_id"`
	}
	if err = cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	seen := make(map[uint]bool, len(docs))
	ids := make([]uint, 0, len(docs))
	for _, d := range docs {
		if !seen[d.PostID] {
			seen[d.PostID] = true
			ids = append(ids, d.PostID)
		}
	}
	return ids, nil
}
