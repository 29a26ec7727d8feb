package repositories

import (
	"context"
	"time"

	"github.com/bloggerhub/backend/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CommentLikeRepository defines the interface for comment like operations.
// The (comment_id, user_id) pair addresses at most one document.
type CommentLikeRepository interface {
	GetStatus(ctx context.Context, commentID string, userID uint) (models.LikeStatus, error)
	GetStatuses(ctx context.Context, commentIDs []string, userID uint) (map[string]models.LikeStatus, error)
	SetStatus(ctx context.Context, commentID string, userID uint, status models.LikeStatus) (models.LikeStatus, error)
	CountVisibleByComment(ctx context.Context, commentID string, status models.LikeStatus) (int64, error)
	SetBannedByUser(ctx context.Context, userID uint, banned bool) error
	GetCommentIDsByUser(ctx context.Context, userID uint) ([]string, error)
}

// MongoCommentLikeRepository implements CommentLikeRepository for MongoDB
type MongoCommentLikeRepository struct {
	collection *mongo.Collection
}

// NewMongoCommentLikeRepository creates a new MongoCommentLikeRepository
func NewMongoCommentLikeRepository(db *mongo.Database) *MongoCommentLikeRepository {
	return &MongoCommentLikeRepository{collection: db.Collection("comment_likes")}
}

// GetStatus performs the point lookup for a single (comment, user) pair.
// A missing or malformed record resolves to None, never to an error.
func (r *MongoCommentLikeRepository) GetStatus(ctx context.Context, commentID string, userID uint) (models.LikeStatus, error) {
	objID, err := primitive.ObjectIDFromHex(commentID)
	if err != nil {
		return models.LikeStatusNone, nil
	}

	var like models.CommentLike
	err = r.collection.FindOne(ctx, bson.M{"comment_id": objID, "user_id": userID}).Decode(&like)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return models.LikeStatusNone, nil
		}
		return models.LikeStatusNone, err
	}
	return like.Status, nil
}

// GetStatuses resolves the statuses for a page of comments with one multi-key
// fetch. Comments without a stored record are absent from the returned map,
// which callers read as None.
func (r *MongoCommentLikeRepository) GetStatuses(ctx context.Context, commentIDs []string, userID uint) (map[string]models.LikeStatus, error) {
	statuses := make(map[string]models.LikeStatus, len(commentIDs))
	if len(commentIDs) == 0 {
		return statuses, nil
	}

	objIDs := make([]primitive.ObjectID, 0, len(commentIDs))
	for _, id := range commentIDs {
		objID, err := primitive.ObjectIDFromHex(id)
		if err != nil {
			continue
		}
		objIDs = append(objIDs, objID)
	}

	cursor, err := r.collection.Find(ctx, bson.M{"comment_id": bson.M{"$in": objIDs}, "user_id": userID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var likes []models.CommentLike
	if err = cursor.All(ctx, &likes); err != nil {
		return nil, err
	}

	for _, like := range likes {
		statuses[like.CommentID.Hex()] = like.Status
	}
	return statuses, nil
}

// SetStatus upserts the (comment, user) record to the given status and
// returns the previously stored status (None when no record existed)
func (r *MongoCommentLikeRepository) SetStatus(ctx context.Context, commentID string, userID uint, status models.LikeStatus) (models.LikeStatus, error) {
	objID, err := primitive.ObjectIDFromHex(commentID)
	if err != nil {
		return models.LikeStatusNone, err
	}

	var prev models.CommentLike
	err = r.collection.FindOneAndUpdate(ctx,
		bson.M{"comment_id": objID, "user_id": userID},
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

// CountVisibleByComment counts non-banned reactions of one status on a comment
func (r *MongoCommentLikeRepository) CountVisibleByComment(ctx context.Context, commentID string, status models.LikeStatus) (int64, error) {
	objID, err := primitive.ObjectIDFromHex(commentID)
	if err != nil {
		return 0, err
	}
	return r.collection.CountDocuments(ctx, bson.M{"comment_id": objID, "status": status, "is_banned": false})
}

// SetBannedByUser flips the ban flag on every reaction left by a user
func (r *MongoCommentLikeRepository) SetBannedByUser(ctx context.Context, userID uint, banned bool) error {
	_, err := r.collection.UpdateMany(ctx, bson.M{"user_id": userID}, bson.M{"$set": bson.M{"is_banned": banned}})
	return err
}

// GetCommentIDsByUser retrieves the IDs of every comment a user has reacted to
func (r *MongoCommentLikeRepository) GetCommentIDsByUser(ctx context.Context, userID uint) ([]string, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"user_id": userID},
		options.Find().SetProjection(bson.M{"comment_id": 1}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []struct {
		CommentID primitive.ObjectID `bson:"comment_id"`
	}
	if err = cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	seen := make(map[string]bool, len(docs))
	ids := make([]string, 0, len(docs))
	for _, d := range docs {
		id := d.CommentID.Hex()
		if !seen[id] {
			seen[id] = true
			ids = append(ids, id)
		}
	}
	return ids, nil
}
