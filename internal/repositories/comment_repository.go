package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/bloggerhub/backend/internal/models"
	"github.com/bloggerhub/backend/internal/pagination"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CommentRepository defines the interface for comment data operations.
// All read methods filter out banned comments before counting or fetching.
type CommentRepository interface {
	CreateComment(ctx context.Context, comment *models.Comment) error
	GetVisibleCommentByID(ctx context.Context, id string) (*models.Comment, error)
	CountVisibleByPost(ctx context.Context, postID uint) (int64, error)
	GetVisibleByPost(ctx context.Context, postID uint, pg pagination.Pagination) ([]models.Comment, error)
	CountVisibleByPosts(ctx context.Context, postIDs []uint) (int64, error)
	GetVisibleByPosts(ctx context.Context, postIDs []uint, pg pagination.Pagination) ([]models.Comment, error)
	UpdateContent(ctx context.Context, id string, content string) error
	DeleteComment(ctx context.Context, id string) error
	AdjustLikeCounters(ctx context.Context, id string, likesDelta, dislikesDelta int) error
	SetLikeCounters(ctx context.Context, id string, likesCount, dislikesCount int64) error
	SetBannedByUser(ctx context.Context, userID uint, banned bool) error
}

// MongoCommentRepository implements CommentRepository for MongoDB
type MongoCommentRepository struct {
	collection *mongo.Collection
}

// NewMongoCommentRepository creates a new MongoCommentRepository
func NewMongoCommentRepository(db *mongo.Database) *MongoCommentRepository {
	return &MongoCommentRepository{collection: db.Collection("comments")}
}

// CreateComment creates a new comment in MongoDB
func (r *MongoCommentRepository) CreateComment(ctx context.Context, comment *models.Comment) error {
	comment.ID = primitive.NewObjectID()
	comment.CreatedAt = time.Now()
	_, err := r.collection.InsertOne(ctx, comment)
	return err
}

// GetVisibleCommentByID retrieves a non-banned comment by ID from MongoDB.
// Returns (nil, nil) when no visible comment exists under that ID.
func (r *MongoCommentRepository) GetVisibleCommentByID(ctx context.Context, id string) (*models.Comment, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}

	var comment models.Comment
	err = r.collection.FindOne(ctx, bson.M{"_id": objID, "is_banned": false}).Decode(&comment)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &comment, nil
}

// CountVisibleByPost counts non-banned comments belonging to a post
func (r *MongoCommentRepository) CountVisibleByPost(ctx context.Context, postID uint) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{"post_id": postID, "is_banned": false})
}

// GetVisibleByPost retrieves one page of non-banned comments belonging to a post
func (r *MongoCommentRepository) GetVisibleByPost(ctx context.Context, postID uint, pg pagination.Pagination) ([]models.Comment, error) {
	return r.findPage(ctx, bson.M{"post_id": postID, "is_banned": false}, pg)
}

// CountVisibleByPosts counts non-banned comments across a set of posts
func (r *MongoCommentRepository) CountVisibleByPosts(ctx context.Context, postIDs []uint) (int64, error) {
	if len(postIDs) == 0 {
		return 0, nil
	}
	return r.collection.CountDocuments(ctx, bson.M{"post_id": bson.M{"$in": postIDs}, "is_banned": false})
}

// GetVisibleByPosts retrieves one page of non-banned comments across a set of posts
func (r *MongoCommentRepository) GetVisibleByPosts(ctx context.Context, postIDs []uint, pg pagination.Pagination) ([]models.Comment, error) {
	if len(postIDs) == 0 {
		return nil, nil
	}
	return r.findPage(ctx, bson.M{"post_id": bson.M{"$in": postIDs}, "is_banned": false}, pg)
}

func (r *MongoCommentRepository) findPage(ctx context.Context, filter bson.M, pg pagination.Pagination) ([]models.Comment, error) {
	findOptions := options.Find().
		SetSkip(pg.Skip()).
		SetLimit(pg.Limit()).
		SetSort(bson.D{{Key: pg.SortBy, Value: pg.SortOrder()}})

	cursor, err := r.collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var comments []models.Comment
	if err = cursor.All(ctx, &comments); err != nil {
		return nil, err
	}
	return comments, nil
}

// UpdateContent updates the text body of an existing comment
func (r *MongoCommentRepository) UpdateContent(ctx context.Context, id string, content string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("invalid comment ID format: %w", err)
	}

	res, err := r.collection.UpdateOne(ctx, bson.M{"_id": objID}, bson.M{"$set": bson.M{"content": content}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("comment not found")
	}
	return nil
}

// DeleteComment deletes a comment by ID from MongoDB
func (r *MongoCommentRepository) DeleteComment(ctx context.Context, id string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("invalid comment ID format: %w", err)
	}

	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": objID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("comment not found")
	}
	return nil
}

// AdjustLikeCounters applies deltas to the denormalized reaction counters of a comment
func (r *MongoCommentRepository) AdjustLikeCounters(ctx context.Context, id string, likesDelta, dislikesDelta int) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("invalid comment ID format: %w", err)
	}
	_, err = r.collection.UpdateOne(ctx, bson.M{"_id": objID}, bson.M{
		"$inc": bson.M{"likes_count": likesDelta, "dislikes_count": dislikesDelta},
	})
	return err
}

// SetLikeCounters overwrites the reaction counters of a comment with recomputed values
func (r *MongoCommentRepository) SetLikeCounters(ctx context.Context, id string, likesCount, dislikesCount int64) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("invalid comment ID format: %w", err)
	}
	_, err = r.collection.UpdateOne(ctx, bson.M{"_id": objID}, bson.M{
		"$set": bson.M{"likes_count": likesCount, "dislikes_count": dislikesCount},
	})
	return err
}

// SetBannedByUser flips the ban flag on every comment authored by a user
func (r *MongoCommentRepository) SetBannedByUser(ctx context.Context, userID uint, banned bool) error {
	_, err := r.collection.UpdateMany(ctx, bson.M{"user_id": userID}, bson.M{"$set": bson.M{"is_banned": banned}})
	return err
}
