package repositories

import (
	"github.com/bloggerhub/backend/internal/models"
	"github.com/bloggerhub/backend/internal/pagination"
	"gorm.io/gorm"
)

// PostRepository defines the interface for post data operations
type PostRepository interface {
	CreatePost(post *models.Post) error
	GetPostByID(id uint) (*models.Post, error)
	GetVisiblePostByID(id uint) (*models.Post, error)
	GetVisiblePosts(pg pagination.Pagination) ([]models.Post, int64, error)
	GetVisiblePostsByBlog(blogID uint, pg pagination.Pagination) ([]models.Post, int64, error)
	GetPostsOwnedBy(ownerID uint) ([]models.OwnedPost, error)
	UpdatePost(post *models.Post) error
	DeletePost(id uint) error
	AdjustLikeCounters(id uint, likesDelta, dislikesDelta int) error
	SetLikeCounters(id uint, likesCount, dislikesCount int64) error
}

// PostgresPostRepository implements PostRepository for PostgreSQL
type PostgresPostRepository struct {
	db *gorm.DB
}

// NewPostgresPostRepository creates a new PostgresPostRepository
func NewPostgresPostRepository(db *gorm.DB) *PostgresPostRepository {
	return &PostgresPostRepository{db: db}
}

// CreatePost creates a new post in PostgreSQL
func (r *PostgresPostRepository) CreatePost(post *models.Post) error {
	return r.db.Create(post).Error
}

// GetPostByID retrieves a post by ID regardless of its ban state
func (r *PostgresPostRepository) GetPostByID(id uint) (*models.Post, error) {
	var post models.Post
	if err := r.db.First(&post, id).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

// GetVisiblePostByID retrieves a post whose own ban flag is unset and whose
// blog is not banned either
func (r *PostgresPostRepository) GetVisiblePostByID(id uint) (*models.Post, error) {
	var post models.Post
	err := r.db.
		Joins("JOIN blogs ON blogs.id = posts.blog_id").
		Where("posts.id = ? AND posts.banned = ? AND blogs.banned = ?", id, false, false).
		First(&post).Error
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// GetVisiblePosts retrieves one page of posts from non-banned blogs
func (r *PostgresPostRepository) GetVisiblePosts(pg pagination.Pagination) ([]models.Post, int64, error) {
	query := r.db.Model(&models.Post{}).
		Joins("JOIN blogs ON blogs.id = posts.blog_id").
		Where("posts.banned = ? AND blogs.banned = ?", false, false)
	return r.page(query, pg)
}

// GetVisiblePostsByBlog retrieves one page of non-banned posts of a blog
func (r *PostgresPostRepository) GetVisiblePostsByBlog(blogID uint, pg pagination.Pagination) ([]models.Post, int64, error) {
	query := r.db.Model(&models.Post{}).
		Where("blog_id = ? AND banned = ?", blogID, false)
	return r.page(query, pg)
}

func (r *PostgresPostRepository) page(query *gorm.DB, pg pagination.Pagination) ([]models.Post, int64, error) {
	var totalCount int64
	if err := query.Count(&totalCount).Error; err != nil {
		return nil, 0, err
	}

	var posts []models.Post
	err := query.Order("posts." + pg.OrderClause()).
		Offset(int(pg.Skip())).
		Limit(pg.PageSize).
		Find(&posts).Error
	if err != nil {
		return nil, 0, err
	}
	return posts, totalCount, nil
}

// GetPostsOwnedBy traverses the ownership chain in one query: blogs owned by
// the user joined to their posts, excluding banned blogs and posts. Returns
// an empty slice when the user owns no blogs.
func (r *PostgresPostRepository) GetPostsOwnedBy(ownerID uint) ([]models.OwnedPost, error) {
	var posts []models.OwnedPost
	err := r.db.Table("blogs").
		Select("posts.*, blogs.name AS blog_name").
		Joins("JOIN posts ON posts.blog_id = blogs.id").
		Where("blogs.owner_id = ? AND blogs.banned = ? AND posts.banned = ?", ownerID, false, false).
		Scan(&posts).Error
	if err != nil {
		return nil, err
	}
	return posts, nil
}

// UpdatePost updates an existing post in PostgreSQL
func (r *PostgresPostRepository) UpdatePost(post *models.Post) error {
	return r.db.Save(post).Error
}

// DeletePost deletes a post by ID from PostgreSQL
func (r *PostgresPostRepository) DeletePost(id uint) error {
	return r.db.Delete(&models.Post{}, id).Error
}

// AdjustLikeCounters applies deltas to the denormalized reaction counters of a post
func (r *PostgresPostRepository) AdjustLikeCounters(id uint, likesDelta, dislikesDelta int) error {
	return r.db.Model(&models.Post{}).Where("id = ?", id).Updates(map[string]interface{}{
		"likes_count":    gorm.Expr("likes_count + ?", likesDelta),
		"dislikes_count": gorm.Expr("dislikes_count + ?", dislikesDelta),
	}).Error
}

// SetLikeCounters overwrites the reaction counters of a post with recomputed values
func (r *PostgresPostRepository) SetLikeCounters(id uint, likesCount, dislikesCount int64) error {
	return r.db.Model(&models.Post{}).Where("id = ?", id).Updates(map[string]interface{}{
		"likes_count":    likesCount,
		"dislikes_count": dislikesCount,
	}).Error
}
