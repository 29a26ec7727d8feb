package models

import "time"

// Post represents a post published in a blog (PostgreSQL)
type Post struct {
	ID               uint      `json:"id" gorm:"primaryKey"`
	BlogID           uint      `json:"blog_id" gorm:"index"` // ID of the blog the post belongs to
	Title            string    `json:"title" gorm:"size:30"`
	ShortDescription string    `json:"short_description"`
	Content          string    `json:"content"`
	LikesCount       int       `json:"likes_count" gorm:"default:0"`
	DislikesCount    int       `json:"dislikes_count" gorm:"default:0"`
	Banned           bool      `json:"-" gorm:"default:false;index"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"-"`
}

// PostView is the per-viewer representation of a post, carrying the
// viewer's own reaction next to the aggregate counters
type PostView struct {
	ID               uint      `json:"id"`
	BlogID           uint      `json:"blog_id"`
	Title            string    `json:"title"`
	ShortDescription string    `json:"short_description"`
	Content          string    `json:"content"`
	LikesInfo        LikesInfo `json:"likes_info"`
	CreatedAt        time.Time `json:"created_at"`
}

// NewPostView builds a view model from a stored post and the resolved viewer status
func NewPostView(post Post, myStatus LikeStatus) PostView {
	return PostView{
		ID:               post.ID,
		BlogID:           post.BlogID,
		Title:            post.Title,
		ShortDescription: post.ShortDescription,
		Content:          post.Content,
		LikesInfo: LikesInfo{
			LikesCount:    post.LikesCount,
			DislikesCount: post.DislikesCount,
			MyStatus:      myStatus,
		},
		CreatedAt: post.CreatedAt,
	}
}

// OwnedPost is a post joined with the name of the blog it belongs to.
// Produced by the blogs-to-posts ownership traversal.
type OwnedPost struct {
	Post
	BlogName string `json:"blog_name" gorm:"column:blog_name"`
}

// CreatePostRequest defines the request body for creating a new post
type CreatePostRequest struct {
	Title            string `json:"title" validate:"required,min=1,max=30"`
	ShortDescription string `json:"short_description" validate:"required,min=1,max=100"`
	Content          string `json:"content" validate:"required,min=1,max=1000"`
}

// UpdatePostRequest defines the request body for updating an existing post
type UpdatePostRequest struct {
	Title            string `json:"title" validate:"required,min=1,max=30"`
	ShortDescription string `json:"short_description" validate:"required,min=1,max=100"`
	Content          string `json:"content" validate:"required,min=1,max=1000"`
}
