package services

import (
	"context"

	"github.com/bloggerhub/backend/internal/models"
	"github.com/bloggerhub/backend/internal/pagination"
	"github.com/bloggerhub/backend/internal/repositories"
	"gorm.io/gorm"
)

// PostSortFields is the allow-list of sortable post fields
var PostSortFields = []string{"title", "blog_id", "created_at"}

// PostQueries serves the paginated post lists, personalized with the
// viewer's reactions the same way comment views are
type PostQueries struct {
	posts repositories.PostRepository
	likes repositories.PostLikeRepository
}

// NewPostQueries creates a new PostQueries
func NewPostQueries(posts repositories.PostRepository, likes repositories.PostLikeRepository) *PostQueries {
	return &PostQueries{posts: posts, likes: likes}
}

// FindPosts returns one page of visible posts across all blogs
func (q *PostQueries) FindPosts(ctx context.Context, pg pagination.Pagination, viewerID uint) (*pagination.Page[models.PostView], error) {
	posts, totalCount, err := q.posts.GetVisiblePosts(pg)
	if err != nil {
		return nil, err
	}
	return q.pageOf(ctx, posts, pg, totalCount, viewerID)
}

// FindPostsByBlog returns one page of a blog's visible posts
func (q *PostQueries) FindPostsByBlog(ctx context.Context, blogID uint, pg pagination.Pagination, viewerID uint) (*pagination.Page[models.PostView], error) {
	posts, totalCount, err := q.posts.GetVisiblePostsByBlog(blogID, pg)
	if err != nil {
		return nil, err
	}
	return q.pageOf(ctx, posts, pg, totalCount, viewerID)
}

// FindPostByID returns the viewer's view of a visible post, or nil when
// absent or banned
func (q *PostQueries) FindPostByID(ctx context.Context, id uint, viewerID uint) (*models.PostView, error) {
	post, err := q.posts.GetVisiblePostByID(id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}

	myStatus := models.LikeStatusNone
	if viewerID != AnonymousViewer {
		myStatus, err = q.likes.GetStatus(ctx, id, viewerID)
		if err != nil {
			return nil, err
		}
	}

	view := models.NewPostView(*post, myStatus)
	return &view, nil
}

// pageOf assembles the view-model page, resolving the viewer's reactions
// for the whole page in one batched fetch
func (q *PostQueries) pageOf(ctx context.Context, posts []models.Post, pg pagination.Pagination, totalCount int64, viewerID uint) (*pagination.Page[models.PostView], error) {
	statuses := make(map[uint]models.LikeStatus, len(posts))
	if viewerID != AnonymousViewer && len(posts) > 0 {
		ids := make([]uint, len(posts))
		for i, post := range posts {
			ids[i] = post.ID
		}
		stored, err := q.likes.GetStatuses(ctx, ids, viewerID)
		if err != nil {
			return nil, err
		}
		statuses = stored
	}

	items := make([]models.PostView, len(posts))
	for i, post := range posts {
		myStatus, ok := statuses[post.ID]
		if !ok {
			myStatus = models.LikeStatusNone
		}
		items[i] = models.NewPostView(post, myStatus)
	}
	return pagination.NewPage(pg, totalCount, items), nil
}
