// Package services composes the paginated, moderation-filtered,
// per-viewer view models served by the handlers, joining the MongoDB
// comment collections with the PostgreSQL ownership chain.
package services

import (
	"context"

	"github.com/bloggerhub/backend/internal/models"
	"github.com/bloggerhub/backend/internal/pagination"
	"github.com/bloggerhub/backend/internal/repositories"
)

// CommentSortFields is the allow-list of sortable comment fields
var CommentSortFields = []string{"content", "user_login", "created_at"}

// AnonymousViewer marks a request with no authenticated user
const AnonymousViewer uint = 0

// CommentQueries composes comment view models out of the document store
// (comments, likes) and the relational store (blog/post ownership)
type CommentQueries struct {
	comments repositories.CommentRepository
	likes    repositories.CommentLikeRepository
	posts    repositories.PostRepository
}

// NewCommentQueries creates a new CommentQueries
func NewCommentQueries(
	comments repositories.CommentRepository,
	likes repositories.CommentLikeRepository,
	posts repositories.PostRepository,
) *CommentQueries {
	return &CommentQueries{
		comments: comments,
		likes:    likes,
		posts:    posts,
	}
}

// FindCommentByID returns the viewer's view of a single comment, or nil
// when no visible comment exists under that ID
func (q *CommentQueries) FindCommentByID(ctx context.Context, id string, viewerID uint) (*models.CommentView, error) {
	comment, err := q.comments.GetVisibleCommentByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if comment == nil {
		return nil, nil
	}

	myStatus, err := q.myLikeStatus(ctx, id, viewerID)
	if err != nil {
		return nil, err
	}

	view := models.NewCommentView(*comment, myStatus)
	return &view, nil
}

// FindCommentsByPost returns one page of a post's comments, personalized for
// the viewer. A post with zero visible comments yields a nil page, which the
// caller is expected to surface as "not found" rather than an empty list.
func (q *CommentQueries) FindCommentsByPost(ctx context.Context, postID uint, pg pagination.Pagination, viewerID uint) (*pagination.Page[models.CommentView], error) {
	totalCount, err := q.comments.CountVisibleByPost(ctx, postID)
	if err != nil {
		return nil, err
	}
	if totalCount == 0 {
		return nil, nil
	}

	comments, err := q.comments.GetVisibleByPost(ctx, postID, pg)
	if err != nil {
		return nil, err
	}

	statuses, err := q.likeStatusesFor(ctx, comments, viewerID)
	if err != nil {
		return nil, err
	}

	items := make([]models.CommentView, len(comments))
	for i, comment := range comments {
		items[i] = models.NewCommentView(comment, statuses[comment.ID.Hex()])
	}
	return pagination.NewPage(pg, totalCount, items), nil
}

// FindCommentsForOwner returns one page of the comments left across all
// posts of the blogs owned by a user, each enriched with its post context.
// Unlike FindCommentsByPost it never returns nil: a blogger with no blogs,
// posts or comments legitimately sees an empty page.
func (q *CommentQueries) FindCommentsForOwner(ctx context.Context, ownerID uint, pg pagination.Pagination) (*pagination.Page[models.OwnerCommentView], error) {
	// The relational traversal must complete before the document-store
	// query: its id set is the scope filter for everything below.
	ownedPosts, err := q.posts.GetPostsOwnedBy(ownerID)
	if err != nil {
		return nil, err
	}

	postIDs := make([]uint, len(ownedPosts))
	postsByID := make(map[uint]models.OwnedPost, len(ownedPosts))
	for i, post := range ownedPosts {
		postIDs[i] = post.ID
		postsByID[post.ID] = post
	}

	totalCount, err := q.comments.CountVisibleByPosts(ctx, postIDs)
	if err != nil {
		return nil, err
	}

	comments, err := q.comments.GetVisibleByPosts(ctx, postIDs, pg)
	if err != nil {
		return nil, err
	}

	statuses, err := q.likeStatusesFor(ctx, comments, ownerID)
	if err != nil {
		return nil, err
	}

	items := make([]models.OwnerCommentView, len(comments))
	for i, comment := range comments {
		view := models.OwnerCommentView{
			CommentView: models.NewCommentView(comment, statuses[comment.ID.Hex()]),
		}
		// A post deleted between the two store reads simply leaves the
		// post context zero-valued; the request still succeeds.
		if post, ok := postsByID[comment.PostID]; ok {
			view.PostInfo = models.PostInfo{
				ID:       post.ID,
				Title:    post.Title,
				BlogID:   post.BlogID,
				BlogName: post.BlogName,
			}
		}
		items[i] = view
	}
	return pagination.NewPage(pg, totalCount, items), nil
}

// myLikeStatus resolves the viewer's stored reaction to a comment.
// Anonymous viewers resolve to None without touching the store.
func (q *CommentQueries) myLikeStatus(ctx context.Context, commentID string, viewerID uint) (models.LikeStatus, error) {
	if viewerID == AnonymousViewer {
		return models.LikeStatusNone, nil
	}
	return q.likes.GetStatus(ctx, commentID, viewerID)
}

// likeStatusesFor batches the per-item lookups of one page into a single
// multi-key fetch. Absent map entries read as the zero value, which is ""
// for LikeStatus, so missing records are normalized to None explicitly.
func (q *CommentQueries) likeStatusesFor(ctx context.Context, comments []models.Comment, viewerID uint) (map[string]models.LikeStatus, error) {
	statuses := make(map[string]models.LikeStatus, len(comments))
	for _, comment := range comments {
		statuses[comment.ID.Hex()] = models.LikeStatusNone
	}
	if viewerID == AnonymousViewer || len(comments) == 0 {
		return statuses, nil
	}

	ids := make([]string, len(comments))
	for i, comment := range comments {
		ids[i] = comment.ID.Hex()
	}

	stored, err := q.likes.GetStatuses(ctx, ids, viewerID)
	if err != nil {
		return nil, err
	}
	for id, status := range stored {
		statuses[id] = status
	}
	return statuses, nil
}
