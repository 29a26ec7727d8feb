package services

import (
	"context"

	"github.com/bloggerhub/backend/internal/models"
	"github.com/bloggerhub/backend/internal/repositories"
)

// LikeService handles the comment reaction write path and keeps the
// denormalized counters on comment documents in step with it
type LikeService struct {
	comments repositories.CommentRepository
	likes    repositories.CommentLikeRepository
}

// NewLikeService creates a new LikeService
func NewLikeService(comments repositories.CommentRepository, likes repositories.CommentLikeRepository) *LikeService {
	return &LikeService{comments: comments, likes: likes}
}

// SetCommentLikeStatus upserts the caller's reaction to a comment and
// adjusts the comment's counters by the transition between the previous
// and the new status. Re-submitting the current status is a no-op.
func (s *LikeService) SetCommentLikeStatus(ctx context.Context, commentID string, userID uint, status models.LikeStatus) error {
	comment, err := s.comments.GetVisibleCommentByID(ctx, commentID)
	if err != nil {
		return err
	}
	if comment == nil {
		return ErrNotFound
	}

	prev, err := s.likes.SetStatus(ctx, commentID, userID, status)
	if err != nil {
		return err
	}
	if prev == status {
		return nil
	}

	likesDelta := counterWeight(status, models.LikeStatusLike) - counterWeight(prev, models.LikeStatusLike)
	dislikesDelta := counterWeight(status, models.LikeStatusDislike) - counterWeight(prev, models.LikeStatusDislike)
	if likesDelta == 0 && dislikesDelta == 0 {
		return nil
	}
	return s.comments.AdjustLikeCounters(ctx, commentID, likesDelta, dislikesDelta)
}

func counterWeight(status, target models.LikeStatus) int {
	if status == target {
		return 1
	}
	return 0
}
