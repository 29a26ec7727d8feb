package services

import (
	"context"

	"github.com/bloggerhub/backend/internal/models"
	"github.com/bloggerhub/backend/internal/repositories"
	"gorm.io/gorm"
)

// PostLikeService handles the post reaction write path, mirroring the
// comment one: upsert the reaction, then move the denormalized counters
// by the status transition
type PostLikeService struct {
	posts repositories.PostRepository
	likes repositories.PostLikeRepository
}

// NewPostLikeService creates a new PostLikeService
func NewPostLikeService(posts repositories.PostRepository, likes repositories.PostLikeRepository) *PostLikeService {
	return &PostLikeService{posts: posts, likes: likes}
}

// SetPostLikeStatus upserts the caller's reaction to a visible post and
// adjusts the post's counters. Re-submitting the current status is a no-op.
func (s *PostLikeService) SetPostLikeStatus(ctx context.Context, postID uint, userID uint, status models.LikeStatus) error {
	_, err := s.posts.GetVisiblePostByID(postID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return ErrNotFound
		}
		return err
	}

	prev, err := s.likes.SetStatus(ctx, postID, userID, status)
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
	return s.posts.AdjustLikeCounters(postID, likesDelta, dislikesDelta)
}
