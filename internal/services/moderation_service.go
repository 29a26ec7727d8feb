package services

import (
	"context"

	"github.com/bloggerhub/backend/internal/models"
	"github.com/bloggerhub/backend/internal/repositories"
	"gorm.io/gorm"
)

// ModerationService handles the ban write path. Banning a user cascades
// onto both document collections: the user's comments disappear from every
// read path and the user's reactions stop contributing to counters.
type ModerationService struct {
	users     repositories.UserRepository
	comments  repositories.CommentRepository
	likes     repositories.CommentLikeRepository
	posts     repositories.PostRepository
	postLikes repositories.PostLikeRepository
}

// NewModerationService creates a new ModerationService
func NewModerationService(
	users repositories.UserRepository,
	comments repositories.CommentRepository,
	likes repositories.CommentLikeRepository,
	posts repositories.PostRepository,
	postLikes repositories.PostLikeRepository,
) *ModerationService {
	return &ModerationService{
		users:     users,
		comments:  comments,
		likes:     likes,
		posts:     posts,
		postLikes: postLikes,
	}
}

// SetUserBan bans or unbans a user and propagates the flag to the user's
// comments and reactions, then recounts the affected comments' counters
// from the reactions still visible.
func (s *ModerationService) SetUserBan(ctx context.Context, userID uint, banned bool, reason string) error {
	if err := s.users.SetBanned(userID, banned, reason); err != nil {
		if err == gorm.ErrRecordNotFound {
			return ErrNotFound
		}
		return err
	}

	if err := s.comments.SetBannedByUser(ctx, userID, banned); err != nil {
		return err
	}
	if err := s.likes.SetBannedByUser(ctx, userID, banned); err != nil {
		return err
	}

	if err := s.postLikes.SetBannedByUser(ctx, userID, banned); err != nil {
		return err
	}

	affected, err := s.likes.GetCommentIDsByUser(ctx, userID)
	if err != nil {
		return err
	}
	for _, commentID := range affected {
		likesCount, err := s.likes.CountVisibleByComment(ctx, commentID, models.LikeStatusLike)
		if err != nil {
			return err
		}
		dislikesCount, err := s.likes.CountVisibleByComment(ctx, commentID, models.LikeStatusDislike)
		if err != nil {
			return err
		}
		if err := s.comments.SetLikeCounters(ctx, commentID, likesCount, dislikesCount); err != nil {
			return err
		}
	}

	affectedPosts, err := s.postLikes.GetPostIDsByUser(ctx, userID)
	if err != nil {
		return err
	}
	for _, postID := range affectedPosts {
		likesCount, err := s.postLikes.CountVisibleByPost(ctx, postID, models.LikeStatusLike)
		if err != nil {
			return err
		}
		dislikesCount, err := s.postLikes.CountVisibleByPost(ctx, postID, models.LikeStatusDislike)
		if err != nil {
			return err
		}
		if err := s.posts.SetLikeCounters(postID, likesCount, dislikesCount); err != nil {
			return err
		}
	}
	return nil
}
