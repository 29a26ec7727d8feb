package services

import (
	"context"

	"github.com/bloggerhub/backend/internal/models"
	"github.com/bloggerhub/backend/internal/repositories"
	"gorm.io/gorm"
)

// CommentService handles the comment write path
type CommentService struct {
	comments repositories.CommentRepository
	posts    repositories.PostRepository
}

// NewCommentService creates a new CommentService
func NewCommentService(comments repositories.CommentRepository, posts repositories.PostRepository) *CommentService {
	return &CommentService{comments: comments, posts: posts}
}

// CreateComment creates a comment on a visible post, capturing the author's
// login on the document so list views need no user lookup
func (s *CommentService) CreateComment(ctx context.Context, postID uint, author *models.User, content string) (*models.Comment, error) {
	_, err := s.posts.GetVisiblePostByID(postID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}

	comment := &models.Comment{
		PostID:    postID,
		UserID:    author.ID,
		UserLogin: author.Login,
		Content:   content,
	}
	if err := s.comments.CreateComment(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

// UpdateComment updates the content of the caller's own comment
func (s *CommentService) UpdateComment(ctx context.Context, id string, callerID uint, content string) error {
	comment, err := s.comments.GetVisibleCommentByID(ctx, id)
	if err != nil {
		return err
	}
	if comment == nil {
		return ErrNotFound
	}
	if comment.UserID != callerID {
		return ErrForbidden
	}
	return s.comments.UpdateContent(ctx, id, content)
}

// DeleteComment deletes the caller's own comment
func (s *CommentService) DeleteComment(ctx context.Context, id string, callerID uint) error {
	comment, err := s.comments.GetVisibleCommentByID(ctx, id)
	if err != nil {
		return err
	}
	if comment == nil {
		return ErrNotFound
	}
	if comment.UserID != callerID {
		return ErrForbidden
	}
	return s.comments.DeleteComment(ctx, id)
}
