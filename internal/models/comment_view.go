package models

import "time"

// CommentatorInfo identifies the author of a comment within a view
type CommentatorInfo struct {
	UserID    uint   `json:"user_id"`
	UserLogin string `json:"user_login"`
}

// LikesInfo carries the aggregate reaction counters and the viewer's own status
type LikesInfo struct {
	LikesCount    int        `json:"likes_count"`
	DislikesCount int        `json:"dislikes_count"`
	MyStatus      LikeStatus `json:"my_status"`
}

// PostInfo identifies the post (and its blog) a comment belongs to,
// attached to comments in the blogger dashboard view
type PostInfo struct {
	ID       uint   `json:"id"`
	Title    string `json:"title"`
	BlogID   uint   `json:"blog_id"`
	BlogName string `json:"blog_name"`
}

// CommentView is the per-viewer representation of a comment.
// It lives for exactly one response and is never persisted.
type CommentView struct {
	ID              string          `json:"id"`
	Content         string          `json:"content"`
	CommentatorInfo CommentatorInfo `json:"commentator_info"`
	LikesInfo       LikesInfo       `json:"likes_info"`
	CreatedAt       time.Time       `json:"created_at"`
}

// OwnerCommentView is a CommentView enriched with the post context,
// served to bloggers reviewing comments across their own blogs
type OwnerCommentView struct {
	CommentView
	PostInfo PostInfo `json:"post_info"`
}

// NewCommentView builds a view model from a stored comment and the resolved viewer status
func NewCommentView(comment Comment, myStatus LikeStatus) CommentView {
	return CommentView{
		ID:      comment.ID.Hex(),
		Content: comment.Content,
		CommentatorInfo: CommentatorInfo{
			UserID:    comment.UserID,
			UserLogin: comment.UserLogin,
		},
		LikesInfo: LikesInfo{
			LikesCount:    comment.LikesCount,
			DislikesCount: comment.DislikesCount,
			MyStatus:      myStatus,
		},
		CreatedAt: comment.CreatedAt,
	}
}
