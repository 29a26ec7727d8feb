package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bloggerhub/backend/internal/models"
	"github.com/bloggerhub/backend/internal/repositories/mock"
	"github.com/bloggerhub/backend/internal/services"
)

func TestSetUserBanHidesCommentsAndRecounts(t *testing.T) {
	ctx := context.Background()
	users := mock.NewUserRepository()
	comments := mock.NewCommentRepository()
	likes := mock.NewCommentLikeRepository()
	posts := mock.NewPostRepository()
	postLikes := mock.NewPostLikeRepository()
	moderation := services.NewModerationService(users, comments, likes, posts, postLikes)
	likeService := services.NewLikeService(comments, likes)
	postLikeService := services.NewPostLikeService(posts, postLikes)

	offender := models.User{Login: "offender", Email: "offender@example.com"}
	require.NoError(t, users.CreateUser(&offender))

	// The offender authored one comment, liked another user's comment and
	// liked a post
	authored := seedComment(t, comments, 1, offender.ID, "a comment written by the soon banned user")
	other := seedComment(t, comments, 1, 2, "an innocent comment the offender liked once")
	require.NoError(t, likeService.SetCommentLikeStatus(ctx, other.ID.Hex(), offender.ID, models.LikeStatusLike))
	require.NoError(t, likeService.SetCommentLikeStatus(ctx, other.ID.Hex(), 3, models.LikeStatusLike))

	posts.AddBlog(models.Blog{ID: 1, OwnerID: 2, Name: "Gophers Daily"})
	post := models.Post{BlogID: 1, Title: "On channels"}
	require.NoError(t, posts.CreatePost(&post))
	require.NoError(t, postLikeService.SetPostLikeStatus(ctx, post.ID, offender.ID, models.LikeStatusLike))
	require.NoError(t, postLikeService.SetPostLikeStatus(ctx, post.ID, 3, models.LikeStatusLike))

	require.NoError(t, moderation.SetUserBan(ctx, offender.ID, true, "spam"))

	banned, err := users.GetUserByID(offender.ID)
	require.NoError(t, err)
	assert.True(t, banned.Banned)
	assert.Equal(t, "spam", banned.BanReason)

	// The authored comment vanished from the read path
	hidden, err := comments.GetVisibleCommentByID(ctx, authored.ID.Hex())
	require.NoError(t, err)
	assert.Nil(t, hidden)

	// The innocent comment keeps only the visible reaction
	visible, err := comments.GetVisibleCommentByID(ctx, other.ID.Hex())
	require.NoError(t, err)
	require.NotNil(t, visible)
	assert.Equal(t, 1, visible.LikesCount)

	// The post keeps only the visible reaction too
	likedPost, err := posts.GetPostByID(post.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, likedPost.LikesCount)
}

func TestSetUserBanIsReversible(t *testing.T) {
	ctx := context.Background()
	users := mock.NewUserRepository()
	comments := mock.NewCommentRepository()
	likes := mock.NewCommentLikeRepository()
	moderation := services.NewModerationService(users, comments, likes, mock.NewPostRepository(), mock.NewPostLikeRepository())
	likeService := services.NewLikeService(comments, likes)

	offender := models.User{Login: "offender", Email: "offender@example.com"}
	require.NoError(t, users.CreateUser(&offender))

	authored := seedComment(t, comments, 1, offender.ID, "a comment that will survive the ban cycle")
	other := seedComment(t, comments, 1, 2, "a comment the user disliked before the ban")
	require.NoError(t, likeService.SetCommentLikeStatus(ctx, other.ID.Hex(), offender.ID, models.LikeStatusDislike))

	require.NoError(t, moderation.SetUserBan(ctx, offender.ID, true, "spam"))
	require.NoError(t, moderation.SetUserBan(ctx, offender.ID, false, ""))

	restored, err := users.GetUserByID(offender.ID)
	require.NoError(t, err)
	assert.False(t, restored.Banned)
	assert.Empty(t, restored.BanReason)

	comment, err := comments.GetVisibleCommentByID(ctx, authored.ID.Hex())
	require.NoError(t, err)
	assert.NotNil(t, comment)

	liked, err := comments.GetVisibleCommentByID(ctx, other.ID.Hex())
	require.NoError(t, err)
	require.NotNil(t, liked)
	assert.Equal(t, 1, liked.DislikesCount)
}

func TestSetUserBanUnknownUser(t *testing.T) {
	moderation := services.NewModerationService(
		mock.NewUserRepository(),
		mock.NewCommentRepository(),
		mock.NewCommentLikeRepository(),
		mock.NewPostRepository(),
		mock.NewPostLikeRepository(),
	)

	err := moderation.SetUserBan(context.Background(), 999, true, "spam")

	assert.ErrorIs(t, err, services.ErrNotFound)
}
