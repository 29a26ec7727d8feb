package services_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bloggerhub/backend/internal/models"
	"github.com/bloggerhub/backend/internal/pagination"
	"github.com/bloggerhub/backend/internal/repositories/mock"
	"github.com/bloggerhub/backend/internal/services"
)

func defaultPage() pagination.Pagination {
	return pagination.Normalize(pagination.Query{}, services.CommentSortFields, "created_at")
}

func seedComment(t *testing.T, repo *mock.CommentRepository, postID, userID uint, content string) models.Comment {
	t.Helper()
	comment := models.Comment{
		PostID:    postID,
		UserID:    userID,
		UserLogin: fmt.Sprintf("user%d", userID),
		Content:   content,
	}
	require.NoError(t, repo.CreateComment(context.Background(), &comment))
	return comment
}

func TestFindCommentsByPostPaginates(t *testing.T) {
	ctx := context.Background()
	comments := mock.NewCommentRepository()
	likes := mock.NewCommentLikeRepository()
	posts := mock.NewPostRepository()
	queries := services.NewCommentQueries(comments, likes, posts)

	for i := 0; i < 12; i++ {
		seedComment(t, comments, 7, 1, fmt.Sprintf("comment number %02d with enough text", i))
	}

	pg := defaultPage()
	pg.PageNumber = 2
	page, err := queries.FindCommentsByPost(ctx, 7, pg, services.AnonymousViewer)

	require.NoError(t, err)
	require.NotNil(t, page)
	assert.Equal(t, int64(12), page.TotalCount)
	assert.Equal(t, 2, page.PagesCount)
	assert.Equal(t, 2, page.Page)
	assert.Equal(t, 10, page.PageSize)
	assert.Len(t, page.Items, 2)
}

func TestFindCommentsByPostDefaultSortIsNewestFirst(t *testing.T) {
	ctx := context.Background()
	comments := mock.NewCommentRepository()
	queries := services.NewCommentQueries(comments, mock.NewCommentLikeRepository(), mock.NewPostRepository())

	first := seedComment(t, comments, 1, 1, "the very first comment on this post")
	second := seedComment(t, comments, 1, 1, "the second comment arriving later on")

	page, err := queries.FindCommentsByPost(ctx, 1, defaultPage(), services.AnonymousViewer)

	require.NoError(t, err)
	require.NotNil(t, page)
	require.Len(t, page.Items, 2)
	assert.Equal(t, second.ID.Hex(), page.Items[0].ID)
	assert.Equal(t, first.ID.Hex(), page.Items[1].ID)
}

func TestFindCommentsByPostNilWhenNoVisibleComments(t *testing.T) {
	ctx := context.Background()
	comments := mock.NewCommentRepository()
	queries := services.NewCommentQueries(comments, mock.NewCommentLikeRepository(), mock.NewPostRepository())

	page, err := queries.FindCommentsByPost(ctx, 42, defaultPage(), services.AnonymousViewer)

	require.NoError(t, err)
	assert.Nil(t, page)
}

func TestFindCommentsByPostNilWhenAllCommentsBanned(t *testing.T) {
	ctx := context.Background()
	comments := mock.NewCommentRepository()
	queries := services.NewCommentQueries(comments, mock.NewCommentLikeRepository(), mock.NewPostRepository())

	seedComment(t, comments, 5, 9, "this comment belongs to a banned account")
	require.NoError(t, comments.SetBannedByUser(ctx, 9, true))

	page, err := queries.FindCommentsByPost(ctx, 5, defaultPage(), services.AnonymousViewer)

	require.NoError(t, err)
	assert.Nil(t, page)
}

func TestFindCommentsByPostExcludesBannedFromMixedSet(t *testing.T) {
	ctx := context.Background()
	comments := mock.NewCommentRepository()
	queries := services.NewCommentQueries(comments, mock.NewCommentLikeRepository(), mock.NewPostRepository())

	kept := seedComment(t, comments, 5, 1, "a perfectly fine visible comment here")
	seedComment(t, comments, 5, 9, "this comment belongs to a banned account")
	require.NoError(t, comments.SetBannedByUser(ctx, 9, true))

	page, err := queries.FindCommentsByPost(ctx, 5, defaultPage(), services.AnonymousViewer)

	require.NoError(t, err)
	require.NotNil(t, page)
	assert.Equal(t, int64(1), page.TotalCount)
	require.Len(t, page.Items, 1)
	assert.Equal(t, kept.ID.Hex(), page.Items[0].ID)
}

func TestFindCommentsByPostResolvesViewerStatus(t *testing.T) {
	ctx := context.Background()
	comments := mock.NewCommentRepository()
	likes := mock.NewCommentLikeRepository()
	queries := services.NewCommentQueries(comments, likes, mock.NewPostRepository())

	liked := seedComment(t, comments, 3, 1, "a comment the viewer has already liked")
	other := seedComment(t, comments, 3, 1, "a comment the viewer never reacted to")

	const viewer uint = 77
	_, err := likes.SetStatus(ctx, liked.ID.Hex(), viewer, models.LikeStatusLike)
	require.NoError(t, err)

	page, err := queries.FindCommentsByPost(ctx, 3, defaultPage(), viewer)
	require.NoError(t, err)
	require.NotNil(t, page)

	statuses := make(map[string]models.LikeStatus, len(page.Items))
	for _, item := range page.Items {
		statuses[item.ID] = item.LikesInfo.MyStatus
	}
	assert.Equal(t, models.LikeStatusLike, statuses[liked.ID.Hex()])
	assert.Equal(t, models.LikeStatusNone, statuses[other.ID.Hex()])

	// The same page rendered anonymously carries None everywhere
	anon, err := queries.FindCommentsByPost(ctx, 3, defaultPage(), services.AnonymousViewer)
	require.NoError(t, err)
	require.NotNil(t, anon)
	for _, item := range anon.Items {
		assert.Equal(t, models.LikeStatusNone, item.LikesInfo.MyStatus)
	}
}

func TestFindCommentsByPostPageBeyondLast(t *testing.T) {
	ctx := context.Background()
	comments := mock.NewCommentRepository()
	queries := services.NewCommentQueries(comments, mock.NewCommentLikeRepository(), mock.NewPostRepository())

	for i := 0; i < 3; i++ {
		seedComment(t, comments, 2, 1, fmt.Sprintf("comment %d padded out to minimum length", i))
	}

	pg := defaultPage()
	pg.PageNumber = 5
	page, err := queries.FindCommentsByPost(ctx, 2, pg, services.AnonymousViewer)

	require.NoError(t, err)
	require.NotNil(t, page)
	assert.Empty(t, page.Items)
	assert.NotNil(t, page.Items)
	assert.Equal(t, int64(3), page.TotalCount)
	assert.Equal(t, 1, page.PagesCount)
	assert.Equal(t, 5, page.Page)
}

func TestFindCommentByID(t *testing.T) {
	ctx := context.Background()
	comments := mock.NewCommentRepository()
	likes := mock.NewCommentLikeRepository()
	queries := services.NewCommentQueries(comments, likes, mock.NewPostRepository())

	comment := seedComment(t, comments, 1, 4, "a single comment fetched by identifier")
	const viewer uint = 8
	_, err := likes.SetStatus(ctx, comment.ID.Hex(), viewer, models.LikeStatusDislike)
	require.NoError(t, err)

	view, err := queries.FindCommentByID(ctx, comment.ID.Hex(), viewer)
	require.NoError(t, err)
	require.NotNil(t, view)
	assert.Equal(t, comment.ID.Hex(), view.ID)
	assert.Equal(t, uint(4), view.CommentatorInfo.UserID)
	assert.Equal(t, "user4", view.CommentatorInfo.UserLogin)
	assert.Equal(t, models.LikeStatusDislike, view.LikesInfo.MyStatus)

	// The same comment fetched anonymously reads None despite the stored reaction
	anon, err := queries.FindCommentByID(ctx, comment.ID.Hex(), services.AnonymousViewer)
	require.NoError(t, err)
	require.NotNil(t, anon)
	assert.Equal(t, models.LikeStatusNone, anon.LikesInfo.MyStatus)

	missing, err := queries.FindCommentByID(ctx, "ffffffffffffffffffffffff", viewer)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestFindCommentByIDNilWhenBanned(t *testing.T) {
	ctx := context.Background()
	comments := mock.NewCommentRepository()
	queries := services.NewCommentQueries(comments, mock.NewCommentLikeRepository(), mock.NewPostRepository())

	comment := seedComment(t, comments, 1, 9, "a comment whose author gets banned shortly")
	require.NoError(t, comments.SetBannedByUser(ctx, 9, true))

	view, err := queries.FindCommentByID(ctx, comment.ID.Hex(), services.AnonymousViewer)

	require.NoError(t, err)
	assert.Nil(t, view)
}

func TestFindCommentsForOwner(t *testing.T) {
	ctx := context.Background()
	comments := mock.NewCommentRepository()
	likes := mock.NewCommentLikeRepository()
	posts := mock.NewPostRepository()
	queries := services.NewCommentQueries(comments, likes, posts)

	const owner uint = 10
	posts.AddBlog(models.Blog{ID: 1, OwnerID: owner, Name: "Gophers Daily"})
	posts.AddBlog(models.Blog{ID: 2, OwnerID: 99, Name: "Someone Else"})

	mine := models.Post{BlogID: 1, Title: "On channels"}
	require.NoError(t, posts.CreatePost(&mine))
	foreign := models.Post{BlogID: 2, Title: "Not mine"}
	require.NoError(t, posts.CreatePost(&foreign))

	onMine := seedComment(t, comments, mine.ID, 5, "a comment left on the owner's own post")
	seedComment(t, comments, foreign.ID, 5, "a comment on somebody else's post here")

	page, err := queries.FindCommentsForOwner(ctx, owner, defaultPage())

	require.NoError(t, err)
	require.NotNil(t, page)
	assert.Equal(t, int64(1), page.TotalCount)
	require.Len(t, page.Items, 1)
	assert.Equal(t, onMine.ID.Hex(), page.Items[0].ID)
	assert.Equal(t, mine.ID, page.Items[0].PostInfo.ID)
	assert.Equal(t, "On channels", page.Items[0].PostInfo.Title)
	assert.Equal(t, uint(1), page.Items[0].PostInfo.BlogID)
	assert.Equal(t, "Gophers Daily", page.Items[0].PostInfo.BlogName)
}

func TestFindCommentsForOwnerEmptyPageWhenNothingOwned(t *testing.T) {
	ctx := context.Background()
	queries := services.NewCommentQueries(
		mock.NewCommentRepository(),
		mock.NewCommentLikeRepository(),
		mock.NewPostRepository(),
	)

	page, err := queries.FindCommentsForOwner(ctx, 123, defaultPage())

	require.NoError(t, err)
	require.NotNil(t, page)
	assert.Equal(t, int64(0), page.TotalCount)
	assert.Equal(t, 0, page.PagesCount)
	assert.NotNil(t, page.Items)
	assert.Empty(t, page.Items)
}

func TestFindCommentsForOwnerExcludesBannedBlogs(t *testing.T) {
	ctx := context.Background()
	comments := mock.NewCommentRepository()
	posts := mock.NewPostRepository()
	queries := services.NewCommentQueries(comments, mock.NewCommentLikeRepository(), posts)

	const owner uint = 10
	posts.AddBlog(models.Blog{ID: 1, OwnerID: owner, Name: "Banned Blog", Banned: true})
	post := models.Post{BlogID: 1, Title: "Hidden"}
	require.NoError(t, posts.CreatePost(&post))
	seedComment(t, comments, post.ID, 5, "a comment under a blog taken down later")

	page, err := queries.FindCommentsForOwner(ctx, owner, defaultPage())

	require.NoError(t, err)
	require.NotNil(t, page)
	assert.Equal(t, int64(0), page.TotalCount)
	assert.Empty(t, page.Items)
}

func TestFindCommentsForOwnerResolvesOwnerStatus(t *testing.T) {
	ctx := context.Background()
	comments := mock.NewCommentRepository()
	likes := mock.NewCommentLikeRepository()
	posts := mock.NewPostRepository()
	queries := services.NewCommentQueries(comments, likes, posts)

	const owner uint = 10
	posts.AddBlog(models.Blog{ID: 1, OwnerID: owner, Name: "Gophers Daily"})
	post := models.Post{BlogID: 1, Title: "On channels"}
	require.NoError(t, posts.CreatePost(&post))

	comment := seedComment(t, comments, post.ID, 5, "a comment the owner reacted to earlier")
	_, err := likes.SetStatus(ctx, comment.ID.Hex(), owner, models.LikeStatusLike)
	require.NoError(t, err)

	page, err := queries.FindCommentsForOwner(ctx, owner, defaultPage())

	require.NoError(t, err)
	require.NotNil(t, page)
	require.Len(t, page.Items, 1)
	assert.Equal(t, models.LikeStatusLike, page.Items[0].LikesInfo.MyStatus)
}
