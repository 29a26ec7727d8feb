package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bloggerhub/backend/internal/models"
	"github.com/bloggerhub/backend/internal/repositories/mock"
	"github.com/bloggerhub/backend/internal/services"
)

type postHandlerFixture struct {
	handler *PostHandler
	posts   *mock.PostRepository
	likes   *mock.PostLikeRepository
}

func newPostHandlerFixture() *postHandlerFixture {
	posts := mock.NewPostRepository()
	likes := mock.NewPostLikeRepository()
	return &postHandlerFixture{
		handler: NewPostHandler(
			services.NewPostQueries(posts, likes),
			services.NewPostLikeService(posts, likes),
		),
		posts: posts,
		likes: likes,
	}
}

func (f *postHandlerFixture) seedPost(t *testing.T, title string) models.Post {
	t.Helper()
	f.posts.AddBlog(models.Blog{ID: 1, OwnerID: 1, Name: "Gophers Daily"})
	post := models.Post{BlogID: 1, Title: title}
	require.NoError(t, f.posts.CreatePost(&post))
	return post
}

func TestSetPostLikeStatus(t *testing.T) {
	f := newPostHandlerFixture()
	post := f.seedPost(t, "On channels")

	c, rec := newEchoContext(http.MethodPut, "/", `{"like_status":"Like"}`, 9)
	c.SetParamNames("id")
	c.SetParamValues("1")

	require.NoError(t, f.handler.SetLikeStatus(c))
	assert.Equal(t, http.StatusNoContent, rec.Code)

	stored, err := f.posts.GetPostByID(post.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, stored.LikesCount)

	status, err := f.likes.GetStatus(context.Background(), post.ID, 9)
	require.NoError(t, err)
	assert.Equal(t, models.LikeStatusLike, status)
}

func TestSetPostLikeStatusUnknownPost(t *testing.T) {
	f := newPostHandlerFixture()

	c, _ := newEchoContext(http.MethodPut, "/", `{"like_status":"Like"}`, 9)
	c.SetParamNames("id")
	c.SetParamValues("42")

	err := f.handler.SetLikeStatus(c)
	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusNotFound, httpErr.Code)
}

func TestGetPostCarriesViewerStatus(t *testing.T) {
	f := newPostHandlerFixture()
	post := f.seedPost(t, "On channels")
	_, err := f.likes.SetStatus(context.Background(), post.ID, 9, models.LikeStatusDislike)
	require.NoError(t, err)

	c, rec := newEchoContext(http.MethodGet, "/", "", 9)
	c.SetParamNames("id")
	c.SetParamValues("1")

	require.NoError(t, f.handler.GetPost(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var view models.PostView
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &view))
	assert.Equal(t, models.LikeStatusDislike, view.LikesInfo.MyStatus)
}

func TestGetPostNotFound(t *testing.T) {
	f := newPostHandlerFixture()

	c, _ := newEchoContext(http.MethodGet, "/", "", 0)
	c.SetParamNames("id")
	c.SetParamValues("42")

	err := f.handler.GetPost(c)
	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusNotFound, httpErr.Code)
}
