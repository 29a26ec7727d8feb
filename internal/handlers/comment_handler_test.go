package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bloggerhub/backend/internal/models"
	"github.com/bloggerhub/backend/internal/pagination"
	"github.com/bloggerhub/backend/internal/repositories/mock"
	"github.com/bloggerhub/backend/internal/services"
)

type commentHandlerFixture struct {
	handler  *CommentHandler
	comments *mock.CommentRepository
	likes    *mock.CommentLikeRepository
	posts    *mock.PostRepository
	users    *mock.UserRepository
}

func newCommentHandlerFixture() *commentHandlerFixture {
	comments := mock.NewCommentRepository()
	likes := mock.NewCommentLikeRepository()
	posts := mock.NewPostRepository()
	users := mock.NewUserRepository()
	return &commentHandlerFixture{
		handler: NewCommentHandler(
			services.NewCommentQueries(comments, likes, posts),
			services.NewCommentService(comments, posts),
			services.NewLikeService(comments, likes),
			users,
		),
		comments: comments,
		likes:    likes,
		posts:    posts,
		users:    users,
	}
}

func (f *commentHandlerFixture) seedComment(t *testing.T, postID, userID uint, content string) models.Comment {
	t.Helper()
	comment := models.Comment{PostID: postID, UserID: userID, UserLogin: "commenter", Content: content}
	require.NoError(t, f.comments.CreateComment(context.Background(), &comment))
	return comment
}

func newEchoContext(method, target, body string, userID uint) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if userID != 0 {
		c.Set("user", &models.JwtCustomClaims{UserID: userID, Login: "commenter"})
	}
	return c, rec
}

func TestGetCommentsByPostReturnsPage(t *testing.T) {
	f := newCommentHandlerFixture()
	for i := 0; i < 12; i++ {
		f.seedComment(t, 7, 1, "padding content long enough to validate")
	}

	c, rec := newEchoContext(http.MethodGet, "/?page=2", "", 0)
	c.SetParamNames("post_id")
	c.SetParamValues("7")

	require.NoError(t, f.handler.GetCommentsByPost(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var page pagination.Page[models.CommentView]
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &page))
	assert.Equal(t, int64(12), page.TotalCount)
	assert.Equal(t, 2, page.PagesCount)
	assert.Equal(t, 2, page.Page)
	assert.Len(t, page.Items, 2)
}

func TestGetCommentsByPostNotFoundWhenEmpty(t *testing.T) {
	f := newCommentHandlerFixture()

	c, _ := newEchoContext(http.MethodGet, "/", "", 0)
	c.SetParamNames("post_id")
	c.SetParamValues("42")

	err := f.handler.GetCommentsByPost(c)
	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusNotFound, httpErr.Code)
}

func TestGetCommentNotFound(t *testing.T) {
	f := newCommentHandlerFixture()

	c, _ := newEchoContext(http.MethodGet, "/", "", 0)
	c.SetParamNames("id")
	c.SetParamValues("ffffffffffffffffffffffff")

	err := f.handler.GetComment(c)
	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusNotFound, httpErr.Code)
}

func TestGetCommentCarriesViewerStatus(t *testing.T) {
	f := newCommentHandlerFixture()
	comment := f.seedComment(t, 1, 2, "a comment with one like from the viewer")
	_, err := f.likes.SetStatus(context.Background(), comment.ID.Hex(), 9, models.LikeStatusLike)
	require.NoError(t, err)

	c, rec := newEchoContext(http.MethodGet, "/", "", 9)
	c.SetParamNames("id")
	c.SetParamValues(comment.ID.Hex())

	require.NoError(t, f.handler.GetComment(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var view models.CommentView
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &view))
	assert.Equal(t, models.LikeStatusLike, view.LikesInfo.MyStatus)
}

func TestCreateComment(t *testing.T) {
	f := newCommentHandlerFixture()
	f.posts.AddBlog(models.Blog{ID: 1, OwnerID: 3, Name: "Gophers Daily"})
	post := models.Post{BlogID: 1, Title: "On channels"}
	require.NoError(t, f.posts.CreatePost(&post))

	author := models.User{Login: "commenter", Email: "commenter@example.com"}
	require.NoError(t, f.users.CreateUser(&author))

	body := `{"content":"this comment is definitely long enough to pass"}`
	c, rec := newEchoContext(http.MethodPost, "/", body, author.ID)
	c.SetParamNames("post_id")
	c.SetParamValues("1")

	require.NoError(t, f.handler.CreateComment(c))
	assert.Equal(t, http.StatusCreated, rec.Code)

	var view models.CommentView
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &view))
	assert.Equal(t, "commenter", view.CommentatorInfo.UserLogin)
	assert.Equal(t, models.LikeStatusNone, view.LikesInfo.MyStatus)
}

func TestCreateCommentRejectsShortContent(t *testing.T) {
	f := newCommentHandlerFixture()
	author := models.User{Login: "commenter", Email: "commenter@example.com"}
	require.NoError(t, f.users.CreateUser(&author))

	c, _ := newEchoContext(http.MethodPost, "/", `{"content":"too short"}`, author.ID)
	c.SetParamNames("post_id")
	c.SetParamValues("1")

	err := f.handler.CreateComment(c)
	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)
}

func TestUpdateCommentForeignComment(t *testing.T) {
	f := newCommentHandlerFixture()
	comment := f.seedComment(t, 1, 5, "content belonging to a different author")

	body := `{"content":"an attempted overwrite by another account"}`
	c, _ := newEchoContext(http.MethodPut, "/", body, 6)
	c.SetParamNames("id")
	c.SetParamValues(comment.ID.Hex())

	err := f.handler.UpdateComment(c)
	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusForbidden, httpErr.Code)
}

func TestDeleteComment(t *testing.T) {
	f := newCommentHandlerFixture()
	comment := f.seedComment(t, 1, 5, "a comment its author removes through the api")

	c, rec := newEchoContext(http.MethodDelete, "/", "", 5)
	c.SetParamNames("id")
	c.SetParamValues(comment.ID.Hex())

	require.NoError(t, f.handler.DeleteComment(c))
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestSetLikeStatus(t *testing.T) {
	f := newCommentHandlerFixture()
	comment := f.seedComment(t, 1, 5, "a comment about to receive a like via http")

	c, rec := newEchoContext(http.MethodPut, "/", `{"like_status":"Like"}`, 9)
	c.SetParamNames("id")
	c.SetParamValues(comment.ID.Hex())

	require.NoError(t, f.handler.SetLikeStatus(c))
	assert.Equal(t, http.StatusNoContent, rec.Code)

	stored, err := f.comments.GetVisibleCommentByID(context.Background(), comment.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, 1, stored.LikesCount)
}

func TestSetLikeStatusRejectsUnknownValue(t *testing.T) {
	f := newCommentHandlerFixture()
	comment := f.seedComment(t, 1, 5, "a comment targeted with a malformed status")

	c, _ := newEchoContext(http.MethodPut, "/", `{"like_status":"Love"}`, 9)
	c.SetParamNames("id")
	c.SetParamValues(comment.ID.Hex())

	err := f.handler.SetLikeStatus(c)
	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)
}
