package handlers

import (
	"net/http"
	"strconv"

	"github.com/bloggerhub/backend/internal/models"
	"github.com/bloggerhub/backend/internal/pagination"
	"github.com/bloggerhub/backend/internal/repositories"
	"github.com/bloggerhub/backend/internal/services"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// CommentHandler handles HTTP requests related to comments
type CommentHandler struct {
	commentQueries *services.CommentQueries
	commentService *services.CommentService
	likeService    *services.LikeService
	userRepository repositories.UserRepository // To resolve the author for new comments
}

// NewCommentHandler creates a new CommentHandler
func NewCommentHandler(
	commentQueries *services.CommentQueries,
	commentService *services.CommentService,
	likeService *services.LikeService,
	userRepo repositories.UserRepository,
) *CommentHandler {
	return &CommentHandler{
		commentQueries: commentQueries,
		commentService: commentService,
		likeService:    likeService,
		userRepository: userRepo,
	}
}

// RegisterPublicRoutes registers comment routes readable by anonymous viewers
func (h *CommentHandler) RegisterPublicRoutes(g *echo.Group) {
	g.GET("/comments/:id", h.GetComment)
	g.GET("/posts/:post_id/comments", h.GetCommentsByPost)
}

// RegisterCommentRoutes registers comment routes requiring authentication
func (h *CommentHandler) RegisterCommentRoutes(g *echo.Group) {
	g.POST("/posts/:post_id/comments", h.CreateComment)
	g.PUT("/comments/:id", h.UpdateComment)
	g.DELETE("/comments/:id", h.DeleteComment)
	g.PUT("/comments/:id/like-status", h.SetLikeStatus)
}

// GetComment retrieves a single comment personalized for the viewer
func (h *CommentHandler) GetComment(c echo.Context) error {
	viewerID := getUserIDFromContext(c)

	view, err := h.commentQueries.FindCommentByID(c.Request().Context(), c.Param("id"), viewerID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if view == nil {
		return echo.NewHTTPError(http.StatusNotFound, "Comment not found")
	}

	return c.JSON(http.StatusOK, view)
}

// GetCommentsByPost retrieves one page of a post's comments
func (h *CommentHandler) GetCommentsByPost(c echo.Context) error {
	viewerID := getUserIDFromContext(c)

	postID, err := strconv.ParseUint(c.Param("post_id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Post not found")
	}

	pg := paginationFromRequest(c, services.CommentSortFields)

	page, err := h.commentQueries.FindCommentsByPost(c.Request().Context(), uint(postID), pg, viewerID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if page == nil {
		return echo.NewHTTPError(http.StatusNotFound, "Comments not found")
	}

	return c.JSON(http.StatusOK, page)
}

// CreateComment creates a new comment on a post
func (h *CommentHandler) CreateComment(c echo.Context) error {
	userID := getUserIDFromContext(c)

	postID, err := strconv.ParseUint(c.Param("post_id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Post not found")
	}

	var req models.CreateCommentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.userRepository.GetUserByID(userID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Authenticated user not found in database")
	}

	comment, err := h.commentService.CreateComment(c.Request().Context(), uint(postID), user, req.Content)
	if err != nil {
		if err == services.ErrNotFound {
			return echo.NewHTTPError(http.StatusNotFound, "Post not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	view, err := h.commentQueries.FindCommentByID(c.Request().Context(), comment.ID.Hex(), userID)
	if err != nil || view == nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to load created comment")
	}

	return c.JSON(http.StatusCreated, view)
}

// UpdateComment updates the caller's own comment
func (h *CommentHandler) UpdateComment(c echo.Context) error {
	userID := getUserIDFromContext(c)

	var req models.UpdateCommentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	err := h.commentService.UpdateComment(c.Request().Context(), c.Param("id"), userID, req.Content)
	if err != nil {
		return commentWriteError(err, "update")
	}

	return c.NoContent(http.StatusNoContent)
}

// DeleteComment deletes the caller's own comment
func (h *CommentHandler) DeleteComment(c echo.Context) error {
	userID := getUserIDFromContext(c)

	err := h.commentService.DeleteComment(c.Request().Context(), c.Param("id"), userID)
	if err != nil {
		return commentWriteError(err, "delete")
	}

	return c.NoContent(http.StatusNoContent)
}

// SetLikeStatus sets the caller's reaction to a comment
func (h *CommentHandler) SetLikeStatus(c echo.Context) error {
	userID := getUserIDFromContext(c)

	var req models.LikeStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	err := h.likeService.SetCommentLikeStatus(c.Request().Context(), c.Param("id"), userID, models.LikeStatus(req.LikeStatus))
	if err != nil {
		if err == services.ErrNotFound {
			return echo.NewHTTPError(http.StatusNotFound, "Comment not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.NoContent(http.StatusNoContent)
}

func commentWriteError(err error, action string) error {
	switch err {
	case services.ErrNotFound:
		return echo.NewHTTPError(http.StatusNotFound, "Comment not found")
	case services.ErrForbidden:
		return echo.NewHTTPError(http.StatusForbidden, "You are not authorized to "+action+" this comment")
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
}

// paginationFromRequest normalizes the list query parameters of a request
func paginationFromRequest(c echo.Context, allowedSortFields []string) pagination.Pagination {
	return pagination.Normalize(pagination.Query{
		PageNumber:     c.QueryParam("page"),
		PageSize:       c.QueryParam("page_size"),
		SortBy:         c.QueryParam("sort_by"),
		SortDirection:  c.QueryParam("sort_direction"),
		SearchNameTerm: c.QueryParam("search_name_term"),
	}, allowedSortFields, "created_at")
}
