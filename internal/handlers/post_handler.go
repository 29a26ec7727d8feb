package handlers

import (
	"net/http"
	"strconv"

	"github.com/bloggerhub/backend/internal/models"
	"github.com/bloggerhub/backend/internal/services"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// PostHandler handles the post read endpoints and the post reaction route
type PostHandler struct {
	postQueries     *services.PostQueries
	postLikeService *services.PostLikeService
}

// NewPostHandler creates a new PostHandler
func NewPostHandler(postQueries *services.PostQueries, postLikeService *services.PostLikeService) *PostHandler {
	return &PostHandler{postQueries: postQueries, postLikeService: postLikeService}
}

// RegisterPublicRoutes registers post routes readable by anonymous viewers
func (h *PostHandler) RegisterPublicRoutes(g *echo.Group) {
	g.GET("/posts", h.GetPosts)
	g.GET("/posts/:id", h.GetPost)
}

// RegisterPostRoutes registers post routes requiring authentication
func (h *PostHandler) RegisterPostRoutes(g *echo.Group) {
	g.PUT("/posts/:id/like-status", h.SetLikeStatus)
}

// GetPosts retrieves one page of visible posts across all blogs,
// personalized for the viewer
func (h *PostHandler) GetPosts(c echo.Context) error {
	viewerID := getUserIDFromContext(c)
	pg := paginationFromRequest(c, services.PostSortFields)

	page, err := h.postQueries.FindPosts(c.Request().Context(), pg, viewerID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, page)
}

// GetPost retrieves a single visible post personalized for the viewer
func (h *PostHandler) GetPost(c echo.Context) error {
	viewerID := getUserIDFromContext(c)

	postID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Post not found")
	}

	post, err := h.postQueries.FindPostByID(c.Request().Context(), uint(postID), viewerID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if post == nil {
		return echo.NewHTTPError(http.StatusNotFound, "Post not found")
	}
	return c.JSON(http.StatusOK, post)
}

// SetLikeStatus sets the caller's reaction to a post
func (h *PostHandler) SetLikeStatus(c echo.Context) error {
	userID := getUserIDFromContext(c)

	postID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Post not found")
	}

	var req models.LikeStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	err = h.postLikeService.SetPostLikeStatus(c.Request().Context(), uint(postID), userID, models.LikeStatus(req.LikeStatus))
	if err != nil {
		if err == services.ErrNotFound {
			return echo.NewHTTPError(http.StatusNotFound, "Post not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.NoContent(http.StatusNoContent)
}
