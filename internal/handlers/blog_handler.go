package handlers

import (
	"net/http"
	"strconv"

	"github.com/bloggerhub/backend/internal/models"
	"github.com/bloggerhub/backend/internal/repositories"
	"github.com/bloggerhub/backend/internal/services"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// BlogHandler handles HTTP requests related to blogs, including the
// blogger dashboard over the blogs the caller owns
type BlogHandler struct {
	blogQueries    *services.BlogQueries
	postQueries    *services.PostQueries
	commentQueries *services.CommentQueries
	blogRepository repositories.BlogRepository
	postRepository repositories.PostRepository
}

// NewBlogHandler creates a new BlogHandler
func NewBlogHandler(
	blogQueries *services.BlogQueries,
	postQueries *services.PostQueries,
	commentQueries *services.CommentQueries,
	blogRepo repositories.BlogRepository,
	postRepo repositories.PostRepository,
) *BlogHandler {
	return &BlogHandler{
		blogQueries:    blogQueries,
		postQueries:    postQueries,
		commentQueries: commentQueries,
		blogRepository: blogRepo,
		postRepository: postRepo,
	}
}

// RegisterPublicRoutes registers blog routes readable by anonymous viewers
func (h *BlogHandler) RegisterPublicRoutes(g *echo.Group) {
	g.GET("/blogs", h.GetBlogs)
	g.GET("/blogs/:id", h.GetBlog)
	g.GET("/blogs/:id/posts", h.GetBlogPosts)
}

// RegisterBloggerRoutes registers the authenticated blogger dashboard routes
func (h *BlogHandler) RegisterBloggerRoutes(g *echo.Group) {
	g.GET("/blogs", h.GetOwnBlogs)
	g.POST("/blogs", h.CreateBlog)
	g.PUT("/blogs/:id", h.UpdateBlog)
	g.DELETE("/blogs/:id", h.DeleteBlog)
	g.POST("/blogs/:id/posts", h.CreatePost)
	g.PUT("/blogs/:blog_id/posts/:post_id", h.UpdatePost)
	g.DELETE("/blogs/:blog_id/posts/:post_id", h.DeletePost)
	g.GET("/blogs/comments", h.GetOwnBlogComments)
}

// GetBlogs retrieves one page of visible blogs
func (h *BlogHandler) GetBlogs(c echo.Context) error {
	pg := paginationFromRequest(c, services.BlogSortFields)

	page, err := h.blogQueries.FindBlogs(pg)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, page)
}

// GetBlog retrieves a single visible blog
func (h *BlogHandler) GetBlog(c echo.Context) error {
	blogID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Blog not found")
	}

	blog, err := h.blogQueries.FindBlogByID(uint(blogID))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if blog == nil {
		return echo.NewHTTPError(http.StatusNotFound, "Blog not found")
	}
	return c.JSON(http.StatusOK, blog)
}

// GetBlogPosts retrieves one page of a visible blog's posts
func (h *BlogHandler) GetBlogPosts(c echo.Context) error {
	viewerID := getUserIDFromContext(c)

	blogID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Blog not found")
	}

	blog, err := h.blogQueries.FindBlogByID(uint(blogID))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if blog == nil {
		return echo.NewHTTPError(http.StatusNotFound, "Blog not found")
	}

	pg := paginationFromRequest(c, services.PostSortFields)

	page, err := h.postQueries.FindPostsByBlog(c.Request().Context(), blog.ID, pg, viewerID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, page)
}

// GetOwnBlogs retrieves one page of the caller's own blogs
func (h *BlogHandler) GetOwnBlogs(c echo.Context) error {
	userID := getUserIDFromContext(c)
	pg := paginationFromRequest(c, services.BlogSortFields)

	page, err := h.blogQueries.FindBlogsByOwner(userID, pg)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, page)
}

// GetOwnBlogComments retrieves one page of the comments left across all
// posts of the caller's blogs. A blogger with no blogs or comments gets a
// valid empty page, never a 404.
func (h *BlogHandler) GetOwnBlogComments(c echo.Context) error {
	userID := getUserIDFromContext(c)
	pg := paginationFromRequest(c, services.CommentSortFields)

	page, err := h.commentQueries.FindCommentsForOwner(c.Request().Context(), userID, pg)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, page)
}

// CreateBlog creates a new blog owned by the caller
func (h *BlogHandler) CreateBlog(c echo.Context) error {
	userID := getUserIDFromContext(c)

	var req models.CreateBlogRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	blog := &models.Blog{
		OwnerID:     userID,
		Name:        req.Name,
		Description: req.Description,
		WebsiteURL:  req.WebsiteURL,
	}
	if err := h.blogRepository.CreateBlog(blog); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusCreated, blog)
}

// UpdateBlog updates one of the caller's own blogs
func (h *BlogHandler) UpdateBlog(c echo.Context) error {
	userID := getUserIDFromContext(c)

	blog, httpErr := h.ownBlog(c.Param("id"), userID)
	if httpErr != nil {
		return httpErr
	}

	var req models.UpdateBlogRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	blog.Name = req.Name
	blog.Description = req.Description
	blog.WebsiteURL = req.WebsiteURL

	if err := h.blogRepository.UpdateBlog(blog); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.NoContent(http.StatusNoContent)
}

// DeleteBlog deletes one of the caller's own blogs
func (h *BlogHandler) DeleteBlog(c echo.Context) error {
	userID := getUserIDFromContext(c)

	blog, httpErr := h.ownBlog(c.Param("id"), userID)
	if httpErr != nil {
		return httpErr
	}

	if err := h.blogRepository.DeleteBlog(blog.ID); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.NoContent(http.StatusNoContent)
}

// CreatePost creates a new post in one of the caller's own blogs
func (h *BlogHandler) CreatePost(c echo.Context) error {
	userID := getUserIDFromContext(c)

	blog, httpErr := h.ownBlog(c.Param("id"), userID)
	if httpErr != nil {
		return httpErr
	}

	var req models.CreatePostRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	post := &models.Post{
		BlogID:           blog.ID,
		Title:            req.Title,
		ShortDescription: req.ShortDescription,
		Content:          req.Content,
	}
	if err := h.postRepository.CreatePost(post); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusCreated, post)
}

// UpdatePost updates a post in one of the caller's own blogs
func (h *BlogHandler) UpdatePost(c echo.Context) error {
	userID := getUserIDFromContext(c)

	blog, httpErr := h.ownBlog(c.Param("blog_id"), userID)
	if httpErr != nil {
		return httpErr
	}

	post, httpErr := h.blogPost(c.Param("post_id"), blog.ID)
	if httpErr != nil {
		return httpErr
	}

	var req models.UpdatePostRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	post.Title = req.Title
	post.ShortDescription = req.ShortDescription
	post.Content = req.Content

	if err := h.postRepository.UpdatePost(post); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.NoContent(http.StatusNoContent)
}

// DeletePost deletes a post from one of the caller's own blogs
func (h *BlogHandler) DeletePost(c echo.Context) error {
	userID := getUserIDFromContext(c)

	blog, httpErr := h.ownBlog(c.Param("blog_id"), userID)
	if httpErr != nil {
		return httpErr
	}

	post, httpErr := h.blogPost(c.Param("post_id"), blog.ID)
	if httpErr != nil {
		return httpErr
	}

	if err := h.postRepository.DeletePost(post.ID); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.NoContent(http.StatusNoContent)
}

// ownBlog resolves a blog id parameter and ensures the caller owns the blog
func (h *BlogHandler) ownBlog(idParam string, userID uint) (*models.Blog, error) {
	blogID, err := strconv.ParseUint(idParam, 10, 32)
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusNotFound, "Blog not found")
	}

	blog, err := h.blogRepository.GetBlogByID(uint(blogID))
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, echo.NewHTTPError(http.StatusNotFound, "Blog not found")
		}
		return nil, echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if blog.OwnerID != userID {
		return nil, echo.NewHTTPError(http.StatusForbidden, "You are not the owner of this blog")
	}
	return blog, nil
}

// blogPost resolves a post id parameter and ensures it belongs to the blog
func (h *BlogHandler) blogPost(idParam string, blogID uint) (*models.Post, error) {
	postID, err := strconv.ParseUint(idParam, 10, 32)
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusNotFound, "Post not found")
	}

	post, err := h.postRepository.GetPostByID(uint(postID))
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, echo.NewHTTPError(http.StatusNotFound, "Post not found")
		}
		return nil, echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if post.BlogID != blogID {
		return nil, echo.NewHTTPError(http.StatusNotFound, "Post not found")
	}
	return post, nil
}
