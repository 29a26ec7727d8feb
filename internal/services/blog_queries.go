package services

import (
	"github.com/bloggerhub/backend/internal/models"
	"github.com/bloggerhub/backend/internal/pagination"
	"github.com/bloggerhub/backend/internal/repositories"
	"gorm.io/gorm"
)

// BlogSortFields is the allow-list of sortable blog fields
var BlogSortFields = []string{"name", "website_url", "created_at"}

// BlogQueries serves the paginated blog lists
type BlogQueries struct {
	blogs repositories.BlogRepository
}

// NewBlogQueries creates a new BlogQueries
func NewBlogQueries(blogs repositories.BlogRepository) *BlogQueries {
	return &BlogQueries{blogs: blogs}
}

// FindBlogs returns one page of visible blogs, filtered by the search term
func (q *BlogQueries) FindBlogs(pg pagination.Pagination) (*pagination.Page[models.Blog], error) {
	blogs, totalCount, err := q.blogs.GetVisibleBlogs(pg)
	if err != nil {
		return nil, err
	}
	return pagination.NewPage(pg, totalCount, blogs), nil
}

// FindBlogsByOwner returns one page of the blogs a user owns, banned or not
func (q *BlogQueries) FindBlogsByOwner(ownerID uint, pg pagination.Pagination) (*pagination.Page[models.Blog], error) {
	blogs, totalCount, err := q.blogs.GetBlogsByOwner(ownerID, pg)
	if err != nil {
		return nil, err
	}
	return pagination.NewPage(pg, totalCount, blogs), nil
}

// FindBlogByID returns a visible blog, or nil when absent or banned
func (q *BlogQueries) FindBlogByID(id uint) (*models.Blog, error) {
	blog, err := q.blogs.GetVisibleBlogByID(id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return blog, nil
}
