package repositories

import (
	"github.com/bloggerhub/backend/internal/models"
	"github.com/bloggerhub/backend/internal/pagination"
	"gorm.io/gorm"
)

// BlogRepository defines the interface for blog data operations
type BlogRepository interface {
	CreateBlog(blog *models.Blog) error
	GetBlogByID(id uint) (*models.Blog, error)
	GetVisibleBlogByID(id uint) (*models.Blog, error)
	GetVisibleBlogs(pg pagination.Pagination) ([]models.Blog, int64, error)
	GetBlogsByOwner(ownerID uint, pg pagination.Pagination) ([]models.Blog, int64, error)
	UpdateBlog(blog *models.Blog) error
	DeleteBlog(id uint) error
}

// PostgresBlogRepository implements BlogRepository for PostgreSQL
type PostgresBlogRepository struct {
	db *gorm.DB
}

// NewPostgresBlogRepository creates a new PostgresBlogRepository
func NewPostgresBlogRepository(db *gorm.DB) *PostgresBlogRepository {
	return &PostgresBlogRepository{db: db}
}

// CreateBlog creates a new blog in PostgreSQL
func (r *PostgresBlogRepository) CreateBlog(blog *models.Blog) error {
	return r.db.Create(blog).Error
}

// GetBlogByID retrieves a blog by ID regardless of its ban state
func (r *PostgresBlogRepository) GetBlogByID(id uint) (*models.Blog, error) {
	var blog models.Blog
	if err := r.db.First(&blog, id).Error; err != nil {
		return nil, err
	}
	return &blog, nil
}

// GetVisibleBlogByID retrieves a non-banned blog by ID
func (r *PostgresBlogRepository) GetVisibleBlogByID(id uint) (*models.Blog, error) {
	var blog models.Blog
	if err := r.db.Where("id = ? AND banned = ?", id, false).First(&blog).Error; err != nil {
		return nil, err
	}
	return &blog, nil
}

// GetVisibleBlogs retrieves one page of non-banned blogs, optionally
// filtered by a case-insensitive name search term
func (r *PostgresBlogRepository) GetVisibleBlogs(pg pagination.Pagination) ([]models.Blog, int64, error) {
	query := r.db.Model(&models.Blog{}).Where("banned = ?", false)
	if pg.SearchNameTerm != "" {
		query = query.Where("LOWER(name) LIKE LOWER(?)", "%"+pg.SearchNameTerm+"%")
	}
	return r.page(query, pg)
}

// GetBlogsByOwner retrieves one page of blogs owned by a user
func (r *PostgresBlogRepository) GetBlogsByOwner(ownerID uint, pg pagination.Pagination) ([]models.Blog, int64, error) {
	query := r.db.Model(&models.Blog{}).Where("owner_id = ?", ownerID)
	if pg.SearchNameTerm != "" {
		query = query.Where("LOWER(name) LIKE LOWER(?)", "%"+pg.SearchNameTerm+"%")
	}
	return r.page(query, pg)
}

func (r *PostgresBlogRepository) page(query *gorm.DB, pg pagination.Pagination) ([]models.Blog, int64, error) {
	var totalCount int64
	if err := query.Count(&totalCount).Error; err != nil {
		return nil, 0, err
	}

	var blogs []models.Blog
	err := query.Order(pg.OrderClause()).
		Offset(int(pg.Skip())).
		Limit(pg.PageSize).
		Find(&blogs).Error
	if err != nil {
		return nil, 0, err
	}
	return blogs, totalCount, nil
}

// UpdateBlog updates an existing blog in PostgreSQL
func (r *PostgresBlogRepository) UpdateBlog(blog *models.Blog) error {
	return r.db.Save(blog).Error
}

// DeleteBlog deletes a blog by ID from PostgreSQL
func (r *PostgresBlogRepository) DeleteBlog(id uint) error {
	return r.db.Delete(&models.Blog{}, id).Error
}
