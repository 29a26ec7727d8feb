// Package mock provides in-memory repository implementations for tests.
// They mirror the store-level visibility and pagination semantics of the
// real MongoDB and PostgreSQL repositories.
package mock

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/bloggerhub/backend/internal/models"
	"github.com/bloggerhub/backend/internal/pagination"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"gorm.io/gorm"
)

// CommentRepository is an in-memory repositories.CommentRepository
type CommentRepository struct {
	mutex    sync.RWMutex
	comments []models.Comment
	clock    time.Time
}

func NewCommentRepository() *CommentRepository {
	return &CommentRepository{clock: time.Now()}
}

func (m *CommentRepository) CreateComment(_ context.Context, comment *models.Comment) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	comment.ID = primitive.NewObjectID()
	// Strictly increasing timestamps keep created_at ordering deterministic
	m.clock = m.clock.Add(time.Second)
	comment.CreatedAt = m.clock
	m.comments = append(m.comments, *comment)
	return nil
}

func (m *CommentRepository) GetVisibleCommentByID(_ context.Context, id string) (*models.Comment, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	for _, comment := range m.comments {
		if comment.ID.Hex() == id && !comment.IsBanned {
			c := comment
			return &c, nil
		}
	}
	return nil, nil
}

func (m *CommentRepository) CountVisibleByPost(_ context.Context, postID uint) (int64, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	return int64(len(m.visible(postID))), nil
}

func (m *CommentRepository) GetVisibleByPost(_ context.Context, postID uint, pg pagination.Pagination) ([]models.Comment, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	return page(sorted(m.visible(postID), pg), pg), nil
}

func (m *CommentRepository) CountVisibleByPosts(_ context.Context, postIDs []uint) (int64, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	return int64(len(m.visibleIn(postIDs))), nil
}

func (m *CommentRepository) GetVisibleByPosts(_ context.Context, postIDs []uint, pg pagination.Pagination) ([]models.Comment, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	return page(sorted(m.visibleIn(postIDs), pg), pg), nil
}

func (m *CommentRepository) UpdateContent(_ context.Context, id string, content string) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	for i := range m.comments {
		if m.comments[i].ID.Hex() == id {
			m.comments[i].Content = content
			return nil
		}
	}
	return fmt.Errorf("comment not found")
}

func (m *CommentRepository) DeleteComment(_ context.Context, id string) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	for i := range m.comments {
		if m.comments[i].ID.Hex() == id {
			m.comments = append(m.comments[:i], m.comments[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("comment not found")
}

func (m *CommentRepository) AdjustLikeCounters(_ context.Context, id string, likesDelta, dislikesDelta int) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	for i := range m.comments {
		if m.comments[i].ID.Hex() == id {
			m.comments[i].LikesCount += likesDelta
			m.comments[i].DislikesCount += dislikesDelta
			return nil
		}
	}
	return fmt.Errorf("comment not found")
}

func (m *CommentRepository) SetLikeCounters(_ context.Context, id string, likesCount, dislikesCount int64) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	for i := range m.comments {
		if m.comments[i].ID.Hex() == id {
			m.comments[i].LikesCount = int(likesCount)
			m.comments[i].DislikesCount = int(dislikesCount)
			return nil
		}
	}
	return fmt.Errorf("comment not found")
}

func (m *CommentRepository) SetBannedByUser(_ context.Context, userID uint, banned bool) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	for i := range m.comments {
		if m.comments[i].UserID == userID {
			m.comments[i].IsBanned = banned
		}
	}
	return nil
}

func (m *CommentRepository) visible(postID uint) []models.Comment {
	var out []models.Comment
	for _, comment := range m.comments {
		if comment.PostID == postID && !comment.IsBanned {
			out = append(out, comment)
		}
	}
	return out
}

func (m *CommentRepository) visibleIn(postIDs []uint) []models.Comment {
	members := make(map[uint]bool, len(postIDs))
	for _, id := range postIDs {
		members[id] = true
	}
	var out []models.Comment
	for _, comment := range m.comments {
		if members[comment.PostID] && !comment.IsBanned {
			out = append(out, comment)
		}
	}
	return out
}

func sorted(comments []models.Comment, pg pagination.Pagination) []models.Comment {
	out := make([]models.Comment, len(comments))
	copy(out, comments)
	sort.SliceStable(out, func(i, j int) bool {
		var less bool
		switch pg.SortBy {
		case "content":
			less = out[i].Content < out[j].Content
		case "user_login":
			less = out[i].UserLogin < out[j].UserLogin
		default:
			less = out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		if pg.SortDesc {
			return !less
		}
		return less
	})
	return out
}

func page(comments []models.Comment, pg pagination.Pagination) []models.Comment {
	skip := int(pg.Skip())
	if skip >= len(comments) {
		return nil
	}
	end := skip + pg.PageSize
	if end > len(comments) {
		end = len(comments)
	}
	return comments[skip:end]
}

// CommentLikeRepository is an in-memory repositories.CommentLikeRepository
type CommentLikeRepository struct {
	mutex sync.RWMutex
	likes map[string]models.CommentLike
}

func NewCommentLikeRepository() *CommentLikeRepository {
	return &CommentLikeRepository{likes: make(map[string]models.CommentLike)}
}

func likeKey(commentID string, userID uint) string {
	return fmt.Sprintf("%s/%d", commentID, userID)
}

func (m *CommentLikeRepository) GetStatus(_ context.Context, commentID string, userID uint) (models.LikeStatus, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	like, exists := m.likes[likeKey(commentID, userID)]
	if !exists {
		return models.LikeStatusNone, nil
	}
	return like.Status, nil
}

func (m *CommentLikeRepository) GetStatuses(_ context.Context, commentIDs []string, userID uint) (map[string]models.LikeStatus, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	statuses := make(map[string]models.LikeStatus, len(commentIDs))
	for _, id := range commentIDs {
		if like, exists := m.likes[likeKey(id, userID)]; exists {
			statuses[id] = like.Status
		}
	}
	return statuses, nil
}

func (m *CommentLikeRepository) SetStatus(_ context.Context, commentID string, userID uint, status models.LikeStatus) (models.LikeStatus, error) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	objID, err := primitive.ObjectIDFromHex(commentID)
	if err != nil {
		return models.LikeStatusNone, err
	}

	key := likeKey(commentID, userID)
	prev := models.LikeStatusNone
	if like, exists := m.likes[key]; exists {
		prev = like.Status
	}
	m.likes[key] = models.CommentLike{
		ID:        primitive.NewObjectID(),
		CommentID: objID,
		UserID:    userID,
		Status:    status,
		AddedAt:   time.Now(),
	}
	return prev, nil
}

func (m *CommentLikeRepository) CountVisibleByComment(_ context.Context, commentID string, status models.LikeStatus) (int64, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	var count int64
	for _, like := range m.likes {
		if like.CommentID.Hex() == commentID && like.Status == status && !like.IsBanned {
			count++
		}
	}
	return count, nil
}

func (m *CommentLikeRepository) SetBannedByUser(_ context.Context, userID uint, banned bool) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	for key, like := range m.likes {
		if like.UserID == userID {
			like.IsBanned = banned
			m.likes[key] = like
		}
	}
	return nil
}

func (m *CommentLikeRepository) GetCommentIDsByUser(_ context.Context, userID uint) ([]string, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	seen := make(map[string]bool)
	var ids []string
	for _, like := range m.likes {
		if like.UserID == userID {
			id := like.CommentID.Hex()
			if !seen[id] {
				seen[id] = true
				ids = append(ids, id)
			}
		}
	}
	return ids, nil
}

// PostRepository is an in-memory repositories.PostRepository. It holds the
// blogs alongside the posts so the ownership traversal can be answered.
type PostRepository struct {
	mutex  sync.RWMutex
	posts  []models.Post
	blogs  map[uint]models.Blog
	nextID uint
}

func NewPostRepository() *PostRepository {
	return &PostRepository{blogs: make(map[uint]models.Blog), nextID: 1}
}

// AddBlog registers a blog for the ownership traversal
func (m *PostRepository) AddBlog(blog models.Blog) {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	m.blogs[blog.ID] = blog
}

func (m *PostRepository) CreatePost(post *models.Post) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	post.ID = m.nextID
	m.nextID++
	if post.CreatedAt.IsZero() {
		post.CreatedAt = time.Now()
	}
	m.posts = append(m.posts, *post)
	return nil
}

func (m *PostRepository) GetPostByID(id uint) (*models.Post, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	for _, post := range m.posts {
		if post.ID == id {
			p := post
			return &p, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *PostRepository) GetVisiblePostByID(id uint) (*models.Post, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	for _, post := range m.posts {
		if post.ID == id && !post.Banned {
			if blog, exists := m.blogs[post.BlogID]; exists && !blog.Banned {
				p := post
				return &p, nil
			}
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *PostRepository) GetVisiblePosts(pg pagination.Pagination) ([]models.Post, int64, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	var visible []models.Post
	for _, post := range m.posts {
		if post.Banned {
			continue
		}
		if blog, exists := m.blogs[post.BlogID]; exists && !blog.Banned {
			visible = append(visible, post)
		}
	}
	return pagePosts(visible, pg), int64(len(visible)), nil
}

func (m *PostRepository) GetVisiblePostsByBlog(blogID uint, pg pagination.Pagination) ([]models.Post, int64, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	var visible []models.Post
	for _, post := range m.posts {
		if post.BlogID == blogID && !post.Banned {
			visible = append(visible, post)
		}
	}
	return pagePosts(visible, pg), int64(len(visible)), nil
}

func (m *PostRepository) GetPostsOwnedBy(ownerID uint) ([]models.OwnedPost, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	var owned []models.OwnedPost
	for _, post := range m.posts {
		if post.Banned {
			continue
		}
		blog, exists := m.blogs[post.BlogID]
		if exists && blog.OwnerID == ownerID && !blog.Banned {
			owned = append(owned, models.OwnedPost{Post: post, BlogName: blog.Name})
		}
	}
	return owned, nil
}

func (m *PostRepository) UpdatePost(post *models.Post) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	for i := range m.posts {
		if m.posts[i].ID == post.ID {
			m.posts[i] = *post
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (m *PostRepository) DeletePost(id uint) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	for i := range m.posts {
		if m.posts[i].ID == id {
			m.posts = append(m.posts[:i], m.posts[i+1:]...)
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (m *PostRepository) AdjustLikeCounters(id uint, likesDelta, dislikesDelta int) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	for i := range m.posts {
		if m.posts[i].ID == id {
			m.posts[i].LikesCount += likesDelta
			m.posts[i].DislikesCount += dislikesDelta
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (m *PostRepository) SetLikeCounters(id uint, likesCount, dislikesCount int64) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	for i := range m.posts {
		if m.posts[i].ID == id {
			m.posts[i].LikesCount = int(likesCount)
			m.posts[i].DislikesCount = int(dislikesCount)
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func pagePosts(posts []models.Post, pg pagination.Pagination) []models.Post {
	out := make([]models.Post, len(posts))
	copy(out, posts)
	sort.SliceStable(out, func(i, j int) bool {
		var less bool
		switch pg.SortBy {
		case "title":
			less = out[i].Title < out[j].Title
		case "blog_id":
			less = out[i].BlogID < out[j].BlogID
		default:
			less = out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		if pg.SortDesc {
			return !less
		}
		return less
	})

	skip := int(pg.Skip())
	if skip >= len(out) {
		return nil
	}
	end := skip + pg.PageSize
	if end > len(out) {
		end = len(out)
	}
	return out[skip:end]
}

// PostLikeRepository is an in-memory repositories.PostLikeRepository
type PostLikeRepository struct {
	mutex sync.RWMutex
	likes map[string]models.PostLike
}

func NewPostLikeRepository() *PostLikeRepository {
	return &PostLikeRepository{likes: make(map[string]models.PostLike)}
}

func postLikeKey(postID, userID uint) string {
	return fmt.Sprintf("%d/%d", postID, userID)
}

func (m *PostLikeRepository) GetStatus(_ context.Context, postID uint, userID uint) (models.LikeStatus, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	like, exists := m.likes[postLikeKey(postID, userID)]
	if !exists {
		return models.LikeStatusNone, nil
	}
	return like.Status, nil
}

func (m *PostLikeRepository) GetStatuses(_ context.Context, postIDs []uint, userID uint) (map[uint]models.LikeStatus, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	statuses := make(map[uint]models.LikeStatus, len(postIDs))
	for _, id := range postIDs {
		if like, exists := m.likes[postLikeKey(id, userID)]; exists {
			statuses[id] = like.Status
		}
	}
	return statuses, nil
}

func (m *PostLikeRepository) SetStatus(_ context.Context, postID uint, userID uint, status models.LikeStatus) (models.LikeStatus, error) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	key := postLikeKey(postID, userID)
	prev := models.LikeStatusNone
	if like, exists := m.likes[key]; exists {
		prev = like.Status
	}
	m.likes[key] = models.PostLike{
		ID:      primitive.NewObjectID(),
		PostID:  postID,
		UserID:  userID,
		Status:  status,
		AddedAt: time.Now(),
	}
	return prev, nil
}

func (m *PostLikeRepository) CountVisibleByPost(_ context.Context, postID uint, status models.LikeStatus) (int64, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	var count int64
	for _, like := range m.likes {
		if like.PostID == postID && like.Status == status && !like.IsBanned {
			count++
		}
	}
	return count, nil
}

func (m *PostLikeRepository) SetBannedByUser(_ context.Context, userID uint, banned bool) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	for key, like := range m.likes {
		if like.UserID == userID {
			like.IsBanned = banned
			m.likes[key] = like
		}
	}
	return nil
}

func (m *PostLikeRepository) GetPostIDsByUser(_ context.Context, userID uint) ([]uint, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	seen := make(map[uint]bool)
	var ids []uint
	for _, like := range m.likes {
		if like.UserID == userID && !seen[like.PostID] {
			seen[like.PostID] = true
			ids = append(ids, like.PostID)
		}
	}
	return ids, nil
}

// BlogRepository is an in-memory repositories.BlogRepository
type BlogRepository struct {
	mutex  sync.RWMutex
	blogs  []models.Blog
	nextID uint
}

func NewBlogRepository() *BlogRepository {
	return &BlogRepository{nextID: 1}
}

func (m *BlogRepository) CreateBlog(blog *models.Blog) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	blog.ID = m.nextID
	m.nextID++
	if blog.CreatedAt.IsZero() {
		blog.CreatedAt = time.Now()
	}
	m.blogs = append(m.blogs, *blog)
	return nil
}

func (m *BlogRepository) GetBlogByID(id uint) (*models.Blog, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	for _, blog := range m.blogs {
		if blog.ID == id {
			b := blog
			return &b, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *BlogRepository) GetVisibleBlogByID(id uint) (*models.Blog, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	for _, blog := range m.blogs {
		if blog.ID == id && !blog.Banned {
			b := blog
			return &b, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *BlogRepository) GetVisibleBlogs(pg pagination.Pagination) ([]models.Blog, int64, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	term := strings.ToLower(pg.SearchNameTerm)
	var visible []models.Blog
	for _, blog := range m.blogs {
		if blog.Banned {
			continue
		}
		if term != "" && !strings.Contains(strings.ToLower(blog.Name), term) {
			continue
		}
		visible = append(visible, blog)
	}
	return pageBlogs(visible, pg), int64(len(visible)), nil
}

func (m *BlogRepository) GetBlogsByOwner(ownerID uint, pg pagination.Pagination) ([]models.Blog, int64, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	term := strings.ToLower(pg.SearchNameTerm)
	var owned []models.Blog
	for _, blog := range m.blogs {
		if blog.OwnerID != ownerID {
			continue
		}
		if term != "" && !strings.Contains(strings.ToLower(blog.Name), term) {
			continue
		}
		owned = append(owned, blog)
	}
	return pageBlogs(owned, pg), int64(len(owned)), nil
}

func (m *BlogRepository) UpdateBlog(blog *models.Blog) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	for i := range m.blogs {
		if m.blogs[i].ID == blog.ID {
			m.blogs[i] = *blog
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (m *BlogRepository) DeleteBlog(id uint) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	for i := range m.blogs {
		if m.blogs[i].ID == id {
			m.blogs = append(m.blogs[:i], m.blogs[i+1:]...)
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func pageBlogs(blogs []models.Blog, pg pagination.Pagination) []models.Blog {
	out := make([]models.Blog, len(blogs))
	copy(out, blogs)
	sort.SliceStable(out, func(i, j int) bool {
		var less bool
		switch pg.SortBy {
		case "name":
			less = out[i].Name < out[j].Name
		case "website_url":
			less = out[i].WebsiteURL < out[j].WebsiteURL
		default:
			less = out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		if pg.SortDesc {
			return !less
		}
		return less
	})

	skip := int(pg.Skip())
	if skip >= len(out) {
		return nil
	}
	end := skip + pg.PageSize
	if end > len(out) {
		end = len(out)
	}
	return out[skip:end]
}

// UserRepository is an in-memory repositories.UserRepository
type UserRepository struct {
	mutex  sync.RWMutex
	users  map[uint]models.User
	nextID uint
}

func NewUserRepository() *UserRepository {
	return &UserRepository{users: make(map[uint]models.User), nextID: 1}
}

func (m *UserRepository) CreateUser(user *models.User) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	user.ID = m.nextID
	m.nextID++
	user.CreatedAt = time.Now()
	m.users[user.ID] = *user
	return nil
}

func (m *UserRepository) GetUserByID(id uint) (*models.User, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	user, exists := m.users[id]
	if !exists {
		return nil, gorm.ErrRecordNotFound
	}
	return &user, nil
}

func (m *UserRepository) GetUserByEmail(email string) (*models.User, error) {
	return m.findBy(func(u models.User) bool { return u.Email == email })
}

func (m *UserRepository) GetUserByLogin(login string) (*models.User, error) {
	return m.findBy(func(u models.User) bool { return u.Login == login })
}

func (m *UserRepository) GetUserByFirebaseUID(firebaseUID string) (*models.User, error) {
	return m.findBy(func(u models.User) bool { return u.FirebaseUID == firebaseUID })
}

func (m *UserRepository) findBy(match func(models.User) bool) (*models.User, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	for _, user := range m.users {
		if match(user) {
			u := user
			return &u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *UserRepository) UpdateUser(user *models.User) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if _, exists := m.users[user.ID]; !exists {
		return gorm.ErrRecordNotFound
	}
	m.users[user.ID] = *user
	return nil
}

func (m *UserRepository) SetBanned(id uint, banned bool, reason string) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	user, exists := m.users[id]
	if !exists {
		return gorm.ErrRecordNotFound
	}
	user.Banned = banned
	if banned {
		user.BanReason = reason
	} else {
		user.BanReason = ""
	}
	m.users[id] = user
	return nil
}
