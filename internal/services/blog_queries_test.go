package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bloggerhub/backend/internal/models"
	"github.com/bloggerhub/backend/internal/pagination"
	"github.com/bloggerhub/backend/internal/repositories/mock"
	"github.com/bloggerhub/backend/internal/services"
)

func blogPage(query pagination.Query) pagination.Pagination {
	return pagination.Normalize(query, services.BlogSortFields, "created_at")
}

func TestFindBlogsFiltersBannedAndSearches(t *testing.T) {
	blogs := mock.NewBlogRepository()
	queries := services.NewBlogQueries(blogs)

	require.NoError(t, blogs.CreateBlog(&models.Blog{OwnerID: 1, Name: "Gophers Daily"}))
	require.NoError(t, blogs.CreateBlog(&models.Blog{OwnerID: 1, Name: "Rustaceans"}))
	banned := models.Blog{OwnerID: 2, Name: "Gopher Spam", Banned: true}
	require.NoError(t, blogs.CreateBlog(&banned))

	page, err := queries.FindBlogs(blogPage(pagination.Query{SearchNameTerm: "gopher"}))

	require.NoError(t, err)
	assert.Equal(t, int64(1), page.TotalCount)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "Gophers Daily", page.Items[0].Name)
}

func TestFindBlogsByOwnerIncludesBanned(t *testing.T) {
	blogs := mock.NewBlogRepository()
	queries := services.NewBlogQueries(blogs)

	require.NoError(t, blogs.CreateBlog(&models.Blog{OwnerID: 1, Name: "Alive"}))
	require.NoError(t, blogs.CreateBlog(&models.Blog{OwnerID: 1, Name: "Taken Down", Banned: true}))
	require.NoError(t, blogs.CreateBlog(&models.Blog{OwnerID: 2, Name: "Not Mine"}))

	page, err := queries.FindBlogsByOwner(1, blogPage(pagination.Query{}))

	require.NoError(t, err)
	assert.Equal(t, int64(2), page.TotalCount)
	assert.Len(t, page.Items, 2)
}

func TestFindBlogByID(t *testing.T) {
	blogs := mock.NewBlogRepository()
	queries := services.NewBlogQueries(blogs)

	visible := models.Blog{OwnerID: 1, Name: "Gophers Daily"}
	require.NoError(t, blogs.CreateBlog(&visible))
	banned := models.Blog{OwnerID: 1, Name: "Taken Down", Banned: true}
	require.NoError(t, blogs.CreateBlog(&banned))

	blog, err := queries.FindBlogByID(visible.ID)
	require.NoError(t, err)
	require.NotNil(t, blog)
	assert.Equal(t, "Gophers Daily", blog.Name)

	hidden, err := queries.FindBlogByID(banned.ID)
	require.NoError(t, err)
	assert.Nil(t, hidden)

	missing, err := queries.FindBlogByID(999)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestFindPostsHidesBannedBlogPosts(t *testing.T) {
	ctx := context.Background()
	posts := mock.NewPostRepository()
	queries := services.NewPostQueries(posts, mock.NewPostLikeRepository())

	posts.AddBlog(models.Blog{ID: 1, OwnerID: 1, Name: "Alive"})
	posts.AddBlog(models.Blog{ID: 2, OwnerID: 1, Name: "Taken Down", Banned: true})

	visible := models.Post{BlogID: 1, Title: "Readable"}
	require.NoError(t, posts.CreatePost(&visible))
	hidden := models.Post{BlogID: 2, Title: "Hidden with its blog"}
	require.NoError(t, posts.CreatePost(&hidden))

	pg := pagination.Normalize(pagination.Query{}, services.PostSortFields, "created_at")
	page, err := queries.FindPosts(ctx, pg, services.AnonymousViewer)

	require.NoError(t, err)
	assert.Equal(t, int64(1), page.TotalCount)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "Readable", page.Items[0].Title)

	post, err := queries.FindPostByID(ctx, hidden.ID, services.AnonymousViewer)
	require.NoError(t, err)
	assert.Nil(t, post)
}
