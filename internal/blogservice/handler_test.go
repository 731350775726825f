package blogservice

import (
	"context"
	"database/sql"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/sushihentaime/skywrite/internal/common"
)

func setupTestEnvironment(t *testing.T) (*BlogService, *sql.DB) {
	db := common.TestDB("file://../../migrations", t)
	c := common.NewCache(5*time.Minute, 10*time.Minute)

	return NewBlogService(db, c), db
}

func insertTestUser(t *testing.T, db *sql.DB, email, username string) int {
	t.Helper()

	var id int
	err := db.QueryRow("INSERT INTO users (fullname, email, username, profile_img, google_auth) VALUES ($1, $2, $3, '', false) RETURNING id", "Test User", email, username).Scan(&id)
	if err != nil {
		t.Fatalf("could not insert user: %v", err)
	}

	return id
}

func testContext(t *testing.T) context.Context {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	t.Cleanup(cancel)
	return ctx
}

func TestPublish(t *testing.T) {
	s, db := setupTestEnvironment(t)
	ctx := testContext(t)

	authorID := insertTestUser(t, db, "author@example.com", "author")

	t.Run("published blog increments total posts", func(t *testing.T) {
		req := publishedRequest()
		req.Title = "Hello, World! 2024"
		req.Tags = []string{"Go", "Testing"}
		req.AuthorID = authorID

		slug, err := s.Publish(ctx, req)
		assert.NoError(t, err)
		assert.Contains(t, slug, "Hello-World-2024-")

		var totalPosts int
		err = db.QueryRow("SELECT total_posts FROM users WHERE id = $1", authorID).Scan(&totalPosts)
		assert.NoError(t, err)
		assert.Equal(t, 1, totalPosts)

		blog, err := s.GetBlog(ctx, slug)
		assert.NoError(t, err)
		assert.Equal(t, []string{"go", "testing"}, blog.Tags)
		assert.Equal(t, "author", blog.AuthorUsername)
	})

	t.Run("draft with empty fields succeeds and does not count", func(t *testing.T) {
		req := &PublishBlogRequest{Title: "Untitled thoughts", Draft: true, AuthorID: authorID}

		slug, err := s.Publish(ctx, req)
		assert.NoError(t, err)
		assert.NotEmpty(t, slug)

		var totalPosts int
		err = db.QueryRow("SELECT total_posts FROM users WHERE id = $1", authorID).Scan(&totalPosts)
		assert.NoError(t, err)
		assert.Equal(t, 1, totalPosts)
	})

	t.Run("same title yields distinct slugs", func(t *testing.T) {
		first := publishedRequest()
		first.AuthorID = authorID
		second := publishedRequest()
		second.AuthorID = authorID

		slug1, err := s.Publish(ctx, first)
		assert.NoError(t, err)
		slug2, err := s.Publish(ctx, second)
		assert.NoError(t, err)
		assert.NotEqual(t, slug1, slug2)
	})

	t.Run("missing validation reported before any persistence", func(t *testing.T) {
		var before int
		err := db.QueryRow("SELECT COUNT(*) FROM blogs").Scan(&before)
		assert.NoError(t, err)

		req := publishedRequest()
		req.Banner = ""
		req.AuthorID = authorID

		_, err = s.Publish(ctx, req)
		var validationErr common.ValidationError
		assert.ErrorAs(t, err, &validationErr)

		var after int
		err = db.QueryRow("SELECT COUNT(*) FROM blogs").Scan(&after)
		assert.NoError(t, err)
		assert.Equal(t, before, after)
	})

	t.Run("unknown author", func(t *testing.T) {
		req := publishedRequest()
		req.AuthorID = 999999

		_, err := s.Publish(ctx, req)
		assert.ErrorIs(t, err, ErrUserForeignKey)
	})
}

func TestGetLatestBlogs(t *testing.T) {
	s, db := setupTestEnvironment(t)
	ctx := testContext(t)

	authorID := insertTestUser(t, db, "author@example.com", "author")

	titles := []string{"First Post", "Second Post", "Third Post"}
	for _, title := range titles {
		req := publishedRequest()
		req.Title = title
		req.AuthorID = authorID
		_, err := s.Publish(ctx, req)
		assert.NoError(t, err)
	}

	draft := &PublishBlogRequest{Title: "Hidden draft", Draft: true, AuthorID: authorID}
	_, err := s.Publish(ctx, draft)
	assert.NoError(t, err)

	blogs, err := s.GetLatestBlogs(ctx, 10, 0)
	assert.NoError(t, err)
	assert.Len(t, blogs, 3)
	for _, blog := range blogs {
		assert.False(t, blog.Draft)
	}

	t.Run("pagination", func(t *testing.T) {
		blogs, err := s.GetLatestBlogs(ctx, 2, 0)
		assert.NoError(t, err)
		assert.Len(t, blogs, 2)
	})

	t.Run("search", func(t *testing.T) {
		blogs, err := s.SearchBlogs(ctx, "second", 10, 0)
		assert.NoError(t, err)
		assert.Len(t, blogs, 1)
		assert.Equal(t, "Second Post", blogs[0].Title)
	})

	t.Run("search requires a query", func(t *testing.T) {
		_, err := s.SearchBlogs(ctx, "", 10, 0)
		var validationErr common.ValidationError
		assert.ErrorAs(t, err, &validationErr)
	})
}

func TestGetBlog(t *testing.T) {
	s, db := setupTestEnvironment(t)
	ctx := testContext(t)

	authorID := insertTestUser(t, db, "author@example.com", "author")

	req := publishedRequest()
	req.Content = Content{Blocks: []json.RawMessage{json.RawMessage(`{"type":"paragraph","data":{"text":"hello"}}`)}}
	req.AuthorID = authorID

	slug, err := s.Publish(ctx, req)
	assert.NoError(t, err)

	blog, err := s.GetBlog(ctx, slug)
	assert.NoError(t, err)
	assert.Equal(t, slug, blog.Slug)
	assert.Len(t, blog.Content.Blocks, 1)

	// second read comes from the cache
	cached, err := s.GetBlog(ctx, slug)
	assert.NoError(t, err)
	assert.Equal(t, blog, cached)

	t.Run("unknown slug", func(t *testing.T) {
		_, err := s.GetBlog(ctx, "does-not-exist")
		assert.ErrorIs(t, err, ErrRecordNotFound)
	})
}
