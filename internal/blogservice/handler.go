package blogservice

import (
	"context"
	"database/sql"
	"strings"

	"github.com/sushihentaime/skywrite/internal/common"
)

func NewBlogService(db *sql.DB, c *common.Cache) *BlogService {
	return &BlogService{m: newBlogModel(db), c: c}
}

// Publish validates and persists a blog on behalf of the authenticated
// author and returns the public blog id. Drafts skip content
// validation and do not count towards the author's published posts.
//
// The author statistics update runs after the insert and is not part
// of a transaction: a failed update leaves the blog row in place and
// is reported as ErrAuthorUpdate so the caller knows about the
// discrepancy.
func (s *BlogService) Publish(ctx context.Context, req *PublishBlogRequest) (string, error) {
	if err := validateBlog(req); err != nil {
		return "", err
	}

	tags := make([]string, len(req.Tags))
	for i, tag := range req.Tags {
		tags[i] = strings.ToLower(tag)
	}

	slug, err := newSlug(req.Title)
	if err != nil {
		return "", err
	}

	blog := Blog{
		Slug:     slug,
		Title:    req.Title,
		Des:      sanitizeText(req.Des),
		Banner:   req.Banner,
		Content:  req.Content,
		Tags:     tags,
		AuthorID: req.AuthorID,
		Draft:    req.Draft,
	}

	if err := s.m.insert(ctx, &blog); err != nil {
		return "", err
	}

	increment := 1
	if req.Draft {
		increment = 0
	}

	if err := s.m.updateAuthorStats(ctx, req.AuthorID, increment); err != nil {
		return "", err
	}

	s.c.Flush()

	return blog.Slug, nil
}

// GetBlog returns a blog by its public id.
func (s *BlogService) GetBlog(ctx context.Context, slug string) (*Blog, error) {
	if slug == "" {
		v := common.NewValidator()
		v.AddError("blog_id", "must be provided")
		return nil, v.ValidationError()
	}

	key := common.CacheKeyBlog(slug)
	if cached, ok := s.c.Get(key); ok {
		return cached.(*Blog), nil
	}

	blog, err := s.m.getBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	s.c.Set(key, blog)

	return blog, nil
}

// GetLatestBlogs returns published blogs, newest first. Default limit
// is 10 and default offset is 0.
func (s *BlogService) GetLatestBlogs(ctx context.Context, limit, offset int) ([]Blog, error) {
	if limit < 1 {
		limit = 10
	}
	if offset < 0 {
		offset = 0
	}

	key := common.CacheKeyLatestBlogs(limit, offset)
	if cached, ok := s.c.Get(key); ok {
		return cached.([]Blog), nil
	}

	blogs, err := s.m.getLatest(ctx, limit, offset)
	if err != nil {
		return nil, err
	}

	s.c.Set(key, blogs)

	return blogs, nil
}

// SearchBlogs returns published blogs whose title contains the query.
func (s *BlogService) SearchBlogs(ctx context.Context, query string, limit, offset int) ([]Blog, error) {
	if query == "" {
		v := common.NewValidator()
		v.AddError("q", "must be provided")
		return nil, v.ValidationError()
	}

	if limit < 1 {
		limit = 10
	}
	if offset < 0 {
		offset = 0
	}

	key := common.CacheKeyBlogSearch(query, limit, offset)
	if cached, ok := s.c.Get(key); ok {
		return cached.([]Blog), nil
	}

	blogs, err := s.m.searchByTitle(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}

	s.c.Set(key, blogs)

	return blogs, nil
}
