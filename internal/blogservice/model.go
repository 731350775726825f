package blogservice

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"github.com/lib/pq"
)

var (
	ErrRecordNotFound = errors.New("record not found")
	ErrUserForeignKey = errors.New("author does not exist")
	ErrAuthorUpdate   = errors.New("failed to update total posts number")
)

func newBlogModel(db *sql.DB) *BlogModel {
	return &BlogModel{db: db}
}

// foreignKeyError reports whether err is a violation of the named
// foreign key constraint.
func foreignKeyError(err error, name string) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23503" && pqErr.Constraint == name
	}

	return false
}

func (m *BlogModel) insert(ctx context.Context, b *Blog) error {
	query := `
		INSERT INTO blogs (slug, title, des, banner, content, tags, author_id, draft)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at, updated_at, version`

	content, err := json.Marshal(b.Content)
	if err != nil {
		return err
	}

	args := []any{
		b.Slug,
		b.Title,
		b.Des,
		b.Banner,
		content,
		pq.Array(b.Tags),
		b.AuthorID,
		b.Draft,
	}

	err = m.db.QueryRowContext(ctx, query, args...).Scan(&b.ID, &b.CreatedAt, &b.UpdatedAt, &b.Version)
	if err != nil {
		switch {
		case foreignKeyError(err, "blogs_author_id_fkey"):
			return ErrUserForeignKey
		default:
			return err
		}
	}

	return nil
}

// updateAuthorStats bumps the author's published post counter. The
// blogs relation itself records the authorship, so a miss here means
// the author row has gone away since the insert.
func (m *BlogModel) updateAuthorStats(ctx context.Context, authorID, increment int) error {
	query := `
		UPDATE users
		SET total_posts = total_posts + $1, updated_at = now()
		WHERE id = $2`

	res, err := m.db.ExecContext(ctx, query, increment, authorID)
	if err != nil {
		return err
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrAuthorUpdate
	}

	return nil
}

func scanBlog(row interface{ Scan(...any) error }, b *Blog) error {
	var content []byte

	err := row.Scan(
		&b.ID,
		&b.Slug,
		&b.Title,
		&b.Des,
		&b.Banner,
		&content,
		pq.Array(&b.Tags),
		&b.AuthorID,
		&b.Draft,
		&b.CreatedAt,
		&b.UpdatedAt,
		&b.Version,
		&b.AuthorUsername,
		&b.AuthorImg,
	)
	if err != nil {
		return err
	}

	return json.Unmarshal(content, &b.Content)
}

func (m *BlogModel) getBySlug(ctx context.Context, slug string) (*Blog, error) {
	query := `
		SELECT b.id, b.slug, b.title, b.des, b.banner, b.content, b.tags, b.author_id, b.draft, b.created_at, b.updated_at, b.version, u.username, u.profile_img
		FROM blogs b
		JOIN users u ON b.author_id = u.id
		WHERE b.slug = $1`

	var blog Blog
	err := scanBlog(m.db.QueryRowContext(ctx, query, slug), &blog)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return nil, ErrRecordNotFound
		default:
			return nil, err
		}
	}

	return &blog, nil
}

func (m *BlogModel) getLatest(ctx context.Context, limit, offset int) ([]Blog, error) {
	query := `
		SELECT b.id, b.slug, b.title, b.des, b.banner, b.content, b.tags, b.author_id, b.draft, b.created_at, b.updated_at, b.version, u.username, u.profile_img
		FROM blogs b
		JOIN users u ON b.author_id = u.id
		WHERE b.draft = false
		ORDER BY b.created_at DESC
		LIMIT $1 OFFSET $2`

	rows, err := m.db.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var blogs []Blog
	for rows.Next() {
		var blog Blog
		if err := scanBlog(rows, &blog); err != nil {
			return nil, err
		}
		blogs = append(blogs, blog)
	}

	return blogs, rows.Err()
}

func (m *BlogModel) searchByTitle(ctx context.Context, title string, limit, offset int) ([]Blog, error) {
	query := `
		SELECT b.id, b.slug, b.title, b.des, b.banner, b.content, b.tags, b.author_id, b.draft, b.created_at, b.updated_at, b.version, u.username, u.profile_img
		FROM blogs b
		JOIN users u ON b.author_id = u.id
		WHERE b.draft = false AND b.title ILIKE $1
		ORDER BY b.created_at DESC
		LIMIT $2 OFFSET $3`

	rows, err := m.db.QueryContext(ctx, query, "%"+title+"%", limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var blogs []Blog
	for rows.Next() {
		var blog Blog
		if err := scanBlog(rows, &blog); err != nil {
			return nil, err
		}
		blogs = append(blogs, blog)
	}

	return blogs, rows.Err()
}
