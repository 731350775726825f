package userservice

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"
)

var (
	ErrDuplicateEmail    = errors.New("email already exists")
	ErrDuplicateUsername = errors.New("username already exists")
	ErrNotFound          = errors.New("user not found")
)

func NewUserModel(db *sql.DB) *UserModel {
	return &UserModel{db: db}
}

// uniqueViolation reports whether err is a unique constraint violation
// on the named constraint.
func uniqueViolation(err error, name string) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505" && pqErr.Constraint == name
	}

	return false
}

func (m *UserModel) insert(ctx context.Context, u *User) error {
	query := `
		INSERT INTO users (fullname, email, username, password, profile_img, google_auth)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, total_posts, created_at, updated_at, version`

	var password any
	if u.Password.hash != nil {
		password = u.Password.hash
	}

	args := []any{
		u.Fullname,
		u.Email,
		u.Username,
		password,
		u.ProfileImg,
		u.GoogleAuth,
	}

	err := m.db.QueryRowContext(ctx, query, args...).Scan(&u.ID, &u.TotalPosts, &u.CreatedAt, &u.UpdatedAt, &u.Version)
	if err != nil {
		switch {
		case uniqueViolation(err, "users_email_key"):
			return ErrDuplicateEmail
		case uniqueViolation(err, "users_username_key"):
			return ErrDuplicateUsername
		default:
			return err
		}
	}

	return nil
}

func (m *UserModel) getByEmail(ctx context.Context, email string) (*User, error) {
	query := `
		SELECT id, fullname, email, username, password, profile_img, google_auth, total_posts, created_at, updated_at, version
		FROM users
		WHERE email = $1`

	var u User

	err := m.db.QueryRowContext(ctx, query, email).Scan(
		&u.ID,
		&u.Fullname,
		&u.Email,
		&u.Username,
		&u.Password.hash,
		&u.ProfileImg,
		&u.GoogleAuth,
		&u.TotalPosts,
		&u.CreatedAt,
		&u.UpdatedAt,
		&u.Version,
	)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return nil, ErrNotFound
		default:
			return nil, err
		}
	}

	return &u, nil
}

func (m *UserModel) usernameExists(ctx context.Context, username string) (bool, error) {
	query := `
		SELECT EXISTS (SELECT 1 FROM users WHERE username = $1)`

	var exists bool
	err := m.db.QueryRowContext(ctx, query, username).Scan(&exists)
	if err != nil {
		return false, err
	}

	return exists, nil
}
