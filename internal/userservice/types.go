package userservice

import (
	"database/sql"
	"time"

	"github.com/sushihentaime/skywrite/internal/common"
)

type UserService struct {
	m        *UserModel
	mb       common.MessageProducer
	issuer   *TokenIssuer
	verifier IdentityVerifier
}

type UserModel struct {
	db *sql.DB
}

type User struct {
	ID         int       `json:"id"`
	Fullname   string    `json:"fullname"`
	Email      string    `json:"email"`
	Username   string    `json:"username"`
	Password   Password  `json:"-"`
	ProfileImg string    `json:"profile_img"`
	GoogleAuth bool      `json:"google_auth"`
	TotalPosts int       `json:"total_posts"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
	Version    int       `json:"version"`
}

type Password struct {
	Plain string `json:"-"`
	hash  []byte
}

// AuthPayload is the session payload returned by every successful
// signup or signin.
type AuthPayload struct {
	AccessToken string `json:"access_token"`
	ProfileImg  string `json:"profile_img"`
	Username    string `json:"username"`
	Fullname    string `json:"fullname"`
}

// RegisteredEvent is published on the user exchange after a signup so
// the mail consumer can send the welcome email.
type RegisteredEvent struct {
	Email    string
	Fullname string
	Username string
}
