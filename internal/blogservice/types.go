package blogservice

import (
	"database/sql"
	"encoding/json"
	"time"

	"github.com/sushihentaime/skywrite/internal/common"
)

// Content is the structured editor document of a blog. Blocks are kept
// opaque; the service only cares whether any exist.
type Content struct {
	Time    int64             `json:"time,omitempty"`
	Blocks  []json.RawMessage `json:"blocks"`
	Version string            `json:"version,omitempty"`
}

type Blog struct {
	ID             int       `json:"-"`
	Slug           string    `json:"blog_id"`
	Title          string    `json:"title"`
	Des            string    `json:"des"`
	Banner         string    `json:"banner"`
	Content        Content   `json:"content"`
	Tags           []string  `json:"tags"`
	AuthorID       int       `json:"-"`
	AuthorUsername string    `json:"author_username,omitempty"`
	AuthorImg      string    `json:"author_img,omitempty"`
	Draft          bool      `json:"draft"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
	Version        int       `json:"-"`
}

type BlogModel struct {
	db *sql.DB
}

type BlogService struct {
	m *BlogModel
	c *common.Cache
}

type PublishBlogRequest struct {
	Title    string   `json:"title"`
	Des      string   `json:"des"`
	Banner   string   `json:"banner"`
	Content  Content  `json:"content"`
	Tags     []string `json:"tags"`
	Draft    bool     `json:"draft"`
	AuthorID int      `json:"-"`
}
