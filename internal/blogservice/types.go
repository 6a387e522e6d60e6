package blogservice

import (
	"database/sql"
	"time"

	"github.com/lauriko/bloglist/internal/common"
)

type Blog struct {
	ID     int    `json:"id"`
	Title  string `json:"title"`
	Author string `json:"author"`
	URL    string `json:"url"`
	Likes  int    `json:"likes"`
	// User is the owning user, populated by the repository join on reads.
	User      Owner     `json:"user"`
	CreatedAt time.Time `json:"created_at"`
}

// Owner is the denormalized owner view carried on a blog record.
type Owner struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Name     string `json:"name"`
}

type BlogModel struct {
	db *sql.DB
}

type BlogService struct {
	m *BlogModel
	c *common.Cache
}
