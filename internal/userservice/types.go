package userservice

import (
	"database/sql"
	"time"

	"github.com/lauriko/bloglist/internal/common"
)

type UserService struct {
	m        *UserModel
	mb       common.MessageProducer
	secret   []byte
	tokenTTL time.Duration
}

type UserModel struct {
	db *sql.DB
}

type User struct {
	ID        int       `json:"id"`
	Username  string    `json:"username"`
	Name      string    `json:"name"`
	Email     string    `json:"email,omitempty"`
	Password  Password  `json:"-"`
	CreatedAt time.Time `json:"created_at"`

	// Blogs holds the owned blogs when the caller asked for them to be
	// populated. Nil otherwise.
	Blogs []OwnedBlog `json:"blogs"`
}

type Password struct {
	Plain string `json:"-"`
	hash  []byte `json:"-"`
}

// OwnedBlog is the denormalized view of a blog carried on a user listing.
type OwnedBlog struct {
	ID     int    `json:"id"`
	Title  string `json:"title"`
	Author string `json:"author"`
	URL    string `json:"url"`
	Likes  int    `json:"likes"`
}

// Identity is the authenticated principal decoded from a bearer token.
type Identity struct {
	ID       int
	Username string
}

// AuthToken is the login response payload.
type AuthToken struct {
	Token    string `json:"token"`
	Username string `json:"username"`
	Name     string `json:"name"`
}
