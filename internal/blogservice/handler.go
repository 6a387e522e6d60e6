package blogservice

import (
	"context"
	"database/sql"

	"github.com/lauriko/bloglist/internal/common"
	"github.com/lauriko/bloglist/internal/userservice"
)

func NewBlogService(db *sql.DB, c *common.Cache) *BlogService {
	return &BlogService{m: newBlogModel(db), c: c}
}

type CreateBlogRequest struct {
	Title  string `json:"title"`
	Author string `json:"author"`
	URL    string `json:"url"`
	// Likes is a pointer so an omitted value can default to zero while an
	// explicit negative still fails validation.
	Likes  *int `json:"likes"`
	UserID int  `json:"user_id"`
}

type UpdateBlogRequest struct {
	ID     int    `json:"id"`
	Title  string `json:"title"`
	Author string `json:"author"`
	URL    string `json:"url"`
	Likes  int    `json:"likes"`
}

// CreateBlog creates a new blog owned by the requesting user.
func (s *BlogService) CreateBlog(ctx context.Context, req *CreateBlogRequest) (*Blog, error) {
	likes := 0
	if req.Likes != nil {
		likes = *req.Likes
	}

	v := common.NewValidator()
	validateBlog(v, req.Title, req.URL, likes)
	validateInt(v, req.UserID, "user_id")
	if !v.Valid() {
		return nil, v.ValidationError()
	}

	blog := Blog{
		Title:  req.Title,
		Author: req.Author,
		URL:    req.URL,
		Likes:  likes,
		User:   Owner{ID: req.UserID},
	}

	if err := s.m.insert(ctx, &blog); err != nil {
		return nil, err
	}

	s.invalidate()

	return &blog, nil
}

// GetBlogByID returns a blog with its owner populated.
func (s *BlogService) GetBlogByID(ctx context.Context, id int) (*Blog, error) {
	v := common.NewValidator()
	validateInt(v, id, "id")
	if !v.Valid() {
		return nil, v.ValidationError()
	}

	return s.m.getBlogById(ctx, id)
}

// GetBlogs returns every blog. The listing is cached until the next mutation.
func (s *BlogService) GetBlogs(ctx context.Context) ([]Blog, error) {
	if s.c != nil {
		if cached, ok := s.c.Get(common.CacheKeyBlogList()); ok {
			return cached.([]Blog), nil
		}
	}

	blogs, err := s.m.getBlogs(ctx)
	if err != nil {
		return nil, err
	}

	if s.c != nil {
		s.c.Set(common.CacheKeyBlogList(), blogs)
	}

	return blogs, nil
}

// UpdateBlog overwrites a blog's fields. No ownership check applies here;
// only deletion is restricted to the creating user.
func (s *BlogService) UpdateBlog(ctx context.Context, req *UpdateBlogRequest) (*Blog, error) {
	v := common.NewValidator()
	validateBlog(v, req.Title, req.URL, req.Likes)
	validateInt(v, req.ID, "id")
	if !v.Valid() {
		return nil, v.ValidationError()
	}

	blog := Blog{
		ID:     req.ID,
		Title:  req.Title,
		Author: req.Author,
		URL:    req.URL,
		Likes:  req.Likes,
	}

	if err := s.m.updateBlog(ctx, &blog); err != nil {
		return nil, err
	}

	s.invalidate()

	return &blog, nil
}

// DeleteBlog removes a blog after verifying the acting user created it.
func (s *BlogService) DeleteBlog(ctx context.Context, id int, identity *userservice.Identity) error {
	v := common.NewValidator()
	validateInt(v, id, "id")
	if !v.Valid() {
		return v.ValidationError()
	}

	blog, err := s.m.getBlogById(ctx, id)
	if err != nil {
		return err
	}

	if err := AuthorizeOwner(identity, blog); err != nil {
		return err
	}

	if err := s.m.deleteBlog(ctx, blog.ID, identity.ID); err != nil {
		return err
	}

	s.invalidate()

	return nil
}

// Stats computes the aggregate statistics over the stored blog collection.
func (s *BlogService) Stats(ctx context.Context) (*BlogStats, error) {
	if s.c != nil {
		if cached, ok := s.c.Get(common.CacheKeyBlogStats()); ok {
			return cached.(*BlogStats), nil
		}
	}

	blogs, err := s.GetBlogs(ctx)
	if err != nil {
		return nil, err
	}

	stats := &BlogStats{
		TotalLikes: TotalLikes(blogs),
		Favorite:   FavoriteBlog(blogs),
		MostBlogs:  MostBlogs(blogs),
		MostLikes:  MostLikes(blogs),
	}

	if s.c != nil {
		s.c.Set(common.CacheKeyBlogStats(), stats)
	}

	return stats, nil
}

func (s *BlogService) invalidate() {
	if s.c != nil {
		s.c.Delete(common.CacheKeyBlogList())
		s.c.Delete(common.CacheKeyBlogStats())
	}
}
