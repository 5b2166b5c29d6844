package contract

import (
	"context"

	"github.com/devfolio/blog-api/internal/domain/entity"
)

// IBlogRepository provides methods for managing blog data in the database.
type IBlogRepository interface {
	// CreateBlog inserts a new post. Returns entity.ErrConflict if the
	// slug is already taken (unique index on slug).
	CreateBlog(ctx context.Context, blog *entity.Blog) error

	// GetBlogBySlug retrieves a single post by slug. When publishedOnly is
	// set, unpublished posts are reported as entity.ErrNotFound so that
	// anonymous callers cannot distinguish them from absent ones.
	GetBlogBySlug(ctx context.Context, slug string, publishedOnly bool) (*entity.Blog, error)

	// GetBlogByID retrieves a single post by id regardless of published
	// state (owner-style direct edit flows).
	GetBlogByID(ctx context.Context, blogID string) (*entity.Blog, error)

	// ListPublished returns every published post ordered by created_at
	// descending.
	ListPublished(ctx context.Context) ([]*entity.Blog, error)

	// UpdateBlog applies the given field updates and refreshes updated_at.
	// Returns entity.ErrNotFound if the id is absent and entity.ErrConflict
	// if an explicit slug update collides.
	UpdateBlog(ctx context.Context, blogID string, updates map[string]interface{}) error

	// DeleteBlog permanently removes a post. Returns entity.ErrNotFound if
	// the id is absent.
	DeleteBlog(ctx context.Context, blogID string) error

	// IncrementViews atomically adds one to the views counter.
	IncrementViews(ctx context.Context, blogID string) error
}
