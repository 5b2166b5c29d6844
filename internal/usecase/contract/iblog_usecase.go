package usecasecontract

import (
	"context"

	"github.com/devfolio/blog-api/internal/domain/entity"
)

// CreateBlogInput carries the fields accepted when creating a post. Slug is
// optional; when empty it is derived from the title.
type CreateBlogInput struct {
	Title      string
	Slug       string
	Excerpt    *string
	Content    string
	CoverImage *string
	Author     string
	Tags       []string
	Published  bool
}

// UpdateBlogInput carries partial updates for an existing post. Nil fields
// are left untouched. The slug is never regenerated from a changed title;
// it only changes when explicitly supplied.
type UpdateBlogInput struct {
	Title      *string
	Slug       *string
	Excerpt    *string
	Content    *string
	CoverImage *string
	Author     *string
	Tags       []string
	Published  *bool
}

// IBlogUseCase defines blog-related business logic.
type IBlogUseCase interface {
	ListBlogs(ctx context.Context) ([]entity.Blog, error)
	GetBlogBySlug(ctx context.Context, slug string) (*entity.Blog, error)
	CreateBlog(ctx context.Context, input CreateBlogInput) (*entity.Blog, error)
	UpdateBlog(ctx context.Context, blogID string, input UpdateBlogInput) (*entity.Blog, error)
	DeleteBlog(ctx context.Context, blogID string) error
}

// IMediaUseCase defines the cover image upload flow.
type IMediaUseCase interface {
	UploadCoverImage(ctx context.Context, originalName string, contentType string, data []byte) (*entity.Media, error)
	GetMediaByFileName(ctx context.Context, fileName string) (*entity.Media, []byte, error)
}

// IAdminGate guards every mutating operation behind the single shared
// deployment secret.
type IAdminGate interface {
	// VerifySecret returns entity.ErrUnauthorized on any mismatch,
	// including an empty input.
	VerifySecret(secret string) error
	// IssueToken returns a signed short-lived admin session token after a
	// successful verification.
	IssueToken() (string, error)
	// VerifyToken checks an admin session token previously issued by
	// IssueToken.
	VerifyToken(token string) error
}
