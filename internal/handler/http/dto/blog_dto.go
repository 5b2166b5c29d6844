package dto

import (
	"time"

	"github.com/devfolio/blog-api/internal/domain/entity"
)

// Request DTOs for Blog Handlers

// CreateBlogRequest defines the structure for creating a new blog post.
// Slug is optional; when omitted it is derived from the title.
type CreateBlogRequest struct {
	Title      string   `json:"title" binding:"required"`
	Slug       string   `json:"slug" binding:"omitempty,slug"`
	Excerpt    *string  `json:"excerpt"`
	Content    string   `json:"content" binding:"required"`
	CoverImage *string  `json:"cover_image"`
	Author     string   `json:"author"`
	Tags       []string `json:"tags"`
	Published  bool     `json:"published"`
}

// UpdateBlogRequest defines the structure for a partial update. Absent
// fields are left untouched; the slug changes only when supplied here.
type UpdateBlogRequest struct {
	Title      *string  `json:"title"`
	Slug       *string  `json:"slug" binding:"omitempty,slug"`
	Excerpt    *string  `json:"excerpt"`
	Content    *string  `json:"content"`
	CoverImage *string  `json:"cover_image"`
	Author     *string  `json:"author"`
	Tags       []string `json:"tags"`
	Published  *bool    `json:"published"`
}

// VerifyAdminRequest carries the shared admin secret for the verification
// endpoint.
type VerifyAdminRequest struct {
	Secret string `json:"secret"`
}

// Response DTOs

// BlogResponse defines the standard JSON response for a single blog post.
type BlogResponse struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	Slug       string    `json:"slug"`
	Excerpt    *string   `json:"excerpt,omitempty"`
	Content    string    `json:"content"`
	CoverImage *string   `json:"cover_image,omitempty"`
	Author     string    `json:"author"`
	Tags       []string  `json:"tags"`
	Published  bool      `json:"published"`
	Views      int       `json:"views"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// VerifyAdminResponse acknowledges a successful secret check and carries a
// short-lived session token.
type VerifyAdminResponse struct {
	Success bool   `json:"success"`
	Token   string `json:"token"`
}

// UploadResponse carries the public URL of an uploaded cover image.
type UploadResponse struct {
	URL string `json:"url"`
}

// ToBlogResponse converts an entity.Blog to a BlogResponse.
func ToBlogResponse(blog *entity.Blog) BlogResponse {
	return BlogResponse{
		ID:         blog.ID,
		Title:      blog.Title,
		Slug:       blog.Slug,
		Excerpt:    blog.Excerpt,
		Content:    blog.Content,
		CoverImage: blog.CoverImage,
		Author:     blog.Author,
		Tags:       blog.Tags,
		Published:  blog.Published,
		Views:      blog.Views,
		CreatedAt:  blog.CreatedAt,
		UpdatedAt:  blog.UpdatedAt,
	}
}
