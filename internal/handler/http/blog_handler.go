package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/devfolio/blog-api/internal/handler/http/dto"
	usecasecontract "github.com/devfolio/blog-api/internal/usecase/contract"
)

// BlogHandlerInterface defines the methods for the blog handler to allow
// interface-based dependency injection (for testing/mocking).
type BlogHandlerInterface interface {
	ListBlogsHandler(*gin.Context)
	GetBlogBySlugHandler(*gin.Context)
	CreateBlogHandler(*gin.Context)
	UpdateBlogHandler(*gin.Context)
	DeleteBlogHandler(*gin.Context)
}

var _ BlogHandlerInterface = (*BlogHandler)(nil)

type BlogHandler struct {
	blogUsecase usecasecontract.IBlogUseCase
}

func NewBlogHandler(blogUsecase usecasecontract.IBlogUseCase) *BlogHandler {
	return &BlogHandler{
		blogUsecase: blogUsecase,
	}
}

// ListBlogsHandler returns every published post, newest first.
func (h *BlogHandler) ListBlogsHandler(c *gin.Context) {
	blogs, err := h.blogUsecase.ListBlogs(c.Request.Context())
	if err != nil {
		MapErrorHandler(c, err)
		return
	}

	responses := make([]dto.BlogResponse, 0, len(blogs))
	for i := range blogs {
		responses = append(responses, dto.ToBlogResponse(&blogs[i]))
	}

	SuccessHandler(c, http.StatusOK, responses)
}

// GetBlogBySlugHandler returns a single published post. The view counter is
// bumped by the usecase; the response carries the pre-increment count.
func (h *BlogHandler) GetBlogBySlugHandler(c *gin.Context) {
	slug := c.Param("slug")

	blog, err := h.blogUsecase.GetBlogBySlug(c.Request.Context(), slug)
	if err != nil {
		MapErrorHandler(c, err)
		return
	}

	SuccessHandler(c, http.StatusOK, dto.ToBlogResponse(blog))
}

// CreateBlogHandler creates a post. Admin gating happens in middleware.
func (h *BlogHandler) CreateBlogHandler(c *gin.Context) {
	var req dto.CreateBlogRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	blog, err := h.blogUsecase.CreateBlog(c.Request.Context(), usecasecontract.CreateBlogInput{
		Title:      req.Title,
		Slug:       req.Slug,
		Excerpt:    req.Excerpt,
		Content:    req.Content,
		CoverImage: req.CoverImage,
		Author:     req.Author,
		Tags:       req.Tags,
		Published:  req.Published,
	})
	if err != nil {
		MapErrorHandler(c, err)
		return
	}

	SuccessHandler(c, http.StatusCreated, dto.ToBlogResponse(blog))
}

// UpdateBlogHandler applies a partial update to an existing post.
func (h *BlogHandler) UpdateBlogHandler(c *gin.Context) {
	blogID := c.Param("blogID")

	var req dto.UpdateBlogRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	blog, err := h.blogUsecase.UpdateBlog(c.Request.Context(), blogID, usecasecontract.UpdateBlogInput{
		Title:      req.Title,
		Slug:       req.Slug,
		Excerpt:    req.Excerpt,
		Content:    req.Content,
		CoverImage: req.CoverImage,
		Author:     req.Author,
		Tags:       req.Tags,
		Published:  req.Published,
	})
	if err != nil {
		MapErrorHandler(c, err)
		return
	}

	SuccessHandler(c, http.StatusOK, dto.ToBlogResponse(blog))
}

// DeleteBlogHandler permanently removes a post. The id may arrive as a
// route param or (matching the original client) a query param; a request
// with neither is a validation failure.
func (h *BlogHandler) DeleteBlogHandler(c *gin.Context) {
	blogID := c.Param("blogID")
	if blogID == "" {
		blogID = c.Query("id")
	}

	if err := h.blogUsecase.DeleteBlog(c.Request.Context(), blogID); err != nil {
		MapErrorHandler(c, err)
		return
	}

	SuccessHandler(c, http.StatusOK, gin.H{"success": true})
}
