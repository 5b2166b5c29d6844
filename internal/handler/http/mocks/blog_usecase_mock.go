package mocks

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/devfolio/blog-api/internal/domain/entity"
	usecasecontract "github.com/devfolio/blog-api/internal/usecase/contract"
)

// MockBlogUsecase is a mock implementation of the IBlogUseCase interface.
type MockBlogUsecase struct {
	// Control mock behavior
	ShouldFailList     bool
	NotFoundOnGet      bool
	ConflictOnCreate   bool
	ValidationOnCreate bool
	NotFoundOnUpdate   bool
	NotFoundOnDelete   bool

	// Return values
	MockBlog entity.Blog

	// Captured inputs
	LastDeleteID    string
	LastCreateInput usecasecontract.CreateBlogInput
}

var _ usecasecontract.IBlogUseCase = (*MockBlogUsecase)(nil)

func NewMockBlogUsecase() *MockBlogUsecase {
	excerpt := "a short summary"
	return &MockBlogUsecase{
		MockBlog: entity.Blog{
			ID:        "mock-blog-id",
			Title:     "Mock Post",
			Slug:      "mock-post",
			Excerpt:   &excerpt,
			Content:   "# mock",
			Author:    "tester",
			Tags:      []string{"go"},
			Published: true,
			Views:     5,
			CreatedAt: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
			UpdatedAt: time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC),
		},
	}
}

func (m *MockBlogUsecase) ListBlogs(ctx context.Context) ([]entity.Blog, error) {
	if m.ShouldFailList {
		return nil, errors.New("list failed")
	}
	return []entity.Blog{m.MockBlog}, nil
}

func (m *MockBlogUsecase) GetBlogBySlug(ctx context.Context, slug string) (*entity.Blog, error) {
	if m.NotFoundOnGet {
		return nil, fmt.Errorf("blog with slug %q: %w", slug, entity.ErrNotFound)
	}
	return &m.MockBlog, nil
}

func (m *MockBlogUsecase) CreateBlog(ctx context.Context, input usecasecontract.CreateBlogInput) (*entity.Blog, error) {
	m.LastCreateInput = input
	if m.ValidationOnCreate {
		return nil, entity.NewValidationError("title is required")
	}
	if m.ConflictOnCreate {
		return nil, fmt.Errorf("slug %q is already taken: %w", input.Slug, entity.ErrConflict)
	}
	return &m.MockBlog, nil
}

func (m *MockBlogUsecase) UpdateBlog(ctx context.Context, blogID string, input usecasecontract.UpdateBlogInput) (*entity.Blog, error) {
	if m.NotFoundOnUpdate {
		return nil, fmt.Errorf("blog with id %q: %w", blogID, entity.ErrNotFound)
	}
	return &m.MockBlog, nil
}

func (m *MockBlogUsecase) DeleteBlog(ctx context.Context, blogID string) error {
	m.LastDeleteID = blogID
	if blogID == "" {
		return entity.NewValidationError("blog id is required")
	}
	if m.NotFoundOnDelete {
		return fmt.Errorf("blog with id %q: %w", blogID, entity.ErrNotFound)
	}
	return nil
}
