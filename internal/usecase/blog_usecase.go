package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/devfolio/blog-api/internal/domain/contract"
	"github.com/devfolio/blog-api/internal/domain/entity"
	"github.com/devfolio/blog-api/internal/infrastructure/metrics"
	usecasecontract "github.com/devfolio/blog-api/internal/usecase/contract"
	"github.com/devfolio/blog-api/internal/utils"
)

// BlogUseCaseImpl implements the IBlogUseCase interface.
type BlogUseCaseImpl struct {
	blogRepo  contract.IBlogRepository
	uuidgen   contract.IUUIDGenerator
	logger    usecasecontract.IAppLogger
	blogCache contract.IBlogCache
}

// NewBlogUseCase creates a new instance of BlogUseCase.
func NewBlogUseCase(blogRepo contract.IBlogRepository, uuidgen contract.IUUIDGenerator, logger usecasecontract.IAppLogger) *BlogUseCaseImpl {
	return &BlogUseCaseImpl{
		blogRepo: blogRepo,
		uuidgen:  uuidgen,
		logger:   logger,
	}
}

var _ usecasecontract.IBlogUseCase = (*BlogUseCaseImpl)(nil)

// SetBlogCache injects the optional redis list cache.
func (uc *BlogUseCaseImpl) SetBlogCache(cache contract.IBlogCache) {
	uc.blogCache = cache
}

// ListBlogs returns every published post, newest first. The full set is
// returned on every call; the collection is small enough that pagination
// has never been needed.
func (uc *BlogUseCaseImpl) ListBlogs(ctx context.Context) ([]entity.Blog, error) {
	if uc.blogCache != nil {
		cached, found, err := uc.blogCache.GetPublishedList(ctx)
		if err == nil && found {
			metrics.IncListHit()
			return cached, nil
		}
		if err != nil {
			uc.logger.Warnf("cache error on published list: %v", err)
		} else {
			metrics.IncListMiss()
		}
	}

	blogs, err := uc.blogRepo.ListPublished(ctx)
	if err != nil {
		uc.logger.Errorf("failed to list blogs: %v", err)
		return nil, fmt.Errorf("failed to list blogs: %w", err)
	}

	result := make([]entity.Blog, 0, len(blogs))
	for _, blog := range blogs {
		result = append(result, *blog)
	}

	if uc.blogCache != nil {
		if err := uc.blogCache.SetPublishedList(ctx, result); err != nil {
			uc.logger.Warnf("failed to cache published list: %v", err)
		}
	}

	return result, nil
}

// GetBlogBySlug returns a published post by slug and bumps its view
// counter. The returned post carries the pre-increment view count: callers
// see the count as of the fetch, not reflecting their own visit.
// Unpublished posts are reported exactly like nonexistent ones.
func (uc *BlogUseCaseImpl) GetBlogBySlug(ctx context.Context, slug string) (*entity.Blog, error) {
	if slug == "" {
		return nil, entity.NewValidationError("slug is required")
	}

	blog, err := uc.blogRepo.GetBlogBySlug(ctx, slug, true)
	if err != nil {
		return nil, err
	}

	// View counting is best effort; a failed increment must not fail the
	// read that triggered it.
	if err := uc.blogRepo.IncrementViews(ctx, blog.ID); err != nil {
		uc.logger.Warnf("failed to increment views for blog %s: %v", blog.ID, err)
	} else {
		metrics.IncViewIncrement()
	}

	return blog, nil
}

// CreateBlog persists a new post. When no slug is supplied one is derived
// from the title; a title with no alphanumeric characters cannot produce a
// slug and is rejected. Slug uniqueness is enforced by the store, not
// re-checked here, so a collision surfaces as entity.ErrConflict.
func (uc *BlogUseCaseImpl) CreateBlog(ctx context.Context, input usecasecontract.CreateBlogInput) (*entity.Blog, error) {
	if input.Title == "" {
		return nil, entity.NewValidationError("title is required")
	}
	if input.Content == "" {
		return nil, entity.NewValidationError("content is required")
	}

	slug := input.Slug
	if slug == "" {
		slug = utils.Slugify(input.Title)
		if slug == "" {
			return nil, entity.NewValidationError("title must contain at least one alphanumeric character to derive a slug")
		}
	}

	blog := &entity.Blog{
		ID:         uc.uuidgen.NewUUID(),
		Title:      input.Title,
		Slug:       slug,
		Excerpt:    input.Excerpt,
		Content:    input.Content,
		CoverImage: input.CoverImage,
		Author:     input.Author,
		Tags:       input.Tags,
		Published:  input.Published,
		Views:      0,
	}

	err := uc.blogRepo.CreateBlog(ctx, blog)
	metrics.IncOp("create", err)
	if err != nil {
		if !errors.Is(err, entity.ErrConflict) {
			uc.logger.Errorf("failed to create blog: %v", err)
		}
		return nil, err
	}

	uc.invalidateList(ctx)
	return blog, nil
}

// UpdateBlog applies a partial update. The slug is never regenerated from a
// changed title; it only moves when the caller supplies one explicitly.
func (uc *BlogUseCaseImpl) UpdateBlog(ctx context.Context, blogID string, input usecasecontract.UpdateBlogInput) (*entity.Blog, error) {
	if blogID == "" {
		return nil, entity.NewValidationError("blog id is required")
	}

	updates := make(map[string]interface{})
	if input.Title != nil {
		updates["title"] = *input.Title
	}
	if input.Slug != nil {
		if *input.Slug == "" {
			return nil, entity.NewValidationError("slug cannot be empty")
		}
		updates["slug"] = *input.Slug
	}
	if input.Excerpt != nil {
		updates["excerpt"] = *input.Excerpt
	}
	if input.Content != nil {
		updates["content"] = *input.Content
	}
	if input.CoverImage != nil {
		updates["cover_image"] = *input.CoverImage
	}
	if input.Author != nil {
		updates["author"] = *input.Author
	}
	if input.Tags != nil {
		updates["tags"] = input.Tags
	}
	if input.Published != nil {
		updates["published"] = *input.Published
	}

	if len(updates) > 0 {
		err := uc.blogRepo.UpdateBlog(ctx, blogID, updates)
		metrics.IncOp("update", err)
		if err != nil {
			return nil, err
		}
	}

	updated, err := uc.blogRepo.GetBlogByID(ctx, blogID)
	if err != nil {
		uc.logger.Errorf("failed to get updated blog: %v", err)
		return nil, err
	}

	uc.invalidateList(ctx)
	return updated, nil
}

// DeleteBlog permanently removes a post. A request without an id is a
// validation failure, distinct from deleting an id that is absent.
func (uc *BlogUseCaseImpl) DeleteBlog(ctx context.Context, blogID string) error {
	if blogID == "" {
		return entity.NewValidationError("blog id is required")
	}

	err := uc.blogRepo.DeleteBlog(ctx, blogID)
	metrics.IncOp("delete", err)
	if err != nil {
		return err
	}

	uc.invalidateList(ctx)
	return nil
}

func (uc *BlogUseCaseImpl) invalidateList(ctx context.Context) {
	if uc.blogCache == nil {
		return
	}
	if err := uc.blogCache.InvalidatePublishedList(ctx); err != nil {
		uc.logger.Warnf("failed to invalidate published list cache: %v", err)
	}
}
