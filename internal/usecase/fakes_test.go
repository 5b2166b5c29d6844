package usecase

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/devfolio/blog-api/internal/domain/contract"
	"github.com/devfolio/blog-api/internal/domain/entity"
)

// nopLogger satisfies IAppLogger without output.
type nopLogger struct{}

func (nopLogger) Debugf(string, ...interface{}) {}
func (nopLogger) Infof(string, ...interface{})  {}
func (nopLogger) Warnf(string, ...interface{})  {}
func (nopLogger) Errorf(string, ...interface{}) {}
func (nopLogger) Fatalf(string, ...interface{}) {}

// seqUUIDGen hands out deterministic ids.
type seqUUIDGen struct{ n int }

func (g *seqUUIDGen) NewUUID() string {
	g.n++
	return fmt.Sprintf("id-%d", g.n)
}

// fakeBlogRepo is an in-memory IBlogRepository that enforces the same
// contract as the MongoDB implementation: unique slugs, not-found
// signalling, atomic view increments.
type fakeBlogRepo struct {
	blogs map[string]*entity.Blog
	clock time.Time
}

func newFakeBlogRepo() *fakeBlogRepo {
	return &fakeBlogRepo{
		blogs: make(map[string]*entity.Blog),
		clock: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

var _ contract.IBlogRepository = (*fakeBlogRepo)(nil)

func (r *fakeBlogRepo) tick() time.Time {
	r.clock = r.clock.Add(time.Minute)
	return r.clock
}

func (r *fakeBlogRepo) CreateBlog(_ context.Context, blog *entity.Blog) error {
	for _, b := range r.blogs {
		if b.Slug == blog.Slug {
			return fmt.Errorf("slug %q is already taken: %w", blog.Slug, entity.ErrConflict)
		}
	}
	now := r.tick()
	blog.CreatedAt = now
	blog.UpdatedAt = now
	cp := *blog
	r.blogs[blog.ID] = &cp
	return nil
}

func (r *fakeBlogRepo) GetBlogBySlug(_ context.Context, slug string, publishedOnly bool) (*entity.Blog, error) {
	for _, b := range r.blogs {
		if b.Slug == slug && (!publishedOnly || b.Published) {
			cp := *b
			return &cp, nil
		}
	}
	return nil, fmt.Errorf("blog with slug %q: %w", slug, entity.ErrNotFound)
}

func (r *fakeBlogRepo) GetBlogByID(_ context.Context, blogID string) (*entity.Blog, error) {
	b, ok := r.blogs[blogID]
	if !ok {
		return nil, fmt.Errorf("blog with id %q: %w", blogID, entity.ErrNotFound)
	}
	cp := *b
	return &cp, nil
}

func (r *fakeBlogRepo) ListPublished(_ context.Context) ([]*entity.Blog, error) {
	var out []*entity.Blog
	for _, b := range r.blogs {
		if b.Published {
			cp := *b
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *fakeBlogRepo) UpdateBlog(_ context.Context, blogID string, updates map[string]interface{}) error {
	b, ok := r.blogs[blogID]
	if !ok {
		return fmt.Errorf("blog with id %q: %w", blogID, entity.ErrNotFound)
	}
	if slug, ok := updates["slug"].(string); ok {
		for id, other := range r.blogs {
			if id != blogID && other.Slug == slug {
				return fmt.Errorf("slug is already taken: %w", entity.ErrConflict)
			}
		}
		b.Slug = slug
	}
	if title, ok := updates["title"].(string); ok {
		b.Title = title
	}
	if content, ok := updates["content"].(string); ok {
		b.Content = content
	}
	if excerpt, ok := updates["excerpt"].(string); ok {
		b.Excerpt = &excerpt
	}
	if cover, ok := updates["cover_image"].(string); ok {
		b.CoverImage = &cover
	}
	if author, ok := updates["author"].(string); ok {
		b.Author = author
	}
	if tags, ok := updates["tags"].([]string); ok {
		b.Tags = tags
	}
	if published, ok := updates["published"].(bool); ok {
		b.Published = published
	}
	b.UpdatedAt = r.tick()
	return nil
}

func (r *fakeBlogRepo) DeleteBlog(_ context.Context, blogID string) error {
	if _, ok := r.blogs[blogID]; !ok {
		return fmt.Errorf("blog with id %q: %w", blogID, entity.ErrNotFound)
	}
	delete(r.blogs, blogID)
	return nil
}

func (r *fakeBlogRepo) IncrementViews(_ context.Context, blogID string) error {
	b, ok := r.blogs[blogID]
	if !ok || !b.Published {
		return fmt.Errorf("blog with id %q: %w", blogID, entity.ErrNotFound)
	}
	b.Views++
	return nil
}

// fakeMediaRepo and fakeMediaStore back the media usecase tests.
type fakeMediaRepo struct {
	records map[string]*entity.Media
}

func newFakeMediaRepo() *fakeMediaRepo {
	return &fakeMediaRepo{records: make(map[string]*entity.Media)}
}

var _ contract.IMediaRepository = (*fakeMediaRepo)(nil)

func (r *fakeMediaRepo) CreateMedia(_ context.Context, media *entity.Media) error {
	if _, ok := r.records[media.FileName]; ok {
		return fmt.Errorf("media file %q: %w", media.FileName, entity.ErrConflict)
	}
	cp := *media
	r.records[media.FileName] = &cp
	return nil
}

func (r *fakeMediaRepo) GetMediaByFileName(_ context.Context, fileName string) (*entity.Media, error) {
	m, ok := r.records[fileName]
	if !ok {
		return nil, fmt.Errorf("media file %q: %w", fileName, entity.ErrNotFound)
	}
	cp := *m
	return &cp, nil
}

type fakeMediaStore struct {
	objects map[string][]byte
}

func newFakeMediaStore() *fakeMediaStore {
	return &fakeMediaStore{objects: make(map[string][]byte)}
}

var _ contract.IMediaStore = (*fakeMediaStore)(nil)

func (s *fakeMediaStore) Upload(_ context.Context, fileName string, data []byte) error {
	if _, ok := s.objects[fileName]; ok {
		return fmt.Errorf("file %q: %w", fileName, entity.ErrConflict)
	}
	s.objects[fileName] = append([]byte(nil), data...)
	return nil
}

func (s *fakeMediaStore) Download(_ context.Context, fileName string) ([]byte, error) {
	data, ok := s.objects[fileName]
	if !ok {
		return nil, fmt.Errorf("file %q: %w", fileName, entity.ErrNotFound)
	}
	return data, nil
}

// fakeTokenManager issues a fixed token.
type fakeTokenManager struct {
	issued string
	bad    bool
}

func (f *fakeTokenManager) Issue() (string, error) {
	return f.issued, nil
}

func (f *fakeTokenManager) Verify(token string) error {
	if f.bad || token != f.issued {
		return fmt.Errorf("invalid admin token")
	}
	return nil
}
