package contract

import (
	"context"

	"github.com/devfolio/blog-api/internal/domain/entity"
)

// IBlogCache caches the published-list read path. Only the list is cached:
// the views counter changes on every detail fetch, so per-slug caching
// would serve stale counts.
type IBlogCache interface {
	GetPublishedList(ctx context.Context) ([]entity.Blog, bool, error)
	SetPublishedList(ctx context.Context, blogs []entity.Blog) error
	InvalidatePublishedList(ctx context.Context) error
}
