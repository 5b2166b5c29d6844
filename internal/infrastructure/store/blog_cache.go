package store

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/devfolio/blog-api/internal/domain/contract"
	"github.com/devfolio/blog-api/internal/domain/entity"
)

const publishedListKey = "blogs:published"

// BlogCacheStore caches the published blog list in redis. The detail path
// is deliberately uncached because every fetch changes the views counter.
type BlogCacheStore struct {
	rdb     *redis.Client
	listTTL time.Duration
}

func NewBlogCacheStore(rdb *redis.Client, listTTL time.Duration) *BlogCacheStore {
	return &BlogCacheStore{
		rdb:     rdb,
		listTTL: listTTL,
	}
}

var _ contract.IBlogCache = (*BlogCacheStore)(nil)

func (c *BlogCacheStore) GetPublishedList(ctx context.Context) ([]entity.Blog, bool, error) {
	b, err := c.rdb.Get(ctx, publishedListKey).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, false, nil
		}
		return nil, false, err
	}
	var blogs []entity.Blog
	if err := json.Unmarshal(b, &blogs); err != nil {
		// Treat a corrupt entry as a miss; it will be rewritten.
		return nil, false, nil
	}
	return blogs, true, nil
}

func (c *BlogCacheStore) SetPublishedList(ctx context.Context, blogs []entity.Blog) error {
	data, err := json.Marshal(blogs)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, publishedListKey, data, c.listTTL).Err()
}

func (c *BlogCacheStore) InvalidatePublishedList(ctx context.Context) error {
	return c.rdb.Del(ctx, publishedListKey).Err()
}
