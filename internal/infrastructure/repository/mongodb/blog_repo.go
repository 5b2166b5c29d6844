package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/devfolio/blog-api/internal/domain/contract"
	"github.com/devfolio/blog-api/internal/domain/entity"
)

// BlogRepository represents the MongoDB implementation of the
// IBlogRepository interface.
type BlogRepository struct {
	collection *mongo.Collection
}

// NewBlogRepository creates and returns a new BlogRepository instance.
func NewBlogRepository(db *mongo.Database) *BlogRepository {
	return &BlogRepository{
		collection: db.Collection("blogs"),
	}
}

var _ contract.IBlogRepository = (*BlogRepository)(nil)

// CreateBlog inserts a new blog post record into the database. A duplicate
// slug violates the unique index and surfaces as entity.ErrConflict.
func (r *BlogRepository) CreateBlog(ctx context.Context, blog *entity.Blog) error {
	now := time.Now()
	blog.CreatedAt = now
	blog.UpdatedAt = now
	if blog.Tags == nil {
		blog.Tags = []string{} // Ensure tags is not nil to avoid DB errors
	}

	_, err := r.collection.InsertOne(ctx, blog)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("slug %q is already taken: %w", blog.Slug, entity.ErrConflict)
		}
		return fmt.Errorf("failed to create blog post: %w", err)
	}
	return nil
}

// GetBlogBySlug retrieves a single blog post by its unique slug. With
// publishedOnly set, an unpublished post is indistinguishable from an
// absent one.
func (r *BlogRepository) GetBlogBySlug(ctx context.Context, slug string, publishedOnly bool) (*entity.Blog, error) {
	filter := bson.M{"slug": slug}
	if publishedOnly {
		filter["published"] = true
	}

	var blog entity.Blog
	err := r.collection.FindOne(ctx, filter).Decode(&blog)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("blog with slug %q: %w", slug, entity.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to retrieve blog post: %w", err)
	}

	return &blog, nil
}

// GetBlogByID retrieves a single blog post by its unique id.
func (r *BlogRepository) GetBlogByID(ctx context.Context, blogID string) (*entity.Blog, error) {
	var blog entity.Blog
	err := r.collection.FindOne(ctx, bson.M{"_id": blogID}).Decode(&blog)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("blog with id %q: %w", blogID, entity.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to retrieve blog post: %w", err)
	}

	return &blog, nil
}

// ListPublished retrieves every published blog post, newest first.
func (r *BlogRepository) ListPublished(ctx context.Context) ([]*entity.Blog, error) {
	filter := bson.M{"published": true}
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve blogs: %w", err)
	}
	defer cursor.Close(ctx)

	blogs := []*entity.Blog{}
	if err := cursor.All(ctx, &blogs); err != nil {
		return nil, fmt.Errorf("failed to decode blogs: %w", err)
	}

	return blogs, nil
}

// UpdateBlog updates a blog with the provided fields and refreshes
// updated_at.
func (r *BlogRepository) UpdateBlog(ctx context.Context, blogID string, updates map[string]interface{}) error {
	updates["updated_at"] = time.Now()
	update := bson.M{"$set": updates}

	res, err := r.collection.UpdateOne(ctx, bson.M{"_id": blogID}, update)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("slug is already taken: %w", entity.ErrConflict)
		}
		return fmt.Errorf("failed to update blog: %w", err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("blog with id %q: %w", blogID, entity.ErrNotFound)
	}

	return nil
}

// DeleteBlog permanently removes a blog post.
func (r *BlogRepository) DeleteBlog(ctx context.Context, blogID string) error {
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": blogID})
	if err != nil {
		return fmt.Errorf("failed to delete blog: %w", err)
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("blog with id %q: %w", blogID, entity.ErrNotFound)
	}

	return nil
}

// IncrementViews atomically adds one to the views counter of a published
// post.
func (r *BlogRepository) IncrementViews(ctx context.Context, blogID string) error {
	filter := bson.M{"_id": blogID, "published": true}
	update := bson.M{"$inc": bson.M{"views": 1}}

	res, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to increment view count: %w", err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("blog with id %q: %w", blogID, entity.ErrNotFound)
	}

	return nil
}
