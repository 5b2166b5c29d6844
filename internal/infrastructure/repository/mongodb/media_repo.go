package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/devfolio/blog-api/internal/domain/contract"
	"github.com/devfolio/blog-api/internal/domain/entity"
)

// MediaRepository represents the MongoDB implementation of the
// IMediaRepository interface.
type MediaRepository struct {
	collection *mongo.Collection
}

// NewMediaRepository creates and returns a new MediaRepository instance.
func NewMediaRepository(db *mongo.Database) *MediaRepository {
	return &MediaRepository{
		collection: db.Collection("media"),
	}
}

var _ contract.IMediaRepository = (*MediaRepository)(nil)

// CreateMedia inserts a new media metadata record.
func (r *MediaRepository) CreateMedia(ctx context.Context, media *entity.Media) error {
	media.CreatedAt = time.Now()
	_, err := r.collection.InsertOne(ctx, media)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("media file %q: %w", media.FileName, entity.ErrConflict)
		}
		return fmt.Errorf("failed to create media record: %w", err)
	}
	return nil
}

// GetMediaByFileName retrieves a media record by its generated file name.
func (r *MediaRepository) GetMediaByFileName(ctx context.Context, fileName string) (*entity.Media, error) {
	var media entity.Media
	err := r.collection.FindOne(ctx, bson.M{"file_name": fileName}).Decode(&media)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("media file %q: %w", fileName, entity.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to retrieve media record: %w", err)
	}
	return &media, nil
}
