package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/gridfs"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/devfolio/blog-api/internal/domain/contract"
	"github.com/devfolio/blog-api/internal/domain/entity"
)

const bucketName = "blog-images"

// GridFSStore keeps uploaded image bytes in a GridFS bucket. Filenames are
// generated to be collision resistant, so an existing object is never
// overwritten.
type GridFSStore struct {
	bucket *gridfs.Bucket
}

// NewGridFSStore creates a store backed by the blog-images bucket.
func NewGridFSStore(db *mongo.Database) (*GridFSStore, error) {
	bucket, err := gridfs.NewBucket(db, options.GridFSBucket().SetName(bucketName))
	if err != nil {
		return nil, fmt.Errorf("failed to open gridfs bucket: %w", err)
	}
	return &GridFSStore{bucket: bucket}, nil
}

var _ contract.IMediaStore = (*GridFSStore)(nil)

// Upload stores the file bytes under fileName. Uploading to a name that is
// already present is a conflict, not an overwrite.
func (s *GridFSStore) Upload(ctx context.Context, fileName string, data []byte) error {
	cursor, err := s.bucket.Find(bson.M{"filename": fileName})
	if err != nil {
		return fmt.Errorf("failed to check for existing file: %w", err)
	}
	exists := cursor.Next(ctx)
	_ = cursor.Close(ctx)
	if exists {
		return fmt.Errorf("file %q: %w", fileName, entity.ErrConflict)
	}

	if _, err := s.bucket.UploadFromStream(fileName, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("failed to upload file %q: %w", fileName, err)
	}
	return nil
}

// Download returns the stored bytes for fileName.
func (s *GridFSStore) Download(ctx context.Context, fileName string) ([]byte, error) {
	stream, err := s.bucket.OpenDownloadStreamByName(fileName)
	if err != nil {
		if errors.Is(err, gridfs.ErrFileNotFound) {
			return nil, fmt.Errorf("file %q: %w", fileName, entity.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to open download stream for %q: %w", fileName, err)
	}
	defer stream.Close()

	data, err := io.ReadAll(stream)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", fileName, err)
	}
	return data, nil
}
