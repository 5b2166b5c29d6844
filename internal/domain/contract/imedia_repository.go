package contract

import (
	"context"

	"github.com/devfolio/blog-api/internal/domain/entity"
)

// IMediaRepository defines the interface for media metadata persistence.
type IMediaRepository interface {
	CreateMedia(ctx context.Context, media *entity.Media) error
	GetMediaByFileName(ctx context.Context, fileName string) (*entity.Media, error)
}

// IMediaStore defines the interface for the blob bucket holding uploaded
// file bytes. Upload never overwrites an existing object.
type IMediaStore interface {
	Upload(ctx context.Context, fileName string, data []byte) error
	Download(ctx context.Context, fileName string) ([]byte, error)
}
