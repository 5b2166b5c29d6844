package usecase

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/devfolio/blog-api/internal/domain/contract"
	"github.com/devfolio/blog-api/internal/domain/entity"
	"github.com/devfolio/blog-api/internal/infrastructure/metrics"
	usecasecontract "github.com/devfolio/blog-api/internal/usecase/contract"
)

// MediaUseCaseImpl implements the cover image upload flow: store the bytes
// in the blob bucket under a collision-resistant name, record metadata, and
// hand back a public URL. Upload and post-save are a deliberate two-step;
// an uploaded image that never gets attached to a post is an acceptable
// orphan.
type MediaUseCaseImpl struct {
	mediaRepo  contract.IMediaRepository
	mediaStore contract.IMediaStore
	uuidgen    contract.IUUIDGenerator
	randomGen  contract.IRandomGenerator
	logger     usecasecontract.IAppLogger
	baseURL    string
}

// NewMediaUseCase creates a new instance of MediaUseCase.
func NewMediaUseCase(mediaRepo contract.IMediaRepository, mediaStore contract.IMediaStore, uuidgen contract.IUUIDGenerator, randomGen contract.IRandomGenerator, logger usecasecontract.IAppLogger, baseURL string) *MediaUseCaseImpl {
	return &MediaUseCaseImpl{
		mediaRepo:  mediaRepo,
		mediaStore: mediaStore,
		uuidgen:    uuidgen,
		randomGen:  randomGen,
		logger:     logger,
		baseURL:    baseURL,
	}
}

var _ usecasecontract.IMediaUseCase = (*MediaUseCaseImpl)(nil)

// UploadCoverImage stores the file and returns its media record, including
// the public URL. The original name contributes only its extension; the
// stored name combines the current timestamp with a short random token.
func (uc *MediaUseCaseImpl) UploadCoverImage(ctx context.Context, originalName string, contentType string, data []byte) (*entity.Media, error) {
	if len(data) == 0 {
		return nil, entity.NewValidationError("no file provided")
	}

	token, err := uc.randomGen.GenerateRandomToken(4)
	if err != nil {
		uc.logger.Errorf("failed to generate upload token: %v", err)
		return nil, fmt.Errorf("failed to generate upload filename: %w", err)
	}

	ext := filepath.Ext(originalName)
	fileName := fmt.Sprintf("%d-%s%s", time.Now().UnixMilli(), token, ext)

	if err := uc.mediaStore.Upload(ctx, fileName, data); err != nil {
		uc.logger.Errorf("failed to upload file %s: %v", fileName, err)
		return nil, err
	}

	media := &entity.Media{
		ID:           uc.uuidgen.NewUUID(),
		FileName:     fileName,
		OriginalName: originalName,
		ContentType:  contentType,
		Size:         int64(len(data)),
		URL:          fmt.Sprintf("%s/media/%s", uc.baseURL, fileName),
	}

	if err := uc.mediaRepo.CreateMedia(ctx, media); err != nil {
		uc.logger.Errorf("failed to record media metadata for %s: %v", fileName, err)
		return nil, err
	}

	metrics.AddUploadBytes(len(data))
	return media, nil
}

// GetMediaByFileName returns the metadata and bytes of a stored file for
// public serving.
func (uc *MediaUseCaseImpl) GetMediaByFileName(ctx context.Context, fileName string) (*entity.Media, []byte, error) {
	media, err := uc.mediaRepo.GetMediaByFileName(ctx, fileName)
	if err != nil {
		return nil, nil, err
	}

	data, err := uc.mediaStore.Download(ctx, fileName)
	if err != nil {
		uc.logger.Errorf("failed to download file %s: %v", fileName, err)
		return nil, nil, err
	}

	return media, data, nil
}
