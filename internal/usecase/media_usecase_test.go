package usecase

import (
	"context"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devfolio/blog-api/internal/domain/entity"
	randomgenerator "github.com/devfolio/blog-api/internal/infrastructure/random_generator"
)

func newMediaUC() (*MediaUseCaseImpl, *fakeMediaRepo, *fakeMediaStore) {
	repo := newFakeMediaRepo()
	store := newFakeMediaStore()
	uc := NewMediaUseCase(repo, store, &seqUUIDGen{}, randomgenerator.NewRandomGenerator(), nopLogger{}, "http://localhost:8080")
	return uc, repo, store
}

func TestUploadCoverImage(t *testing.T) {
	uc, repo, store := newMediaUC()

	media, err := uc.UploadCoverImage(context.Background(), "photo.PNG", "image/png", []byte("fake-png"))
	require.NoError(t, err)

	// <unix-ms>-<token><ext>, original name contributes only the extension.
	assert.Regexp(t, regexp.MustCompile(`^\d+-[A-Za-z0-9_-]+\.PNG$`), media.FileName)
	assert.True(t, strings.HasPrefix(media.URL, "http://localhost:8080/media/"))
	assert.Equal(t, "photo.PNG", media.OriginalName)
	assert.Equal(t, int64(8), media.Size)

	assert.Contains(t, store.objects, media.FileName)
	assert.Contains(t, repo.records, media.FileName)
}

func TestUploadCoverImageEmptyPayload(t *testing.T) {
	uc, repo, store := newMediaUC()

	_, err := uc.UploadCoverImage(context.Background(), "photo.png", "image/png", nil)
	assert.True(t, entity.IsValidation(err))
	assert.Contains(t, err.Error(), "file")
	assert.Empty(t, store.objects)
	assert.Empty(t, repo.records)
}

func TestGetMediaByFileName(t *testing.T) {
	uc, _, _ := newMediaUC()
	ctx := context.Background()

	uploaded, err := uc.UploadCoverImage(ctx, "cover.jpg", "image/jpeg", []byte("jpeg-bytes"))
	require.NoError(t, err)

	media, data, err := uc.GetMediaByFileName(ctx, uploaded.FileName)
	require.NoError(t, err)
	assert.Equal(t, "image/jpeg", media.ContentType)
	assert.Equal(t, []byte("jpeg-bytes"), data)

	_, _, err = uc.GetMediaByFileName(ctx, "missing.jpg")
	assert.ErrorIs(t, err, entity.ErrNotFound)
}
