package mocks

import (
	"context"
	"fmt"

	"github.com/devfolio/blog-api/internal/domain/entity"
	usecasecontract "github.com/devfolio/blog-api/internal/usecase/contract"
)

// MockMediaUsecase is a mock implementation of the IMediaUseCase interface.
type MockMediaUsecase struct {
	ShouldFailUpload bool
	NotFoundOnGet    bool

	MockMedia entity.Media
	MockData  []byte
}

var _ usecasecontract.IMediaUseCase = (*MockMediaUsecase)(nil)

func NewMockMediaUsecase() *MockMediaUsecase {
	return &MockMediaUsecase{
		MockMedia: entity.Media{
			ID:          "mock-media-id",
			FileName:    "1700000000000-abc123.png",
			ContentType: "image/png",
			URL:         "http://localhost:8080/media/1700000000000-abc123.png",
		},
		MockData: []byte("png-bytes"),
	}
}

func (m *MockMediaUsecase) UploadCoverImage(ctx context.Context, originalName, contentType string, data []byte) (*entity.Media, error) {
	if len(data) == 0 {
		return nil, entity.NewValidationError("no file provided")
	}
	if m.ShouldFailUpload {
		return nil, fmt.Errorf("bucket unavailable")
	}
	return &m.MockMedia, nil
}

func (m *MockMediaUsecase) GetMediaByFileName(ctx context.Context, fileName string) (*entity.Media, []byte, error) {
	if m.NotFoundOnGet {
		return nil, nil, fmt.Errorf("media file %q: %w", fileName, entity.ErrNotFound)
	}
	return &m.MockMedia, m.MockData, nil
}

// MockAdminGate accepts a single known secret and token.
type MockAdminGate struct {
	Secret      string
	Token       string
	Misconfig   bool
	FailIssuing bool
}

var _ usecasecontract.IAdminGate = (*MockAdminGate)(nil)

func NewMockAdminGate() *MockAdminGate {
	return &MockAdminGate{Secret: "letmein", Token: "mock-admin-token"}
}

func (g *MockAdminGate) VerifySecret(secret string) error {
	if g.Misconfig {
		return fmt.Errorf("admin secret is not configured")
	}
	if secret != g.Secret {
		return entity.ErrUnauthorized
	}
	return nil
}

func (g *MockAdminGate) IssueToken() (string, error) {
	if g.FailIssuing {
		return "", fmt.Errorf("signing failed")
	}
	return g.Token, nil
}

func (g *MockAdminGate) VerifyToken(token string) error {
	if token != g.Token {
		return entity.ErrUnauthorized
	}
	return nil
}
