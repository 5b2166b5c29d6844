package http

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/devfolio/blog-api/internal/handler/http/dto"
	usecasecontract "github.com/devfolio/blog-api/internal/usecase/contract"
)

// MediaHandlerInterface defines the methods for the media handler.
type MediaHandlerInterface interface {
	UploadHandler(*gin.Context)
	ServeMediaHandler(*gin.Context)
}

var _ MediaHandlerInterface = (*MediaHandler)(nil)

type MediaHandler struct {
	mediaUsecase usecasecontract.IMediaUseCase
}

func NewMediaHandler(mediaUsecase usecasecontract.IMediaUseCase) *MediaHandler {
	return &MediaHandler{mediaUsecase: mediaUsecase}
}

// UploadHandler accepts a multipart cover image and returns its public URL.
// The URL is attached to a post by a later create/update call; the two
// steps are not transactional.
func (h *MediaHandler) UploadHandler(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		ErrorHandler(c, http.StatusBadRequest, "No file provided")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		ErrorHandler(c, http.StatusInternalServerError, "Internal server error")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		ErrorHandler(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	media, err := h.mediaUsecase.UploadCoverImage(
		c.Request.Context(),
		fileHeader.Filename,
		fileHeader.Header.Get("Content-Type"),
		data,
	)
	if err != nil {
		MapErrorHandler(c, err)
		return
	}

	SuccessHandler(c, http.StatusOK, dto.UploadResponse{URL: media.URL})
}

// ServeMediaHandler streams a stored cover image back with its original
// content type.
func (h *MediaHandler) ServeMediaHandler(c *gin.Context) {
	fileName := c.Param("filename")

	media, data, err := h.mediaUsecase.GetMediaByFileName(c.Request.Context(), fileName)
	if err != nil {
		MapErrorHandler(c, err)
		return
	}

	contentType := media.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	c.Header("Cache-Control", "public, max-age=3600")
	c.Data(http.StatusOK, contentType, data)
}
