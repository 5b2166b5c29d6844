package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/devfolio/blog-api/internal/domain/entity"
	"github.com/devfolio/blog-api/internal/handler/http/dto"
)

// ErrorHandler centralizes error handling for HTTP responses.
func ErrorHandler(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, dto.ErrorResponse{Error: message})
}

// SuccessHandler centralizes success responses.
func SuccessHandler(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, data)
}

// MessageHandler centralizes message responses.
func MessageHandler(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, dto.MessageResponse{Message: message})
}

// BindAndValidate binds a JSON request and validates it.
func BindAndValidate(c *gin.Context, req interface{}) error {
	if err := c.ShouldBindJSON(req); err != nil {
		ErrorHandler(c, http.StatusBadRequest, err.Error())
		return err
	}
	return nil
}

// MapErrorHandler maps the domain error taxonomy onto HTTP status codes at
// the operation boundary. Anything outside the taxonomy is an internal
// failure and is answered with an opaque message; the detail stays in the
// server log.
func MapErrorHandler(c *gin.Context, err error) {
	var ve *entity.ValidationError
	switch {
	case errors.As(err, &ve):
		ErrorHandler(c, http.StatusBadRequest, ve.Message)
	case errors.Is(err, entity.ErrUnauthorized):
		ErrorHandler(c, http.StatusUnauthorized, "Unauthorized")
	case errors.Is(err, entity.ErrNotFound):
		ErrorHandler(c, http.StatusNotFound, "Not found")
	case errors.Is(err, entity.ErrConflict):
		ErrorHandler(c, http.StatusConflict, "Slug already exists")
	default:
		ErrorHandler(c, http.StatusInternalServerError, "Internal server error")
	}
}
