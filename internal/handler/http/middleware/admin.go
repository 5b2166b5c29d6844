package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/devfolio/blog-api/internal/domain/entity"
	"github.com/devfolio/blog-api/internal/handler/http/dto"
	usecasecontract "github.com/devfolio/blog-api/internal/usecase/contract"
)

// AdminOnly guards mutating routes behind the shared admin secret. The
// caller either sends the raw secret in X-Admin-Secret or a Bearer session
// token previously issued by the verify endpoint. Every failure looks the
// same to the caller.
func AdminOnly(gate usecasecontract.IAdminGate) gin.HandlerFunc {
	return func(c *gin.Context) {
		if secret := c.GetHeader("X-Admin-Secret"); secret != "" {
			if err := gate.VerifySecret(secret); err != nil {
				abortWith(c, err)
				return
			}
			c.Next()
			return
		}

		auth := c.GetHeader("Authorization")
		if token, ok := strings.CutPrefix(auth, "Bearer "); ok && token != "" {
			if err := gate.VerifyToken(token); err != nil {
				abortWith(c, err)
				return
			}
			c.Next()
			return
		}

		abortWith(c, entity.ErrUnauthorized)
	}
}

func abortWith(c *gin.Context, err error) {
	// A missing configured secret is a server fault, not a credential
	// mismatch.
	status := http.StatusUnauthorized
	message := "Unauthorized"
	if !errors.Is(err, entity.ErrUnauthorized) {
		status = http.StatusInternalServerError
		message = "Internal server error"
	}
	c.AbortWithStatusJSON(status, dto.ErrorResponse{Error: message})
}
