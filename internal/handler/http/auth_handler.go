package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/devfolio/blog-api/internal/handler/http/dto"
	usecasecontract "github.com/devfolio/blog-api/internal/usecase/contract"
)

// AuthHandlerInterface defines the methods for the auth handler.
type AuthHandlerInterface interface {
	VerifyAdminHandler(*gin.Context)
}

var _ AuthHandlerInterface = (*AuthHandler)(nil)

type AuthHandler struct {
	gate usecasecontract.IAdminGate
}

func NewAuthHandler(gate usecasecontract.IAdminGate) *AuthHandler {
	return &AuthHandler{gate: gate}
}

// VerifyAdminHandler checks the shared admin secret and, on success, hands
// back a short-lived session token so the client does not have to keep the
// raw secret around for every mutation.
func (h *AuthHandler) VerifyAdminHandler(c *gin.Context) {
	var req dto.VerifyAdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		// A malformed body fails like a wrong secret: same signal.
		ErrorHandler(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	if err := h.gate.VerifySecret(req.Secret); err != nil {
		MapErrorHandler(c, err)
		return
	}

	token, err := h.gate.IssueToken()
	if err != nil {
		MapErrorHandler(c, err)
		return
	}

	SuccessHandler(c, http.StatusOK, dto.VerifyAdminResponse{Success: true, Token: token})
}
