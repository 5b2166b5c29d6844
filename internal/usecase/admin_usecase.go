package usecase

import (
	"fmt"

	"github.com/devfolio/blog-api/internal/domain/contract"
	"github.com/devfolio/blog-api/internal/domain/entity"
	usecasecontract "github.com/devfolio/blog-api/internal/usecase/contract"
)

// ITokenManager issues and verifies admin session tokens.
type ITokenManager interface {
	Issue() (string, error)
	Verify(token string) error
}

// AdminGate validates the single shared admin secret guarding every
// mutating operation. It holds no per-user identity: the secret is a
// process-wide capability configured once at startup.
type AdminGate struct {
	verifier contract.ISecretVerifier
	tokens   ITokenManager
	logger   usecasecontract.IAppLogger
}

// NewAdminGate creates the gate. A nil verifier means the deployment has
// no secret configured, which is a fatal configuration error surfaced as
// an internal failure rather than Unauthorized.
func NewAdminGate(verifier contract.ISecretVerifier, tokens ITokenManager, logger usecasecontract.IAppLogger) *AdminGate {
	return &AdminGate{
		verifier: verifier,
		tokens:   tokens,
		logger:   logger,
	}
}

var _ usecasecontract.IAdminGate = (*AdminGate)(nil)

// VerifySecret accepts or rejects a caller-supplied secret. Every mismatch,
// including an empty input, yields the same entity.ErrUnauthorized.
func (g *AdminGate) VerifySecret(secret string) error {
	if g.verifier == nil {
		return fmt.Errorf("admin secret is not configured")
	}
	if !g.verifier.Verify(secret) {
		return entity.ErrUnauthorized
	}
	return nil
}

// IssueToken returns a signed short-lived admin session token. Callers must
// have passed VerifySecret first.
func (g *AdminGate) IssueToken() (string, error) {
	token, err := g.tokens.Issue()
	if err != nil {
		g.logger.Errorf("failed to issue admin token: %v", err)
		return "", fmt.Errorf("failed to issue admin token: %w", err)
	}
	return token, nil
}

// VerifyToken checks an admin session token. Any failure is reported as
// entity.ErrUnauthorized; the caller learns nothing about why.
func (g *AdminGate) VerifyToken(token string) error {
	if err := g.tokens.Verify(token); err != nil {
		return entity.ErrUnauthorized
	}
	return nil
}
