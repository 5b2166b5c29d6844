package passwordservice

import (
	"crypto/sha256"
	"crypto/subtle"

	"golang.org/x/crypto/bcrypt"

	"github.com/devfolio/blog-api/internal/domain/contract"
)

// PlainVerifier compares the supplied secret against the configured plain
// secret. Both sides are hashed first so the comparison is constant-time
// and independent of secret length.
type PlainVerifier struct {
	secret string
}

func NewPlainVerifier(secret string) *PlainVerifier {
	return &PlainVerifier{secret: secret}
}

var _ contract.ISecretVerifier = (*PlainVerifier)(nil)

func (v *PlainVerifier) Verify(supplied string) bool {
	want := sha256.Sum256([]byte(v.secret))
	got := sha256.Sum256([]byte(supplied))
	return subtle.ConstantTimeCompare(want[:], got[:]) == 1
}

// BcryptVerifier compares the supplied secret against a bcrypt hash, for
// deployments that keep only ADMIN_SECRET_HASH in the environment.
type BcryptVerifier struct {
	hash string
}

func NewBcryptVerifier(hash string) *BcryptVerifier {
	return &BcryptVerifier{hash: hash}
}

var _ contract.ISecretVerifier = (*BcryptVerifier)(nil)

func (v *BcryptVerifier) Verify(supplied string) bool {
	return bcrypt.CompareHashAndPassword([]byte(v.hash), []byte(supplied)) == nil
}
