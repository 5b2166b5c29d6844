package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devfolio/blog-api/internal/domain/entity"
	passwordservice "github.com/devfolio/blog-api/internal/infrastructure/password_service"
)

func TestAdminGateVerifySecret(t *testing.T) {
	gate := NewAdminGate(passwordservice.NewPlainVerifier("hunter2"), &fakeTokenManager{issued: "tok"}, nopLogger{})

	assert.NoError(t, gate.VerifySecret("hunter2"))
	assert.ErrorIs(t, gate.VerifySecret("wrong"), entity.ErrUnauthorized)
	assert.ErrorIs(t, gate.VerifySecret(""), entity.ErrUnauthorized)
}

func TestAdminGateUnconfiguredSecretIsNotUnauthorized(t *testing.T) {
	gate := NewAdminGate(nil, &fakeTokenManager{}, nopLogger{})

	err := gate.VerifySecret("anything")
	require.Error(t, err)
	assert.NotErrorIs(t, err, entity.ErrUnauthorized)
}

func TestAdminGateTokens(t *testing.T) {
	tm := &fakeTokenManager{issued: "session-token"}
	gate := NewAdminGate(passwordservice.NewPlainVerifier("s"), tm, nopLogger{})

	token, err := gate.IssueToken()
	require.NoError(t, err)
	assert.NoError(t, gate.VerifyToken(token))
	assert.ErrorIs(t, gate.VerifyToken("forged"), entity.ErrUnauthorized)
}
