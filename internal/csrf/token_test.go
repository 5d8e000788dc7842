package csrf

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueAndVerify(t *testing.T) {
	tm := NewTokenManager("test-secret", time.Minute)

	token, expiresAt, err := tm.Issue()
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.True(t, expiresAt.After(time.Now()))

	assert.NoError(t, tm.Verify(token, token))
}

func TestVerifyRejectsMissingTokens(t *testing.T) {
	tm := NewTokenManager("test-secret", time.Minute)
	token, _, err := tm.Issue()
	require.NoError(t, err)

	assert.Error(t, tm.Verify("", token))
	assert.Error(t, tm.Verify(token, ""))
	assert.Error(t, tm.Verify("", ""))
}

func TestVerifyRejectsMismatchedTokens(t *testing.T) {
	tm := NewTokenManager("test-secret", time.Minute)

	first, _, err := tm.Issue()
	require.NoError(t, err)
	second, _, err := tm.Issue()
	require.NoError(t, err)

	assert.Error(t, tm.Verify(first, second))
}

func TestVerifyRejectsForeignSignature(t *testing.T) {
	issuer := NewTokenManager("other-secret", time.Minute)
	token, _, err := issuer.Issue()
	require.NoError(t, err)

	tm := NewTokenManager("test-secret", time.Minute)
	assert.Error(t, tm.Verify(token, token))
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	// NewTokenManager refuses non-positive ttls, so build one directly
	// to mint an already-expired token.
	tm := &TokenManager{secret: []byte("test-secret"), ttl: -time.Minute}
	token, _, err := tm.Issue()
	require.NoError(t, err)

	assert.Error(t, tm.Verify(token, token))
}

func TestVerifyRejectsTamperedToken(t *testing.T) {
	tm := NewTokenManager("test-secret", time.Minute)
	token, _, err := tm.Issue()
	require.NoError(t, err)

	tampered := token[:len(token)-2] + "xx"
	assert.Error(t, tm.Verify(tampered, tampered))
}
