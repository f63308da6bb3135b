package token

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueAndVerify_Success(t *testing.T) {
	t.Parallel()

	svc := NewService("super-secret", time.Hour)

	tok, err := svc.Issue(42, "admin@bytewave.com", true)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	claims, err := svc.Verify(tok)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.AdminID)
	assert.Equal(t, "admin@bytewave.com", claims.Email)
	assert.True(t, claims.IsAdmin)
}

func TestVerify_Expired(t *testing.T) {
	t.Parallel()

	svc := NewService("secret", -1*time.Second)

	tok, err := svc.Issue(1, "a@b.com", true)
	require.NoError(t, err)

	_, err = svc.Verify(tok)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerify_WrongSecret(t *testing.T) {
	t.Parallel()

	issuer := NewService("right-secret", time.Hour)
	verifier := NewService("wrong-secret", time.Hour)

	tok, err := issuer.Issue(1, "a@b.com", true)
	require.NoError(t, err)

	_, err = verifier.Verify(tok)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerify_Malformed(t *testing.T) {
	t.Parallel()

	svc := NewService("k", time.Hour)

	_, err := svc.Verify("not.a.jwt")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestMissingSecret_IsConfigError(t *testing.T) {
	t.Parallel()

	svc := NewService("", time.Hour)

	_, err := svc.Issue(1, "a@b.com", true)
	assert.ErrorIs(t, err, ErrMissingSecret)

	_, err = svc.Verify("anything")
	assert.ErrorIs(t, err, ErrMissingSecret)
}
