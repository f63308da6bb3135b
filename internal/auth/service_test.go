package auth

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zeelpatel7113/bytewave-sub001/internal/database"
	"github.com/zeelpatel7113/bytewave-sub001/internal/models"
	"github.com/zeelpatel7113/bytewave-sub001/internal/token"
)

func newTestService(t *testing.T, ttl time.Duration) *Service {
	t.Helper()

	path := filepath.Join(t.TempDir(), "test.db")
	require.NoError(t, database.Open(database.Config{Path: path}))
	t.Cleanup(func() { database.Close() })

	hash, err := HashPassword("correct-horse")
	require.NoError(t, err)
	require.NoError(t, database.NewAdminRepo().Create(&models.Admin{
		Email:        "admin@bytewave.com",
		Name:         "Administrator",
		PasswordHash: hash,
		IsAdmin:      true,
	}))

	return NewService(token.NewService("test-secret", ttl))
}

func TestLogin_Success(t *testing.T) {
	svc := newTestService(t, time.Hour)

	admin, tok, err := svc.Login("admin@bytewave.com", "correct-horse")
	require.NoError(t, err)
	require.NotEmpty(t, tok)
	assert.Equal(t, "admin@bytewave.com", admin.Email)

	verified, err := svc.VerifyAdmin(tok)
	require.NoError(t, err)
	assert.Equal(t, admin.ID, verified.ID)
}

// A wrong password and a nonexistent email must be indistinguishable to
// the caller.
func TestLogin_NoCredentialLeak(t *testing.T) {
	svc := newTestService(t, time.Hour)

	_, _, errWrongPassword := svc.Login("admin@bytewave.com", "wrong")
	_, _, errUnknownEmail := svc.Login("nobody@bytewave.com", "correct-horse")

	require.ErrorIs(t, errWrongPassword, ErrInvalidCredentials)
	require.ErrorIs(t, errUnknownEmail, ErrInvalidCredentials)
	assert.Equal(t, errWrongPassword.Error(), errUnknownEmail.Error())
}

func TestLogin_EmailIsCaseInsensitive(t *testing.T) {
	svc := newTestService(t, time.Hour)

	_, _, err := svc.Login("ADMIN@bytewave.com", "correct-horse")
	assert.NoError(t, err)
}

func TestVerifyAdmin_ExpiredToken(t *testing.T) {
	svc := newTestService(t, -1*time.Second)

	_, tok, err := svc.Login("admin@bytewave.com", "correct-horse")
	require.NoError(t, err)

	_, err = svc.VerifyAdmin(tok)
	assert.ErrorIs(t, err, token.ErrInvalidToken)
}

func TestCheck_IsAProbeNotAGate(t *testing.T) {
	svc := newTestService(t, time.Hour)

	assert.Nil(t, svc.Check(""))
	assert.Nil(t, svc.Check("garbage"))

	_, tok, err := svc.Login("admin@bytewave.com", "correct-horse")
	require.NoError(t, err)

	admin := svc.Check(tok)
	require.NotNil(t, admin)
	assert.Equal(t, "admin@bytewave.com", admin.Email)
}

func TestHashAndVerifyPassword(t *testing.T) {
	t.Parallel()

	hash, err := HashPassword("s3cret")
	require.NoError(t, err)

	ok, err := VerifyPassword("s3cret", hash)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = VerifyPassword("nope", hash)
	require.NoError(t, err)
	assert.False(t, ok)
}
