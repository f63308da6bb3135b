// Package token issues and verifies the signed, time-limited session
// tokens carried in the auth cookie. Tokens are stateless: nothing is
// persisted server-side.
package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrMissingSecret means the signing secret is unset. This is a fatal
	// configuration error, not a per-request condition.
	ErrMissingSecret = errors.New("token signing secret is not configured")

	// ErrInvalidToken covers bad signatures, malformed input and expiry
	ErrInvalidToken = errors.New("invalid or expired token")
)

// Claims is the payload embedded in a session token
type Claims struct {
	jwt.RegisteredClaims
	AdminID int64  `json:"admin_id"`
	Email   string `json:"email"`
	IsAdmin bool   `json:"is_admin"`
}

// Service signs and verifies session tokens with an HMAC secret
type Service struct {
	secret []byte
	ttl    time.Duration
}

// NewService creates a token service. An empty secret is tolerated here so
// startup can proceed far enough to report it; every Issue/Verify call
// fails with ErrMissingSecret until a secret is set.
func NewService(secret string, ttl time.Duration) *Service {
	return &Service{secret: []byte(secret), ttl: ttl}
}

// TTL returns the configured token lifetime
func (s *Service) TTL() time.Duration {
	return s.ttl
}

// Issue returns a signed token embedding the claims with an expiry of
// now+TTL.
func (s *Service) Issue(adminID int64, email string, isAdmin bool) (string, error) {
	if len(s.secret) == 0 {
		return "", ErrMissingSecret
	}

	now := time.Now()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
		AdminID: adminID,
		Email:   email,
		IsAdmin: isAdmin,
	})

	return tok.SignedString(s.secret)
}

// Verify parses and validates a token, returning its claims. Any failure
// mode (signature, structure, expiry) collapses into ErrInvalidToken so
// callers cannot distinguish why verification failed.
func (s *Service) Verify(tokenString string) (*Claims, error) {
	if len(s.secret) == 0 {
		return nil, ErrMissingSecret
	}

	claims := &Claims{}
	tok, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, ErrInvalidToken
	}
	if !tok.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
