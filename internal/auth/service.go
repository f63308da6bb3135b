package auth

import (
	"errors"

	"github.com/zeelpatel7113/bytewave-sub001/internal/database"
	"github.com/zeelpatel7113/bytewave-sub001/internal/models"
	"github.com/zeelpatel7113/bytewave-sub001/internal/token"
)

// ErrInvalidCredentials is returned for both an unknown email and a wrong
// password so the response cannot leak which check failed.
var ErrInvalidCredentials = errors.New("invalid credentials")

// Service handles authentication logic
type Service struct {
	adminRepo *database.AdminRepo
	tokens    *token.Service
}

// NewService creates a new auth service
func NewService(tokens *token.Service) *Service {
	return &Service{
		adminRepo: database.NewAdminRepo(),
		tokens:    tokens,
	}
}

// Tokens exposes the underlying token service
func (s *Service) Tokens() *token.Service {
	return s.tokens
}

// Login authenticates an admin and issues a session token
func (s *Service) Login(email, password string) (*models.Admin, string, error) {
	admin, err := s.adminRepo.GetByEmail(email)
	if err != nil {
		if errors.Is(err, database.ErrAdminNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}

	valid, err := VerifyPassword(password, admin.PasswordHash)
	if err != nil {
		return nil, "", err
	}
	if !valid {
		return nil, "", ErrInvalidCredentials
	}

	tok, err := s.tokens.Issue(admin.ID, admin.Email, admin.IsAdmin)
	if err != nil {
		return nil, "", err
	}

	return admin, tok, nil
}

// VerifyAdmin verifies a session token and loads the admin it names.
// Fails with token.ErrInvalidToken for any bad, expired or non-admin token.
func (s *Service) VerifyAdmin(tokenString string) (*models.Admin, error) {
	claims, err := s.tokens.Verify(tokenString)
	if err != nil {
		return nil, err
	}
	if !claims.IsAdmin {
		return nil, token.ErrInvalidToken
	}

	admin, err := s.adminRepo.GetByID(claims.AdminID)
	if err != nil {
		if errors.Is(err, database.ErrAdminNotFound) {
			return nil, token.ErrInvalidToken
		}
		return nil, err
	}
	if !admin.IsAdmin {
		return nil, token.ErrInvalidToken
	}

	return admin, nil
}

// Check is a status probe: it returns the admin for a valid session token
// and nil for an absent or invalid one. It never reports an error to the
// caller beyond genuine storage failures.
func (s *Service) Check(tokenString string) *models.Admin {
	if tokenString == "" {
		return nil
	}
	admin, err := s.VerifyAdmin(tokenString)
	if err != nil {
		return nil
	}
	return admin
}
