package database

import (
	"database/sql"
	"errors"

	"github.com/zeelpatel7113/bytewave-sub001/internal/models"
)

var (
	ErrAdminNotFound      = errors.New("admin not found")
	ErrAdminAlreadyExists = errors.New("admin already exists")
)

// AdminRepo handles admin account database operations
type AdminRepo struct{}

// NewAdminRepo creates a new admin repository
func NewAdminRepo() *AdminRepo {
	return &AdminRepo{}
}

// Create creates a new admin account
func (r *AdminRepo) Create(admin *models.Admin) error {
	result, err := DB.Exec(`
		INSERT INTO admins (email, name, password_hash, is_admin)
		VALUES (?, ?, ?, ?)
	`, admin.Email, admin.Name, admin.PasswordHash, admin.IsAdmin)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrAdminAlreadyExists
		}
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}
	admin.ID = id

	return nil
}

// GetByEmail retrieves an admin account by email. The email column is
// COLLATE NOCASE, so lookups are case-insensitive.
func (r *AdminRepo) GetByEmail(email string) (*models.Admin, error) {
	admin := &models.Admin{}

	err := DB.QueryRow(`
		SELECT id, email, name, password_hash, is_admin, created_at, updated_at
		FROM admins WHERE email = ? AND is_admin = 1
	`, email).Scan(
		&admin.ID, &admin.Email, &admin.Name, &admin.PasswordHash,
		&admin.IsAdmin, &admin.CreatedAt, &admin.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrAdminNotFound
	}
	if err != nil {
		return nil, err
	}

	return admin, nil
}

// GetByID retrieves an admin account by ID
func (r *AdminRepo) GetByID(id int64) (*models.Admin, error) {
	admin := &models.Admin{}

	err := DB.QueryRow(`
		SELECT id, email, name, password_hash, is_admin, created_at, updated_at
		FROM admins WHERE id = ?
	`, id).Scan(
		&admin.ID, &admin.Email, &admin.Name, &admin.PasswordHash,
		&admin.IsAdmin, &admin.CreatedAt, &admin.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrAdminNotFound
	}
	if err != nil {
		return nil, err
	}

	return admin, nil
}

// Count returns the total number of admin accounts
func (r *AdminRepo) Count() (int, error) {
	var count int
	err := DB.QueryRow("SELECT COUNT(*) FROM admins").Scan(&count)
	return count, err
}
