package database

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/zeelpatel7113/bytewave-sub001/internal/models"
)

var (
	ErrPostingNotFound      = errors.New("career posting not found")
	ErrPostingAlreadyExists = errors.New("career posting already exists")
)

// PostingRepo handles career posting catalog database operations
type PostingRepo struct{}

// NewPostingRepo creates a new career posting repository
func NewPostingRepo() *PostingRepo {
	return &PostingRepo{}
}

// NextPostingID derives the next sequential public ID (JOB-001, JOB-002...)
func (r *PostingRepo) NextPostingID() (string, error) {
	var count int
	if err := DB.QueryRow("SELECT COUNT(*) FROM career_postings").Scan(&count); err != nil {
		return "", err
	}
	return fmt.Sprintf("JOB-%03d", count+1), nil
}

// Create inserts a career posting
func (r *PostingRepo) Create(posting *models.CareerPosting) error {
	result, err := DB.Exec(`
		INSERT INTO career_postings (posting_id, title, type, location, description)
		VALUES (?, ?, ?, ?, ?)
	`, posting.PostingID, posting.Title, posting.Type, posting.Location, posting.Description)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrPostingAlreadyExists
		}
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}
	posting.ID = id

	return nil
}

// GetByPostingID retrieves a career posting by its public ID
func (r *PostingRepo) GetByPostingID(postingID string) (*models.CareerPosting, error) {
	posting := &models.CareerPosting{}
	var typ, location, description sql.NullString

	err := DB.QueryRow(`
		SELECT id, posting_id, title, type, location, description, created_at, updated_at
		FROM career_postings WHERE posting_id = ?
	`, postingID).Scan(
		&posting.ID, &posting.PostingID, &posting.Title,
		&typ, &location, &description, &posting.CreatedAt, &posting.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrPostingNotFound
	}
	if err != nil {
		return nil, err
	}

	posting.Type = typ.String
	posting.Location = location.String
	posting.Description = description.String

	return posting, nil
}

// List retrieves all career postings, most recent first
func (r *PostingRepo) List() ([]*models.CareerPosting, error) {
	rows, err := DB.Query(`
		SELECT id, posting_id, title, type, location, description, created_at, updated_at
		FROM career_postings ORDER BY created_at DESC, id DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var postings []*models.CareerPosting
	for rows.Next() {
		posting := &models.CareerPosting{}
		var typ, location, description sql.NullString

		err := rows.Scan(
			&posting.ID, &posting.PostingID, &posting.Title,
			&typ, &location, &description, &posting.CreatedAt, &posting.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}

		posting.Type = typ.String
		posting.Location = location.String
		posting.Description = description.String

		postings = append(postings, posting)
	}

	return postings, rows.Err()
}

// DistinctTypes returns the distinct non-empty type values across postings
func (r *PostingRepo) DistinctTypes() ([]string, error) {
	rows, err := DB.Query(`
		SELECT DISTINCT type FROM career_postings
		WHERE type IS NOT NULL AND type != '' ORDER BY type
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var types []string
	for rows.Next() {
		var t string
		if err := rows.Scan(&t); err != nil {
			return nil, err
		}
		types = append(types, t)
	}

	return types, rows.Err()
}
