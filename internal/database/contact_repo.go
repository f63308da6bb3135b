package database

import (
	"database/sql"
	"errors"
	"time"

	"github.com/zeelpatel7113/bytewave-sub001/internal/models"
)

var (
	ErrContactNotFound      = errors.New("contact request not found")
	ErrContactAlreadyExists = errors.New("contact request already exists")
)

// ContactRepo handles contact request database operations
type ContactRepo struct{}

// NewContactRepo creates a new contact request repository
func NewContactRepo() *ContactRepo {
	return &ContactRepo{}
}

// Create inserts a contact request. The caller must have seeded the status
// history; a request is never stored with an empty audit trail.
func (r *ContactRepo) Create(req *models.ContactRequest) error {
	history, err := marshalHistory(req.StatusHistory)
	if err != nil {
		return err
	}

	result, err := DB.Exec(`
		INSERT INTO contact_requests (request_id, name, email, phone, message, status_history)
		VALUES (?, ?, ?, ?, ?, ?)
	`, req.RequestID, req.Name, req.Email, req.Phone, req.Message, history)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrContactAlreadyExists
		}
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}
	req.ID = id

	return nil
}

// GetByRequestID retrieves a contact request by its public request ID
func (r *ContactRepo) GetByRequestID(requestID string) (*models.ContactRequest, error) {
	req := &models.ContactRequest{}
	var phone sql.NullString
	var history string

	err := DB.QueryRow(`
		SELECT id, request_id, name, email, phone, message, status_history, created_at, updated_at
		FROM contact_requests WHERE request_id = ?
	`, requestID).Scan(
		&req.ID, &req.RequestID, &req.Name, &req.Email, &phone,
		&req.Message, &history, &req.CreatedAt, &req.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrContactNotFound
	}
	if err != nil {
		return nil, err
	}

	req.Phone = phone.String
	if req.StatusHistory, err = scanHistory(history); err != nil {
		return nil, err
	}

	return req, nil
}

// List retrieves all contact requests, most recent first
func (r *ContactRepo) List() ([]*models.ContactRequest, error) {
	rows, err := DB.Query(`
		SELECT id, request_id, name, email, phone, message, status_history, created_at, updated_at
		FROM contact_requests ORDER BY created_at DESC, id DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reqs []*models.ContactRequest
	for rows.Next() {
		req := &models.ContactRequest{}
		var phone sql.NullString
		var history string

		err := rows.Scan(
			&req.ID, &req.RequestID, &req.Name, &req.Email, &phone,
			&req.Message, &history, &req.CreatedAt, &req.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}

		req.Phone = phone.String
		if req.StatusHistory, err = scanHistory(history); err != nil {
			return nil, err
		}

		reqs = append(reqs, req)
	}

	return reqs, rows.Err()
}

// AppendStatus appends a status entry to a contact request's audit trail.
// Prior entries are never modified.
func (r *ContactRepo) AppendStatus(requestID string, status models.Status, note, updatedBy string) error {
	req, err := r.GetByRequestID(requestID)
	if err != nil {
		return err
	}

	history, err := marshalHistory(req.StatusHistory.Append(status, note, updatedBy))
	if err != nil {
		return err
	}

	_, err = DB.Exec(`
		UPDATE contact_requests SET status_history = ?, updated_at = ? WHERE request_id = ?
	`, history, time.Now(), requestID)
	return err
}
