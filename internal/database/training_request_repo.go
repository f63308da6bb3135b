package database

import (
	"database/sql"
	"errors"
	"time"

	"github.com/zeelpatel7113/bytewave-sub001/internal/models"
)

var (
	ErrTrainingRequestNotFound      = errors.New("training request not found")
	ErrTrainingRequestAlreadyExists = errors.New("training request already exists")
)

// TrainingRequestRepo handles training request database operations
type TrainingRequestRepo struct{}

// NewTrainingRequestRepo creates a new training request repository
func NewTrainingRequestRepo() *TrainingRequestRepo {
	return &TrainingRequestRepo{}
}

// Create inserts a training request with its seeded status history
func (r *TrainingRequestRepo) Create(req *models.TrainingRequest) error {
	history, err := marshalHistory(req.StatusHistory)
	if err != nil {
		return err
	}

	result, err := DB.Exec(`
		INSERT INTO training_requests (request_id, name, email, phone, course_id, message, status_history)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, req.RequestID, req.Name, req.Email, req.Phone, req.CourseID, req.Message, history)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrTrainingRequestAlreadyExists
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

// GetByRequestID retrieves a training request by its public request ID
func (r *TrainingRequestRepo) GetByRequestID(requestID string) (*models.TrainingRequest, error) {
	req := &models.TrainingRequest{}
	var phone, message sql.NullString
	var history string

	err := DB.QueryRow(`
		SELECT id, request_id, name, email, phone, course_id, message, status_history, created_at, updated_at
		FROM training_requests WHERE request_id = ?
	`, requestID).Scan(
		&req.ID, &req.RequestID, &req.Name, &req.Email, &phone,
		&req.CourseID, &message, &history, &req.CreatedAt, &req.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrTrainingRequestNotFound
	}
	if err != nil {
		return nil, err
	}

	req.Phone = phone.String
	req.Message = message.String
	if req.StatusHistory, err = scanHistory(history); err != nil {
		return nil, err
	}

	return req, nil
}

// List retrieves all training requests, most recent first
func (r *TrainingRequestRepo) List() ([]*models.TrainingRequest, error) {
	rows, err := DB.Query(`
		SELECT id, request_id, name, email, phone, course_id, message, status_history, created_at, updated_at
		FROM training_requests ORDER BY created_at DESC, id DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reqs []*models.TrainingRequest
	for rows.Next() {
		req := &models.TrainingRequest{}
		var phone, message sql.NullString
		var history string

		err := rows.Scan(
			&req.ID, &req.RequestID, &req.Name, &req.Email, &phone,
			&req.CourseID, &message, &history, &req.CreatedAt, &req.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}

		req.Phone = phone.String
		req.Message = message.String
		if req.StatusHistory, err = scanHistory(history); err != nil {
			return nil, err
		}

		reqs = append(reqs, req)
	}

	return reqs, rows.Err()
}

// AppendStatus appends a status entry to a training request's audit trail
func (r *TrainingRequestRepo) AppendStatus(requestID string, status models.Status, note, updatedBy string) error {
	req, err := r.GetByRequestID(requestID)
	if err != nil {
		return err
	}

	history, err := marshalHistory(req.StatusHistory.Append(status, note, updatedBy))
	if err != nil {
		return err
	}

	_, err = DB.Exec(`
		UPDATE training_requests SET status_history = ?, updated_at = ? WHERE request_id = ?
	`, history, time.Now(), requestID)
	return err
}
