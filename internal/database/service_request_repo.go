package database

import (
	"database/sql"
	"errors"
	"time"

	"github.com/zeelpatel7113/bytewave-sub001/internal/models"
)

var (
	ErrServiceRequestNotFound      = errors.New("service request not found")
	ErrServiceRequestAlreadyExists = errors.New("service request already exists")
)

// ServiceRequestRepo handles service request database operations
type ServiceRequestRepo struct{}

// NewServiceRequestRepo creates a new service request repository
func NewServiceRequestRepo() *ServiceRequestRepo {
	return &ServiceRequestRepo{}
}

// Create inserts a service request with its seeded status history.
// Flushed aggregator drafts land here with a "partial" initial status.
func (r *ServiceRequestRepo) Create(req *models.ServiceRequest) error {
	history, err := marshalHistory(req.StatusHistory)
	if err != nil {
		return err
	}

	result, err := DB.Exec(`
		INSERT INTO service_requests (request_id, name, email, phone, service_id, message, status_history)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, req.RequestID, req.Name, req.Email, req.Phone, req.ServiceID, req.Message, history)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrServiceRequestAlreadyExists
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

// GetByRequestID retrieves a service request by its public request ID
func (r *ServiceRequestRepo) GetByRequestID(requestID string) (*models.ServiceRequest, error) {
	req := &models.ServiceRequest{}
	var phone, serviceID, message sql.NullString
	var history string

	err := DB.QueryRow(`
		SELECT id, request_id, name, email, phone, service_id, message, status_history, created_at, updated_at
		FROM service_requests WHERE request_id = ?
	`, requestID).Scan(
		&req.ID, &req.RequestID, &req.Name, &req.Email, &phone,
		&serviceID, &message, &history, &req.CreatedAt, &req.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrServiceRequestNotFound
	}
	if err != nil {
		return nil, err
	}

	req.Phone = phone.String
	req.ServiceID = serviceID.String
	req.Message = message.String
	if req.StatusHistory, err = scanHistory(history); err != nil {
		return nil, err
	}

	return req, nil
}

// List retrieves all service requests, most recent first
func (r *ServiceRequestRepo) List() ([]*models.ServiceRequest, error) {
	rows, err := DB.Query(`
		SELECT id, request_id, name, email, phone, service_id, message, status_history, created_at, updated_at
		FROM service_requests ORDER BY created_at DESC, id DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reqs []*models.ServiceRequest
	for rows.Next() {
		req := &models.ServiceRequest{}
		var phone, serviceID, message sql.NullString
		var history string

		err := rows.Scan(
			&req.ID, &req.RequestID, &req.Name, &req.Email, &phone,
			&serviceID, &message, &history, &req.CreatedAt, &req.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}

		req.Phone = phone.String
		req.ServiceID = serviceID.String
		req.Message = message.String
		if req.StatusHistory, err = scanHistory(history); err != nil {
			return nil, err
		}

		reqs = append(reqs, req)
	}

	return reqs, rows.Err()
}

// AppendStatus appends a status entry to a service request's audit trail
func (r *ServiceRequestRepo) AppendStatus(requestID string, status models.Status, note, updatedBy string) error {
	req, err := r.GetByRequestID(requestID)
	if err != nil {
		return err
	}

	history, err := marshalHistory(req.StatusHistory.Append(status, note, updatedBy))
	if err != nil {
		return err
	}

	_, err = DB.Exec(`
		UPDATE service_requests SET status_history = ?, updated_at = ? WHERE request_id = ?
	`, history, time.Now(), requestID)
	return err
}
