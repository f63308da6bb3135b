package database

import (
	"database/sql"
	"errors"
	"time"

	"github.com/zeelpatel7113/bytewave-sub001/internal/models"
)

var (
	ErrApplicationNotFound      = errors.New("career application not found")
	ErrApplicationAlreadyExists = errors.New("career application already exists")
)

// CareerRepo handles career application database operations
type CareerRepo struct{}

// NewCareerRepo creates a new career application repository
func NewCareerRepo() *CareerRepo {
	return &CareerRepo{}
}

// Create inserts a career application with its seeded status history
func (r *CareerRepo) Create(app *models.CareerApplication) error {
	history, err := marshalHistory(app.StatusHistory)
	if err != nil {
		return err
	}

	result, err := DB.Exec(`
		INSERT INTO career_applications (request_id, name, email, phone, position_id, message, resume_url, status_history)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, app.RequestID, app.Name, app.Email, app.Phone, app.PositionID, app.Message, app.ResumeURL, history)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrApplicationAlreadyExists
		}
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}
	app.ID = id

	return nil
}

// GetByRequestID retrieves a career application by its public request ID
func (r *CareerRepo) GetByRequestID(requestID string) (*models.CareerApplication, error) {
	app := &models.CareerApplication{}
	var message, resumeURL sql.NullString
	var history string

	err := DB.QueryRow(`
		SELECT id, request_id, name, email, phone, position_id, message, resume_url, status_history, created_at, updated_at
		FROM career_applications WHERE request_id = ?
	`, requestID).Scan(
		&app.ID, &app.RequestID, &app.Name, &app.Email, &app.Phone,
		&app.PositionID, &message, &resumeURL, &history, &app.CreatedAt, &app.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrApplicationNotFound
	}
	if err != nil {
		return nil, err
	}

	app.Message = message.String
	app.ResumeURL = resumeURL.String
	if app.StatusHistory, err = scanHistory(history); err != nil {
		return nil, err
	}

	return app, nil
}

// List retrieves all career applications, most recent first
func (r *CareerRepo) List() ([]*models.CareerApplication, error) {
	rows, err := DB.Query(`
		SELECT id, request_id, name, email, phone, position_id, message, resume_url, status_history, created_at, updated_at
		FROM career_applications ORDER BY created_at DESC, id DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var apps []*models.CareerApplication
	for rows.Next() {
		app := &models.CareerApplication{}
		var message, resumeURL sql.NullString
		var history string

		err := rows.Scan(
			&app.ID, &app.RequestID, &app.Name, &app.Email, &app.Phone,
			&app.PositionID, &message, &resumeURL, &history, &app.CreatedAt, &app.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}

		app.Message = message.String
		app.ResumeURL = resumeURL.String
		if app.StatusHistory, err = scanHistory(history); err != nil {
			return nil, err
		}

		apps = append(apps, app)
	}

	return apps, rows.Err()
}

// AppendStatus appends a status entry to an application's audit trail
func (r *CareerRepo) AppendStatus(requestID string, status models.Status, note, updatedBy string) error {
	app, err := r.GetByRequestID(requestID)
	if err != nil {
		return err
	}

	history, err := marshalHistory(app.StatusHistory.Append(status, note, updatedBy))
	if err != nil {
		return err
	}

	_, err = DB.Exec(`
		UPDATE career_applications SET status_history = ?, updated_at = ? WHERE request_id = ?
	`, history, time.Now(), requestID)
	return err
}
