package database

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/zeelpatel7113/bytewave-sub001/internal/models"
)

var (
	ErrServiceNotFound      = errors.New("service not found")
	ErrServiceAlreadyExists = errors.New("service already exists")
)

// ServiceRepo handles service catalog database operations
type ServiceRepo struct{}

// NewServiceRepo creates a new service catalog repository
func NewServiceRepo() *ServiceRepo {
	return &ServiceRepo{}
}

// NextServiceID derives the next sequential public ID (SRV-001, SRV-002...)
// from the table's monotonic row count.
func (r *ServiceRepo) NextServiceID() (string, error) {
	var count int
	if err := DB.QueryRow("SELECT COUNT(*) FROM services").Scan(&count); err != nil {
		return "", err
	}
	return fmt.Sprintf("SRV-%03d", count+1), nil
}

// Create inserts a catalog service. Titles are unique case-insensitively;
// a duplicate surfaces as ErrServiceAlreadyExists.
func (r *ServiceRepo) Create(svc *models.Service) error {
	benefits, err := marshalStrings(svc.KeyBenefits)
	if err != nil {
		return err
	}

	result, err := DB.Exec(`
		INSERT INTO services (service_id, title, overview, key_benefits, approach, image_url)
		VALUES (?, ?, ?, ?, ?, ?)
	`, svc.ServiceID, svc.Title, svc.Overview, benefits, svc.Approach, svc.ImageURL)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrServiceAlreadyExists
		}
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}
	svc.ID = id

	return nil
}

// GetByServiceID retrieves a service by its public ID
func (r *ServiceRepo) GetByServiceID(serviceID string) (*models.Service, error) {
	svc := &models.Service{}
	var benefits string

	err := DB.QueryRow(`
		SELECT id, service_id, title, overview, key_benefits, approach, image_url, created_at, updated_at
		FROM services WHERE service_id = ?
	`, serviceID).Scan(
		&svc.ID, &svc.ServiceID, &svc.Title, &svc.Overview, &benefits,
		&svc.Approach, &svc.ImageURL, &svc.CreatedAt, &svc.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrServiceNotFound
	}
	if err != nil {
		return nil, err
	}

	if svc.KeyBenefits, err = scanStrings(benefits); err != nil {
		return nil, err
	}

	return svc, nil
}

// List retrieves all catalog services, most recent first
func (r *ServiceRepo) List() ([]*models.Service, error) {
	rows, err := DB.Query(`
		SELECT id, service_id, title, overview, key_benefits, approach, image_url, created_at, updated_at
		FROM services ORDER BY created_at DESC, id DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var svcs []*models.Service
	for rows.Next() {
		svc := &models.Service{}
		var benefits string

		err := rows.Scan(
			&svc.ID, &svc.ServiceID, &svc.Title, &svc.Overview, &benefits,
			&svc.Approach, &svc.ImageURL, &svc.CreatedAt, &svc.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}

		if svc.KeyBenefits, err = scanStrings(benefits); err != nil {
			return nil, err
		}

		svcs = append(svcs, svc)
	}

	return svcs, rows.Err()
}
