package models

import "time"

// Service is an admin-managed catalog entry describing an offered service
type Service struct {
	ID          int64     `json:"id"`
	ServiceID   string    `json:"service_id"` // SRV-### sequential
	Title       string    `json:"title"`
	Overview    string    `json:"overview"`
	KeyBenefits []string  `json:"key_benefits"` // 1 to 4 bullet points
	Approach    string    `json:"approach"`
	ImageURL    string    `json:"image_url"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TrainingCourse is an admin-managed catalog entry for a training offering
type TrainingCourse struct {
	ID          int64     `json:"id"`
	CourseID    string    `json:"course_id"` // TRC-### sequential
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Duration    string    `json:"duration,omitempty"`
	Level       string    `json:"level,omitempty"`
	ImageURL    string    `json:"image_url,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CareerPosting is an open position applications can reference
type CareerPosting struct {
	ID          int64     `json:"id"`
	PostingID   string    `json:"posting_id"` // JOB-### sequential
	Title       string    `json:"title"`
	Type        string    `json:"type,omitempty"` // full-time, contract, internship...
	Location    string    `json:"location,omitempty"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
