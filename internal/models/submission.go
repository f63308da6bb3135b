package models

import "time"

// ContactRequest is a message sent through the public contact form
type ContactRequest struct {
	ID            int64         `json:"id"`
	RequestID     string        `json:"request_id"`
	Name          string        `json:"name"`
	Email         string        `json:"email"`
	Phone         string        `json:"phone,omitempty"`
	Message       string        `json:"message"`
	StatusHistory StatusHistory `json:"status_history"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}

// CareerApplication is an application against a career posting
type CareerApplication struct {
	ID            int64         `json:"id"`
	RequestID     string        `json:"request_id"`
	Name          string        `json:"name"`
	Email         string        `json:"email"`
	Phone         string        `json:"phone"`
	PositionID    string        `json:"position_id"` // career posting reference (JOB-###)
	Message       string        `json:"message,omitempty"`
	ResumeURL     string        `json:"resume_url,omitempty"`
	StatusHistory StatusHistory `json:"status_history"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}

// ServiceRequest is an enquiry about a catalog service. Requests arrive
// either as direct submissions or as flushed drafts from the session
// aggregator, in which case the seeded status is "partial".
type ServiceRequest struct {
	ID            int64         `json:"id"`
	RequestID     string        `json:"request_id"`
	Name          string        `json:"name"`
	Email         string        `json:"email"`
	Phone         string        `json:"phone,omitempty"`
	ServiceID     string        `json:"service_id,omitempty"` // catalog reference (SRV-###)
	Message       string        `json:"message,omitempty"`
	StatusHistory StatusHistory `json:"status_history"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}

// TrainingRequest is an enrollment request for a training course
type TrainingRequest struct {
	ID            int64         `json:"id"`
	RequestID     string        `json:"request_id"`
	Name          string        `json:"name"`
	Email         string        `json:"email"`
	Phone         string        `json:"phone,omitempty"`
	CourseID      string        `json:"course_id"` // catalog reference (TRC-###)
	Message       string        `json:"message,omitempty"`
	StatusHistory StatusHistory `json:"status_history"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}
