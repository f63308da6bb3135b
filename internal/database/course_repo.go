package database

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/zeelpatel7113/bytewave-sub001/internal/models"
)

var (
	ErrCourseNotFound      = errors.New("training course not found")
	ErrCourseAlreadyExists = errors.New("training course already exists")
)

// CourseRepo handles training course catalog database operations
type CourseRepo struct{}

// NewCourseRepo creates a new training course repository
func NewCourseRepo() *CourseRepo {
	return &CourseRepo{}
}

// NextCourseID derives the next sequential public ID (TRC-001, TRC-002...)
func (r *CourseRepo) NextCourseID() (string, error) {
	var count int
	if err := DB.QueryRow("SELECT COUNT(*) FROM training_courses").Scan(&count); err != nil {
		return "", err
	}
	return fmt.Sprintf("TRC-%03d", count+1), nil
}

// Create inserts a training course
func (r *CourseRepo) Create(course *models.TrainingCourse) error {
	result, err := DB.Exec(`
		INSERT INTO training_courses (course_id, title, description, duration, level, image_url)
		VALUES (?, ?, ?, ?, ?, ?)
	`, course.CourseID, course.Title, course.Description, course.Duration, course.Level, course.ImageURL)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrCourseAlreadyExists
		}
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}
	course.ID = id

	return nil
}

// GetByCourseID retrieves a training course by its public ID
func (r *CourseRepo) GetByCourseID(courseID string) (*models.TrainingCourse, error) {
	course := &models.TrainingCourse{}
	var duration, level, imageURL sql.NullString

	err := DB.QueryRow(`
		SELECT id, course_id, title, description, duration, level, image_url, created_at, updated_at
		FROM training_courses WHERE course_id = ?
	`, courseID).Scan(
		&course.ID, &course.CourseID, &course.Title, &course.Description,
		&duration, &level, &imageURL, &course.CreatedAt, &course.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrCourseNotFound
	}
	if err != nil {
		return nil, err
	}

	course.Duration = duration.String
	course.Level = level.String
	course.ImageURL = imageURL.String

	return course, nil
}

// List retrieves all training courses, most recent first
func (r *CourseRepo) List() ([]*models.TrainingCourse, error) {
	rows, err := DB.Query(`
		SELECT id, course_id, title, description, duration, level, image_url, created_at, updated_at
		FROM training_courses ORDER BY created_at DESC, id DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var courses []*models.TrainingCourse
	for rows.Next() {
		course := &models.TrainingCourse{}
		var duration, level, imageURL sql.NullString

		err := rows.Scan(
			&course.ID, &course.CourseID, &course.Title, &course.Description,
			&duration, &level, &imageURL, &course.CreatedAt, &course.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}

		course.Duration = duration.String
		course.Level = level.String
		course.ImageURL = imageURL.String

		courses = append(courses, course)
	}

	return courses, rows.Err()
}
