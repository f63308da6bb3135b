package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/zeelpatel7113/bytewave-sub001/internal/database"
	"github.com/zeelpatel7113/bytewave-sub001/internal/models"
)

var (
	courseRepo          *database.CourseRepo
	trainingRequestRepo *database.TrainingRequestRepo
)

// listCoursesHandler handles GET /api/training-courses (public)
func listCoursesHandler(c echo.Context) error {
	courses, err := courseRepo.List()
	if err != nil {
		return respondStorageError(c, "Failed to list training courses", err)
	}
	if courses == nil {
		courses = []*models.TrainingCourse{}
	}
	return respondData(c, http.StatusOK, courses)
}

type createCourseRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Duration    string `json:"duration"`
	Level       string `json:"level"`
	ImageURL    string `json:"image_url"`
}

// createCourseHandler handles POST /api/training-courses (protected)
func createCourseHandler(c echo.Context) error {
	var req createCourseRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, http.StatusBadRequest, "Invalid request body")
	}

	req.Title = strings.TrimSpace(req.Title)
	req.Description = strings.TrimSpace(req.Description)

	var missing []string
	if req.Title == "" {
		missing = append(missing, "title")
	}
	if req.Description == "" {
		missing = append(missing, "description")
	}
	if len(missing) > 0 {
		return respondMissingFields(c, missing)
	}

	courseID, err := courseRepo.NextCourseID()
	if err != nil {
		return respondStorageError(c, "Failed to allocate course ID", err)
	}

	course := &models.TrainingCourse{
		CourseID:    courseID,
		Title:       req.Title,
		Description: req.Description,
		Duration:    strings.TrimSpace(req.Duration),
		Level:       strings.TrimSpace(req.Level),
		ImageURL:    strings.TrimSpace(req.ImageURL),
	}

	if err := courseRepo.Create(course); err != nil {
		if errors.Is(err, database.ErrCourseAlreadyExists) {
			return respondError(c, http.StatusConflict, "A course with this title already exists")
		}
		return respondStorageError(c, "Failed to save training course", err)
	}

	return respondData(c, http.StatusCreated, course)
}

type createTrainingRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	CourseID string `json:"course_id"`
	Message  string `json:"message"`
}

// createTrainingRequestHandler handles POST /api/training-requests (public)
func createTrainingRequestHandler(c echo.Context) error {
	var req createTrainingRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, http.StatusBadRequest, "Invalid request body")
	}

	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	req.CourseID = strings.TrimSpace(req.CourseID)

	var missing []string
	if req.Name == "" {
		missing = append(missing, "name")
	}
	if req.Email == "" {
		missing = append(missing, "email")
	}
	if req.CourseID == "" {
		missing = append(missing, "course_id")
	}
	if len(missing) > 0 {
		return respondMissingFields(c, missing)
	}

	tr := &models.TrainingRequest{
		RequestID:     newRequestID("TRN"),
		Name:          req.Name,
		Email:         req.Email,
		Phone:         strings.TrimSpace(req.Phone),
		CourseID:      req.CourseID,
		Message:       strings.TrimSpace(req.Message),
		StatusHistory: models.NewStatusHistory(models.StatusPending, "Training request received", ""),
	}

	if err := trainingRequestRepo.Create(tr); err != nil {
		if errors.Is(err, database.ErrTrainingRequestAlreadyExists) {
			return respondError(c, http.StatusConflict, "A training request with this ID already exists")
		}
		return respondStorageError(c, "Failed to save training request", err)
	}

	return respondData(c, http.StatusCreated, tr)
}

// listTrainingRequestsHandler handles GET /api/training-requests (protected)
func listTrainingRequestsHandler(c echo.Context) error {
	reqs, err := trainingRequestRepo.List()
	if err != nil {
		return respondStorageError(c, "Failed to list training requests", err)
	}
	if reqs == nil {
		reqs = []*models.TrainingRequest{}
	}
	return respondData(c, http.StatusOK, reqs)
}
