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
	careerRepo  *database.CareerRepo
	postingRepo *database.PostingRepo
)

type createCareerRequest struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	PositionID string `json:"position_id"`
	Message    string `json:"message"`
	ResumeURL  string `json:"resume_url"`
}

// createCareerHandler handles POST /api/careers (public submission)
func createCareerHandler(c echo.Context) error {
	var req createCareerRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, http.StatusBadRequest, "Invalid request body")
	}

	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	req.Phone = strings.TrimSpace(req.Phone)
	req.PositionID = strings.TrimSpace(req.PositionID)

	var missing []string
	if req.Name == "" {
		missing = append(missing, "name")
	}
	if req.Email == "" {
		missing = append(missing, "email")
	}
	if req.Phone == "" {
		missing = append(missing, "phone")
	}
	if req.PositionID == "" {
		missing = append(missing, "position_id")
	}
	if len(missing) > 0 {
		return respondMissingFields(c, missing)
	}

	app := &models.CareerApplication{
		RequestID:     newRequestID("CAR"),
		Name:          req.Name,
		Email:         req.Email,
		Phone:         req.Phone,
		PositionID:    req.PositionID,
		Message:       strings.TrimSpace(req.Message),
		ResumeURL:     strings.TrimSpace(req.ResumeURL),
		StatusHistory: models.NewStatusHistory(models.StatusPending, "Application received", ""),
	}

	if err := careerRepo.Create(app); err != nil {
		if errors.Is(err, database.ErrApplicationAlreadyExists) {
			return respondError(c, http.StatusConflict, "An application with this ID already exists")
		}
		return respondStorageError(c, "Failed to save career application", err)
	}

	return respondData(c, http.StatusCreated, app)
}

// listCareersHandler handles GET /api/careers (protected)
func listCareersHandler(c echo.Context) error {
	apps, err := careerRepo.List()
	if err != nil {
		return respondStorageError(c, "Failed to list career applications", err)
	}
	if apps == nil {
		apps = []*models.CareerApplication{}
	}
	return respondData(c, http.StatusOK, apps)
}

// listCareerTypesHandler handles GET /api/career-types (public)
func listCareerTypesHandler(c echo.Context) error {
	types, err := postingRepo.DistinctTypes()
	if err != nil {
		return respondStorageError(c, "Failed to list career types", err)
	}
	if types == nil {
		types = []string{}
	}
	return respondData(c, http.StatusOK, types)
}

// listPostingsHandler handles GET /api/careers/postings (public)
func listPostingsHandler(c echo.Context) error {
	postings, err := postingRepo.List()
	if err != nil {
		return respondStorageError(c, "Failed to list career postings", err)
	}
	if postings == nil {
		postings = []*models.CareerPosting{}
	}
	return respondData(c, http.StatusOK, postings)
}

type createPostingRequest struct {
	Title       string `json:"title"`
	Type        string `json:"type"`
	Location    string `json:"location"`
	Description string `json:"description"`
}

// createPostingHandler handles POST /api/careers/postings (protected)
func createPostingHandler(c echo.Context) error {
	var req createPostingRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, http.StatusBadRequest, "Invalid request body")
	}

	if strings.TrimSpace(req.Title) == "" {
		return respondMissingFields(c, []string{"title"})
	}

	postingID, err := postingRepo.NextPostingID()
	if err != nil {
		return respondStorageError(c, "Failed to allocate posting ID", err)
	}

	posting := &models.CareerPosting{
		PostingID:   postingID,
		Title:       strings.TrimSpace(req.Title),
		Type:        strings.TrimSpace(req.Type),
		Location:    strings.TrimSpace(req.Location),
		Description: strings.TrimSpace(req.Description),
	}

	if err := postingRepo.Create(posting); err != nil {
		if errors.Is(err, database.ErrPostingAlreadyExists) {
			return respondError(c, http.StatusConflict, "A posting with this ID already exists")
		}
		return respondStorageError(c, "Failed to save career posting", err)
	}

	return respondData(c, http.StatusCreated, posting)
}
