package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/zeelpatel7113/bytewave-sub001/internal/database"
	"github.com/zeelpatel7113/bytewave-sub001/internal/draft"
	"github.com/zeelpatel7113/bytewave-sub001/internal/models"
)

var (
	serviceRepo        *database.ServiceRepo
	serviceRequestRepo *database.ServiceRequestRepo
	draftBuffer        *draft.Aggregator
)

// listServicesHandler handles GET /api/services (public)
func listServicesHandler(c echo.Context) error {
	services, err := serviceRepo.List()
	if err != nil {
		return respondStorageError(c, "Failed to list services", err)
	}
	if services == nil {
		services = []*models.Service{}
	}
	return respondData(c, http.StatusOK, services)
}

type createServiceRequest struct {
	Title       string   `json:"title"`
	Overview    string   `json:"overview"`
	KeyBenefits []string `json:"key_benefits"`
	Approach    string   `json:"approach"`
	ImageURL    string   `json:"image_url"`
}

// createServiceHandler handles POST /api/services (protected)
func createServiceHandler(c echo.Context) error {
	var req createServiceRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, http.StatusBadRequest, "Invalid request body")
	}

	req.Title = strings.TrimSpace(req.Title)
	req.Overview = strings.TrimSpace(req.Overview)
	req.Approach = strings.TrimSpace(req.Approach)
	req.ImageURL = strings.TrimSpace(req.ImageURL)

	var missing []string
	if req.Title == "" {
		missing = append(missing, "title")
	}
	if req.Overview == "" {
		missing = append(missing, "overview")
	}
	if len(req.KeyBenefits) == 0 {
		missing = append(missing, "key_benefits")
	}
	if req.Approach == "" {
		missing = append(missing, "approach")
	}
	if req.ImageURL == "" {
		missing = append(missing, "image_url")
	}
	if len(missing) > 0 {
		return respondMissingFields(c, missing)
	}

	if len(req.KeyBenefits) > 4 {
		return respondError(c, http.StatusBadRequest, "Key benefits must contain between 1 and 4 items")
	}
	benefits := make([]string, len(req.KeyBenefits))
	for i, b := range req.KeyBenefits {
		b = strings.TrimSpace(b)
		if b == "" {
			return respondError(c, http.StatusBadRequest, "Key benefits must not contain blank entries")
		}
		benefits[i] = b
	}

	serviceID, err := serviceRepo.NextServiceID()
	if err != nil {
		return respondStorageError(c, "Failed to allocate service ID", err)
	}

	svc := &models.Service{
		ServiceID:   serviceID,
		Title:       req.Title,
		Overview:    req.Overview,
		KeyBenefits: benefits,
		Approach:    req.Approach,
		ImageURL:    req.ImageURL,
	}

	if err := serviceRepo.Create(svc); err != nil {
		if errors.Is(err, database.ErrServiceAlreadyExists) {
			return respondError(c, http.StatusConflict, "A service with this title already exists")
		}
		return respondStorageError(c, "Failed to save service", err)
	}

	return respondData(c, http.StatusCreated, svc)
}

type createServiceRequestRequest struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	ServiceID string `json:"service_id"`
	Message   string `json:"message"`
}

// createServiceRequestHandler handles POST /api/service-requests (public).
// Direct submissions enter the workflow as "pending"; drafts buffered by
// the session aggregator reach the same repository later as "partial".
func createServiceRequestHandler(c echo.Context) error {
	var req createServiceRequestRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, http.StatusBadRequest, "Invalid request body")
	}

	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	req.ServiceID = strings.TrimSpace(req.ServiceID)

	var missing []string
	if req.Name == "" {
		missing = append(missing, "name")
	}
	if req.Email == "" {
		missing = append(missing, "email")
	}
	if req.ServiceID == "" {
		missing = append(missing, "service_id")
	}
	if len(missing) > 0 {
		return respondMissingFields(c, missing)
	}

	sr := &models.ServiceRequest{
		RequestID:     newRequestID("REQ"),
		Name:          req.Name,
		Email:         req.Email,
		Phone:         strings.TrimSpace(req.Phone),
		ServiceID:     req.ServiceID,
		Message:       strings.TrimSpace(req.Message),
		StatusHistory: models.NewStatusHistory(models.StatusPending, "Service request received", ""),
	}

	if err := serviceRequestRepo.Create(sr); err != nil {
		if errors.Is(err, database.ErrServiceRequestAlreadyExists) {
			return respondError(c, http.StatusConflict, "A service request with this ID already exists")
		}
		return respondStorageError(c, "Failed to save service request", err)
	}

	return respondData(c, http.StatusCreated, sr)
}

type serviceDraftRequest struct {
	Key       string `json:"key"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	ServiceID string `json:"service_id"`
	Message   string `json:"message"`
}

// createServiceDraftHandler handles POST /api/service-requests/draft
// (public). The draft is buffered in the session aggregator and persisted
// as a "partial" submission once the inactivity window elapses.
func createServiceDraftHandler(c echo.Context) error {
	var req serviceDraftRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, http.StatusBadRequest, "Invalid request body")
	}

	key := strings.TrimSpace(req.Key)
	if key == "" {
		key = strings.TrimSpace(req.ServiceID)
	}
	if key == "" {
		return respondMissingFields(c, []string{"key"})
	}

	draftBuffer.UpdateData(key, &models.ServiceRequest{
		RequestID: newRequestID("REQ"),
		Name:      strings.TrimSpace(req.Name),
		Email:     strings.TrimSpace(req.Email),
		Phone:     strings.TrimSpace(req.Phone),
		ServiceID: strings.TrimSpace(req.ServiceID),
		Message:   req.Message,
	})

	return respondMessage(c, http.StatusAccepted, "Draft buffered")
}

// listServiceRequestsHandler handles GET /api/service-requests (protected)
func listServiceRequestsHandler(c echo.Context) error {
	reqs, err := serviceRequestRepo.List()
	if err != nil {
		return respondStorageError(c, "Failed to list service requests", err)
	}
	if reqs == nil {
		reqs = []*models.ServiceRequest{}
	}
	return respondData(c, http.StatusOK, reqs)
}
