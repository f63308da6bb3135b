package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/zeelpatel7113/bytewave-sub001/internal/database"
	"github.com/zeelpatel7113/bytewave-sub001/internal/models"
)

var contactRepo *database.ContactRepo

type createContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Message string `json:"message"`
}

// createContactHandler handles POST /api/contacts (public submission)
func createContactHandler(c echo.Context) error {
	var req createContactRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, http.StatusBadRequest, "Invalid request body")
	}

	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	req.Phone = strings.TrimSpace(req.Phone)
	req.Message = strings.TrimSpace(req.Message)

	var missing []string
	if req.Name == "" {
		missing = append(missing, "name")
	}
	if req.Email == "" {
		missing = append(missing, "email")
	}
	if req.Message == "" {
		missing = append(missing, "message")
	}
	if len(missing) > 0 {
		return respondMissingFields(c, missing)
	}

	contact := &models.ContactRequest{
		RequestID:     newRequestID("CNT"),
		Name:          req.Name,
		Email:         req.Email,
		Phone:         req.Phone,
		Message:       req.Message,
		StatusHistory: models.NewStatusHistory(models.StatusNew, "Contact request received", ""),
	}

	if err := contactRepo.Create(contact); err != nil {
		if errors.Is(err, database.ErrContactAlreadyExists) {
			return respondError(c, http.StatusConflict, "A contact request with this ID already exists")
		}
		return respondStorageError(c, "Failed to save contact request", err)
	}

	return respondData(c, http.StatusCreated, contact)
}

// listContactsHandler handles GET /api/contacts (protected)
func listContactsHandler(c echo.Context) error {
	contacts, err := contactRepo.List()
	if err != nil {
		return respondStorageError(c, "Failed to list contact requests", err)
	}
	if contacts == nil {
		contacts = []*models.ContactRequest{}
	}
	return respondData(c, http.StatusOK, contacts)
}
