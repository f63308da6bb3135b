package api

import (
	"strings"

	"github.com/labstack/echo/v4"
)

// envelope is the JSON shape every API response uses. Errors never cross
// the HTTP boundary unwrapped.
type envelope struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Error   string      `json:"error,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func respondData(c echo.Context, status int, data interface{}) error {
	return c.JSON(status, envelope{Success: true, Data: data})
}

func respondMessage(c echo.Context, status int, message string) error {
	return c.JSON(status, envelope{Success: true, Message: message})
}

func respondError(c echo.Context, status int, message string) error {
	return c.JSON(status, envelope{Success: false, Message: message})
}

// respondStorageError reports a persistence failure with the underlying
// message attached for diagnostics; a production UI never shows it.
func respondStorageError(c echo.Context, message string, err error) error {
	c.Logger().Error(message, ": ", err)
	return c.JSON(500, envelope{Success: false, Message: message, Error: err.Error()})
}

// respondMissingFields reports a validation failure naming every missing
// required field.
func respondMissingFields(c echo.Context, fields []string) error {
	return respondError(c, 400, "Missing required fields: "+strings.Join(fields, ", "))
}
