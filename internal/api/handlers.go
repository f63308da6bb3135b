package api

import (
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// Health check
func healthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status": "ok",
	})
}

// newRequestID generates a human-oriented unique identifier such as
// CNT-3F2A91B4. The uuid fragment keeps collisions out of reach while the
// prefix tells staff which workflow a request belongs to.
func newRequestID(prefix string) string {
	id := uuid.New().String()
	return prefix + "-" + strings.ToUpper(id[:8])
}
