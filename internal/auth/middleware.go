package auth

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/zeelpatel7113/bytewave-sub001/internal/models"
)

// ContextKeyAdmin stores the verified admin in the request context
const ContextKeyAdmin = "admin"

// RequireAdmin is the second authentication layer behind the gate: it
// fully verifies the token (signature, expiry, admin flag) and loads the
// account. The gate has already checked cookie presence on API paths, but
// an expired or tampered cookie is only caught here.
func RequireAdmin(authSvc *Service) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			tok := GetTokenFromRequest(c)
			if tok == "" {
				return c.JSON(http.StatusUnauthorized, map[string]interface{}{
					"success": false,
					"message": "Authentication required",
				})
			}

			admin, err := authSvc.VerifyAdmin(tok)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, map[string]interface{}{
					"success": false,
					"message": "Invalid or expired session",
				})
			}

			c.Set(ContextKeyAdmin, admin)
			return next(c)
		}
	}
}

// GetTokenFromRequest extracts the session token from the request
func GetTokenFromRequest(c echo.Context) string {
	// Try cookie first; the dashboard always authenticates this way
	cookie, err := c.Cookie(CookieName)
	if err == nil && cookie.Value != "" {
		return cookie.Value
	}

	// Bearer header fallback for API clients
	authHeader := c.Request().Header.Get("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}

	return ""
}

// GetAdminFromContext retrieves the authenticated admin from the context
func GetAdminFromContext(c echo.Context) *models.Admin {
	admin, ok := c.Get(ContextKeyAdmin).(*models.Admin)
	if !ok {
		return nil
	}
	return admin
}
