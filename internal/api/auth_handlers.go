package api

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/zeelpatel7113/bytewave-sub001/internal/auth"
	"github.com/zeelpatel7113/bytewave-sub001/internal/models"
	"github.com/zeelpatel7113/bytewave-sub001/internal/token"
)

var (
	authService  *auth.Service
	loginLimiter *auth.RateLimiter
	cookieSecure bool
)

// loginHandler handles POST /api/auth/login
func loginHandler(c echo.Context) error {
	var req models.LoginRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, http.StatusBadRequest, "Invalid request body")
	}

	if req.Email == "" || req.Password == "" {
		return respondError(c, http.StatusBadRequest, "Email and password are required")
	}

	admin, tok, err := authService.Login(req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrInvalidCredentials):
			// Unknown email and wrong password answer identically
			return respondError(c, http.StatusUnauthorized, "Invalid credentials")
		case errors.Is(err, token.ErrMissingSecret):
			c.Logger().Error("login error: ", err)
			return respondError(c, http.StatusInternalServerError, "Server configuration error")
		default:
			return respondStorageError(c, "Authentication failed", err)
		}
	}

	loginLimiter.RecordSuccess(c.RealIP())

	c.SetCookie(&http.Cookie{
		Name:     auth.CookieName,
		Value:    tok,
		Path:     "/",
		HttpOnly: true,
		Secure:   cookieSecure,
		SameSite: http.SameSiteStrictMode,
		MaxAge:   int(authService.Tokens().TTL().Seconds()),
	})

	return respondData(c, http.StatusOK, map[string]interface{}{
		"admin": admin,
	})
}

// logoutHandler handles POST /api/auth/logout. Clearing the cookie always
// succeeds, even when no session existed.
func logoutHandler(c echo.Context) error {
	c.SetCookie(&http.Cookie{
		Name:     auth.CookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   cookieSecure,
		SameSite: http.SameSiteStrictMode,
		MaxAge:   -1,
	})

	return respondMessage(c, http.StatusOK, "Logged out")
}

// checkHandler handles GET /api/auth/check. This is a status probe, not an
// authorization gate: an absent or invalid session yields a null admin,
// never an error status.
func checkHandler(c echo.Context) error {
	admin := authService.Check(auth.GetTokenFromRequest(c))
	return respondData(c, http.StatusOK, map[string]interface{}{
		"admin": admin,
	})
}
