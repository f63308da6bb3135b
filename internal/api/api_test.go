package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zeelpatel7113/bytewave-sub001/internal/auth"
	"github.com/zeelpatel7113/bytewave-sub001/internal/database"
	"github.com/zeelpatel7113/bytewave-sub001/internal/draft"
	"github.com/zeelpatel7113/bytewave-sub001/internal/models"
	"github.com/zeelpatel7113/bytewave-sub001/internal/token"
)

const (
	testAdminEmail    = "admin@bytewave.com"
	testAdminPassword = "correct-horse"
)

func newTestServer(t *testing.T) *echo.Echo {
	t.Helper()

	path := filepath.Join(t.TempDir(), "test.db")
	require.NoError(t, database.Open(database.Config{Path: path}))
	t.Cleanup(func() { database.Close() })

	hash, err := auth.HashPassword(testAdminPassword)
	require.NoError(t, err)
	require.NoError(t, database.NewAdminRepo().Create(&models.Admin{
		Email:        testAdminEmail,
		Name:         "Administrator",
		PasswordHash: hash,
		IsAdmin:      true,
	}))

	authSvc := auth.NewService(token.NewService("test-secret", time.Hour))

	serviceRequests := database.NewServiceRequestRepo()
	drafts := draft.New(10*time.Millisecond, func(key string, req *models.ServiceRequest) error {
		return serviceRequests.Create(req)
	})

	e := echo.New()
	e.Use(auth.NewGate().Middleware())
	RegisterRoutes(e.Group("/api"), authSvc, drafts,
		auth.NewRateLimiter(1000, time.Minute, time.Minute), Options{})
	return e
}

func doJSON(e *echo.Echo, method, path, body string, cookie *http.Cookie) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func loginCookie(t *testing.T, e *echo.Echo) *http.Cookie {
	t.Helper()

	rec := doJSON(e, http.MethodPost, "/api/auth/login",
		`{"email":"`+testAdminEmail+`","password":"`+testAdminPassword+`"}`, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	for _, c := range rec.Result().Cookies() {
		if c.Name == auth.CookieName {
			return c
		}
	}
	t.Fatal("login did not set the session cookie")
	return nil
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) (bool, string, json.RawMessage) {
	t.Helper()

	var env struct {
		Success bool            `json:"success"`
		Message string          `json:"message"`
		Data    json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return env.Success, env.Message, env.Data
}

func TestLogin_WrongPasswordAndUnknownEmailAnswerIdentically(t *testing.T) {
	e := newTestServer(t)

	wrongPassword := doJSON(e, http.MethodPost, "/api/auth/login",
		`{"email":"`+testAdminEmail+`","password":"wrong"}`, nil)
	unknownEmail := doJSON(e, http.MethodPost, "/api/auth/login",
		`{"email":"nobody@bytewave.com","password":"`+testAdminPassword+`"}`, nil)

	require.Equal(t, http.StatusUnauthorized, wrongPassword.Code)
	require.Equal(t, http.StatusUnauthorized, unknownEmail.Code)
	assert.Equal(t, wrongPassword.Body.String(), unknownEmail.Body.String())
}

func TestLogin_SetsHardenedSessionCookie(t *testing.T) {
	e := newTestServer(t)
	cookie := loginCookie(t, e)

	assert.True(t, cookie.HttpOnly)
	assert.Equal(t, "/", cookie.Path)
	assert.Equal(t, http.SameSiteStrictMode, cookie.SameSite)
	assert.Equal(t, 3600, cookie.MaxAge)
	assert.NotEmpty(t, cookie.Value)
}

func TestLogin_DoesNotExposePasswordHash(t *testing.T) {
	e := newTestServer(t)

	rec := doJSON(e, http.MethodPost, "/api/auth/login",
		`{"email":"`+testAdminEmail+`","password":"`+testAdminPassword+`"}`, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "password_hash")
	assert.Contains(t, rec.Body.String(), testAdminEmail)
}

func TestCheck_ProbeNeverErrors(t *testing.T) {
	e := newTestServer(t)

	rec := doJSON(e, http.MethodGet, "/api/auth/check", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":true,"data":{"admin":null}}`, rec.Body.String())

	rec = doJSON(e, http.MethodGet, "/api/auth/check", "",
		&http.Cookie{Name: auth.CookieName, Value: "garbage"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"admin":null`)

	rec = doJSON(e, http.MethodGet, "/api/auth/check", "", loginCookie(t, e))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), testAdminEmail)
}

// Two-layer check: the gate rejects on absence, the handler middleware
// rejects invalid-but-present cookies.
func TestProtectedListing_TwoLayerAuth(t *testing.T) {
	e := newTestServer(t)

	rec := doJSON(e, http.MethodGet, "/api/contacts", "", nil)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Authentication required")

	rec = doJSON(e, http.MethodGet, "/api/contacts", "",
		&http.Cookie{Name: auth.CookieName, Value: "expired-garbage"})
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid or expired session")

	rec = doJSON(e, http.MethodGet, "/api/contacts", "", loginCookie(t, e))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCreateContact_ValidationListsMissingFields(t *testing.T) {
	e := newTestServer(t)

	rec := doJSON(e, http.MethodPost, "/api/contacts", `{"phone":"123"}`, nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	_, message, _ := decodeEnvelope(t, rec)
	assert.Equal(t, "Missing required fields: name, email, message", message)
}

func TestCreateContact_SeedsNewStatus(t *testing.T) {
	e := newTestServer(t)

	rec := doJSON(e, http.MethodPost, "/api/contacts",
		`{"name":"Alice","email":"alice@example.com","message":"hi"}`, nil)
	require.Equal(t, http.StatusCreated, rec.Code)

	_, _, data := decodeEnvelope(t, rec)
	var contact models.ContactRequest
	require.NoError(t, json.Unmarshal(data, &contact))

	assert.True(t, strings.HasPrefix(contact.RequestID, "CNT-"))
	require.Len(t, contact.StatusHistory, 1)
	assert.Equal(t, models.StatusNew, contact.StatusHistory.Current())
}

func TestServiceCatalog_CreateListConflict(t *testing.T) {
	e := newTestServer(t)
	cookie := loginCookie(t, e)

	body := `{"title":"Cloud Migration","overview":"o","key_benefits":["a","b"],"approach":"p","image_url":"/i.png"}`

	// Creation is protected
	rec := doJSON(e, http.MethodPost, "/api/services", body, nil)
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doJSON(e, http.MethodPost, "/api/services", body, cookie)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "SRV-001")

	rec = doJSON(e, http.MethodPost, "/api/services",
		`{"title":"DevOps","overview":"o","key_benefits":["a"],"approach":"p","image_url":"/i.png"}`, cookie)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "SRV-002")

	// Duplicate title conflicts; the first service is unaffected
	rec = doJSON(e, http.MethodPost, "/api/services", body, cookie)
	require.Equal(t, http.StatusConflict, rec.Code)

	rec = doJSON(e, http.MethodGet, "/api/services", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Cloud Migration")

	// Too many key benefits
	rec = doJSON(e, http.MethodPost, "/api/services",
		`{"title":"Big","overview":"o","key_benefits":["1","2","3","4","5"],"approach":"p","image_url":"/i.png"}`, cookie)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "between 1 and 4")

	// Whitespace-only benefits are not benefits
	rec = doJSON(e, http.MethodPost, "/api/services",
		`{"title":"Blank","overview":"o","key_benefits":["  ",""],"approach":"p","image_url":"/i.png"}`, cookie)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "blank entries")
}

func TestCreateServiceRequest_DirectSubmission(t *testing.T) {
	e := newTestServer(t)

	rec := doJSON(e, http.MethodPost, "/api/service-requests",
		`{"name":"Alice","email":"alice@example.com","service_id":"SRV-001"}`, nil)
	require.Equal(t, http.StatusCreated, rec.Code)

	_, _, data := decodeEnvelope(t, rec)
	var sr models.ServiceRequest
	require.NoError(t, json.Unmarshal(data, &sr))

	assert.True(t, strings.HasPrefix(sr.RequestID, "REQ-"))
	require.Len(t, sr.StatusHistory, 1)
	assert.Equal(t, models.StatusPending, sr.StatusHistory.Current())

	rec = doJSON(e, http.MethodPost, "/api/service-requests", `{"name":"Bob"}`, nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	_, message, _ := decodeEnvelope(t, rec)
	assert.Equal(t, "Missing required fields: email, service_id", message)
}

func TestDraft_FlushesAsPartialSubmission(t *testing.T) {
	e := newTestServer(t)

	rec := doJSON(e, http.MethodPost, "/api/service-requests/draft",
		`{"key":"svc1","name":"Alice","email":"alice@example.com","service_id":"SRV-001"}`, nil)
	require.Equal(t, http.StatusAccepted, rec.Code)

	cookie := loginCookie(t, e)
	require.Eventually(t, func() bool {
		rec := doJSON(e, http.MethodGet, "/api/service-requests", "", cookie)
		return rec.Code == http.StatusOK && strings.Contains(rec.Body.String(), `"partial"`)
	}, time.Second, 10*time.Millisecond)
}

func TestLogout_ClearsCookie(t *testing.T) {
	e := newTestServer(t)

	rec := doJSON(e, http.MethodPost, "/api/auth/logout", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var cleared *http.Cookie
	for _, c := range rec.Result().Cookies() {
		if c.Name == auth.CookieName {
			cleared = c
		}
	}
	require.NotNil(t, cleared)
	assert.Less(t, cleared.MaxAge, 0)
	assert.Empty(t, cleared.Value)
}

func TestCareerTypes_DistinctValues(t *testing.T) {
	e := newTestServer(t)
	cookie := loginCookie(t, e)

	for _, body := range []string{
		`{"title":"Backend Engineer","type":"full-time"}`,
		`{"title":"Trainer","type":"contract"}`,
		`{"title":"Another Engineer","type":"full-time"}`,
	} {
		rec := doJSON(e, http.MethodPost, "/api/careers/postings", body, cookie)
		require.Equal(t, http.StatusCreated, rec.Code)
	}

	rec := doJSON(e, http.MethodGet, "/api/career-types", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":true,"data":["contract","full-time"]}`, rec.Body.String())
}
