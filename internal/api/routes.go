package api

import (
	"github.com/labstack/echo/v4"

	"github.com/zeelpatel7113/bytewave-sub001/internal/auth"
	"github.com/zeelpatel7113/bytewave-sub001/internal/database"
	"github.com/zeelpatel7113/bytewave-sub001/internal/draft"
)

// Options carries handler-level settings that come from configuration
type Options struct {
	CookieSecure bool
}

// RegisterRoutes sets up all API routes. Route-level protection is the
// second auth layer: the access gate (registered on the root Echo
// instance) has already filtered unauthenticated API traffic, and
// RequireAdmin fully verifies the token for protected handlers.
func RegisterRoutes(api *echo.Group, authSvc *auth.Service, drafts *draft.Aggregator, limiter *auth.RateLimiter, opts Options) {
	authService = authSvc
	draftBuffer = drafts
	loginLimiter = limiter
	cookieSecure = opts.CookieSecure

	contactRepo = database.NewContactRepo()
	careerRepo = database.NewCareerRepo()
	postingRepo = database.NewPostingRepo()
	serviceRepo = database.NewServiceRepo()
	serviceRequestRepo = database.NewServiceRequestRepo()
	courseRepo = database.NewCourseRepo()
	trainingRequestRepo = database.NewTrainingRequestRepo()

	admin := auth.RequireAdmin(authSvc)

	// Health check (public)
	api.GET("/health", healthCheck)

	// Auth routes (public; login is rate limited)
	authGroup := api.Group("/auth")
	authGroup.POST("/login", loginHandler, limiter.Middleware())
	authGroup.POST("/logout", logoutHandler)
	authGroup.GET("/check", checkHandler)

	// Contact requests: public submission, protected listing
	api.POST("/contacts", createContactHandler)
	api.GET("/contacts", listContactsHandler, admin)

	// Career applications and postings
	api.POST("/careers", createCareerHandler)
	api.GET("/careers", listCareersHandler, admin)
	api.GET("/career-types", listCareerTypesHandler)
	api.GET("/careers/postings", listPostingsHandler)
	api.POST("/careers/postings", createPostingHandler, admin)

	// Service catalog and service requests
	api.GET("/services", listServicesHandler)
	api.POST("/services", createServiceHandler, admin)
	api.POST("/service-requests", createServiceRequestHandler)
	api.POST("/service-requests/draft", createServiceDraftHandler)
	api.GET("/service-requests", listServiceRequestsHandler, admin)

	// Training courses and requests
	api.GET("/training-courses", listCoursesHandler)
	api.POST("/training-courses", createCourseHandler, admin)
	api.POST("/training-requests", createTrainingRequestHandler)
	api.GET("/training-requests", listTrainingRequestsHandler, admin)
}
