package main

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cleanfee.backend/internal/config"
	"cleanfee.backend/internal/infrastructure/facebook"
	"cleanfee.backend/internal/infrastructure/repositories"
	"cleanfee.backend/internal/interfaces/http/handlers"
	"cleanfee.backend/internal/usecases"
	"cleanfee.backend/pkg/logger"
	"cleanfee.backend/pkg/oauthstate"
)

func init() {
	gin.SetMode(gin.TestMode)
	logger.Init("test")
}

func testRouter() *gin.Engine {
	cfg := config.Load()

	cleanerRepo := repositories.NewCleanerRepository()
	bookingRepo := repositories.NewMemoryBookingRepository()
	applicationRepo := repositories.NewMemoryApplicationRepository()
	sessionRepo := repositories.NewMemoryWizardSessionRepository()

	fbClient := facebook.NewClient(facebook.Config{})
	stateService := oauthstate.NewService("test-secret", 10*time.Minute)

	cleanerUsecase := usecases.NewCleanerUsecase(cleanerRepo)
	bookingUsecase := usecases.NewBookingUsecase(bookingRepo, cleanerRepo)
	applicationUsecase := usecases.NewApplicationUsecase(applicationRepo)
	wizardUsecase := usecases.NewWizardUsecase(sessionRepo, applicationRepo)
	oauthUsecase := usecases.NewOAuthUsecase(fbClient, stateService, wizardUsecase)
	socialUsecase := usecases.NewSocialUsecase(fbClient)

	r := gin.New()
	registerRoutes(r, cfg, routeDeps{
		cleanerHandler:     handlers.NewCleanerHandler(cleanerUsecase),
		bookingHandler:     handlers.NewBookingHandler(bookingUsecase),
		applicationHandler: handlers.NewApplicationHandler(applicationUsecase),
		wizardHandler:      handlers.NewWizardHandler(wizardUsecase),
		oauthHandler:       handlers.NewOAuthHandler(oauthUsecase),
		socialHandler:      handlers.NewSocialHandler(socialUsecase),
	})
	return r
}

func TestRoutes_Health(t *testing.T) {
	r := testRouter()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "ok")
}

func TestRoutes_Metrics(t *testing.T) {
	r := testRouter()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRoutes_Registered(t *testing.T) {
	r := testRouter()

	paths := map[string]bool{}
	for _, route := range r.Routes() {
		paths[route.Method+" "+route.Path] = true
	}

	for _, want := range []string{
		"GET /api/v1/cleaners",
		"GET /api/v1/cleaners/:id/availability",
		"POST /api/v1/bookings",
		"PUT /api/v1/bookings/:id/complete",
		"POST /api/v1/applications",
		"PUT /api/v1/applications/:id/status",
		"GET /api/v1/wizard",
		"POST /api/v1/wizard/submit",
		"GET /api/v1/oauth/facebook/login",
		"GET /api/v1/oauth/facebook/callback",
		"GET /api/v1/facebook/page_info",
		"POST /api/v1/facebook/post",
	} {
		assert.True(t, paths[want], "missing route %s", want)
	}
}

func TestRoutes_UnconfiguredLoginIsUnavailable(t *testing.T) {
	r := testRouter()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/oauth/facebook/login", nil))
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}
