package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"cleanfee.backend/internal/domain/entities"
	"cleanfee.backend/internal/infrastructure/repositories"
	"cleanfee.backend/internal/interfaces/http/middleware"
	"cleanfee.backend/internal/usecases"
	"cleanfee.backend/pkg/logger"
	"cleanfee.backend/pkg/oauthstate"
)

func init() {
	gin.SetMode(gin.TestMode)
	logger.Init("test")
}

// stubProvider stands in for the Graph API client in handler tests
type stubProvider struct {
	configured  bool
	exchangeErr error
	profile     *entities.SocialProfile
}

func (p *stubProvider) LoginConfigured() bool { return p.configured }

func (p *stubProvider) BuildAuthorizationURL(state string, _ []string) string {
	return "https://provider.test/oauth?state=" + state
}

func (p *stubProvider) ExchangeCode(_ context.Context, code string) (*entities.OAuthToken, error) {
	if p.exchangeErr != nil {
		return nil, p.exchangeErr
	}
	return &entities.OAuthToken{AccessToken: "token-" + code}, nil
}

func (p *stubProvider) FetchProfile(_ context.Context, _ *entities.OAuthToken) (*entities.SocialProfile, error) {
	return p.profile, nil
}

type testEnv struct {
	router   *gin.Engine
	bookings *repositories.MemoryBookingRepository
	apps     *repositories.MemoryApplicationRepository
	provider *stubProvider
	oauth    *usecases.OAuthUsecase
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	cleanerRepo := repositories.NewCleanerRepository()
	bookingRepo := repositories.NewMemoryBookingRepository()
	applicationRepo := repositories.NewMemoryApplicationRepository()
	sessionRepo := repositories.NewMemoryWizardSessionRepository()

	provider := &stubProvider{configured: true, profile: &entities.SocialProfile{ID: "fb-1"}}
	stateService := oauthstate.NewService("test-secret", 10*time.Minute)

	cleanerUsecase := usecases.NewCleanerUsecase(cleanerRepo)
	bookingUsecase := usecases.NewBookingUsecase(bookingRepo, cleanerRepo)
	applicationUsecase := usecases.NewApplicationUsecase(applicationRepo)
	wizardUsecase := usecases.NewWizardUsecase(sessionRepo, applicationRepo)
	oauthUsecase := usecases.NewOAuthUsecase(provider, stateService, wizardUsecase)

	r := gin.New()
	v1 := r.Group("/api/v1")

	cleanerHandler := NewCleanerHandler(cleanerUsecase)
	v1.GET("/cleaners", cleanerHandler.ListCleaners)
	v1.GET("/cleaners/:id", cleanerHandler.GetCleaner)
	v1.GET("/cleaners/:id/reviews", cleanerHandler.ListReviews)
	v1.GET("/cleaners/:id/availability", cleanerHandler.GetAvailability)

	bookingHandler := NewBookingHandler(bookingUsecase)
	v1.POST("/bookings", bookingHandler.CreateBooking)
	v1.GET("/bookings", bookingHandler.ListBookings)
	v1.GET("/bookings/:id", bookingHandler.GetBooking)
	v1.PUT("/bookings/:id/complete", bookingHandler.CompleteBooking)

	applicationHandler := NewApplicationHandler(applicationUsecase)
	v1.POST("/applications", applicationHandler.CreateApplication)
	v1.GET("/applications", applicationHandler.ListApplications)
	v1.GET("/applications/:id", applicationHandler.GetApplication)
	v1.PUT("/applications/:id/status", applicationHandler.SetStatus)

	wizardHandler := NewWizardHandler(wizardUsecase)
	wizard := v1.Group("/wizard")
	wizard.Use(middleware.SessionMiddleware())
	wizard.GET("", wizardHandler.GetState)
	wizard.PUT("/profile", wizardHandler.UpdateProfile)
	wizard.POST("/advance", wizardHandler.Advance)
	wizard.POST("/back", wizardHandler.Back)
	wizard.POST("/submit", wizardHandler.Submit)
	wizard.POST("/restart", wizardHandler.Restart)

	oauthHandler := NewOAuthHandler(oauthUsecase)
	oauth := v1.Group("/oauth/facebook")
	oauth.Use(middleware.SessionMiddleware())
	oauth.GET("/login", oauthHandler.Login)
	oauth.GET("/callback", oauthHandler.Callback)

	return &testEnv{
		router:   r,
		bookings: bookingRepo,
		apps:     applicationRepo,
		provider: provider,
		oauth:    oauthUsecase,
	}
}

func (e *testEnv) do(t *testing.T, method, path, sessionID string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if sessionID != "" {
		req.Header.Set(middleware.SessionHeader, sessionID)
	}

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), "body: %s", w.Body.String())
	return out
}

func fullProfileBody() map[string]interface{} {
	return map[string]interface{}{
		"firstName":        "Maria",
		"lastName":         "Lopez",
		"email":            "maria@example.com",
		"phone":            "555-0100",
		"dateOfBirth":      "1990-03-14",
		"address":          "12 Elm Street",
		"emergencyContact": "Ana Lopez 555-0111",
		"idNumber":         "ID-9912",
		"skills":           []string{"Deep Cleaning"},
		"availability":     []string{"Monday"},
		"documents": map[string]string{
			"id_document":        "id.pdf",
			"work_authorization": "permit.pdf",
		},
		"references": []map[string]string{
			{"name": "Jen Smith", "phone": "555-0122"},
			{"name": "Bob Ray", "phone": "555-0133"},
		},
		"backgroundCheckConsent": true,
		"workAuthorization":      "Yes",
		"termsAgreed":            true,
	}
}

func requireStep(t *testing.T, w *httptest.ResponseRecorder, wantStep int, wantName string) map[string]interface{} {
	t.Helper()
	require.Equal(t, http.StatusOK, w.Code, "body: %s", w.Body.String())
	body := decodeBody(t, w)
	require.Equal(t, float64(wantStep), body["step"], "body: %s", w.Body.String())
	require.Equal(t, wantName, body["stepName"])
	return body
}
