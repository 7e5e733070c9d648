package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"cleanfee.backend/internal/config"
	"cleanfee.backend/internal/interfaces/http/handlers"
	"cleanfee.backend/internal/interfaces/http/middleware"
)

type routeDeps struct {
	cleanerHandler     *handlers.CleanerHandler
	bookingHandler     *handlers.BookingHandler
	applicationHandler *handlers.ApplicationHandler
	wizardHandler      *handlers.WizardHandler
	oauthHandler       *handlers.OAuthHandler
	socialHandler      *handlers.SocialHandler
}

func registerRoutes(r *gin.Engine, cfg *config.Config, d routeDeps) {
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.LoggerMiddleware())
	r.Use(middleware.MetricsMiddleware())
	r.Use(middleware.CORSMiddleware(cfg.CORS.AllowedOrigins))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := r.Group("/api/v1")
	{
		// Cleaner listing (public, read-only)
		cleaners := v1.Group("/cleaners")
		{
			cleaners.GET("", d.cleanerHandler.ListCleaners)
			cleaners.GET("/:id", d.cleanerHandler.GetCleaner)
			cleaners.GET("/:id/reviews", d.cleanerHandler.ListReviews)
			cleaners.GET("/:id/availability", d.cleanerHandler.GetAvailability)
		}

		// Bookings
		bookings := v1.Group("/bookings")
		{
			bookings.POST("", d.bookingHandler.CreateBooking)
			bookings.GET("", d.bookingHandler.ListBookings)
			bookings.GET("/:id", d.bookingHandler.GetBooking)
			bookings.PUT("/:id/complete", d.bookingHandler.CompleteBooking)
		}

		// Application records
		applications := v1.Group("/applications")
		{
			applications.POST("", d.applicationHandler.CreateApplication)
			applications.GET("", d.applicationHandler.ListApplications)
			applications.GET("/:id", d.applicationHandler.GetApplication)
			applications.PUT("/:id/status", d.applicationHandler.SetStatus)
		}

		// Application wizard (session-scoped)
		wizard := v1.Group("/wizard")
		wizard.Use(middleware.SessionMiddleware())
		{
			wizard.GET("", d.wizardHandler.GetState)
			wizard.PUT("/profile", d.wizardHandler.UpdateProfile)
			wizard.POST("/advance", d.wizardHandler.Advance)
			wizard.POST("/back", d.wizardHandler.Back)
			wizard.POST("/submit", d.wizardHandler.Submit)
			wizard.POST("/restart", d.wizardHandler.Restart)
		}

		// Social login (session-scoped)
		oauth := v1.Group("/oauth/facebook")
		oauth.Use(middleware.SessionMiddleware())
		{
			oauth.GET("/login", d.oauthHandler.Login)
			oauth.GET("/callback", d.oauthHandler.Callback)
		}

		// Page pass-through
		fb := v1.Group("/facebook")
		{
			fb.GET("/page_info", d.socialHandler.GetPageInfo)
			fb.GET("/insights", d.socialHandler.GetInsights)
			fb.POST("/post", d.socialHandler.CreatePost)
		}
	}
}
