// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"raktapulse/internal/delivery/http/middleware"
	"raktapulse/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler         *handler.UserHandler
	DonorHandler        *handler.DonorHandler
	RequestHandler      *handler.RequestHandler
	MatchingHandler     *handler.MatchingHandler
	CatalogHandler      *handler.CatalogHandler
	NotificationHandler *handler.NotificationHandler
	MessageHandler      *handler.MessageHandler
	HealthRecordHandler *handler.HealthRecordHandler
	StatsHandler        *handler.StatsHandler
	EmergencyHandler    *handler.EmergencyHandler
	BadgeHandler        *handler.BadgeHandler
	AuthMiddleware      *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	params RouterParams
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{params: params}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	auth := r.params.AuthMiddleware

	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.params.UserHandler.Register)
		authGroup.POST("/login", r.params.UserHandler.Login)
	}

	// Account routes that require authentication
	userGroup := e.Group("/user")
	userGroup.Use(auth.Authenticate)
	{
		userGroup.GET("/profile", r.params.UserHandler.GetProfile)
		userGroup.PUT("/profile", r.params.UserHandler.UpdateProfile)
		userGroup.PUT("/location", r.params.UserHandler.UpdateLiveLocation)
		userGroup.DELETE("/personal-info", r.params.UserHandler.ClearPersonalInfo)
		userGroup.GET("/badges", r.params.BadgeHandler.ListMine)
	}

	// Donor directory: browsing is public, registering needs an account
	donorGroup := e.Group("/donors")
	{
		donorGroup.GET("", r.params.DonorHandler.Search)
		donorGroup.GET("/:id", r.params.DonorHandler.Get)
		donorGroup.GET("/:id/qr", r.params.DonorHandler.ShareQR)
		donorGroup.POST("", r.params.DonorHandler.Register, auth.Authenticate)
	}

	// Blood requests: anonymous posting is allowed, a valid token links the
	// poster
	requestGroup := e.Group("/requests")
	{
		requestGroup.GET("", r.params.RequestHandler.List)
		requestGroup.GET("/active", r.params.RequestHandler.ListActive)
		requestGroup.GET("/map", r.params.RequestHandler.LiveMap)
		requestGroup.GET("/:id", r.params.RequestHandler.Get)
		requestGroup.POST("", r.params.RequestHandler.Create, auth.AuthenticateOptional)
		requestGroup.PUT("/:id/status", r.params.RequestHandler.UpdateStatus, auth.Authenticate)
		requestGroup.POST("/:id/volunteer", r.params.MatchingHandler.Volunteer, auth.Authenticate)
	}

	// Donation events
	donationGroup := e.Group("/donations")
	donationGroup.Use(auth.Authenticate)
	{
		donationGroup.GET("/mine", r.params.MatchingHandler.ListInvolved)
		donationGroup.POST("/:id/complete", r.params.MatchingHandler.Complete)
	}

	// Public catalogs and aggregates
	e.GET("/banks", r.params.CatalogHandler.ListBanks)
	e.GET("/hospitals", r.params.CatalogHandler.ListHospitals)
	e.GET("/stats/dashboard", r.params.StatsHandler.Dashboard)
	e.GET("/stats/vaccination", r.params.HealthRecordHandler.VaccinationStats)

	// Notification feed
	notificationGroup := e.Group("/notifications")
	notificationGroup.Use(auth.Authenticate)
	{
		notificationGroup.GET("", r.params.NotificationHandler.List)
		notificationGroup.GET("/unread-count", r.params.NotificationHandler.UnreadCount)
	}

	// Direct messaging
	messageGroup := e.Group("/messages")
	messageGroup.Use(auth.Authenticate)
	{
		messageGroup.POST("", r.params.MessageHandler.Send)
		messageGroup.GET("/inbox", r.params.MessageHandler.Inbox)
		messageGroup.GET("/unread-count", r.params.MessageHandler.UnreadCount)
		messageGroup.GET("/:peerId", r.params.MessageHandler.Conversation)
	}

	// Personal health records
	healthGroup := e.Group("/health-records")
	healthGroup.Use(auth.Authenticate)
	{
		healthGroup.POST("/vaccines", r.params.HealthRecordHandler.AddVaccineRecord)
		healthGroup.GET("/vaccines", r.params.HealthRecordHandler.ListVaccineRecords)
		healthGroup.POST("/reports", r.params.HealthRecordHandler.AddHealthReport)
		healthGroup.GET("/reports", r.params.HealthRecordHandler.ListHealthReports)
	}

	// Emergency donor ping
	e.POST("/emergency/ping", r.params.EmergencyHandler.Ping, auth.Authenticate)
}
