// File: /routes/routes.go
package routes

import (
	"github.com/gin-gonic/gin"

	"eventfdr-api/config"
	"eventfdr-api/controllers"
	"eventfdr-api/middleware"
	"eventfdr-api/repositories"
	"eventfdr-api/services"
)

// Stores bundles the repositories the route tree is built over.
type Stores struct {
	Events   repositories.EventRepository
	Bookings repositories.BookingRepository
	Users    repositories.UserRepository
}

func SetupRoutes(r *gin.Engine, stores Stores, cfg *config.Config, emailService *services.EmailService) *services.BookingService {
	bookingService := services.NewBookingService(stores.Events, stores.Bookings, emailService)
	paymentService := services.NewPaymentService(stores.Bookings, cfg.PaymentKeyID)

	authController := controllers.NewAuthController(stores.Users, cfg.JWTSecret, emailService)
	userController := controllers.NewUserController(stores.Users)
	eventController := controllers.NewEventController(stores.Events)
	bookingController := controllers.NewBookingController(bookingService, paymentService)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
			"status":  "healthy",
		})
	})

	// API version 1
	v1 := r.Group("/api/v1")

	// Auth routes (public)
	auth := v1.Group("/auth")
	{
		auth.POST("/login", authController.Login)
		auth.POST("/register", authController.Register)
		auth.POST("/logout", authController.Logout)
	}

	// Catalog routes (public)
	events := v1.Group("/events")
	{
		events.GET("", eventController.GetEvents)
		events.GET("/categories", eventController.GetCatalogOptions)
		events.GET("/:id", eventController.GetEvent)
	}

	// Protected routes
	protected := v1.Group("/")
	protected.Use(middleware.AuthMiddleware(cfg.JWTSecret))
	{
		// Organizer actions on the catalog
		protected.POST("/events", eventController.CreateEvent)
		protected.PUT("/events/:id", eventController.UpdateEvent)
		protected.DELETE("/events/:id", eventController.DeleteEvent)

		// Booking routes
		bookings := protected.Group("/bookings")
		{
			bookings.GET("", bookingController.GetBookings)
			bookings.POST("", bookingController.CreateBooking)
			bookings.GET("/:id", bookingController.GetBooking)
			bookings.POST("/:id/pay", bookingController.PayBooking)
			bookings.POST("/:id/verify", bookingController.VerifyPayment)
			bookings.DELETE("/:id", bookingController.CancelBooking)
		}

		// User routes
		users := protected.Group("/users")
		{
			users.GET("/profile", userController.GetProfile)
			users.PUT("/profile", userController.UpdateProfile)
		}
	}

	return bookingService
}
