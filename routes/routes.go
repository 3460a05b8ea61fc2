package routes

import (
	"os"
	"salonbook-backend/config"
	"salonbook-backend/controllers"
	"salonbook-backend/utils"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	allowedOrigins := []string{"http://localhost:3000"}
	if env := os.Getenv("ALLOWED_ORIGINS"); env != "" {
		allowedOrigins = strings.Split(env, ",")
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.Use(config.PerformanceLogger())

	auth := r.Group("/auth")
	{
		auth.POST("/login", controllers.Login)

		auth.Use(utils.AuthMiddleware())
		auth.GET("/me", controllers.Me)
	}

	// Owner admin surface
	admin := r.Group("/api/admin")
	admin.Use(utils.AuthMiddleware())
	{
		services := admin.Group("/services")
		{
			services.POST("", controllers.CreateService)
			services.GET("", controllers.GetServices)
			services.GET("/:id", controllers.GetService)
			services.PUT("/:id", controllers.UpdateService)
			services.DELETE("/:id", controllers.DeactivateService)
		}

		bookings := admin.Group("/bookings")
		{
			bookings.GET("", controllers.GetBookings)
			bookings.PUT("/:id/confirm", controllers.ConfirmBooking)
			bookings.PUT("/:id/complete", controllers.CompleteBooking)
		}

		holidays := admin.Group("/holidays")
		{
			holidays.GET("", controllers.GetHolidays)
			holidays.POST("", controllers.CreateHoliday)
			holidays.DELETE("/:id", controllers.DeleteHoliday)
		}

		customers := admin.Group("/customers")
		{
			customers.GET("", controllers.GetCustomers)
			customers.GET("/:id", controllers.GetCustomer)
		}

		notifications := admin.Group("/notifications")
		{
			notifications.GET("", controllers.GetNotifications)
			notifications.PUT("/:id/read", controllers.MarkNotificationRead)
		}

		store := admin.Group("/store")
		{
			store.GET("", controllers.GetStoreInfo)
			store.PUT("", controllers.UpdateStoreInfo)
			store.PUT("/hours", controllers.UpdateOpeningHours)
		}
	}

	// Public store-front surface, tenant resolved from the URL slug
	public := r.Group("/api/:tenantSlug")
	public.Use(controllers.TenantResolver())
	{
		public.GET("/services", controllers.ListPublicServices)
		public.GET("/services/:id", controllers.GetPublicService)
		public.GET("/availability", controllers.GetAvailableSlots)

		bookings := public.Group("/bookings")
		{
			bookings.POST("", controllers.CreateBooking)
			bookings.GET("/:id", controllers.GetBooking)
			bookings.DELETE("/:id", controllers.CancelBooking)
		}
	}

	return r
}
