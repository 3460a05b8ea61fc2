package main

import (
	"fmt"
	"log"
	"os"
	"salonbook-backend/config"
	"salonbook-backend/controllers"
	"salonbook-backend/models"
	"salonbook-backend/routes"
	"salonbook-backend/services"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func init() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}
	config.ConnectDB()

	config.DB.AutoMigrate(
		&models.Tenant{},
		&models.User{},
		&models.StoreInfo{},
		&models.Holiday{},
		&models.Service{},
		&models.Customer{},
		&models.Booking{},
		&models.Payment{},
		&models.Notification{},
	)
}

func main() {
	notifier := services.NewNotifierService(config.DB)
	notifier.StartScheduler()
	controllers.InitServices(notifier)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	r := routes.SetupRouter()
	printRoutes(r)
	r.Run(":" + port)
}

func printRoutes(r *gin.Engine) {
	routes := r.Routes()
	for _, route := range routes {
		fmt.Printf("%-6s %s\n", route.Method, route.Path)
	}
}
