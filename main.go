package main

import (
	"log"

	"panier-api/config"
	"panier-api/controllers"
	_ "panier-api/docs"
	"panier-api/middleware"
	"panier-api/repositories"
	"panier-api/routes"
	"panier-api/services"

	"github.com/gin-gonic/gin"
)

// @title Panier API
// @version 1.0
// @description Per-user shopping cart persisted in Redis.
// @BasePath /
func main() {

	config.LoadConfig()

	if config.AppConfig.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	redisClient, err := config.ConnectRedis()
	if err != nil {
		log.Fatalf("Unable to connect to Redis after %d attempts: %v", config.AppConfig.RedisMaxAttempts, err)
	}
	defer config.CloseRedis(redisClient)

	panierRepo := repositories.NewPanierRepository(redisClient)
	panierService := services.NewPanierService(panierRepo)
	panierCtrl := controllers.NewPanierController(panierService)

	router := gin.Default()
	router.Use(middleware.CORSMiddleware())
	routes.SetupRoutes(router, panierCtrl, redisClient)

	port := ":" + config.AppConfig.Port
	log.Printf("Server starting on port %s", port)
	log.Printf("Environment: %s", config.AppConfig.AppEnv)
	log.Printf("Swagger UI: http://localhost:%s/swagger/index.html", config.AppConfig.Port)

	if err := router.Run(port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
