package api

import (
	"log"
	"net/http"
	"sync"

	"panier-api/config"
	"panier-api/controllers"
	"panier-api/middleware"
	"panier-api/repositories"
	"panier-api/routes"
	"panier-api/services"

	"github.com/gin-gonic/gin"
)

var (
	router *gin.Engine
	once   sync.Once
)

func initApp() {
	once.Do(func() {
		gin.SetMode(gin.ReleaseMode)

		config.LoadConfig()

		redisClient, err := config.ConnectRedis()
		if err != nil {
			log.Fatalf("Unable to connect to Redis: %v", err)
		}

		panierRepo := repositories.NewPanierRepository(redisClient)
		panierService := services.NewPanierService(panierRepo)
		panierCtrl := controllers.NewPanierController(panierService)

		router = gin.New()
		router.Use(gin.Recovery())
		router.Use(middleware.CORSMiddleware())

		routes.SetupRoutes(router, panierCtrl, redisClient)
	})
}

func Handler(w http.ResponseWriter, r *http.Request) {
	initApp()
	router.ServeHTTP(w, r)
}
