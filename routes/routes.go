package routes

import (
	"context"
	"time"

	"panier-api/controllers"
	"panier-api/models"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func SetupRoutes(router *gin.Engine, panierCtrl *controllers.PanierController, redisClient *redis.Client) {
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", healthHandler(redisClient))

	panier := router.Group("/panier")
	{
		panier.GET("/:userId", panierCtrl.GetPanier)
		panier.DELETE("/:userId", panierCtrl.ClearPanier)
		panier.POST("/:userId/items", panierCtrl.AddItem)
		panier.PUT("/:userId/items/:produitId", panierCtrl.UpdateItemQuantity)
		panier.DELETE("/:userId/items/:produitId", panierCtrl.RemoveItem)
	}
}

func healthHandler(redisClient *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		redisStatus := "connected"
		if err := redisClient.Ping(ctx).Err(); err != nil {
			redisStatus = "disconnected"
		}

		c.JSON(200, models.HealthResponse{
			Status:    "ok",
			Message:   "Panier API is running",
			Redis:     redisStatus,
			Timestamp: time.Now().UTC(),
		})
	}
}
