package handlers

import (
	"net/http"
	"time"

	"gorestaurant/pkg/logger"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewRouter wires the REST routes consumed by the mobile app.
func NewRouter(h *APIHandler, log *logger.Logger, allowedOrigins []string) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(log.GinMiddleware())
	router.Use(cors.New(corsConfig(allowedOrigins)))

	router.GET("/health", h.Health)

	router.GET("/foods", h.ListFoods)
	router.GET("/foods/:id", h.GetFood)

	router.GET("/favorites", h.ListFavorites)
	router.POST("/favorites", h.CreateFavorite)
	router.DELETE("/favorites/:id", h.DeleteFavorite)

	router.GET("/orders", h.ListOrders)
	router.POST("/orders", h.CreateOrder)
	router.GET("/orders/:id", h.GetOrder)

	return router
}

func corsConfig(allowedOrigins []string) cors.Config {
	config := cors.Config{
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", logger.RequestIDHeader},
		ExposeHeaders: []string{logger.RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}
	for _, origin := range allowedOrigins {
		if origin == "*" {
			config.AllowAllOrigins = true
			return config
		}
	}
	if len(allowedOrigins) == 0 {
		config.AllowAllOrigins = true
		return config
	}
	config.AllowOrigins = allowedOrigins
	return config
}
