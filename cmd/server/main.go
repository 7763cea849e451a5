package main

import (
	"context"

	"gorestaurant/internal/config"
	"gorestaurant/internal/database"
	"gorestaurant/internal/handlers"
	"gorestaurant/internal/migrations"
	"gorestaurant/internal/redis"
	"gorestaurant/internal/repository"
	"gorestaurant/internal/services"
	"gorestaurant/pkg/flags"
	"gorestaurant/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

func main() {
	// Load configuration
	cfg := config.Load()
	opts := flags.Parse(cfg.ServerPort)

	// Prices go out as JSON numbers, the shape the mobile client reads.
	decimal.MarshalJSONWithoutQuotes = true

	logConfig := logger.DefaultConfig()
	logConfig.Level = logger.LogLevel(cfg.LogLevel)
	logConfig.Format = cfg.LogFormat
	logConfig.Component = "server"
	logConfig.Environment = cfg.Environment
	log := logger.New(logConfig)

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseDriver, cfg.DatabaseURL, cfg.LogLevel)
	if err != nil {
		log.Fatal("Failed to connect to database", "driver", cfg.DatabaseDriver, "error", err)
	}

	if err := migrations.RunMigrations(context.Background(), db, opts.Reset, cfg.SeedMenu, log); err != nil {
		log.Fatal("Failed to migrate database", "error", err)
	}

	// Caching is optional; the services read through to the database alone
	// when no Redis URL is configured.
	var (
		foodCache  services.FoodCache
		orderCache services.OrderCache
	)
	if cfg.RedisURL != "" {
		redisClient, err := redis.Initialize(cfg.RedisURL)
		if err != nil {
			log.Fatal("Failed to connect to Redis", "error", err)
		}
		defer redisClient.Close()
		foodCache, orderCache = redisClient, redisClient
	} else {
		log.Info("Redis not configured, caching disabled")
	}

	// Initialize repositories
	foodRepo := repository.NewFoodRepository(db)
	favoriteRepo := repository.NewFavoriteRepository(db)
	orderRepo := repository.NewOrderRepository(db)

	// Initialize services
	foodService := services.NewFoodService(foodRepo, foodCache, cfg.CacheDuration(), log)
	favoriteService := services.NewFavoriteService(favoriteRepo, log)
	orderService := services.NewOrderService(orderRepo, foodRepo, orderCache, cfg.CacheDuration(), log)

	// Initialize handlers
	apiHandler := handlers.NewAPIHandler(foodService, favoriteService, orderService, log)
	router := handlers.NewRouter(apiHandler, log, cfg.AllowedOrigins)

	// Start server
	log.Info("Server starting", "port", opts.Port, "environment", cfg.Environment)
	if err := router.Run(":" + opts.Port); err != nil {
		log.Fatal("Failed to start server", "error", err)
	}
}
