package main

import (
	"context"
	"fmt"
	"log"

	"gorestaurant/internal/config"
	"gorestaurant/internal/database"
	"gorestaurant/internal/migrations"
	"gorestaurant/internal/repository"
	"gorestaurant/pkg/logger"
)

func main() {
	fmt.Println("Initializing database...")

	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseDriver, cfg.DatabaseURL, cfg.LogLevel)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Force recreate all tables and seed the menu
	fmt.Println("Recreating tables...")
	ctx := context.Background()
	if err := migrations.RunMigrations(ctx, db, true, true, logger.Discard()); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	count, err := repository.NewFoodRepository(db).Count(ctx)
	if err != nil {
		log.Fatal("Failed to count foods:", err)
	}

	fmt.Printf("Menu created with %d foods\n", count)
	fmt.Println("Database initialization completed successfully!")
}
