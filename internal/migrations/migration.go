package migrations

import (
	"context"
	"fmt"

	"gorestaurant/internal/models"
	"gorestaurant/internal/repository"
	"gorestaurant/pkg/logger"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var allModels = []interface{}{
	&models.Food{},
	&models.FoodExtra{},
	&models.Favorite{},
	&models.Order{},
	&models.OrderExtra{},
}

// RunMigrations migrates the schema. With reset the tables are dropped
// first. With seed a default menu is created when no food exists yet.
func RunMigrations(ctx context.Context, db *gorm.DB, reset, seed bool, log *logger.Logger) error {
	log = log.WithComponent("migrations")
	log.Info("Running database migrations", "reset", reset, "seed", seed)

	if reset {
		log.Info("Dropping existing tables")
		if err := db.Migrator().DropTable(allModels...); err != nil {
			log.Warn("Error dropping tables", "error", err)
		}
	}

	if err := db.AutoMigrate(allModels...); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	if seed {
		if err := createDefaultMenu(ctx, repository.NewFoodRepository(db), log); err != nil {
			return fmt.Errorf("failed to seed menu: %w", err)
		}
	}

	log.Info("Database migrations completed")
	return nil
}

// createDefaultMenu seeds the menu the mobile app ships with
func createDefaultMenu(ctx context.Context, foodRepo repository.FoodRepository, log *logger.Logger) error {
	count, err := foodRepo.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		log.Info("Menu already present, skipping seed", "foods", count)
		return nil
	}

	for _, food := range DefaultMenu() {
		food := food
		if err := foodRepo.Create(ctx, &food); err != nil {
			return err
		}
	}

	log.Info("Default menu created", "foods", len(DefaultMenu()))
	return nil
}

// DefaultMenu returns the seed foods. Category 1 is pasta, 2 is veggie,
// 3 is meat.
func DefaultMenu() []models.Food {
	price := decimal.RequireFromString
	return []models.Food{
		{
			Name:        "Ao molho",
			Description: "Macarrão ao molho branco, fughi e cheiro verde das montanhas.",
			Price:       price("19.90"),
			Category:    1,
			ImageURL:    "https://storage.googleapis.com/golden-wind/bootcamp-gostack/desafio-gorestaurant-mobile/ao_molho.png",
			Extras: []models.FoodExtra{
				{Name: "Bacon", Value: price("1.50")},
				{Name: "Frango", Value: price("2.00")},
			},
		},
		{
			Name:        "Veggie",
			Description: "Macarrão com pimentão, ervilha e ervas finas colhidas no himalaia.",
			Price:       price("21.90"),
			Category:    2,
			ImageURL:    "https://storage.googleapis.com/golden-wind/bootcamp-gostack/desafio-gorestaurant-mobile/veggie.png",
			Extras: []models.FoodExtra{
				{Name: "Queijo extra", Value: price("3.00")},
			},
		},
		{
			Name:        "A la Camarón",
			Description: "Macarrão com vegetais de primeira linha e camarão dos 7 mares.",
			Price:       price("25.90"),
			Category:    3,
			ImageURL:    "https://storage.googleapis.com/golden-wind/bootcamp-gostack/desafio-gorestaurant-mobile/a_la_camarao.png",
		},
	}
}
