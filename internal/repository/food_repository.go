package repository

import (
	"context"

	"gorestaurant/internal/models"

	"gorm.io/gorm"
)

// FoodFilter narrows List. Zero values match everything.
type FoodFilter struct {
	Name     string
	Category uint
}

type FoodRepository interface {
	Create(ctx context.Context, food *models.Food) error
	GetByID(ctx context.Context, id uint) (*models.Food, error)
	List(ctx context.Context, filter FoodFilter) ([]models.Food, error)
	Count(ctx context.Context) (int64, error)
}

type foodRepository struct {
	db *gorm.DB
}

func NewFoodRepository(db *gorm.DB) FoodRepository {
	return &foodRepository{db: db}
}

func (r *foodRepository) Create(ctx context.Context, food *models.Food) error {
	return r.db.WithContext(ctx).Create(food).Error
}

func (r *foodRepository) GetByID(ctx context.Context, id uint) (*models.Food, error) {
	var food models.Food
	err := r.db.WithContext(ctx).Preload("Extras", orderByID).First(&food, id).Error
	if err != nil {
		return nil, err
	}
	return &food, nil
}

func (r *foodRepository) List(ctx context.Context, filter FoodFilter) ([]models.Food, error) {
	var foods []models.Food
	query := r.db.WithContext(ctx).Preload("Extras", orderByID).Order("id")
	if filter.Name != "" {
		query = query.Where("LOWER(name) LIKE LOWER(?)", "%"+filter.Name+"%")
	}
	if filter.Category != 0 {
		query = query.Where("category = ?", filter.Category)
	}
	err := query.Find(&foods).Error
	return foods, err
}

func (r *foodRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Food{}).Count(&count).Error
	return count, err
}

func orderByID(db *gorm.DB) *gorm.DB {
	return db.Order("id")
}
