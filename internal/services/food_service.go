package services

import (
	"context"
	"errors"
	"time"

	"gorestaurant/internal/models"
	"gorestaurant/internal/redis"
	"gorestaurant/internal/repository"
	"gorestaurant/pkg/logger"
)

// FoodCache is the slice of the Redis client the food service needs.
type FoodCache interface {
	GetFood(ctx context.Context, id uint) (*models.Food, error)
	SetFood(ctx context.Context, food *models.Food, ttl time.Duration) error
}

type FoodService interface {
	GetFood(ctx context.Context, id uint) (*models.Food, error)
	ListFoods(ctx context.Context, filter repository.FoodFilter) ([]models.Food, error)
}

type foodService struct {
	foodRepo repository.FoodRepository
	cache    FoodCache
	cacheTTL time.Duration
	logger   *logger.Logger
}

// NewFoodService builds the service. cache may be nil to disable caching.
func NewFoodService(foodRepo repository.FoodRepository, cache FoodCache, cacheTTL time.Duration, log *logger.Logger) FoodService {
	return &foodService{
		foodRepo: foodRepo,
		cache:    cache,
		cacheTTL: cacheTTL,
		logger:   log.WithComponent("food_service"),
	}
}

func (s *foodService) GetFood(ctx context.Context, id uint) (*models.Food, error) {
	if s.cache != nil {
		food, err := s.cache.GetFood(ctx, id)
		if err == nil {
			return food, nil
		}
		if !errors.Is(err, redis.ErrCacheMiss) {
			s.logger.Warn("Food cache read failed", "food_id", id, "error", err)
		}
	}

	food, err := s.foodRepo.GetByID(ctx, id)
	if err != nil {
		return nil, translate(err)
	}

	if s.cache != nil {
		if err := s.cache.SetFood(ctx, food, s.cacheTTL); err != nil {
			s.logger.Warn("Food cache write failed", "food_id", id, "error", err)
		}
	}
	return food, nil
}

func (s *foodService) ListFoods(ctx context.Context, filter repository.FoodFilter) ([]models.Food, error) {
	return s.foodRepo.List(ctx, filter)
}
