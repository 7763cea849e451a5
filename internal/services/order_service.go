package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorestaurant/internal/models"
	"gorestaurant/internal/redis"
	"gorestaurant/internal/repository"
	"gorestaurant/pkg/logger"
)

// OrderCache is the slice of the Redis client the order service needs.
type OrderCache interface {
	GetOrder(ctx context.Context, id uint) (*models.Order, error)
	SetOrder(ctx context.Context, order *models.Order, ttl time.Duration) error
}

type OrderService interface {
	CreateOrder(ctx context.Context, order *models.Order) error
	GetOrderByID(ctx context.Context, id uint) (*models.Order, error)
	GetAllOrders(ctx context.Context) ([]models.Order, error)
}

type orderService struct {
	orderRepo repository.OrderRepository
	foodRepo  repository.FoodRepository
	cache     OrderCache
	cacheTTL  time.Duration
	logger    *logger.Logger
}

// NewOrderService builds the service. cache may be nil to disable caching.
func NewOrderService(orderRepo repository.OrderRepository, foodRepo repository.FoodRepository, cache OrderCache, cacheTTL time.Duration, log *logger.Logger) OrderService {
	return &orderService{
		orderRepo: orderRepo,
		foodRepo:  foodRepo,
		cache:     cache,
		cacheTTL:  cacheTTL,
		logger:    log.WithComponent("order_service"),
	}
}

// CreateOrder validates the snapshot against the product, drops extras with
// a zero quantity, prices the order from the catalog and stores it with its
// computed total.
func (s *orderService) CreateOrder(ctx context.Context, order *models.Order) error {
	if order.Quantity < 1 {
		return ErrInvalidQuantity
	}

	food, err := s.foodRepo.GetByID(ctx, order.ProductID)
	if err != nil {
		if errors.Is(translate(err), ErrNotFound) {
			return fmt.Errorf("product %d: %w", order.ProductID, ErrNotFound)
		}
		return err
	}

	selected := make([]models.OrderExtra, 0, len(order.Extras))
	for _, extra := range order.Extras {
		if extra.Quantity < 0 {
			return fmt.Errorf("extra %d: %w", extra.ExtraID, ErrInvalidExtraItem)
		}
		if extra.Quantity == 0 {
			continue
		}
		catalog, ok := food.Extra(extra.ExtraID)
		if !ok {
			return fmt.Errorf("extra %d: %w", extra.ExtraID, ErrUnknownExtra)
		}
		extra.ID = 0
		extra.Name = catalog.Name
		extra.Value = catalog.Value
		selected = append(selected, extra)
	}
	order.Extras = selected
	// Prices are always taken from the catalog, whatever the client sent.
	order.Price = food.Price

	if err := s.orderRepo.Create(ctx, order); err != nil {
		return err
	}

	order.ComputeTotal()
	s.logger.Info("Order created",
		"order_id", order.ID,
		"product_id", order.ProductID,
		"quantity", order.Quantity,
		"extras", len(order.Extras),
		"total", order.Total.StringFixed(2),
	)
	return nil
}

func (s *orderService) GetOrderByID(ctx context.Context, id uint) (*models.Order, error) {
	if s.cache != nil {
		order, err := s.cache.GetOrder(ctx, id)
		if err == nil {
			order.ComputeTotal()
			return order, nil
		}
		if !errors.Is(err, redis.ErrCacheMiss) {
			s.logger.Warn("Order cache read failed", "order_id", id, "error", err)
		}
	}

	order, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, translate(err)
	}
	order.ComputeTotal()

	if s.cache != nil {
		if err := s.cache.SetOrder(ctx, order, s.cacheTTL); err != nil {
			s.logger.Warn("Order cache write failed", "order_id", id, "error", err)
		}
	}
	return order, nil
}

func (s *orderService) GetAllOrders(ctx context.Context) ([]models.Order, error) {
	orders, err := s.orderRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	for i := range orders {
		orders[i].ComputeTotal()
	}
	return orders, nil
}
