package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorestaurant/internal/models"

	"github.com/go-redis/redis/v8"
)

// ErrCacheMiss is returned when a key is not cached.
var ErrCacheMiss = errors.New("cache miss")

type Client struct {
	rdb *redis.Client
}

func Initialize(redisURL string) (*Client, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	rdb := redis.NewClient(opt)

	// Test connection
	ctx := context.Background()
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &Client{rdb: rdb}, nil
}

func FoodKey(id uint) string {
	return fmt.Sprintf("food:%d", id)
}

func OrderKey(id uint) string {
	return fmt.Sprintf("order:%d", id)
}

// Food cache
func (c *Client) SetFood(ctx context.Context, food *models.Food, ttl time.Duration) error {
	return c.setJSON(ctx, FoodKey(food.ID), food, ttl)
}

func (c *Client) GetFood(ctx context.Context, id uint) (*models.Food, error) {
	var food models.Food
	if err := c.getJSON(ctx, FoodKey(id), &food); err != nil {
		return nil, err
	}
	return &food, nil
}

// Order receipts never change once created
func (c *Client) SetOrder(ctx context.Context, order *models.Order, ttl time.Duration) error {
	return c.setJSON(ctx, OrderKey(order.ID), order, ttl)
}

func (c *Client) GetOrder(ctx context.Context, id uint) (*models.Order, error) {
	var order models.Order
	if err := c.getJSON(ctx, OrderKey(id), &order); err != nil {
		return nil, err
	}
	return &order, nil
}

func (c *Client) setJSON(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	jsonData, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", key, err)
	}

	return c.rdb.Set(ctx, key, jsonData, ttl).Err()
}

func (c *Client) getJSON(ctx context.Context, key string, dest interface{}) error {
	val, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return ErrCacheMiss
		}
		return fmt.Errorf("failed to get %s: %w", key, err)
	}

	if err := json.Unmarshal(val, dest); err != nil {
		return fmt.Errorf("failed to unmarshal %s: %w", key, err)
	}
	return nil
}

// Close Redis connection
func (c *Client) Close() error {
	return c.rdb.Close()
}
