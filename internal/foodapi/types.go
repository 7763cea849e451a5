package foodapi

import (
	"time"

	"gorestaurant/internal/pricing"

	"github.com/shopspring/decimal"
)

type Food struct {
	ID          uint            `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Category    uint            `json:"category"`
	ImageURL    string          `json:"image_url"`
	Extras      []pricing.Extra `json:"extras"`
}

type Favorite struct {
	ID          uint            `json:"id"`
	FoodID      uint            `json:"food_id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Category    uint            `json:"category"`
	ImageURL    string          `json:"image_url"`
}

// OrderRequest is the snapshot submitted to create an order.
type OrderRequest struct {
	ProductID    uint            `json:"product_id"`
	Name         string          `json:"name"`
	Description  string          `json:"description"`
	Price        decimal.Decimal `json:"price"`
	Category     uint            `json:"category"`
	Quantity     int             `json:"quantity"`
	ThumbnailURL string          `json:"thumbnail_url"`
	Extras       []pricing.Extra `json:"extras"`
}

type Order struct {
	ID           uint            `json:"id"`
	ProductID    uint            `json:"product_id"`
	Name         string          `json:"name"`
	Description  string          `json:"description"`
	Price        decimal.Decimal `json:"price"`
	Category     uint            `json:"category"`
	Quantity     int             `json:"quantity"`
	ThumbnailURL string          `json:"thumbnail_url"`
	Extras       []pricing.Extra `json:"extras"`
	CreatedAt    time.Time       `json:"created_at"`
}

// FoodQuery filters ListFoods.
type FoodQuery struct {
	Name     string
	Category uint
}
