package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Favorite marks a food as favorite. Presence of a record with the food's
// name is the only signal consumers read.
type Favorite struct {
	ID          uint            `json:"id" gorm:"primaryKey"`
	FoodID      uint            `json:"food_id" gorm:"index"`
	Name        string          `json:"name" gorm:"uniqueIndex;not null"`
	Description string          `json:"description" gorm:"type:text"`
	Price       decimal.Decimal `json:"price" gorm:"type:numeric(10,2)"`
	Category    uint            `json:"category"`
	ImageURL    string          `json:"image_url"`
	CreatedAt   time.Time       `json:"created_at"`
}
