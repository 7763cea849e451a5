package models

import (
	"time"

	"gorestaurant/internal/pricing"

	"github.com/shopspring/decimal"
)

// Order is a snapshot of a food selection. It is never updated after
// creation.
type Order struct {
	ID           uint            `json:"id" gorm:"primaryKey"`
	ProductID    uint            `json:"product_id" gorm:"not null;index"`
	Name         string          `json:"name" gorm:"not null"`
	Description  string          `json:"description" gorm:"type:text"`
	Price        decimal.Decimal `json:"price" gorm:"type:numeric(10,2);not null"`
	Category     uint            `json:"category"`
	Quantity     int             `json:"quantity" gorm:"not null"`
	ThumbnailURL string          `json:"thumbnail_url"`
	Extras       []OrderExtra    `json:"extras" gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	Total        decimal.Decimal `json:"total" gorm:"-"`
	CreatedAt    time.Time       `json:"created_at"`
}

// OrderExtra is an extra chosen for an order. Its JSON id is the catalog
// extra id, matching the food record it was picked from.
type OrderExtra struct {
	ID       uint            `json:"-" gorm:"primaryKey"`
	OrderID  uint            `json:"-" gorm:"not null;index"`
	ExtraID  uint            `json:"id" gorm:"not null"`
	Name     string          `json:"name" gorm:"not null"`
	Value    decimal.Decimal `json:"value" gorm:"type:numeric(10,2);not null"`
	Quantity int             `json:"quantity" gorm:"not null"`
}

// PricingExtras converts the order extras for the total calculator.
func (o *Order) PricingExtras() []pricing.Extra {
	extras := make([]pricing.Extra, len(o.Extras))
	for i, e := range o.Extras {
		extras[i] = pricing.Extra{ID: e.ExtraID, Name: e.Name, Value: e.Value, Quantity: e.Quantity}
	}
	return extras
}

// ComputeTotal fills Total from the stored price, extras and quantity.
func (o *Order) ComputeTotal() {
	o.Total = pricing.Total(o.Price, o.PricingExtras(), o.Quantity)
}
