package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Food struct {
	ID          uint            `json:"id" gorm:"primaryKey"`
	Name        string          `json:"name" gorm:"not null;index"`
	Description string          `json:"description" gorm:"type:text"`
	Price       decimal.Decimal `json:"price" gorm:"type:numeric(10,2);not null"`
	Category    uint            `json:"category" gorm:"index"`
	ImageURL    string          `json:"image_url"`
	Extras      []FoodExtra     `json:"extras" gorm:"foreignKey:FoodID;constraint:OnDelete:CASCADE"`
	CreatedAt   time.Time       `json:"-"`
	UpdatedAt   time.Time       `json:"-"`
}

// FoodExtra is a catalog entry: an add-on the food can be ordered with.
type FoodExtra struct {
	ID     uint            `json:"id" gorm:"primaryKey"`
	FoodID uint            `json:"-" gorm:"not null;index"`
	Name   string          `json:"name" gorm:"not null"`
	Value  decimal.Decimal `json:"value" gorm:"type:numeric(10,2);not null"`
}

// Extra looks up one of the food's catalog extras by id.
func (f *Food) Extra(id uint) (FoodExtra, bool) {
	for _, extra := range f.Extras {
		if extra.ID == id {
			return extra, true
		}
	}
	return FoodExtra{}, false
}
