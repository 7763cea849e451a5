package services

import (
	"errors"

	"gorm.io/gorm"
)

var (
	ErrNotFound         = errors.New("record not found")
	ErrInvalidQuantity  = errors.New("quantity must be at least 1")
	ErrUnknownExtra     = errors.New("extra does not belong to the product")
	ErrInvalidExtraItem = errors.New("extra quantity must not be negative")
)

func translate(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
