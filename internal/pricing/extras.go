// Package pricing holds the order pricing model: the extras quantity ledger,
// the base quantity counter and the total price calculator.
package pricing

import "github.com/shopspring/decimal"

// Extra is an optional add-on to a food item, priced per unit.
type Extra struct {
	ID       uint            `json:"id"`
	Name     string          `json:"name"`
	Value    decimal.Decimal `json:"value"`
	Quantity int             `json:"quantity"`
}

// Subtotal returns quantity * value.
func (e Extra) Subtotal() decimal.Decimal {
	return e.Value.Mul(decimal.NewFromInt(int64(e.Quantity)))
}

// Increment returns a copy of extras with the quantity of the extra matching
// id raised by one. An unknown id returns an unchanged copy.
func Increment(extras []Extra, id uint) []Extra {
	return apply(extras, id, func(q int) int { return q + 1 })
}

// Decrement returns a copy of extras with the quantity of the extra matching
// id lowered by one, never below zero.
func Decrement(extras []Extra, id uint) []Extra {
	return apply(extras, id, func(q int) int {
		if q <= 0 {
			return 0
		}
		return q - 1
	})
}

func apply(extras []Extra, id uint, fn func(int) int) []Extra {
	updated := make([]Extra, len(extras))
	copy(updated, extras)
	for i := range updated {
		if updated[i].ID == id {
			updated[i].Quantity = fn(updated[i].Quantity)
		}
	}
	return updated
}

// Selected returns the extras with a quantity greater than zero, in order.
func Selected(extras []Extra) []Extra {
	selected := make([]Extra, 0, len(extras))
	for _, extra := range extras {
		if extra.Quantity > 0 {
			selected = append(selected, extra)
		}
	}
	return selected
}

// WithZeroQuantities returns a copy of extras with every quantity reset to 0,
// the state of a freshly loaded food item.
func WithZeroQuantities(extras []Extra) []Extra {
	reset := make([]Extra, len(extras))
	for i, extra := range extras {
		extra.Quantity = 0
		reset[i] = extra
	}
	return reset
}
