package pricing

import "github.com/shopspring/decimal"

// ExtrasTotal sums quantity * value over extras.
func ExtrasTotal(extras []Extra) decimal.Decimal {
	total := decimal.Zero
	for _, extra := range extras {
		total = total.Add(extra.Subtotal())
	}
	return total
}

// UnitTotal is the price of one unit of the food item with its extras.
func UnitTotal(basePrice decimal.Decimal, extras []Extra) decimal.Decimal {
	return basePrice.Add(ExtrasTotal(extras))
}

// Total computes (basePrice + extras) * foodQuantity from the raw values.
// It holds no state, so equal inputs always give equal results.
func Total(basePrice decimal.Decimal, extras []Extra, foodQuantity int) decimal.Decimal {
	return UnitTotal(basePrice, extras).Mul(decimal.NewFromInt(int64(foodQuantity)))
}
