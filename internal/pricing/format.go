package pricing

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Formatter turns an amount into a display string.
type Formatter func(amount decimal.Decimal) string

const currencySymbol = "R$"

// FormatValue formats amount as Brazilian reais, e.g. "R$ 1.234,50".
func FormatValue(amount decimal.Decimal) string {
	amount = amount.Round(2)
	sign := ""
	if amount.IsNegative() {
		sign = "-"
		amount = amount.Neg()
	}

	fixed := amount.StringFixed(2)
	integer, fraction, _ := strings.Cut(fixed, ".")

	return sign + currencySymbol + " " + groupThousands(integer) + "," + fraction
}

func groupThousands(digits string) string {
	if len(digits) <= 3 {
		return digits
	}

	var b strings.Builder
	head := len(digits) % 3
	if head > 0 {
		b.WriteString(digits[:head])
	}
	for i := head; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte('.')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
