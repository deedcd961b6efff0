package entity

import "github.com/shopspring/decimal"

// DefaultTaxRate is the flat GST rate applied at checkout.
var DefaultTaxRate = decimal.RequireFromString("0.18")

// Totals is the price breakdown shown before payment.
// Total is rounded to a whole amount and is what the payment intent is created for.
type Totals struct {
	Subtotal decimal.Decimal `json:"subtotal"`
	Tax      decimal.Decimal `json:"tax"`
	Total    int64           `json:"total"`
}

// ComputeTotals prices lines at taxRate:
// subtotal = sum(unit price * quantity), tax = subtotal * taxRate, total = round(subtotal + tax).
func ComputeTotals(lines []CartLine, taxRate decimal.Decimal) Totals {
	subtotal := decimal.Zero
	for _, line := range lines {
		price := decimal.NewFromFloat(line.UnitPrice())
		subtotal = subtotal.Add(price.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}

	tax := subtotal.Mul(taxRate)

	return Totals{
		Subtotal: subtotal,
		Tax:      tax,
		Total:    subtotal.Add(tax).Round(0).IntPart(),
	}
}
