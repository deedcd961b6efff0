package entity

// CartLine is one product in the server-held cart.
// PriceAtAdd is the unit price captured when the product was added.
type CartLine struct {
	ProductID  string   `json:"productId"`
	Product    *Product `json:"product,omitempty"`
	Quantity   int      `json:"quantity"`
	PriceAtAdd float64  `json:"priceAtAdd"`
}

// UnitPrice is the price the line is charged at: the captured price, or the
// product's current price when the backend did not capture one.
func (l CartLine) UnitPrice() float64 {
	if l.PriceAtAdd > 0 {
		return l.PriceAtAdd
	}
	if l.Product != nil {
		return l.Product.Price
	}

	return 0
}

// Cart is the authoritative cart of a session, as last returned by the backend.
type Cart struct {
	Lines []CartLine `json:"lines"`
}

// NewCart builds a cart from backend lines. Lines with a quantity below one are
// not retained.
func NewCart(lines []CartLine) Cart {
	kept := make([]CartLine, 0, len(lines))
	for _, line := range lines {
		if line.Quantity < 1 {
			continue
		}
		kept = append(kept, line)
	}

	return Cart{Lines: kept}
}

// IsEmpty reports whether the cart has no lines.
func (c Cart) IsEmpty() bool {
	return len(c.Lines) == 0
}

// ItemCount is the sum of all line quantities.
func (c Cart) ItemCount() int {
	count := 0
	for _, line := range c.Lines {
		count += line.Quantity
	}

	return count
}

// Find returns the line for productID.
func (c Cart) Find(productID string) (CartLine, bool) {
	for _, line := range c.Lines {
		if line.ProductID == productID {
			return line, true
		}
	}

	return CartLine{}, false
}
