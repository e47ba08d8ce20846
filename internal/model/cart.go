package model

// CartLine is one cart entry persisted in the cross-view cache.
type CartLine struct {
	ID    string  `json:"id"`
	Title string  `json:"title"`
	Price float64 `json:"price"`
	Qty   int     `json:"qty"`
}

// CartSubtotal sums price×qty over the lines.
func CartSubtotal(lines []CartLine) float64 {
	var sum float64
	for _, l := range lines {
		if l.Qty > 0 && l.Price > 0 {
			sum += l.Price * float64(l.Qty)
		}
	}
	return sum
}

// CartQuantity sums the line quantities.
func CartQuantity(lines []CartLine) int {
	var n int
	for _, l := range lines {
		if l.Qty > 0 {
			n += l.Qty
		}
	}
	return n
}
