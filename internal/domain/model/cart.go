package model

// CartLine is one catalog item plus the quantity chosen by the user.
// A cart holds at most one line per distinct item ID.
type CartLine struct {
	ItemID   int     `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	ImageURL string  `json:"image_url"`
	Quantity int     `json:"quantity"`
}

// Subtotal returns price × quantity for the line.
func (l CartLine) Subtotal() float64 {
	return l.Price * float64(l.Quantity)
}

// CartState is the in-memory cart of the active user. Lines keep insertion
// order. Total is derived from the lines after every mutation; ApplyDiscount
// is the one documented exception that moves Total away from the recomputed
// value without touching the lines.
type CartState struct {
	Lines []CartLine `json:"lines"`
	Total float64    `json:"total"`
}

// NewCartState builds a CartState over the given lines with a consistent total.
func NewCartState(lines []CartLine) CartState {
	s := CartState{Lines: lines}
	s.RecomputeTotal()
	return s
}

// RecomputeTotal restores the invariant Total == Σ(price × quantity).
func (s *CartState) RecomputeTotal() {
	var total float64
	for _, l := range s.Lines {
		total += l.Subtotal()
	}
	s.Total = total
}

// IsEmpty reports whether the cart has no lines.
func (s *CartState) IsEmpty() bool {
	return len(s.Lines) == 0
}

// UnitCount returns the sum of all line quantities.
func (s *CartState) UnitCount() int {
	var n int
	for _, l := range s.Lines {
		n += l.Quantity
	}
	return n
}

// AddLine increments the line matching the item's ID by quantity, or appends
// a new line. Quantity must be normalized (>= 1) by the caller.
func (s *CartState) AddLine(item CatalogItem, quantity int) {
	for i := range s.Lines {
		if s.Lines[i].ItemID == item.ID {
			s.Lines[i].Quantity += quantity
			s.RecomputeTotal()
			return
		}
	}
	s.Lines = append(s.Lines, CartLine{
		ItemID:   item.ID,
		Name:     item.Name,
		Price:    item.Price,
		ImageURL: item.ImageURL,
		Quantity: quantity,
	})
	s.RecomputeTotal()
}

// RemoveLine deletes all lines matching itemID (at most one by invariant)
// and reports whether anything was removed.
func (s *CartState) RemoveLine(itemID int) bool {
	kept := s.Lines[:0]
	removed := false
	for _, l := range s.Lines {
		if l.ItemID == itemID {
			removed = true
			continue
		}
		kept = append(kept, l)
	}
	s.Lines = kept
	s.RecomputeTotal()
	return removed
}

// SetLineQuantity sets the matching line's quantity directly and reports
// whether the line exists. No floor is enforced at this layer; callers are
// expected to prevent decrementing below 1.
func (s *CartState) SetLineQuantity(itemID, quantity int) bool {
	for i := range s.Lines {
		if s.Lines[i].ItemID == itemID {
			s.Lines[i].Quantity = quantity
			s.RecomputeTotal()
			return true
		}
	}
	return false
}

// LowestPricedIndex returns the index of the first line with the strictly
// lowest unit price, or -1 on an empty cart.
func (s *CartState) LowestPricedIndex() int {
	if len(s.Lines) == 0 {
		return -1
	}
	lowest := 0
	for i := 1; i < len(s.Lines); i++ {
		if s.Lines[i].Price < s.Lines[lowest].Price {
			lowest = i
		}
	}
	return lowest
}

// ApplyDiscount subtracts the lowest-priced line's subtotal from the total
// without altering the lines. No-op on an empty cart. Repeated application
// subtracts again from the current total.
func (s *CartState) ApplyDiscount() {
	i := s.LowestPricedIndex()
	if i < 0 {
		return
	}
	s.Total -= s.Lines[i].Subtotal()
}

// Clear empties the cart and zeroes the total.
func (s *CartState) Clear() {
	s.Lines = nil
	s.Total = 0
}

// Clone returns a deep copy so callers can hand state across a mutex boundary.
func (s *CartState) Clone() CartState {
	out := CartState{Total: s.Total}
	if len(s.Lines) > 0 {
		out.Lines = make([]CartLine, len(s.Lines))
		copy(out.Lines, s.Lines)
	}
	return out
}
