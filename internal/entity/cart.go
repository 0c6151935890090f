package domain

// Kind groups line items for display. The wire values are fixed; nothing
// branches on them behaviorally.
type Kind string

const (
	KindSheckles Kind = "sheckles"
	KindPet      Kind = "pet"
)

// LineItem is one row in the cart. Price and Name are locked in when the
// item is first added; re-adding the same product only bumps Quantity.
// Amount, when present, is the display label of a sheckle package and takes
// rendering priority over Name.
type LineItem struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Price    Money  `json:"price"`
	Quantity int    `json:"quantity"`
	Kind     Kind   `json:"type"`
	Amount   string `json:"amount,omitempty"`
}

func (li LineItem) DisplayName() string {
	if li.Amount != "" {
		return li.Amount
	}
	return li.Name
}

func (li LineItem) Subtotal() Money { return li.Price.Mul(li.Quantity) }

// Candidate is a product about to be added to a cart, already carrying its
// derived line-item id.
type Candidate struct {
	ID     string
	Name   string
	Price  Money
	Kind   Kind
	Amount string
}

// Cart is an ordered sequence of line items with unique ids. Operations
// return the updated cart; the receiver is never mutated in place.
type Cart []LineItem

// Add merges the candidate into the cart: an existing line item with the
// same id gets quantity+1 (its first-seen price and name win), otherwise a
// new line item with quantity 1 is appended.
func (c Cart) Add(cand Candidate) Cart {
	out := make(Cart, len(c))
	copy(out, c)
	for i := range out {
		if out[i].ID == cand.ID {
			out[i].Quantity++
			return out
		}
	}
	return append(out, LineItem{
		ID:       cand.ID,
		Name:     cand.Name,
		Price:    cand.Price,
		Quantity: 1,
		Kind:     cand.Kind,
		Amount:   cand.Amount,
	})
}

// SetQuantity replaces the quantity of the matching line item in place
// (position unchanged). A quantity of zero or less removes the item.
// Unknown ids leave the cart unchanged.
func (c Cart) SetQuantity(id string, quantity int) Cart {
	if quantity <= 0 {
		return c.Remove(id)
	}
	out := make(Cart, len(c))
	copy(out, c)
	for i := range out {
		if out[i].ID == id {
			out[i].Quantity = quantity
		}
	}
	return out
}

// Remove deletes the matching line item; unknown ids are a no-op.
func (c Cart) Remove(id string) Cart {
	out := make(Cart, 0, len(c))
	for _, li := range c {
		if li.ID != id {
			out = append(out, li)
		}
	}
	return out
}

// Total is the sum of price*quantity over all line items, recomputed on
// every call.
func (c Cart) Total() Money {
	var t Money
	for _, li := range c {
		t = t.Add(li.Subtotal())
	}
	return t
}

// Count is the total number of units across all line items (the cart badge).
func (c Cart) Count() int {
	n := 0
	for _, li := range c {
		n += li.Quantity
	}
	return n
}

// Sanitize repairs a cart rehydrated from foreign persisted data: line items
// with empty ids or non-positive quantities are dropped, and duplicate ids
// are merged into the first occurrence.
func (c Cart) Sanitize() Cart {
	out := make(Cart, 0, len(c))
	seen := make(map[string]int, len(c))
	for _, li := range c {
		if li.ID == "" || li.Quantity < 1 {
			continue
		}
		if i, ok := seen[li.ID]; ok {
			out[i].Quantity += li.Quantity
			continue
		}
		seen[li.ID] = len(out)
		out = append(out, li)
	}
	return out
}
