package domain

import (
	"sort"

	"github.com/shopspring/decimal"
)

// ItemRef is the slice of catalog data a cart line needs.
type ItemRef struct {
	ID    string
	Name  string
	Price decimal.Decimal
}

type CartItem struct {
	Item     ItemRef
	Quantity int
}

// LineTotal is always unit price times quantity.
func (ci CartItem) LineTotal() decimal.Decimal {
	return ci.Item.Price.Mul(decimal.NewFromInt(int64(ci.Quantity)))
}

type Cart struct {
	ID         string
	CustomerID string
	Items      []CartItem
}

func (c Cart) Subtotal() decimal.Decimal {
	total := decimal.Zero
	for _, it := range c.Items {
		total = total.Add(it.LineTotal())
	}
	return total
}

func (c Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

func (c Cart) Line(itemID string) (CartItem, bool) {
	for _, it := range c.Items {
		if it.Item.ID == itemID {
			return it, true
		}
	}
	return CartItem{}, false
}

// Clone returns a copy that shares no slice memory with c.
func (c Cart) Clone() Cart {
	out := c
	out.Items = append([]CartItem(nil), c.Items...)
	return out
}

// Sorted returns a copy with lines ordered by item id and zero-quantity lines dropped.
func (c Cart) Sorted() Cart {
	out := c.Clone()
	kept := out.Items[:0]
	for _, it := range out.Items {
		if it.Quantity > 0 {
			kept = append(kept, it)
		}
	}
	out.Items = kept
	sort.SliceStable(out.Items, func(i, j int) bool {
		return out.Items[i].Item.ID < out.Items[j].Item.ID
	})
	return out
}

// ApplyAdd increases the line for item by qty, creating it if needed.
func (c Cart) ApplyAdd(item ItemRef, qty int) Cart {
	out := c.Clone()
	for i := range out.Items {
		if out.Items[i].Item.ID == item.ID {
			out.Items[i].Quantity += qty
			return out.Sorted()
		}
	}
	out.Items = append(out.Items, CartItem{Item: item, Quantity: qty})
	return out.Sorted()
}

// ApplyRemove decreases the line for itemID by qty, never below zero.
// A line that reaches zero is removed.
func (c Cart) ApplyRemove(itemID string, qty int) Cart {
	out := c.Clone()
	for i := range out.Items {
		if out.Items[i].Item.ID == itemID {
			out.Items[i].Quantity -= qty
			if out.Items[i].Quantity < 0 {
				out.Items[i].Quantity = 0
			}
		}
	}
	return out.Sorted()
}

// ApplySet sets the quantity of an existing line.
func (c Cart) ApplySet(itemID string, qty int) Cart {
	out := c.Clone()
	for i := range out.Items {
		if out.Items[i].Item.ID == itemID {
			out.Items[i].Quantity = qty
		}
	}
	return out.Sorted()
}

func (c Cart) ApplyDelete(itemID string) Cart {
	return c.ApplySet(itemID, 0)
}
