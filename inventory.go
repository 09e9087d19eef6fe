package inventory

import (
	"slices"
	"strings"
)

// Inventory is an ordered collection of products, unique by normalized
// name. Insertion order is preserved and there is no remove operation.
//
// An Inventory is not safe for concurrent use; callers running it from
// several goroutines must serialize access themselves, in particular
// around AddProduct and FindProduct-then-update sequences.
type Inventory struct {
	products []*Product
}

// NewInventory creates an empty inventory.
func NewInventory() *Inventory {
	return &Inventory{products: make([]*Product, 0)}
}

// AddProduct adds a product to the inventory. If a product with the same
// normalized name already exists, the two are merged: quantities add up
// and the price is overwritten with the incoming product's price. The
// merge either applies fully or not at all; a validation failure leaves
// the existing entry untouched.
func (inv *Inventory) AddProduct(p *Product) error {
	if p == nil {
		return &InvalidArgumentError{Field: "product", Kind: KindWrongType, Reason: "product cannot be nil"}
	}
	key, err := Key(p.Name())
	if err != nil {
		return err
	}
	existing := inv.findByKey(key)
	if existing == nil {
		inv.products = append(inv.products, p)
		return nil
	}
	merged := existing.Quantity() + p.Quantity()
	// Check the merged quantity before touching the price, so a rejected
	// merge leaves the entry fully unchanged.
	if _, err := validateQuantity(merged); err != nil {
		return err
	}
	if err := existing.UpdatePrice(p.Price().AsFloat()); err != nil {
		return err
	}
	return existing.UpdateQuantity(merged)
}

// findByKey scans the collection in order and returns the first product
// stored under key, or nil. Stored names are already trimmed, so
// lowercasing them yields their key.
func (inv *Inventory) findByKey(key string) *Product {
	for _, p := range inv.products {
		if strings.ToLower(p.name) == key {
			return p
		}
	}
	return nil
}

// FindProduct returns the live product stored under the name's normalized
// key. Mutating the returned product through its own methods updates the
// inventory entry.
func (inv *Inventory) FindProduct(name string) (*Product, error) {
	key, err := Key(name)
	if err != nil {
		return nil, err
	}
	p := inv.findByKey(key)
	if p == nil {
		return nil, &NotFoundError{Name: name}
	}
	return p, nil
}

// TotalValue returns the sum of all line totals, rounded to two
// fractional digits. An empty inventory is worth zero.
func (inv *Inventory) TotalValue() Money {
	total := M(0, DefaultCurrency)
	for _, p := range inv.products {
		total = total.Add(p.TotalValue())
	}
	return total.Round()
}

// Products returns an order-preserving snapshot of the current entries.
// The slice is a copy, so callers cannot change the inventory's
// membership or ordering through it; the products themselves are the live
// entities.
func (inv *Inventory) Products() []*Product {
	return slices.Clone(inv.products)
}

// Len returns the number of distinct products in the inventory.
func (inv *Inventory) Len() int { return len(inv.products) }
