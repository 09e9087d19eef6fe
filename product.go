package inventory

import "fmt"

// Product is a single validated inventory line item.
//
// A Product is only created through NewProduct and only mutated through
// UpdatePrice and UpdateQuantity, each of which re-validates its input and
// leaves the product untouched on failure. A *Product in hand therefore
// always has a non-blank name, a non-negative price rounded to two digits
// and a non-negative quantity.
type Product struct {
	name     string
	price    Money
	quantity int
}

// NewProduct validates all three fields and creates the product. The name
// is trimmed but keeps its casing; the price is rounded to two fractional
// digits before storage.
func NewProduct(name string, price float64, quantity int) (*Product, error) {
	n, err := validateName(name)
	if err != nil {
		return nil, err
	}
	p, err := validatePrice(price)
	if err != nil {
		return nil, err
	}
	q, err := validateQuantity(quantity)
	if err != nil {
		return nil, err
	}
	return &Product{name: n, price: p, quantity: q}, nil
}

// Name returns the display name, original casing preserved.
func (p *Product) Name() string { return p.name }

// Price returns the current unit price.
func (p *Product) Price() Money { return p.price }

// Quantity returns the number of units on hand.
func (p *Product) Quantity() int { return p.quantity }

// UpdatePrice replaces the unit price after validation. On error the
// stored price is left unchanged.
func (p *Product) UpdatePrice(price float64) error {
	v, err := validatePrice(price)
	if err != nil {
		return err
	}
	p.price = v
	return nil
}

// UpdateQuantity replaces the quantity on hand after validation. On error
// the stored quantity is left unchanged.
func (p *Product) UpdateQuantity(quantity int) error {
	v, err := validateQuantity(quantity)
	if err != nil {
		return err
	}
	p.quantity = v
	return nil
}

// TotalValue returns price × quantity rounded to two fractional digits.
func (p *Product) TotalValue() Money {
	return p.price.MulInt(p.quantity).Round()
}

// String renders the product for display.
func (p *Product) String() string {
	return fmt.Sprintf("Product(name='%s', price=%s, quantity=%d, total=%s)",
		p.name, p.price, p.quantity, p.TotalValue())
}
