package inventory

// USD is a helper for tests to create dollar money from const
func USD(v float64) Money { return M(v, "USD") }

// mustProduct is a helper for tests that need a valid product.
func mustProduct(name string, price float64, quantity int) *Product {
	p, err := NewProduct(name, price, quantity)
	if err != nil {
		panic(err)
	}
	return p
}
