package inventory

import (
	"fmt"
	"math"
	"strings"
)

// validateName returns the trimmed name, rejecting empty or
// whitespace-only input.
func validateName(name string) (string, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return "", &InvalidArgumentError{Field: "name", Kind: KindEmptyText, Reason: "name cannot be empty"}
	}
	return trimmed, nil
}

// validatePrice rejects non-real and negative prices, and rounds the rest
// to the currency's fractional digits.
func validatePrice(price float64) (Money, error) {
	if math.IsNaN(price) || math.IsInf(price, 0) {
		return Money{}, &InvalidArgumentError{Field: "price", Kind: KindWrongType, Reason: fmt.Sprintf("price must be a real number, got %v", price)}
	}
	if price < 0 {
		return Money{}, &InvalidArgumentError{Field: "price", Kind: KindOutOfRange, Reason: "price cannot be negative"}
	}
	return M(price, DefaultCurrency).Round(), nil
}

// validateQuantity rejects negative quantities.
func validateQuantity(quantity int) (int, error) {
	if quantity < 0 {
		return 0, &InvalidArgumentError{Field: "quantity", Kind: KindOutOfRange, Reason: "quantity cannot be negative"}
	}
	return quantity, nil
}

// Key returns the normalized uniqueness key for a product name: its
// trimmed, lowercased form. Equality and lookup always go through this
// key; display names keep their original casing.
func Key(name string) (string, error) {
	trimmed, err := validateName(name)
	if err != nil {
		return "", err
	}
	return strings.ToLower(trimmed), nil
}
