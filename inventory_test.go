package inventory

import (
	"errors"
	"math"
	"testing"
)

func TestInventory_AddProduct_Merge(t *testing.T) {
	inv := NewInventory()

	if err := inv.AddProduct(mustProduct("Apple", 1.00, 5)); err != nil {
		t.Fatalf("AddProduct(Apple) unexpected error: %v", err)
	}
	if err := inv.AddProduct(mustProduct("apple", 1.50, 2)); err != nil {
		t.Fatalf("AddProduct(apple) unexpected error: %v", err)
	}

	// the two adds must collapse into one entry under the normalized key
	if got := inv.Len(); got != 1 {
		t.Fatalf("Len() = %d, want 1", got)
	}

	p, err := inv.FindProduct("apple")
	if err != nil {
		t.Fatalf("FindProduct(apple) unexpected error: %v", err)
	}
	if got := p.Quantity(); got != 7 {
		t.Errorf("merged Quantity() = %d, want 7", got)
	}
	if got, want := p.Price(), USD(1.50); !got.Equal(want) {
		t.Errorf("merged Price() = %s, want %s (last price wins)", got, want)
	}
	if got, want := p.Name(), "Apple"; got != want {
		t.Errorf("merged Name() = %q, want %q (first casing kept)", got, want)
	}
}

func TestInventory_AddProduct_RejectedMergeIsAtomic(t *testing.T) {
	inv := NewInventory()
	if err := inv.AddProduct(mustProduct("Apple", 1.00, math.MaxInt)); err != nil {
		t.Fatalf("AddProduct(Apple) unexpected error: %v", err)
	}

	// merging one more unit overflows the summed quantity
	err := inv.AddProduct(mustProduct("apple", 2.00, 1))
	var invalid *InvalidArgumentError
	if !errors.As(err, &invalid) {
		t.Fatalf("AddProduct(apple) error = %v, want *InvalidArgumentError", err)
	}
	if invalid.Field != "quantity" {
		t.Errorf("Field = %q, want %q", invalid.Field, "quantity")
	}

	// the rejected merge must leave the existing entry fully unchanged
	p, err := inv.FindProduct("Apple")
	if err != nil {
		t.Fatalf("FindProduct(Apple) unexpected error: %v", err)
	}
	if got, want := p.Price(), USD(1.00); !got.Equal(want) {
		t.Errorf("Price() after rejected merge = %s, want %s", got, want)
	}
	if got := p.Quantity(); got != math.MaxInt {
		t.Errorf("Quantity() after rejected merge = %d, want math.MaxInt", got)
	}
}

func TestInventory_AddProduct_Nil(t *testing.T) {
	inv := NewInventory()

	err := inv.AddProduct(nil)
	var invalid *InvalidArgumentError
	if !errors.As(err, &invalid) {
		t.Fatalf("AddProduct(nil) error = %v, want *InvalidArgumentError", err)
	}
	if invalid.Kind != KindWrongType {
		t.Errorf("Kind = %v, want %v", invalid.Kind, KindWrongType)
	}
}

func TestInventory_AddProduct_PreservesOrder(t *testing.T) {
	inv := NewInventory()
	for _, name := range []string{"Banana", "Apple", "Cherry"} {
		if err := inv.AddProduct(mustProduct(name, 1, 1)); err != nil {
			t.Fatalf("AddProduct(%s) unexpected error: %v", name, err)
		}
	}
	// merging into the middle entry must not move it
	if err := inv.AddProduct(mustProduct("APPLE", 2, 1)); err != nil {
		t.Fatalf("AddProduct(APPLE) unexpected error: %v", err)
	}

	want := []string{"Banana", "Apple", "Cherry"}
	products := inv.Products()
	if len(products) != len(want) {
		t.Fatalf("len(Products()) = %d, want %d", len(products), len(want))
	}
	for i, p := range products {
		if p.Name() != want[i] {
			t.Errorf("Products()[%d].Name() = %q, want %q", i, p.Name(), want[i])
		}
	}
}

func TestInventory_FindProduct_CaseInsensitive(t *testing.T) {
	inv := NewInventory()
	if err := inv.AddProduct(mustProduct("Apple", 1.00, 5)); err != nil {
		t.Fatalf("AddProduct unexpected error: %v", err)
	}

	upper, err := inv.FindProduct("APPLE")
	if err != nil {
		t.Fatalf("FindProduct(APPLE) unexpected error: %v", err)
	}
	lower, err := inv.FindProduct("apple")
	if err != nil {
		t.Fatalf("FindProduct(apple) unexpected error: %v", err)
	}
	if upper != lower {
		t.Errorf("FindProduct(APPLE) and FindProduct(apple) returned different entries")
	}
}

func TestInventory_FindProduct_NotFound(t *testing.T) {
	inv := NewInventory()
	if err := inv.AddProduct(mustProduct("Apple", 1.00, 5)); err != nil {
		t.Fatalf("AddProduct unexpected error: %v", err)
	}

	_, err := inv.FindProduct("Orange")
	var notFound *NotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("FindProduct(Orange) error = %v, want *NotFoundError", err)
	}
	// the error carries the name as requested, not the normalized key
	if got, want := notFound.Name, "Orange"; got != want {
		t.Errorf("NotFoundError.Name = %q, want %q", got, want)
	}
}

func TestInventory_FindProduct_BlankName(t *testing.T) {
	inv := NewInventory()

	_, err := inv.FindProduct("   ")
	var invalid *InvalidArgumentError
	if !errors.As(err, &invalid) {
		t.Fatalf("FindProduct(blank) error = %v, want *InvalidArgumentError", err)
	}
	if invalid.Kind != KindEmptyText {
		t.Errorf("Kind = %v, want %v", invalid.Kind, KindEmptyText)
	}
}

func TestInventory_FindProduct_ReturnsLiveEntity(t *testing.T) {
	inv := NewInventory()
	if err := inv.AddProduct(mustProduct("Apple", 1.00, 5)); err != nil {
		t.Fatalf("AddProduct unexpected error: %v", err)
	}

	p, err := inv.FindProduct("apple")
	if err != nil {
		t.Fatalf("FindProduct unexpected error: %v", err)
	}
	if err := p.UpdateQuantity(9); err != nil {
		t.Fatalf("UpdateQuantity unexpected error: %v", err)
	}

	again, err := inv.FindProduct("apple")
	if err != nil {
		t.Fatalf("FindProduct unexpected error: %v", err)
	}
	if got := again.Quantity(); got != 9 {
		t.Errorf("Quantity() after mutating the found entity = %d, want 9", got)
	}
}

func TestInventory_TotalValue(t *testing.T) {
	inv := NewInventory()

	if got, want := inv.TotalValue().String(), "$0.00"; got != want {
		t.Errorf("empty TotalValue() = %q, want %q", got, want)
	}

	if err := inv.AddProduct(mustProduct("Widget", 10.00, 3)); err != nil {
		t.Fatalf("AddProduct unexpected error: %v", err)
	}
	if err := inv.AddProduct(mustProduct("Gadget", 1.50, 7)); err != nil {
		t.Fatalf("AddProduct unexpected error: %v", err)
	}

	// 30.00 + 10.50
	if got, want := inv.TotalValue(), USD(40.50); !got.Equal(want) {
		t.Errorf("TotalValue() = %s, want %s", got, want)
	}
}

func TestInventory_Products_Snapshot(t *testing.T) {
	inv := NewInventory()
	if err := inv.AddProduct(mustProduct("Apple", 1.00, 5)); err != nil {
		t.Fatalf("AddProduct unexpected error: %v", err)
	}

	snapshot := inv.Products()
	snapshot[0] = nil
	_ = append(snapshot, mustProduct("Rogue", 1, 1))

	again := inv.Products()
	if len(again) != 1 {
		t.Fatalf("len(Products()) after mutating snapshot = %d, want 1", len(again))
	}
	if again[0] == nil || again[0].Name() != "Apple" {
		t.Errorf("Products()[0] changed after mutating the snapshot")
	}
}
