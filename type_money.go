package inventory

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// DefaultCurrency is the currency assigned to every price entering the
// inventory. The ledger is single-currency; the currency definition only
// supplies the display format and the number of fractional digits.
const DefaultCurrency = "USD"

// Money represents a monetary value.
type Money struct {
	value decimal.Decimal // as major unit value
	cur   string
}

// M creates a Money value in the given currency.
func M[T float32 | float64 | int | int32 | int64 | decimal.Decimal](value T, currency string) Money {
	return Money{value: newDecimal(value), cur: currency}
}

// newDecimal is a convenient factory for decimal.Decimal.
func newDecimal[T float32 | float64 | int | int32 | int64 | decimal.Decimal](value T) decimal.Decimal {
	switch v := any(value).(type) {
	case decimal.Decimal:
		return v
	case float32:
		return decimal.NewFromFloat32(v)
	case float64:
		return decimal.NewFromFloat(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case int32:
		return decimal.NewFromInt32(v)
	case int64:
		return decimal.NewFromInt(v)
	default:
		panic("unsupported type")
	}
}

// currency returns the money's full currency definition.
func (m Money) currency() money.Currency {
	cur := m.cur
	if cur == "" {
		// the zero Money has no currency yet
		cur = DefaultCurrency
	}
	// to get a never nil currency I need to call the Money constructor
	return *money.New(0, cur).Currency()
}

// String returns the string representation of the money value, e.g. "$10.00".
func (m Money) String() string {
	cur := m.currency()
	dec := m.value.Shift(int32(cur.Fraction))
	return cur.Formatter().Format(dec.IntPart())
}

// Round returns a copy rounded to the currency's fractional digits.
func (m Money) Round() Money {
	return Money{value: m.value.Round(int32(m.currency().Fraction)), cur: m.cur}
}

// Simple wrappers around the decimal value.

func (m Money) Currency() string   { return m.cur }
func (m Money) Equal(n Money) bool { return m.value.Equal(n.value) && m.cur == n.cur }
func (m Money) IsZero() bool       { return m.value.IsZero() }
func (m Money) IsNegative() bool   { return m.value.IsNegative() }

// Add returns m+n. The zero Money has no currency and adopts the other
// operand's.
func (m Money) Add(n Money) Money {
	cur := m.cur
	if cur == "" {
		cur = n.cur
	}
	return Money{value: m.value.Add(n.value), cur: cur}
}

// MulInt returns the money value multiplied by a unit count.
func (m Money) MulInt(n int) Money {
	return Money{value: m.value.Mul(decimal.NewFromInt(int64(n))), cur: m.cur}
}

// AsFloat returns the amount as a float64. Prices are rounded to the
// currency fraction before storage, so the conversion is lossless for
// every value the inventory holds.
func (m Money) AsFloat() float64 { return m.value.InexactFloat64() }
