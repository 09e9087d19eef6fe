package inventory

import "fmt"

// InvalidKind classifies why an argument was rejected.
type InvalidKind int

const (
	// KindEmptyText flags text that is empty or whitespace-only.
	KindEmptyText InvalidKind = iota
	// KindWrongType flags a value outside its type's domain, such as a
	// price that is not a real number.
	KindWrongType
	// KindOutOfRange flags a negative price or quantity.
	KindOutOfRange
)

func (k InvalidKind) String() string {
	switch k {
	case KindEmptyText:
		return "empty text"
	case KindWrongType:
		return "wrong type"
	case KindOutOfRange:
		return "out of range"
	default:
		return "unknown"
	}
}

// InvalidArgumentError reports a rejected name, price or quantity. It is
// always returned before any state is mutated.
type InvalidArgumentError struct {
	Field  string // "name", "price", "quantity" or "product"
	Kind   InvalidKind
	Reason string
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// NotFoundError reports a lookup miss. Name is the requested name exactly
// as the caller gave it, not the normalized key.
type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no product named %q in the inventory", e.Name)
}
