// Package inventory provides the core types for a small in-memory
// inventory ledger: named products with a unit price and a quantity on
// hand, collected into a single inventory with aggregate valuation.
//
// The core functionalities include:
//   - Product: a validated line item. A product is only created through
//     its constructor and only mutated through its update methods, so a
//     product in hand always satisfies its invariants (non-blank name,
//     non-negative two-digit price, non-negative quantity).
//   - Inventory: an ordered collection of products, unique by a
//     case-insensitive normalized name. Adding a product whose name is
//     already present merges it into the existing entry.
//   - Valuation: line totals and the total inventory value, computed
//     exactly and rounded to two fractional digits.
//
// This package serves as the foundational logic for the `inv` command-line
// tool. It performs no I/O of its own: all errors are returned to the
// caller, and the interactive presentation lives entirely in the cmd
// package.
package inventory
