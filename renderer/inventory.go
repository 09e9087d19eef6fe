package renderer

import (
	"github.com/giocrisrai/inventory"
)

// Inventory is the report model for the full inventory listing.
type Inventory struct {
	Rows  []Row
	Total string
}

// Row is one product line of the listing.
type Row struct {
	Name     string
	Price    string
	Quantity int
	Total    string
}

// NewInventory builds the listing report from the live collection.
func NewInventory(inv *inventory.Inventory) *Inventory {
	report := &Inventory{Total: inv.TotalValue().String()}
	for _, p := range inv.Products() {
		report.Rows = append(report.Rows, Row{
			Name:     p.Name(),
			Price:    p.Price().String(),
			Quantity: p.Quantity(),
			Total:    p.TotalValue().String(),
		})
	}
	return report
}

// InventoryMarkdown renders the full inventory listing to a markdown
// string.
func InventoryMarkdown(inv *inventory.Inventory) string {
	partials := map[string]string{
		"inventory_rows": "inventory_rows.md",
	}
	return renderTemplate("inventory", "inventory.md", partials, NewInventory(inv))
}
