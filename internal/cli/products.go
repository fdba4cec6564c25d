package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/reviewdeck/adminctl/internal/models"
	"github.com/reviewdeck/adminctl/internal/table"
)

func productColumns() []table.Column[models.Product] {
	return []table.Column[models.Product]{
		{ID: "name", Title: "Product",
			Cell:      func(p models.Product) string { return p.Name },
			SortValue: func(p models.Product) any { return p.Name }},
		{ID: "category", Title: "Category",
			Cell:      func(p models.Product) string { return p.Category },
			SortValue: func(p models.Product) any { return p.Category }},
		{ID: "sku", Title: "SKU",
			Cell:      func(p models.Product) string { return p.SKU },
			SortValue: func(p models.Product) any { return p.SKU }},
		{ID: "status", Title: "Status",
			Cell:      func(p models.Product) string { return p.Status },
			SortValue: func(p models.Product) any { return p.Status }},
		{ID: "reviews", Title: "Reviews",
			Cell:      func(p models.Product) string { return strconv.Itoa(p.ReviewCount) },
			SortValue: func(p models.Product) any { return p.ReviewCount }},
		{ID: "rating", Title: "Rating",
			Cell:      func(p models.Product) string { return fmt.Sprintf("%.1f", p.AvgRating) },
			SortValue: func(p models.Product) any { return p.AvgRating }},
		{ID: "updated", Title: "Updated",
			Cell:      func(p models.Product) string { return p.UpdatedAt },
			SortValue: func(p models.Product) any { return p.UpdatedAt }},
	}
}

// filteredProducts applies the case-insensitive search over name, SKU, and
// category to the seeded collection.
func (a *App) filteredProducts() []models.Product {
	if a.productSearch == "" {
		return a.products
	}
	needle := strings.ToLower(a.productSearch)
	out := make([]models.Product, 0, len(a.products))
	for _, p := range a.products {
		if strings.Contains(strings.ToLower(p.Name), needle) ||
			strings.Contains(strings.ToLower(p.SKU), needle) ||
			strings.Contains(strings.ToLower(p.Category), needle) {
			out = append(out, p)
		}
	}
	return out
}

// searchProducts filters the seeded collection client-side.
func (a *App) searchProducts(text string) {
	a.productSearch = text
	a.renderProducts()
}

func (a *App) renderProducts() {
	a.outMu.Lock()
	defer a.outMu.Unlock()
	a.productsTable.SetRows(a.filteredProducts())
	a.productsTable.Render(a.out)
}
