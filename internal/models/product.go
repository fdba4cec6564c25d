package models

// Product statuses shown in the products view.
const (
	ProductStatusActive   = "active"
	ProductStatusDraft    = "draft"
	ProductStatusArchived = "archived"
)

// Product is one row of the products view. There is no products backend;
// the collection is seeded client-side.
type Product struct {
	ID          string
	Name        string
	Category    string
	SKU         string
	Status      string
	ReviewCount int
	AvgRating   float64
	UpdatedAt   string
}
