package cli

import "github.com/reviewdeck/adminctl/internal/models"

// seed fills the collections that have no backing service: products, roles,
// permissions, and the dashboard aggregates. Rows keep insertion order until
// the user activates a sort.
func (a *App) seed() {
	a.products = []models.Product{
		{ID: "p1", Name: "Wireless Headphones Pro", Category: "Electronics", SKU: "WHP-001", Status: models.ProductStatusActive, ReviewCount: 2847, AvgRating: 4.8, UpdatedAt: "2025-06-12"},
		{ID: "p2", Name: "Smart Watch Series X", Category: "Electronics", SKU: "SWX-014", Status: models.ProductStatusActive, ReviewCount: 1923, AvgRating: 4.6, UpdatedAt: "2025-06-10"},
		{ID: "p3", Name: "Organic Skincare Set", Category: "Beauty", SKU: "OSS-230", Status: models.ProductStatusActive, ReviewCount: 1654, AvgRating: 4.9, UpdatedAt: "2025-06-08"},
		{ID: "p4", Name: "Running Shoes Ultra", Category: "Sports", SKU: "RSU-077", Status: models.ProductStatusDraft, ReviewCount: 1432, AvgRating: 4.5, UpdatedAt: "2025-05-30"},
		{ID: "p5", Name: "Coffee Maker Deluxe", Category: "Home", SKU: "CMD-405", Status: models.ProductStatusActive, ReviewCount: 1201, AvgRating: 4.7, UpdatedAt: "2025-05-22"},
		{ID: "p6", Name: "Yoga Mat Premium", Category: "Sports", SKU: "YMP-112", Status: models.ProductStatusArchived, ReviewCount: 987, AvgRating: 4.4, UpdatedAt: "2025-04-18"},
	}

	a.permissions = []models.Permission{
		{ID: "perm-users-read", Module: "users", Action: "read", Description: "View platform users"},
		{ID: "perm-users-write", Module: "users", Action: "write", Description: "Edit users and roles"},
		{ID: "perm-products-read", Module: "products", Action: "read", Description: "View the product catalog"},
		{ID: "perm-products-write", Module: "products", Action: "write", Description: "Edit products"},
		{ID: "perm-reviews-moderate", Module: "reviews", Action: "moderate", Description: "Approve or reject reviews"},
		{ID: "perm-master-write", Module: "master-data", Action: "write", Description: "Edit categories, tags, attributes"},
	}

	a.roles = []models.Role{
		{ID: "role-admin", Name: "Administrator", Description: "Full platform access", UserCount: 4,
			Permissions: []string{"perm-users-read", "perm-users-write", "perm-products-read", "perm-products-write", "perm-reviews-moderate", "perm-master-write"}},
		{ID: "role-moderator", Name: "Moderator", Description: "Review moderation and read access", UserCount: 12,
			Permissions: []string{"perm-users-read", "perm-products-read", "perm-reviews-moderate"}},
		{ID: "role-editor", Name: "Catalog Editor", Description: "Product and master-data maintenance", UserCount: 7,
			Permissions: []string{"perm-products-read", "perm-products-write", "perm-master-write"}},
	}

	a.dashboard = dashboardData{
		Stats: []models.StatCard{
			{ID: "1", Title: "Total Users", Value: "12,847", Change: 12.5, ChangeLabel: "vs last month"},
			{ID: "2", Title: "Total Reviews", Value: "48,291", Change: 8.2, ChangeLabel: "vs last month"},
			{ID: "3", Title: "Products", Value: "2,341", Change: -2.1, ChangeLabel: "vs last month"},
			{ID: "4", Title: "Avg. Rating", Value: "4.6", Change: 0.3, ChangeLabel: "vs last month"},
		},
		ReviewsOverTime: []models.ChartPoint{
			{Name: "Jan", Value: 3200, Rating: 4.5},
			{Name: "Feb", Value: 3800, Rating: 4.6},
			{Name: "Mar", Value: 4100, Rating: 4.5},
			{Name: "Apr", Value: 4500, Rating: 4.7},
			{Name: "May", Value: 5200, Rating: 4.6},
			{Name: "Jun", Value: 6100, Rating: 4.8},
		},
		ReviewsByCategory: []models.ChartPoint{
			{Name: "Electronics", Value: 12400},
			{Name: "Fashion", Value: 9800},
			{Name: "Home", Value: 7600},
			{Name: "Sports", Value: 5200},
			{Name: "Other", Value: 13191},
		},
		TopProducts: []models.TopProduct{
			{ID: "1", Name: "Wireless Headphones Pro", Reviews: 2847, Rating: 4.8},
			{ID: "2", Name: "Smart Watch Series X", Reviews: 1923, Rating: 4.6},
			{ID: "3", Name: "Organic Skincare Set", Reviews: 1654, Rating: 4.9},
			{ID: "4", Name: "Running Shoes Ultra", Reviews: 1432, Rating: 4.5},
			{ID: "5", Name: "Coffee Maker Deluxe", Reviews: 1201, Rating: 4.7},
		},
	}
}
