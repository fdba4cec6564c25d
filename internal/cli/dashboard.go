package cli

import (
	"fmt"
	"strconv"

	"github.com/reviewdeck/adminctl/internal/models"
	"github.com/reviewdeck/adminctl/internal/table"
)

// dashboardData holds the pre-computed aggregates shown on the dashboard.
// The console displays them as-is; it computes nothing.
type dashboardData struct {
	Stats             []models.StatCard
	ReviewsOverTime   []models.ChartPoint
	ReviewsByCategory []models.ChartPoint
	TopProducts       []models.TopProduct
}

func topProductColumns() []table.Column[models.TopProduct] {
	return []table.Column[models.TopProduct]{
		{ID: "name", Title: "Product",
			Cell:      func(p models.TopProduct) string { return p.Name },
			SortValue: func(p models.TopProduct) any { return p.Name }},
		{ID: "reviews", Title: "Reviews",
			Cell:      func(p models.TopProduct) string { return strconv.Itoa(p.Reviews) },
			SortValue: func(p models.TopProduct) any { return p.Reviews }},
		{ID: "rating", Title: "Rating",
			Cell:      func(p models.TopProduct) string { return fmt.Sprintf("%.1f", p.Rating) },
			SortValue: func(p models.TopProduct) any { return p.Rating }},
	}
}

func (a *App) renderDashboard() {
	a.outMu.Lock()
	defer a.outMu.Unlock()

	for _, s := range a.dashboard.Stats {
		fmt.Fprintf(a.out, "%-14s %10s  %+.1f%% %s\n", s.Title, s.Value, s.Change, s.ChangeLabel)
	}

	fmt.Fprintln(a.out, "\nReviews over time:")
	for _, p := range a.dashboard.ReviewsOverTime {
		fmt.Fprintf(a.out, "  %-4s %6.0f reviews  avg %.1f\n", p.Name, p.Value, p.Rating)
	}

	fmt.Fprintln(a.out, "\nReviews by category:")
	for _, p := range a.dashboard.ReviewsByCategory {
		fmt.Fprintf(a.out, "  %-12s %6.0f\n", p.Name, p.Value)
	}

	fmt.Fprintln(a.out, "\nTop products:")
	a.topProductsTable.SetRows(a.dashboard.TopProducts)
	a.topProductsTable.Render(a.out)
}
