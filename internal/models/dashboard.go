package models

// StatCard is one pre-computed aggregate shown at the top of the dashboard.
// Change is a percentage relative to the previous period; negative means a
// decline.
type StatCard struct {
	ID          string
	Title       string
	Value       string
	Change      float64
	ChangeLabel string
}

// ChartPoint is a single named value of a dashboard series. The console
// lists the values textually; it does not draw charts.
type ChartPoint struct {
	Name   string
	Value  float64
	Rating float64
}

// TopProduct is one row of the dashboard's top-products table.
type TopProduct struct {
	ID      string
	Name    string
	Reviews int
	Rating  float64
}
