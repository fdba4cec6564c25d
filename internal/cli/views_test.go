package cli

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDashboard_RendersSeededAggregates(t *testing.T) {
	a, buf := newTestApp(t, &fakeBackend{})
	signIn(t, a)

	a.Navigate(context.Background(), ViewDashboard)

	out := output(a, buf)
	assert.Contains(t, out, "Total Users")
	assert.Contains(t, out, "12,847")
	assert.Contains(t, out, "+12.5%")
	assert.Contains(t, out, "-2.1%")
	assert.Contains(t, out, "Reviews over time:")
	assert.Contains(t, out, "Reviews by category:")
	assert.Contains(t, out, "Wireless Headphones Pro")
}

func TestPermissions_RendersRoleCardsAndReferenceTable(t *testing.T) {
	a, buf := newTestApp(t, &fakeBackend{})
	signIn(t, a)

	a.Navigate(context.Background(), ViewPermissions)

	out := output(a, buf)
	assert.Contains(t, out, "Administrator: Full platform access (4 users)")
	assert.Contains(t, out, "[x] users / write")
	assert.Contains(t, out, "All permissions:")

	// Moderator lacks master-data write.
	assert.Contains(t, out, "[-] master-data / write")
}

func TestDashboard_TopProductsTableSorts(t *testing.T) {
	a, buf := newTestApp(t, &fakeBackend{})
	signIn(t, a)
	ctx := context.Background()

	a.Navigate(ctx, ViewDashboard)
	a.handleSort("reviews") // ascending: fewest reviews first on page one

	out := output(a, buf)
	assert.Contains(t, out, "Coffee Maker Deluxe")
}
