package cli

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reviewdeck/adminctl/internal/models"
)

func TestMasterData_RendersCategoriesTabFirst(t *testing.T) {
	b := &fakeBackend{
		categories: []models.Category{{ID: "c1", Name: "Electronics", Slug: "electronics", ProductCount: 120, Status: "active"}},
		tags:       []models.MasterDataItem{{ID: "t1", Type: "tag", Name: "Wireless", Code: "wireless", Status: "active", UsageCount: 40}},
	}
	a, buf := newTestApp(t, b)
	signIn(t, a)

	a.Navigate(context.Background(), ViewMasterData)

	require.Eventually(t, func() bool {
		return strings.Contains(output(a, buf), "Electronics")
	}, 2*time.Second, 10*time.Millisecond)

	// The tags fetch resolved in the background; its rows must not have been
	// drawn while the categories tab is active.
	assert.NotContains(t, output(a, buf), "Wireless")
}

func TestSwitchMasterTab_ShowsResolvedTabData(t *testing.T) {
	b := &fakeBackend{
		categories: []models.Category{{ID: "c1", Name: "Electronics", Slug: "electronics"}},
		tags:       []models.MasterDataItem{{ID: "t1", Type: "tag", Name: "Wireless", Code: "wireless", UsageCount: 40}},
	}
	a, buf := newTestApp(t, b)
	signIn(t, a)
	ctx := context.Background()

	a.Navigate(ctx, ViewMasterData)
	require.Eventually(t, func() bool {
		return strings.Contains(output(a, buf), "Electronics")
	}, 2*time.Second, 10*time.Millisecond)

	a.switchMasterTab(TabTags)

	require.Eventually(t, func() bool {
		return strings.Contains(output(a, buf), "Wireless")
	}, 2*time.Second, 10*time.Millisecond)
	assert.Equal(t, TabTags, a.masterTab)
}

func TestSwitchMasterTab_RejectsUnknownName(t *testing.T) {
	a, buf := newTestApp(t, &fakeBackend{})
	a.currentView = ViewMasterData

	a.switchMasterTab("banana")

	assert.Contains(t, output(a, buf), "Usage: tab")
	assert.Equal(t, TabCategories, a.masterTab)
}
