package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/reviewdeck/adminctl/internal/models"
	"github.com/reviewdeck/adminctl/internal/table"
)

// Master-data tabs.
const (
	TabCategories = "categories"
	TabTags       = "tags"
	TabAttributes = "attributes"
)

func categoryColumns() []table.Column[models.Category] {
	return []table.Column[models.Category]{
		{ID: "name", Title: "Category",
			Cell:      func(c models.Category) string { return c.Name },
			SortValue: func(c models.Category) any { return c.Name }},
		{ID: "slug", Title: "Slug",
			Cell:      func(c models.Category) string { return c.Slug },
			SortValue: func(c models.Category) any { return c.Slug }},
		{ID: "products", Title: "Products",
			Cell:      func(c models.Category) string { return strconv.Itoa(c.ProductCount) },
			SortValue: func(c models.Category) any { return c.ProductCount }},
		{ID: "status", Title: "Status",
			Cell:      func(c models.Category) string { return c.Status },
			SortValue: func(c models.Category) any { return c.Status }},
	}
}

func masterDataColumns() []table.Column[models.MasterDataItem] {
	return []table.Column[models.MasterDataItem]{
		{ID: "name", Title: "Name",
			Cell:      func(m models.MasterDataItem) string { return m.Name },
			SortValue: func(m models.MasterDataItem) any { return m.Name }},
		{ID: "code", Title: "Code",
			Cell:      func(m models.MasterDataItem) string { return m.Code },
			SortValue: func(m models.MasterDataItem) any { return m.Code }},
		{ID: "usage", Title: "Usage",
			Cell:      func(m models.MasterDataItem) string { return strconv.Itoa(m.UsageCount) },
			SortValue: func(m models.MasterDataItem) any { return m.UsageCount }},
		{ID: "status", Title: "Status",
			Cell:      func(m models.MasterDataItem) string { return m.Status },
			SortValue: func(m models.MasterDataItem) any { return m.Status }},
	}
}

// fetchMasterData loads all three tabs concurrently. Each tab has its own
// list view and generation, so a stale response for one tab cannot clobber
// another, and re-entering the view supersedes everything outstanding.
func (a *App) fetchMasterData(ctx context.Context) {
	token := a.sessions.Token()
	a.printf("Loading master data...\n")

	catGen := a.categoriesView.Begin()
	go func() {
		items, err := a.backend.Categories(ctx, token)
		if a.categoriesView.Resolve(catGen, items, len(items), err) {
			a.renderMasterTab(TabCategories)
		}
	}()

	tagGen := a.tagsView.Begin()
	go func() {
		items, err := a.backend.Tags(ctx, token)
		if a.tagsView.Resolve(tagGen, items, len(items), err) {
			a.renderMasterTab(TabTags)
		}
	}()

	attrGen := a.attributesView.Begin()
	go func() {
		items, err := a.backend.Attributes(ctx, token)
		if a.attributesView.Resolve(attrGen, items, len(items), err) {
			a.renderMasterTab(TabAttributes)
		}
	}()
}

// switchMasterTab handles 'tab <name>' inside the master-data view. The tab
// field is written under the output lock: resolving fetches read it from
// their own goroutines to decide whether their tab is still the visible one.
func (a *App) switchMasterTab(name string) {
	switch name {
	case TabCategories, TabTags, TabAttributes:
		a.outMu.Lock()
		a.masterTab = name
		a.outMu.Unlock()
		a.renderMasterTab(name)
	default:
		a.printf("Usage: tab %s|%s|%s\n", TabCategories, TabTags, TabAttributes)
	}
}

func (a *App) renderMasterData() {
	a.renderMasterTab(a.masterTab)
}

// renderMasterTab draws the given tab if it is still the active one; a
// resolution for a background tab keeps its data but stays silent.
func (a *App) renderMasterTab(tab string) {
	a.outMu.Lock()
	defer a.outMu.Unlock()
	if a.masterTab != tab {
		return
	}

	switch tab {
	case TabTags:
		snap := a.tagsView.Snapshot()
		if snap.Err != nil {
			fmt.Fprintf(a.out, "Could not load tags: %s\n", snap.Err)
			return
		}
		a.tagsTable.SetRows(snap.Items)
		a.tagsTable.Render(a.out)
	case TabAttributes:
		snap := a.attributesView.Snapshot()
		if snap.Err != nil {
			fmt.Fprintf(a.out, "Could not load attributes: %s\n", snap.Err)
			return
		}
		a.attributesTable.SetRows(snap.Items)
		a.attributesTable.Render(a.out)
	default:
		snap := a.categoriesView.Snapshot()
		if snap.Err != nil {
			fmt.Fprintf(a.out, "Could not load categories: %s\n", snap.Err)
			return
		}
		a.categoriesTable.SetRows(snap.Items)
		a.categoriesTable.Render(a.out)
	}
}
