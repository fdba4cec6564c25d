package cli

import (
	"fmt"

	"github.com/reviewdeck/adminctl/internal/models"
	"github.com/reviewdeck/adminctl/internal/table"
)

func permissionColumns() []table.Column[models.Permission] {
	return []table.Column[models.Permission]{
		{ID: "module", Title: "Module",
			Cell:      func(p models.Permission) string { return p.Module },
			SortValue: func(p models.Permission) any { return p.Module }},
		{ID: "action", Title: "Action",
			Cell:      func(p models.Permission) string { return p.Action },
			SortValue: func(p models.Permission) any { return p.Action }},
		{ID: "description", Title: "Description",
			Cell: func(p models.Permission) string { return p.Description }},
	}
}

// renderPermissions prints the role cards followed by the reference table of
// all permissions.
func (a *App) renderPermissions() {
	a.outMu.Lock()
	defer a.outMu.Unlock()

	for _, role := range a.roles {
		fmt.Fprintf(a.out, "%s: %s (%d users)\n", role.Name, role.Description, role.UserCount)
		for _, perm := range a.permissions {
			mark := "-"
			if role.HasPermission(perm.ID) {
				mark = "x"
			}
			fmt.Fprintf(a.out, "  [%s] %s / %s\n", mark, perm.Module, perm.Action)
		}
		fmt.Fprintln(a.out)
	}

	fmt.Fprintln(a.out, "All permissions:")
	a.permissionsTable.SetRows(a.permissions)
	a.permissionsTable.Render(a.out)
}
