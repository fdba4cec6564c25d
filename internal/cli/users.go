package cli

import (
	"context"
	"strconv"

	"github.com/reviewdeck/adminctl/internal/api"
	"github.com/reviewdeck/adminctl/internal/models"
	"github.com/reviewdeck/adminctl/internal/table"
)

func userColumns() []table.Column[models.UserRecord] {
	return []table.Column[models.UserRecord]{
		{ID: "name", Title: "Name",
			Cell:      func(u models.UserRecord) string { return u.Name },
			SortValue: func(u models.UserRecord) any { return u.Name }},
		{ID: "email", Title: "Email",
			Cell:      func(u models.UserRecord) string { return u.Email },
			SortValue: func(u models.UserRecord) any { return u.Email }},
		{ID: "role", Title: "Role",
			Cell:      func(u models.UserRecord) string { return u.Role },
			SortValue: func(u models.UserRecord) any { return u.Role }},
		{ID: "status", Title: "Status",
			Cell:      func(u models.UserRecord) string { return u.Status },
			SortValue: func(u models.UserRecord) any { return u.Status }},
		{ID: "joined", Title: "Joined",
			Cell:      func(u models.UserRecord) string { return u.JoinedAt },
			SortValue: func(u models.UserRecord) any { return u.JoinedAt }},
		{ID: "reviews", Title: "Reviews",
			Cell:      func(u models.UserRecord) string { return strconv.Itoa(u.ReviewCount) },
			SortValue: func(u models.UserRecord) any { return u.ReviewCount }},
	}
}

// fetchUsers starts one users fetch. The fetch runs on its own goroutine so
// the prompt stays responsive; the generation token taken before the call
// guarantees that only the newest request's response reaches the view.
func (a *App) fetchUsers(ctx context.Context) {
	gen := a.usersView.Begin()
	token := a.sessions.Token()
	search := a.userSearch

	a.printf("Loading users...\n")
	go func() {
		records, p, err := a.backend.ListUsers(ctx, token, api.UserListParams{Search: search})
		if a.usersView.Resolve(gen, records, p.Total, err) {
			a.renderUsers()
		}
	}()
}

// searchUsers updates the search text and refetches; the new request
// supersedes any fetch still in flight.
func (a *App) searchUsers(ctx context.Context, text string) {
	a.userSearch = text
	a.fetchUsers(ctx)
}

func (a *App) renderUsers() {
	snap := a.usersView.Snapshot()
	if snap.Err != nil {
		a.printf("Could not load users: %s\n", snap.Err)
		return
	}

	a.outMu.Lock()
	defer a.outMu.Unlock()
	a.usersTable.SetRows(snap.Items)
	a.usersTable.Render(a.out)
}
