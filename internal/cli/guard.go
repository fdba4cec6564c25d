package cli

import "context"

// View names double as the console's navigation commands.
const (
	ViewSignIn      = "sign-in"
	ViewSignUp      = "sign-up"
	ViewDashboard   = "dashboard"
	ViewUsers       = "users"
	ViewProducts    = "products"
	ViewMasterData  = "master"
	ViewPermissions = "permissions"
)

// protectedViews are reachable only with an authenticated session.
var protectedViews = map[string]bool{
	ViewDashboard:   true,
	ViewUsers:       true,
	ViewProducts:    true,
	ViewMasterData:  true,
	ViewPermissions: true,
}

// Navigate is the route guard. Protected views require an authenticated
// session; an unauthenticated attempt remembers the requested view and lands
// on sign-in so a later successful sign-in can return there. The entry
// points themselves redirect away when already authenticated, and unknown
// view names fall back to the dashboard or sign-in depending on session
// state.
func (a *App) Navigate(ctx context.Context, name string) {
	known := protectedViews[name] || name == ViewSignIn || name == ViewSignUp
	if !known {
		if a.sessions.Authenticated() {
			name = ViewDashboard
		} else {
			name = ViewSignIn
		}
	}

	if protectedViews[name] && !a.sessions.Authenticated() {
		a.pendingView = name
		a.switchTo(ctx, ViewSignIn)
		a.printf("Sign in to view %s.\n", name)
		return
	}

	if (name == ViewSignIn || name == ViewSignUp) && a.sessions.Authenticated() {
		a.switchTo(ctx, ViewDashboard)
		return
	}

	a.switchTo(ctx, name)
}

// afterAuth redirects to the view that originally triggered the guard, if
// any, else to the default landing view.
func (a *App) afterAuth(ctx context.Context) {
	to := a.pendingView
	a.pendingView = ""
	if to == "" {
		to = ViewDashboard
	}
	a.Navigate(ctx, to)
}

// switchTo leaves the current view, activates the new one, and runs its
// entry hook.
func (a *App) switchTo(ctx context.Context, name string) {
	if a.currentView == name {
		a.enter(ctx, name)
		return
	}
	a.leave(a.currentView)
	a.currentView = name
	a.enter(ctx, name)
}

// leave resets the list state owned by the view being left, so a response
// to any still-outstanding fetch is dropped on arrival.
func (a *App) leave(name string) {
	switch name {
	case ViewUsers:
		a.usersView.Reset()
		a.userSearch = ""
	case ViewMasterData:
		a.categoriesView.Reset()
		a.tagsView.Reset()
		a.attributesView.Reset()
	case ViewProducts:
		a.productSearch = ""
	}
}

// enter triggers the view's data load or renders its seeded content.
func (a *App) enter(ctx context.Context, name string) {
	switch name {
	case ViewSignIn:
		a.printf("Sign in with 'login' (or create an account with 'register').\n")
	case ViewSignUp:
		a.printf("Create an account with 'register'.\n")
	case ViewDashboard:
		a.renderDashboard()
	case ViewUsers:
		a.fetchUsers(ctx)
	case ViewProducts:
		a.renderProducts()
	case ViewMasterData:
		a.fetchMasterData(ctx)
	case ViewPermissions:
		a.renderPermissions()
	}
}
