package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// replIface defines the command surface the REPL needs to operate. The real
// App type satisfies this interface; tests can provide a lightweight stub.
type replIface interface {
	isSignedIn() bool
	Login(ctx context.Context) error
	Register(ctx context.Context) error
	Logout(ctx context.Context) error
	Navigate(ctx context.Context, name string)
	handleSort(columnID string)
	handlePage(forward bool)
	handlePageSize(arg string)
	handleTab(name string)
	handleSearch(ctx context.Context, text string)
	handleRefresh(ctx context.Context)
}

// runREPL reads a line from reader, parses the first token as the command,
// and dispatches to methods on 'a'. Unknown commands are reported back to
// the user. The loop exits on EOF, context cancellation, or when the user
// types "exit" or "quit".
//
// The reader is the same buffered reader the interactive prompts consume
// from, so a command followed by its prompt answers on piped input stays
// aligned.
//
// Commands:
//
//	Signed out:
//	  - help                  — show available commands
//	  - login                 — authenticate
//	  - register              — create an account
//	  - exit | quit           — leave the program
//
//	Signed in (additionally):
//	  - dashboard | users | products | master | permissions — open a view
//	  - sort <column>         — cycle the sort of a column (asc, desc, off)
//	  - next | prev           — page through the current table
//	  - size <n>              — change the page size
//	  - tab <name>            — switch master-data tab (categories, tags, attributes)
//	  - search [text]         — filter the current view; no text clears the filter
//	  - refresh               — re-fetch the current view
//	  - logout                — sign out
//
// Errors returned by command handlers are ignored here; handlers report
// their own failures. That keeps the loop resilient and focused on I/O.
func runREPL(ctx context.Context, a replIface, statusFn func() string, reader *bufio.Reader) {
	for {
		if ctx.Err() != nil {
			return
		}
		printlnFn(fmt.Sprintf("admin> %s > ", statusFn()))
		line, readErr := reader.ReadString('\n')
		if dispatchLine(ctx, a, line) {
			printlnFn("Bye!")
			return
		}
		if readErr != nil {
			return
		}
	}
}

// dispatchLine runs one command line; it reports true when the loop should
// stop.
func dispatchLine(ctx context.Context, a replIface, line string) bool {
	parts := strings.Fields(line)
	if len(parts) == 0 {
		return false
	}
	cmd := parts[0]

	switch cmd {
	case "help":
		if a.isSignedIn() {
			printlnFn("Views: dashboard, users, products, master, permissions")
			printlnFn("Table: sort <column>, next, prev, size <n>, tab <name>, search [text], refresh")
			printlnFn("Other: logout, exit")
		} else {
			printlnFn("Available commands: login, register, exit")
		}

	case "login":
		_ = a.Login(ctx)

	case "register":
		_ = a.Register(ctx)

	case "logout":
		_ = a.Logout(ctx)

	case ViewDashboard, ViewUsers, ViewProducts, ViewMasterData, ViewPermissions:
		a.Navigate(ctx, cmd)

	case "sort":
		if len(parts) < 2 {
			printlnFn("Usage: sort <column>")
			return false
		}
		a.handleSort(parts[1])

	case "next":
		a.handlePage(true)

	case "prev":
		a.handlePage(false)

	case "size":
		if len(parts) < 2 {
			printlnFn("Usage: size <n>")
			return false
		}
		a.handlePageSize(parts[1])

	case "tab":
		if len(parts) < 2 {
			printlnFn("Usage: tab <categories|tags|attributes>")
			return false
		}
		a.handleTab(parts[1])

	case "search":
		a.handleSearch(ctx, strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(line), "search")))

	case "refresh":
		a.handleRefresh(ctx)

	case "exit", "quit":
		return true

	default:
		printlnFn("Unknown command:", cmd)
	}
	return false
}

// isSignedIn reports whether a session is active.
func (a *App) isSignedIn() bool {
	return a.sessions.Authenticated()
}

// status renders the prompt segment: the signed-in username and the current
// view.
func (a *App) status() string {
	if cur, ok := a.sessions.Current(); ok {
		return fmt.Sprintf("%s @ %s", cur.User.Username, a.currentView)
	}
	return a.currentView
}

// handleTab switches the master-data tab; outside the master-data view the
// command has no target.
func (a *App) handleTab(name string) {
	if a.currentView != ViewMasterData {
		a.printf("Tabs only apply to the master view.\n")
		return
	}
	a.switchMasterTab(name)
}

// handleSearch applies 'search [text]' to the current view. Users are
// re-fetched with the new term; products are filtered locally.
func (a *App) handleSearch(ctx context.Context, text string) {
	switch a.currentView {
	case ViewUsers:
		a.searchUsers(ctx, text)
	case ViewProducts:
		a.searchProducts(text)
	default:
		a.printf("Search is available in the users and products views.\n")
	}
}

// handleRefresh re-runs the current view's fetch.
func (a *App) handleRefresh(ctx context.Context) {
	switch a.currentView {
	case ViewUsers:
		a.fetchUsers(ctx)
	case ViewMasterData:
		a.fetchMasterData(ctx)
	default:
		a.renderActive()
	}
}

func (a *App) runREPL(ctx context.Context) {
	runREPL(ctx, a, a.status, a.reader)
}
