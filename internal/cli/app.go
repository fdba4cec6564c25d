// Package cli implements the interactive admin console: a REPL whose
// commands navigate between views (dashboard, users, products, master data,
// permissions) and drive the table interactions within them. Access to every
// view except sign-in/sign-up is gated by the session store.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"sync"

	"github.com/reviewdeck/adminctl/internal/api"
	"github.com/reviewdeck/adminctl/internal/config"
	"github.com/reviewdeck/adminctl/internal/listview"
	"github.com/reviewdeck/adminctl/internal/logging"
	"github.com/reviewdeck/adminctl/internal/models"
	"github.com/reviewdeck/adminctl/internal/session"
	"github.com/reviewdeck/adminctl/internal/table"
)

// backend defines the API surface the console needs. The real api.Client
// satisfies this interface; tests provide a lightweight fake.
type backend interface {
	Login(ctx context.Context, username, password string) (session.User, string, error)
	Register(ctx context.Context, username, password string) (session.User, string, error)
	ListUsers(ctx context.Context, token string, params api.UserListParams) ([]models.UserRecord, api.Pagination, error)
	Categories(ctx context.Context, token string) ([]models.Category, error)
	Tags(ctx context.Context, token string) ([]models.MasterDataItem, error)
	Attributes(ctx context.Context, token string) ([]models.MasterDataItem, error)
}

// App is the console application state: the session store, one list view
// and table model per entity, and the navigation state of the route guard.
type App struct {
	cfg      *config.Config
	log      logging.Logger
	sessions *session.Store
	backend  backend
	reader   *bufio.Reader

	// outMu serializes console output: fetch resolutions render from their
	// own goroutines.
	outMu sync.Mutex
	out   io.Writer

	currentView string
	pendingView string // view remembered by the route guard for post-login return

	// Server-backed list views.
	usersView      listview.View[models.UserRecord]
	categoriesView listview.View[models.Category]
	tagsView       listview.View[models.MasterDataItem]
	attributesView listview.View[models.MasterDataItem]

	// Client-seeded collections.
	products    []models.Product
	roles       []models.Role
	permissions []models.Permission
	dashboard   dashboardData

	userSearch    string
	productSearch string
	masterTab     string

	usersTable       *table.Model[models.UserRecord]
	productsTable    *table.Model[models.Product]
	categoriesTable  *table.Model[models.Category]
	tagsTable        *table.Model[models.MasterDataItem]
	attributesTable  *table.Model[models.MasterDataItem]
	permissionsTable *table.Model[models.Permission]
	topProductsTable *table.Model[models.TopProduct]
}

// NewApp wires the console against the given backend and session store.
func NewApp(cfg *config.Config, log logging.Logger, sessions *session.Store, b backend) (*App, error) {
	a := &App{
		cfg:       cfg,
		log:       log.With("component", "cli"),
		sessions:  sessions,
		backend:   b,
		reader:    bufio.NewReader(os.Stdin),
		out:       os.Stdout,
		masterTab: TabCategories,
	}
	a.seed()

	if err := a.buildTables(); err != nil {
		return nil, err
	}
	return a, nil
}

// buildTables constructs one table model per list view from its column
// schema.
func (a *App) buildTables() error {
	var err error

	a.usersTable, err = table.NewModel(userColumns(), a.cfg.DefaultPageSize, nil)
	if err != nil {
		return fmt.Errorf("users table: %w", err)
	}
	a.productsTable, err = table.NewModel(productColumns(), a.cfg.DefaultPageSize, nil)
	if err != nil {
		return fmt.Errorf("products table: %w", err)
	}
	a.categoriesTable, err = table.NewModel(categoryColumns(), a.cfg.DefaultPageSize, nil)
	if err != nil {
		return fmt.Errorf("categories table: %w", err)
	}
	a.tagsTable, err = table.NewModel(masterDataColumns(), a.cfg.DefaultPageSize, nil)
	if err != nil {
		return fmt.Errorf("tags table: %w", err)
	}
	a.attributesTable, err = table.NewModel(masterDataColumns(), a.cfg.DefaultPageSize, nil)
	if err != nil {
		return fmt.Errorf("attributes table: %w", err)
	}
	a.permissionsTable, err = table.NewModel(permissionColumns(), a.cfg.DefaultPageSize, nil)
	if err != nil {
		return fmt.Errorf("permissions table: %w", err)
	}
	a.topProductsTable, err = table.NewModel(topProductColumns(), 5, []int{5, 10})
	if err != nil {
		return fmt.Errorf("top products table: %w", err)
	}
	return nil
}

// Run starts the console: rehydrated sessions land on the dashboard,
// everyone else on sign-in.
func (a *App) Run(ctx context.Context) {
	a.printf("Experience Review Admin (type 'help' for commands)\n")
	if a.sessions.Authenticated() {
		if cur, ok := a.sessions.Current(); ok {
			a.printf("Welcome back, %s.\n", cur.User.Username)
		}
		a.Navigate(ctx, ViewDashboard)
	} else {
		a.Navigate(ctx, ViewSignIn)
	}
	a.runREPL(ctx)
}

// printf writes to the console output under the output lock.
func (a *App) printf(format string, args ...any) {
	a.outMu.Lock()
	defer a.outMu.Unlock()
	fmt.Fprintf(a.out, format, args...)
}

// tableControls is the type-independent slice of a table model's interface
// needed by the shared sub-command dispatch.
type tableControls interface {
	ToggleSort(string)
	NextPage()
	PrevPage()
	SetPageSize(int) error
	PageSizeOptions() []int
	Render(io.Writer)
}

// activeTable returns the table model of the current view, or nil when the
// current view has no table focus.
func (a *App) activeTable() tableControls {
	switch a.currentView {
	case ViewUsers:
		return a.usersTable
	case ViewProducts:
		return a.productsTable
	case ViewMasterData:
		switch a.masterTab {
		case TabTags:
			return a.tagsTable
		case TabAttributes:
			return a.attributesTable
		default:
			return a.categoriesTable
		}
	case ViewPermissions:
		return a.permissionsTable
	case ViewDashboard:
		return a.topProductsTable
	default:
		return nil
	}
}

// handleSort applies 'sort <column>' to the current view's table. Table
// models are shared with fetch resolutions running on their own goroutines,
// so every mutation happens under the output lock.
func (a *App) handleSort(columnID string) {
	t := a.activeTable()
	if t == nil {
		a.printf("No table in this view.\n")
		return
	}
	a.outMu.Lock()
	defer a.outMu.Unlock()
	t.ToggleSort(columnID)
	t.Render(a.out)
}

// handlePage applies 'next' / 'prev'.
func (a *App) handlePage(forward bool) {
	t := a.activeTable()
	if t == nil {
		a.printf("No table in this view.\n")
		return
	}
	a.outMu.Lock()
	defer a.outMu.Unlock()
	if forward {
		t.NextPage()
	} else {
		t.PrevPage()
	}
	t.Render(a.out)
}

// handlePageSize applies 'size <n>'.
func (a *App) handlePageSize(arg string) {
	t := a.activeTable()
	if t == nil {
		a.printf("No table in this view.\n")
		return
	}
	n, err := strconv.Atoi(arg)
	if err != nil {
		a.printf("Usage: size <n> (one of %v)\n", t.PageSizeOptions())
		return
	}
	a.outMu.Lock()
	defer a.outMu.Unlock()
	if err := t.SetPageSize(n); err != nil {
		fmt.Fprintf(a.out, "Page size must be one of %v.\n", t.PageSizeOptions())
		return
	}
	t.Render(a.out)
}

// renderActive redraws the current view's table under the output lock.
func (a *App) renderActive() {
	t := a.activeTable()
	if t == nil {
		return
	}
	a.outMu.Lock()
	defer a.outMu.Unlock()
	t.Render(a.out)
}
