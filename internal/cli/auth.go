package cli

import (
	"bufio"
	"context"
	"io"
	"strings"

	"github.com/reviewdeck/adminctl/internal/common"
)

// Test seams for interactive input.
var (
	getSimpleText = GetSimpleText
	getPassword   = GetPassword
)

// Login is the sign-in entry point. Validation happens before any network
// call: both fields are required. A backend rejection or network failure
// leaves the session unchanged and prints a single message; on success the
// session is replaced atomically and the guard returns the user to the view
// that originally bounced them, else the dashboard.
func (a *App) Login(ctx context.Context) error {
	if a.sessions.Authenticated() {
		a.Navigate(ctx, ViewDashboard)
		return nil
	}

	username, password, err := a.readCredentials(a.reader, a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if strings.TrimSpace(username) == "" || len(password) == 0 {
		a.printf("%s\n", common.ErrFieldsRequired)
		return nil
	}

	user, token, err := a.backend.Login(ctx, username, string(password))
	if err != nil {
		a.printf("Sign in failed: %s\n", err)
		return err
	}

	if err := a.sessions.SignIn(user, token); err != nil {
		a.log.Warn(ctx, "session persist failed", "err", err)
	}
	a.printf("Signed in as %s.\n", user.Username)
	a.afterAuth(ctx)
	return nil
}

// Register is the sign-up entry point. On top of the sign-in validation it
// confirms the password; a mismatch is a local validation error and makes no
// network call. A successful registration signs the user in directly.
func (a *App) Register(ctx context.Context) error {
	if a.sessions.Authenticated() {
		a.Navigate(ctx, ViewDashboard)
		return nil
	}

	username, password, err := a.readCredentials(a.reader, a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if strings.TrimSpace(username) == "" || len(password) == 0 {
		a.printf("%s\n", common.ErrFieldsRequired)
		return nil
	}

	confirm, err := getPassword("Confirm password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(confirm)

	if string(password) != string(confirm) {
		a.printf("%s\n", common.ErrPasswordMismatch)
		return nil
	}

	user, token, err := a.backend.Register(ctx, username, string(password))
	if err != nil {
		a.printf("Sign up failed: %s\n", err)
		return err
	}

	if err := a.sessions.SignIn(user, token); err != nil {
		a.log.Warn(ctx, "session persist failed", "err", err)
	}
	a.printf("Account created. Signed in as %s.\n", user.Username)
	a.afterAuth(ctx)
	return nil
}

// Logout clears the session, resets every list view, and returns to sign-in.
func (a *App) Logout(ctx context.Context) error {
	a.sessions.SignOut()
	a.usersView.Reset()
	a.categoriesView.Reset()
	a.tagsView.Reset()
	a.attributesView.Reset()
	a.userSearch = ""
	a.productSearch = ""
	a.pendingView = ""
	a.printf("Signed out.\n")
	a.Navigate(ctx, ViewSignIn)
	return nil
}

func (a *App) readCredentials(reader *bufio.Reader, w io.Writer) (string, []byte, error) {
	username, err := getSimpleText(reader, "Enter username", w)
	if err != nil {
		return "", nil, err
	}
	password, err := getPassword("Enter password", w)
	if err != nil {
		return "", nil, err
	}
	return username, password, nil
}
