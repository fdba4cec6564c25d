package cli

import (
	"bufio"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reviewdeck/adminctl/internal/session"
)

func stubInputs(t *testing.T, username string, passwords ...[]byte) {
	t.Helper()
	origST, origGP := getSimpleText, getPassword
	getSimpleText = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) {
		return username, nil
	}
	i := 0
	getPassword = func(_ string, _ io.Writer) ([]byte, error) {
		pw := passwords[i]
		if i < len(passwords)-1 {
			i++
		}
		return append([]byte(nil), pw...), nil
	}
	t.Cleanup(func() {
		getSimpleText = origST
		getPassword = origGP
	})
}

func TestLogin_Success(t *testing.T) {
	b := &fakeBackend{loginUser: session.User{ID: "u1", Username: "alice"}, loginToken: "tok"}
	a, buf := newTestApp(t, b)
	stubInputs(t, "alice", []byte("secret"))

	require.NoError(t, a.Login(context.Background()))

	assert.True(t, a.sessions.Authenticated())
	assert.Equal(t, ViewDashboard, a.currentView)
	assert.Contains(t, output(a, buf), "Signed in as alice")
	assert.Equal(t, 1, b.loginCalls)
}

func TestLogin_ReturnsToGuardedView(t *testing.T) {
	b := &fakeBackend{loginUser: session.User{ID: "u1", Username: "alice"}, loginToken: "tok"}
	a, _ := newTestApp(t, b)
	stubInputs(t, "alice", []byte("secret"))
	ctx := context.Background()

	a.Navigate(ctx, ViewPermissions)
	require.Equal(t, ViewSignIn, a.currentView)

	require.NoError(t, a.Login(ctx))

	assert.Equal(t, ViewPermissions, a.currentView)
}

func TestLogin_EmptyFieldsSkipNetwork(t *testing.T) {
	tests := []struct {
		name     string
		username string
		password []byte
	}{
		{"empty username", "", []byte("secret")},
		{"blank username", "   ", []byte("secret")},
		{"empty password", "alice", []byte{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := &fakeBackend{}
			a, buf := newTestApp(t, b)
			stubInputs(t, tt.username, tt.password)

			require.NoError(t, a.Login(context.Background()))

			assert.Equal(t, 0, b.loginCalls)
			assert.False(t, a.sessions.Authenticated())
			assert.Contains(t, output(a, buf), "username and password are required")
		})
	}
}

func TestLogin_BackendFailureLeavesSessionUnchanged(t *testing.T) {
	b := &fakeBackend{loginErr: errors.New("Invalid credentials")}
	a, buf := newTestApp(t, b)
	stubInputs(t, "alice", []byte("wrong"))

	err := a.Login(context.Background())

	require.Error(t, err)
	assert.False(t, a.sessions.Authenticated())
	assert.Contains(t, output(a, buf), "Sign in failed: Invalid credentials")
}

func TestLogin_WhenAuthenticatedGoesToDashboard(t *testing.T) {
	b := &fakeBackend{}
	a, _ := newTestApp(t, b)
	signIn(t, a)

	require.NoError(t, a.Login(context.Background()))

	assert.Equal(t, ViewDashboard, a.currentView)
	assert.Equal(t, 0, b.loginCalls)
}

func TestRegister_Success(t *testing.T) {
	b := &fakeBackend{loginUser: session.User{ID: "u2", Username: "bob"}, loginToken: "tok"}
	a, buf := newTestApp(t, b)
	stubInputs(t, "bob", []byte("secret"))

	require.NoError(t, a.Register(context.Background()))

	assert.True(t, a.sessions.Authenticated())
	assert.Equal(t, 1, b.registerCalls)
	assert.Contains(t, output(a, buf), "Account created. Signed in as bob")
}

func TestRegister_PasswordMismatchSkipsNetwork(t *testing.T) {
	b := &fakeBackend{}
	a, buf := newTestApp(t, b)
	stubInputs(t, "bob", []byte("secret"), []byte("different"))

	require.NoError(t, a.Register(context.Background()))

	assert.Equal(t, 0, b.registerCalls)
	assert.False(t, a.sessions.Authenticated())
	assert.Contains(t, output(a, buf), "passwords do not match")
}

func TestLogout_ClearsSessionAndState(t *testing.T) {
	a, buf := newTestApp(t, &fakeBackend{})
	signIn(t, a)
	a.userSearch = "smith"
	a.pendingView = ViewUsers

	require.NoError(t, a.Logout(context.Background()))

	assert.False(t, a.sessions.Authenticated())
	assert.Empty(t, a.userSearch)
	assert.Empty(t, a.pendingView)
	assert.Equal(t, ViewSignIn, a.currentView)
	assert.Contains(t, output(a, buf), "Signed out")
}
