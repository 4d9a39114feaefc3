package cli

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/useraccount/internal/client/config"
	"github.com/dmitrijs2005/useraccount/internal/client/models"
	"github.com/dmitrijs2005/useraccount/internal/client/notify"
	"github.com/dmitrijs2005/useraccount/internal/client/session"
	"github.com/dmitrijs2005/useraccount/internal/client/storage"
	"github.com/dmitrijs2005/useraccount/internal/logging"
)

// fakeClient реализует client.Client с заранее заданными ответами.
type fakeClient struct {
	Calls []string

	LoginRet    models.User
	LoginErr    error
	RegisterRet models.User
	RegisterErr error
	LogoutErr   error
	ListRet     []models.User
	ListErr     error
	PasswordRet models.User
	PasswordErr error
	EmailRet    models.User
	EmailErr    error

	// block, when set, holds ListUsers until it is closed.
	block   chan struct{}
	entered chan struct{}

	LastCredentials models.Credentials
	LastNewUser     models.NewUser
	LastID          models.UserID
	LastCurrent     string
	LastNext        string
}

func (f *fakeClient) Login(_ context.Context, c models.Credentials) (models.User, error) {
	f.Calls = append(f.Calls, "login")
	f.LastCredentials = c
	return f.LoginRet, f.LoginErr
}

func (f *fakeClient) Register(_ context.Context, u models.NewUser) (models.User, error) {
	f.Calls = append(f.Calls, "register")
	f.LastNewUser = u
	return f.RegisterRet, f.RegisterErr
}

func (f *fakeClient) Logout(context.Context) (models.Message, error) {
	f.Calls = append(f.Calls, "logout")
	return models.Message{Message: "Logged out successfully"}, f.LogoutErr
}

func (f *fakeClient) ListUsers(context.Context) ([]models.User, error) {
	f.Calls = append(f.Calls, "list")
	if f.block != nil {
		close(f.entered)
		<-f.block
	}
	return f.ListRet, f.ListErr
}

func (f *fakeClient) ChangePassword(_ context.Context, id models.UserID, current, next string) (models.User, error) {
	f.Calls = append(f.Calls, "password")
	f.LastID, f.LastCurrent, f.LastNext = id, current, next
	return f.PasswordRet, f.PasswordErr
}

func (f *fakeClient) ChangeEmail(_ context.Context, id models.UserID, password, email string) (models.User, error) {
	f.Calls = append(f.Calls, "email")
	f.LastID, f.LastCurrent, f.LastNext = id, password, email
	return f.EmailRet, f.EmailErr
}

// answers feeds the input seams in order.
type answers struct {
	text      []string
	passwords []string
	confirms  []bool
	prompts   []string
}

func stubInput(t *testing.T, a *answers) {
	t.Helper()
	origText, origPw, origConfirm := getSimpleText, getPassword, confirmFn
	t.Cleanup(func() {
		getSimpleText, getPassword, confirmFn = origText, origPw, origConfirm
	})

	getSimpleText = func(_ *bufio.Reader, prompt string, _ io.Writer) (string, error) {
		a.prompts = append(a.prompts, prompt)
		if len(a.text) == 0 {
			return "", io.EOF
		}
		v := a.text[0]
		a.text = a.text[1:]
		return v, nil
	}
	getPassword = func(_ *bufio.Reader, prompt string, _ io.Writer) ([]byte, error) {
		a.prompts = append(a.prompts, prompt)
		if len(a.passwords) == 0 {
			return nil, io.EOF
		}
		v := a.passwords[0]
		a.passwords = a.passwords[1:]
		return []byte(v), nil
	}
	confirmFn = func(_ *bufio.Reader, prompt string, _ io.Writer) (bool, error) {
		a.prompts = append(a.prompts, prompt)
		if len(a.confirms) == 0 {
			return false, io.EOF
		}
		v := a.confirms[0]
		a.confirms = a.confirms[1:]
		return v, nil
	}
}

func testConfig() *config.Config {
	c := &config.Config{}
	c.LoadDefaults()
	c.RedirectDelay = 0
	c.ToastDuration = 0
	return c
}

func newTestApp(t *testing.T) (*App, *fakeClient, *bytes.Buffer) {
	t.Helper()
	db, err := storage.InitDatabase(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	log := logging.Nop()
	fc := &fakeClient{}
	out := &bytes.Buffer{}
	a := newApp(testConfig(), log, fc, session.NewStore(db, log), out, bufio.NewReader(strings.NewReader("")))
	t.Cleanup(func() { _ = a.Close() })
	return a, fc, out
}

var joe = models.User{ID: "7", Username: "joe", Email: "joe@example.com"}

func login(t *testing.T, a *App, u models.User) {
	t.Helper()
	require.NoError(t, a.store.SetActive(context.Background(), models.NewSession(u)))
}

func toastTitles(a *App) []string {
	var titles []string
	for _, t := range a.toasts.Visible() {
		titles = append(titles, t.Title)
	}
	return titles
}

func toastMessages(a *App, level notify.Level) []string {
	var msgs []string
	for _, t := range a.toasts.Visible() {
		if t.Level == level {
			msgs = append(msgs, t.Message)
		}
	}
	return msgs
}
