package services

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/useraccount/internal/client/models"
	"github.com/dmitrijs2005/useraccount/internal/client/session"
	"github.com/dmitrijs2005/useraccount/internal/client/storage"
	"github.com/dmitrijs2005/useraccount/internal/logging"
	"github.com/stretchr/testify/require"
)

// fakeClient реализует client.Client для юнит-тестов сервисов.
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

func newStore(t *testing.T) session.Store {
	t.Helper()
	db, err := storage.InitDatabase(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	log := logging.Nop()
	return session.NewStore(db, log)
}
