package cli

import (
	"context"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/dmitrijs2005/useraccount/internal/client/dispatch"
	"github.com/dmitrijs2005/useraccount/internal/client/models"
	"github.com/dmitrijs2005/useraccount/internal/client/notify"
)

// ListUsers fetches all users and shows them in a modal.
func (a *App) ListUsers(ctx context.Context) error {
	var users []models.User
	ok, err := a.run(ctx, formUsers, dispatch.ListUsers,
		func() bool { return true },
		func(ctx context.Context) error {
			var err error
			users, err = a.users.List(ctx)
			return err
		})
	if !ok {
		return err
	}

	id := a.modals.Show("Users List", usersBody(users), notify.ModalOptions{ID: "users-list"})
	a.resolveModal(ctx, id)
	return nil
}

func usersBody(users []models.User) string {
	if len(users) == 0 {
		return "No users found"
	}
	lines := make([]string, 0, len(users))
	for _, u := range users {
		lines = append(lines, userLine(u))
	}
	return strings.Join(lines, "\n")
}

// userLine renders one user as "[J] joe <joe@example.com> Registered User".
func userLine(u models.User) string {
	r, _ := utf8.DecodeRuneInString(u.Username)
	if r == utf8.RuneError {
		r = '?'
	}
	return fmt.Sprintf("[%c] %s <%s> Registered User", unicode.ToUpper(r), u.Username, u.Email)
}
