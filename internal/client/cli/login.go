package cli

import (
	"context"

	"github.com/dmitrijs2005/useraccount/internal/client/dispatch"
	"github.com/dmitrijs2005/useraccount/internal/client/routes"
	"github.com/dmitrijs2005/useraccount/internal/client/validation"
	"github.com/dmitrijs2005/useraccount/internal/common"
)

// SubmitLogin reads the login form and logs in.
func (a *App) SubmitLogin(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Username", a.out)
	if err != nil {
		return err
	}

	pw, err := getPassword(a.reader, "Password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(pw)
	password := string(pw)

	ok, err := a.run(ctx, formLogin, dispatch.Login,
		func() bool {
			return a.validator.Validate(validation.Username, username) &&
				a.validator.CheckPresence(validation.Password, password)
		},
		func(ctx context.Context) error {
			_, err := a.auth.Login(ctx, username, password)
			return err
		})
	if !ok {
		return err
	}

	a.toasts.Success("Success", "Logged in successfully!")
	return a.redirect(ctx, routes.UserArea)
}
