package cli

import (
	"context"

	"github.com/dmitrijs2005/useraccount/internal/client/dispatch"
	"github.com/dmitrijs2005/useraccount/internal/client/routes"
	"github.com/dmitrijs2005/useraccount/internal/client/validation"
	"github.com/dmitrijs2005/useraccount/internal/common"
)

// SubmitRegister reads the registration form and creates the account.
func (a *App) SubmitRegister(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Username", a.out)
	if err != nil {
		return err
	}

	email, err := getSimpleText(a.reader, "Email", a.out)
	if err != nil {
		return err
	}

	a.printPasswordRequirements()
	pw, err := getPassword(a.reader, "Password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(pw)
	password := string(pw)

	ok, err := a.run(ctx, formRegister, dispatch.Register,
		func() bool {
			return a.validator.Validate(validation.Username, username) &&
				a.validator.Validate(validation.Email, email) &&
				a.validator.Validate(validation.Password, password)
		},
		func(ctx context.Context) error {
			_, err := a.auth.Register(ctx, username, email, password)
			return err
		})
	if !ok {
		return err
	}

	a.toasts.Success("Success", "Registered successfully!")
	return a.redirect(ctx, routes.UserArea)
}
