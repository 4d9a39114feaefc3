package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/useraccount/internal/client/dispatch"
	"github.com/dmitrijs2005/useraccount/internal/client/models"
	"github.com/dmitrijs2005/useraccount/internal/client/notify"
	"github.com/dmitrijs2005/useraccount/internal/client/validation"
	"github.com/dmitrijs2005/useraccount/internal/common"
)

// current returns the active session or shows the session-expired modal.
func (a *App) current(ctx context.Context) (models.Session, error) {
	s, ok := a.auth.Current(ctx)
	if !ok {
		a.apply(ctx, dispatch.SessionExpired())
		return models.Session{}, common.ErrNoActiveSession
	}
	return s, nil
}

func (a *App) printProfile(s models.Session) {
	fmt.Fprintf(a.out, "Username: %s\nEmail:    %s\n", s.Username, s.Email)
}

// printPasswordRequirements lists the password rule before a new password
// is typed.
func (a *App) printPasswordRequirements() {
	fmt.Fprintln(a.out, "Password requirements:")
	for _, r := range validation.PasswordRequirements {
		fmt.Fprintf(a.out, "  - %s\n", r)
	}
}

// ShowProfile prints the logged-in user's details.
func (a *App) ShowProfile(ctx context.Context) error {
	s, err := a.current(ctx)
	if err != nil {
		return err
	}
	a.printProfile(s)
	return nil
}

// ChangePassword opens the change-password dialog and submits it.
func (a *App) ChangePassword(ctx context.Context) error {
	if _, err := a.current(ctx); err != nil {
		return err
	}

	id := a.modals.Show("Change Password", "Enter your current password and a new one",
		notify.ModalOptions{ID: "change-password"})

	cur, err := getPassword(a.reader, "Current password", a.out)
	if err != nil {
		a.modals.Close(id)
		return err
	}
	defer common.WipeByteArray(cur)

	a.printPasswordRequirements()
	next, err := getPassword(a.reader, "New password", a.out)
	if err != nil {
		a.modals.Close(id)
		return err
	}
	defer common.WipeByteArray(next)

	current, newPassword := string(cur), string(next)
	ok, err := a.run(ctx, formPassword, dispatch.ProfileUpdate,
		func() bool {
			return a.validator.CheckDifferent(validation.Password, current, newPassword) &&
				a.validator.CheckPresence(validation.Password, current) &&
				a.validator.Validate(validation.Password, newPassword)
		},
		func(ctx context.Context) error {
			_, err := a.profile.ChangePassword(ctx, current, newPassword)
			return err
		})
	if !ok {
		a.modals.Close(id)
		return err
	}

	a.modals.CloseAll()
	a.toasts.Success("Success", "Password changed successfully")
	return nil
}

// ChangeEmail opens the change-email dialog and submits it.
func (a *App) ChangeEmail(ctx context.Context) error {
	s, err := a.current(ctx)
	if err != nil {
		return err
	}

	id := a.modals.Show("Change Email", "Current email: "+s.Email,
		notify.ModalOptions{ID: "change-email"})

	newEmail, err := getSimpleText(a.reader, "New email", a.out)
	if err != nil {
		a.modals.Close(id)
		return err
	}

	pw, err := getPassword(a.reader, "Password", a.out)
	if err != nil {
		a.modals.Close(id)
		return err
	}
	defer common.WipeByteArray(pw)
	password := string(pw)

	var updated models.Session
	ok, err := a.run(ctx, formEmail, dispatch.ProfileUpdate,
		func() bool {
			return a.validator.CheckPresence(validation.Password, password) &&
				a.validator.Validate(validation.Email, newEmail) &&
				a.validator.CheckDifferent(validation.Email, s.Email, newEmail)
		},
		func(ctx context.Context) error {
			var err error
			updated, err = a.profile.ChangeEmail(ctx, password, newEmail)
			return err
		})
	if !ok {
		a.modals.Close(id)
		return err
	}

	a.modals.CloseAll()
	a.toasts.Success("Success", "Email changed successfully")
	a.printProfile(updated)
	return nil
}
