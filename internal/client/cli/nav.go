package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/useraccount/internal/client/dispatch"
	"github.com/dmitrijs2005/useraccount/internal/client/notify"
	"github.com/dmitrijs2005/useraccount/internal/client/routes"
	"github.com/dmitrijs2005/useraccount/internal/common"
)

// Test seams for interactive input.
var (
	getSimpleText = GetSimpleText
	getPassword   = GetPassword
	confirmFn     = Confirm
)

// Open resolves path to a page and opens it.
func (a *App) Open(ctx context.Context, path string) error {
	return a.open(ctx, routes.Resolve(path))
}

func (a *App) open(ctx context.Context, p routes.Page) error {
	a.page = p
	fmt.Fprintf(a.out, "== %s ==\n", p)

	if p == routes.None {
		fmt.Fprintln(a.out, "Nothing to do on this page. Available pages:", pageList())
		return nil
	}

	if p.RequiresSession() && !a.LoggedIn(ctx) {
		a.apply(ctx, dispatch.SessionExpired())
		return nil
	}

	switch p {
	case routes.Profile:
		return a.ShowProfile(ctx)
	case routes.UserArea:
		if s, ok := a.auth.Current(ctx); ok {
			fmt.Fprintf(a.out, "Welcome, %s!\n", s.Username)
		}
	}
	return nil
}

// redirect opens p after the configured delay.
func (a *App) redirect(ctx context.Context, p routes.Page) error {
	if err := wait(ctx, a.config.RedirectDelay); err != nil {
		return err
	}
	return a.open(ctx, p)
}

// run submits the named form and turns any failure into its UI reaction.
// ok is true only when the request was sent and succeeded.
func (a *App) run(ctx context.Context, name string, op dispatch.Operation,
	validate func() bool, send func(context.Context) error) (ok bool, err error) {

	sent, err := a.forms[name].submit(ctx, validate, send)
	switch {
	case errors.Is(err, common.ErrBusy):
		a.toasts.Warn("Request In Progress", "Please wait for the current request to finish")
		return false, err
	case errors.Is(err, common.ErrNoActiveSession):
		a.apply(ctx, dispatch.SessionExpired())
		return false, err
	case err != nil:
		a.log.Warn(ctx, "request failed", "op", string(op), "err", err)
		a.apply(ctx, dispatch.Dispatch(op, err))
		return false, err
	}
	return sent, nil
}

// apply carries out a dispatcher decision.
func (a *App) apply(ctx context.Context, act dispatch.Action) {
	if act.ClearSession {
		if err := a.store.ClearActive(ctx); err != nil {
			a.log.Error(ctx, "failed to clear session", "err", err)
		}
	}

	switch act.Type {
	case dispatch.LogOnly:
		a.log.Warn(ctx, "ignored failure", "kind", string(act.Kind))
	case dispatch.ShowToast:
		a.toasts.Error(act.Title, act.Message)
	case dispatch.ShowModal:
		navigate := func() {
			if err := a.open(ctx, act.Navigate); err != nil {
				a.log.Warn(ctx, "navigation failed", "page", string(act.Navigate), "err", err)
			}
		}
		opts := notify.ModalOptions{ConfirmText: act.ConfirmText, OnConfirm: navigate}
		// A cleared session leaves nowhere to stay; closing navigates too.
		if act.ClearSession {
			opts.OnClose = navigate
		}
		id := a.modals.Show(act.Title, act.Message, opts)
		a.resolveModal(ctx, id)
	}
}

// resolveModal asks the user to pick one of the modal's actions.
func (a *App) resolveModal(ctx context.Context, id string) {
	if a.modals.HasConfirm(id) {
		yes, err := confirmFn(a.reader, a.modals.ConfirmText(id)+"?", a.out)
		switch {
		case err != nil:
			a.log.Debug(ctx, "modal input closed", "err", err)
			a.modals.Dismiss(id)
		case yes:
			a.modals.Confirm(id)
		default:
			a.modals.Dismiss(id)
		}
		return
	}

	if _, err := getSimpleText(a.reader, "Press Enter to close", a.out); err != nil {
		a.log.Debug(ctx, "modal input closed", "err", err)
	}
	a.modals.Dismiss(id)
}

// Logout ends the session. The local session is dropped even when the
// server call fails.
func (a *App) Logout(ctx context.Context) error {
	if !a.LoggedIn(ctx) {
		a.toasts.Info("Not Logged In", "There is no active session")
		return nil
	}

	if err := a.auth.Logout(ctx); err != nil {
		a.log.Warn(ctx, "logout failed", "err", err)
		a.apply(ctx, dispatch.Dispatch(dispatch.Logout, err))
	}
	a.toasts.Success("Success", "Logged out successfully!")
	return a.redirect(ctx, routes.Index)
}
