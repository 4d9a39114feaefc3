// Package dispatch decides how the UI reacts to a failed API call. It holds
// no state: the same operation and error always give the same Action.
package dispatch

import (
	"fmt"

	"github.com/dmitrijs2005/useraccount/internal/client/client"
	"github.com/dmitrijs2005/useraccount/internal/client/routes"
)

// Operation names the user action whose request failed.
type Operation string

const (
	Login         Operation = "login"
	Register      Operation = "register"
	ProfileUpdate Operation = "profile_update"
	ListUsers     Operation = "list_users"
	Logout        Operation = "logout"
)

type ActionType int

const (
	// ShowToast shows an error toast.
	ShowToast ActionType = iota
	// ShowModal shows a modal whose confirm action navigates to Navigate.
	ShowModal
	// LogOnly records the failure without telling the user.
	LogOnly
)

func (t ActionType) String() string {
	switch t {
	case ShowToast:
		return "toast"
	case ShowModal:
		return "modal"
	case LogOnly:
		return "log"
	default:
		return fmt.Sprintf("ActionType(%d)", int(t))
	}
}

// Action is the UI response to a failure.
type Action struct {
	Type        ActionType
	Title       string
	Message     string
	ConfirmText string
	Navigate    routes.Page
	// ClearSession asks the caller to drop the local session.
	ClearSession bool
	Kind         client.Kind
}

const (
	msgLoginFailed    = "Login unsuccessful - please try again or register as a new user"
	msgSessionExpired = "Your session has expired - please log in again to continue"
	msgUnsuccessful   = "Authentication unsuccessful - please try again"
	msgInvalidInput   = "Invalid input provided - please try again"
	msgDefault        = "Something went wrong - please try again"
)

func alreadyExists(field string) string {
	return fmt.Sprintf("The requested %s already exists - please try a different %s", field, field)
}

// SessionExpired is the modal shown when the session is gone, whether the
// server said so or the local store is empty.
func SessionExpired() Action {
	return Action{
		Type:         ShowModal,
		Title:        "Session Expired",
		Message:      msgSessionExpired,
		ConfirmText:  "Log In",
		Navigate:     routes.Login,
		ClearSession: true,
	}
}

// Generic is the fallback toast for anything without a dedicated reaction.
func Generic() Action {
	return Action{Type: ShowToast, Title: "Oops!", Message: msgDefault}
}

// Dispatch maps a failed op to its Action.
func Dispatch(op Operation, err error) Action {
	kind := client.KindOf(err)
	a := decide(op, kind)
	a.Kind = kind
	return a
}

func decide(op Operation, kind client.Kind) Action {
	if op == Logout {
		return Action{Type: LogOnly, ClearSession: true}
	}

	switch op {
	case Login:
		switch kind {
		case client.KindUserNotFound, client.KindAuthenticationFailed:
			return Action{
				Type:        ShowModal,
				Title:       "Login Failed",
				Message:     msgLoginFailed,
				ConfirmText: "Register",
				Navigate:    routes.Register,
			}
		}

	case Register:
		switch kind {
		case client.KindUserAlreadyExists:
			return Action{
				Type:        ShowModal,
				Title:       "Registration Failed",
				Message:     alreadyExists("username"),
				ConfirmText: "Log In",
				Navigate:    routes.Login,
			}
		case client.KindEmailAlreadyExists:
			return Action{Type: ShowToast, Title: "Email Already Exists", Message: alreadyExists("email")}
		}

	case ProfileUpdate:
		switch {
		case kind.IsSessionInvalid():
			return SessionExpired()
		case kind == client.KindAuthenticationFailed:
			return Action{Type: ShowToast, Title: "Invalid Password", Message: msgUnsuccessful}
		case kind == client.KindUserAlreadyExists:
			return Action{Type: ShowToast, Title: "Username Already Exists", Message: alreadyExists("username")}
		case kind == client.KindEmailAlreadyExists:
			return Action{Type: ShowToast, Title: "Email Already Exists", Message: alreadyExists("email")}
		}

	case ListUsers:
		if kind.IsSessionInvalid() {
			return SessionExpired()
		}
	}

	if kind == client.KindInvalidInput {
		return Action{Type: ShowToast, Title: "Invalid Input", Message: msgInvalidInput}
	}
	return Generic()
}
