package client

import (
	"errors"
	"fmt"
)

var (
	// ErrUnavailable wraps transport failures: refused connections, DNS
	// errors, timeouts.
	ErrUnavailable = errors.New("server unavailable")

	// ErrBadResponse marks a 2xx response whose body could not be decoded.
	ErrBadResponse = errors.New("unexpected response body")
)

// Kind is the closed set of failure categories the UI reacts to.
type Kind string

const (
	KindInvalidInput         Kind = "invalid_input"
	KindUserNotFound         Kind = "user_not_found"
	KindAuthenticationFailed Kind = "authentication_failed"
	KindUserAlreadyExists    Kind = "user_already_exists"
	KindEmailAlreadyExists   Kind = "email_already_exists"
	KindSessionNotFound      Kind = "session_not_found"
	KindSessionUserMismatch  Kind = "session_user_mismatch"
	KindUnknown              Kind = "unknown_error"
)

var knownKinds = map[string]Kind{
	string(KindInvalidInput):         KindInvalidInput,
	string(KindUserNotFound):         KindUserNotFound,
	string(KindAuthenticationFailed): KindAuthenticationFailed,
	string(KindUserAlreadyExists):    KindUserAlreadyExists,
	string(KindEmailAlreadyExists):   KindEmailAlreadyExists,
	string(KindSessionNotFound):      KindSessionNotFound,
	string(KindSessionUserMismatch):  KindSessionUserMismatch,
	string(KindUnknown):              KindUnknown,

	// older server builds
	"username_not_found":      KindUserNotFound,
	"invalid_password":        KindAuthenticationFailed,
	"username_already_exists": KindUserAlreadyExists,
}

// ParseKind normalises a server error string. Anything unrecognised,
// including the empty string, is KindUnknown.
func ParseKind(s string) Kind {
	if k, ok := knownKinds[s]; ok {
		return k
	}
	return KindUnknown
}

// IsSessionInvalid reports whether k means the server no longer accepts the
// client's session.
func (k Kind) IsSessionInvalid() bool {
	return k == KindSessionNotFound || k == KindSessionUserMismatch
}

// APIError is returned by every failed Client call.
type APIError struct {
	Kind Kind
	// Raw is the "error" string exactly as the server sent it.
	Raw string
	// Message is the server's human-readable "message", if any.
	Message string
	// Status is the HTTP status, 0 when no response was received.
	Status int
	Err    error
}

func (e *APIError) Error() string {
	switch {
	case e.Err != nil:
		return fmt.Sprintf("%s: %v", e.Kind, e.Err)
	case e.Status != 0:
		return fmt.Sprintf("%s (HTTP %d)", e.Kind, e.Status)
	default:
		return string(e.Kind)
	}
}

func (e *APIError) Unwrap() error {
	return e.Err
}

// KindOf extracts the Kind carried by err. A nil error yields "";
// any error that is not an *APIError yields KindUnknown.
func KindOf(err error) Kind {
	if err == nil {
		return ""
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Kind
	}
	return KindUnknown
}
