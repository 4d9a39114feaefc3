// Package models holds the data exchanged with the user-account API and the
// locally stored session record.
package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
)

// ErrInvalidUserID is returned when an id is neither a JSON number nor a
// JSON string.
var ErrInvalidUserID = errors.New("invalid user id")

// UserID is the server-assigned identifier. The server emits numbers, but
// the client treats the value as opaque and keeps its textual form.
type UserID string

func (id UserID) String() string { return string(id) }

// IsZero reports whether no id has been assigned.
func (id UserID) IsZero() bool { return id == "" }

// MarshalJSON writes numeric ids as JSON numbers so they round-trip unchanged.
func (id UserID) MarshalJSON() ([]byte, error) {
	if _, err := strconv.ParseInt(string(id), 10, 64); err == nil {
		return []byte(id), nil
	}
	return json.Marshal(string(id))
}

func (id *UserID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*id = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*id = UserID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidUserID, string(b))
	}
	*id = UserID(n.String())
	return nil
}

// User is the public user record returned by the server.
type User struct {
	ID       UserID `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// Session is the record kept in local session storage. Only a record with
// Active set counts as a logged-in session.
type Session struct {
	ID       UserID `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Active   bool   `json:"active"`
}

// NewSession builds an active session from a server user record.
func NewSession(u User) Session {
	return Session{ID: u.ID, Username: u.Username, Email: u.Email, Active: true}
}

// User returns the user part of the session.
func (s Session) User() User {
	return User{ID: s.ID, Username: s.Username, Email: s.Email}
}
