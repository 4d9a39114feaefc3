// Package common holds small helpers shared by the client packages.
package common

import "errors"

var (
	// ErrNoActiveSession is returned by operations that need a logged-in user
	// when the session store holds nothing usable.
	ErrNoActiveSession = errors.New("no active session")

	// ErrBusy is returned when a form is submitted while a previous
	// submission of the same form is still in flight.
	ErrBusy = errors.New("request already in progress")
)
