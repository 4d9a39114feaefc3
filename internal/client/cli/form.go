package cli

import (
	"context"
	"sync"

	"golang.org/x/sync/semaphore"

	"github.com/dmitrijs2005/useraccount/internal/common"
)

// Form names.
const (
	formLogin    = "login"
	formRegister = "register"
	formPassword = "password"
	formEmail    = "email"
	formUsers    = "users"
)

type formState int

const (
	stateIdle formState = iota
	stateValidating
	stateSubmitting
	stateSucceeded
	stateFailed
)

func (s formState) String() string {
	switch s {
	case stateIdle:
		return "idle"
	case stateValidating:
		return "validating"
	case stateSubmitting:
		return "submitting"
	case stateSucceeded:
		return "succeeded"
	case stateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// form guards a single submission at a time and tracks where it is.
type form struct {
	name string
	sem  *semaphore.Weighted

	mu    sync.Mutex
	state formState
	// observe, when set, sees every state change.
	observe func(formState)
}

func newForm(name string) *form {
	return &form{name: name, sem: semaphore.NewWeighted(1)}
}

func (f *form) set(s formState) {
	f.mu.Lock()
	f.state = s
	obs := f.observe
	f.mu.Unlock()
	if obs != nil {
		obs(s)
	}
}

func (f *form) State() formState {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// submit runs validate and, if it passes, send. It returns
// common.ErrBusy without doing anything while another submission holds the
// form. sent reports whether send was called.
func (f *form) submit(ctx context.Context, validate func() bool, send func(context.Context) error) (sent bool, err error) {
	if !f.sem.TryAcquire(1) {
		return false, common.ErrBusy
	}
	defer f.sem.Release(1)

	f.set(stateValidating)
	if !validate() {
		f.set(stateIdle)
		return false, nil
	}

	f.set(stateSubmitting)
	err = send(ctx)
	if err != nil {
		f.set(stateFailed)
	} else {
		f.set(stateSucceeded)
	}
	f.set(stateIdle)
	return true, err
}
