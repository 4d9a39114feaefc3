package cli

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/useraccount/internal/common"
)

func recordStates(f *form) *[]formState {
	var seen []formState
	f.observe = func(s formState) { seen = append(seen, s) }
	return &seen
}

func TestFormSubmit_States(t *testing.T) {
	boom := errors.New("boom")
	tests := []struct {
		name     string
		valid    bool
		sendErr  error
		wantSent bool
		want     []formState
	}{
		{"rejected", false, nil, false, []formState{stateValidating, stateIdle}},
		{"succeeded", true, nil, true, []formState{stateValidating, stateSubmitting, stateSucceeded, stateIdle}},
		{"failed", true, boom, true, []formState{stateValidating, stateSubmitting, stateFailed, stateIdle}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newForm("test")
			seen := recordStates(f)
			calls := 0

			sent, err := f.submit(context.Background(),
				func() bool { return tt.valid },
				func(context.Context) error { calls++; return tt.sendErr })

			assert.Equal(t, tt.wantSent, sent)
			assert.ErrorIs(t, err, tt.sendErr)
			assert.Equal(t, tt.want, *seen)
			assert.Equal(t, stateIdle, f.State())
			if tt.wantSent {
				assert.Equal(t, 1, calls)
			} else {
				assert.Zero(t, calls)
			}
		})
	}
}

func TestFormSubmit_Busy(t *testing.T) {
	f := newForm("test")
	entered := make(chan struct{})
	release := make(chan struct{})
	done := make(chan error, 1)

	go func() {
		_, err := f.submit(context.Background(), func() bool { return true }, func(context.Context) error {
			close(entered)
			<-release
			return nil
		})
		done <- err
	}()
	<-entered

	assert.Equal(t, stateSubmitting, f.State())
	sent, err := f.submit(context.Background(), func() bool { return true }, func(context.Context) error {
		t.Fatal("second submission must not send")
		return nil
	})
	assert.False(t, sent)
	require.ErrorIs(t, err, common.ErrBusy)

	close(release)
	require.NoError(t, <-done)

	// Released after the first submission finished.
	sent, err = f.submit(context.Background(), func() bool { return true }, func(context.Context) error { return nil })
	assert.True(t, sent)
	assert.NoError(t, err)
}

func TestListUsers_DoubleSubmitWarns(t *testing.T) {
	a, fc, _ := newTestApp(t)
	fc.block = make(chan struct{})
	fc.entered = make(chan struct{})
	stubInput(t, &answers{text: []string{""}})

	done := make(chan error, 1)
	go func() { done <- a.ListUsers(context.Background()) }()
	<-fc.entered

	err := a.ListUsers(context.Background())
	require.ErrorIs(t, err, common.ErrBusy)
	assert.Equal(t, []string{"Request In Progress"}, toastTitles(a))

	close(fc.block)
	require.NoError(t, <-done)
	assert.Equal(t, []string{"list"}, fc.Calls)
}

func TestFormState_String(t *testing.T) {
	assert.Equal(t, "submitting", stateSubmitting.String())
	assert.Equal(t, "unknown", formState(42).String())
}
