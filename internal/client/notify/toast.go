// Package notify renders toasts and modal dialogs to a terminal.
package notify

import (
	"fmt"
	"io"
	"sync"
	"time"
)

type Level string

const (
	LevelSuccess Level = "success"
	LevelError   Level = "error"
	LevelWarning Level = "warning"
	LevelInfo    Level = "info"
)

var icons = map[Level]string{
	LevelSuccess: "✓",
	LevelError:   "✗",
	LevelWarning: "!",
	LevelInfo:    "i",
}

// Toast is a short-lived notification.
type Toast struct {
	ID       string
	Level    Level
	Title    string
	Message  string
	Duration time.Duration
}

// Toaster keeps the visible toasts in insertion order. Toasts with a
// positive duration remove themselves when it elapses.
type Toaster struct {
	mu              sync.Mutex
	w               io.Writer
	defaultDuration time.Duration
	counter         int
	toasts          []Toast
	timers          map[string]*time.Timer
}

// NewToaster writes toasts to w. defaultDuration applies to Show and the
// level helpers.
func NewToaster(w io.Writer, defaultDuration time.Duration) *Toaster {
	return &Toaster{
		w:               w,
		defaultDuration: defaultDuration,
		timers:          make(map[string]*time.Timer),
	}
}

// Show displays a toast for the default duration and returns its id.
func (t *Toaster) Show(level Level, title, message string) string {
	return t.ShowFor(level, title, message, t.defaultDuration)
}

// ShowFor displays a toast for d. A non-positive d keeps it until removed.
func (t *Toaster) ShowFor(level Level, title, message string, d time.Duration) string {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.counter++
	toast := Toast{
		ID:       fmt.Sprintf("toast-%d", t.counter),
		Level:    level,
		Title:    title,
		Message:  message,
		Duration: d,
	}
	t.toasts = append(t.toasts, toast)
	t.render(toast)

	if d > 0 {
		id := toast.ID
		t.timers[id] = time.AfterFunc(d, func() { t.Remove(id) })
	}
	return toast.ID
}

func (t *Toaster) render(toast Toast) {
	icon, ok := icons[toast.Level]
	if !ok {
		icon = icons[LevelInfo]
	}
	if toast.Message == "" {
		fmt.Fprintf(t.w, "%s %s\n", icon, toast.Title)
		return
	}
	fmt.Fprintf(t.w, "%s %s %s\n", icon, toast.Title, toast.Message)
}

func (t *Toaster) Success(title, message string) string {
	return t.Show(LevelSuccess, title, message)
}

func (t *Toaster) Error(title, message string) string {
	return t.Show(LevelError, title, message)
}

func (t *Toaster) Warn(title, message string) string {
	return t.Show(LevelWarning, title, message)
}

func (t *Toaster) Info(title, message string) string {
	return t.Show(LevelInfo, title, message)
}

// Remove drops a toast and reports whether it was still visible.
func (t *Toaster) Remove(id string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if timer, ok := t.timers[id]; ok {
		timer.Stop()
		delete(t.timers, id)
	}
	for i, toast := range t.toasts {
		if toast.ID == id {
			t.toasts = append(t.toasts[:i], t.toasts[i+1:]...)
			return true
		}
	}
	return false
}

func (t *Toaster) RemoveAll() {
	t.mu.Lock()
	defer t.mu.Unlock()

	for id, timer := range t.timers {
		timer.Stop()
		delete(t.timers, id)
	}
	t.toasts = nil
}

// Visible returns a snapshot of the current toasts, oldest first.
func (t *Toaster) Visible() []Toast {
	t.mu.Lock()
	defer t.mu.Unlock()

	out := make([]Toast, len(t.toasts))
	copy(out, t.toasts)
	return out
}
