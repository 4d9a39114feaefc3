package notify

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/google/uuid"
)

// ModalOptions configures a modal. ConfirmText adds a confirm action next
// to the always-present close action.
type ModalOptions struct {
	ID          string
	ConfirmText string
	OnConfirm   func()
	OnClose     func()
	OnShow      func()
}

type modal struct {
	id    string
	title string
	body  string
	opts  ModalOptions
}

// Modals tracks open dialogs in the order they were shown. Opening a modal
// never closes the others.
type Modals struct {
	mu    sync.Mutex
	w     io.Writer
	order []*modal
}

func NewModals(w io.Writer) *Modals {
	return &Modals{w: w}
}

// Show renders a dialog and returns its id.
func (m *Modals) Show(title, body string, opts ModalOptions) string {
	id := opts.ID
	if id == "" {
		id = "modal-" + uuid.NewString()
	}
	md := &modal{id: id, title: title, body: body, opts: opts}

	m.mu.Lock()
	m.removeLocked(id)
	m.order = append(m.order, md)
	m.render(md)
	m.mu.Unlock()

	if opts.OnShow != nil {
		opts.OnShow()
	}
	return id
}

func (m *Modals) render(md *modal) {
	bar := strings.Repeat("─", len([]rune(md.title))+4)
	fmt.Fprintf(m.w, "┌%s\n│  %s\n├%s\n", bar, md.title, bar)
	for _, line := range strings.Split(md.body, "\n") {
		fmt.Fprintf(m.w, "│  %s\n", line)
	}
	actions := "[close]"
	if md.opts.ConfirmText != "" {
		actions = fmt.Sprintf("[close] [%s]", md.opts.ConfirmText)
	}
	fmt.Fprintf(m.w, "└ %s\n", actions)
}

// HasConfirm reports whether the open modal id offers a confirm action.
func (m *Modals) HasConfirm(id string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	md := m.findLocked(id)
	return md != nil && md.opts.ConfirmText != ""
}

// ConfirmText returns the confirm label of an open modal.
func (m *Modals) ConfirmText(id string) string {
	m.mu.Lock()
	defer m.mu.Unlock()
	if md := m.findLocked(id); md != nil {
		return md.opts.ConfirmText
	}
	return ""
}

// Confirm closes the modal and runs its OnConfirm callback.
func (m *Modals) Confirm(id string) bool {
	md := m.take(id)
	if md == nil {
		return false
	}
	if md.opts.OnConfirm != nil {
		md.opts.OnConfirm()
	}
	return true
}

// Dismiss closes the modal and runs its OnClose callback.
func (m *Modals) Dismiss(id string) bool {
	md := m.take(id)
	if md == nil {
		return false
	}
	if md.opts.OnClose != nil {
		md.opts.OnClose()
	}
	return true
}

// Close removes the modal without running callbacks.
func (m *Modals) Close(id string) bool {
	return m.take(id) != nil
}

func (m *Modals) CloseAll() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.order = nil
}

// Open returns the ids of open modals, oldest first.
func (m *Modals) Open() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	ids := make([]string, 0, len(m.order))
	for _, md := range m.order {
		ids = append(ids, md.id)
	}
	return ids
}

func (m *Modals) take(id string) *modal {
	m.mu.Lock()
	defer m.mu.Unlock()
	md := m.findLocked(id)
	if md != nil {
		m.removeLocked(id)
	}
	return md
}

func (m *Modals) findLocked(id string) *modal {
	for _, md := range m.order {
		if md.id == id {
			return md
		}
	}
	return nil
}

func (m *Modals) removeLocked(id string) {
	for i, md := range m.order {
		if md.id == id {
			m.order = append(m.order[:i], m.order[i+1:]...)
			return
		}
	}
}
