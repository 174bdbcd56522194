package app

import (
	"sync"

	"github.com/thenoetrevino/lbl/internal/labels"
)

// FormRegistry fans form reset requests out to whichever UI owns the form.
// Reset callbacks may run on any goroutine.
type FormRegistry struct {
	mu       sync.Mutex
	handlers map[string]map[int]func()
	nextID   int
}

var _ labels.FormResetter = (*FormRegistry)(nil)

// NewFormRegistry creates an empty registry
func NewFormRegistry() *FormRegistry {
	return &FormRegistry{handlers: make(map[string]map[int]func())}
}

// Register calls fn whenever the named form is reset. The returned func
// removes it again.
func (r *FormRegistry) Register(name string, fn func()) func() {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := r.nextID
	r.nextID++
	if r.handlers[name] == nil {
		r.handlers[name] = make(map[int]func())
	}
	r.handlers[name][id] = fn

	return func() {
		r.mu.Lock()
		defer r.mu.Unlock()
		delete(r.handlers[name], id)
	}
}

// ResetForm runs every handler registered for name. Unknown names are ignored.
func (r *FormRegistry) ResetForm(name string) {
	r.mu.Lock()
	fns := make([]func(), 0, len(r.handlers[name]))
	for _, fn := range r.handlers[name] {
		fns = append(fns, fn)
	}
	r.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
}
