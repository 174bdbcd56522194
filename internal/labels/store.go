package labels

import (
	"context"
	"log/slog"
	"sync"

	"github.com/thenoetrevino/lbl/internal/api"
	"github.com/thenoetrevino/lbl/internal/events"
	"github.com/thenoetrevino/lbl/internal/models"
)

// LabelFormName is the form a successful save resets.
const LabelFormName = "label"

// FormResetter clears a named form after its contents were saved.
type FormResetter interface {
	ResetForm(name string)
}

// FormResetterFunc adapts a function to FormResetter.
type FormResetterFunc func(name string)

// ResetForm calls f(name).
func (f FormResetterFunc) ResetForm(name string) {
	f(name)
}

// Store owns one label State and the backend it is synchronized with.
//
// Backend calls run without holding the lock, so several saves or deletes may
// be in flight at once. Their results are applied in arrival order: the last
// response to arrive wins.
type Store struct {
	mu    sync.RWMutex
	state State

	backend   api.LabelAPI
	logger    *slog.Logger
	resetter  FormResetter
	publisher events.EventPublisher
	ownsBus   bool
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger for the store
func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) {
		s.logger = logger
	}
}

// WithFormResetter sets the hook called when a save succeeds
func WithFormResetter(r FormResetter) Option {
	return func(s *Store) {
		s.resetter = r
	}
}

// WithEventPublisher sets the publisher state changes are announced on.
// The caller keeps ownership and must close it.
func WithEventPublisher(p events.EventPublisher) Option {
	return func(s *Store) {
		s.publisher = p
	}
}

// WithInitialState seeds the store, e.g. from a previous session.
func WithInitialState(state State) Option {
	return func(s *Store) {
		s.state = state.Clone()
	}
}

// NewStore creates a store backed by backend.
func NewStore(backend api.LabelAPI, opts ...Option) *Store {
	s := &Store{
		state:   InitialState(),
		backend: backend,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.publisher == nil {
		s.publisher = events.NewBus(s.logger)
		s.ownsBus = true
	}
	return s
}

// State returns a snapshot that is safe to read and modify.
func (s *Store) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Clone()
}

// Dispatch applies action and announces the change. It returns the new state.
func (s *Store) Dispatch(action Action) State {
	s.mu.Lock()
	s.state = Reduce(s.state, action)
	snapshot := s.state.Clone()
	s.mu.Unlock()

	s.publisher.Publish(events.Event{
		Type:    events.EventLabelsChanged,
		Action:  string(action.Kind()),
		LabelID: targetID(action),
	})
	return snapshot
}

// Subscribe returns a channel that receives an event after every dispatch.
func (s *Store) Subscribe() (<-chan events.Event, func()) {
	return s.publisher.Subscribe()
}

// Close releases the store's own event bus. A publisher passed in with
// WithEventPublisher is left open.
func (s *Store) Close() error {
	if s.ownsBus {
		return s.publisher.Close()
	}
	return nil
}

// LoadLabels fetches every label and replaces the known ID list. A failure is
// recorded in State.Error and returned; nothing is retried.
func (s *Store) LoadLabels(ctx context.Context) error {
	list, err := s.backend.List(ctx)
	if err != nil {
		s.logger.Error("failed to load labels", "error", err)
		s.Dispatch(LoadLabelsAction{Err: err})
		return err
	}

	s.logger.Debug("loaded labels", "count", len(list))
	s.Dispatch(LoadLabelsAction{Result: Normalize(list)})
	return nil
}

// SaveLabel creates label when it has no ID and updates it otherwise. On
// failure the returned error is a FormErrors and the state is unchanged.
func (s *Store) SaveLabel(ctx context.Context, label *models.Label) (*models.Label, error) {
	if label == nil {
		return nil, FormErrors{FormErrorKey: GenericErrorMessage}
	}

	var (
		saved *models.Label
		err   error
	)
	if label.IsNew() {
		saved, err = s.backend.Create(ctx, label)
	} else {
		saved, err = s.backend.Update(ctx, label)
	}
	if err != nil {
		formErrs := FormErrorsFrom(err)
		s.logger.Warn("failed to save label",
			"label_id", label.ID,
			"error", err,
			"form_errors", formErrs.Error())
		s.Dispatch(SaveLabelAction{Err: formErrs})
		return nil, formErrs
	}

	var message string
	if saved != nil {
		message = saved.Message
		saved = saved.Clone()
		saved.Message = ""
	}
	if saved == nil || saved.ID == 0 {
		s.logger.Warn("saved label has no id, cache not updated", "created", label.IsNew())
	} else if s.resetter != nil {
		s.resetter.ResetForm(LabelFormName)
	}

	s.logger.Debug("saved label", "label_id", labelID(saved), "created", label.IsNew())
	s.Dispatch(SaveLabelAction{Label: saved, Message: message})
	return saved.Clone(), nil
}

// DeleteLabel removes a label. A failure is logged, recorded in
// State.DeleteError and returned; the cache is left untouched.
func (s *Store) DeleteLabel(ctx context.Context, id int) error {
	if err := s.backend.Delete(ctx, id); err != nil {
		s.logger.Error("failed to delete label", "label_id", id, "error", err)
		s.Dispatch(DeleteLabelAction{ID: id, Err: err})
		return err
	}

	s.logger.Debug("deleted label", "label_id", id)
	s.Dispatch(DeleteLabelAction{ID: id})
	return nil
}

// EditLabel opens the edit form for id. NotEditing closes it.
func (s *Store) EditLabel(id int) {
	s.Dispatch(EditLabelAction{ID: id})
}

// Labels returns the cached labels in list order.
func (s *Store) Labels() []*models.Label {
	s.mu.RLock()
	defer s.mu.RUnlock()
	labels := s.state.Labels()
	for i, l := range labels {
		labels[i] = l.Clone()
	}
	return labels
}

// Label returns a copy of the cached label with the given ID.
func (s *Store) Label(id int) (*models.Label, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	l, ok := s.state.Label(id)
	return l.Clone(), ok
}

// Editing returns the ID open for editing, if any.
func (s *Store) Editing() (int, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.IsEditing()
}

// Loaded reports whether a load has ever succeeded.
func (s *Store) Loaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Loaded()
}

func labelID(l *models.Label) int {
	if l == nil {
		return 0
	}
	return l.ID
}
