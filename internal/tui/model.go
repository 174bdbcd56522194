// Package tui implements the interactive label manager on top of the label
// store. All backend calls run as tea.Cmds; results and store events come
// back as messages.
package tui

import (
	"context"
	"errors"

	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
	"charm.land/huh/v2"
	"github.com/thenoetrevino/lbl/internal/config"
	"github.com/thenoetrevino/lbl/internal/events"
	"github.com/thenoetrevino/lbl/internal/labels"
	"github.com/thenoetrevino/lbl/internal/models"
	"github.com/thenoetrevino/lbl/internal/tui/huhforms"
)

// mode is the screen the model is showing
type mode int

const (
	modeList mode = iota
	modeForm
	modeConfirmDelete
	modeHelp
)

// Model represents the application state for the TUI
type Model struct {
	ctx    context.Context
	store  *labels.Store
	config *config.Config
	keys   keyMap
	styles styles

	// state is the store snapshot the view renders
	state labels.State

	mode          mode
	cursor        int
	width, height int

	spinner spinner.Model
	loading bool

	form       *huh.Form
	formValues *huhforms.LabelFormValues
	formErrors labels.FormErrors
	editingID  int
	saving     bool

	confirmID int

	status    string
	statusErr bool

	events <-chan events.Event
}

// NewModel creates the TUI model. updates is the store subscription that
// drives re-rendering; nil disables it.
func NewModel(ctx context.Context, store *labels.Store, cfg *config.Config, updates <-chan events.Event) Model {
	if cfg == nil {
		cfg = config.Default()
	}
	st := newStyles(cfg.ColorScheme)

	return Model{
		ctx:        ctx,
		store:      store,
		config:     cfg,
		keys:       newKeyMap(cfg.KeyMappings),
		styles:     st,
		state:      store.State(),
		spinner:    spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(st.Key)),
		loading:    true,
		formValues: &huhforms.LabelFormValues{},
		events:     updates,
	}
}

// Init starts the first load and the store subscription
// Required by tea.Model interface
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.loadLabels(), m.waitForEvent())
}

// ============================================================================
// COMMANDS
// ============================================================================

func (m Model) loadLabels() tea.Cmd {
	ctx, store := m.ctx, m.store
	return func() tea.Msg {
		return labelsLoadedMsg{err: store.LoadLabels(ctx)}
	}
}

func (m Model) saveLabel(label *models.Label) tea.Cmd {
	ctx, store := m.ctx, m.store
	return func() tea.Msg {
		saved, err := store.SaveLabel(ctx, label)
		return labelSavedMsg{label: saved, err: err}
	}
}

func (m Model) deleteLabel(id int) tea.Cmd {
	ctx, store := m.ctx, m.store
	return func() tea.Msg {
		return labelDeletedMsg{id: id, err: store.DeleteLabel(ctx, id)}
	}
}

// waitForEvent blocks until the store publishes; the handler re-arms it
func (m Model) waitForEvent() tea.Cmd {
	if m.events == nil {
		return nil
	}
	ch, ctx := m.events, m.ctx
	return func() tea.Msg {
		select {
		case event, ok := <-ch:
			if !ok {
				return nil
			}
			return storeChangedMsg{event: event}
		case <-ctx.Done():
			return nil
		}
	}
}

// ============================================================================
// STATE HELPERS
// ============================================================================

// refresh re-reads the store and keeps the cursor on a visible row
func (m *Model) refresh() {
	m.state = m.store.State()
	if n := len(m.state.LabelIDs); m.cursor >= n {
		m.cursor = max(n-1, 0)
	}
}

// selected returns the label under the cursor
func (m Model) selected() (*models.Label, bool) {
	if m.cursor < 0 || m.cursor >= len(m.state.LabelIDs) {
		return nil, false
	}
	return m.state.Label(m.state.LabelIDs[m.cursor])
}

// selectLabel moves the cursor to id when it is listed
func (m *Model) selectLabel(id int) {
	for i, labelID := range m.state.LabelIDs {
		if labelID == id {
			m.cursor = i
			return
		}
	}
}

func (m *Model) setStatus(msg string) {
	m.status, m.statusErr = msg, false
}

func (m *Model) setError(msg string) {
	m.status, m.statusErr = msg, true
}

// openForm shows the label form for label (nil for a new one)
func (m *Model) openForm(label *models.Label) tea.Cmd {
	m.formValues = &huhforms.LabelFormValues{}
	m.editingID = labels.NotEditing
	if label != nil {
		m.editingID = label.ID
		m.formValues.Name = label.Name
		m.formValues.Color = label.Color
		m.formValues.Icon = label.Icon
	}
	m.store.EditLabel(m.editingID)
	m.refresh()

	m.formErrors = nil
	m.mode = modeForm
	return m.buildForm()
}

// buildForm creates a fresh huh form over the current values. A completed
// huh form takes no more input, so a rejected save gets a new one.
func (m *Model) buildForm() tea.Cmd {
	m.form = huhforms.CreateLabelForm(m.formValues).
		WithTheme(huhforms.CreateTheme(m.config.ColorScheme)).
		WithKeyMap(huhforms.CreateKeyMap()).
		WithShowHelp(false)
	if m.width > 0 {
		m.form = m.form.WithWidth(formWidth(m.width))
	}
	return m.form.Init()
}

// resetForm clears the form after a save or when it is cancelled
func (m *Model) resetForm() {
	m.form = nil
	m.formValues = &huhforms.LabelFormValues{}
	m.formErrors = nil
	m.editingID = labels.NotEditing
	m.saving = false
	if m.mode == modeForm {
		m.mode = modeList
	}
}

// formLabel builds the label to save from the form values
func (m Model) formLabel() *models.Label {
	label := &models.Label{
		ID:    m.editingID,
		Name:  m.formValues.Name,
		Color: m.formValues.Color,
		Icon:  m.formValues.Icon,
	}
	if existing, ok := m.state.Label(m.editingID); ok {
		label.Slug = existing.Slug
	}
	return label
}

// asFormErrors turns a save error into per-field messages
func asFormErrors(err error) labels.FormErrors {
	var formErrs labels.FormErrors
	if errors.As(err, &formErrs) {
		return formErrs
	}
	return labels.FormErrors{labels.FormErrorKey: err.Error()}
}

func formWidth(termWidth int) int {
	return max(min(termWidth-8, 60), 30)
}
