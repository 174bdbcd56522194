package tui

import (
	"fmt"

	"charm.land/bubbles/v2/key"
	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
	"charm.land/huh/v2"
	"github.com/thenoetrevino/lbl/internal/labels"
)

// Update handles all messages and updates the model accordingly
// This implements the "Update" part of the Model-View-Update pattern
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		if m.form != nil {
			m.form = m.form.WithWidth(formWidth(m.width))
		}
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case storeChangedMsg:
		m.refresh()
		return m, m.waitForEvent()

	case labelsLoadedMsg:
		m.loading = false
		m.refresh()
		if msg.err != nil {
			m.setError(m.state.Message)
		}
		return m, nil

	case labelSavedMsg:
		return m.handleSaved(msg)

	case labelDeletedMsg:
		m.refresh()
		if msg.err != nil {
			m.setError(fmt.Sprintf("Could not delete label %d: %v", msg.id, m.state.DeleteError))
			return m, nil
		}
		m.setStatus(fmt.Sprintf("Deleted label %d", msg.id))
		return m, nil

	case formResetMsg:
		m.resetForm()
		return m, nil

	case tea.KeyPressMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		switch m.mode {
		case modeForm:
			return m.updateForm(msg)
		case modeConfirmDelete:
			return m.updateConfirmDelete(msg)
		case modeHelp:
			return m.updateHelp(msg)
		default:
			return m.updateList(msg)
		}
	}

	// Anything else (cursor blinks, field focus) belongs to the form
	if m.mode == modeForm && m.form != nil {
		return m.forwardToForm(msg)
	}
	return m, nil
}

// ============================================================================
// LIST MODE
// ============================================================================

func (m Model) updateList(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Prev):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Next):
		if m.cursor < len(m.state.LabelIDs)-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.New):
		m.status = ""
		return m, m.openForm(nil)

	case key.Matches(msg, m.keys.Edit):
		label, ok := m.selected()
		if !ok {
			m.setError("No label selected to edit")
			return m, nil
		}
		m.status = ""
		return m, m.openForm(label)

	case key.Matches(msg, m.keys.Delete):
		label, ok := m.selected()
		if !ok {
			m.setError("No label selected to delete")
			return m, nil
		}
		m.confirmID = label.ID
		m.mode = modeConfirmDelete

	case key.Matches(msg, m.keys.Refresh):
		if m.loading {
			return m, nil
		}
		m.loading = true
		m.setStatus("Refreshing...")
		return m, tea.Batch(m.spinner.Tick, m.loadLabels())

	case key.Matches(msg, m.keys.Help):
		m.mode = modeHelp
	}
	return m, nil
}

// ============================================================================
// FORM MODE
// ============================================================================

func (m Model) updateForm(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Save):
		return m.submitForm()

	case key.Matches(msg, m.keys.Cancel):
		m.store.EditLabel(labels.NotEditing)
		m.refresh()
		m.resetForm()
		return m, nil
	}
	return m.forwardToForm(msg)
}

func (m Model) forwardToForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.form == nil {
		m.mode = modeList
		return m, nil
	}

	model, cmd := m.form.Update(msg)
	if f, ok := model.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State == huh.StateCompleted {
		return m.submitForm()
	}
	return m, cmd
}

// submitForm saves the form values. The form stays open until the save
// succeeds.
func (m Model) submitForm() (tea.Model, tea.Cmd) {
	if m.saving {
		return m, nil
	}
	m.saving = true
	m.formErrors = nil
	return m, m.saveLabel(m.formLabel())
}

func (m Model) handleSaved(msg labelSavedMsg) (tea.Model, tea.Cmd) {
	m.saving = false
	m.refresh()

	if msg.err != nil {
		m.formErrors = asFormErrors(msg.err)
		if m.mode != modeForm {
			// The form was cancelled while the save was in flight
			m.setError(m.formErrors.Error())
			return m, nil
		}
		return m, m.buildForm()
	}

	m.resetForm()
	if msg.label != nil {
		m.selectLabel(msg.label.ID)
		m.setStatus(fmt.Sprintf("Saved label '%s'", msg.label.Name))
	}
	return m, nil
}

// ============================================================================
// CONFIRM / HELP MODES
// ============================================================================

func (m Model) updateConfirmDelete(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Confirm):
		id := m.confirmID
		m.confirmID = 0
		m.mode = modeList
		return m, m.deleteLabel(id)

	case key.Matches(msg, m.keys.Deny):
		m.confirmID = 0
		m.mode = modeList
	}
	return m, nil
}

// updateHelp closes the help screen on any of the usual dismiss keys
func (m Model) updateHelp(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case m.config.KeyMappings.ShowHelp, m.config.KeyMappings.Quit, "esc", "enter", "space":
		m.mode = modeList
	}
	return m, nil
}
