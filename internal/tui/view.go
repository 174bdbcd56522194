package tui

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/lbl/internal/labels"
)

// View renders the current state of the application
// This implements the "View" part of the Model-View-Update pattern
func (m Model) View() tea.View {
	v := tea.NewView(m.render())
	v.AltScreen = true
	return v
}

func (m Model) render() string {
	switch m.mode {
	case modeForm:
		return m.place(m.renderForm())
	case modeConfirmDelete:
		return m.place(m.renderConfirmDelete())
	case modeHelp:
		return m.renderHelp()
	default:
		return m.renderList()
	}
}

// place centers a dialog once the terminal size is known
func (m Model) place(s string) string {
	if m.width == 0 || m.height == 0 {
		return s
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, s)
}

func (m Model) renderList() string {
	var b strings.Builder
	b.WriteString(m.styles.Title.Render("Labels"))
	b.WriteString("\n")

	switch {
	case !m.state.Loaded() && m.loading:
		b.WriteString(m.spinner.View() + " Loading labels...\n")
	case !m.state.Loaded():
		b.WriteString(m.styles.Subtle.Render("Labels could not be loaded. Press "+m.config.KeyMappings.Refresh+" to retry.") + "\n")
	case len(m.state.LabelIDs) == 0:
		b.WriteString(m.styles.Subtle.Render("No labels yet. Press "+m.config.KeyMappings.NewLabel+" to create one.") + "\n")
	default:
		for i, id := range m.state.LabelIDs {
			label, ok := m.state.Label(id)
			if !ok {
				continue
			}
			name := label.Name
			if label.Icon != "" {
				name = label.Icon + " " + name
			}
			prefix, cell := "  ", fmt.Sprintf("%-28s", name)
			if i == m.cursor {
				prefix, cell = m.styles.Selected.Render("> "), m.styles.Selected.Render(cell)
			}
			b.WriteString(prefix + swatch(label.Color) + " " + cell + " " + m.styles.Subtle.Render(label.Slug) + "\n")
		}
	}

	if m.loading && m.state.Loaded() {
		b.WriteString("\n" + m.spinner.View())
	}
	if m.state.Message != "" && m.state.Loaded() {
		style := m.styles.Info
		if m.state.Error != nil {
			style = m.styles.Error
		}
		b.WriteString("\n" + style.Render(m.state.Message))
	}
	if m.status != "" {
		style := m.styles.Info
		if m.statusErr {
			style = m.styles.Error
		}
		b.WriteString("\n" + style.Render(m.status))
	}

	b.WriteString("\n\n" + m.renderKeyHints(m.keys.listHelp()))
	return b.String()
}

func (m Model) renderForm() string {
	title := "New Label"
	box := m.styles.CreateBox
	if m.editingID != labels.NotEditing {
		title = fmt.Sprintf("Edit Label #%d", m.editingID)
		box = m.styles.EditBox
	}

	var b strings.Builder
	b.WriteString(m.styles.Title.Render(title) + "\n")
	if m.form != nil {
		b.WriteString(m.form.View())
	}

	if len(m.formErrors) > 0 {
		b.WriteString("\n")
		if msg := m.formErrors.Message(); msg != "" {
			b.WriteString(m.styles.Error.Render(msg) + "\n")
		}
		fields := m.formErrors.Fields()
		for _, field := range slices.Sorted(maps.Keys(fields)) {
			b.WriteString(m.styles.Error.Render(field+": "+fields[field]) + "\n")
		}
	}
	if m.saving {
		b.WriteString("\n" + m.styles.Subtle.Render("Saving..."))
	}

	b.WriteString("\n" + m.renderKeyHints([]key.Binding{m.keys.Save, m.keys.Cancel}))
	return box.Render(b.String())
}

func (m Model) renderConfirmDelete() string {
	name := fmt.Sprintf("#%d", m.confirmID)
	if label, ok := m.state.Label(m.confirmID); ok {
		name = fmt.Sprintf("'%s'", label.Name)
	}
	body := fmt.Sprintf("Delete label %s?\n\n%s", name,
		m.renderKeyHints([]key.Binding{m.keys.Confirm, m.keys.Deny}))
	return m.styles.DeleteBox.Render(body)
}

func (m Model) renderKeyHints(bindings []key.Binding) string {
	parts := make([]string, 0, len(bindings))
	for _, binding := range bindings {
		h := binding.Help()
		parts = append(parts, m.styles.Key.Render(h.Key)+" "+m.styles.Subtle.Render(h.Desc))
	}
	return strings.Join(parts, m.styles.Subtle.Render(" • "))
}
