package components

import (
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/solfa/internal/ui/theme"
)

// Mark is the check indicator drawn after an answer field.
type Mark int

const (
	MarkNone Mark = iota
	MarkCorrect
	MarkIncorrect
)

// TextInput wraps bubbles/textinput as a labelled answer field. A frozen
// field renders its value but ignores keys.
type TextInput struct {
	Label  string
	Model  textinput.Model
	Frozen bool
	Mark   Mark
}

// NewTextInput creates a new labelled text input.
func NewTextInput(label, placeholder string, maxWidth int) TextInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	if maxWidth > 0 {
		ti.CharLimit = maxWidth
	}
	return TextInput{Label: label, Model: ti}
}

// Focus focuses the field unless it is frozen.
func (t *TextInput) Focus() tea.Cmd {
	if t.Frozen {
		return nil
	}
	return t.Model.Focus()
}

// Blur removes focus.
func (t *TextInput) Blur() {
	t.Model.Blur()
}

// Focused reports whether the field has focus.
func (t TextInput) Focused() bool {
	return t.Model.Focused()
}

// Freeze shows value as a fixed, non-editable answer.
func (t *TextInput) Freeze(value string) {
	t.Model.SetValue(value)
	t.Model.Blur()
	t.Frozen = true
}

// Update handles messages.
func (t TextInput) Update(msg tea.Msg) (TextInput, tea.Cmd) {
	if t.Frozen {
		return t, nil
	}
	var cmd tea.Cmd
	t.Model, cmd = t.Model.Update(msg)
	return t, cmd
}

// View renders the label, the input and its mark.
func (t TextInput) View() string {
	label := theme.Hint.Render(t.Label + ": ")
	var view string
	if t.Frozen {
		view = theme.Given.Render(t.Model.Value())
	} else {
		view = t.Model.View()
	}
	switch t.Mark {
	case MarkCorrect:
		view += " " + lipgloss.NewStyle().Foreground(theme.Success).Render("✓")
	case MarkIncorrect:
		view += " " + lipgloss.NewStyle().Foreground(theme.Error).Render("✗")
	}
	return label + view
}

// Value returns the current input value.
func (t TextInput) Value() string {
	return t.Model.Value()
}

// SetValue replaces the input value.
func (t *TextInput) SetValue(v string) {
	t.Model.SetValue(v)
}
