package components

import (
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/solfa/internal/ui/theme"
)

// OptionItem is one row of an OptionList: a label and the values it cycles
// through.
type OptionItem struct {
	Label    string
	Choices  []string
	Selected int
}

// Value returns the selected choice or "" when there are none.
func (o OptionItem) Value() string {
	if len(o.Choices) == 0 {
		return ""
	}
	return o.Choices[o.Selected]
}

// OptionList is a vertical list of settings. Up/down move between rows,
// left/right cycle the row's value.
type OptionList struct {
	Items  []OptionItem
	Cursor int
}

// NewOptionList creates a new list with the cursor on the first row.
func NewOptionList(items []OptionItem) OptionList {
	return OptionList{Items: items}
}

// Init returns nil (no initial command).
func (m OptionList) Init() tea.Cmd {
	return nil
}

// Update handles keyboard navigation. The changed row index is returned with
// ok=true when a value changed.
func (m OptionList) Update(msg tea.Msg) (OptionList, int, bool) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok || len(m.Items) == 0 {
		return m, 0, false
	}

	switch kmsg.String() {
	case "up", "k":
		if m.Cursor > 0 {
			m.Cursor--
		}
	case "down", "j", "tab":
		if m.Cursor < len(m.Items)-1 {
			m.Cursor++
		}
	case "left", "h":
		return m.cycle(-1)
	case "right", "l", "space":
		return m.cycle(1)
	}
	return m, 0, false
}

func (m OptionList) cycle(delta int) (OptionList, int, bool) {
	item := &m.Items[m.Cursor]
	n := len(item.Choices)
	if n < 2 {
		return m, 0, false
	}
	item.Selected = (item.Selected + delta + n) % n
	return m, m.Cursor, true
}

// SetChoices replaces a row's choices and selects want, or the first choice
// when want is absent.
func (m *OptionList) SetChoices(row int, choices []string, want string) {
	item := &m.Items[row]
	item.Choices = choices
	item.Selected = 0
	for i, c := range choices {
		if c == want {
			item.Selected = i
			break
		}
	}
}

// Value returns the selected value of a row.
func (m OptionList) Value(row int) string {
	return m.Items[row].Value()
}

// View renders the list.
func (m OptionList) View() string {
	var b strings.Builder
	for i, item := range m.Items {
		line := item.Label + ":  ‹ " + item.Value() + " ›"
		if i == m.Cursor {
			b.WriteString(theme.Selected.Render("  ▸ " + line))
		} else {
			b.WriteString(theme.Unselected.Render("    " + line))
		}
		b.WriteString("\n")
	}
	return b.String()
}
