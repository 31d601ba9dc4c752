package trainer

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/solfa/internal/quiz"
	sess "github.com/abhisek/solfa/internal/session"
	"github.com/abhisek/solfa/internal/ui/layout"
	"github.com/abhisek/solfa/internal/ui/theme"
)

func (s *TrainerScreen) View(width, height int) string {
	if s.errMsg != "" && s.state.Item == nil {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Render("\n\n" + s.errMsg)
	}
	if s.state.Item == nil {
		return ""
	}

	item := s.state.Item
	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)
	gap := "\n\n"
	if layout.Cramped(height) {
		gap = "\n"
	}

	var b strings.Builder

	// Key and mode on the left, item count and best streak on the right.
	// Score and clock live in the header.
	infoLeft := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("  %s %s", item.Key, item.Mode.DisplayName()))
	infoRight := theme.Hint.Render(fmt.Sprintf("Item %d  Best %d ",
		s.state.ItemsSeen, s.state.Stats.BestStreak))
	pad := max(width-lipgloss.Width(infoLeft)-lipgloss.Width(infoRight), 1)
	b.WriteString(infoLeft + strings.Repeat(" ", pad) + infoRight)
	b.WriteString(gap)

	b.WriteString(center.Foreground(theme.Text).Bold(true).Render(quiz.PromptText(item)))
	b.WriteString(gap)

	var fields strings.Builder
	for _, f := range quiz.AllFields() {
		prefix := "  "
		if f == s.focus && s.state.AcceptsInput() {
			prefix = theme.Selected.Render("▸ ")
		}
		fields.WriteString(prefix + s.inputs[f].View() + "\n")
	}
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, fields.String()))
	b.WriteString("\n")

	if text, ok := s.feedback(); text != "" {
		style := theme.Incorrect
		if ok {
			style = theme.Correct
		} else if s.state.Phase == sess.PhaseRevealed {
			style = theme.Given
		}
		b.WriteString(center.Render(style.Render(text)))
		b.WriteString("\n")
	}
	if s.hint != "" {
		b.WriteString(center.Render(theme.Hint.Render("Hint: " + s.hint)))
		b.WriteString("\n")
	}
	if s.errMsg != "" {
		b.WriteString(center.Render(theme.Incorrect.Render(s.errMsg)))
		b.WriteString("\n")
	}
	if s.timeUp {
		b.WriteString(center.Render(theme.Timer.Render("Time's up! Press Esc for your summary.")))
	}

	return b.String()
}
