package summary

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/solfa/internal/router"
	"github.com/abhisek/solfa/internal/screen"
	"github.com/abhisek/solfa/internal/session"
	"github.com/abhisek/solfa/internal/ui/components"
	"github.com/abhisek/solfa/internal/ui/layout"
	"github.com/abhisek/solfa/internal/ui/theme"
)

// SummaryScreen displays the end-of-session figures.
type SummaryScreen struct {
	summary *session.Summary
	again   func() screen.Screen
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)
var _ screen.StatsProvider = (*SummaryScreen)(nil)

// New creates a new SummaryScreen. again builds the screen Enter swaps in
// for another round; when nil, Enter returns to setup like Esc.
func New(summary *session.Summary, again func() screen.Screen) *SummaryScreen {
	return &SummaryScreen{summary: summary, again: again}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Session Summary"
}

func (s *SummaryScreen) HeaderStats() layout.HeaderStats {
	if s.summary == nil {
		return layout.HeaderStats{}
	}
	return layout.HeaderStats{Correct: s.summary.Correct, Attempts: s.summary.Attempts, Streak: s.summary.BestStreak}
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	if s.again == nil {
		return []layout.KeyHint{{Key: "Enter/Esc", Description: "Setup"}}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Practice again"},
		{Key: "Esc", Description: "Setup"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter":
			if s.again != nil {
				next := s.again()
				return s, func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} }
			}
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	sum := s.summary
	if sum == nil {
		return ""
	}

	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)
	var b strings.Builder

	b.WriteString(center.Foreground(theme.Primary).Bold(true).Render("Session complete!"))
	b.WriteString("\n\n")

	b.WriteString(center.Foreground(theme.TextDim).Render(
		fmt.Sprintf("Duration: %s", session.FormatRemaining(sum.Duration))))
	b.WriteString("\n\n")

	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
		strings.Repeat("─", min(width-8, 60)))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
	b.WriteString("\n\n")

	accuracy := components.NewProgressBar(fmt.Sprintf("%.0f%% correct", sum.Accuracy),
		sum.Accuracy/100, min(width-8, 48))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, accuracy.View()))
	b.WriteString("\n\n")

	rows := []struct {
		label string
		value string
	}{
		{"Items seen", fmt.Sprintf("%d", sum.ItemsSeen)},
		{"Checks", fmt.Sprintf("%d", sum.Attempts)},
		{"Correct", fmt.Sprintf("%d", sum.Correct)},
		{"Accuracy", fmt.Sprintf("%.0f%%", sum.Accuracy)},
		{"Best streak", fmt.Sprintf("%d", sum.BestStreak)},
		{"Revealed", fmt.Sprintf("%d", sum.Reveals)},
	}
	var table strings.Builder
	for _, r := range rows {
		table.WriteString(theme.Hint.Render(fmt.Sprintf("%-12s", r.label)))
		table.WriteString(theme.Body.Render(r.value))
		table.WriteString("\n")
	}
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, table.String()))

	return b.String()
}
